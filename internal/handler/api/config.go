package api

import (
	"net/http"

	reqdto "office-scheduler/internal/handler/dto/request"
	resdto "office-scheduler/internal/handler/dto/response"
	"office-scheduler/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type ConfigHandler struct {
	commands commands.ConfigCommands
}

func NewConfigHandler(cmds commands.ConfigCommands) *ConfigHandler {
	return &ConfigHandler{commands: cmds}
}

// @Summary Get system config
// @Description Admin only; materializes defaults on first read
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.ConfigResponse
// @Failure 403 {object} httperr.Response
// @Router /admin/config [get]
func (h *ConfigHandler) GetConfig(c *gin.Context) {
	cfg, err := h.commands.CurrentConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfig(cfg))
}

// @Summary Update system config
// @Description Admin only; partial update, omitted fields keep their value
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.UpdateConfigRequest true "Config changes"
// @Success 200 {object} response.ConfigResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /admin/config [patch]
func (h *ConfigHandler) UpdateConfig(c *gin.Context) {
	var req reqdto.UpdateConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	saved, err := h.commands.UpdateConfig(c.Request.Context(), req.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromConfig(saved))
}
