package api

import (
	"net/http"

	reqdto "office-scheduler/internal/handler/dto/request"
	resdto "office-scheduler/internal/handler/dto/response"
	"office-scheduler/internal/usecase/commands"
	"office-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type RoomHandler struct {
	commands commands.RoomCommands
	queries  queries.RoomQueries
}

func NewRoomHandler(cmds commands.RoomCommands, qs queries.RoomQueries) *RoomHandler {
	return &RoomHandler{
		commands: cmds,
		queries:  qs,
	}
}

// @Summary List rooms
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param all query bool false "Include deactivated rooms"
// @Success 200 {array} response.RoomResponse
// @Router /rooms [get]
func (h *RoomHandler) ListRooms(c *gin.Context) {
	activeOnly := c.Query("all") != "true"

	views, err := h.queries.List(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomViews(views))
}

// @Summary Get room
// @Tags rooms
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Success 200 {object} response.RoomResponse
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [get]
func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.queries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

// @Summary Create room
// @Description Admin only
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.CreateRoomRequest true "Room definition"
// @Success 201 {object} response.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /rooms [post]
func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.commands.CreateRoom(c.Request.Context(), commands.CreateRoomRequest{
		Name:     req.Name,
		Capacity: req.Capacity,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoom(created))
}

// @Summary Update room
// @Description Admin only; deactivating hides the room from new bookings
// @Tags rooms
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param request body request.UpdateRoomRequest true "Room changes"
// @Success 200 {object} response.RoomResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /rooms/{id} [patch]
func (h *RoomHandler) UpdateRoom(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	var req reqdto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.commands.UpdateRoom(c.Request.Context(), id, commands.UpdateRoomRequest{
		Name:     req.Name,
		Capacity: req.Capacity,
		Active:   req.Active,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoom(updated))
}
