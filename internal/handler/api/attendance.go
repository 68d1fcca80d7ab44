package api

import (
	"net/http"

	"office-scheduler/internal/domain/attendance"
	reqdto "office-scheduler/internal/handler/dto/request"
	resdto "office-scheduler/internal/handler/dto/response"
	"office-scheduler/internal/handler/middleware"
	"office-scheduler/internal/pkg/metrics"
	"office-scheduler/internal/usecase/commands"
	"office-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AttendanceHandler struct {
	commands commands.AttendanceCommands
	queries  queries.AttendanceQueries
	metrics  *metrics.Metrics
}

func NewAttendanceHandler(cmds commands.AttendanceCommands, qs queries.AttendanceQueries, m *metrics.Metrics) *AttendanceHandler {
	return &AttendanceHandler{
		commands: cmds,
		queries:  qs,
		metrics:  m,
	}
}

// @Summary Request attendance
// @Description Reserve an office spot for a calendar day
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.RequestAttendanceRequest true "Attendance request"
// @Success 201 {object} response.AttendanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /attendance [post]
func (h *AttendanceHandler) RequestAttendance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.RequestAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	day, err := req.ParsedDay()
	if err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.commands.RequestAttendance(c.Request.Context(), commands.RequestAttendanceRequest{
		Day:    day,
		TeamID: req.TeamID,
	}, userID)
	h.metrics.AdmissionTotal.WithLabelValues("attendance", admissionOutcome(err)).Inc()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromAttendanceReservation(created))
}

// @Summary Get attendance reservation
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} response.AttendanceResponse
// @Failure 404 {object} httperr.Response
// @Router /attendance/{id} [get]
func (h *AttendanceHandler) GetAttendance(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromAttendanceView(view))
}

// @Summary List own attendance reservations
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.AttendanceResponse
// @Router /attendance [get]
func (h *AttendanceHandler) ListOwnAttendance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	views, err := h.queries.ListByUser(c.Request.Context(), userID, 0)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttendanceViews(views))
}

// @Summary Day occupancy
// @Description Active reservations and remaining spots for a day
// @Tags attendance
// @Produce json
// @Security BearerAuth
// @Param day path string true "Calendar day (YYYY-MM-DD)"
// @Success 200 {object} response.DayOccupancyResponse
// @Failure 400 {object} httperr.Response
// @Router /attendance/day/{day} [get]
func (h *AttendanceHandler) GetDayOccupancy(c *gin.Context) {
	day, err := attendance.ParseDay(c.Param("day"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	view, err := h.queries.DayOccupancy(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromDayOccupancyView(view))
}

// @Summary Move attendance reservation
// @Description Re-admit an existing reservation on a different day
// @Tags attendance
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param request body request.UpdateAttendanceRequest true "New day"
// @Success 200 {object} response.AttendanceResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /attendance/{id} [patch]
func (h *AttendanceHandler) UpdateAttendance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	var req reqdto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	day, err := req.ParsedDay()
	if err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.commands.UpdateAttendance(c.Request.Context(), id, commands.UpdateAttendanceRequest{Day: day}, userID, role)
	h.metrics.AdmissionTotal.WithLabelValues("attendance", admissionOutcome(err)).Inc()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAttendanceReservation(updated))
}

// @Summary Cancel attendance reservation
// @Tags attendance
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /attendance/{id} [delete]
func (h *AttendanceHandler) CancelAttendance(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	role, _ := middleware.GetUserRole(c)

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	if err := h.commands.CancelAttendance(c.Request.Context(), id, userID, role); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
