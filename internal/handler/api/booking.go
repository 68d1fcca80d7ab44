package api

import (
	"net/http"
	"time"

	reqdto "office-scheduler/internal/handler/dto/request"
	resdto "office-scheduler/internal/handler/dto/response"
	"office-scheduler/internal/handler/middleware"
	"office-scheduler/internal/pkg/metrics"
	"office-scheduler/internal/usecase/commands"
	"office-scheduler/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type BookingHandler struct {
	commands commands.BookingCommands
	queries  queries.BookingQueries
	metrics  *metrics.Metrics
}

func NewBookingHandler(cmds commands.BookingCommands, qs queries.BookingQueries, m *metrics.Metrics) *BookingHandler {
	return &BookingHandler{
		commands: cmds,
		queries:  qs,
		metrics:  m,
	}
}

// @Summary Request booking
// @Description Book a meeting room for a half-open time interval
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body request.RequestBookingRequest true "Booking request"
// @Success 201 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings [post]
func (h *BookingHandler) RequestBooking(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	var req reqdto.RequestBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	created, err := h.commands.RequestBooking(c.Request.Context(), commands.RequestBookingRequest{
		RoomID:      req.RoomID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, userID)
	h.metrics.AdmissionTotal.WithLabelValues("meeting_room", admissionOutcome(err)).Inc()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBooking(created))
}

// @Summary Get booking
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} response.BookingResponse
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary List own bookings
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} response.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListOwnBookings(c *gin.Context) {
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
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary List room bookings
// @Description Bookings for a room, optionally limited to a window
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Room ID"
// @Param from query string false "Window start (RFC3339)"
// @Param to query string false "Window end (RFC3339)"
// @Success 200 {array} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /rooms/{id}/bookings [get]
func (h *BookingHandler) ListRoomBookings(c *gin.Context) {
	roomID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		respondBindError(c, err)
		return
	}

	from, err := parseTimeQuery(c, "from")
	if err != nil {
		respondBindError(c, err)
		return
	}
	to, err := parseTimeQuery(c, "to")
	if err != nil {
		respondBindError(c, err)
		return
	}

	views, err := h.queries.ListByRoom(c.Request.Context(), roomID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Update booking
// @Description Re-admit a booking with a changed slot or metadata
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body request.UpdateBookingRequest true "Booking changes"
// @Success 200 {object} response.BookingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /bookings/{id} [patch]
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
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

	var req reqdto.UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	updated, err := h.commands.UpdateBooking(c.Request.Context(), id, commands.UpdateBookingRequest{
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}, userID, role)
	h.metrics.AdmissionTotal.WithLabelValues("meeting_room", admissionOutcome(err)).Inc()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBooking(updated))
}

// @Summary Cancel booking
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
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

	if err := h.commands.CancelBooking(c.Request.Context(), id, userID, role); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseTimeQuery(c *gin.Context, key string) (time.Time, error) {
	raw := c.Query(key)
	if raw == "" {
		return time.Time{}, nil
	}
	return time.Parse(time.RFC3339, raw)
}
