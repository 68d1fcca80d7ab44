//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/handler/api"
	resdto "office-scheduler/internal/handler/dto/response"
	"office-scheduler/internal/pkg/errs"
	"office-scheduler/internal/pkg/jwt"
	"office-scheduler/internal/pkg/metrics"
	"office-scheduler/internal/usecase/commands"
	"office-scheduler/internal/usecase/queries"
	"office-scheduler/tests/common/builder"
	commonhttp "office-scheduler/tests/common/httptest"
	commandsmock "office-scheduler/tests/mock/commands"
	queriesmock "office-scheduler/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	userID       uuid.UUID
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries, metrics.New("test"))
	s.userID = uuid.New()

	// Mock authentication middleware for testing
	authMiddleware := func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		c.Set("user_id", s.userID)
		c.Set("user_role", jwt.RoleMember)
		c.Next()
	}

	s.router.POST("/bookings", authMiddleware, s.handler.RequestBooking)
	s.router.GET("/bookings/:id", authMiddleware, s.handler.GetBooking)
	s.router.PATCH("/bookings/:id", authMiddleware, s.handler.UpdateBooking)
	s.router.DELETE("/bookings/:id", authMiddleware, s.handler.CancelBooking)
	s.router.GET("/rooms/:id/bookings", authMiddleware, s.handler.ListRoomBookings)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

func (s *BookingHandlerTestSuite) TestRequestBooking() {
	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestBody()

	s.Run("created", func() {
		s.mockCommands.EXPECT().
			RequestBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(b.BuildBooking(), nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(b.ID, resp.ID)
		s.Equal(b.RoomID, resp.RoomID)
	})

	s.Run("scheduling conflict lists the blockers", func() {
		blocker := builder.NewBookingBuilder()
		s.mockCommands.EXPECT().
			RequestBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, &meetingroom.ConflictError{Conflicts: []meetingroom.Booking{*blocker.BuildBooking()}})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "scheduling_conflict")
		s.Contains(w.Body.String(), blocker.ID.String())
	})

	s.Run("invalid interval", func() {
		s.mockCommands.EXPECT().
			RequestBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.ErrInvalidInterval)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_interval")
	})

	s.Run("inactive room", func() {
		s.mockCommands.EXPECT().
			RequestBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.ErrRoomInactive)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "room_inactive")
	})

	s.Run("unknown room", func() {
		s.mockCommands.EXPECT().
			RequestBooking(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.ErrNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not_found")
	})

	s.Run("missing title is rejected by binding", func() {
		bad := b.BuildCreateRequestBody()
		delete(bad, "title")
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/bookings", bad, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_request")
	})
}

func (s *BookingHandlerTestSuite) TestGetBooking() {
	b := builder.NewBookingBuilder()

	s.Run("found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), b.ID).
			Return(b.BuildView(), nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID.String(), nil, "token")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(b.RoomName, resp.RoomName)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), b.ID).
			Return(nil, errs.ErrNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+b.ID.String(), nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not_found")
	})
}

func (s *BookingHandlerTestSuite) TestListRoomBookings() {
	b := builder.NewBookingBuilder()

	s.Run("windowed list", func() {
		from := b.StartTime.Add(-time.Hour)
		to := b.EndTime.Add(time.Hour)
		s.mockQueries.EXPECT().
			ListByRoom(gomock.Any(), b.RoomID, gomock.Any(), gomock.Any()).
			Return([]*queries.BookingView{b.BuildView()}, nil)

		path := "/rooms/" + b.RoomID.String() + "/bookings?from=" + from.Format(time.RFC3339) + "&to=" + to.Format(time.RFC3339)
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "token")

		var resp []*resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Len(resp, 1)
	})

	s.Run("malformed window", func() {
		path := "/rooms/" + b.RoomID.String() + "/bookings?from=yesterday"
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, path, nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_request")
	})
}

func (s *BookingHandlerTestSuite) TestUpdateBooking() {
	b := builder.NewBookingBuilder()
	body := map[string]any{"title": "Retro"}

	s.Run("updated", func() {
		s.mockCommands.EXPECT().
			UpdateBooking(gomock.Any(), b.ID, gomock.Any(), s.userID, jwt.RoleMember).
			Return(b.BuildBooking(), nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+b.ID.String(), body, "token")

		var resp resdto.BookingResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("not owner", func() {
		s.mockCommands.EXPECT().
			UpdateBooking(gomock.Any(), b.ID, gomock.Any(), s.userID, jwt.RoleMember).
			Return(nil, commands.ErrBookingNotOwned)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/bookings/"+b.ID.String(), body, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "forbidden")
	})
}

func (s *BookingHandlerTestSuite) TestCancelBooking() {
	id := uuid.New()

	s.Run("cancelled", func() {
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), id, s.userID, jwt.RoleMember).
			Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("not found", func() {
		s.mockCommands.EXPECT().
			CancelBooking(gomock.Any(), id, s.userID, jwt.RoleMember).
			Return(errs.ErrNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/bookings/"+id.String(), nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not_found")
	})
}
