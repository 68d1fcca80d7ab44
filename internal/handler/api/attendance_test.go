//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"office-scheduler/internal/domain/attendance"
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

type AttendanceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockAttendanceCommands
	mockQueries  *queriesmock.MockAttendanceQueries
	handler      *api.AttendanceHandler
	userID       uuid.UUID
}

func (s *AttendanceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockAttendanceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockAttendanceQueries(s.mockCtrl)
	s.handler = api.NewAttendanceHandler(s.mockCommands, s.mockQueries, metrics.New("test"))
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

	s.router.POST("/attendance", authMiddleware, s.handler.RequestAttendance)
	s.router.GET("/attendance/day/:day", authMiddleware, s.handler.GetDayOccupancy)
	s.router.GET("/attendance/:id", authMiddleware, s.handler.GetAttendance)
	s.router.PATCH("/attendance/:id", authMiddleware, s.handler.UpdateAttendance)
	s.router.DELETE("/attendance/:id", authMiddleware, s.handler.CancelAttendance)
}

func (s *AttendanceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAttendanceHandlerSuite(t *testing.T) {
	suite.Run(t, new(AttendanceHandlerTestSuite))
}

func (s *AttendanceHandlerTestSuite) TestRequestAttendance() {
	b := builder.NewAttendanceBuilder()
	reqBody := b.BuildCreateRequestBody()

	s.Run("created", func() {
		s.mockCommands.EXPECT().
			RequestAttendance(gomock.Any(), gomock.Any(), s.userID).
			Return(b.BuildReservation(), nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/attendance", reqBody, "token")

		var resp resdto.AttendanceResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusCreated, &resp)
		s.Equal(b.ID, resp.ID)
		s.Equal(b.Day.String(), resp.Day)
	})

	s.Run("duplicate reservation", func() {
		s.mockCommands.EXPECT().
			RequestAttendance(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.ErrDuplicateReservation)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/attendance", reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "duplicate_reservation")
	})

	s.Run("capacity exceeded", func() {
		s.mockCommands.EXPECT().
			RequestAttendance(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, errs.ErrCapacityExceeded)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/attendance", reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "capacity_exceeded")
	})

	s.Run("policy violation carries reason", func() {
		s.mockCommands.EXPECT().
			RequestAttendance(gomock.Any(), gomock.Any(), s.userID).
			Return(nil, &attendance.PolicyError{Reason: attendance.ReasonWeekend})

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/attendance", reqBody, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusConflict, "policy_violation")
		s.Contains(w.Body.String(), string(attendance.ReasonWeekend))
	})

	s.Run("malformed day is rejected before the usecase", func() {
		bad := map[string]any{"day": "09/01/2025"}
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/attendance", bad, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "invalid_request")
	})

	s.Run("unauthorized without token", func() {
		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPost, "/attendance", reqBody, "")
		s.Equal(http.StatusUnauthorized, w.Code)
	})
}

func (s *AttendanceHandlerTestSuite) TestGetAttendance() {
	b := builder.NewAttendanceBuilder()

	s.Run("found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), b.ID).
			Return(b.BuildView(), nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/attendance/"+b.ID.String(), nil, "token")

		var resp resdto.AttendanceResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
		s.Equal(b.ID, resp.ID)
	})

	s.Run("not found", func() {
		s.mockQueries.EXPECT().
			GetByID(gomock.Any(), b.ID).
			Return(nil, errs.ErrNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/attendance/"+b.ID.String(), nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not_found")
	})
}

func (s *AttendanceHandlerTestSuite) TestUpdateAttendance() {
	b := builder.NewAttendanceBuilder()
	body := map[string]any{"day": "2025-09-02"}

	s.Run("moved", func() {
		s.mockCommands.EXPECT().
			UpdateAttendance(gomock.Any(), b.ID, gomock.Any(), s.userID, jwt.RoleMember).
			Return(b.BuildReservation(), nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/attendance/"+b.ID.String(), body, "token")

		var resp resdto.AttendanceResponse
		commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	})

	s.Run("not owner", func() {
		s.mockCommands.EXPECT().
			UpdateAttendance(gomock.Any(), b.ID, gomock.Any(), s.userID, jwt.RoleMember).
			Return(nil, commands.ErrNotReservationOwner)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodPatch, "/attendance/"+b.ID.String(), body, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusForbidden, "forbidden")
	})
}

func (s *AttendanceHandlerTestSuite) TestCancelAttendance() {
	id := uuid.New()

	s.Run("cancelled", func() {
		s.mockCommands.EXPECT().
			CancelAttendance(gomock.Any(), id, s.userID, jwt.RoleMember).
			Return(nil)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/attendance/"+id.String(), nil, "token")
		s.Equal(http.StatusNoContent, w.Code)
	})

	s.Run("already cancelled reads as missing", func() {
		s.mockCommands.EXPECT().
			CancelAttendance(gomock.Any(), id, s.userID, jwt.RoleMember).
			Return(errs.ErrNotFound)

		w := commonhttp.PerformRequest(s.T(), s.router, http.MethodDelete, "/attendance/"+id.String(), nil, "token")
		commonhttp.AssertErrorResponse(s.T(), w, http.StatusNotFound, "not_found")
	})
}

func (s *AttendanceHandlerTestSuite) TestGetDayOccupancy() {
	b := builder.NewAttendanceBuilder()
	occupancy := &queries.DayOccupancyView{
		Day:            b.Day.String(),
		Reservations:   []*queries.AttendanceView{b.BuildView()},
		MaxSpotsPerDay: 12,
		SpotsLeft:      11,
	}
	s.mockQueries.EXPECT().
		DayOccupancy(gomock.Any(), b.Day).
		Return(occupancy, nil)

	w := commonhttp.PerformRequest(s.T(), s.router, http.MethodGet, "/attendance/day/"+b.Day.String(), nil, "token")

	var resp resdto.DayOccupancyResponse
	commonhttp.AssertSuccessResponse(s.T(), w, http.StatusOK, &resp)
	s.Equal(11, resp.SpotsLeft)
	s.Len(resp.Reservations, 1)
}
