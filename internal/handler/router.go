package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"office-scheduler/internal/handler/api"
	"office-scheduler/internal/handler/middleware"
	"office-scheduler/internal/pkg/config"
	"office-scheduler/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

func NewRouter(
	engine *gin.Engine,
	cfg config.Config,
	m *metrics.Metrics,
	attendanceHandler *api.AttendanceHandler,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
	configHandler *api.ConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	setupMiddleware(engine, cfg, m)
	setupRoutes(engine, m, attendanceHandler, bookingHandler, roomHandler, configHandler, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.MetricsMiddleware(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(
	engine *gin.Engine,
	m *metrics.Metrics,
	attendanceHandler *api.AttendanceHandler,
	bookingHandler *api.BookingHandler,
	roomHandler *api.RoomHandler,
	configHandler *api.ConfigHandler,
	authMiddleware *middleware.AuthMiddleware,
) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		attendance := apiGroup.Group("/attendance")
		attendance.Use(authMiddleware.RequireAuth())
		{
			addRoutes(attendance, []route{
				{Method: http.MethodPost, Path: "", Handler: attendanceHandler.RequestAttendance},
				{Method: http.MethodGet, Path: "", Handler: attendanceHandler.ListOwnAttendance},
				{Method: http.MethodGet, Path: "/day/:day", Handler: attendanceHandler.GetDayOccupancy},
				{Method: http.MethodGet, Path: "/:id", Handler: attendanceHandler.GetAttendance},
				{Method: http.MethodPatch, Path: "/:id", Handler: attendanceHandler.UpdateAttendance},
				{Method: http.MethodDelete, Path: "/:id", Handler: attendanceHandler.CancelAttendance},
			})
		}

		bookings := apiGroup.Group("/bookings")
		bookings.Use(authMiddleware.RequireAuth())
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: bookingHandler.RequestBooking},
				{Method: http.MethodGet, Path: "", Handler: bookingHandler.ListOwnBookings},
				{Method: http.MethodGet, Path: "/:id", Handler: bookingHandler.GetBooking},
				{Method: http.MethodPatch, Path: "/:id", Handler: bookingHandler.UpdateBooking},
				{Method: http.MethodDelete, Path: "/:id", Handler: bookingHandler.CancelBooking},
			})
		}

		rooms := apiGroup.Group("/rooms")
		rooms.Use(authMiddleware.RequireAuth())
		{
			addRoutes(rooms, []route{
				{Method: http.MethodGet, Path: "", Handler: roomHandler.ListRooms},
				{Method: http.MethodGet, Path: "/:id", Handler: roomHandler.GetRoom},
				{Method: http.MethodGet, Path: "/:id/bookings", Handler: bookingHandler.ListRoomBookings},
				{Method: http.MethodPost, Path: "", Handler: roomHandler.CreateRoom, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
				{Method: http.MethodPatch, Path: "/:id", Handler: roomHandler.UpdateRoom, Mw: []gin.HandlerFunc{authMiddleware.RequireAdmin()}},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireAdmin())
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/config", Handler: configHandler.GetConfig},
				{Method: http.MethodPatch, Path: "/config", Handler: configHandler.UpdateConfig},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
