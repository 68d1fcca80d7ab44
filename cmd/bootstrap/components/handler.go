package components

import (
	"office-scheduler/internal/handler"
	"office-scheduler/internal/handler/api"
	"office-scheduler/internal/handler/middleware"
	"office-scheduler/internal/pkg/jwt"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAttendanceHandler,
		api.NewBookingHandler,
		api.NewRoomHandler,
		api.NewConfigHandler,
		middleware.NewAuthMiddleware,
		func(s *jwt.Service) middleware.TokenValidator { return s },
	),
	fx.Invoke(handler.NewRouter),
)
