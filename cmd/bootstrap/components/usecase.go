package components

import (
	"office-scheduler/internal/pkg/clock"
	"office-scheduler/internal/usecase/commands"
	"office-scheduler/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseCommandsModule,
	usecaseQueriesModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewAttendanceUseCase,
		commands.NewBookingUseCase,
		commands.NewRoomUseCase,
		commands.NewConfigUseCase,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewAttendanceQueries,
		queries.NewBookingQueries,
		queries.NewRoomQueries,
	),
)
