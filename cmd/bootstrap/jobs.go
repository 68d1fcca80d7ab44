package bootstrap

import (
	"context"

	"office-scheduler/internal/jobs/autocancel"
	"office-scheduler/internal/pkg/config"
	"office-scheduler/internal/usecase/commands"

	"go.uber.org/fx"
)

var JobsModule = fx.Module("jobs",
	fx.Provide(
		NewSweeper,
	),
	fx.Invoke(RegisterSweeper),
)

func NewSweeper(cfg config.Config, cmds commands.AttendanceCommands) *autocancel.Sweeper {
	return autocancel.NewSweeper(cmds, cfg.Sweep.Interval)
}

func RegisterSweeper(lc fx.Lifecycle, sweeper *autocancel.Sweeper) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			sweeper.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return sweeper.Stop(ctx)
		},
	})
}
