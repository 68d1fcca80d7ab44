package autocancel

import (
	"context"
	"log/slog"
	"time"

	"office-scheduler/internal/usecase/commands"
)

// Sweeper periodically cancels pending attendance reservations that sat
// unconfirmed past the configured inactivity window. The policy knobs are
// re-read on every pass, so config changes apply without a restart.
type Sweeper struct {
	commands commands.AttendanceCommands
	interval time.Duration

	stop chan struct{}
	done chan struct{}
}

func NewSweeper(cmds commands.AttendanceCommands, interval time.Duration) *Sweeper {
	return &Sweeper{
		commands: cmds,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

func (s *Sweeper) Start() {
	go s.run()
}

func (s *Sweeper) Stop(ctx context.Context) error {
	close(s.stop)
	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Sweeper) run() {
	defer close(s.done)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.Info("autocancel sweeper started", "interval", s.interval)
	for {
		select {
		case <-s.stop:
			slog.Info("autocancel sweeper stopped")
			return
		case <-ticker.C:
			s.RunOnce(context.Background())
		}
	}
}

// RunOnce executes a single sweep pass and reports how many reservations were
// cancelled. Errors are logged, not returned up the ticker loop.
func (s *Sweeper) RunOnce(ctx context.Context) int {
	swept, err := s.commands.SweepInactive(ctx)
	if err != nil {
		slog.Error("autocancel sweep failed", "error", err.Error())
		return 0
	}
	if swept > 0 {
		slog.Info("autocancel sweep completed", "cancelled", swept)
	}
	return swept
}
