package commands

import (
	"context"
	"log/slog"

	"office-scheduler/internal/domain/policy"
	"office-scheduler/internal/usecase/shared"
)

type ConfigCommands interface {
	// CurrentConfig returns the singleton policy, materializing defaults on
	// first read.
	CurrentConfig(ctx context.Context) (policy.Config, error)
	UpdateConfig(ctx context.Context, p policy.Patch) (policy.Config, error)
}

type configUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewConfigUseCase(uow shared.UnitOfWork) ConfigCommands {
	return &configUseCaseImpl{uow: uow}
}

func (uc *configUseCaseImpl) CurrentConfig(ctx context.Context) (policy.Config, error) {
	var cfg policy.Config
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		cfg, err = tx.SystemConfig().Ensure(ctx)
		return err
	})
	if err != nil {
		return policy.Config{}, mapRepoError(err)
	}
	return cfg, nil
}

// UpdateConfig merges the patch into the current row inside one transaction so
// concurrent updates cannot interleave half-applied knobs.
func (uc *configUseCaseImpl) UpdateConfig(ctx context.Context, p policy.Patch) (policy.Config, error) {
	var saved policy.Config
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.SystemConfig().Ensure(ctx)
		if err != nil {
			return err
		}

		merged, err := current.Apply(p)
		if err != nil {
			return err
		}

		saved, err = tx.SystemConfig().Save(ctx, merged)
		return err
	})
	if err != nil {
		return policy.Config{}, mapRepoError(err)
	}

	slog.Info("system config updated",
		"max_spots_per_day", saved.MaxSpotsPerDay,
		"allow_weekend", saved.AllowWeekendReservations,
		"allow_holiday", saved.AllowHolidayReservations,
		"max_advance_days", saved.MaxAdvanceBookingDays,
		"min_advance_hours", saved.MinAdvanceBookingHours)
	return saved, nil
}
