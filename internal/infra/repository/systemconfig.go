package repository

import (
	"context"

	"office-scheduler/internal/domain/policy"
	"office-scheduler/internal/infra"
	"office-scheduler/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
)

const systemConfigTable = "system_config"

// system_config holds exactly one row; id is fixed to 1 by a check constraint.
const systemConfigRowID = 1

var systemConfigColumns = []string{
	"max_spots_per_day",
	"allow_weekend_reservations",
	"allow_holiday_reservations",
	"max_advance_booking_days",
	"min_advance_booking_hours",
	"auto_cancel_inactive_reservations",
	"inactive_reservation_hours",
	"updated_at",
}

type SystemConfigRepository struct {
	db db.DBTX
}

func NewSystemConfigRepository(dbtx db.DBTX) *SystemConfigRepository {
	return &SystemConfigRepository{db: dbtx}
}

// Ensure returns the singleton config, inserting the defaults first if no row
// exists yet. ON CONFLICT DO NOTHING makes concurrent first reads race-safe:
// exactly one insert wins and everyone reads the same row.
func (r *SystemConfigRepository) Ensure(ctx context.Context) (policy.Config, error) {
	defaults := policy.Defaults()
	insert, args, err := qb.Insert(systemConfigTable).
		Columns(append([]string{"id"}, systemConfigColumns[:len(systemConfigColumns)-1]...)...).
		Values(
			systemConfigRowID,
			defaults.MaxSpotsPerDay,
			defaults.AllowWeekendReservations,
			defaults.AllowHolidayReservations,
			defaults.MaxAdvanceBookingDays,
			defaults.MinAdvanceBookingHours,
			defaults.AutoCancelInactiveReservations,
			defaults.InactiveReservationHours,
		).
		Suffix("ON CONFLICT (id) DO NOTHING").
		ToSql()
	if err != nil {
		return policy.Config{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to build insert query", err)
	}
	if _, err := r.db.Exec(ctx, insert, args...); err != nil {
		return policy.Config{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to materialize default config", err)
	}

	query, args, err := qb.Select(systemConfigColumns...).
		From(systemConfigTable).
		Where(sq.Eq{"id": systemConfigRowID}).
		ToSql()
	if err != nil {
		return policy.Config{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	var cfg policy.Config
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&cfg.MaxSpotsPerDay,
		&cfg.AllowWeekendReservations,
		&cfg.AllowHolidayReservations,
		&cfg.MaxAdvanceBookingDays,
		&cfg.MinAdvanceBookingHours,
		&cfg.AutoCancelInactiveReservations,
		&cfg.InactiveReservationHours,
		&cfg.UpdatedAt,
	)
	if err != nil {
		return policy.Config{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to read system config", err)
	}
	return cfg, nil
}

func (r *SystemConfigRepository) Save(ctx context.Context, cfg policy.Config) (policy.Config, error) {
	query, args, err := qb.Update(systemConfigTable).
		Set("max_spots_per_day", cfg.MaxSpotsPerDay).
		Set("allow_weekend_reservations", cfg.AllowWeekendReservations).
		Set("allow_holiday_reservations", cfg.AllowHolidayReservations).
		Set("max_advance_booking_days", cfg.MaxAdvanceBookingDays).
		Set("min_advance_booking_hours", cfg.MinAdvanceBookingHours).
		Set("auto_cancel_inactive_reservations", cfg.AutoCancelInactiveReservations).
		Set("inactive_reservation_hours", cfg.InactiveReservationHours).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": systemConfigRowID}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return policy.Config{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to build update query", err)
	}

	saved := cfg
	if err := r.db.QueryRow(ctx, query, args...).Scan(&saved.UpdatedAt); err != nil {
		return policy.Config{}, infra.WrapRepoErr(infra.KindDBFailure, "failed to save system config", err)
	}
	return saved, nil
}
