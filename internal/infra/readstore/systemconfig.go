package readstore

import (
	"context"

	"office-scheduler/internal/domain/policy"
	"office-scheduler/internal/infra"
	"office-scheduler/internal/infra/db"
	"office-scheduler/internal/pkg/pgconv"
	"office-scheduler/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
)

type SystemConfigReadStore struct {
	db db.DBTX
}

func NewSystemConfigReadStore(dbtx db.DBTX) *SystemConfigReadStore {
	return &SystemConfigReadStore{db: dbtx}
}

// Find returns the current policy; when the singleton row has not been
// materialized yet it falls back to the defaults without writing, so the read
// path stays side-effect free.
func (r *SystemConfigReadStore) Find(ctx context.Context) (*queries.ConfigView, error) {
	query, args, err := qb.Select(
		"max_spots_per_day",
		"allow_weekend_reservations",
		"allow_holiday_reservations",
		"max_advance_booking_days",
		"min_advance_booking_hours",
		"auto_cancel_inactive_reservations",
		"inactive_reservation_hours",
		"updated_at",
	).
		From("system_config").
		Where(sq.Eq{"id": 1}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	var view queries.ConfigView
	err = r.db.QueryRow(ctx, query, args...).Scan(
		&view.MaxSpotsPerDay,
		&view.AllowWeekendReservations,
		&view.AllowHolidayReservations,
		&view.MaxAdvanceBookingDays,
		&view.MinAdvanceBookingHours,
		&view.AutoCancelInactiveReservations,
		&view.InactiveReservationHours,
		&view.UpdatedAt,
	)
	if err != nil {
		if pgconv.IsNoRows(err) {
			defaults := policy.Defaults()
			return &queries.ConfigView{
				MaxSpotsPerDay:                 defaults.MaxSpotsPerDay,
				AllowWeekendReservations:       defaults.AllowWeekendReservations,
				AllowHolidayReservations:       defaults.AllowHolidayReservations,
				MaxAdvanceBookingDays:          defaults.MaxAdvanceBookingDays,
				MinAdvanceBookingHours:         defaults.MinAdvanceBookingHours,
				AutoCancelInactiveReservations: defaults.AutoCancelInactiveReservations,
				InactiveReservationHours:       defaults.InactiveReservationHours,
			}, nil
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to read system config", err)
	}
	return &view, nil
}
