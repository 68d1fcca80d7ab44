package readstore

import (
	"context"
	"time"

	"office-scheduler/internal/infra"
	"office-scheduler/internal/infra/db"
	"office-scheduler/internal/pkg/pgconv"
	"office-scheduler/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

type BookingReadStore struct {
	db db.DBTX
}

func NewBookingReadStore(dbtx db.DBTX) *BookingReadStore {
	return &BookingReadStore{db: dbtx}
}

func (r *BookingReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BookingView, error) {
	query, args, err := bookingSelect().
		Where(sq.Eq{"b.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	view, err := scanBookingView(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}
	return view, nil
}

// FindByRoom uses the half-open overlap test in SQL: a booking is included
// when it overlaps [from, to). Zero time bounds are unbounded.
func (r *BookingReadStore) FindByRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*queries.BookingView, error) {
	builder := bookingSelect().
		Where(sq.Eq{"b.room_id": roomID}).
		OrderBy("b.start_time")
	if !from.IsZero() {
		builder = builder.Where(sq.Gt{"b.end_time": from})
	}
	if !to.IsZero() {
		builder = builder.Where(sq.Lt{"b.start_time": to})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}
	return r.queryViews(ctx, query, args)
}

func (r *BookingReadStore) FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*queries.BookingView, error) {
	query, args, err := bookingSelect().
		Where(sq.Eq{"b.user_id": userID}).
		OrderBy("b.start_time DESC").
		Limit(uint64(limit)).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}
	return r.queryViews(ctx, query, args)
}

func (r *BookingReadStore) queryViews(ctx context.Context, query string, args []any) ([]*queries.BookingView, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query bookings", err)
	}
	defer rows.Close()

	var out []*queries.BookingView
	for rows.Next() {
		view, err := scanBookingView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
		}
		out = append(out, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return out, nil
}

func bookingSelect() sq.SelectBuilder {
	return qb.Select(
		"b.id", "b.room_id", "r.name", "b.user_id", "b.title", "b.description",
		"b.start_time", "b.end_time", "b.created_at", "b.updated_at",
	).
		From("meeting_room_bookings b").
		Join("meeting_rooms r ON r.id = b.room_id")
}

func scanBookingView(row rowScanner) (*queries.BookingView, error) {
	var view queries.BookingView
	err := row.Scan(
		&view.ID, &view.RoomID, &view.RoomName, &view.UserID, &view.Title, &view.Description,
		&view.StartTime, &view.EndTime, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &view, nil
}
