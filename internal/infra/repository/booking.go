package repository

import (
	"context"
	"time"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/infra"
	"office-scheduler/internal/infra/db"
	"office-scheduler/internal/pkg/pgconv"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
)

const bookingTable = "meeting_room_bookings"

var bookingColumns = []string{
	"id", "room_id", "user_id", "title", "description", "start_time", "end_time", "created_at", "updated_at",
}

type BookingRepository struct {
	db db.DBTX
}

func NewBookingRepository(dbtx db.DBTX) *BookingRepository {
	return &BookingRepository{db: dbtx}
}

func (r *BookingRepository) Create(ctx context.Context, b *meetingroom.Booking) (*meetingroom.Booking, error) {
	query, args, err := qb.Insert(bookingTable).
		Columns("id", "room_id", "user_id", "title", "description", "start_time", "end_time").
		Values(b.ID, b.RoomID, b.UserID, b.Title, b.Description, b.Slot.Start(), b.Slot.End()).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build insert query", err)
	}

	created := *b
	if err := r.db.QueryRow(ctx, query, args...).Scan(&created.CreatedAt, &created.UpdatedAt); err != nil {
		return nil, infra.ClassifyPgError("failed to create booking", err)
	}
	return &created, nil
}

func (r *BookingRepository) Update(ctx context.Context, b *meetingroom.Booking) (*meetingroom.Booking, error) {
	query, args, err := qb.Update(bookingTable).
		Set("room_id", b.RoomID).
		Set("title", b.Title).
		Set("description", b.Description).
		Set("start_time", b.Slot.Start()).
		Set("end_time", b.Slot.End()).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": b.ID}).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build update query", err)
	}

	updated := *b
	if err := r.db.QueryRow(ctx, query, args...).Scan(&updated.CreatedAt, &updated.UpdatedAt); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
		}
		return nil, infra.ClassifyPgError("failed to update booking", err)
	}
	return &updated, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query, args, err := qb.Delete(bookingTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to build delete query", err)
	}

	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr(infra.KindDBFailure, "failed to delete booking", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NewRepoErr(infra.KindNotFound, "booking not found")
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*meetingroom.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	b, err := scanBooking(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.NewRepoErr(infra.KindNotFound, "booking not found")
		}
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to find booking", err)
	}
	return b, nil
}

func (r *BookingRepository) FindByRoom(ctx context.Context, roomID uuid.UUID) ([]meetingroom.Booking, error) {
	query, args, err := qb.Select(bookingColumns...).
		From(bookingTable).
		Where(sq.Eq{"room_id": roomID}).
		OrderBy("start_time").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to build select query", err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to query bookings", err)
	}
	defer rows.Close()

	var out []meetingroom.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to scan booking", err)
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "failed to iterate bookings", err)
	}
	return out, nil
}

func scanBooking(row rowScanner) (*meetingroom.Booking, error) {
	var (
		b          meetingroom.Booking
		start, end time.Time
	)
	if err := row.Scan(&b.ID, &b.RoomID, &b.UserID, &b.Title, &b.Description, &start, &end, &b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, err
	}
	b.Slot = meetingroom.ReconstructTimeSlot(start, end)
	return &b, nil
}
