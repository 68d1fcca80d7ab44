package shared

import (
	"context"
	"time"

	"office-scheduler/internal/domain/attendance"
	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/domain/policy"
	"office-scheduler/internal/infra/db"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: full transaction for read-evaluate-write cycles, with retry on
	// serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithDB: single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db db.DBTX) error) error
}

type Tx interface {
	Attendance() AttendanceRepository
	Bookings() BookingRepository
	Rooms() RoomRepository
	SystemConfig() SystemConfigRepository
	DB() db.DBTX
}

type AttendanceRepository interface {
	Create(ctx context.Context, rec *attendance.Reservation) (*attendance.Reservation, error)
	Update(ctx context.Context, rec *attendance.Reservation) (*attendance.Reservation, error)
	// Cancel flips the status to cancelled; cancelling a missing or already
	// cancelled id reports KindNotFound.
	Cancel(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*attendance.Reservation, error)
	// FindActiveByDay returns every non-cancelled reservation for the exact
	// calendar day, across all users.
	FindActiveByDay(ctx context.Context, day attendance.Day) ([]attendance.Reservation, error)
	// FindStalePending returns pending reservations created before the cutoff.
	FindStalePending(ctx context.Context, before time.Time) ([]attendance.Reservation, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *meetingroom.Booking) (*meetingroom.Booking, error)
	Update(ctx context.Context, b *meetingroom.Booking) (*meetingroom.Booking, error)
	// Delete removes the booking; a missing id reports KindNotFound.
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*meetingroom.Booking, error)
	FindByRoom(ctx context.Context, roomID uuid.UUID) ([]meetingroom.Booking, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r *meetingroom.Room) (*meetingroom.Room, error)
	Update(ctx context.Context, r *meetingroom.Room) (*meetingroom.Room, error)
	FindByID(ctx context.Context, id uuid.UUID) (*meetingroom.Room, error)
}

type SystemConfigRepository interface {
	// Ensure returns the singleton config, materializing defaults with an
	// atomic insert-if-absent so concurrent first reads observe one row.
	Ensure(ctx context.Context) (policy.Config, error)
	Save(ctx context.Context, cfg policy.Config) (policy.Config, error)
}
