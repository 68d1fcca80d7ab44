package queries

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	// ListByRoom returns the room's bookings overlapping [from, to); zero
	// bounds mean unbounded on that side.
	ListByRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*BookingView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingView, error)
}

type BookingViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
	FindByRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*BookingView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*BookingView, error)
}

type bookingQueriesImpl struct {
	repo BookingViewRepo
}

func NewBookingQueries(repo BookingViewRepo) BookingQueries {
	return &bookingQueriesImpl{repo: repo}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *bookingQueriesImpl) ListByRoom(ctx context.Context, roomID uuid.UUID, from, to time.Time) ([]*BookingView, error) {
	return q.repo.FindByRoom(ctx, roomID, from, to)
}

func (q *bookingQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*BookingView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.FindByUserID(ctx, userID, int32(limit))
}
