package queries

import (
	"context"

	"github.com/google/uuid"
)

type RoomQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	// List returns rooms ordered by name; activeOnly hides deactivated rooms.
	List(ctx context.Context, activeOnly bool) ([]*RoomView, error)
}

type RoomViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RoomView, error)
	FindAll(ctx context.Context, activeOnly bool) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	repo RoomViewRepo
}

func NewRoomQueries(repo RoomViewRepo) RoomQueries {
	return &roomQueriesImpl{repo: repo}
}

func (q *roomQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RoomView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *roomQueriesImpl) List(ctx context.Context, activeOnly bool) ([]*RoomView, error) {
	return q.repo.FindAll(ctx, activeOnly)
}
