package commands

import (
	"context"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/pkg/errs"
	"office-scheduler/internal/pkg/patch"
	"office-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrInvalidRoom = errs.New("invalid room")

type CreateRoomRequest struct {
	Name     string
	Capacity int
}

type UpdateRoomRequest struct {
	Name     *string
	Capacity *int
	Active   *bool
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, req CreateRoomRequest) (*meetingroom.Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, req UpdateRoomRequest) (*meetingroom.Room, error)
	// DeactivateRoom hides the room from new bookings. Existing bookings stay.
	DeactivateRoom(ctx context.Context, id uuid.UUID) (*meetingroom.Room, error)
}

type roomUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewRoomUseCase(uow shared.UnitOfWork) RoomCommands {
	return &roomUseCaseImpl{uow: uow}
}

func (uc *roomUseCaseImpl) CreateRoom(ctx context.Context, req CreateRoomRequest) (*meetingroom.Room, error) {
	if err := validateRoom(req.Name, req.Capacity); err != nil {
		return nil, err
	}

	var created *meetingroom.Room
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room := &meetingroom.Room{
			ID:       uuid.New(),
			Name:     req.Name,
			Capacity: req.Capacity,
			Active:   true,
		}
		var err error
		created, err = tx.Rooms().Create(ctx, room)
		return err
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return created, nil
}

func (uc *roomUseCaseImpl) UpdateRoom(ctx context.Context, id uuid.UUID, req UpdateRoomRequest) (*meetingroom.Room, error) {
	var updated *meetingroom.Room
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Rooms().FindByID(ctx, id)
		if err != nil {
			return err
		}

		merged := *current
		merged.Name = patch.Coalesce(req.Name, current.Name)
		merged.Capacity = patch.Coalesce(req.Capacity, current.Capacity)
		merged.Active = patch.Coalesce(req.Active, current.Active)
		if err := validateRoom(merged.Name, merged.Capacity); err != nil {
			return err
		}

		updated, err = tx.Rooms().Update(ctx, &merged)
		return err
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return updated, nil
}

func (uc *roomUseCaseImpl) DeactivateRoom(ctx context.Context, id uuid.UUID) (*meetingroom.Room, error) {
	active := false
	return uc.UpdateRoom(ctx, id, UpdateRoomRequest{Active: &active})
}

func validateRoom(name string, capacity int) error {
	if name == "" {
		return errs.Mark(errs.New("room name must not be empty"), ErrInvalidRoom)
	}
	if capacity < 1 {
		return errs.Mark(errs.Newf("room capacity must be >= 1, got %d", capacity), ErrInvalidRoom)
	}
	return nil
}
