package commands

import (
	"context"
	"log/slog"
	"time"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/infra"
	"office-scheduler/internal/pkg/errs"
	"office-scheduler/internal/pkg/jwt"
	"office-scheduler/internal/pkg/patch"
	"office-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrBookingNotOwned = errs.New("booking not owned by user")

type RequestBookingRequest struct {
	RoomID      uuid.UUID
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
}

type UpdateBookingRequest struct {
	Title       *string
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
}

type BookingCommands interface {
	RequestBooking(ctx context.Context, req RequestBookingRequest, userID uuid.UUID) (*meetingroom.Booking, error)
	UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest, actorID uuid.UUID, actorRole jwt.Role) (*meetingroom.Booking, error)
	CancelBooking(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole jwt.Role) error
}

type bookingUseCaseImpl struct {
	uow shared.UnitOfWork
}

func NewBookingUseCase(uow shared.UnitOfWork) BookingCommands {
	return &bookingUseCaseImpl{uow: uow}
}

// RequestBooking admits a booking against the room's current schedule. The
// exclusion constraint on (room_id, tstzrange) is the authoritative overlap
// guard; when it fires the cycle is retried once so the re-read reports the
// conflicting bookings instead of a raw constraint violation.
func (uc *bookingUseCaseImpl) RequestBooking(ctx context.Context, req RequestBookingRequest, userID uuid.UUID) (*meetingroom.Booking, error) {
	candidate := meetingroom.Candidate{
		RoomID:      req.RoomID,
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
	}

	const maxAttempts = 2
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		created, err := uc.admit(ctx, candidate, uuid.Nil)
		if err == nil {
			return created, nil
		}
		if infra.IsKind(err, infra.KindConflict) && attempt < maxAttempts-1 {
			slog.Info("booking admission lost write race, retrying",
				"room_id", req.RoomID,
				"user_id", userID)
			lastErr = err
			continue
		}
		return nil, mapRepoError(err)
	}
	return nil, mapRepoError(lastErr)
}

func (uc *bookingUseCaseImpl) UpdateBooking(ctx context.Context, id uuid.UUID, req UpdateBookingRequest, actorID uuid.UUID, actorRole jwt.Role) (*meetingroom.Booking, error) {
	var updated *meetingroom.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if actorRole != jwt.RoleAdmin && current.UserID != actorID {
			return ErrBookingNotOwned
		}

		candidate := meetingroom.Candidate{
			RoomID:      current.RoomID,
			UserID:      current.UserID,
			Title:       patch.Coalesce(req.Title, current.Title),
			Description: current.Description,
			StartTime:   patch.Coalesce(req.StartTime, current.Slot.Start()),
			EndTime:     patch.Coalesce(req.EndTime, current.Slot.End()),
		}
		if req.Description != nil {
			candidate.Description = req.Description
		}

		existing, err := tx.Bookings().FindByRoom(ctx, current.RoomID)
		if err != nil {
			return err
		}

		admitted, err := meetingroom.Evaluate(candidate, meetingroom.ExcludeBooking(existing, id))
		if err != nil {
			return err
		}

		moved := *current
		moved.Title = admitted.Title
		moved.Description = admitted.Description
		moved.Slot = admitted.Slot
		updated, err = tx.Bookings().Update(ctx, &moved)
		return err
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return updated, nil
}

func (uc *bookingUseCaseImpl) CancelBooking(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole jwt.Role) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Bookings().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if actorRole != jwt.RoleAdmin && current.UserID != actorID {
			return ErrBookingNotOwned
		}
		return tx.Bookings().Delete(ctx, id)
	})
	return mapRepoError(err)
}

func (uc *bookingUseCaseImpl) admit(ctx context.Context, candidate meetingroom.Candidate, excludeID uuid.UUID) (*meetingroom.Booking, error) {
	var created *meetingroom.Booking
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		room, err := tx.Rooms().FindByID(ctx, candidate.RoomID)
		if err != nil {
			return err
		}
		if !room.Active {
			return errs.ErrRoomInactive
		}

		existing, err := tx.Bookings().FindByRoom(ctx, candidate.RoomID)
		if err != nil {
			return err
		}

		admitted, err := meetingroom.Evaluate(candidate, meetingroom.ExcludeBooking(existing, excludeID))
		if err != nil {
			return err
		}

		created, err = tx.Bookings().Create(ctx, admitted)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
