package commands

import (
	"context"
	"log/slog"

	"office-scheduler/internal/domain/attendance"
	"office-scheduler/internal/infra"
	"office-scheduler/internal/pkg/clock"
	"office-scheduler/internal/pkg/errs"
	"office-scheduler/internal/pkg/jwt"
	"office-scheduler/internal/usecase/shared"

	"github.com/google/uuid"
)

var ErrNotReservationOwner = errs.New("reservation not owned by user")

type RequestAttendanceRequest struct {
	Day    attendance.Day
	TeamID *uuid.UUID
}

type UpdateAttendanceRequest struct {
	Day attendance.Day
}

type AttendanceCommands interface {
	RequestAttendance(ctx context.Context, req RequestAttendanceRequest, userID uuid.UUID) (*attendance.Reservation, error)
	UpdateAttendance(ctx context.Context, id uuid.UUID, req UpdateAttendanceRequest, actorID uuid.UUID, actorRole jwt.Role) (*attendance.Reservation, error)
	CancelAttendance(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole jwt.Role) error
	// SweepInactive cancels pending reservations older than the configured
	// inactivity window and reports how many were swept.
	SweepInactive(ctx context.Context) (int, error)
}

type attendanceUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	rules attendance.Rules
}

func NewAttendanceUseCase(uow shared.UnitOfWork, clk clock.Clock, rules attendance.Rules) AttendanceCommands {
	return &attendanceUseCaseImpl{uow: uow, clock: clk, rules: rules}
}

// RequestAttendance runs the read-evaluate-write cycle inside one transaction.
// The partial unique index on (reservation_day, user_id) is the authoritative
// duplicate guard; when it fires the whole cycle is retried once so the
// re-read surfaces the domain error instead of a raw constraint violation.
func (uc *attendanceUseCaseImpl) RequestAttendance(ctx context.Context, req RequestAttendanceRequest, userID uuid.UUID) (*attendance.Reservation, error) {
	candidate := attendance.Candidate{
		Day:    req.Day,
		UserID: userID,
		TeamID: req.TeamID,
	}

	const maxAttempts = 2
	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		created, err := uc.admit(ctx, candidate, uuid.Nil)
		if err == nil {
			return created, nil
		}
		if infra.IsKind(err, infra.KindDuplicateKey) && attempt < maxAttempts-1 {
			slog.Info("attendance admission lost write race, retrying",
				"user_id", userID,
				"day", req.Day.String())
			lastErr = err
			continue
		}
		return nil, mapRepoError(err)
	}
	return nil, mapRepoError(lastErr)
}

func (uc *attendanceUseCaseImpl) UpdateAttendance(ctx context.Context, id uuid.UUID, req UpdateAttendanceRequest, actorID uuid.UUID, actorRole jwt.Role) (*attendance.Reservation, error) {
	var updated *attendance.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Attendance().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if actorRole != jwt.RoleAdmin && current.UserID != actorID {
			return ErrNotReservationOwner
		}
		if !current.IsActive() {
			return errs.ErrNotFound
		}

		cfg, err := tx.SystemConfig().Ensure(ctx)
		if err != nil {
			return err
		}
		existing, err := tx.Attendance().FindActiveByDay(ctx, req.Day)
		if err != nil {
			return err
		}

		candidate := attendance.Candidate{Day: req.Day, UserID: current.UserID, TeamID: current.TeamID}
		admitted, err := attendance.Evaluate(candidate, excludeReservation(existing, id), cfg, uc.clock.Now(), uc.rules)
		if err != nil {
			return err
		}

		moved := *current
		moved.Day = admitted.Day
		updated, err = tx.Attendance().Update(ctx, &moved)
		return err
	})
	if err != nil {
		return nil, mapRepoError(err)
	}
	return updated, nil
}

func (uc *attendanceUseCaseImpl) CancelAttendance(ctx context.Context, id uuid.UUID, actorID uuid.UUID, actorRole jwt.Role) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		current, err := tx.Attendance().FindByID(ctx, id)
		if err != nil {
			return err
		}
		if actorRole != jwt.RoleAdmin && current.UserID != actorID {
			return ErrNotReservationOwner
		}
		return tx.Attendance().Cancel(ctx, id)
	})
	return mapRepoError(err)
}

func (uc *attendanceUseCaseImpl) SweepInactive(ctx context.Context) (int, error) {
	swept := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.SystemConfig().Ensure(ctx)
		if err != nil {
			return err
		}
		if !cfg.AutoCancelInactiveReservations {
			return nil
		}

		cutoff := uc.clock.Now().Add(-cfg.InactivityWindow())
		stale, err := tx.Attendance().FindStalePending(ctx, cutoff)
		if err != nil {
			return err
		}
		for i := range stale {
			if err := tx.Attendance().Cancel(ctx, stale[i].ID); err != nil {
				return err
			}
			swept++
		}
		return nil
	})
	if err != nil {
		return 0, mapRepoError(err)
	}
	return swept, nil
}

// admit performs one read-evaluate-write cycle. excludeID skips the caller's
// own record when re-admitting a moved reservation; uuid.Nil excludes nothing.
func (uc *attendanceUseCaseImpl) admit(ctx context.Context, candidate attendance.Candidate, excludeID uuid.UUID) (*attendance.Reservation, error) {
	var created *attendance.Reservation
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		cfg, err := tx.SystemConfig().Ensure(ctx)
		if err != nil {
			return err
		}
		existing, err := tx.Attendance().FindActiveByDay(ctx, candidate.Day)
		if err != nil {
			return err
		}

		admitted, err := attendance.Evaluate(candidate, excludeReservation(existing, excludeID), cfg, uc.clock.Now(), uc.rules)
		if err != nil {
			return err
		}

		created, err = tx.Attendance().Create(ctx, admitted)
		return err
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func excludeReservation(recs []attendance.Reservation, id uuid.UUID) []attendance.Reservation {
	if id == uuid.Nil {
		return recs
	}
	out := make([]attendance.Reservation, 0, len(recs))
	for i := range recs {
		if recs[i].ID != id {
			out = append(out, recs[i])
		}
	}
	return out
}

// mapRepoError translates infrastructure error kinds into the domain taxonomy
// so handlers never see storage details. Domain errors pass through untouched.
func mapRepoError(err error) error {
	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, errs.ErrNotFound)
	case infra.IsKind(err, infra.KindDuplicateKey):
		return errs.Mark(err, errs.ErrDuplicateReservation)
	case infra.IsKind(err, infra.KindConflict):
		return errs.Mark(err, errs.ErrSchedulingConflict)
	case infra.IsKind(err, infra.KindDBFailure):
		return errs.Mark(err, errs.ErrPersistenceFailure)
	}
	return err
}
