package queries

import (
	"context"

	"office-scheduler/internal/domain/attendance"

	"github.com/google/uuid"
)

const defaultListLimit = 50

type AttendanceQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AttendanceView, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*AttendanceView, error)
	// DayOccupancy returns the day's active reservations together with the
	// remaining capacity under the current policy.
	DayOccupancy(ctx context.Context, day attendance.Day) (*DayOccupancyView, error)
}

type AttendanceViewRepo interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AttendanceView, error)
	FindByUserID(ctx context.Context, userID uuid.UUID, limit int32) ([]*AttendanceView, error)
	FindActiveByDay(ctx context.Context, day attendance.Day) ([]*AttendanceView, error)
}

type ConfigViewRepo interface {
	Find(ctx context.Context) (*ConfigView, error)
}

type attendanceQueriesImpl struct {
	repo    AttendanceViewRepo
	cfgRepo ConfigViewRepo
}

func NewAttendanceQueries(repo AttendanceViewRepo, cfgRepo ConfigViewRepo) AttendanceQueries {
	return &attendanceQueriesImpl{repo: repo, cfgRepo: cfgRepo}
}

func (q *attendanceQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AttendanceView, error) {
	return q.repo.FindByID(ctx, id)
}

func (q *attendanceQueriesImpl) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]*AttendanceView, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	return q.repo.FindByUserID(ctx, userID, int32(limit))
}

func (q *attendanceQueriesImpl) DayOccupancy(ctx context.Context, day attendance.Day) (*DayOccupancyView, error) {
	cfg, err := q.cfgRepo.Find(ctx)
	if err != nil {
		return nil, err
	}
	views, err := q.repo.FindActiveByDay(ctx, day)
	if err != nil {
		return nil, err
	}

	left := cfg.MaxSpotsPerDay - len(views)
	if left < 0 {
		left = 0
	}
	if views == nil {
		views = []*AttendanceView{}
	}
	return &DayOccupancyView{
		Day:            day.String(),
		Reservations:   views,
		MaxSpotsPerDay: cfg.MaxSpotsPerDay,
		SpotsLeft:      left,
	}, nil
}
