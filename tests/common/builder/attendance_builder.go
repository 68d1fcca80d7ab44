//go:build unit || e2e

package builder

import (
	"time"

	"office-scheduler/internal/domain/attendance"
	"office-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type AttendanceBuilder struct {
	ID     uuid.UUID
	Day    attendance.Day
	UserID uuid.UUID
	TeamID *uuid.UUID
	Status attendance.Status
	Now    time.Time
}

func NewAttendanceBuilder() *AttendanceBuilder {
	return &AttendanceBuilder{
		ID:     uuid.New(),
		Day:    attendance.Day{Year: 2025, Month: time.September, Date: 1},
		UserID: uuid.New(),
		Status: attendance.StatusConfirmed,
		Now:    time.Date(2025, time.August, 25, 9, 0, 0, 0, time.UTC),
	}
}

func (b *AttendanceBuilder) With(mutate func(*AttendanceBuilder)) *AttendanceBuilder {
	mutate(b)
	return b
}

func (b *AttendanceBuilder) BuildReservation() *attendance.Reservation {
	return &attendance.Reservation{
		ID:        b.ID,
		Day:       b.Day,
		UserID:    b.UserID,
		TeamID:    b.TeamID,
		Status:    b.Status,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *AttendanceBuilder) BuildView() *queries.AttendanceView {
	return &queries.AttendanceView{
		ID:        b.ID,
		Day:       b.Day.String(),
		UserID:    b.UserID,
		TeamID:    b.TeamID,
		Status:    string(b.Status),
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *AttendanceBuilder) BuildCreateRequestBody() map[string]any {
	body := map[string]any{
		"day": b.Day.String(),
	}
	if b.TeamID != nil {
		body["team_id"] = b.TeamID.String()
	}
	return body
}
