//go:build unit || e2e

package builder

import (
	"time"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingBuilder struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	RoomName  string
	UserID    uuid.UUID
	Title     string
	StartTime time.Time
	EndTime   time.Time
	Now       time.Time
}

func NewBookingBuilder() *BookingBuilder {
	start := time.Date(2025, time.September, 1, 10, 0, 0, 0, time.UTC)
	return &BookingBuilder{
		ID:        uuid.New(),
		RoomID:    uuid.New(),
		RoomName:  "Conference Room A",
		UserID:    uuid.New(),
		Title:     "Weekly sync",
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		Now:       time.Date(2025, time.August, 25, 9, 0, 0, 0, time.UTC),
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) BuildBooking() *meetingroom.Booking {
	return &meetingroom.Booking{
		ID:        b.ID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		Title:     b.Title,
		Slot:      meetingroom.ReconstructTimeSlot(b.StartTime, b.EndTime),
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *BookingBuilder) BuildView() *queries.BookingView {
	return &queries.BookingView{
		ID:        b.ID,
		RoomID:    b.RoomID,
		RoomName:  b.RoomName,
		UserID:    b.UserID,
		Title:     b.Title,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *BookingBuilder) BuildCreateRequestBody() map[string]any {
	return map[string]any{
		"room_id":    b.RoomID.String(),
		"title":      b.Title,
		"start_time": b.StartTime.Format(time.RFC3339),
		"end_time":   b.EndTime.Format(time.RFC3339),
	}
}
