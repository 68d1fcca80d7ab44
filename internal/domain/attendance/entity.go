package attendance

import (
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusConfirmed Status = "confirmed"
	StatusPending   Status = "pending"
	StatusCancelled Status = "cancelled"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusConfirmed, StatusPending, StatusCancelled:
		return true
	default:
		return false
	}
}

// Reservation is one user's claim on one office slot for one calendar day.
// Records are flat, already-resolved snapshots: the admission engine never
// reaches into a live object graph.
type Reservation struct {
	ID        uuid.UUID
	Day       Day
	UserID    uuid.UUID
	TeamID    *uuid.UUID
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (r *Reservation) IsActive() bool {
	return r.Status != StatusCancelled
}

// Candidate is a proposed reservation not yet persisted.
type Candidate struct {
	Day    Day
	UserID uuid.UUID
	TeamID *uuid.UUID
}
