package meetingroom

import (
	"time"

	"github.com/google/uuid"
)

// Room is a bookable resource. Inactive rooms are not offered for new
// bookings but keep their historical bookings.
type Room struct {
	ID        uuid.UUID
	Name      string
	Capacity  int
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Booking is an exclusive reservation of a room for a half-open interval.
type Booking struct {
	ID          uuid.UUID
	RoomID      uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	Slot        TimeSlot
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Candidate is a proposed booking not yet persisted.
type Candidate struct {
	RoomID      uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description *string
	StartTime   time.Time
	EndTime     time.Time
}
