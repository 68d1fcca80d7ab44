package queries

import (
	"time"

	"github.com/google/uuid"
)

// Read models (DTO for read side)
type AttendanceView struct {
	ID        uuid.UUID  `json:"id"`
	Day       string     `json:"day"`
	UserID    uuid.UUID  `json:"user_id"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// DayOccupancyView pairs a day's reservations with the remaining capacity so
// clients need one round trip to render the day.
type DayOccupancyView struct {
	Day            string            `json:"day"`
	Reservations   []*AttendanceView `json:"reservations"`
	MaxSpotsPerDay int               `json:"max_spots_per_day"`
	SpotsLeft      int               `json:"spots_left"`
}

type BookingView struct {
	ID          uuid.UUID  `json:"id"`
	RoomID      uuid.UUID  `json:"room_id"`
	RoomName    string     `json:"room_name"`
	UserID      uuid.UUID  `json:"user_id"`
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	StartTime   time.Time  `json:"start_time"`
	EndTime     time.Time  `json:"end_time"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type RoomView struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ConfigView struct {
	MaxSpotsPerDay                 int       `json:"max_spots_per_day"`
	AllowWeekendReservations       bool      `json:"allow_weekend_reservations"`
	AllowHolidayReservations       bool      `json:"allow_holiday_reservations"`
	MaxAdvanceBookingDays          int       `json:"max_advance_booking_days"`
	MinAdvanceBookingHours         int       `json:"min_advance_booking_hours"`
	AutoCancelInactiveReservations bool      `json:"auto_cancel_inactive_reservations"`
	InactiveReservationHours       int       `json:"inactive_reservation_hours"`
	UpdatedAt                      time.Time `json:"updated_at"`
}
