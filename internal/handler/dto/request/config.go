package request

import (
	"office-scheduler/internal/domain/policy"
)

// UpdateConfigRequest is a partial update; omitted fields keep their value.
type UpdateConfigRequest struct {
	MaxSpotsPerDay                 *int  `json:"max_spots_per_day,omitempty"`
	AllowWeekendReservations       *bool `json:"allow_weekend_reservations,omitempty"`
	AllowHolidayReservations       *bool `json:"allow_holiday_reservations,omitempty"`
	MaxAdvanceBookingDays          *int  `json:"max_advance_booking_days,omitempty"`
	MinAdvanceBookingHours         *int  `json:"min_advance_booking_hours,omitempty"`
	AutoCancelInactiveReservations *bool `json:"auto_cancel_inactive_reservations,omitempty"`
	InactiveReservationHours       *int  `json:"inactive_reservation_hours,omitempty"`
}

func (r UpdateConfigRequest) ToPatch() policy.Patch {
	return policy.Patch{
		MaxSpotsPerDay:                 r.MaxSpotsPerDay,
		AllowWeekendReservations:       r.AllowWeekendReservations,
		AllowHolidayReservations:       r.AllowHolidayReservations,
		MaxAdvanceBookingDays:          r.MaxAdvanceBookingDays,
		MinAdvanceBookingHours:         r.MinAdvanceBookingHours,
		AutoCancelInactiveReservations: r.AutoCancelInactiveReservations,
		InactiveReservationHours:       r.InactiveReservationHours,
	}
}
