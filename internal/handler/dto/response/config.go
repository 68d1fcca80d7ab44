package response

import (
	"time"

	"office-scheduler/internal/domain/policy"
)

type ConfigResponse struct {
	MaxSpotsPerDay                 int       `json:"maxSpotsPerDay"`
	AllowWeekendReservations       bool      `json:"allowWeekendReservations"`
	AllowHolidayReservations       bool      `json:"allowHolidayReservations"`
	MaxAdvanceBookingDays          int       `json:"maxAdvanceBookingDays"`
	MinAdvanceBookingHours         int       `json:"minAdvanceBookingHours"`
	AutoCancelInactiveReservations bool      `json:"autoCancelInactiveReservations"`
	InactiveReservationHours       int       `json:"inactiveReservationHours"`
	UpdatedAt                      time.Time `json:"updatedAt"`
}

func FromConfig(cfg policy.Config) *ConfigResponse {
	return &ConfigResponse{
		MaxSpotsPerDay:                 cfg.MaxSpotsPerDay,
		AllowWeekendReservations:       cfg.AllowWeekendReservations,
		AllowHolidayReservations:       cfg.AllowHolidayReservations,
		MaxAdvanceBookingDays:          cfg.MaxAdvanceBookingDays,
		MinAdvanceBookingHours:         cfg.MinAdvanceBookingHours,
		AutoCancelInactiveReservations: cfg.AutoCancelInactiveReservations,
		InactiveReservationHours:       cfg.InactiveReservationHours,
		UpdatedAt:                      cfg.UpdatedAt,
	}
}
