package policy

import (
	"time"

	"office-scheduler/internal/pkg/errs"
	"office-scheduler/internal/pkg/patch"
)

var ErrInvalidConfig = errs.New("invalid system config")

// Default policy knobs, materialized on first read when no config row exists.
const (
	DefaultMaxSpotsPerDay           = 12
	DefaultMaxAdvanceBookingDays    = 30
	DefaultMinAdvanceBookingHours   = 2
	DefaultInactiveReservationHours = 24
)

// Config is the singleton policy snapshot consumed by attendance admission.
// It is passed explicitly per request, never read from ambient global state.
type Config struct {
	MaxSpotsPerDay                 int
	AllowWeekendReservations       bool
	AllowHolidayReservations       bool
	MaxAdvanceBookingDays          int
	MinAdvanceBookingHours         int
	AutoCancelInactiveReservations bool
	InactiveReservationHours       int
	UpdatedAt                      time.Time
}

func Defaults() Config {
	return Config{
		MaxSpotsPerDay:                 DefaultMaxSpotsPerDay,
		AllowWeekendReservations:       false,
		AllowHolidayReservations:       false,
		MaxAdvanceBookingDays:          DefaultMaxAdvanceBookingDays,
		MinAdvanceBookingHours:         DefaultMinAdvanceBookingHours,
		AutoCancelInactiveReservations: true,
		InactiveReservationHours:       DefaultInactiveReservationHours,
	}
}

// Patch carries a partial update; nil fields keep the current value.
type Patch struct {
	MaxSpotsPerDay                 *int
	AllowWeekendReservations       *bool
	AllowHolidayReservations       *bool
	MaxAdvanceBookingDays          *int
	MinAdvanceBookingHours         *int
	AutoCancelInactiveReservations *bool
	InactiveReservationHours       *int
}

// Apply merges p into c and validates the result. Range sanity only: enough
// to keep the admission arithmetic well-defined.
func (c Config) Apply(p Patch) (Config, error) {
	merged := Config{
		MaxSpotsPerDay:                 patch.Coalesce(p.MaxSpotsPerDay, c.MaxSpotsPerDay),
		AllowWeekendReservations:       patch.Coalesce(p.AllowWeekendReservations, c.AllowWeekendReservations),
		AllowHolidayReservations:       patch.Coalesce(p.AllowHolidayReservations, c.AllowHolidayReservations),
		MaxAdvanceBookingDays:          patch.Coalesce(p.MaxAdvanceBookingDays, c.MaxAdvanceBookingDays),
		MinAdvanceBookingHours:         patch.Coalesce(p.MinAdvanceBookingHours, c.MinAdvanceBookingHours),
		AutoCancelInactiveReservations: patch.Coalesce(p.AutoCancelInactiveReservations, c.AutoCancelInactiveReservations),
		InactiveReservationHours:       patch.Coalesce(p.InactiveReservationHours, c.InactiveReservationHours),
	}
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

func (c Config) Validate() error {
	if c.MaxSpotsPerDay < 1 {
		return errs.Mark(errs.Newf("maxSpotsPerDay must be >= 1, got %d", c.MaxSpotsPerDay), ErrInvalidConfig)
	}
	if c.MaxAdvanceBookingDays < 0 {
		return errs.Mark(errs.Newf("maxAdvanceBookingDays must be >= 0, got %d", c.MaxAdvanceBookingDays), ErrInvalidConfig)
	}
	if c.MinAdvanceBookingHours < 0 {
		return errs.Mark(errs.Newf("minAdvanceBookingHours must be >= 0, got %d", c.MinAdvanceBookingHours), ErrInvalidConfig)
	}
	if c.InactiveReservationHours < 1 {
		return errs.Mark(errs.Newf("inactiveReservationHours must be >= 1, got %d", c.InactiveReservationHours), ErrInvalidConfig)
	}
	return nil
}

// InactivityWindow is the age after which a pending reservation is swept.
func (c Config) InactivityWindow() time.Duration {
	return time.Duration(c.InactiveReservationHours) * time.Hour
}
