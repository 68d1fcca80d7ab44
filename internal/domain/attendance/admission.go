package attendance

import (
	"time"

	"office-scheduler/internal/domain/policy"
	"office-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// ViolationReason is the machine-readable code carried by a policy rejection.
type ViolationReason string

const (
	ReasonWeekend     ViolationReason = "weekend_not_allowed"
	ReasonHoliday     ViolationReason = "holiday_not_allowed"
	ReasonPastDay     ViolationReason = "day_in_past"
	ReasonTooFarAhead ViolationReason = "beyond_advance_window"
	ReasonTooLate     ViolationReason = "below_minimum_notice"
)

type PolicyError struct {
	Reason ViolationReason
}

func (e *PolicyError) Error() string {
	return "policy violation: " + string(e.Reason)
}

func (e *PolicyError) Is(target error) bool {
	return target == errs.ErrPolicyViolation
}

// Rules bundles the calendar context the engine cannot derive from its inputs:
// the office timezone and the pluggable holiday predicate.
type Rules struct {
	Location  *time.Location
	IsHoliday func(date time.Time) bool
}

// Evaluate decides whether a candidate attendance reservation may be admitted
// given the non-cancelled reservations already recorded for that day.
//
// The rule order is fixed so an invalid candidate always surfaces the same
// first-failing reason: uniqueness, capacity, calendar policy, booking window.
// Evaluate is a pure decision function; the caller owns the read-then-write
// sequence and the authoritative write-time constraint.
func Evaluate(c Candidate, existing []Reservation, cfg policy.Config, now time.Time, rules Rules) (*Reservation, error) {
	loc := rules.Location
	if loc == nil {
		loc = time.UTC
	}

	active := 0
	for i := range existing {
		if !existing[i].IsActive() {
			continue
		}
		if existing[i].UserID == c.UserID {
			return nil, errs.ErrDuplicateReservation
		}
		active++
	}

	if active >= cfg.MaxSpotsPerDay {
		return nil, errs.ErrCapacityExceeded
	}

	if c.Day.IsWeekend(loc) && !cfg.AllowWeekendReservations {
		return nil, &PolicyError{Reason: ReasonWeekend}
	}
	if rules.IsHoliday != nil && rules.IsHoliday(c.Day.Start(loc)) && !cfg.AllowHolidayReservations {
		return nil, &PolicyError{Reason: ReasonHoliday}
	}

	today := DayOf(now, loc)
	ahead := today.DaysUntil(c.Day, loc)
	if ahead < 0 {
		return nil, &PolicyError{Reason: ReasonPastDay}
	}
	if ahead > cfg.MaxAdvanceBookingDays {
		return nil, &PolicyError{Reason: ReasonTooFarAhead}
	}
	// The minimum notice is measured against the end of the candidate day: a
	// same-day reservation stays admittable while at least that many hours of
	// the office day remain.
	if cfg.MinAdvanceBookingHours > 0 {
		notice := time.Duration(cfg.MinAdvanceBookingHours) * time.Hour
		if c.Day.End(loc).Sub(now) < notice {
			return nil, &PolicyError{Reason: ReasonTooLate}
		}
	}

	return &Reservation{
		ID:     uuid.New(),
		Day:    c.Day,
		UserID: c.UserID,
		TeamID: c.TeamID,
		Status: StatusConfirmed,
	}, nil
}
