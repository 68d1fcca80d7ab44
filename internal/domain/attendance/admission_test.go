//go:build unit

package attendance_test

import (
	"testing"
	"time"

	"office-scheduler/internal/domain/attendance"
	"office-scheduler/internal/domain/policy"
	"office-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var tokyo = mustLoad("Asia/Tokyo")

func mustLoad(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// Monday 2025-08-04, 09:00 office time.
func evalNow() time.Time {
	return time.Date(2025, 8, 4, 9, 0, 0, 0, tokyo)
}

func dayOn(y int, m time.Month, d int) attendance.Day {
	return attendance.Day{Year: y, Month: m, Date: d}
}

func reservationFor(userID uuid.UUID, day attendance.Day, status attendance.Status) attendance.Reservation {
	return attendance.Reservation{
		ID:     uuid.New(),
		Day:    day,
		UserID: userID,
		Status: status,
	}
}

func defaultRules() attendance.Rules {
	return attendance.Rules{Location: tokyo}
}

func TestEvaluate_Admit(t *testing.T) {
	userID := uuid.New()
	day := dayOn(2025, time.August, 5)

	rec, err := attendance.Evaluate(
		attendance.Candidate{Day: day, UserID: userID},
		nil,
		policy.Defaults(),
		evalNow(),
		defaultRules(),
	)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, day, rec.Day)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, attendance.StatusConfirmed, rec.Status)
}

func TestEvaluate_Deterministic(t *testing.T) {
	userID := uuid.New()
	day := dayOn(2025, time.August, 5)
	existing := []attendance.Reservation{
		reservationFor(userID, day, attendance.StatusConfirmed),
	}

	first, err1 := attendance.Evaluate(
		attendance.Candidate{Day: day, UserID: userID}, existing, policy.Defaults(), evalNow(), defaultRules())
	second, err2 := attendance.Evaluate(
		attendance.Candidate{Day: day, UserID: userID}, existing, policy.Defaults(), evalNow(), defaultRules())

	assert.Nil(t, first)
	assert.Nil(t, second)
	assert.ErrorIs(t, err1, errs.ErrDuplicateReservation)
	assert.ErrorIs(t, err2, errs.ErrDuplicateReservation)
}

func TestEvaluate_Duplicate(t *testing.T) {
	userID := uuid.New()
	day := dayOn(2025, time.August, 5)

	t.Run("same user same day is rejected", func(t *testing.T) {
		existing := []attendance.Reservation{
			reservationFor(userID, day, attendance.StatusConfirmed),
		}
		_, err := attendance.Evaluate(
			attendance.Candidate{Day: day, UserID: userID}, existing, policy.Defaults(), evalNow(), defaultRules())
		assert.ErrorIs(t, err, errs.ErrDuplicateReservation)
	})

	t.Run("cancelled reservation does not block", func(t *testing.T) {
		existing := []attendance.Reservation{
			reservationFor(userID, day, attendance.StatusCancelled),
		}
		_, err := attendance.Evaluate(
			attendance.Candidate{Day: day, UserID: userID}, existing, policy.Defaults(), evalNow(), defaultRules())
		assert.NoError(t, err)
	})

	t.Run("duplicate check precedes capacity check", func(t *testing.T) {
		// A full day that already contains the candidate's own reservation
		// must surface DuplicateReservation, not CapacityExceeded.
		cfg := policy.Defaults()
		existing := make([]attendance.Reservation, 0, cfg.MaxSpotsPerDay)
		existing = append(existing, reservationFor(userID, day, attendance.StatusConfirmed))
		for i := 1; i < cfg.MaxSpotsPerDay; i++ {
			existing = append(existing, reservationFor(uuid.New(), day, attendance.StatusConfirmed))
		}

		_, err := attendance.Evaluate(
			attendance.Candidate{Day: day, UserID: userID}, existing, cfg, evalNow(), defaultRules())
		assert.ErrorIs(t, err, errs.ErrDuplicateReservation)
	})
}

func TestEvaluate_Capacity(t *testing.T) {
	day := dayOn(2025, time.August, 4)
	cfg := policy.Defaults() // maxSpotsPerDay = 12

	full := make([]attendance.Reservation, 0, cfg.MaxSpotsPerDay)
	for i := 0; i < cfg.MaxSpotsPerDay; i++ {
		full = append(full, reservationFor(uuid.New(), day, attendance.StatusConfirmed))
	}

	t.Run("13th distinct user on a full day is rejected", func(t *testing.T) {
		_, err := attendance.Evaluate(
			attendance.Candidate{Day: day, UserID: uuid.New()}, full, cfg, evalNow(), defaultRules())
		assert.ErrorIs(t, err, errs.ErrCapacityExceeded)
	})

	t.Run("cancelled reservations free capacity", func(t *testing.T) {
		relaxed := make([]attendance.Reservation, len(full))
		copy(relaxed, full)
		relaxed[0].Status = attendance.StatusCancelled

		_, err := attendance.Evaluate(
			attendance.Candidate{Day: day, UserID: uuid.New()}, relaxed, cfg, evalNow(), defaultRules())
		assert.NoError(t, err)
	})

	t.Run("one spot below capacity admits", func(t *testing.T) {
		_, err := attendance.Evaluate(
			attendance.Candidate{Day: day, UserID: uuid.New()}, full[:cfg.MaxSpotsPerDay-1], cfg, evalNow(), defaultRules())
		assert.NoError(t, err)
	})
}

func TestEvaluate_CalendarPolicy(t *testing.T) {
	saturday := dayOn(2025, time.August, 9)
	holidayDay := dayOn(2025, time.August, 11)

	rules := attendance.Rules{
		Location: tokyo,
		IsHoliday: func(date time.Time) bool {
			return attendance.DayOf(date, tokyo) == holidayDay
		},
	}

	t.Run("weekend rejected when not allowed", func(t *testing.T) {
		_, err := attendance.Evaluate(
			attendance.Candidate{Day: saturday, UserID: uuid.New()}, nil, policy.Defaults(), evalNow(), rules)
		require.ErrorIs(t, err, errs.ErrPolicyViolation)

		var pe *attendance.PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, attendance.ReasonWeekend, pe.Reason)
	})

	t.Run("weekend policy is independent of capacity and duplicates", func(t *testing.T) {
		// Full day plus a weekend candidate still reports the weekend first
		// failing rule only when uniqueness and capacity pass; with an empty
		// existing set the policy violation is the sole outcome.
		_, err := attendance.Evaluate(
			attendance.Candidate{Day: saturday, UserID: uuid.New()}, nil, policy.Defaults(), evalNow(), rules)
		assert.ErrorIs(t, err, errs.ErrPolicyViolation)
	})

	t.Run("weekend admitted when allowed", func(t *testing.T) {
		cfg := policy.Defaults()
		cfg.AllowWeekendReservations = true
		_, err := attendance.Evaluate(
			attendance.Candidate{Day: saturday, UserID: uuid.New()}, nil, cfg, evalNow(), rules)
		assert.NoError(t, err)
	})

	t.Run("holiday rejected when not allowed", func(t *testing.T) {
		_, err := attendance.Evaluate(
			attendance.Candidate{Day: holidayDay, UserID: uuid.New()}, nil, policy.Defaults(), evalNow(), rules)
		require.ErrorIs(t, err, errs.ErrPolicyViolation)

		var pe *attendance.PolicyError
		require.ErrorAs(t, err, &pe)
		assert.Equal(t, attendance.ReasonHoliday, pe.Reason)
	})

	t.Run("holiday admitted when allowed", func(t *testing.T) {
		cfg := policy.Defaults()
		cfg.AllowHolidayReservations = true
		_, err := attendance.Evaluate(
			attendance.Candidate{Day: holidayDay, UserID: uuid.New()}, nil, cfg, evalNow(), rules)
		assert.NoError(t, err)
	})
}

func TestEvaluate_BookingWindow(t *testing.T) {
	now := evalNow() // Monday 2025-08-04 09:00 JST

	testCases := []struct {
		name   string
		day    attendance.Day
		mutate func(*policy.Config)
		errIs  error
		reason attendance.ViolationReason
	}{
		{
			name:   "day in the past",
			day:    dayOn(2025, time.August, 1),
			errIs:  errs.ErrPolicyViolation,
			reason: attendance.ReasonPastDay,
		},
		{
			name:   "beyond max advance window",
			day:    dayOn(2025, time.September, 4), // 31 days ahead
			errIs:  errs.ErrPolicyViolation,
			reason: attendance.ReasonTooFarAhead,
		},
		{
			name: "at max advance window boundary",
			day:  dayOn(2025, time.September, 3), // exactly 30 days ahead
		},
		{
			name: "same day with enough hours remaining",
			day:  dayOn(2025, time.August, 4), // 15h left before midnight, min 2h
		},
		{
			name: "same day below minimum notice",
			day:  dayOn(2025, time.August, 4),
			mutate: func(cfg *policy.Config) {
				cfg.MinAdvanceBookingHours = 16
			},
			errIs:  errs.ErrPolicyViolation,
			reason: attendance.ReasonTooLate,
		},
		{
			name: "zero minimum notice admits until midnight",
			day:  dayOn(2025, time.August, 4),
			mutate: func(cfg *policy.Config) {
				cfg.MinAdvanceBookingHours = 0
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := policy.Defaults()
			if tc.mutate != nil {
				tc.mutate(&cfg)
			}

			_, err := attendance.Evaluate(
				attendance.Candidate{Day: tc.day, UserID: uuid.New()}, nil, cfg, now, defaultRules())

			if tc.errIs == nil {
				assert.NoError(t, err)
				return
			}
			require.ErrorIs(t, err, tc.errIs)
			var pe *attendance.PolicyError
			require.ErrorAs(t, err, &pe)
			assert.Equal(t, tc.reason, pe.Reason)
		})
	}
}
