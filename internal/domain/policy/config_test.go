//go:build unit

package policy_test

import (
	"testing"
	"time"

	"office-scheduler/internal/domain/policy"
	"office-scheduler/internal/pkg/ptr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := policy.Defaults()

	assert.Equal(t, 12, cfg.MaxSpotsPerDay)
	assert.False(t, cfg.AllowWeekendReservations)
	assert.False(t, cfg.AllowHolidayReservations)
	assert.Equal(t, 30, cfg.MaxAdvanceBookingDays)
	assert.Equal(t, 2, cfg.MinAdvanceBookingHours)
	assert.True(t, cfg.AutoCancelInactiveReservations)
	assert.Equal(t, 24, cfg.InactiveReservationHours)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_Apply(t *testing.T) {
	t.Run("nil fields keep current values", func(t *testing.T) {
		merged, err := policy.Defaults().Apply(policy.Patch{})
		require.NoError(t, err)
		assert.Equal(t, policy.Defaults(), merged)
	})

	t.Run("set fields override", func(t *testing.T) {
		merged, err := policy.Defaults().Apply(policy.Patch{
			MaxSpotsPerDay:           ptr.To(20),
			AllowWeekendReservations: ptr.To(true),
		})
		require.NoError(t, err)
		assert.Equal(t, 20, merged.MaxSpotsPerDay)
		assert.True(t, merged.AllowWeekendReservations)
		assert.Equal(t, 30, merged.MaxAdvanceBookingDays)
	})

	t.Run("rejects out-of-range values", func(t *testing.T) {
		testCases := []struct {
			name  string
			patch policy.Patch
		}{
			{name: "zero spots", patch: policy.Patch{MaxSpotsPerDay: ptr.To(0)}},
			{name: "negative advance days", patch: policy.Patch{MaxAdvanceBookingDays: ptr.To(-1)}},
			{name: "negative notice hours", patch: policy.Patch{MinAdvanceBookingHours: ptr.To(-2)}},
			{name: "zero inactivity hours", patch: policy.Patch{InactiveReservationHours: ptr.To(0)}},
		}
		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				_, err := policy.Defaults().Apply(tc.patch)
				assert.ErrorIs(t, err, policy.ErrInvalidConfig)
			})
		}
	})
}

func TestConfig_InactivityWindow(t *testing.T) {
	cfg := policy.Defaults()
	assert.Equal(t, 24*time.Hour, cfg.InactivityWindow())
}
