//go:build unit

package holiday_test

import (
	"testing"
	"time"

	"office-scheduler/internal/pkg/holiday"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStaticOracle(t *testing.T) {
	oracle, err := holiday.NewStaticOracle([]string{"2025-08-15", "12-25", ""})
	require.NoError(t, err)

	testCases := []struct {
		name string
		date string
		want bool
	}{
		{name: "exact date matches", date: "2025-08-15", want: true},
		{name: "exact date other year does not match", date: "2026-08-15", want: false},
		{name: "recurring matches any year", date: "2025-12-25", want: true},
		{name: "recurring matches another year", date: "2030-12-25", want: true},
		{name: "ordinary day", date: "2025-08-14", want: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := time.Parse("2006-01-02", tc.date)
			require.NoError(t, err)
			assert.Equal(t, tc.want, oracle.IsHoliday(d))
		})
	}
}

func TestStaticOracle_InvalidEntry(t *testing.T) {
	_, err := holiday.NewStaticOracle([]string{"next tuesday"})
	require.Error(t, err)
}

func TestNone(t *testing.T) {
	assert.False(t, holiday.None{}.IsHoliday(time.Now()))
}
