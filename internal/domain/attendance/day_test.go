//go:build unit

package attendance_test

import (
	"testing"
	"time"

	"office-scheduler/internal/domain/attendance"

	"github.com/stretchr/testify/assert"
)

func TestDayOf_TimezoneBoundary(t *testing.T) {
	// 2025-08-04 23:30 JST is 14:30 UTC the same day; 2025-08-04 15:30 UTC
	// is already 00:30 on the 5th in Tokyo. The office timezone decides.
	lateJST := time.Date(2025, 8, 4, 23, 30, 0, 0, tokyo)
	assert.Equal(t, attendance.Day{Year: 2025, Month: time.August, Date: 4}, attendance.DayOf(lateJST, tokyo))
	assert.Equal(t, attendance.Day{Year: 2025, Month: time.August, Date: 4}, attendance.DayOf(lateJST.UTC(), tokyo))

	pastMidnightJST := time.Date(2025, 8, 4, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, attendance.Day{Year: 2025, Month: time.August, Date: 5}, attendance.DayOf(pastMidnightJST, tokyo))
	assert.Equal(t, attendance.Day{Year: 2025, Month: time.August, Date: 4}, attendance.DayOf(pastMidnightJST, time.UTC))
}

func TestDay_Weekend(t *testing.T) {
	saturday := attendance.Day{Year: 2025, Month: time.August, Date: 9}
	sunday := attendance.Day{Year: 2025, Month: time.August, Date: 10}
	monday := attendance.Day{Year: 2025, Month: time.August, Date: 11}

	assert.True(t, saturday.IsWeekend(tokyo))
	assert.True(t, sunday.IsWeekend(tokyo))
	assert.False(t, monday.IsWeekend(tokyo))
}

func TestDay_DaysUntil(t *testing.T) {
	base := attendance.Day{Year: 2025, Month: time.August, Date: 4}

	assert.Equal(t, 0, base.DaysUntil(base, tokyo))
	assert.Equal(t, 1, base.DaysUntil(attendance.Day{Year: 2025, Month: time.August, Date: 5}, tokyo))
	assert.Equal(t, 31, base.DaysUntil(attendance.Day{Year: 2025, Month: time.September, Date: 4}, tokyo))
	assert.Equal(t, -3, base.DaysUntil(attendance.Day{Year: 2025, Month: time.August, Date: 1}, tokyo))
}

func TestDay_DaysUntil_DST(t *testing.T) {
	// US DST spring-forward on 2025-03-09 shortens the day to 23 hours;
	// the calendar distance must still be whole days.
	ny, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	before := attendance.Day{Year: 2025, Month: time.March, Date: 8}
	after := attendance.Day{Year: 2025, Month: time.March, Date: 10}
	assert.Equal(t, 2, before.DaysUntil(after, ny))
}

func TestDay_StartEnd(t *testing.T) {
	d := attendance.Day{Year: 2025, Month: time.August, Date: 4}

	assert.Equal(t, time.Date(2025, 8, 4, 0, 0, 0, 0, tokyo), d.Start(tokyo))
	assert.Equal(t, time.Date(2025, 8, 5, 0, 0, 0, 0, tokyo), d.End(tokyo))
	assert.Equal(t, "2025-08-04", d.String())
}
