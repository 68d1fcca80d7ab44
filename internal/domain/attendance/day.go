package attendance

import (
	"math"
	"time"
)

// Day is a calendar day in the office's configured timezone. All "same day"
// comparisons for attendance go through this type; callers must not compare
// raw instants or ISO-string prefixes.
type Day struct {
	Year  int
	Month time.Month
	Date  int
}

// DayOf converts an instant to the calendar day it falls on in loc.
func DayOf(t time.Time, loc *time.Location) Day {
	y, m, d := t.In(loc).Date()
	return Day{Year: y, Month: m, Date: d}
}

// Start returns midnight at the beginning of the day in loc.
func (d Day) Start(loc *time.Location) time.Time {
	return time.Date(d.Year, d.Month, d.Date, 0, 0, 0, 0, loc)
}

// End returns midnight at the beginning of the following day in loc.
func (d Day) End(loc *time.Location) time.Time {
	return d.Start(loc).AddDate(0, 0, 1)
}

func (d Day) Weekday(loc *time.Location) time.Weekday {
	return d.Start(loc).Weekday()
}

func (d Day) IsWeekend(loc *time.Location) bool {
	wd := d.Weekday(loc)
	return wd == time.Saturday || wd == time.Sunday
}

// DaysUntil returns the signed number of calendar days from d to other.
// Rounding absorbs DST transitions, where a day is 23 or 25 hours long.
func (d Day) DaysUntil(other Day, loc *time.Location) int {
	return int(math.Round(other.Start(loc).Sub(d.Start(loc)).Hours() / 24))
}

func (d Day) String() string {
	return d.Start(time.UTC).Format("2006-01-02")
}

// ParseDay parses an ISO calendar date ("2006-01-02") into a Day.
func ParseDay(s string) (Day, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Day{}, err
	}
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Date: d}, nil
}
