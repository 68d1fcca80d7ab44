package meetingroom

import (
	"fmt"
	"time"

	"office-scheduler/internal/pkg/errs"
)

// TimeSlot is a half-open interval [start, end): start inclusive, end
// exclusive. A slot ending exactly when another begins does not overlap it.
type TimeSlot struct {
	start time.Time
	end   time.Time
}

func NewTimeSlot(start, end time.Time) (TimeSlot, error) {
	if !start.Before(end) {
		return TimeSlot{}, errs.ErrInvalidInterval
	}
	return TimeSlot{start: start, end: end}, nil
}

// ReconstructTimeSlot rebuilds a slot from persisted values without
// re-validation; the database constraint already guarantees start < end.
func ReconstructTimeSlot(start, end time.Time) TimeSlot {
	return TimeSlot{start: start, end: end}
}

func (ts TimeSlot) Start() time.Time {
	return ts.start
}

func (ts TimeSlot) End() time.Time {
	return ts.end
}

func (ts TimeSlot) Duration() time.Duration {
	return ts.end.Sub(ts.start)
}

// Overlaps is the single authoritative overlap test: [a0,a1) and [b0,b1)
// overlap iff a0 < b1 && b0 < a1. Containment, partial overlap and identical
// intervals all overlap; back-to-back slots do not.
func (ts TimeSlot) Overlaps(other TimeSlot) bool {
	return ts.start.Before(other.end) && other.start.Before(ts.end)
}

// ToTstzrange renders the slot as a PostgreSQL half-open tstzrange literal.
func (ts TimeSlot) ToTstzrange() string {
	return fmt.Sprintf("[%s,%s)", ts.start.Format(time.RFC3339Nano), ts.end.Format(time.RFC3339Nano))
}

func (ts TimeSlot) String() string {
	return ts.start.Format(time.RFC3339) + "/" + ts.end.Format(time.RFC3339)
}
