package meetingroom

import (
	"fmt"

	"office-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
)

// ConflictError reports the bookings a candidate overlaps, not just a
// boolean, so callers can present them.
type ConflictError struct {
	Conflicts []Booking
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("scheduling conflict with %d existing booking(s)", len(e.Conflicts))
}

func (e *ConflictError) Is(target error) bool {
	return target == errs.ErrSchedulingConflict
}

// Evaluate decides whether a candidate booking may be admitted into a room's
// existing non-cancelled bookings. For update-in-place the caller passes the
// existing set with the updated booking's own id already excluded.
//
// Evaluate is pure and side-effect-free; the write boundary carries the
// authoritative exclusion constraint.
func Evaluate(c Candidate, existing []Booking) (*Booking, error) {
	slot, err := NewTimeSlot(c.StartTime, c.EndTime)
	if err != nil {
		return nil, err
	}

	var conflicts []Booking
	for i := range existing {
		if existing[i].Slot.Overlaps(slot) {
			conflicts = append(conflicts, existing[i])
		}
	}
	if len(conflicts) > 0 {
		return nil, &ConflictError{Conflicts: conflicts}
	}

	return &Booking{
		ID:          uuid.New(),
		RoomID:      c.RoomID,
		UserID:      c.UserID,
		Title:       c.Title,
		Description: c.Description,
		Slot:        slot,
	}, nil
}

// ExcludeBooking filters id out of bookings; used when re-admitting an
// updated booking against all other bookings for the room.
func ExcludeBooking(bookings []Booking, id uuid.UUID) []Booking {
	out := bookings[:0:0]
	for _, b := range bookings {
		if b.ID != id {
			out = append(out, b)
		}
	}
	return out
}
