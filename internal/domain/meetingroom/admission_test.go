//go:build unit

package meetingroom_test

import (
	"testing"
	"time"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, minute int) time.Time {
	return time.Date(2025, 8, 4, hour, minute, 0, 0, time.UTC)
}

func bookingAt(roomID uuid.UUID, start, end time.Time) meetingroom.Booking {
	return meetingroom.Booking{
		ID:     uuid.New(),
		RoomID: roomID,
		UserID: uuid.New(),
		Title:  "standup",
		Slot:   meetingroom.ReconstructTimeSlot(start, end),
	}
}

func TestEvaluate_Admit(t *testing.T) {
	roomID := uuid.New()
	userID := uuid.New()

	rec, err := meetingroom.Evaluate(meetingroom.Candidate{
		RoomID:    roomID,
		UserID:    userID,
		Title:     "planning",
		StartTime: at(10, 0),
		EndTime:   at(11, 0),
	}, nil)
	require.NoError(t, err)
	require.NotNil(t, rec)

	assert.NotEqual(t, uuid.Nil, rec.ID)
	assert.Equal(t, roomID, rec.RoomID)
	assert.Equal(t, userID, rec.UserID)
	assert.Equal(t, at(10, 0), rec.Slot.Start())
	assert.Equal(t, at(11, 0), rec.Slot.End())
}

func TestEvaluate_InvalidInterval(t *testing.T) {
	roomID := uuid.New()
	existing := []meetingroom.Booking{
		bookingAt(roomID, at(9, 0), at(17, 0)),
	}

	t.Run("start equals end", func(t *testing.T) {
		// InvalidInterval regardless of existing bookings.
		_, err := meetingroom.Evaluate(meetingroom.Candidate{
			RoomID:    roomID,
			UserID:    uuid.New(),
			StartTime: at(10, 0),
			EndTime:   at(10, 0),
		}, existing)
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)
	})

	t.Run("start after end", func(t *testing.T) {
		_, err := meetingroom.Evaluate(meetingroom.Candidate{
			RoomID:    roomID,
			UserID:    uuid.New(),
			StartTime: at(11, 0),
			EndTime:   at(10, 0),
		}, existing)
		assert.ErrorIs(t, err, errs.ErrInvalidInterval)
	})
}

func TestEvaluate_Overlap(t *testing.T) {
	roomID := uuid.New()

	testCases := []struct {
		name      string
		existing  [][2]time.Time
		start     time.Time
		end       time.Time
		conflicts int
	}{
		{
			name:     "adjacency is not overlap",
			existing: [][2]time.Time{{at(11, 0), at(12, 0)}},
			start:    at(10, 0),
			end:      at(11, 0),
		},
		{
			name:     "back-to-back after existing booking",
			existing: [][2]time.Time{{at(9, 0), at(10, 0)}},
			start:    at(10, 0),
			end:      at(10, 30),
		},
		{
			name:      "partial overlap conflicts",
			existing:  [][2]time.Time{{at(10, 0), at(11, 0)}},
			start:     at(10, 30),
			end:       at(11, 30),
			conflicts: 1,
		},
		{
			name:      "containment conflicts",
			existing:  [][2]time.Time{{at(10, 30), at(11, 0)}},
			start:     at(10, 0),
			end:       at(12, 0),
			conflicts: 1,
		},
		{
			name:      "candidate contained in existing conflicts",
			existing:  [][2]time.Time{{at(9, 0), at(17, 0)}},
			start:     at(10, 0),
			end:       at(10, 30),
			conflicts: 1,
		},
		{
			name:      "identical interval conflicts",
			existing:  [][2]time.Time{{at(10, 0), at(11, 0)}},
			start:     at(10, 0),
			end:       at(11, 0),
			conflicts: 1,
		},
		{
			name: "rejection carries every conflicting booking",
			existing: [][2]time.Time{
				{at(9, 0), at(10, 30)},
				{at(10, 45), at(11, 30)},
				{at(12, 0), at(13, 0)},
			},
			start:     at(10, 0),
			end:       at(11, 0),
			conflicts: 2,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			existing := make([]meetingroom.Booking, 0, len(tc.existing))
			for _, span := range tc.existing {
				existing = append(existing, bookingAt(roomID, span[0], span[1]))
			}

			rec, err := meetingroom.Evaluate(meetingroom.Candidate{
				RoomID:    roomID,
				UserID:    uuid.New(),
				Title:     "sync",
				StartTime: tc.start,
				EndTime:   tc.end,
			}, existing)

			if tc.conflicts == 0 {
				require.NoError(t, err)
				require.NotNil(t, rec)
				return
			}

			require.ErrorIs(t, err, errs.ErrSchedulingConflict)
			var ce *meetingroom.ConflictError
			require.ErrorAs(t, err, &ce)
			assert.Len(t, ce.Conflicts, tc.conflicts)
		})
	}
}

func TestEvaluate_Deterministic(t *testing.T) {
	roomID := uuid.New()
	existing := []meetingroom.Booking{
		bookingAt(roomID, at(10, 0), at(11, 0)),
	}
	candidate := meetingroom.Candidate{
		RoomID:    roomID,
		UserID:    uuid.New(),
		StartTime: at(10, 30),
		EndTime:   at(11, 30),
	}

	_, err1 := meetingroom.Evaluate(candidate, existing)
	_, err2 := meetingroom.Evaluate(candidate, existing)

	assert.ErrorIs(t, err1, errs.ErrSchedulingConflict)
	assert.ErrorIs(t, err2, errs.ErrSchedulingConflict)
}

func TestExcludeBooking(t *testing.T) {
	roomID := uuid.New()
	own := bookingAt(roomID, at(10, 0), at(11, 0))
	other := bookingAt(roomID, at(11, 0), at(12, 0))

	filtered := meetingroom.ExcludeBooking([]meetingroom.Booking{own, other}, own.ID)
	require.Len(t, filtered, 1)
	assert.Equal(t, other.ID, filtered[0].ID)

	// Re-admitting an updated booking against the remaining set: moving the
	// excluded booking onto its old span must not conflict with itself.
	_, err := meetingroom.Evaluate(meetingroom.Candidate{
		RoomID:    roomID,
		UserID:    own.UserID,
		StartTime: at(10, 15),
		EndTime:   at(10, 45),
	}, filtered)
	assert.NoError(t, err)
}
