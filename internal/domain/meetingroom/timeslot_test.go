//go:build unit

package meetingroom_test

import (
	"testing"
	"time"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeSlot(t *testing.T) {
	start := at(10, 0)
	end := at(11, 0)

	slot, err := meetingroom.NewTimeSlot(start, end)
	require.NoError(t, err)
	assert.Equal(t, start, slot.Start())
	assert.Equal(t, end, slot.End())
	assert.Equal(t, time.Hour, slot.Duration())

	_, err = meetingroom.NewTimeSlot(end, start)
	assert.ErrorIs(t, err, errs.ErrInvalidInterval)

	_, err = meetingroom.NewTimeSlot(start, start)
	assert.ErrorIs(t, err, errs.ErrInvalidInterval)
}

func TestTimeSlot_ToTstzrange(t *testing.T) {
	slot := meetingroom.ReconstructTimeSlot(at(9, 0), at(10, 0))
	assert.Equal(t, "[2025-08-04T09:00:00Z,2025-08-04T10:00:00Z)", slot.ToTstzrange())
}

func TestTimeSlot_String(t *testing.T) {
	slot := meetingroom.ReconstructTimeSlot(at(9, 0), at(10, 0))
	assert.Equal(t, "2025-08-04T09:00:00Z/2025-08-04T10:00:00Z", slot.String())
}
