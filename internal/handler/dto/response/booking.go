package response

import (
	"time"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type BookingResponse struct {
	ID          uuid.UUID `json:"id"`
	RoomID      uuid.UUID `json:"roomId"`
	RoomName    string    `json:"roomName,omitempty"`
	UserID      uuid.UUID `json:"userId"`
	Title       string    `json:"title"`
	Description *string   `json:"description,omitempty"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ConflictEntry identifies one existing booking blocking an admission.
type ConflictEntry struct {
	BookingID uuid.UUID `json:"bookingId"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

func FromBooking(b *meetingroom.Booking) *BookingResponse {
	return &BookingResponse{
		ID:          b.ID,
		RoomID:      b.RoomID,
		UserID:      b.UserID,
		Title:       b.Title,
		Description: b.Description,
		StartTime:   b.Slot.Start(),
		EndTime:     b.Slot.End(),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func FromBookingView(rm *queries.BookingView) *BookingResponse {
	return &BookingResponse{
		ID:          rm.ID,
		RoomID:      rm.RoomID,
		RoomName:    rm.RoomName,
		UserID:      rm.UserID,
		Title:       rm.Title,
		Description: rm.Description,
		StartTime:   rm.StartTime,
		EndTime:     rm.EndTime,
		CreatedAt:   rm.CreatedAt,
		UpdatedAt:   rm.UpdatedAt,
	}
}

func FromBookingViews(rms []*queries.BookingView) []*BookingResponse {
	out := make([]*BookingResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromBookingView(rm)
	}
	return out
}

func ConflictEntries(conflicts []meetingroom.Booking) []ConflictEntry {
	out := make([]ConflictEntry, len(conflicts))
	for i := range conflicts {
		out[i] = ConflictEntry{
			BookingID: conflicts[i].ID,
			StartTime: conflicts[i].Slot.Start(),
			EndTime:   conflicts[i].Slot.End(),
		}
	}
	return out
}
