package response

import (
	"time"

	"office-scheduler/internal/domain/meetingroom"
	"office-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type RoomResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Capacity  int       `json:"capacity"`
	Active    bool      `json:"active"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromRoom(r *meetingroom.Room) *RoomResponse {
	return &RoomResponse{
		ID:        r.ID,
		Name:      r.Name,
		Capacity:  r.Capacity,
		Active:    r.Active,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func FromRoomView(rm *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:        rm.ID,
		Name:      rm.Name,
		Capacity:  rm.Capacity,
		Active:    rm.Active,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromRoomViews(rms []*queries.RoomView) []*RoomResponse {
	out := make([]*RoomResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromRoomView(rm)
	}
	return out
}
