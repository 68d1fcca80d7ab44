package request

import (
	"time"

	"github.com/google/uuid"
)

type RequestBookingRequest struct {
	RoomID      uuid.UUID `json:"room_id" binding:"required"`
	Title       string    `json:"title" binding:"required,max=200"`
	Description *string   `json:"description,omitempty"`
	StartTime   time.Time `json:"start_time" binding:"required"`
	EndTime     time.Time `json:"end_time" binding:"required"`
}

type UpdateBookingRequest struct {
	Title       *string    `json:"title,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartTime   *time.Time `json:"start_time,omitempty"`
	EndTime     *time.Time `json:"end_time,omitempty"`
}
