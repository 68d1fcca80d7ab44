package request

import (
	"office-scheduler/internal/domain/attendance"

	"github.com/google/uuid"
)

type RequestAttendanceRequest struct {
	Day    string     `json:"day" binding:"required" example:"2025-09-01"`
	TeamID *uuid.UUID `json:"team_id,omitempty"`
}

func (r RequestAttendanceRequest) ParsedDay() (attendance.Day, error) {
	return attendance.ParseDay(r.Day)
}

type UpdateAttendanceRequest struct {
	Day string `json:"day" binding:"required" example:"2025-09-02"`
}

func (r UpdateAttendanceRequest) ParsedDay() (attendance.Day, error) {
	return attendance.ParseDay(r.Day)
}
