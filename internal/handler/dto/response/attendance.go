package response

import (
	"time"

	"office-scheduler/internal/domain/attendance"
	"office-scheduler/internal/usecase/queries"

	"github.com/google/uuid"
)

type AttendanceResponse struct {
	ID        uuid.UUID  `json:"id"`
	Day       string     `json:"day"`
	UserID    uuid.UUID  `json:"userId"`
	TeamID    *uuid.UUID `json:"teamId,omitempty"`
	Status    string     `json:"status"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

type DayOccupancyResponse struct {
	Day            string                `json:"day"`
	Reservations   []*AttendanceResponse `json:"reservations"`
	MaxSpotsPerDay int                   `json:"maxSpotsPerDay"`
	SpotsLeft      int                   `json:"spotsLeft"`
}

func FromAttendanceReservation(rec *attendance.Reservation) *AttendanceResponse {
	return &AttendanceResponse{
		ID:        rec.ID,
		Day:       rec.Day.String(),
		UserID:    rec.UserID,
		TeamID:    rec.TeamID,
		Status:    string(rec.Status),
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}

func FromAttendanceView(rm *queries.AttendanceView) *AttendanceResponse {
	return &AttendanceResponse{
		ID:        rm.ID,
		Day:       rm.Day,
		UserID:    rm.UserID,
		TeamID:    rm.TeamID,
		Status:    rm.Status,
		CreatedAt: rm.CreatedAt,
		UpdatedAt: rm.UpdatedAt,
	}
}

func FromAttendanceViews(rms []*queries.AttendanceView) []*AttendanceResponse {
	out := make([]*AttendanceResponse, len(rms))
	for i, rm := range rms {
		out[i] = FromAttendanceView(rm)
	}
	return out
}

func FromDayOccupancyView(rm *queries.DayOccupancyView) *DayOccupancyResponse {
	return &DayOccupancyResponse{
		Day:            rm.Day,
		Reservations:   FromAttendanceViews(rm.Reservations),
		MaxSpotsPerDay: rm.MaxSpotsPerDay,
		SpotsLeft:      rm.SpotsLeft,
	}
}
