package dto

import (
	"time"

	"eventhub_backend/internals/features/registrations/model"
)

type AttendanceDTO struct {
	AttendanceID uint      `json:"attendance_id"`
	EventID      uint      `json:"event_id"`
	UserID       uint      `json:"user_id"`
	Present      bool      `json:"present"`
	CheckedAt    time.Time `json:"checked_at"`
}

// Present is a pointer so "false" survives the required check.
type MarkAttendanceRequest struct {
	EventID uint  `json:"event_id" validate:"required"`
	UserID  uint  `json:"user_id" validate:"required"`
	Present *bool `json:"present" validate:"required"`
}

func ToAttendanceDTO(m model.AttendanceModel) AttendanceDTO {
	return AttendanceDTO{
		AttendanceID: m.AttendanceID,
		EventID:      m.EventID,
		UserID:       m.UserID,
		Present:      m.Present,
		CheckedAt:    m.CheckedAt,
	}
}
