package dto

import (
	"time"

	"eventhub_backend/internals/features/registrations/model"
)

// ============================
// Response DTO
// ============================

type RegistrationDTO struct {
	RegID        uint      `json:"reg_id"`
	EventID      uint      `json:"event_id"`
	UserID       uint      `json:"user_id"`
	RegisteredAt time.Time `json:"registered_at"`
	Status       string    `json:"status"`
}

// ============================
// Register Request DTO
// ============================

type RegisterRequest struct {
	EventID uint `json:"event_id" validate:"required"`
	UserID  uint `json:"user_id" validate:"required"`
}

// ============================
// User-centric registration view
// ============================

// RegistrationDetailDTO joins user identity and event schedule onto each
// registration row.
type RegistrationDetailDTO struct {
	RegID         uint       `json:"reg_id"`
	Status        string     `json:"status"`
	RegisteredAt  *time.Time `json:"registered_at"`
	UserID        uint       `json:"user_id"`
	UserName      string     `json:"user_name"`
	RollNo        *string    `json:"roll_no"`
	Email         *string    `json:"email"`
	EventID       uint       `json:"event_id"`
	EventTitle    string     `json:"event_title"`
	StartDatetime *time.Time `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
}

func ToRegistrationDTO(m model.RegistrationModel) RegistrationDTO {
	return RegistrationDTO{
		RegID:        m.RegID,
		EventID:      m.EventID,
		UserID:       m.UserID,
		RegisteredAt: m.RegisteredAt,
		Status:       m.Status,
	}
}
