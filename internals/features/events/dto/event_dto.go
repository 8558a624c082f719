package dto

import (
	"time"

	"eventhub_backend/internals/features/events/model"
)

// ============================
// Response DTO
// ============================

type EventDTO struct {
	EventID       uint       `json:"event_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description"`
	CategoryID    *uint      `json:"category_id"`
	OrganizerID   *uint      `json:"organizer_id"`
	VenueID       *uint      `json:"venue_id"`
	StartDatetime *time.Time `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
	Capacity      *int       `json:"capacity"`
	Status        *string    `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateEventRequest struct {
	Title         string     `json:"title" validate:"required,max=255"`
	Description   *string    `json:"description"`
	CategoryID    *uint      `json:"category_id"`
	OrganizerID   *uint      `json:"organizer_id"`
	VenueID       *uint      `json:"venue_id"`
	StartDatetime *time.Time `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
	Capacity      *int       `json:"capacity" validate:"omitempty,min=0"`
	Status        *string    `json:"status" validate:"omitempty,max=20"`
}

func ToEventDTO(m model.EventModel) EventDTO {
	return EventDTO{
		EventID:       m.EventID,
		Title:         m.Title,
		Description:   m.Description,
		CategoryID:    m.CategoryID,
		OrganizerID:   m.OrganizerID,
		VenueID:       m.VenueID,
		StartDatetime: m.StartDatetime,
		EndDatetime:   m.EndDatetime,
		Capacity:      m.Capacity,
		Status:        m.Status,
		CreatedAt:     m.CreatedAt,
	}
}
