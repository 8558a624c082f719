package dto

import "eventhub_backend/internals/features/events/model"

type VenueDTO struct {
	VenueID  uint    `json:"venue_id"`
	Name     string  `json:"name"`
	Location *string `json:"location"`
	Capacity int     `json:"capacity"`
}

type CreateVenueRequest struct {
	Name     string  `json:"name" validate:"required,max=150"`
	Location *string `json:"location" validate:"omitempty,max=255"`
	Capacity int     `json:"capacity" validate:"required,min=1"`
}

func ToVenueDTO(m model.VenueModel) VenueDTO {
	return VenueDTO{
		VenueID:  m.VenueID,
		Name:     m.Name,
		Location: m.Location,
		Capacity: m.Capacity,
	}
}
