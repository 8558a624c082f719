package dto

import "eventhub_backend/internals/features/resources/model"

type EventResourceDTO struct {
	ErID             uint `json:"er_id"`
	EventID          uint `json:"event_id"`
	ResourceID       uint `json:"resource_id"`
	QuantityRequired int  `json:"quantity_required"`
}

type CreateEventResourceRequest struct {
	EventID          uint `json:"event_id" validate:"required"`
	ResourceID       uint `json:"resource_id" validate:"required"`
	QuantityRequired int  `json:"quantity_required" validate:"required,min=1"`
}

func ToEventResourceDTO(m model.EventResourceModel) EventResourceDTO {
	return EventResourceDTO{
		ErID:             m.ErID,
		EventID:          m.EventID,
		ResourceID:       m.ResourceID,
		QuantityRequired: m.QuantityRequired,
	}
}
