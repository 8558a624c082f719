package dto

import "eventhub_backend/internals/features/resources/model"

type ResourceDTO struct {
	ResourceID    uint   `json:"resource_id"`
	ResourceName  string `json:"resource_name"`
	TotalQuantity int    `json:"total_quantity"`
}

type CreateResourceRequest struct {
	ResourceName  string `json:"resource_name" validate:"required,max=100"`
	TotalQuantity int    `json:"total_quantity" validate:"min=0"`
}

func ToResourceDTO(m model.ResourceModel) ResourceDTO {
	return ResourceDTO{
		ResourceID:    m.ResourceID,
		ResourceName:  m.ResourceName,
		TotalQuantity: m.TotalQuantity,
	}
}
