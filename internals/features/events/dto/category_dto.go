package dto

import "eventhub_backend/internals/features/events/model"

type CategoryDTO struct {
	CategoryID   uint    `json:"category_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Icon         *string `json:"icon"`
	ActiveStatus bool    `json:"active_status"`
}

// ActiveStatus defaults to true when omitted.
type CreateCategoryRequest struct {
	Name         string  `json:"name" validate:"required,max=80"`
	Description  *string `json:"description" validate:"omitempty,max=200"`
	Icon         *string `json:"icon" validate:"omitempty,max=50"`
	ActiveStatus *bool   `json:"active_status"`
}

func ToCategoryDTO(m model.CategoryModel) CategoryDTO {
	return CategoryDTO{
		CategoryID:   m.CategoryID,
		Name:         m.Name,
		Description:  m.Description,
		Icon:         m.Icon,
		ActiveStatus: m.ActiveStatus,
	}
}
