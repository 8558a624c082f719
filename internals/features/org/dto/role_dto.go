package dto

import (
	"time"

	"eventhub_backend/internals/features/org/model"
)

// ============================
// Response DTO
// ============================

type RoleDTO struct {
	RoleID      uint      `json:"role_id"`
	RoleName    string    `json:"role_name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

type CreateRoleRequest struct {
	RoleName    string  `json:"role_name" validate:"required,max=30"`
	Description *string `json:"description" validate:"omitempty,max=200"`
}

// ============================
// Converter
// ============================

func ToRoleDTO(m model.RoleModel) RoleDTO {
	return RoleDTO{
		RoleID:      m.RoleID,
		RoleName:    m.RoleName,
		Description: m.Description,
		CreatedAt:   m.CreatedAt,
	}
}
