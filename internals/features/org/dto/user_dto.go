package dto

import (
	"time"

	"eventhub_backend/internals/features/org/model"
)

// ============================
// Response DTO
// ============================

type UserDTO struct {
	UserID    uint      `json:"user_id"`
	RollNo    *string   `json:"roll_no"`
	Name      string    `json:"name"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	RoleID    *uint     `json:"role_id"`
	DeptID    *uint     `json:"dept_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ============================
// Create Request DTO
// ============================

// Password is optional and write-only; it is stored bcrypt-hashed and never
// echoed back.
type CreateUserRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	RollNo   *string `json:"roll_no" validate:"omitempty,max=20"`
	Email    *string `json:"email" validate:"omitempty,email,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=20"`
	Password *string `json:"password" validate:"omitempty,min=6,max=72"`
	RoleID   *uint   `json:"role_id"`
	DeptID   *uint   `json:"dept_id"`
}

func ToUserDTO(m model.UserModel) UserDTO {
	return UserDTO{
		UserID:    m.UserID,
		RollNo:    m.RollNo,
		Name:      m.Name,
		Email:     m.Email,
		Phone:     m.Phone,
		RoleID:    m.RoleID,
		DeptID:    m.DeptID,
		CreatedAt: m.CreatedAt,
	}
}
