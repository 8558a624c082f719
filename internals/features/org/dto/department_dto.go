package dto

import (
	"time"

	"eventhub_backend/internals/features/org/model"
)

type DepartmentDTO struct {
	DeptID    uint      `json:"dept_id"`
	DeptName  string    `json:"dept_name"`
	DeptCode  string    `json:"dept_code"`
	HodName   *string   `json:"hod_name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateDepartmentRequest struct {
	DeptName string  `json:"dept_name" validate:"required,max=150"`
	DeptCode string  `json:"dept_code" validate:"required,max=20"`
	HodName  *string `json:"hod_name" validate:"omitempty,max=150"`
}

func ToDepartmentDTO(m model.DepartmentModel) DepartmentDTO {
	return DepartmentDTO{
		DeptID:    m.DeptID,
		DeptName:  m.DeptName,
		DeptCode:  m.DeptCode,
		HodName:   m.HodName,
		CreatedAt: m.CreatedAt,
	}
}
