package model

import "time"

type DepartmentModel struct {
	DeptID    uint      `gorm:"column:dept_id;primaryKey;autoIncrement" json:"dept_id"`
	DeptName  string    `gorm:"column:dept_name;not null;unique" json:"dept_name"`
	DeptCode  string    `gorm:"column:dept_code;not null;unique" json:"dept_code"`
	HodName   *string   `gorm:"column:hod_name" json:"hod_name"` // head of department, nullable
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (DepartmentModel) TableName() string {
	return "departments"
}
