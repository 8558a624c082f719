package model

import "time"

type UserModel struct {
	UserID       uint      `gorm:"column:user_id;primaryKey;autoIncrement" json:"user_id"`
	RollNo       *string   `gorm:"column:roll_no" json:"roll_no"`
	Name         string    `gorm:"column:name;not null" json:"name"`
	Email        *string   `gorm:"column:email" json:"email"`
	Phone        *string   `gorm:"column:phone" json:"phone"`
	PasswordHash *string   `gorm:"column:password_hash" json:"-"` // never serialized
	RoleID       *uint     `gorm:"column:role_id" json:"role_id"` // Nullable FK → roles
	DeptID       *uint     `gorm:"column:dept_id" json:"dept_id"` // Nullable FK → departments
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (UserModel) TableName() string {
	return "users"
}
