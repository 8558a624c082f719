package model

import "time"

type RoleModel struct {
	RoleID      uint      `gorm:"column:role_id;primaryKey;autoIncrement" json:"role_id"`
	RoleName    string    `gorm:"column:role_name;not null;unique" json:"role_name"`
	Description *string   `gorm:"column:description" json:"description"` // Nullable
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

// TableName sets the name of the table
func (RoleModel) TableName() string {
	return "roles"
}
