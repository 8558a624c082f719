package model

import "time"

type RegistrationModel struct {
	RegID        uint      `gorm:"column:reg_id;primaryKey;autoIncrement" json:"reg_id"`
	EventID      uint      `gorm:"column:event_id;not null;uniqueIndex:uq_registration_pair" json:"event_id"`
	UserID       uint      `gorm:"column:user_id;not null;uniqueIndex:uq_registration_pair" json:"user_id"`
	RegisteredAt time.Time `gorm:"column:registered_at" json:"registered_at"`
	Status       string    `gorm:"column:status" json:"status"` // free text; "confirmed" on admission
}

func (RegistrationModel) TableName() string {
	return "registrations"
}
