package model

import "time"

type AttendanceModel struct {
	AttendanceID uint      `gorm:"column:attendance_id;primaryKey;autoIncrement" json:"attendance_id"`
	EventID      uint      `gorm:"column:event_id;not null;uniqueIndex:uq_attendance_pair" json:"event_id"`
	UserID       uint      `gorm:"column:user_id;not null;uniqueIndex:uq_attendance_pair" json:"user_id"`
	Present      bool      `gorm:"column:present;default:false" json:"present"`
	CheckedAt    time.Time `gorm:"column:checked_at" json:"checked_at"`
}

func (AttendanceModel) TableName() string {
	return "attendance"
}
