package model

import "time"

type EventModel struct {
	EventID       uint       `gorm:"column:event_id;primaryKey;autoIncrement" json:"event_id"`
	Title         string     `gorm:"column:title;not null" json:"title"`
	Description   *string    `gorm:"column:description" json:"description"`
	CategoryID    *uint      `gorm:"column:category_id" json:"category_id"`   // Nullable FK → categories
	OrganizerID   *uint      `gorm:"column:organizer_id" json:"organizer_id"` // Nullable FK → users
	VenueID       *uint      `gorm:"column:venue_id" json:"venue_id"`         // Nullable FK → venues
	StartDatetime *time.Time `gorm:"column:start_datetime" json:"start_datetime"`
	EndDatetime   *time.Time `gorm:"column:end_datetime" json:"end_datetime"`
	Capacity      *int       `gorm:"column:capacity" json:"capacity"` // nil = no seat cap
	Status        *string    `gorm:"column:status" json:"status"`     // free-text code, e.g. "scheduled"
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (EventModel) TableName() string {
	return "events"
}
