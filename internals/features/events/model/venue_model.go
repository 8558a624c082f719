package model

type VenueModel struct {
	VenueID  uint    `gorm:"column:venue_id;primaryKey;autoIncrement" json:"venue_id"`
	Name     string  `gorm:"column:name;not null" json:"name"`
	Location *string `gorm:"column:location" json:"location"`
	Capacity int     `gorm:"column:capacity;not null" json:"capacity"` // hard seating limit
}

func (VenueModel) TableName() string {
	return "venues"
}
