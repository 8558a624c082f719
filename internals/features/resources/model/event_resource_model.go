package model

// EventResourceModel is the junction row: how much of a resource an event consumes.
type EventResourceModel struct {
	ErID             uint `gorm:"column:er_id;primaryKey;autoIncrement" json:"er_id"`
	EventID          uint `gorm:"column:event_id;not null" json:"event_id"`
	ResourceID       uint `gorm:"column:resource_id;not null" json:"resource_id"`
	QuantityRequired int  `gorm:"column:quantity_required;not null" json:"quantity_required"`
}

func (EventResourceModel) TableName() string {
	return "event_resources"
}
