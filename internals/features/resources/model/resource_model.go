package model

type ResourceModel struct {
	ResourceID    uint   `gorm:"column:resource_id;primaryKey;autoIncrement" json:"resource_id"`
	ResourceName  string `gorm:"column:resource_name;not null;unique" json:"resource_name"`
	TotalQuantity int    `gorm:"column:total_quantity;not null" json:"total_quantity"` // shared inventory pool
}

func (ResourceModel) TableName() string {
	return "resources"
}
