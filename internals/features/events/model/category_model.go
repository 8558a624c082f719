package model

type CategoryModel struct {
	CategoryID   uint    `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`
	Name         string  `gorm:"column:name;not null;unique" json:"name"`
	Description  *string `gorm:"column:description" json:"description"`
	Icon         *string `gorm:"column:icon" json:"icon"`
	ActiveStatus bool    `gorm:"column:active_status;default:true" json:"active_status"`
}

func (CategoryModel) TableName() string {
	return "categories"
}
