package model

import (
	"time"

	"github.com/google/uuid"
)

type MethodologyItemModel struct {
	ItemID          uuid.UUID `gorm:"column:item_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"item_id"`
	ItemTitle       string    `gorm:"column:item_title;type:varchar(255);not null" json:"item_title"`
	ItemDescription string    `gorm:"column:item_description;type:text" json:"item_description"`
	ItemIcon        string    `gorm:"column:item_icon;type:varchar(100)" json:"item_icon"`
	ItemOrder       int       `gorm:"column:item_order" json:"item_order"`
	ItemIsActive    bool      `gorm:"column:item_is_active;default:true" json:"item_is_active"`
	ItemCreatedAt   time.Time `gorm:"column:item_created_at;autoCreateTime" json:"item_created_at"`
	ItemUpdatedAt   time.Time `gorm:"column:item_updated_at;autoUpdateTime" json:"item_updated_at"`
}

func (MethodologyItemModel) TableName() string {
	return "methodology_items"
}
