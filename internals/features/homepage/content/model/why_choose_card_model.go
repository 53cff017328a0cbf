package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type WhyChooseCardModel struct {
	CardID          uuid.UUID      `gorm:"column:card_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"card_id"`
	CardTitle       string         `gorm:"column:card_title;type:varchar(255);not null" json:"card_title"`
	CardDescription string         `gorm:"column:card_description;type:text" json:"card_description"`
	CardIcon        string         `gorm:"column:card_icon;type:varchar(100)" json:"card_icon"`
	CardPoints      pq.StringArray `gorm:"column:card_points;type:text[]" json:"card_points"`
	CardOrder       int            `gorm:"column:card_order" json:"card_order"`
	CardIsActive    bool           `gorm:"column:card_is_active;default:true" json:"card_is_active"`
	CardCreatedAt   time.Time      `gorm:"column:card_created_at;autoCreateTime" json:"card_created_at"`
	CardUpdatedAt   time.Time      `gorm:"column:card_updated_at;autoUpdateTime" json:"card_updated_at"`
}

func (WhyChooseCardModel) TableName() string {
	return "why_choose_cards"
}
