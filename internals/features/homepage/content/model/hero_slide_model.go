package model

import (
	"time"

	"github.com/google/uuid"
)

type HeroSlideModel struct {
	SlideID           uuid.UUID `gorm:"column:slide_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"slide_id"`
	SlideTitle        string    `gorm:"column:slide_title;type:varchar(255);not null" json:"slide_title"`
	SlideSubtitle     string    `gorm:"column:slide_subtitle;type:text" json:"slide_subtitle"`
	SlideImageURL     string    `gorm:"column:slide_image_url;type:text" json:"slide_image_url"`
	SlideCtaLabel     string    `gorm:"column:slide_cta_label;type:varchar(100)" json:"slide_cta_label"`
	SlideCtaTargetURL string    `gorm:"column:slide_cta_target_url;type:text" json:"slide_cta_target_url"`
	SlideOrder        int       `gorm:"column:slide_order" json:"slide_order"`
	SlideIsActive     bool      `gorm:"column:slide_is_active;default:true" json:"slide_is_active"`
	SlideCreatedAt    time.Time `gorm:"column:slide_created_at;autoCreateTime" json:"slide_created_at"`
	SlideUpdatedAt    time.Time `gorm:"column:slide_updated_at;autoUpdateTime" json:"slide_updated_at"`
}

func (HeroSlideModel) TableName() string {
	return "hero_slides"
}
