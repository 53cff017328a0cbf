package model

import (
	"time"

	"gorm.io/datatypes"
)

// CTAConfigModel: konfigurasi blok ajakan bergabung (satu row).
type CTAConfigModel struct {
	CTAID          int            `gorm:"column:cta_id;primaryKey" json:"cta_id"`
	CTAHeading     string         `gorm:"column:cta_heading;type:varchar(255)" json:"cta_heading"`
	CTASubheading  string         `gorm:"column:cta_subheading;type:text" json:"cta_subheading"`
	CTAButtonLabel string         `gorm:"column:cta_button_label;type:varchar(100)" json:"cta_button_label"`
	CTAButtonURL   string         `gorm:"column:cta_button_url;type:text" json:"cta_button_url"`
	CTAFeatures    datatypes.JSON `gorm:"column:cta_features" json:"cta_features"` // list {icon,label}
	CTAUpdatedAt   time.Time      `gorm:"column:cta_updated_at;autoUpdateTime" json:"cta_updated_at"`
}

func (CTAConfigModel) TableName() string {
	return "cta_config"
}

// LocationConfigModel: konfigurasi blok lokasi sasana (satu row).
type LocationConfigModel struct {
	LocationID           int            `gorm:"column:location_id;primaryKey" json:"location_id"`
	LocationAddress      string         `gorm:"column:location_address;type:text" json:"location_address"`
	LocationMapsEmbedURL string         `gorm:"column:location_maps_embed_url;type:text" json:"location_maps_embed_url"`
	LocationPhone        string         `gorm:"column:location_phone;type:varchar(30)" json:"location_phone"`
	LocationWhatsapp     string         `gorm:"column:location_whatsapp;type:varchar(30)" json:"location_whatsapp"`
	LocationOpenHours    datatypes.JSON `gorm:"column:location_open_hours" json:"location_open_hours"` // map hari → jam
	LocationUpdatedAt    time.Time      `gorm:"column:location_updated_at;autoUpdateTime" json:"location_updated_at"`
}

func (LocationConfigModel) TableName() string {
	return "location_config"
}
