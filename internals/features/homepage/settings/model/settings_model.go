package model

import (
	"time"

	"gorm.io/datatypes"
)

// Mode pewarnaan section: satu swatch untuk semua, atau bergilir per posisi.
const (
	ColorModeUniform     = "uniform"
	ColorModeAlternating = "alternating"
)

// HomepageSettingsModel: pengaturan level halaman (satu row, id tetap 1).
type HomepageSettingsModel struct {
	SettingsID              int       `gorm:"column:settings_id;primaryKey" json:"settings_id"`
	SettingsPaletteID       string    `gorm:"column:settings_palette_id;type:varchar(50)" json:"settings_palette_id"`
	SettingsColorMode       string    `gorm:"column:settings_color_mode;type:varchar(20);default:uniform" json:"settings_color_mode"`
	SettingsGlobalPaletteID string    `gorm:"column:settings_global_palette_id;type:varchar(50)" json:"settings_global_palette_id"`
	SettingsUpdatedAt       time.Time `gorm:"column:settings_updated_at;autoUpdateTime" json:"settings_updated_at"`
}

func (HomepageSettingsModel) TableName() string {
	return "homepage_settings"
}

// SiteSettingModel: blob settings lama (key → JSON). Masih ditulis best-effort
// supaya frontend lama tetap jalan; kegagalan tulis tidak menggagalkan save.
type SiteSettingModel struct {
	SettingKey       string         `gorm:"column:setting_key;primaryKey;type:varchar(100)" json:"setting_key"`
	SettingValue     datatypes.JSON `gorm:"column:setting_value" json:"setting_value"`
	SettingUpdatedAt time.Time      `gorm:"column:setting_updated_at;autoUpdateTime" json:"setting_updated_at"`
}

func (SiteSettingModel) TableName() string {
	return "site_settings"
}
