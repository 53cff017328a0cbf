package model

import "time"

// SectionModel: satu blok homepage yang bisa diatur urutan, status & stylenya.
// section_id natural key ("hero", "why_choose", ...) sekaligus switch key renderer.
type SectionModel struct {
	SectionID       string `gorm:"column:section_id;primaryKey;type:varchar(50)" json:"section_id"`
	SectionName     string `gorm:"column:section_name;type:varchar(100);not null" json:"section_name"`
	SectionOrder    int    `gorm:"column:section_order;not null" json:"section_order"`
	SectionIsActive bool   `gorm:"column:section_is_active;default:true" json:"section_is_active"`

	SectionBackgroundColor string `gorm:"column:section_background_color;type:varchar(50)" json:"section_background_color"`
	SectionTextColor       string `gorm:"column:section_text_color;type:varchar(50)" json:"section_text_color"`
	SectionBorderColor     string `gorm:"column:section_border_color;type:varchar(50)" json:"section_border_color"`
	SectionBorderWidth     int    `gorm:"column:section_border_width;default:0" json:"section_border_width"`
	SectionBorderRadius    int    `gorm:"column:section_border_radius;default:0" json:"section_border_radius"`
	SectionPadding         string `gorm:"column:section_padding;type:varchar(50)" json:"section_padding"`
	SectionMargin          string `gorm:"column:section_margin;type:varchar(50)" json:"section_margin"`
	SectionWidth           string `gorm:"column:section_width;type:varchar(20)" json:"section_width"`
	SectionHeight          string `gorm:"column:section_height;type:varchar(20)" json:"section_height"`
	SectionVerticalAlign   string `gorm:"column:section_vertical_align;type:varchar(20)" json:"section_vertical_align"`
	SectionHorizontalAlign string `gorm:"column:section_horizontal_align;type:varchar(20)" json:"section_horizontal_align"`

	SectionBackgroundImageURL string `gorm:"column:section_background_image_url;type:text" json:"section_background_image_url"`

	// Palette override per-section; kosong = ikut palette halaman/global.
	// Kolom ini satu-satunya sumber kebenaran override (tidak ada flag terpisah).
	SectionPaletteOverride string `gorm:"column:section_palette_override;type:varchar(50)" json:"section_palette_override"`

	// Sub-atribut text background (dipakai section hero)
	SectionTextBgEnabled bool   `gorm:"column:section_text_bg_enabled;default:false" json:"section_text_bg_enabled"`
	SectionTextBgColor   string `gorm:"column:section_text_bg_color;type:varchar(50)" json:"section_text_bg_color"`
	SectionTextBgOpacity int    `gorm:"column:section_text_bg_opacity;default:50" json:"section_text_bg_opacity"`

	SectionCreatedAt time.Time `gorm:"column:section_created_at;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt time.Time `gorm:"column:section_updated_at;autoUpdateTime" json:"section_updated_at"`
}

func (SectionModel) TableName() string {
	return "homepage_sections"
}
