package model

import (
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"sasanaku_backend/internals/features/homepage/palettes/service"
)

// CustomPaletteModel: palette buatan admin, bentuk sama dengan built-in.
type CustomPaletteModel struct {
	CustomPaletteID        uuid.UUID      `gorm:"column:custom_palette_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"custom_palette_id"`
	CustomPaletteKey       string         `gorm:"column:custom_palette_key;type:varchar(50);uniqueIndex;not null" json:"custom_palette_key"`
	CustomPaletteName      string         `gorm:"column:custom_palette_name;type:varchar(100);not null" json:"custom_palette_name"`
	CustomPaletteSwatches  datatypes.JSON `gorm:"column:custom_palette_swatches;not null" json:"custom_palette_swatches"`
	CustomPaletteCreatedAt time.Time      `gorm:"column:custom_palette_created_at;autoCreateTime" json:"custom_palette_created_at"`
	CustomPaletteUpdatedAt time.Time      `gorm:"column:custom_palette_updated_at;autoUpdateTime" json:"custom_palette_updated_at"`
}

func (CustomPaletteModel) TableName() string {
	return "custom_palettes"
}

// ToPalette mengubah row DB → Palette untuk registry/renderer.
// Swatch JSON rusak dicatat & dilewati (preview tetap jalan dengan fallback).
func (m CustomPaletteModel) ToPalette() service.Palette {
	var swatches []service.Swatch
	if err := json.Unmarshal(m.CustomPaletteSwatches, &swatches); err != nil {
		log.Printf("[WARN] swatch palette %s rusak: %v", m.CustomPaletteKey, err)
	}
	return service.Palette{
		PaletteID:   m.CustomPaletteKey,
		PaletteName: m.CustomPaletteName,
		Swatches:    swatches,
		IsCustom:    true,
	}
}

func ToPaletteList(rows []CustomPaletteModel) []service.Palette {
	out := make([]service.Palette, 0, len(rows))
	for _, r := range rows {
		p := r.ToPalette()
		if len(p.Swatches) > 0 {
			out = append(out, p)
		}
	}
	return out
}
