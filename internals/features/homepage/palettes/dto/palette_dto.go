package dto

import (
	"encoding/json"

	"gorm.io/datatypes"

	"sasanaku_backend/internals/features/homepage/palettes/model"
	"sasanaku_backend/internals/features/homepage/palettes/service"
)

type SwatchRequest struct {
	Background string `json:"background" validate:"required"`
	Text       string `json:"text" validate:"required"`
	Accent     string `json:"accent" validate:"required"`
	Border     string `json:"border"`
}

type CreateCustomPaletteRequest struct {
	PaletteKey  string          `json:"palette_key" validate:"required,min=2,max=50"`
	PaletteName string          `json:"palette_name" validate:"required,min=2,max=100"`
	Swatches    []SwatchRequest `json:"swatches" validate:"required,min=1,dive"`
}

func (r CreateCustomPaletteRequest) ToModel() model.CustomPaletteModel {
	swatches := make([]service.Swatch, 0, len(r.Swatches))
	for _, s := range r.Swatches {
		swatches = append(swatches, service.Swatch{
			Background: s.Background,
			Text:       s.Text,
			Accent:     s.Accent,
			Border:     s.Border,
		})
	}
	raw, _ := json.Marshal(swatches)
	return model.CustomPaletteModel{
		CustomPaletteKey:      r.PaletteKey,
		CustomPaletteName:     r.PaletteName,
		CustomPaletteSwatches: datatypes.JSON(raw),
	}
}

type ApplyPaletteRequest struct {
	PaletteID   string `json:"palette_id" validate:"required"`
	SwatchIndex int    `json:"swatch_index"`
}

type PaletteListResponse struct {
	BuiltIn []service.Palette `json:"built_in"`
	Custom  []service.Palette `json:"custom"`
}
