package dto

import (
	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
	settingsModel "sasanaku_backend/internals/features/homepage/settings/model"
)

type ReorderRequest struct {
	SourceIndex int `json:"source_index" validate:"min=0"`
	DestIndex   int `json:"dest_index" validate:"min=0"`
}

type FieldUpdateRequest struct {
	Field string `json:"field" validate:"required"`
	Value string `json:"value"`
}

type PaletteOverrideRequest struct {
	// kosong / null = hapus override, section kembali ikut palette halaman
	PaletteID string `json:"palette_id"`
}

type SaveHomepageRequest struct {
	Sections []sectionModel.SectionModel `json:"sections" validate:"required,min=1"`
	Settings SaveSettingsRequest         `json:"settings"`
}

type SaveSettingsRequest struct {
	PaletteID       string `json:"palette_id"`
	ColorMode       string `json:"color_mode" validate:"omitempty,oneof=uniform alternating"`
	GlobalPaletteID string `json:"global_palette_id"`
}

func (r SaveSettingsRequest) ToModel() settingsModel.HomepageSettingsModel {
	mode := r.ColorMode
	if mode == "" {
		mode = settingsModel.ColorModeUniform
	}
	return settingsModel.HomepageSettingsModel{
		SettingsID:              1,
		SettingsPaletteID:       r.PaletteID,
		SettingsColorMode:       mode,
		SettingsGlobalPaletteID: r.GlobalPaletteID,
	}
}
