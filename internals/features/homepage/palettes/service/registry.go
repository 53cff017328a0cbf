package service

import (
	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
)

// Swatch: satu kelompok warna {background, text, accent, border opsional}.
type Swatch struct {
	Background string `json:"background"`
	Text       string `json:"text"`
	Accent     string `json:"accent"`
	Border     string `json:"border,omitempty"`
}

// Palette: kumpulan swatch bernama. Built-in immutable; custom dari DB.
type Palette struct {
	PaletteID   string   `json:"palette_id"`
	PaletteName string   `json:"palette_name"`
	Swatches    []Swatch `json:"swatches"`
	IsCustom    bool     `json:"is_custom"`
}

// DefaultPaletteID: fallback terakhir rantai resolusi palette.
const DefaultPaletteID = "monochrome"

// BuiltInPalettes: katalog bawaan. Setiap palette dijamin punya ≥1 swatch.
var BuiltInPalettes = []Palette{
	{
		PaletteID:   "monochrome",
		PaletteName: "Monokrom",
		Swatches: []Swatch{
			{Background: "#ffffff", Text: "#1a1a1a", Accent: "#444444"},
			{Background: "#f4f4f4", Text: "#1a1a1a", Accent: "#666666", Border: "#dddddd"},
			{Background: "#1a1a1a", Text: "#f4f4f4", Accent: "#bbbbbb"},
		},
	},
	{
		PaletteID:   "garuda",
		PaletteName: "Garuda",
		Swatches: []Swatch{
			{Background: "#7f1d1d", Text: "#fef2f2", Accent: "#fbbf24"},
			{Background: "#fef2f2", Text: "#7f1d1d", Accent: "#b91c1c", Border: "#fecaca"},
			{Background: "#fbbf24", Text: "#451a03", Accent: "#7f1d1d"},
		},
	},
	{
		PaletteID:   "rimba",
		PaletteName: "Rimba",
		Swatches: []Swatch{
			{Background: "#14532d", Text: "#f0fdf4", Accent: "#86efac"},
			{Background: "#f0fdf4", Text: "#14532d", Accent: "#16a34a", Border: "#bbf7d0"},
		},
	},
	{
		PaletteID:   "samudra",
		PaletteName: "Samudra",
		Swatches: []Swatch{
			{Background: "#0c4a6e", Text: "#f0f9ff", Accent: "#38bdf8"},
			{Background: "#f0f9ff", Text: "#0c4a6e", Accent: "#0284c7", Border: "#bae6fd"},
			{Background: "#e0f2fe", Text: "#0c4a6e", Accent: "#0369a1"},
		},
	},
	{
		PaletteID:   "senja",
		PaletteName: "Senja",
		Swatches: []Swatch{
			{Background: "#431407", Text: "#fff7ed", Accent: "#fb923c"},
			{Background: "#fff7ed", Text: "#431407", Accent: "#ea580c", Border: "#fed7aa"},
		},
	},
}

// GetPaletteByID mencari exact match: built-in dulu, lalu list custom.
// Tidak dikenal → nil; fallback jadi tanggung jawab caller supaya kontraknya
// eksplisit untuk testing.
func GetPaletteByID(id string, custom []Palette) *Palette {
	for i := range BuiltInPalettes {
		if BuiltInPalettes[i].PaletteID == id {
			return &BuiltInPalettes[i]
		}
	}
	for i := range custom {
		if custom[i].PaletteID == id {
			return &custom[i]
		}
	}
	return nil
}

// ApplyPaletteToSection menimpa warna section dari swatch terpilih.
// Index di-wrap modulo jumlah swatch (aman untuk index negatif/oversized).
// Palette tak dikenal → section dikembalikan apa adanya.
func ApplyPaletteToSection(s sectionModel.SectionModel, paletteID string, swatchIdx int, custom []Palette) sectionModel.SectionModel {
	p := GetPaletteByID(paletteID, custom)
	if p == nil || len(p.Swatches) == 0 {
		return s
	}
	sw := p.Swatches[wrapIndex(swatchIdx, len(p.Swatches))]

	s.SectionBackgroundColor = sw.Background
	s.SectionTextColor = sw.Text
	if sw.Border != "" {
		s.SectionBorderColor = sw.Border
	} else {
		s.SectionBorderColor = "transparent"
	}
	return s
}

// SwatchAt: swatch dengan wraparound yang sama dengan ApplyPaletteToSection.
func SwatchAt(p *Palette, idx int) Swatch {
	return p.Swatches[wrapIndex(idx, len(p.Swatches))]
}

// wrapIndex: modulo Euclid, hasil selalu [0, n).
func wrapIndex(i, n int) int {
	return ((i % n) + n) % n
}
