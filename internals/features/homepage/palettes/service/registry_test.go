package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
)

func TestGetPaletteByID(t *testing.T) {
	p := GetPaletteByID("monochrome", nil)
	require.NotNil(t, p)
	require.Equal(t, "monochrome", p.PaletteID)
	require.NotEmpty(t, p.Swatches)

	require.Nil(t, GetPaletteByID("nonexistent", nil))
}

func TestGetPaletteByID_CustomAfterBuiltIn(t *testing.T) {
	custom := []Palette{{
		PaletteID: "sasana-merah",
		Swatches:  []Swatch{{Background: "#900", Text: "#fff", Accent: "#fc0"}},
		IsCustom:  true,
	}}

	p := GetPaletteByID("sasana-merah", custom)
	require.NotNil(t, p)
	require.True(t, p.IsCustom)

	// built-in menang saat id bentrok
	shadow := []Palette{{PaletteID: "monochrome", Swatches: []Swatch{{Background: "#000"}}}}
	p = GetPaletteByID("monochrome", shadow)
	require.NotNil(t, p)
	require.False(t, p.IsCustom)
}

func TestBuiltInPalettes_AllHaveSwatches(t *testing.T) {
	for _, p := range BuiltInPalettes {
		require.NotEmpty(t, p.Swatches, "palette %s", p.PaletteID)
		require.False(t, p.IsCustom, "palette %s", p.PaletteID)
	}
}

func TestApplyPaletteToSection(t *testing.T) {
	s := sectionModel.SectionModel{SectionID: "hero", SectionBackgroundColor: "#000"}

	got := ApplyPaletteToSection(s, "garuda", 0, nil)
	require.Equal(t, "#7f1d1d", got.SectionBackgroundColor)
	require.Equal(t, "#fef2f2", got.SectionTextColor)
	// swatch 0 garuda tanpa border → transparent
	require.Equal(t, "transparent", got.SectionBorderColor)
}

func TestApplyPaletteToSection_Wraparound(t *testing.T) {
	s := sectionModel.SectionModel{SectionID: "hero"}
	n := len(GetPaletteByID("garuda", nil).Swatches)

	base := ApplyPaletteToSection(s, "garuda", 1, nil)
	for _, k := range []int{1 + n, 1 + 3*n, 1 - n, 1 - 2*n} {
		got := ApplyPaletteToSection(s, "garuda", k, nil)
		require.Equal(t, base.SectionBackgroundColor, got.SectionBackgroundColor, "idx %d", k)
		require.Equal(t, base.SectionTextColor, got.SectionTextColor, "idx %d", k)
	}
}

func TestApplyPaletteToSection_UnknownPaletteUnchanged(t *testing.T) {
	s := sectionModel.SectionModel{SectionID: "hero", SectionBackgroundColor: "#123456", SectionTextColor: "#abcdef"}
	got := ApplyPaletteToSection(s, "nonexistent", 0, nil)
	require.Equal(t, s, got)
}
