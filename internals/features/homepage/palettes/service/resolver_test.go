package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
)

func TestEffectivePaletteID_Precedence(t *testing.T) {
	sec := sectionModel.SectionModel{SectionID: "hero", SectionPaletteOverride: "garuda"}
	overrides := map[string]string{"hero": "garuda"}

	// component menang atas page & global
	require.Equal(t, "garuda", EffectivePaletteID(sec, overrides, "rimba", "samudra"))

	// tanpa override component → page
	plain := sectionModel.SectionModel{SectionID: "hero"}
	require.Equal(t, "rimba", EffectivePaletteID(plain, nil, "rimba", "samudra"))

	// tanpa page → global
	require.Equal(t, "samudra", EffectivePaletteID(plain, nil, "", "samudra"))

	// tanpa semuanya → default
	require.Equal(t, "monochrome", EffectivePaletteID(plain, nil, "", ""))
}

func TestEffectivePaletteID_OverrideNeedsMapEntry(t *testing.T) {
	// kolom override terisi tapi map tidak punya entry → tidak dihormati
	sec := sectionModel.SectionModel{SectionID: "hero", SectionPaletteOverride: "garuda"}
	require.Equal(t, "rimba", EffectivePaletteID(sec, map[string]string{}, "rimba", ""))

	// entry map kosong diperlakukan tidak diset
	require.Equal(t, "rimba", EffectivePaletteID(sec, map[string]string{"hero": ""}, "rimba", ""))
}

func TestEffectivePaletteID_EmptyStringEqualsUnset(t *testing.T) {
	plain := sectionModel.SectionModel{SectionID: "cta"}
	require.Equal(t, "monochrome", EffectivePaletteID(plain, map[string]string{}, "   ", ""))
}
