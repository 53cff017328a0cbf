package service

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"sasanaku_backend/internals/features/homepage/sections/model"
)

func sampleSections() []model.SectionModel {
	return []model.SectionModel{
		{SectionID: "hero", SectionOrder: 1},
		{SectionID: "why_choose", SectionOrder: 2},
		{SectionID: "cta", SectionOrder: 3},
	}
}

func TestReorder_MoveHeroToEnd(t *testing.T) {
	list := Reorder(sampleSections(), 0, 2)

	require.Equal(t, "why_choose", list[0].SectionID)
	require.Equal(t, "cta", list[1].SectionID)
	require.Equal(t, "hero", list[2].SectionID)
	require.Equal(t, []int{1, 2, 3}, orders(list))
}

func TestReorder_RenumberingIsContiguousPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	list := DefaultSections()
	for i := 0; i < 50; i++ {
		list = Reorder(list, rng.Intn(len(list)), rng.Intn(len(list)))
		want := make([]int, len(list))
		for j := range want {
			want[j] = j + 1
		}
		require.Equal(t, want, orders(list), "iterasi %d", i)
	}
}

func TestReorder_OutOfRangeIsNoop(t *testing.T) {
	list := Reorder(sampleSections(), -1, 2)
	require.Equal(t, "hero", list[0].SectionID)
	require.Equal(t, []int{1, 2, 3}, orders(list))

	list = Reorder(sampleSections(), 0, 99)
	require.Equal(t, "hero", list[0].SectionID)
}

func TestToggleActive(t *testing.T) {
	list := sampleSections()
	list[0].SectionIsActive = true

	ToggleActive(list, "hero")
	require.False(t, list[0].SectionIsActive)

	ToggleActive(list, "hero")
	require.True(t, list[0].SectionIsActive)

	// id tak dikenal: no-op
	before := orders(list)
	ToggleActive(list, "ghost")
	require.Equal(t, before, orders(list))
}

func TestUpdateField(t *testing.T) {
	list := sampleSections()

	UpdateField(list, "hero", "section_background_color", "#112233")
	require.Equal(t, "#112233", list[0].SectionBackgroundColor)

	UpdateField(list, "hero", "section_border_width", "4")
	require.Equal(t, 4, list[0].SectionBorderWidth)

	// angka rusak di-coerce ke 0, bukan error
	UpdateField(list, "hero", "section_border_width", "banyak")
	require.Equal(t, 0, list[0].SectionBorderWidth)

	// field tak dikenal: no-op
	UpdateField(list, "hero", "section_nonexistent", "x")
}

func TestUpdateField_UnitToggleConvertsValue(t *testing.T) {
	list := sampleSections()
	list[0].SectionWidth = "600px"
	list[0].SectionHeight = "auto"

	UpdateField(list, "hero", "section_width_unit", "%")
	require.Equal(t, "50%", list[0].SectionWidth)

	UpdateField(list, "hero", "section_width_unit", "px")
	require.Equal(t, "600px", list[0].SectionWidth)

	// auto → %: tinggi default 60%
	UpdateField(list, "hero", "section_height_unit", "%")
	require.Equal(t, "60%", list[0].SectionHeight)
}

func TestUpdateField_BoxShorthandNormalized(t *testing.T) {
	list := sampleSections()

	UpdateField(list, "hero", "section_padding", "10px 20px 10px 20px")
	require.Equal(t, "10px 20px", list[0].SectionPadding)

	// nilai rusak jadi 0, bukan ditolak
	UpdateField(list, "hero", "section_margin", "abc")
	require.Equal(t, "0px", list[0].SectionMargin)
}

func TestUpdateField_TextBgOpacitySync(t *testing.T) {
	list := sampleSections()
	list[0].SectionTextBgColor = "rgba(0, 0, 0, 1)"

	UpdateField(list, "hero", "section_text_bg_opacity", "30")
	require.Equal(t, 30, list[0].SectionTextBgOpacity)
	require.Equal(t, "rgba(0, 0, 0, 0.3)", list[0].SectionTextBgColor)

	UpdateField(list, "hero", "section_text_bg_color", "rgba(10, 20, 30, 0.8)")
	require.Equal(t, 80, list[0].SectionTextBgOpacity)
}

func TestSetPaletteOverride_And_OverrideMap(t *testing.T) {
	list := sampleSections()

	SetPaletteOverride(list, "hero", "garuda")
	require.Equal(t, "garuda", list[0].SectionPaletteOverride)
	require.Equal(t, map[string]string{"hero": "garuda"}, OverrideMap(list))

	SetPaletteOverride(list, "hero", "")
	require.Empty(t, list[0].SectionPaletteOverride)
	require.Empty(t, OverrideMap(list))
}

func TestDefaultSections_Seed(t *testing.T) {
	list := DefaultSections()
	require.Len(t, list, 7)
	require.Equal(t, "hero", list[0].SectionID)
	for i, s := range list {
		require.Equal(t, i+1, s.SectionOrder)
		require.True(t, s.SectionIsActive)
	}
}

func orders(list []model.SectionModel) []int {
	out := make([]int, len(list))
	for i, s := range list {
		out[i] = s.SectionOrder
	}
	return out
}
