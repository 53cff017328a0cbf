package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"sasanaku_backend/internals/constants"
	paletteService "sasanaku_backend/internals/features/homepage/palettes/service"
	contentModel "sasanaku_backend/internals/features/homepage/content/model"
	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
	sectionService "sasanaku_backend/internals/features/homepage/sections/service"
	settingsModel "sasanaku_backend/internals/features/homepage/settings/model"
)

type stubStore struct {
	err    error
	slides []contentModel.HeroSlideModel
	cards  []contentModel.WhyChooseCardModel
}

func (s *stubStore) HeroSlides(context.Context) ([]contentModel.HeroSlideModel, error) {
	return s.slides, s.err
}
func (s *stubStore) WhyChooseCards(context.Context) ([]contentModel.WhyChooseCardModel, error) {
	return s.cards, s.err
}
func (s *stubStore) MethodologyItems(context.Context) ([]contentModel.MethodologyItemModel, error) {
	return nil, s.err
}
func (s *stubStore) FeaturedPrograms(context.Context) ([]contentModel.ProgramModel, error) {
	return nil, s.err
}
func (s *stubStore) FeaturedProducts(context.Context) ([]contentModel.ProductModel, error) {
	return nil, s.err
}
func (s *stubStore) CTAConfig(context.Context) (*contentModel.CTAConfigModel, error) {
	return nil, s.err
}
func (s *stubStore) LocationConfig(context.Context) (*contentModel.LocationConfigModel, error) {
	return nil, s.err
}

func defaultSettings() settingsModel.HomepageSettingsModel {
	return settingsModel.HomepageSettingsModel{
		SettingsID:        1,
		SettingsPaletteID: "garuda",
		SettingsColorMode: settingsModel.ColorModeUniform,
	}
}

func TestRenderNeverEmptyWhenStoreFails(t *testing.T) {
	r := NewRenderer(&stubStore{err: errors.New("relation does not exist")})
	tree := r.Render(context.Background(), sectionService.DefaultSections(), defaultSettings(), nil, RenderOptions{})

	require.Len(t, tree.Sections, len(constants.KnownSectionIDs))
	for _, node := range tree.Sections {
		require.True(t, node.Placeholder, "section %s harus placeholder", node.SectionID)
		require.NotEmpty(t, node.Content, "section %s tidak boleh kosong", node.SectionID)
	}
}

func TestRenderSortsByOrder(t *testing.T) {
	sections := sectionService.DefaultSections()
	sections[0].SectionOrder = 99 // hero pindah ke akhir

	r := NewRenderer(&stubStore{})
	tree := r.Render(context.Background(), sections, defaultSettings(), nil, RenderOptions{})

	last := tree.Sections[len(tree.Sections)-1]
	require.Equal(t, constants.SectionHero, last.SectionID)
}

func TestRenderSkipsInactiveUnlessIncluded(t *testing.T) {
	sections := sectionService.DefaultSections()
	sections[1].SectionIsActive = false

	r := NewRenderer(&stubStore{})

	tree := r.Render(context.Background(), sections, defaultSettings(), nil, RenderOptions{})
	require.Len(t, tree.Sections, len(sections)-1)

	tree = r.Render(context.Background(), sections, defaultSettings(), nil, RenderOptions{IncludeInactive: true})
	require.Len(t, tree.Sections, len(sections))
}

func TestRenderOnlySectionIncludesInactive(t *testing.T) {
	sections := sectionService.DefaultSections()
	for i := range sections {
		sections[i].SectionIsActive = false
	}

	r := NewRenderer(&stubStore{})
	tree := r.Render(context.Background(), sections, defaultSettings(), nil, RenderOptions{
		OnlySection: constants.SectionCTA,
	})

	require.Len(t, tree.Sections, 1)
	require.Equal(t, constants.SectionCTA, tree.Sections[0].SectionID)
}

func TestRenderAlternatingSwatchIndexFollowsPosition(t *testing.T) {
	settings := defaultSettings()
	settings.SettingsColorMode = settingsModel.ColorModeAlternating

	r := NewRenderer(&stubStore{})
	tree := r.Render(context.Background(), sectionService.DefaultSections(), settings, nil, RenderOptions{})

	for i, node := range tree.Sections {
		require.Equal(t, i, node.SwatchIndex)
	}

	// uniform: semua swatch 0
	settings.SettingsColorMode = settingsModel.ColorModeUniform
	tree = r.Render(context.Background(), sectionService.DefaultSections(), settings, nil, RenderOptions{})
	for _, node := range tree.Sections {
		require.Equal(t, 0, node.SwatchIndex)
	}
}

func TestRenderAppliesPaletteColors(t *testing.T) {
	sections := sectionService.DefaultSections()

	r := NewRenderer(&stubStore{})
	tree := r.Render(context.Background(), sections, defaultSettings(), nil, RenderOptions{})

	garuda := paletteService.GetPaletteByID("garuda", nil)
	require.NotNil(t, garuda)
	require.Equal(t, garuda.Swatches[0].Background, tree.Sections[0].Style.BackgroundColor)
	require.Equal(t, garuda.Swatches[0].Text, tree.Sections[0].Style.TextColor)
}

func TestRenderSectionOverrideBeatsPageSetting(t *testing.T) {
	sections := sectionService.DefaultSections()
	for i := range sections {
		if sections[i].SectionID == constants.SectionCTA {
			sections[i].SectionPaletteOverride = "senja"
		}
	}

	r := NewRenderer(&stubStore{})
	tree := r.Render(context.Background(), sections, defaultSettings(), nil, RenderOptions{})

	for _, node := range tree.Sections {
		if node.SectionID == constants.SectionCTA {
			require.Equal(t, "senja", node.PaletteID)
		} else {
			require.Equal(t, "garuda", node.PaletteID)
		}
	}
}

func TestRenderHeroAutoAdvance(t *testing.T) {
	twoSlides := []contentModel.HeroSlideModel{
		{SlideTitle: "Satu"},
		{SlideTitle: "Dua"},
	}

	r := NewRenderer(&stubStore{slides: twoSlides})
	tree := r.Render(context.Background(), sectionService.DefaultSections(), defaultSettings(), nil, RenderOptions{
		OnlySection: constants.SectionHero,
	})

	hero := tree.Sections[0]
	require.False(t, hero.Placeholder)
	require.Equal(t, constants.HeroAutoAdvanceMs, hero.Content["auto_advance_ms"])
	require.Equal(t, 2, hero.Content["dot_count"])

	// satu slide: tidak auto-advance
	r = NewRenderer(&stubStore{slides: twoSlides[:1]})
	tree = r.Render(context.Background(), sectionService.DefaultSections(), defaultSettings(), nil, RenderOptions{
		OnlySection: constants.SectionHero,
	})
	require.Equal(t, 0, tree.Sections[0].Content["auto_advance_ms"])
}

func TestClampZoom(t *testing.T) {
	require.Equal(t, DefaultZoom, clampZoom(0))
	require.Equal(t, MinZoom, clampZoom(0.01))
	require.Equal(t, MaxZoom, clampZoom(5))
	require.Equal(t, 0.75, clampZoom(0.75))
}

func TestRenderUnknownSectionGetsGenericPlaceholder(t *testing.T) {
	sections := []sectionModel.SectionModel{
		{SectionID: "testimonials", SectionName: "Testimoni", SectionOrder: 1, SectionIsActive: true},
	}

	r := NewRenderer(&stubStore{})
	tree := r.Render(context.Background(), sections, defaultSettings(), nil, RenderOptions{})

	require.Len(t, tree.Sections, 1)
	require.True(t, tree.Sections[0].Placeholder)
	require.NotEmpty(t, tree.Sections[0].Content)
}
