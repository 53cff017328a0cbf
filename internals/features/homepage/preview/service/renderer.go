package service

import (
	"context"
	"log"
	"sort"
	"strconv"

	"sasanaku_backend/internals/constants"
	paletteService "sasanaku_backend/internals/features/homepage/palettes/service"
	"sasanaku_backend/internals/features/homepage/preview/dto"
	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
	sectionService "sasanaku_backend/internals/features/homepage/sections/service"
	settingsModel "sasanaku_backend/internals/features/homepage/settings/model"
	"sasanaku_backend/internals/helpers/styles"
)

const (
	MinZoom     = 0.25
	MaxZoom     = 2.0
	DefaultZoom = 1.0
)

type RenderOptions struct {
	Zoom float64
	// Mode edit satu section: hanya section ini yang dirender,
	// termasuk kalau sedang nonaktif.
	OnlySection string
	// Render semua section (admin preview), bukan hanya yang aktif.
	IncludeInactive bool
}

type Renderer struct {
	Store ContentStore
}

func NewRenderer(store ContentStore) *Renderer {
	return &Renderer{Store: store}
}

// Render menyusun tree preview homepage: section terurut, warna hasil
// resolve palette (override → halaman → global → default), dan konten
// per section dengan placeholder kalau sumbernya bermasalah.
func (r *Renderer) Render(
	ctx context.Context,
	sections []sectionModel.SectionModel,
	settings settingsModel.HomepageSettingsModel,
	custom []paletteService.Palette,
	opts RenderOptions,
) dto.RenderTree {
	ordered := make([]sectionModel.SectionModel, len(sections))
	copy(ordered, sections)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].SectionOrder < ordered[j].SectionOrder
	})

	colorMode := settings.SettingsColorMode
	if colorMode == "" {
		colorMode = settingsModel.ColorModeUniform
	}

	pagePaletteID := settings.SettingsPaletteID
	if pagePaletteID == "" {
		if settings.SettingsGlobalPaletteID != "" {
			pagePaletteID = settings.SettingsGlobalPaletteID
		} else {
			pagePaletteID = paletteService.DefaultPaletteID
		}
	}

	overrides := sectionService.OverrideMap(ordered)

	tree := dto.RenderTree{
		Zoom:      clampZoom(opts.Zoom),
		ColorMode: colorMode,
		PaletteID: pagePaletteID,
	}

	position := 0
	for _, sec := range ordered {
		if opts.OnlySection != "" {
			if sec.SectionID != opts.OnlySection {
				continue
			}
		} else if !sec.SectionIsActive && !opts.IncludeInactive {
			continue
		}

		paletteID := paletteService.EffectivePaletteID(
			sec, overrides, settings.SettingsPaletteID, settings.SettingsGlobalPaletteID)

		swatchIdx := 0
		if colorMode == settingsModel.ColorModeAlternating {
			swatchIdx = position
		}

		colored := paletteService.ApplyPaletteToSection(sec, paletteID, swatchIdx, custom)

		tree.Sections = append(tree.Sections, dto.SectionNode{
			SectionID:   sec.SectionID,
			SectionName: sec.SectionName,
			Order:       sec.SectionOrder,
			IsActive:    sec.SectionIsActive,
			PaletteID:   paletteID,
			SwatchIndex: swatchIdx,
			Style:       buildStyle(colored),
			Content:     r.contentFor(ctx, sec.SectionID),
			Placeholder: false,
		})
		node := &tree.Sections[len(tree.Sections)-1]
		if node.Content == nil {
			node.Content = placeholderContent(sec.SectionID)
			node.Placeholder = true
		}
		position++
	}

	return tree
}

func clampZoom(z float64) float64 {
	if z == 0 {
		return DefaultZoom
	}
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

func buildStyle(s sectionModel.SectionModel) dto.ContainerStyle {
	alignItems, justifyContent := styles.AlignToFlex(s.SectionVerticalAlign, s.SectionHorizontalAlign)

	st := dto.ContainerStyle{
		BackgroundColor:    s.SectionBackgroundColor,
		BackgroundImageURL: s.SectionBackgroundImageURL,
		TextColor:          s.SectionTextColor,
		BorderColor:        s.SectionBorderColor,
		BorderWidth:        strconv.Itoa(s.SectionBorderWidth) + "px",
		BorderRadius:       strconv.Itoa(s.SectionBorderRadius) + "px",
		Padding:            s.SectionPadding,
		Margin:             s.SectionMargin,
		Width:              s.SectionWidth,
		Height:             s.SectionHeight,
		AlignItems:         alignItems,
		JustifyContent:     justifyContent,
	}
	if s.SectionTextBgEnabled {
		st.TextBgColor = s.SectionTextBgColor
	}
	return st
}

// contentFor mengambil konten section dari store; nil berarti pakai placeholder.
func (r *Renderer) contentFor(ctx context.Context, sectionID string) map[string]any {
	if r.Store == nil {
		return nil
	}

	switch sectionID {
	case constants.SectionHero:
		slides, err := r.Store.HeroSlides(ctx)
		if err != nil || len(slides) == 0 {
			logContentMiss(sectionID, err)
			return nil
		}
		autoAdvance := 0
		if len(slides) > 1 {
			autoAdvance = constants.HeroAutoAdvanceMs
		}
		return map[string]any{
			"slides":          slides,
			"auto_advance_ms": autoAdvance,
			"dot_count":       len(slides),
		}

	case constants.SectionWhyChoose:
		cards, err := r.Store.WhyChooseCards(ctx)
		if err != nil || len(cards) == 0 {
			logContentMiss(sectionID, err)
			return nil
		}
		return map[string]any{"cards": cards}

	case constants.SectionLocation:
		cfg, err := r.Store.LocationConfig(ctx)
		if err != nil || cfg == nil {
			logContentMiss(sectionID, err)
			return nil
		}
		return map[string]any{
			"address":        cfg.LocationAddress,
			"maps_embed_url": cfg.LocationMapsEmbedURL,
			"phone":          cfg.LocationPhone,
			"whatsapp":       cfg.LocationWhatsapp,
			"open_hours":     cfg.LocationOpenHours,
		}

	case constants.SectionFeaturedPrograms:
		programs, err := r.Store.FeaturedPrograms(ctx)
		if err != nil || len(programs) == 0 {
			logContentMiss(sectionID, err)
			return nil
		}
		return map[string]any{"programs": programs}

	case constants.SectionMethodology:
		items, err := r.Store.MethodologyItems(ctx)
		if err != nil || len(items) == 0 {
			logContentMiss(sectionID, err)
			return nil
		}
		return map[string]any{"items": items}

	case constants.SectionFeaturedProducts:
		products, err := r.Store.FeaturedProducts(ctx)
		if err != nil || len(products) == 0 {
			logContentMiss(sectionID, err)
			return nil
		}
		return map[string]any{"products": products}

	case constants.SectionCTA:
		cfg, err := r.Store.CTAConfig(ctx)
		if err != nil || cfg == nil {
			logContentMiss(sectionID, err)
			return nil
		}
		return map[string]any{
			"heading":      cfg.CTAHeading,
			"subheading":   cfg.CTASubheading,
			"button_label": cfg.CTAButtonLabel,
			"button_url":   cfg.CTAButtonURL,
			"features":     cfg.CTAFeatures,
		}

	default:
		// id tidak dikenal tetap dapat placeholder generik
		return nil
	}
}

func logContentMiss(sectionID string, err error) {
	if err != nil {
		log.Println("[WARN] Konten section", sectionID, "pakai placeholder:", err)
	}
}
