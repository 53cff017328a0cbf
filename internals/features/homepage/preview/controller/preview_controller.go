package controller

import (
	"errors"
	"log"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paletteModel "sasanaku_backend/internals/features/homepage/palettes/model"
	paletteService "sasanaku_backend/internals/features/homepage/palettes/service"
	previewService "sasanaku_backend/internals/features/homepage/preview/service"
	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
	sectionService "sasanaku_backend/internals/features/homepage/sections/service"
	settingsModel "sasanaku_backend/internals/features/homepage/settings/model"
	settingsService "sasanaku_backend/internals/features/homepage/settings/service"
	helper "sasanaku_backend/internals/helpers"
)

type PreviewController struct {
	DB       *gorm.DB
	Renderer *previewService.Renderer
}

func NewPreviewController(db *gorm.DB) *PreviewController {
	return &PreviewController{
		DB:       db,
		Renderer: previewService.NewRenderer(previewService.NewContentStore(db)),
	}
}

// ✅ GET /preview - render tree homepage.
// Query: zoom (0.25-2.0), section (mode edit satu section), all=true (ikut yang nonaktif)
func (ctrl *PreviewController) GetPreview(c *fiber.Ctx) error {
	sections := ctrl.loadSections(c)
	settings := ctrl.loadSettings(c)
	custom := ctrl.loadCustomPalettes(c)

	zoom, _ := strconv.ParseFloat(c.Query("zoom"), 64)
	opts := previewService.RenderOptions{
		Zoom:            zoom,
		OnlySection:     c.Query("section"),
		IncludeInactive: c.Query("all") == "true",
	}

	tree := ctrl.Renderer.Render(c.UserContext(), sections, settings, custom, opts)
	return helper.JsonOK(c, "Preview homepage", tree)
}

// ✅ GET /theme-tokens - CSS custom properties hasil resolve palette halaman
func (ctrl *PreviewController) GetThemeTokens(c *fiber.Ctx) error {
	settings := ctrl.loadSettings(c)
	custom := ctrl.loadCustomPalettes(c)

	paletteID := settings.SettingsPaletteID
	if paletteID == "" {
		paletteID = settings.SettingsGlobalPaletteID
	}
	p := paletteService.GetPaletteByID(paletteID, custom)

	return helper.JsonOK(c, "Theme tokens", settingsService.BuildThemeTokens(settings, p))
}

// Sumber data preview selalu degrade, tidak pernah 500:
// tabel hilang atau kosong → default in-memory, renderer yang kasih placeholder.
func (ctrl *PreviewController) loadSections(c *fiber.Ctx) []sectionModel.SectionModel {
	var sections []sectionModel.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("section_order").Find(&sections).Error; err != nil {
		log.Println("[WARN] Preview pakai section default:", err)
		return sectionService.DefaultSections()
	}
	if len(sections) == 0 {
		return sectionService.DefaultSections()
	}
	return sections
}

func (ctrl *PreviewController) loadSettings(c *fiber.Ctx) settingsModel.HomepageSettingsModel {
	var st settingsModel.HomepageSettingsModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&st, "settings_id = ?", 1).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[WARN] Preview pakai settings default:", err)
		}
		return settingsModel.HomepageSettingsModel{
			SettingsID:        1,
			SettingsPaletteID: paletteService.DefaultPaletteID,
			SettingsColorMode: settingsModel.ColorModeUniform,
		}
	}
	return st
}

func (ctrl *PreviewController) loadCustomPalettes(c *fiber.Ctx) []paletteService.Palette {
	var rows []paletteModel.CustomPaletteModel
	if err := ctrl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		log.Println("[WARN] Custom palette tidak termuat:", err)
		return nil
	}
	return paletteModel.ToPaletteList(rows)
}
