package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paletteModel "sasanaku_backend/internals/features/homepage/palettes/model"
	paletteService "sasanaku_backend/internals/features/homepage/palettes/service"
	"sasanaku_backend/internals/features/homepage/settings/model"
	helper "sasanaku_backend/internals/helpers"
)

type SettingsController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSettingsController(db *gorm.DB) *SettingsController {
	return &SettingsController{DB: db, Validate: validator.New()}
}

type updateSettingsRequest struct {
	PaletteID       string `json:"palette_id"`
	ColorMode       string `json:"color_mode" validate:"omitempty,oneof=uniform alternating"`
	GlobalPaletteID string `json:"global_palette_id"`
}

// ✅ GET: Settings halaman; belum ada row → default in-memory (tidak menulis)
func (ctrl *SettingsController) GetSettings(c *fiber.Ctx) error {
	var st model.HomepageSettingsModel
	err := ctrl.DB.WithContext(c.UserContext()).First(&st, "settings_id = ?", 1).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Println("[WARN] Gagal ambil settings, pakai default:", err)
		}
		st = model.HomepageSettingsModel{
			SettingsID:        1,
			SettingsPaletteID: paletteService.DefaultPaletteID,
			SettingsColorMode: model.ColorModeUniform,
		}
	}
	return helper.JsonOK(c, "Settings homepage", st)
}

// ✅ PUT: Admin - update settings halaman (palette, color mode, global palette)
func (ctrl *SettingsController) UpdateSettings(c *fiber.Ctx) error {
	var req updateSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	if fe := helper.ValidateStruct(ctrl.Validate, req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	if req.PaletteID != "" && !ctrl.paletteExists(c, req.PaletteID) {
		return helper.JsonError(c, http.StatusNotFound, "Palette tidak ditemukan: "+req.PaletteID)
	}

	st := model.HomepageSettingsModel{
		SettingsID:              1,
		SettingsPaletteID:       req.PaletteID,
		SettingsColorMode:       req.ColorMode,
		SettingsGlobalPaletteID: req.GlobalPaletteID,
	}
	if st.SettingsColorMode == "" {
		st.SettingsColorMode = model.ColorModeUniform
	}

	// update dulu; belum ada row → insert
	res := ctrl.DB.WithContext(c.UserContext()).Model(&model.HomepageSettingsModel{}).
		Where("settings_id = ?", 1).
		Select("*").
		Omit("settings_id").
		Updates(&st)
	if res.Error != nil {
		log.Println("[ERROR] Gagal update settings:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal simpan settings")
	}
	if res.RowsAffected == 0 {
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&st).Error; err != nil {
			log.Println("[ERROR] Gagal insert settings:", err)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal simpan settings")
		}
	}
	return helper.JsonUpdated(c, "Settings homepage disimpan", st)
}

func (ctrl *SettingsController) paletteExists(c *fiber.Ctx, id string) bool {
	var rows []paletteModel.CustomPaletteModel
	if err := ctrl.DB.WithContext(c.UserContext()).Find(&rows).Error; err != nil {
		log.Println("[WARN] Custom palette tidak termuat:", err)
	}
	return paletteService.GetPaletteByID(id, paletteModel.ToPaletteList(rows)) != nil
}
