package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sasanaku_backend/internals/features/homepage/palettes/dto"
	"sasanaku_backend/internals/features/homepage/palettes/model"
	"sasanaku_backend/internals/features/homepage/palettes/service"
	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
	helper "sasanaku_backend/internals/helpers"
)

type PaletteController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaletteController(db *gorm.DB) *PaletteController {
	return &PaletteController{DB: db, Validate: validator.New()}
}

// ✅ GET: Semua palette (built-in + custom) untuk picker admin
func (ctrl *PaletteController) GetAllPalettes(c *fiber.Ctx) error {
	custom, err := ctrl.loadCustomPalettes()
	if err != nil {
		log.Println("[ERROR] Gagal ambil custom palettes:", err)
		// built-in tetap dikirim; custom kosong bukan alasan gagal total
		custom = nil
	}
	return helper.JsonOK(c, "Daftar palette", dto.PaletteListResponse{
		BuiltIn: service.BuiltInPalettes,
		Custom:  custom,
	})
}

// ✅ POST: Admin - Buat custom palette
func (ctrl *PaletteController) CreateCustomPalette(c *fiber.Ctx) error {
	var req dto.CreateCustomPaletteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	if fe := helper.ValidateStruct(ctrl.Validate, req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	// key tidak boleh menutupi palette built-in
	if service.GetPaletteByID(req.PaletteKey, nil) != nil {
		return helper.JsonError(c, http.StatusConflict, "Key palette sudah dipakai palette bawaan")
	}

	row := req.ToModel()
	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		// unique index di key: tabrakan = konflik, bukan server error
		if helper.IsUniqueViolation(err) {
			return helper.JsonError(c, http.StatusConflict, "Key palette sudah dipakai")
		}
		log.Println("[ERROR] Gagal simpan custom palette:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal simpan palette")
	}

	return helper.JsonCreated(c, "Palette berhasil dibuat", row.ToPalette())
}

// ✅ DELETE: Admin - Hapus custom palette (wajib konfirmasi eksplisit)
func (ctrl *PaletteController) DeleteCustomPalette(c *fiber.Ctx) error {
	key := c.Params("key")
	if c.Query("confirm") != "true" {
		return helper.JsonError(c, http.StatusBadRequest, "Penghapusan butuh konfirmasi (?confirm=true)")
	}

	var row model.CustomPaletteModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("custom_palette_key = ?", key).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Palette tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus palette")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Delete(&row).Error; err != nil {
		log.Println("[ERROR] Gagal hapus custom palette:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus palette")
	}

	return helper.JsonDeleted(c, "Palette berhasil dihapus", fiber.Map{"key": key})
}

// ✅ POST: Admin - Terapkan swatch palette ke satu section lalu simpan
func (ctrl *PaletteController) ApplyPaletteToSection(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.ApplyPaletteRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	if fe := helper.ValidateStruct(ctrl.Validate, req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var sec sectionModel.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("section_id = ?", id).First(&sec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil section")
	}

	custom, err := ctrl.loadCustomPalettes()
	if err != nil {
		log.Println("[ERROR] Gagal ambil custom palettes:", err)
		custom = nil
	}

	if service.GetPaletteByID(req.PaletteID, custom) == nil {
		return helper.JsonError(c, http.StatusNotFound, "Palette tidak ditemukan")
	}
	applied := service.ApplyPaletteToSection(sec, req.PaletteID, req.SwatchIndex, custom)

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&sectionModel.SectionModel{}).
		Where("section_id = ?", id).
		Updates(map[string]any{
			"section_background_color": applied.SectionBackgroundColor,
			"section_text_color":       applied.SectionTextColor,
			"section_border_color":     applied.SectionBorderColor,
		}).Error; err != nil {
		log.Println("[ERROR] Gagal terapkan palette:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal terapkan palette")
	}

	return helper.JsonUpdated(c, "Palette diterapkan ke section", applied)
}

func (ctrl *PaletteController) loadCustomPalettes() ([]service.Palette, error) {
	var rows []model.CustomPaletteModel
	if err := ctrl.DB.Order("custom_palette_created_at").Find(&rows).Error; err != nil {
		return nil, err
	}
	return model.ToPaletteList(rows), nil
}
