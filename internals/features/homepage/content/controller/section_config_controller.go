package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sasanaku_backend/internals/features/homepage/content/model"
	helper "sasanaku_backend/internals/helpers"
)

// SectionConfigController: dua singleton config (CTA & lokasi), masing-masing
// satu row dengan id tetap 1. Row hilang → dibuat sekali dengan default.
type SectionConfigController struct {
	DB *gorm.DB
}

func NewSectionConfigController(db *gorm.DB) *SectionConfigController {
	return &SectionConfigController{DB: db}
}

// ✅ GET: Config CTA (publik / preview)
func (ctrl *SectionConfigController) GetCTAConfig(c *fiber.Ctx) error {
	var cfg model.CTAConfigModel
	err := ctrl.DB.WithContext(c.UserContext()).Where("cta_id = ?", 1).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = defaultCTAConfig()
		if cerr := ctrl.DB.WithContext(c.UserContext()).Create(&cfg).Error; cerr != nil {
			log.Println("[WARN] Gagal seed cta_config:", cerr)
		}
		err = nil
	}
	if err != nil {
		log.Println("[ERROR] Gagal ambil cta_config:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data CTA")
	}
	return helper.JsonOK(c, "Config CTA", cfg)
}

// ✅ PUT: Admin - Update config CTA
func (ctrl *SectionConfigController) UpdateCTAConfig(c *fiber.Ctx) error {
	var req model.CTAConfigModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	req.CTAID = 1

	res := ctrl.DB.WithContext(c.UserContext()).Model(&model.CTAConfigModel{}).
		Where("cta_id = ?", 1).
		Select("*").
		Omit("cta_id").Updates(&req)
	if res.Error != nil {
		log.Println("[ERROR] Gagal update cta_config:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update data")
	}
	if res.RowsAffected == 0 {
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&req).Error; err != nil {
			log.Println("[ERROR] Gagal insert cta_config:", err)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal simpan data")
		}
	}
	return helper.JsonUpdated(c, "Config CTA disimpan", req)
}

// ✅ GET: Config lokasi (publik / preview)
func (ctrl *SectionConfigController) GetLocationConfig(c *fiber.Ctx) error {
	var cfg model.LocationConfigModel
	err := ctrl.DB.WithContext(c.UserContext()).Where("location_id = ?", 1).First(&cfg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		cfg = defaultLocationConfig()
		if cerr := ctrl.DB.WithContext(c.UserContext()).Create(&cfg).Error; cerr != nil {
			log.Println("[WARN] Gagal seed location_config:", cerr)
		}
		err = nil
	}
	if err != nil {
		log.Println("[ERROR] Gagal ambil location_config:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data lokasi")
	}
	return helper.JsonOK(c, "Config lokasi", cfg)
}

// ✅ PUT: Admin - Update config lokasi
func (ctrl *SectionConfigController) UpdateLocationConfig(c *fiber.Ctx) error {
	var req model.LocationConfigModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	req.LocationID = 1

	res := ctrl.DB.WithContext(c.UserContext()).Model(&model.LocationConfigModel{}).
		Where("location_id = ?", 1).
		Select("*").
		Omit("location_id").Updates(&req)
	if res.Error != nil {
		log.Println("[ERROR] Gagal update location_config:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update data")
	}
	if res.RowsAffected == 0 {
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&req).Error; err != nil {
			log.Println("[ERROR] Gagal insert location_config:", err)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal simpan data")
		}
	}
	return helper.JsonUpdated(c, "Config lokasi disimpan", req)
}

func defaultCTAConfig() model.CTAConfigModel {
	return model.CTAConfigModel{
		CTAID:          1,
		CTAHeading:     "Siap Mulai Latihan?",
		CTASubheading:  "Kelas percobaan gratis untuk anggota baru.",
		CTAButtonLabel: "Daftar Sekarang",
		CTAButtonURL:   "/contact",
	}
}

func defaultLocationConfig() model.LocationConfigModel {
	return model.LocationConfigModel{
		LocationID:      1,
		LocationAddress: "Jl. Merdeka No. 45, Bandung",
		LocationPhone:   "022-1234567",
	}
}
