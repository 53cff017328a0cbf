package controller

import (
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"sasanaku_backend/internals/features/homepage/content/model"
	helper "sasanaku_backend/internals/helpers"
)

type ProgramController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewProgramController(db *gorm.DB) *ProgramController {
	return &ProgramController{DB: db, Validate: validator.New()}
}

type programRequest struct {
	ProgramName        string   `json:"program_name" validate:"required,min=2,max=255"`
	ProgramDescription string   `json:"program_description"`
	ProgramImageURL    string   `json:"program_image_url"`
	ProgramLevel       string   `json:"program_level" validate:"omitempty,oneof=pemula menengah lanjutan"`
	ProgramSchedule    string   `json:"program_schedule"`
	ProgramHighlights  []string `json:"program_highlights"`
	ProgramIsFeatured  bool     `json:"program_is_featured"`
	ProgramOrder       int      `json:"program_order"`
	ProgramIsActive    *bool    `json:"program_is_active"`
}

// ✅ GET: Program unggulan aktif (publik / preview)
func (ctrl *ProgramController) GetFeaturedPrograms(c *fiber.Ctx) error {
	var programs []model.ProgramModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("program_is_active = ? AND program_is_featured = ?", true, true).
		Order("program_order").Limit(6).
		Find(&programs).Error; err != nil {
		log.Println("[ERROR] Gagal ambil program unggulan:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data program")
	}
	return helper.JsonList(c, "Program unggulan", programs, nil)
}

// ✅ GET: Admin - semua program (paginated)
func (ctrl *ProgramController) GetAllProgramsAdmin(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.ProgramModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data")
	}

	var programs []model.ProgramModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("program_order").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&programs).Error; err != nil {
		log.Println("[ERROR] Gagal ambil semua program admin:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Semua program", programs, &p)
}

// ✅ POST: Admin - Tambah program
func (ctrl *ProgramController) CreateProgram(c *fiber.Ctx) error {
	var req programRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	if fe := helper.ValidateStruct(ctrl.Validate, req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	active := true
	if req.ProgramIsActive != nil {
		active = *req.ProgramIsActive
	}
	row := model.ProgramModel{
		ProgramID:          uuid.New(),
		ProgramName:        req.ProgramName,
		ProgramDescription: req.ProgramDescription,
		ProgramImageURL:    req.ProgramImageURL,
		ProgramLevel:       req.ProgramLevel,
		ProgramSchedule:    req.ProgramSchedule,
		ProgramHighlights:  pq.StringArray(req.ProgramHighlights),
		ProgramIsFeatured:  req.ProgramIsFeatured,
		ProgramOrder:       req.ProgramOrder,
		ProgramIsActive:    active,
		ProgramCreatedAt:   time.Now(),
		ProgramUpdatedAt:   time.Now(),
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&row).Error; err != nil {
		log.Println("[ERROR] Gagal tambah program:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal tambah data")
	}
	return helper.JsonCreated(c, "Program berhasil ditambahkan", row)
}

// ✅ PUT: Admin - Edit program
func (ctrl *ProgramController) UpdateProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing model.ProgramModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("program_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	var req programRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	if fe := helper.ValidateStruct(ctrl.Validate, req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	updates := map[string]any{
		"program_name":        req.ProgramName,
		"program_description": req.ProgramDescription,
		"program_image_url":   req.ProgramImageURL,
		"program_level":       req.ProgramLevel,
		"program_schedule":    req.ProgramSchedule,
		"program_highlights":  pq.StringArray(req.ProgramHighlights),
		"program_is_featured": req.ProgramIsFeatured,
		"program_order":       req.ProgramOrder,
		"program_updated_at":  time.Now(),
	}
	if req.ProgramIsActive != nil {
		updates["program_is_active"] = *req.ProgramIsActive
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&existing).
		Updates(updates).Error; err != nil {
		log.Println("[ERROR] Gagal update program:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update data")
	}
	return helper.JsonUpdated(c, "Program berhasil diupdate", nil)
}

// ✅ DELETE: Admin - Hapus program
func (ctrl *ProgramController) DeleteProgram(c *fiber.Ctx) error {
	id := c.Params("id")

	var exists int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.ProgramModel{}).
		Where("program_id = ?", id).Count(&exists).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus data")
	}
	if exists == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("program_id = ?", id).Delete(&model.ProgramModel{}).Error; err != nil {
		log.Println("[ERROR] Gagal hapus program:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus data")
	}
	return helper.JsonDeleted(c, "Program berhasil dihapus", fiber.Map{"id": id})
}
