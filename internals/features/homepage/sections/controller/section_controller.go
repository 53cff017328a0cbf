package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sasanaku_backend/internals/features/homepage/sections/dto"
	"sasanaku_backend/internals/features/homepage/sections/model"
	"sasanaku_backend/internals/features/homepage/sections/service"
	settingsService "sasanaku_backend/internals/features/homepage/settings/service"
	helper "sasanaku_backend/internals/helpers"
	oss "sasanaku_backend/internals/helpers/oss"
)

type SectionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Save     *settingsService.SaveService
	Blob     oss.BlobService // nil kalau storage belum dikonfigurasi
}

func NewSectionController(db *gorm.DB) *SectionController {
	blob, err := oss.NewBlobServiceFromEnv("uploads")
	if err != nil {
		log.Println("[WARN] Blob storage nonaktif:", err)
	}
	return &SectionController{
		DB:       db,
		Validate: validator.New(),
		Save:     settingsService.NewSaveService(db),
		Blob:     blob,
	}
}

// ✅ GET: Section aktif untuk web publik, urut section_order
func (ctrl *SectionController) GetActiveSections(c *fiber.Ctx) error {
	var sections []model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("section_is_active = ?", true).
		Order("section_order").Find(&sections).Error; err != nil {
		log.Println("[ERROR] Gagal ambil sections publik:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data section")
	}
	return helper.JsonList(c, "Section aktif", sections, nil)
}

// ✅ GET: Admin - semua section; tabel kosong di-seed default sekali.
// Tabel belum ada → coba buat; kalau tetap gagal, kirim default in-memory
// dengan pesan detail supaya UI tetap bisa jalan (banner, bukan fatal).
func (ctrl *SectionController) GetAllSectionsAdmin(c *fiber.Ctx) error {
	sections, err := ctrl.loadOrSeed(c)
	if err != nil {
		log.Println("[ERROR] Gagal siapkan sections:", err)
		return helper.JsonList(c,
			"Tabel section belum tersedia ("+err.Error()+"); menampilkan default sementara",
			service.DefaultSections(), nil)
	}
	return helper.JsonList(c, "Semua section", sections, nil)
}

func (ctrl *SectionController) loadOrSeed(c *fiber.Ctx) ([]model.SectionModel, error) {
	load := func() ([]model.SectionModel, error) {
		var sections []model.SectionModel
		err := ctrl.DB.WithContext(c.UserContext()).
			Order("section_order").Find(&sections).Error
		return sections, err
	}

	sections, err := load()
	if err != nil && helper.IsUndefinedTable(err) {
		if merr := ctrl.DB.WithContext(c.UserContext()).AutoMigrate(&model.SectionModel{}); merr != nil {
			return nil, merr
		}
		sections, err = load()
	}
	if err != nil {
		return nil, err
	}

	if len(sections) == 0 {
		sections = service.DefaultSections()
		if err := ctrl.DB.WithContext(c.UserContext()).Create(&sections).Error; err != nil {
			log.Println("[WARN] Gagal seed default sections:", err)
		}
	}
	return sections, nil
}

// ✅ PATCH: Admin - Reorder drag-and-drop; seluruh list dinomori ulang 1..N
func (ctrl *SectionController) ReorderSections(c *fiber.Ctx) error {
	var req dto.ReorderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}

	sections, err := ctrl.loadOrSeed(c)
	if err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data section")
	}

	sections = service.Reorder(sections, req.SourceIndex, req.DestIndex)

	// tulis urutan baru BERURUTAN; berhenti di kegagalan pertama
	for i := range sections {
		if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.SectionModel{}).
			Where("section_id = ?", sections[i].SectionID).
			Update("section_order", sections[i].SectionOrder).Error; err != nil {
			log.Println("[ERROR] Gagal simpan urutan section:", err)
			return helper.JsonError(c, http.StatusInternalServerError, "Gagal simpan urutan")
		}
	}
	return helper.JsonUpdated(c, "Urutan section disimpan", sections)
}

// ✅ PATCH: Admin - Toggle aktif/nonaktif satu section
func (ctrl *SectionController) ToggleSection(c *fiber.Ctx) error {
	id := c.Params("id")

	var sec model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("section_id = ?", id).First(&sec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil section")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&sec).
		Update("section_is_active", !sec.SectionIsActive).Error; err != nil {
		log.Println("[ERROR] Gagal toggle section:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update section")
	}
	sec.SectionIsActive = !sec.SectionIsActive
	return helper.JsonUpdated(c, "Status section diubah", sec)
}

// ✅ PATCH: Admin - Ubah satu field style. Nilai numerik rusak di-coerce, tidak ditolak.
func (ctrl *SectionController) UpdateSectionField(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.FieldUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	if fe := helper.ValidateStruct(ctrl.Validate, req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	var sec model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("section_id = ?", id).First(&sec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, http.StatusNotFound, "Section tidak ditemukan")
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil section")
	}

	list := []model.SectionModel{sec}
	service.UpdateField(list, id, req.Field, req.Value)

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.SectionModel{}).
		Where("section_id = ?", id).
		Select("*").
		Omit("section_id", "section_created_at").
		Updates(&list[0]).Error; err != nil {
		log.Println("[ERROR] Gagal update field section:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update section")
	}
	return helper.JsonUpdated(c, "Field section diupdate", list[0])
}

// ✅ PATCH: Admin - Set/hapus palette override section
func (ctrl *SectionController) SetPaletteOverride(c *fiber.Ctx) error {
	id := c.Params("id")

	var req dto.PaletteOverrideRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}

	res := ctrl.DB.WithContext(c.UserContext()).Model(&model.SectionModel{}).
		Where("section_id = ?", id).
		Update("section_palette_override", req.PaletteID)
	if res.Error != nil {
		log.Println("[ERROR] Gagal set palette override:", res.Error)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update section")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Section tidak ditemukan")
	}

	if req.PaletteID == "" {
		return helper.JsonUpdated(c, "Palette override dihapus", nil)
	}
	return helper.JsonUpdated(c, "Palette override disimpan", fiber.Map{"palette_id": req.PaletteID})
}

// ✅ POST: Admin - Save seluruh halaman (semua section + settings) sekali jalan
func (ctrl *SectionController) SaveHomepage(c *fiber.Ctx) error {
	var req dto.SaveHomepageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	if fe := helper.ValidateStruct(ctrl.Validate, req); fe != nil {
		return helper.JsonValidationError(c, fe)
	}

	service.Renumber(req.Sections)

	err := ctrl.Save.SaveHomepage(c.UserContext(), req.Sections, req.Settings.ToModel())
	switch {
	case err == nil:
		return helper.JsonUpdated(c, "Homepage berhasil disimpan", fiber.Map{
			"sections_saved": len(req.Sections),
		})
	case errors.Is(err, settingsService.ErrSaveInFlight):
		return helper.JsonError(c, http.StatusConflict, "Save sebelumnya masih berjalan, tunggu sebentar")
	default:
		var perm *settingsService.PermissionError
		if errors.As(err, &perm) {
			// policy denial: tidak ada recovery lokal, tampilkan detail apa adanya
			return helper.JsonError(c, http.StatusForbidden, perm.Error())
		}
		log.Println("[ERROR] Gagal save homepage:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal simpan homepage: "+err.Error())
	}
}

// ✅ POST: Admin - Upload background image section (re-encode WebP → blob storage)
func (ctrl *SectionController) UploadSectionBackground(c *fiber.Ctx) error {
	if ctrl.Blob == nil {
		return helper.JsonError(c, http.StatusServiceUnavailable, "Storage belum dikonfigurasi")
	}
	id := c.Params("id")

	var sec model.SectionModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("section_id = ?", id).First(&sec).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Section tidak ditemukan")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "File image wajib diisi")
	}

	url, err := ctrl.Blob.UploadSectionImage(c.UserContext(), id, fh)
	if err != nil {
		log.Println("[ERROR] Gagal upload background section:", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal upload gambar")
	}

	if old := sec.SectionBackgroundImageURL; old != "" {
		if derr := ctrl.Blob.DeleteByPublicURL(c.UserContext(), old); derr != nil {
			log.Println("[WARN] Gagal hapus background lama:", derr)
		}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&sec).
		Update("section_background_image_url", url).Error; err != nil {
		log.Println("[ERROR] Gagal simpan URL background:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal simpan URL gambar")
	}
	return helper.JsonUpdated(c, "Background section diperbarui", fiber.Map{"section_background_image_url": url})
}
