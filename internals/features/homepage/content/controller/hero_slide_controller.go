package controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sasanaku_backend/internals/features/homepage/content/model"
	helper "sasanaku_backend/internals/helpers"
	oss "sasanaku_backend/internals/helpers/oss"
)

type HeroSlideController struct {
	DB   *gorm.DB
	Blob oss.BlobService // nil kalau storage belum dikonfigurasi
}

func NewHeroSlideController(db *gorm.DB) *HeroSlideController {
	blob, err := oss.NewBlobServiceFromEnv("uploads")
	if err != nil {
		log.Println("[WARN] Blob storage nonaktif:", err)
	}
	return &HeroSlideController{DB: db, Blob: blob}
}

// ✅ GET: Slide aktif untuk web publik
func (ctrl *HeroSlideController) GetActiveSlides(c *fiber.Ctx) error {
	var slides []model.HeroSlideModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("slide_is_active = ?", true).
		Order("slide_order ASC, slide_created_at ASC").
		Find(&slides).Error; err != nil {
		log.Println("[ERROR] Gagal ambil hero slides:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data slide")
	}
	return helper.JsonList(c, "Daftar slide", slides, nil)
}

// ✅ GET: Admin - semua slide termasuk nonaktif
func (ctrl *HeroSlideController) GetAllSlidesAdmin(c *fiber.Ctx) error {
	var slides []model.HeroSlideModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("slide_order").Find(&slides).Error; err != nil {
		log.Println("[ERROR] Gagal ambil semua slide admin:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data")
	}
	return helper.JsonList(c, "Semua slide", slides, nil)
}

// ✅ POST: Admin - Tambah slide
func (ctrl *HeroSlideController) CreateSlide(c *fiber.Ctx) error {
	var req model.HeroSlideModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}

	req.SlideID = uuid.New()
	req.SlideCreatedAt = time.Now()
	req.SlideUpdatedAt = time.Now()

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&req).Error; err != nil {
		log.Println("[ERROR] Gagal tambah slide:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal tambah data")
	}
	return helper.JsonCreated(c, "Slide berhasil ditambahkan", req)
}

// ✅ PUT: Admin - Edit slide
func (ctrl *HeroSlideController) UpdateSlide(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing model.HeroSlideModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("slide_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	var req model.HeroSlideModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	req.SlideUpdatedAt = time.Now()

	// Hindari overwrite field yang tidak seharusnya
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&existing).
		Select("*").
		Omit("slide_id", "slide_created_at").
		Updates(req).Error; err != nil {
		log.Println("[ERROR] Gagal update slide:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update data")
	}
	return helper.JsonUpdated(c, "Slide berhasil diupdate", nil)
}

// ✅ POST: Admin - Upload gambar slide (re-encode WebP → blob storage)
func (ctrl *HeroSlideController) UploadSlideImage(c *fiber.Ctx) error {
	if ctrl.Blob == nil {
		return helper.JsonError(c, http.StatusServiceUnavailable, "Storage belum dikonfigurasi")
	}
	id := c.Params("id")

	var existing model.HeroSlideModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("slide_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	fh, err := c.FormFile("image")
	if err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "File image wajib diisi")
	}

	url, err := ctrl.Blob.UploadSectionImage(c.UserContext(), "hero", fh)
	if err != nil {
		log.Println("[ERROR] Gagal upload gambar slide:", err)
		return helper.JsonError(c, http.StatusBadGateway, "Gagal upload gambar")
	}

	// gambar lama dihapus best-effort
	if old := existing.SlideImageURL; old != "" {
		if derr := ctrl.Blob.DeleteByPublicURL(c.UserContext(), old); derr != nil {
			log.Println("[WARN] Gagal hapus gambar lama:", derr)
		}
	}

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&existing).
		Update("slide_image_url", url).Error; err != nil {
		log.Println("[ERROR] Gagal simpan URL gambar:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal simpan URL gambar")
	}
	return helper.JsonUpdated(c, "Gambar slide diperbarui", fiber.Map{"slide_image_url": url})
}

// ✅ DELETE: Admin - Hapus slide
func (ctrl *HeroSlideController) DeleteSlide(c *fiber.Ctx) error {
	id := c.Params("id")

	var exists int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.HeroSlideModel{}).
		Where("slide_id = ?", id).Count(&exists).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus data")
	}
	if exists == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("slide_id = ?", id).Delete(&model.HeroSlideModel{}).Error; err != nil {
		log.Println("[ERROR] Gagal hapus slide:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus data")
	}
	return helper.JsonDeleted(c, "Slide berhasil dihapus", fiber.Map{"id": id})
}
