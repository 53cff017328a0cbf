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
)

type WhyChooseCardController struct {
	DB *gorm.DB
}

func NewWhyChooseCardController(db *gorm.DB) *WhyChooseCardController {
	return &WhyChooseCardController{DB: db}
}

// ✅ GET: Kartu aktif untuk web publik
func (ctrl *WhyChooseCardController) GetActiveCards(c *fiber.Ctx) error {
	var cards []model.WhyChooseCardModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("card_is_active = ?", true).
		Order("card_order").Find(&cards).Error; err != nil {
		log.Println("[ERROR] Gagal ambil why choose cards:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data")
	}
	return helper.JsonList(c, "Daftar kartu", cards, nil)
}

// ✅ GET: Admin - semua kartu
func (ctrl *WhyChooseCardController) GetAllCardsAdmin(c *fiber.Ctx) error {
	var cards []model.WhyChooseCardModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("card_order").Find(&cards).Error; err != nil {
		log.Println("[ERROR] Gagal ambil semua kartu admin:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data")
	}
	return helper.JsonList(c, "Semua kartu", cards, nil)
}

// ✅ POST: Admin - Tambah kartu
func (ctrl *WhyChooseCardController) CreateCard(c *fiber.Ctx) error {
	var req model.WhyChooseCardModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}

	req.CardID = uuid.New()
	req.CardCreatedAt = time.Now()
	req.CardUpdatedAt = time.Now()

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&req).Error; err != nil {
		log.Println("[ERROR] Gagal tambah kartu:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal tambah data")
	}
	return helper.JsonCreated(c, "Kartu berhasil ditambahkan", req)
}

// ✅ PUT: Admin - Edit kartu
func (ctrl *WhyChooseCardController) UpdateCard(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing model.WhyChooseCardModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("card_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	var req model.WhyChooseCardModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	req.CardUpdatedAt = time.Now()

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&existing).
		Select("*").
		Omit("card_id", "card_created_at").
		Updates(req).Error; err != nil {
		log.Println("[ERROR] Gagal update kartu:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update data")
	}
	return helper.JsonUpdated(c, "Kartu berhasil diupdate", nil)
}

// ✅ DELETE: Admin - Hapus kartu (wajib konfirmasi eksplisit)
func (ctrl *WhyChooseCardController) DeleteCard(c *fiber.Ctx) error {
	id := c.Params("id")
	if c.Query("confirm") != "true" {
		return helper.JsonError(c, http.StatusBadRequest, "Penghapusan butuh konfirmasi (?confirm=true)")
	}

	var exists int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.WhyChooseCardModel{}).
		Where("card_id = ?", id).Count(&exists).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus data")
	}
	if exists == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("card_id = ?", id).Delete(&model.WhyChooseCardModel{}).Error; err != nil {
		log.Println("[ERROR] Gagal hapus kartu:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus data")
	}
	return helper.JsonDeleted(c, "Kartu berhasil dihapus", fiber.Map{"id": id})
}
