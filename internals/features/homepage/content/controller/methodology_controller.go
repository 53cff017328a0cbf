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

type MethodologyController struct {
	DB *gorm.DB
}

func NewMethodologyController(db *gorm.DB) *MethodologyController {
	return &MethodologyController{DB: db}
}

// ✅ GET: Item metodologi aktif (publik)
func (ctrl *MethodologyController) GetActiveItems(c *fiber.Ctx) error {
	var items []model.MethodologyItemModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("item_is_active = ?", true).
		Order("item_order").Find(&items).Error; err != nil {
		log.Println("[ERROR] Gagal ambil metodologi:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data")
	}
	return helper.JsonList(c, "Daftar metodologi", items, nil)
}

// ✅ GET: Admin - semua item
func (ctrl *MethodologyController) GetAllItemsAdmin(c *fiber.Ctx) error {
	var items []model.MethodologyItemModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("item_order").Find(&items).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data")
	}
	return helper.JsonList(c, "Semua metodologi", items, nil)
}

// ✅ POST: Admin - Tambah item
func (ctrl *MethodologyController) CreateItem(c *fiber.Ctx) error {
	var req model.MethodologyItemModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}

	req.ItemID = uuid.New()
	req.ItemCreatedAt = time.Now()
	req.ItemUpdatedAt = time.Now()

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&req).Error; err != nil {
		log.Println("[ERROR] Gagal tambah metodologi:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal tambah data")
	}
	return helper.JsonCreated(c, "Item berhasil ditambahkan", req)
}

// ✅ PUT: Admin - Edit item
func (ctrl *MethodologyController) UpdateItem(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing model.MethodologyItemModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("item_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	var req model.MethodologyItemModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	req.ItemUpdatedAt = time.Now()

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&existing).
		Select("*").
		Omit("item_id", "item_created_at").
		Updates(req).Error; err != nil {
		log.Println("[ERROR] Gagal update metodologi:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update data")
	}
	return helper.JsonUpdated(c, "Item berhasil diupdate", nil)
}

// ✅ DELETE: Admin - Hapus item
func (ctrl *MethodologyController) DeleteItem(c *fiber.Ctx) error {
	id := c.Params("id")

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("item_id = ?", id).Delete(&model.MethodologyItemModel{}).Error; err != nil {
		log.Println("[ERROR] Gagal hapus metodologi:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus data")
	}
	return helper.JsonDeleted(c, "Item berhasil dihapus", fiber.Map{"id": id})
}
