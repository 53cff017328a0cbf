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

type ProductController struct {
	DB *gorm.DB
}

func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{DB: db}
}

// ✅ GET: Produk unggulan aktif (publik / preview).
// Join kategori opsional: kalau tabel kategori belum ada (42P01),
// jatuh ke query tanpa join — bukan error fatal.
func (ctrl *ProductController) GetFeaturedProducts(c *fiber.Ctx) error {
	products, err := ctrl.fetchFeatured(c)
	if err != nil {
		log.Println("[ERROR] Gagal ambil produk unggulan:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data produk")
	}
	return helper.JsonList(c, "Produk unggulan", products, nil)
}

func (ctrl *ProductController) fetchFeatured(c *fiber.Ctx) ([]model.ProductModel, error) {
	base := func(db *gorm.DB) *gorm.DB {
		return db.Where("product_is_active = ? AND product_is_featured = ?", true, true).
			Order("product_order").Limit(8)
	}

	var products []model.ProductModel
	err := base(ctrl.DB.WithContext(c.UserContext()).Preload("Category")).Find(&products).Error
	if err == nil {
		return products, nil
	}
	if !helper.IsUndefinedTable(err) {
		return nil, err
	}

	log.Println("[WARN] Tabel kategori belum ada, query tanpa join")
	products = nil
	if err := base(ctrl.DB.WithContext(c.UserContext())).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// ✅ GET: Admin - semua produk (paginated)
func (ctrl *ProductController) GetAllProductsAdmin(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.ProductModel{}).Count(&total).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data")
	}

	var products []model.ProductModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("product_order").
		Offset(paging.Offset).Limit(paging.Limit).
		Find(&products).Error; err != nil {
		log.Println("[ERROR] Gagal ambil semua produk admin:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil data")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helper.JsonList(c, "Semua produk", products, &p)
}

// ✅ POST: Admin - Tambah produk
func (ctrl *ProductController) CreateProduct(c *fiber.Ctx) error {
	var req model.ProductModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}

	req.ProductID = uuid.New()
	req.ProductCreatedAt = time.Now()
	req.ProductUpdatedAt = time.Now()
	req.Category = nil

	if err := ctrl.DB.WithContext(c.UserContext()).Create(&req).Error; err != nil {
		log.Println("[ERROR] Gagal tambah produk:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal tambah data")
	}
	return helper.JsonCreated(c, "Produk berhasil ditambahkan", req)
}

// ✅ PUT: Admin - Edit produk
func (ctrl *ProductController) UpdateProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var existing model.ProductModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("product_id = ?", id).First(&existing).Error; err != nil {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	var req model.ProductModel
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, http.StatusBadRequest, "Input tidak valid")
	}
	req.ProductUpdatedAt = time.Now()
	req.Category = nil

	if err := ctrl.DB.WithContext(c.UserContext()).Model(&existing).
		Select("*").
		Omit("product_id", "product_created_at").
		Updates(req).Error; err != nil {
		log.Println("[ERROR] Gagal update produk:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal update data")
	}
	return helper.JsonUpdated(c, "Produk berhasil diupdate", nil)
}

// ✅ DELETE: Admin - Hapus produk
func (ctrl *ProductController) DeleteProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var exists int64
	if err := ctrl.DB.WithContext(c.UserContext()).Model(&model.ProductModel{}).
		Where("product_id = ?", id).Count(&exists).Error; err != nil {
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus data")
	}
	if exists == 0 {
		return helper.JsonError(c, http.StatusNotFound, "Data tidak ditemukan")
	}

	if err := ctrl.DB.WithContext(c.UserContext()).
		Where("product_id = ?", id).Delete(&model.ProductModel{}).Error; err != nil {
		log.Println("[ERROR] Gagal hapus produk:", err)
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal hapus data")
	}
	return helper.JsonDeleted(c, "Produk berhasil dihapus", fiber.Map{"id": id})
}

// ✅ GET: Kategori produk (dropdown admin)
func (ctrl *ProductController) GetCategories(c *fiber.Ctx) error {
	var cats []model.ProductCategoryModel
	if err := ctrl.DB.WithContext(c.UserContext()).
		Order("category_name").Find(&cats).Error; err != nil {
		if helper.IsUndefinedTable(err) {
			return helper.JsonList(c, "Kategori belum dikonfigurasi", []model.ProductCategoryModel{}, nil)
		}
		return helper.JsonError(c, http.StatusInternalServerError, "Gagal ambil kategori")
	}
	return helper.JsonList(c, "Kategori produk", cats, nil)
}
