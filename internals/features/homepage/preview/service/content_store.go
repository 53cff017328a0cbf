package service

import (
	"context"
	"log"

	"gorm.io/gorm"

	contentModel "sasanaku_backend/internals/features/homepage/content/model"
	helper "sasanaku_backend/internals/helpers"
)

// ContentStore menyediakan isi tiap section untuk renderer preview.
type ContentStore interface {
	HeroSlides(ctx context.Context) ([]contentModel.HeroSlideModel, error)
	WhyChooseCards(ctx context.Context) ([]contentModel.WhyChooseCardModel, error)
	MethodologyItems(ctx context.Context) ([]contentModel.MethodologyItemModel, error)
	FeaturedPrograms(ctx context.Context) ([]contentModel.ProgramModel, error)
	FeaturedProducts(ctx context.Context) ([]contentModel.ProductModel, error)
	CTAConfig(ctx context.Context) (*contentModel.CTAConfigModel, error)
	LocationConfig(ctx context.Context) (*contentModel.LocationConfigModel, error)
}

type gormContentStore struct {
	db *gorm.DB
}

func NewContentStore(db *gorm.DB) ContentStore {
	return &gormContentStore{db: db}
}

func (s *gormContentStore) HeroSlides(ctx context.Context) ([]contentModel.HeroSlideModel, error) {
	var rows []contentModel.HeroSlideModel
	err := s.db.WithContext(ctx).
		Where("slide_is_active = ?", true).
		Order("slide_order").Find(&rows).Error
	return rows, err
}

func (s *gormContentStore) WhyChooseCards(ctx context.Context) ([]contentModel.WhyChooseCardModel, error) {
	var rows []contentModel.WhyChooseCardModel
	err := s.db.WithContext(ctx).
		Where("card_is_active = ?", true).
		Order("card_order").Find(&rows).Error
	return rows, err
}

func (s *gormContentStore) MethodologyItems(ctx context.Context) ([]contentModel.MethodologyItemModel, error) {
	var rows []contentModel.MethodologyItemModel
	err := s.db.WithContext(ctx).
		Where("item_is_active = ?", true).
		Order("item_order").Find(&rows).Error
	return rows, err
}

func (s *gormContentStore) FeaturedPrograms(ctx context.Context) ([]contentModel.ProgramModel, error) {
	var rows []contentModel.ProgramModel
	err := s.db.WithContext(ctx).
		Where("program_is_active = ? AND program_is_featured = ?", true, true).
		Order("program_order").Find(&rows).Error
	return rows, err
}

// Join kategori opsional: kalau tabelnya belum ada (42P01),
// jatuh ke query tanpa join seperti endpoint publiknya.
func (s *gormContentStore) FeaturedProducts(ctx context.Context) ([]contentModel.ProductModel, error) {
	base := func(db *gorm.DB) *gorm.DB {
		return db.Where("product_is_active = ? AND product_is_featured = ?", true, true).
			Order("product_order")
	}

	var rows []contentModel.ProductModel
	err := base(s.db.WithContext(ctx).Preload("Category")).Find(&rows).Error
	if err == nil {
		return rows, nil
	}
	if !helper.IsUndefinedTable(err) {
		return nil, err
	}

	log.Println("[WARN] Tabel kategori belum ada, preview tanpa join")
	rows = nil
	if err := base(s.db.WithContext(ctx)).Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *gormContentStore) CTAConfig(ctx context.Context) (*contentModel.CTAConfigModel, error) {
	var row contentModel.CTAConfigModel
	if err := s.db.WithContext(ctx).First(&row, "cta_id = ?", 1).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

func (s *gormContentStore) LocationConfig(ctx context.Context) (*contentModel.LocationConfigModel, error) {
	var row contentModel.LocationConfigModel
	if err := s.db.WithContext(ctx).First(&row, "location_id = ?", 1).Error; err != nil {
		return nil, err
	}
	return &row, nil
}
