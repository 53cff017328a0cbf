package model

import (
	"time"

	"github.com/google/uuid"
)

type ProductCategoryModel struct {
	CategoryID   uuid.UUID `gorm:"column:category_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"category_id"`
	CategoryName string    `gorm:"column:category_name;type:varchar(100);not null" json:"category_name"`
	CategorySlug string    `gorm:"column:category_slug;type:varchar(100);uniqueIndex" json:"category_slug"`
}

func (ProductCategoryModel) TableName() string {
	return "product_categories"
}

type ProductModel struct {
	ProductID          uuid.UUID  `gorm:"column:product_id;primaryKey;type:uuid;default:gen_random_uuid()" json:"product_id"`
	ProductName        string     `gorm:"column:product_name;type:varchar(255);not null" json:"product_name"`
	ProductDescription string     `gorm:"column:product_description;type:text" json:"product_description"`
	ProductImageURL    string     `gorm:"column:product_image_url;type:text" json:"product_image_url"`
	ProductPriceIDR    int64      `gorm:"column:product_price_idr;default:0" json:"product_price_idr"`
	ProductCategoryID  *uuid.UUID `gorm:"column:product_category_id;type:uuid" json:"product_category_id,omitempty"`
	ProductIsFeatured  bool       `gorm:"column:product_is_featured;default:false" json:"product_is_featured"`
	ProductOrder       int        `gorm:"column:product_order" json:"product_order"`
	ProductIsActive    bool       `gorm:"column:product_is_active;default:true" json:"product_is_active"`
	ProductCreatedAt   time.Time  `gorm:"column:product_created_at;autoCreateTime" json:"product_created_at"`
	ProductUpdatedAt   time.Time  `gorm:"column:product_updated_at;autoUpdateTime" json:"product_updated_at"`

	Category *ProductCategoryModel `gorm:"foreignKey:ProductCategoryID;references:CategoryID" json:"category,omitempty"`
}

func (ProductModel) TableName() string {
	return "products"
}
