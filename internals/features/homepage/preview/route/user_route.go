package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	previewController "sasanaku_backend/internals/features/homepage/preview/controller"
)

// 🌐 Route publik: preview render tree + theme tokens
func PreviewUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := previewController.NewPreviewController(db)

	api.Get("/preview", ctrl.GetPreview)
	api.Get("/theme-tokens", ctrl.GetThemeTokens)
}
