package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionController "sasanaku_backend/internals/features/homepage/sections/controller"
)

// 🌐 Route publik: section aktif untuk render homepage
func SectionUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := sectionController.NewSectionController(db)

	api.Get("/sections", ctrl.GetActiveSections)
}
