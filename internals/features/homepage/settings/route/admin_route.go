package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "sasanaku_backend/internals/features/homepage/settings/controller"
)

// 🔒 Route admin: kelola settings halaman
func SettingsAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := settingsController.NewSettingsController(db)

	api.Get("/settings", ctrl.GetSettings)
	api.Put("/settings", ctrl.UpdateSettings)
}
