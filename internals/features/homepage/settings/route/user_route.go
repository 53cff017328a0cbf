package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	settingsController "sasanaku_backend/internals/features/homepage/settings/controller"
)

// 🌐 Route publik: settings halaman untuk render frontend
func SettingsUserRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := settingsController.NewSettingsController(db)

	api.Get("/settings", ctrl.GetSettings)
}
