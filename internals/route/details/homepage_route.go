package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	contentRoute "sasanaku_backend/internals/features/homepage/content/route"
	paletteRoute "sasanaku_backend/internals/features/homepage/palettes/route"
	previewRoute "sasanaku_backend/internals/features/homepage/preview/route"
	sectionRoute "sasanaku_backend/internals/features/homepage/sections/route"
	settingsRoute "sasanaku_backend/internals/features/homepage/settings/route"
)

// 🌐 Endpoint publik: render homepage + preview editor
func HomepagePublicRoutes(api fiber.Router, db *gorm.DB) {
	home := api.Group("/homepage")
	sectionRoute.SectionUserRoutes(home, db)
	previewRoute.PreviewUserRoutes(home, db)
	paletteRoute.PaletteUserRoutes(home, db)
	settingsRoute.SettingsUserRoutes(home, db)
	contentRoute.ContentUserRoutes(home, db)
}

// 🔒 Endpoint admin: konfigurasi visual + kelola konten
func HomepageAdminRoutes(api fiber.Router, db *gorm.DB) {
	home := api.Group("/homepage")
	sectionRoute.SectionAdminRoutes(home, db)
	paletteRoute.PaletteAdminRoutes(home, db)
	settingsRoute.SettingsAdminRoutes(home, db)
	contentRoute.ContentAdminRoutes(home, db)
}
