package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sasanaku_backend/internals/features/homepage/palettes/controller"
)

func PaletteAdminRoutes(api fiber.Router, db *gorm.DB) {
	paletteCtrl := controller.NewPaletteController(db)

	// === ADMIN ROUTES ===
	palette := api.Group("/palettes")
	palette.Get("/", paletteCtrl.GetAllPalettes)            // 📄 Semua palette (picker)
	palette.Post("/", paletteCtrl.CreateCustomPalette)      // ➕ Buat custom palette
	palette.Delete("/:key", paletteCtrl.DeleteCustomPalette) // 🗑️ Hapus custom palette
}

func PaletteUserRoutes(api fiber.Router, db *gorm.DB) {
	paletteCtrl := controller.NewPaletteController(db)

	palette := api.Group("/palettes")
	palette.Get("/", paletteCtrl.GetAllPalettes) // 📄 Katalog palette untuk web publik
}
