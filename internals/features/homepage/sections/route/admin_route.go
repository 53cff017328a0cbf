package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paletteController "sasanaku_backend/internals/features/homepage/palettes/controller"
	sectionController "sasanaku_backend/internals/features/homepage/sections/controller"
)

// 🔒 Route admin: kelola section homepage (butuh JWT admin di group pemanggil)
func SectionAdminRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := sectionController.NewSectionController(db)
	palCtrl := paletteController.NewPaletteController(db)

	sections := api.Group("/sections")
	sections.Get("/", ctrl.GetAllSectionsAdmin)
	sections.Patch("/reorder", ctrl.ReorderSections)
	sections.Post("/save", ctrl.SaveHomepage)
	sections.Patch("/:id/toggle", ctrl.ToggleSection)
	sections.Patch("/:id/field", ctrl.UpdateSectionField)
	sections.Patch("/:id/palette-override", ctrl.SetPaletteOverride)
	sections.Post("/:id/apply-palette", palCtrl.ApplyPaletteToSection)
	sections.Post("/:id/background-image", ctrl.UploadSectionBackground)
}
