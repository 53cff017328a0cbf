package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sasanaku_backend/internals/features/homepage/content/controller"
)

func ContentAdminRoutes(api fiber.Router, db *gorm.DB) {
	slideCtrl := controller.NewHeroSlideController(db)

	// === ADMIN ROUTES ===
	slide := api.Group("/hero-slides")
	slide.Get("/", slideCtrl.GetAllSlidesAdmin)         // 📄 Semua slide (termasuk nonaktif)
	slide.Post("/", slideCtrl.CreateSlide)              // ➕ Buat slide
	slide.Put("/:id", slideCtrl.UpdateSlide)            // 🔄 Update slide
	slide.Post("/:id/image", slideCtrl.UploadSlideImage) // 🖼️ Upload gambar slide
	slide.Delete("/:id", slideCtrl.DeleteSlide)         // ❌ Hapus slide

	cardCtrl := controller.NewWhyChooseCardController(db)
	card := api.Group("/why-choose-cards")
	card.Get("/", cardCtrl.GetAllCardsAdmin)
	card.Post("/", cardCtrl.CreateCard)
	card.Put("/:id", cardCtrl.UpdateCard)
	card.Delete("/:id", cardCtrl.DeleteCard)

	methodCtrl := controller.NewMethodologyController(db)
	method := api.Group("/methodology-items")
	method.Get("/", methodCtrl.GetAllItemsAdmin)
	method.Post("/", methodCtrl.CreateItem)
	method.Put("/:id", methodCtrl.UpdateItem)
	method.Delete("/:id", methodCtrl.DeleteItem)

	programCtrl := controller.NewProgramController(db)
	program := api.Group("/programs")
	program.Get("/", programCtrl.GetAllProgramsAdmin)
	program.Post("/", programCtrl.CreateProgram)
	program.Put("/:id", programCtrl.UpdateProgram)
	program.Delete("/:id", programCtrl.DeleteProgram)

	productCtrl := controller.NewProductController(db)
	product := api.Group("/products")
	product.Get("/", productCtrl.GetAllProductsAdmin)
	product.Get("/categories", productCtrl.GetCategories)
	product.Post("/", productCtrl.CreateProduct)
	product.Put("/:id", productCtrl.UpdateProduct)
	product.Delete("/:id", productCtrl.DeleteProduct)

	cfgCtrl := controller.NewSectionConfigController(db)
	api.Get("/cta-config", cfgCtrl.GetCTAConfig)
	api.Put("/cta-config", cfgCtrl.UpdateCTAConfig)
	api.Get("/location-config", cfgCtrl.GetLocationConfig)
	api.Put("/location-config", cfgCtrl.UpdateLocationConfig)
}
