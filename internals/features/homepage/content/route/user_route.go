package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sasanaku_backend/internals/features/homepage/content/controller"
)

func ContentUserRoutes(api fiber.Router, db *gorm.DB) {
	slideCtrl := controller.NewHeroSlideController(db)
	cardCtrl := controller.NewWhyChooseCardController(db)
	methodCtrl := controller.NewMethodologyController(db)
	programCtrl := controller.NewProgramController(db)
	productCtrl := controller.NewProductController(db)
	cfgCtrl := controller.NewSectionConfigController(db)

	// === PUBLIC ROUTES === (konten aktif saja)
	api.Get("/hero-slides", slideCtrl.GetActiveSlides)
	api.Get("/why-choose-cards", cardCtrl.GetActiveCards)
	api.Get("/methodology-items", methodCtrl.GetActiveItems)
	api.Get("/programs/featured", programCtrl.GetFeaturedPrograms)
	api.Get("/products/featured", productCtrl.GetFeaturedProducts)
	api.Get("/cta-config", cfgCtrl.GetCTAConfig)
	api.Get("/location-config", cfgCtrl.GetLocationConfig)
}
