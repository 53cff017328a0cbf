package seeds

import (
	"log"

	"gorm.io/gorm"

	contentModel "sasanaku_backend/internals/features/homepage/content/model"
	paletteModel "sasanaku_backend/internals/features/homepage/palettes/model"
	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
	sectionService "sasanaku_backend/internals/features/homepage/sections/service"
	settingsModel "sasanaku_backend/internals/features/homepage/settings/model"
	homepageSeed "sasanaku_backend/internals/seeds/homepage"
)

// RunAllSeeds menyiapkan skema + data awal homepage.
// Dipanggil dari main saat SEED_ON_START=true (sekali saat deploy awal).
func RunAllSeeds(db *gorm.DB) {
	if err := db.AutoMigrate(
		&sectionModel.SectionModel{},
		&settingsModel.HomepageSettingsModel{},
		&settingsModel.SiteSettingModel{},
		&paletteModel.CustomPaletteModel{},
		&contentModel.HeroSlideModel{},
		&contentModel.WhyChooseCardModel{},
		&contentModel.MethodologyItemModel{},
		&contentModel.ProgramModel{},
		&contentModel.ProductCategoryModel{},
		&contentModel.ProductModel{},
		&contentModel.CTAConfigModel{},
		&contentModel.LocationConfigModel{},
	); err != nil {
		log.Println("[ERROR] Gagal migrate skema homepage:", err)
		return
	}

	homepageSeed.SeedSections(db, sectionService.DefaultSections())
	homepageSeed.SeedSettings(db)
	homepageSeed.SeedHeroSlidesFromJSON(db, "internals/seeds/homepage/data_hero_slides.json")
	homepageSeed.SeedWhyChooseCardsFromJSON(db, "internals/seeds/homepage/data_why_choose_cards.json")
}
