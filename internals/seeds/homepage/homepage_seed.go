package homepage

import (
	"encoding/json"
	"log"
	"os"

	"gorm.io/gorm"

	contentModel "sasanaku_backend/internals/features/homepage/content/model"
	paletteService "sasanaku_backend/internals/features/homepage/palettes/service"
	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
	settingsModel "sasanaku_backend/internals/features/homepage/settings/model"
)

// SeedSections mengisi tabel section kalau masih kosong.
func SeedSections(db *gorm.DB, defaults []sectionModel.SectionModel) {
	var count int64
	db.Model(&sectionModel.SectionModel{}).Count(&count)
	if count > 0 {
		log.Println("[INFO] Seed sections dilewati, data sudah ada")
		return
	}
	if err := db.Create(&defaults).Error; err != nil {
		log.Println("[ERROR] Gagal seed sections:", err)
		return
	}
	log.Printf("[INFO] Seed %d sections selesai", len(defaults))
}

// SeedSettings membuat row settings tunggal kalau belum ada.
func SeedSettings(db *gorm.DB) {
	var count int64
	db.Model(&settingsModel.HomepageSettingsModel{}).Count(&count)
	if count > 0 {
		return
	}
	st := settingsModel.HomepageSettingsModel{
		SettingsID:        1,
		SettingsPaletteID: paletteService.DefaultPaletteID,
		SettingsColorMode: settingsModel.ColorModeUniform,
	}
	if err := db.Create(&st).Error; err != nil {
		log.Println("[ERROR] Gagal seed settings:", err)
	}
}

func SeedHeroSlidesFromJSON(db *gorm.DB, path string) {
	seedFromJSON[contentModel.HeroSlideModel](db, path, "hero slides")
}

func SeedWhyChooseCardsFromJSON(db *gorm.DB, path string) {
	seedFromJSON[contentModel.WhyChooseCardModel](db, path, "why choose cards")
}

// seedFromJSON: baca file JSON array lalu insert kalau tabel masih kosong.
func seedFromJSON[T any](db *gorm.DB, path, label string) {
	var count int64
	var probe T
	db.Model(&probe).Count(&count)
	if count > 0 {
		log.Printf("[INFO] Seed %s dilewati, data sudah ada", label)
		return
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		log.Printf("[WARN] Seed %s dilewati, file tidak terbaca: %v", label, err)
		return
	}

	var rows []T
	if err := json.Unmarshal(raw, &rows); err != nil {
		log.Printf("[ERROR] Seed %s gagal parse JSON: %v", label, err)
		return
	}
	if len(rows) == 0 {
		return
	}

	if err := db.Create(&rows).Error; err != nil {
		log.Printf("[ERROR] Seed %s gagal insert: %v", label, err)
		return
	}
	log.Printf("[INFO] Seed %d %s selesai", len(rows), label)
}
