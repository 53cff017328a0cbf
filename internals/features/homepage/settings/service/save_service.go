package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
	"sasanaku_backend/internals/features/homepage/settings/model"
	helper "sasanaku_backend/internals/helpers"
)

// ErrSaveInFlight: save homepage sedang berjalan; client harus menunggu.
var ErrSaveInFlight = errors.New("save homepage masih berjalan")

// PermissionError: policy denial dari DB, pesannya ditampilkan apa adanya ke admin.
type PermissionError struct {
	Detail string
}

func (e *PermissionError) Error() string {
	return "akses ditolak oleh policy database: " + e.Detail
}

// SaveService menulis daftar section + settings halaman secara berurutan.
// Upsert = update dulu; RowsAffected 0 / record-not-found adalah hasil kelas
// satu dari langkah update (bukan exception) dan lanjut ke insert.
type SaveService struct {
	DB *gorm.DB

	mu       sync.Mutex
	inFlight bool
}

func NewSaveService(db *gorm.DB) *SaveService {
	return &SaveService{DB: db}
}

// SaveHomepage: satu operasi save dari tombol admin.
// - guard satu save in-flight (submit ganda ditolak, bukan di-queue)
// - upsert per-section BERURUTAN, berhenti di kegagalan keras pertama
// - settings halaman di-upsert lalu di-mirror best-effort ke blob lama
func (s *SaveService) SaveHomepage(ctx context.Context, sections []sectionModel.SectionModel, settings model.HomepageSettingsModel) error {
	if !s.acquire() {
		return ErrSaveInFlight
	}
	defer s.release()

	for i := range sections {
		if err := s.upsertSection(ctx, &sections[i]); err != nil {
			return fmt.Errorf("section %s: %w", sections[i].SectionID, err)
		}
	}

	settings.SettingsID = 1
	if err := s.upsertSettings(ctx, &settings); err != nil {
		return fmt.Errorf("settings: %w", err)
	}

	// mirror legacy: gagal hanya dicatat, bukan kegagalan save
	if err := s.mirrorLegacySettings(ctx, settings); err != nil {
		log.Println("[WARN] Mirror site_settings gagal:", err)
	}
	return nil
}

func (s *SaveService) upsertSection(ctx context.Context, sec *sectionModel.SectionModel) error {
	update := func() (int64, error) {
		res := s.DB.WithContext(ctx).Model(&sectionModel.SectionModel{}).
			Where("section_id = ?", sec.SectionID).
			Select("*").
			Omit("section_id", "section_created_at").
			Updates(sec)
		return res.RowsAffected, res.Error
	}

	rows, err := update()
	if err != nil {
		// schema-missing: buat tabel lalu ulang SEKALI
		if helper.IsUndefinedTable(err) {
			if merr := s.DB.WithContext(ctx).AutoMigrate(&sectionModel.SectionModel{}); merr != nil {
				return fmt.Errorf("auto-create homepage_sections: %w", merr)
			}
			rows, err = update()
		}
		if err != nil {
			return s.classify(err)
		}
	}
	if rows == 0 {
		if err := s.DB.WithContext(ctx).Create(sec).Error; err != nil {
			return s.classify(err)
		}
	}
	return nil
}

func (s *SaveService) upsertSettings(ctx context.Context, st *model.HomepageSettingsModel) error {
	update := func() (int64, error) {
		res := s.DB.WithContext(ctx).Model(&model.HomepageSettingsModel{}).
			Where("settings_id = ?", st.SettingsID).
			Select("*").
			Omit("settings_id").
			Updates(st)
		return res.RowsAffected, res.Error
	}

	rows, err := update()
	if err != nil {
		if helper.IsUndefinedTable(err) {
			if merr := s.DB.WithContext(ctx).AutoMigrate(&model.HomepageSettingsModel{}); merr != nil {
				return fmt.Errorf("auto-create homepage_settings: %w", merr)
			}
			rows, err = update()
		}
		if err != nil {
			return s.classify(err)
		}
	}
	if rows == 0 {
		if err := s.DB.WithContext(ctx).Create(st).Error; err != nil {
			return s.classify(err)
		}
	}
	return nil
}

func (s *SaveService) mirrorLegacySettings(ctx context.Context, st model.HomepageSettingsModel) error {
	raw, err := json.Marshal(map[string]any{
		"palette_id":        st.SettingsPaletteID,
		"color_mode":        st.SettingsColorMode,
		"global_palette_id": st.SettingsGlobalPaletteID,
	})
	if err != nil {
		return err
	}

	row := model.SiteSettingModel{
		SettingKey:   "homepage_config",
		SettingValue: datatypes.JSON(raw),
	}
	res := s.DB.WithContext(ctx).Model(&model.SiteSettingModel{}).
		Where("setting_key = ?", row.SettingKey).
		Updates(map[string]any{"setting_value": row.SettingValue})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return s.DB.WithContext(ctx).Create(&row).Error
	}
	return nil
}

// classify membungkus policy denial supaya controller bisa menampilkan
// detailnya apa adanya; error lain diteruskan.
func (s *SaveService) classify(err error) error {
	if helper.IsInsufficientPrivilege(err) {
		return &PermissionError{Detail: err.Error()}
	}
	return err
}

func (s *SaveService) acquire() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.inFlight {
		return false
	}
	s.inFlight = true
	return true
}

func (s *SaveService) release() {
	s.mu.Lock()
	s.inFlight = false
	s.mu.Unlock()
}
