package service

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	paletteService "sasanaku_backend/internals/features/homepage/palettes/service"
	sectionModel "sasanaku_backend/internals/features/homepage/sections/model"
	"sasanaku_backend/internals/features/homepage/settings/model"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gdb, mock
}

// semua kolom bertag default diisi non-zero supaya INSERT-nya deterministik
func sampleSaveSection() sectionModel.SectionModel {
	return sectionModel.SectionModel{
		SectionID:              "hero",
		SectionName:            "Hero",
		SectionOrder:           1,
		SectionIsActive:        true,
		SectionBackgroundColor: "#ffffff",
		SectionTextColor:       "#1a1a1a",
		SectionBorderColor:     "transparent",
		SectionBorderWidth:     2,
		SectionBorderRadius:    4,
		SectionPadding:         "40px 20px",
		SectionMargin:          "0px",
		SectionWidth:           "100%",
		SectionHeight:          "auto",
		SectionVerticalAlign:   "middle",
		SectionHorizontalAlign: "center",
		SectionTextBgEnabled:   true,
		SectionTextBgColor:     "rgba(0, 0, 0, 0.5)",
		SectionTextBgOpacity:   50,
	}
}

func sampleSaveSettings() model.HomepageSettingsModel {
	return model.HomepageSettingsModel{
		SettingsPaletteID: "garuda",
		SettingsColorMode: model.ColorModeAlternating,
	}
}

func TestSaveService_InFlightGuard(t *testing.T) {
	s := NewSaveService(nil)

	require.True(t, s.acquire())
	// submit kedua saat masih berjalan → ditolak, bukan di-queue
	require.False(t, s.acquire())

	s.release()
	require.True(t, s.acquire())
	s.release()
}

func TestPermissionError_Message(t *testing.T) {
	err := &PermissionError{Detail: "permission denied for table homepage_sections"}
	require.Contains(t, err.Error(), "permission denied for table homepage_sections")
}

func TestBuildThemeTokens(t *testing.T) {
	st := model.HomepageSettingsModel{
		SettingsPaletteID: "garuda",
		SettingsColorMode: model.ColorModeAlternating,
	}
	p := paletteService.GetPaletteByID("garuda", nil)

	tokens := BuildThemeTokens(st, p)
	require.Equal(t, "#7f1d1d", tokens["--site-bg"])
	require.Equal(t, "#fef2f2", tokens["--site-text"])
	require.Equal(t, "#fbbf24", tokens["--site-accent"])
	require.Equal(t, "transparent", tokens["--site-border"])
	require.Equal(t, "garuda", tokens["--palette-id"])
	require.Equal(t, "alternating", tokens["--color-mode"])
}

// Update 0 baris = not-found kelas satu: lanjut insert, bukan error.
func TestSaveHomepage_InsertsWhenRowsMissing(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "homepage_sections" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "homepage_sections"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "homepage_settings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "homepage_settings"`).
		WillReturnRows(sqlmock.NewRows([]string{"settings_id"}).AddRow(1))
	mock.ExpectExec(`UPDATE "site_settings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "site_settings"`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewSaveService(gdb)
	err := s.SaveHomepage(context.Background(),
		[]sectionModel.SectionModel{sampleSaveSection()}, sampleSaveSettings())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Tabel section belum ada: buat tabel lalu ulang update SEKALI.
func TestSaveHomepage_RecreatesMissingSectionTable(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "homepage_sections" SET`).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: "relation \"homepage_sections\" does not exist"})
	mock.ExpectQuery(`SELECT count\(\*\) FROM information_schema.tables`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec(`CREATE TABLE "homepage_sections"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`UPDATE "homepage_sections" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`INSERT INTO "homepage_sections"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "homepage_settings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "site_settings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	s := NewSaveService(gdb)
	err := s.SaveHomepage(context.Background(),
		[]sectionModel.SectionModel{sampleSaveSection()}, sampleSaveSettings())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Policy denial: save berhenti di section pertama, settings tidak disentuh.
func TestSaveHomepage_PermissionDenialStopsSave(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "homepage_sections" SET`).
		WillReturnError(&pgconn.PgError{Code: "42501", Message: "permission denied for table homepage_sections"})

	s := NewSaveService(gdb)
	err := s.SaveHomepage(context.Background(),
		[]sectionModel.SectionModel{sampleSaveSection()}, sampleSaveSettings())

	require.Error(t, err)
	var perm *PermissionError
	require.True(t, errors.As(err, &perm))
	require.Contains(t, perm.Detail, "permission denied")
	require.Contains(t, err.Error(), "section hero")
	require.NoError(t, mock.ExpectationsWereMet())
}

// Mirror blob lama best-effort: kegagalannya tidak menggagalkan save.
func TestSaveHomepage_MirrorFailureDoesNotFailSave(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectExec(`UPDATE "homepage_sections" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "homepage_settings" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`UPDATE "site_settings" SET`).
		WillReturnError(errors.New("relation \"site_settings\" is read only"))

	s := NewSaveService(gdb)
	err := s.SaveHomepage(context.Background(),
		[]sectionModel.SectionModel{sampleSaveSection()}, sampleSaveSettings())

	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestBuildThemeTokens_NilPaletteFallsBackToDefault(t *testing.T) {
	tokens := BuildThemeTokens(model.HomepageSettingsModel{}, nil)
	require.Equal(t, "monochrome", tokens["--palette-id"])
	require.Equal(t, "uniform", tokens["--color-mode"])
	require.NotEmpty(t, tokens["--site-bg"])
}
