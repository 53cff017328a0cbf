package controller

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
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

const validPaletteBody = `{
	"palette_key": "langit",
	"palette_name": "Langit Senja",
	"swatches": [{"background": "#0ea5e9", "text": "#f0f9ff", "accent": "#f59e0b"}]
}`

// Key custom kembar: unique index DB → 409 konflik, bukan 500.
func TestCreateCustomPalette_DuplicateKeyIsConflict(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`INSERT INTO "custom_palettes"`).
		WillReturnError(&pgconn.PgError{
			Code:    "23505",
			Message: "duplicate key value violates unique constraint \"idx_custom_palettes_custom_palette_key\"",
		})

	app := fiber.New()
	ctrl := NewPaletteController(gdb)
	app.Post("/palettes", ctrl.CreateCustomPalette)

	req := httptest.NewRequest("POST", "/palettes", strings.NewReader(validPaletteBody))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}

// Key yang menutupi palette bawaan ditolak tanpa menyentuh DB.
func TestCreateCustomPalette_BuiltInKeyRejected(t *testing.T) {
	gdb, mock := newMockDB(t)

	app := fiber.New()
	ctrl := NewPaletteController(gdb)
	app.Post("/palettes", ctrl.CreateCustomPalette)

	body := strings.Replace(validPaletteBody, "langit", "garuda", 1)
	req := httptest.NewRequest("POST", "/palettes", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
	require.NoError(t, mock.ExpectationsWereMet())
}
