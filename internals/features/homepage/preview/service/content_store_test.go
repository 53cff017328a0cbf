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

// Tabel kategori belum ada: preview tetap dapat produk asli lewat
// query tanpa join, bukan placeholder.
func TestFeaturedProducts_DegradesWithoutCategoryTable(t *testing.T) {
	gdb, mock := newMockDB(t)

	productID := "5e0c2b9a-24d4-4a87-9a51-50cf3e7df0a1"
	categoryID := "38a1afcf-9a0e-470a-a6f8-0a2f6a2a6f11"

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "product_name", "product_category_id"}).
			AddRow(productID, "Seragam Latihan", categoryID))
	mock.ExpectQuery(`SELECT .* FROM "product_categories"`).
		WillReturnError(&pgconn.PgError{Code: "42P01", Message: "relation \"product_categories\" does not exist"})
	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"product_id", "product_name"}).
			AddRow(productID, "Seragam Latihan"))

	store := NewContentStore(gdb)
	products, err := store.FeaturedProducts(context.Background())

	require.NoError(t, err)
	require.Len(t, products, 1)
	require.Equal(t, "Seragam Latihan", products[0].ProductName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestFeaturedProducts_OtherErrorsPropagate(t *testing.T) {
	gdb, mock := newMockDB(t)

	mock.ExpectQuery(`SELECT .* FROM "products"`).
		WillReturnError(errors.New("connection refused"))

	store := NewContentStore(gdb)
	_, err := store.FeaturedProducts(context.Background())

	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
