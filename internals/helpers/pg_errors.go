package helper

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Kode error Postgres yang dipetakan taksonomi recovery kita.
const (
	PgUndefinedTable        = "42P01" // schema-missing → coba create + retry sekali
	PgInsufficientPrivilege = "42501" // policy denial → tampilkan apa adanya
	PgUniqueViolation       = "23505"
)

// PgErrorCode membongkar *pgconn.PgError dari chain; "" kalau bukan error Postgres.
func PgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func IsUndefinedTable(err error) bool {
	return PgErrorCode(err) == PgUndefinedTable
}

func IsInsufficientPrivilege(err error) bool {
	return PgErrorCode(err) == PgInsufficientPrivilege
}

func IsUniqueViolation(err error) bool {
	return PgErrorCode(err) == PgUniqueViolation
}
