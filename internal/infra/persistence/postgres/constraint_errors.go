package postgres

import (
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes, see https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgNotNullViolation    = "23502"
	pgCheckViolation      = "23514"
)

func pgErrorCode(err error) (code, constraint string, ok bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code, pgErr.ConstraintName, true
	}

	return "", "", false
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgUniqueViolation
}

// isUniqueViolationOn reports whether err is a unique violation of a constraint whose
// name contains the given column, e.g. "sku" for "products_sku_key".
func isUniqueViolationOn(err error, column string) bool {
	code, constraint, ok := pgErrorCode(err)
	if !ok || code != pgUniqueViolation {
		return false
	}

	return strings.Contains(constraint, column)
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	code, _, ok := pgErrorCode(err)
	if ok {
		return code == pgNotNullViolation
	}

	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}
	code, _, ok := pgErrorCode(err)

	return ok && code == pgCheckViolation
}
