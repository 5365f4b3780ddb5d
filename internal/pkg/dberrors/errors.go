package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL error codes the dataset loader distinguishes
const (
	codeUndefinedTable  = "42P01"
	codeUndefinedColumn = "42703"
)

// IsUndefinedTable reports whether a query failed because a table is missing,
// which means the migrations have not been applied
func IsUndefinedTable(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeUndefinedTable
}

// IsSchemaMismatch reports a missing table or column
func IsSchemaMismatch(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && (pgErr.Code == codeUndefinedTable || pgErr.Code == codeUndefinedColumn)
}
