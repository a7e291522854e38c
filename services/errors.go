package services

import (
	"database/sql"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// ErrNotFound is the sentinel for every "no matching row" failure the
// catalog services surface. Handlers translate it to a 404 with the
// standardized error body.
var ErrNotFound = errors.New("not found")

// notFoundf wraps ErrNotFound with a human-readable message
func notFoundf(format string, args ...interface{}) error {
	return fmt.Errorf(format+": %w", append(args, ErrNotFound)...)
}

// isNoRow reports whether err is a store-level missing-row error from
// either the GORM or the database/sql access path
func isNoRow(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, sql.ErrNoRows)
}
