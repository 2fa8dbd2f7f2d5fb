package database

import (
	"errors"
	"strings"
)

var (
	// ErrNotFound signals that no row matched the given id.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate signals a unique constraint violation (slug, email,
	// category name).
	ErrDuplicate = errors.New("duplicate value for unique column")
	// ErrNoFields signals an update payload with no recognized fields.
	ErrNoFields = errors.New("no valid fields to update")
	// ErrInUse signals a delete blocked by referencing posts.
	ErrInUse = errors.New("record is referenced by existing posts")
)

// isUniqueViolation matches the SQLite constraint error text, the same way
// the API's callers used to match "SQLITE_CONSTRAINT: UNIQUE constraint
// failed" before it was pushed down into the store layer.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
