package db

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrNotSetup is returned when the store is used before `bmark setup`.
var ErrNotSetup = errors.New(`store is not set up, run "bmark setup" first`)

// ErrAlreadySetup is returned when setup is invoked against a store that
// already contains the schema.
var ErrAlreadySetup = errors.New("store is already set up")

// ErrMissingURL is returned when an insert is attempted without a URL.
var ErrMissingURL = errors.New("bookmark URL is required")

// ErrEmptyTagName is returned when a requested tag name is empty.
var ErrEmptyTagName = errors.New("tag name must not be empty")

// ErrConflict wraps a uniqueness or foreign key violation reported by
// SQLite. The failed transaction is rolled back before this surfaces, so
// no partial write remains.
var ErrConflict = errors.New("conflicting write")

// isConstraintErr reports whether err is a SQLite constraint violation.
func isConstraintErr(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint
}
