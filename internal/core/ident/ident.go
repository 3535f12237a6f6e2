// Package ident generates the identifiers assigned to bookmark and tag
// rows. Identifiers are UUID version 7 strings: unique, stable, and
// lexicographically ordered by creation time, so sorting rows by id sorts
// them by insertion time.
package ident

import (
	"fmt"

	"github.com/google/uuid"
)

// New returns a fresh time-ordered identifier. Identifiers generated
// within the same batch share a coarse timestamp but are still distinct
// and strictly ordered.
func New() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate identifier: %w", err)
	}
	return id.String(), nil
}

// IsValid reports whether s parses as a generated identifier.
func IsValid(s string) bool {
	id, err := uuid.Parse(s)
	return err == nil && id.Version() == 7
}
