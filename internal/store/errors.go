package store

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when no record matches the given identifier.
var ErrNotFound = errors.New("store: record not found")

// ValidationError carries every violated rule, never just the first. A
// rejected payload is not stored.
type ValidationError struct {
	Entity     string
	Violations []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s validation failed: %s", e.Entity, strings.Join(e.Violations, ", "))
}

// DuplicateSlugError signals a blog slug collision. Slug uniqueness is
// enforced on create only.
type DuplicateSlugError struct {
	Slug string
}

func (e *DuplicateSlugError) Error() string {
	return fmt.Sprintf("Blog with slug %q already exists", e.Slug)
}
