package repositories

import "errors"

var (
	// ErrNotFound is returned when a scoped lookup matches no row,
	// including rows that exist but belong to another user.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when a user insert violates the
	// email unique constraint.
	ErrDuplicateEmail = errors.New("email already registered")
)
