package repository

import "errors"

var (
	// ErrNotFound is returned when a lookup by id or email has no match.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when an insert violates a unique constraint,
	// e.g. two registrations racing on the same email. The database index is
	// the arbiter, so exactly one of the two can win.
	ErrDuplicate = errors.New("record already exists")
)
