package store

import "errors"

var (
	// ErrInvalidInput is returned before any write when a caller-supplied
	// field is missing or out of range.
	ErrInvalidInput = errors.New("invalid input")

	// ErrNotFound is returned when a referenced challenge does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyResolved is returned when a challenge has already left the
	// pending state. It is a race outcome, not a caller bug, and is kept
	// distinct from ErrNotFound so clients can tell the two apart.
	ErrAlreadyResolved = errors.New("challenge already resolved")

	// ErrUnavailable wraps transient storage failures; the whole operation
	// is safe to retry.
	ErrUnavailable = errors.New("store unavailable")
)
