package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested contact, note, phone or tag does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAlreadyExists indicates a strict create hit an existing contact.
	ErrAlreadyExists = errors.New("already exists")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")
)
