// Package services holds the application logic between HTTP controllers and
// the persistence layer. Services depend on narrow store interfaces so tests
// can swap in fakes without a running database.
package services

import "errors"

// Sentinel errors mapped to HTTP statuses at the controller boundary.
var (
	// ErrNotFound covers both truly absent entities and entities owned by
	// someone else. Callers must not be able to tell the two apart.
	ErrNotFound = errors.New("not found")

	// ErrInvalid marks a request that fails domain validation.
	ErrInvalid = errors.New("invalid input")

	// ErrUnauthorized marks failed credential checks.
	ErrUnauthorized = errors.New("unauthorized")
)
