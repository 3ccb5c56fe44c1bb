// Package repositories holds the MongoDB persistence layer. Each repository
// wraps one collection; services depend on these through narrow interfaces.
package repositories

import "errors"

// ErrNotFound is returned when a lookup matches no document.
var ErrNotFound = errors.New("record not found")
