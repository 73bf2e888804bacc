package engine

import "errors"

// Domain errors for engine operations.
var (
	// ErrCapacityExceeded indicates a spawn beyond the arena capacity.
	// The store is left untouched; callers may ignore it.
	ErrCapacityExceeded = errors.New("engine: body capacity exceeded")

	// ErrBodyNotFound indicates no active body covered the queried point.
	ErrBodyNotFound = errors.New("engine: no body at point")

	// ErrInvalidParams indicates a parameter value outside its valid range.
	ErrInvalidParams = errors.New("engine: invalid parameters")
)
