package domain

import "errors"

// Sentinel errors for the travel assistant core.
// Callers match these with errors.Is after %w wrapping.
var (
	// ErrDataUnavailable indicates the flight catalog file is missing or
	// unparseable at load time. This is fatal to search construction and is
	// always propagated, never swallowed.
	ErrDataUnavailable = errors.New("flight catalog unavailable")

	// ErrInvalidRequest indicates a client request failed validation.
	ErrInvalidRequest = errors.New("invalid request")
)
