package interval

import "errors"

var (
	// ErrInvalidRange is returned when both bounds are concrete dates and
	// the end falls before the start.
	ErrInvalidRange = errors.New("invalid range: end is before start")
	// ErrInvalidInput is returned when a serialized interval does not
	// decode into a valid bound pair.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotClosed is returned by operations that require both bounds to
	// be concrete dates.
	ErrNotClosed = errors.New("range not closed")
)
