package core

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with negative
	// dimensions or cannot hold the requested population.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfBounds is returned for coordinates outside the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
	// ErrInvalidAge is returned when a negative age is stored.
	ErrInvalidAge = errors.New("invalid cell age")
	// ErrMalformedDescription is returned for grid descriptions that are
	// missing dimension lines or rows.
	ErrMalformedDescription = errors.New("malformed grid description")
	// ErrUnreadableSource is returned when a grid source cannot be opened or read.
	ErrUnreadableSource = errors.New("unreadable grid source")
)
