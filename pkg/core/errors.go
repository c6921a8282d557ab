package core

import "errors"

var (
	// ErrInvalidDimension is returned when a grid is requested with a
	// non-positive width or height.
	ErrInvalidDimension = errors.New("invalid grid dimension")
	// ErrOutOfRange is returned when a coordinate lies outside the grid.
	ErrOutOfRange = errors.New("coordinate out of range")
)
