package model

import "github.com/pkg/errors"

var (
	// ErrIncompatibleShape is returned when grid dimensions violate 0 < width <= height < 1000
	// or a matrix is not rectangular
	ErrIncompatibleShape = errors.New("incompatible grid shape")
	// ErrOutOfBounds is returned when a coordinate lies outside the grid
	ErrOutOfBounds = errors.New("cell coordinates out of bounds")
	// ErrInvalidGenerationCount is returned for a non-positive target generation
	ErrInvalidGenerationCount = errors.New("invalid target generation")
	// ErrInvalidColorCode is returned for a color code other than 0 (red) or 1 (green)
	ErrInvalidColorCode = errors.New("invalid cell color code")
)
