package model

import "github.com/pkg/errors"

// CellState is the color of a single grid cell
type CellState uint8

const (
	Red CellState = iota
	Green
)

// CellStateFromCode maps the color codes 0 (red) and 1 (green) to a CellState
func CellStateFromCode(code int) (CellState, error) {
	switch code {
	case 0:
		return Red, nil
	case 1:
		return Green, nil
	}
	return Red, errors.Wrapf(ErrInvalidColorCode, "[CellStateFromCode] code %d, use 0 (red) or 1 (green)", code)
}

// IsGreen reports whether the state is Green
func (s CellState) IsGreen() bool {
	return s == Green
}

func (s CellState) String() string {
	if s == Green {
		return "green"
	}
	return "red"
}
