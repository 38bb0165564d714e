package model

import "github.com/pkg/errors"

// TargetGeneration is the strictly positive number of generations a simulation advances
type TargetGeneration struct {
	value int64
}

// NewTargetGeneration validates n and wraps it in a TargetGeneration
func NewTargetGeneration(n int64) (TargetGeneration, error) {
	if n <= 0 {
		return TargetGeneration{}, errors.Wrapf(ErrInvalidGenerationCount, "[NewTargetGeneration] %d, must be greater than 0", n)
	}
	return TargetGeneration{value: n}, nil
}

// Int64 returns the generation count
func (t TargetGeneration) Int64() int64 {
	return t.value
}
