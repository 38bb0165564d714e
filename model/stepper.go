package model

import "github.com/sheikhrachel/green-vs-red/rules"

// GenerationStepper owns a private grid and advances it one generation at a time
type GenerationStepper struct {
	grid       *Grid
	pool       *GridPool
	generation int64
}

// NewGenerationStepper copies grid as the starting generation. pool may be nil.
func NewGenerationStepper(grid *Grid, pool *GridPool) *GenerationStepper {
	return &GenerationStepper{
		grid: grid.Clone(),
		pool: pool,
	}
}

// Advance computes the next generation from the current one and installs it
func (s *GenerationStepper) Advance() {
	cur := s.grid

	var next *Grid
	if s.pool != nil {
		next = s.pool.Get(cur.width, cur.height)
	} else {
		next = &Grid{width: cur.width, height: cur.height, cells: make([]CellState, len(cur.cells))}
	}

	for y := 0; y < cur.height; y++ {
		for x := 0; x < cur.width; x++ {
			idx := y*cur.width + x
			if rules.ApplyGreenVsRedRules(cur.CountActiveNeighbors(x, y), cur.cells[idx] == Green) {
				next.cells[idx] = Green
			}
		}
	}

	s.grid = next
	s.generation++
	if s.pool != nil {
		s.pool.Put(cur)
	}
}

// AdvanceBy calls Advance n times
func (s *GenerationStepper) AdvanceBy(n int64) {
	for i := int64(0); i < n; i++ {
		s.Advance()
	}
}

// Generation returns how many generations the stepper has advanced
func (s *GenerationStepper) Generation() int64 {
	return s.generation
}

// CurrentGrid returns a copy of the current generation
func (s *GenerationStepper) CurrentGrid() *Grid {
	return s.grid.Clone()
}

// CellState returns the state of a single cell of the current generation without copying the grid
func (s *GenerationStepper) CellState(x, y int) (CellState, error) {
	return s.grid.GetCell(x, y)
}
