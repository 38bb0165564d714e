package model

import "github.com/pkg/errors"

// MaxGridHeight is the exclusive upper bound on both grid axes
const MaxGridHeight = 1000

// Grid is a fixed-shape rectangular board of cells stored row-major in a flat buffer.
// Every exported read returns a copy; the buffer is never shared with callers.
type Grid struct {
	width  int
	height int
	cells  []CellState
}

// ValidateShape checks the shape constraint 0 < width <= height < MaxGridHeight
func ValidateShape(width, height int) error {
	if width <= 0 || width > height || height >= MaxGridHeight {
		return errors.Wrapf(ErrIncompatibleShape,
			"[ValidateShape] a %dx%d grid cannot be created, ensure 0 < width <= height < %d",
			width, height, MaxGridHeight)
	}
	return nil
}

// IsRectangular reports whether every row of matrix has the same length
func IsRectangular(matrix [][]CellState) bool {
	for _, row := range matrix {
		if len(row) != len(matrix[0]) {
			return false
		}
	}
	return true
}

// NewGrid creates an all-red grid with the specified dimensions
func NewGrid(width, height int) (*Grid, error) {
	if err := ValidateShape(width, height); err != nil {
		return nil, err
	}
	return &Grid{
		width:  width,
		height: height,
		cells:  make([]CellState, width*height),
	}, nil
}

// GetWidth returns the width of the grid
func (g *Grid) GetWidth() int {
	return g.width
}

// GetHeight returns the height of the grid
func (g *Grid) GetHeight() int {
	return g.height
}

// InBounds reports whether (x, y) addresses a cell of the grid
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

func (g *Grid) checkBounds(op string, x, y int) error {
	if !g.InBounds(x, y) {
		return errors.Wrapf(ErrOutOfBounds, "[%s] (%d, %d) is outside a %dx%d grid", op, x, y, g.width, g.height)
	}
	return nil
}

// GetCell returns the state of the cell at (x, y)
func (g *Grid) GetCell(x, y int) (CellState, error) {
	if err := g.checkBounds("GetCell", x, y); err != nil {
		return Red, err
	}
	return g.cells[y*g.width+x], nil
}

// SetCellState sets the state of the cell at (x, y)
func (g *Grid) SetCellState(x, y int, state CellState) error {
	if err := g.checkBounds("SetCellState", x, y); err != nil {
		return err
	}
	g.cells[y*g.width+x] = state
	return nil
}

// ExportMatrix returns an independent height x width copy of the cells
func (g *Grid) ExportMatrix() [][]CellState {
	matrix := make([][]CellState, g.height)
	for y := 0; y < g.height; y++ {
		matrix[y] = make([]CellState, g.width)
		copy(matrix[y], g.cells[y*g.width:(y+1)*g.width])
	}
	return matrix
}

// ReplaceFromMatrix copies matrix into the grid position by position.
// The matrix must be rectangular, satisfy the shape constraint and fit inside the grid;
// otherwise nothing is written. Cells outside a smaller matrix keep their state.
func (g *Grid) ReplaceFromMatrix(matrix [][]CellState) error {
	if !IsRectangular(matrix) {
		return errors.Wrap(ErrIncompatibleShape, "[ReplaceFromMatrix] matrix is not rectangular")
	}

	var (
		height = len(matrix)
		width  int
	)
	if height > 0 {
		width = len(matrix[0])
	}
	if err := ValidateShape(width, height); err != nil {
		return errors.Wrap(err, "[ReplaceFromMatrix]")
	}
	if width > g.width || height > g.height {
		return errors.Wrapf(ErrIncompatibleShape,
			"[ReplaceFromMatrix] a %dx%d matrix does not fit a %dx%d grid", width, height, g.width, g.height)
	}

	for y, row := range matrix {
		copy(g.cells[y*g.width:y*g.width+width], row)
	}
	return nil
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	cells := make([]CellState, len(g.cells))
	copy(cells, g.cells)
	return &Grid{
		width:  g.width,
		height: g.height,
		cells:  cells,
	}
}

// Reset resets the grid to new dimensions, all red
func (g *Grid) Reset(width, height int) {
	g.width = width
	g.height = height

	// Reuse the buffer when it is large enough
	if cap(g.cells) < width*height {
		g.cells = make([]CellState, width*height)
		return
	}
	g.cells = g.cells[:width*height]
	g.Clear()
}

// Clear turns every cell red
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Red
	}
}

// CountActiveNeighbors counts green cells among the up to 8 neighbors of (x, y), clipped at the edges
func (g *Grid) CountActiveNeighbors(x, y int) int {
	count := 0

	minX := max(0, x-1)
	maxX := min(g.width-1, x+1)
	minY := max(0, y-1)
	maxY := min(g.height-1, y+1)

	for ny := minY; ny <= maxY; ny++ {
		for nx := minX; nx <= maxX; nx++ {
			if nx == x && ny == y {
				continue // Skip the cell itself
			}
			if g.cells[ny*g.width+nx] == Green {
				count++
			}
		}
	}

	return count
}

// CountActiveCells returns the total number of green cells
func (g *Grid) CountActiveCells() (count int) {
	for _, c := range g.cells {
		if c == Green {
			count++
		}
	}
	return
}
