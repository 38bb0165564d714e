package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/green-vs-red/model"
)

// Scenario is a fully read and validated simulation input
type Scenario struct {
	Grid     *model.Grid
	Tracking Tracking
}

// Reader reads scenario lines from an input stream.
// Interactive readers print each validation error to out and read the line again;
// strict readers return the first error.
type Reader struct {
	scanner *bufio.Scanner
	out     io.Writer
	strict  bool
}

// NewReader returns an interactive Reader that reports rejected lines to out
func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{scanner: bufio.NewScanner(in), out: out}
}

// NewStrictReader returns a Reader that fails on the first invalid line
func NewStrictReader(in io.Reader) *Reader {
	return &Reader{scanner: bufio.NewScanner(in), out: io.Discard, strict: true}
}

func (r *Reader) readLine() (string, error) {
	if !r.scanner.Scan() {
		if err := r.scanner.Err(); err != nil {
			return "", errors.Wrap(err, "[readLine] failed to read input")
		}
		return "", errors.Wrap(io.ErrUnexpectedEOF, "[readLine] input ended early")
	}
	return strings.TrimRight(r.scanner.Text(), "\r"), nil
}

// recoverable reports whether err is a validation failure worth asking for again
func recoverable(err error) bool {
	for _, target := range []error{
		ErrMalformedInput,
		model.ErrIncompatibleShape,
		model.ErrOutOfBounds,
		model.ErrInvalidGenerationCount,
		model.ErrInvalidColorCode,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// untilValid runs action until it succeeds, printing each validation error.
// Read errors and strict mode end the loop immediately.
func (r *Reader) untilValid(action func() error) error {
	for {
		err := action()
		if err == nil {
			return nil
		}
		if r.strict || !recoverable(err) {
			return err
		}
		fmt.Fprintln(r.out, err)
	}
}

// ReadGrid reads the dimensions line and one row line per grid row
func (r *Reader) ReadGrid() (*model.Grid, error) {
	var grid *model.Grid
	err := r.untilValid(func() error {
		line, err := r.readLine()
		if err != nil {
			return err
		}
		width, height, err := ParseDimensions(line)
		if err != nil {
			return err
		}
		grid, err = model.NewGrid(width, height)
		return err
	})
	if err != nil {
		return nil, err
	}

	for y := 0; y < grid.GetHeight(); y++ {
		err := r.untilValid(func() error {
			line, err := r.readLine()
			if err != nil {
				return err
			}
			row, err := ParseRow(line, grid.GetWidth())
			if err != nil {
				return errors.Wrapf(err, "row %d", y)
			}
			for x, state := range row {
				if err := grid.SetCellState(x, y, state); err != nil {
					return err
				}
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	return grid, nil
}

// ReadTracking reads the target line, rejecting coordinates outside grid
func (r *Reader) ReadTracking(grid *model.Grid) (Tracking, error) {
	var tracking Tracking
	err := r.untilValid(func() error {
		line, err := r.readLine()
		if err != nil {
			return err
		}
		if tracking, err = ParseTracking(line); err != nil {
			return err
		}
		if !grid.InBounds(tracking.X, tracking.Y) {
			return errors.Wrapf(model.ErrOutOfBounds, "[ReadTracking] (%d, %d) is outside a %dx%d grid",
				tracking.X, tracking.Y, grid.GetWidth(), grid.GetHeight())
		}
		return nil
	})
	return tracking, err
}

// ReadScenario reads a complete scenario
func (r *Reader) ReadScenario() (*Scenario, error) {
	grid, err := r.ReadGrid()
	if err != nil {
		return nil, err
	}
	tracking, err := r.ReadTracking(grid)
	if err != nil {
		return nil, err
	}
	return &Scenario{Grid: grid, Tracking: tracking}, nil
}
