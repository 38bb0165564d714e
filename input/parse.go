package input

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/green-vs-red/model"
)

const tokenDelimiter = ","

// ErrMalformedInput is returned when a line does not follow its expected format
var ErrMalformedInput = errors.New("malformed input")

// Tracking holds the target cell and generation count read from the last input line
type Tracking struct {
	X, Y   int
	Target model.TargetGeneration
}

func splitTokens(line string) []string {
	tokens := strings.Split(line, tokenDelimiter)
	for i := range tokens {
		tokens[i] = strings.TrimSpace(tokens[i])
	}
	return tokens
}

// ParseDimensions parses a "W, H" line
func ParseDimensions(line string) (width, height int, err error) {
	tokens := splitTokens(line)
	if len(tokens) != 2 {
		return 0, 0, errors.Wrapf(ErrMalformedInput, "[ParseDimensions] %q, expected the format: W, H", line)
	}

	w, errW := strconv.ParseInt(tokens[0], 10, 16)
	h, errH := strconv.ParseInt(tokens[1], 10, 16)
	if errW != nil || errH != nil {
		return 0, 0, errors.Wrapf(ErrMalformedInput, "[ParseDimensions] %q, W and H must be 16-bit integers", line)
	}

	return int(w), int(h), nil
}

// ParseRow parses a line of exactly width color codes
func ParseRow(line string, width int) ([]model.CellState, error) {
	if len(line) != width {
		return nil, errors.Wrapf(ErrMalformedInput, "[ParseRow] %q, expected %d digits", line, width)
	}

	row := make([]model.CellState, width)
	for i := 0; i < len(line); i++ {
		c := line[i]
		if c < '0' || c > '9' {
			return nil, errors.Wrapf(ErrMalformedInput, "[ParseRow] %q, %q is not a digit", line, c)
		}
		state, err := model.CellStateFromCode(int(c - '0'))
		if err != nil {
			return nil, errors.Wrapf(err, "[ParseRow] %q", line)
		}
		row[i] = state
	}
	return row, nil
}

// ParseTracking parses a "X, Y, N" line
func ParseTracking(line string) (Tracking, error) {
	tokens := splitTokens(line)
	if len(tokens) != 3 {
		return Tracking{}, errors.Wrapf(ErrMalformedInput, "[ParseTracking] %q, expected the format: X, Y, N", line)
	}

	x, errX := strconv.ParseInt(tokens[0], 10, 16)
	y, errY := strconv.ParseInt(tokens[1], 10, 16)
	n, errN := strconv.ParseInt(tokens[2], 10, 64)
	if errX != nil || errY != nil || errN != nil {
		return Tracking{}, errors.Wrapf(ErrMalformedInput,
			"[ParseTracking] %q, X and Y must be 16-bit integers and N a 64-bit integer", line)
	}

	target, err := model.NewTargetGeneration(n)
	if err != nil {
		return Tracking{}, errors.Wrapf(err, "[ParseTracking] %q", line)
	}

	return Tracking{X: int(x), Y: int(y), Target: target}, nil
}
