package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

var ErrInvalidInput = errors.New("invalid input")

// ParsePosition - parses "col,row" made of two positive integers.
func ParsePosition(input string) (entity.Position, error) {
	parts := strings.Split(strings.TrimSpace(input), ",")
	if len(parts) != 2 {
		return entity.Position{}, fmt.Errorf("%w: expected two comma-separated numbers, got %q", ErrInvalidInput, input)
	}

	coords := make([]int, 0, len(parts))
	for _, part := range parts {
		value, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return entity.Position{}, fmt.Errorf("%w: %q is not a number", ErrInvalidInput, part)
		}

		if value < 1 {
			return entity.Position{}, fmt.Errorf("%w: %d is not positive", ErrInvalidInput, value)
		}

		coords = append(coords, value)
	}

	return entity.Position{Col: coords[0], Row: coords[1]}, nil
}
