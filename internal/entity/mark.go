package entity

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

var ErrUnknownMark = errors.New("unknown mark")

// Mark is the symbol a player places on the board. Only PlayerX and PlayerO are
// marks a player can hold; NoMark is the zero value for an empty cell or an unset winner.
type Mark uint8

const (
	NoMark Mark = iota
	PlayerX
	PlayerO
)

// RandomSource - picks a value in [0, n).
type RandomSource interface {
	Intn(n int) int
}

func (that Mark) IsValid() bool {
	return that == PlayerX || that == PlayerO
}

// Opponent - returns the other player's mark.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return NoMark
	}
}

func (that Mark) String() string {
	switch that {
	case PlayerX:
		return "X"
	case PlayerO:
		return "O"
	default:
		return " "
	}
}

// ParseMark - parses "x" or "o" in any case.
func ParseMark(value string) (Mark, error) {
	switch strings.ToUpper(strings.TrimSpace(value)) {
	case "X":
		return PlayerX, nil
	case "O":
		return PlayerO, nil
	default:
		return NoMark, fmt.Errorf("%w: %q", ErrUnknownMark, value)
	}
}

// RandomMark - chooses one of the two marks uniformly.
func RandomMark(source RandomSource) Mark {
	var n int
	if source == nil {
		n = rand.Intn(2) //nolint: gosec // it's ok
	} else {
		n = source.Intn(2)
	}

	if n == 0 {
		return PlayerX
	}
	return PlayerO
}
