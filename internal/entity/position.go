package entity

import (
	"errors"
	"fmt"
)

const BoardSize = 3

var ErrInvalidPosition = errors.New("position is out of range")

// Position is a 1-based (column, row) pair.
type Position struct {
	Col int
	Row int
}

func (that Position) IsValid() bool {
	return that.Col >= 1 && that.Col <= BoardSize && that.Row >= 1 && that.Row <= BoardSize
}

func (that Position) String() string {
	return fmt.Sprintf("%d,%d", that.Col, that.Row)
}

func (that Position) index() int {
	return (that.Row-1)*BoardSize + (that.Col - 1)
}

// Board holds one mark per cell, row by row.
type Board [BoardSize * BoardSize]Mark

// Cell - returns the mark at the position, NoMark for an empty or invalid position.
func (that *Board) Cell(pos Position) Mark {
	if !pos.IsValid() {
		return NoMark
	}
	return that[pos.index()]
}

func (that *Board) Occupied() int {
	count := 0
	for _, cell := range that {
		if cell != NoMark {
			count++
		}
	}
	return count
}

func (that *Board) IsFull() bool {
	return that.Occupied() == len(that)
}
