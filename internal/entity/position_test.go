package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition(t *testing.T) {
	t.Run("Corners and center are valid", func(t *testing.T) {
		for _, p := range []Position{pos(1, 1), pos(3, 1), pos(2, 2), pos(1, 3), pos(3, 3)} {
			assert.True(t, p.IsValid(), "position %s", p)
		}
	})

	t.Run("Coordinates outside 1..3 are invalid", func(t *testing.T) {
		for _, p := range []Position{pos(0, 1), pos(1, 0), pos(4, 2), pos(2, 4), pos(-3, 2)} {
			assert.False(t, p.IsValid(), "position %s", p)
		}
	})

	t.Run("Index is row-major", func(t *testing.T) {
		assert.Equal(t, 0, pos(1, 1).index())
		assert.Equal(t, 2, pos(3, 1).index())
		assert.Equal(t, 3, pos(1, 2).index())
		assert.Equal(t, 8, pos(3, 3).index())
	})

	t.Run("Positions compare structurally", func(t *testing.T) {
		assert.True(t, pos(2, 3) == Position{Col: 2, Row: 3})
		assert.False(t, pos(2, 3) == pos(3, 2))
		assert.Equal(t, "2,3", pos(2, 3).String())
	})
}

func TestBoard(t *testing.T) {
	// Given: a board with two marks
	board := Board{PlayerX, NoMark, NoMark, NoMark, PlayerO, NoMark, NoMark, NoMark, NoMark}

	// Then: cells, occupancy and fullness reflect it
	assert.Equal(t, PlayerX, board.Cell(pos(1, 1)))
	assert.Equal(t, PlayerO, board.Cell(pos(2, 2)))
	assert.Equal(t, NoMark, board.Cell(pos(3, 3)))
	assert.Equal(t, NoMark, board.Cell(pos(9, 9)))
	assert.Equal(t, 2, board.Occupied())
	assert.False(t, board.IsFull())

	for i := range board {
		board[i] = PlayerX
	}
	assert.True(t, board.IsFull())
}
