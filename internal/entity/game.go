package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
)

const (
	StatusOngoing = "ongoing"
	StatusWon     = "won"
	StatusDraw    = "draw"
)

// WinCombos lists every line as board indexes: rows, then columns, then both diagonals.
var WinCombos = [][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Move is an accepted placement.
type Move struct {
	Mark     Mark
	Position Position
}

// Options configures a new game. A NoMark InitialTurn means the first turn is drawn from Rand.
type Options struct {
	InitialTurn Mark
	Rand        RandomSource
}

type Game struct {
	Board   Board
	Turn    Mark
	Winner  Mark
	Status  string
	History []Move
}

func NewGame(opts Options) *Game {
	turn := opts.InitialTurn
	if !turn.IsValid() {
		turn = RandomMark(opts.Rand)
	}

	return &Game{
		Turn:   turn,
		Status: StatusOngoing,
	}
}

// MakeTurn - places the current turn's mark at the position.
func (that *Game) MakeTurn(pos Position) error {
	if that.IsFinished() {
		return apperror.ErrGameOver
	}

	if !pos.IsValid() {
		return fmt.Errorf("%w: %s", ErrInvalidPosition, pos)
	}

	if that.Board[pos.index()] != NoMark {
		return apperror.ErrCoordOccupied
	}

	that.Board[pos.index()] = that.Turn
	that.History = append(that.History, Move{Mark: that.Turn, Position: pos})

	that.UpdateGameState()

	return nil
}

// DetermineGameResult - evaluates the whole board. It returns the mark owning a
// complete line (NoMark if none) and whether every cell is taken.
func (that *Game) DetermineGameResult() (Mark, bool) {
	for _, combo := range WinCombos {
		a, b, c := that.Board[combo[0]], that.Board[combo[1]], that.Board[combo[2]]
		if a != NoMark && a == b && b == c {
			return a, that.Board.IsFull()
		}
	}

	return NoMark, that.Board.IsFull()
}

func (that *Game) UpdateGameState() {
	switch winner, full := that.DetermineGameResult(); {
	// one player wins
	case winner != NoMark:
		that.Winner = winner
		that.Status = StatusWon
	// tie
	case full:
		that.Status = StatusDraw
	// game continue
	default:
		that.Turn = that.Turn.Opponent()
	}
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusWon || that.Status == StatusDraw
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsDraw() bool {
	return that.Status == StatusDraw
}

// Render - draws the board as three pipe-delimited rows.
func (that *Game) Render() string {
	rows := make([]string, 0, BoardSize)

	for row := 1; row <= BoardSize; row++ {
		var line strings.Builder
		line.WriteString("|")
		for col := 1; col <= BoardSize; col++ {
			line.WriteString(that.Board.Cell(Position{Col: col, Row: row}).String())
			line.WriteString("|")
		}
		rows = append(rows, line.String())
	}

	return strings.Join(rows, "\n")
}
