package console

import (
	"fmt"
	"strings"

	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const (
	promptMessage       = "Enter a coordinate (col,row): "
	invalidInputMessage = "Invalid coordinate! Try again."
	occupiedMessage     = "Coordinate already occupied! Try again."
	outOfRangeMessage   = "Coordinate is out of range! Try again."
	gameOverMessage     = "Game is already finished!"
	noMovesMessage      = "No moves yet."
	drawMessage         = "It's a draw!"
)

var helpLines = []string{
	"Enter a move as col,row with both values between 1 and 3, e.g. 2,3.",
	"Commands:",
	"  help     show this message",
	"  history  list the moves played so far",
	"  quit     leave the game",
}

var markColors = map[entity.Mark]string{
	entity.PlayerX: "1",
	entity.PlayerO: "4",
}

// styleMark - colors the mark identifier for the current output profile.
func styleMark(output *termenv.Output, mark entity.Mark) string {
	style := output.String(mark.String()).Bold()
	if color, ok := markColors[mark]; ok {
		style = style.Foreground(output.Color(color))
	}

	return style.String()
}

func currentPlayerMessage(output *termenv.Output, mark entity.Mark) string {
	return "Current player: " + styleMark(output, mark)
}

func resultMessage(output *termenv.Output, game *entity.Game) string {
	if game.IsDraw() {
		return drawMessage
	}

	return fmt.Sprintf("Player %s wins!", styleMark(output, game.Winner))
}

func historyMessage(game *entity.Game) string {
	if len(game.History) == 0 {
		return noMovesMessage
	}

	lines := make([]string, 0, len(game.History))
	for i, move := range game.History {
		lines = append(lines, fmt.Sprintf("%d. %s at %s", i+1, move.Mark, move.Position))
	}

	return strings.Join(lines, "\n")
}
