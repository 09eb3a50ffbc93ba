package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

const maxLineLength = 1024

var (
	errQuit        = errors.New("player quit")
	errLineTooLong = errors.New("input line is too long")
)

type gameUseCase interface {
	GetGame(ctx context.Context) *entity.Game
	MakeTurn(ctx context.Context, position entity.Position) (*entity.Game, error)
}

type Config struct {
	// NoColor prints mark identifiers without terminal styling.
	NoColor bool
	// ExitOnFinish returns from Start as soon as the game is decided.
	ExitOnFinish bool
}

type Console struct {
	logger *slog.Logger
	game   gameUseCase
	conf   Config

	reader *bufio.Reader
	output *termenv.Output
	err    error
	// endPrompt ends the prompt line after each read when input is not echoed by a terminal.
	endPrompt bool

	commands map[string]func(ctx context.Context) error
}

func New(logger *slog.Logger, game gameUseCase, in io.Reader, out io.Writer, conf Config) *Console {
	var output *termenv.Output
	if conf.NoColor {
		output = termenv.NewOutput(out, termenv.WithProfile(termenv.Ascii))
	} else {
		output = termenv.NewOutput(out)
	}

	console := &Console{
		logger:    logger.With("component", "console"),
		game:      game,
		conf:      conf,
		reader:    bufio.NewReader(in),
		output:    output,
		endPrompt: !isTerminal(in),

		commands: make(map[string]func(context.Context) error),
	}

	console.commands["help"] = console.handleHelp
	console.commands["history"] = console.handleHistory
	console.commands["quit"] = console.handleQuit
	console.commands["exit"] = console.handleQuit

	return console
}

// Start - runs the read-eval-print loop until the game ends, input closes or ctx is canceled.
func (that *Console) Start(ctx context.Context) error {
	log := that.logger.With("method", "Start")

	log.Info("console started")

	for {
		if err := ctx.Err(); err != nil {
			log.Info("console stopped", "reason", err)
			return err
		}

		done, err := that.step(ctx)

		if that.err != nil {
			return fmt.Errorf("failed to write output: %w", that.err)
		}

		if err != nil {
			if errors.Is(err, errQuit) {
				log.Info("player left the game")
				return nil
			}

			return err
		}

		if done {
			log.Info("console finished")
			return nil
		}
	}
}

// step - renders the board, prompts once and handles one line of input.
func (that *Console) step(ctx context.Context) (bool, error) {
	game := that.game.GetGame(ctx)

	that.println(game.Render())

	if game.IsFinished() {
		that.println(resultMessage(that.output, game))
		if that.conf.ExitOnFinish {
			return true, nil
		}
	} else {
		that.println(currentPlayerMessage(that.output, game.Turn))
	}

	that.print(promptMessage)
	if that.err != nil {
		return false, nil
	}

	line, err := that.readLine()

	switch {
	case errors.Is(err, io.EOF):
		that.println()
		that.logger.Info("input closed")
		return true, nil
	case errors.Is(err, errLineTooLong):
		that.endPromptLine()
		that.logger.Debug("rejected input", "error", err)
		that.println(invalidInputMessage)
		return false, nil
	case err != nil:
		that.println()
		return false, fmt.Errorf("failed to read input: %w", err)
	}

	that.endPromptLine()

	return false, that.handleLine(ctx, line)
}

// readLine - reads one line without its line ending. A longer line than maxLineLength
// is consumed to its end and reported as errLineTooLong.
func (that *Console) readLine() (string, error) {
	var (
		line    []byte
		tooLong bool
	)

	for {
		chunk, err := that.reader.ReadSlice('\n')
		if !tooLong && len(line)+len(chunk) <= maxLineLength {
			line = append(line, chunk...)
		} else {
			tooLong = true
		}

		if errors.Is(err, bufio.ErrBufferFull) {
			continue
		}

		// a last line without a line ending still counts
		if err != nil && !(errors.Is(err, io.EOF) && (len(line) > 0 || tooLong)) {
			return "", err
		}

		break
	}

	if tooLong {
		return "", errLineTooLong
	}

	return strings.TrimRight(string(line), "\r\n"), nil
}

func (that *Console) endPromptLine() {
	if that.endPrompt {
		that.println()
	}
}

func (that *Console) handleLine(ctx context.Context, line string) error {
	log := that.logger.With("method", "handleLine")

	text := strings.TrimSpace(line)

	if handler, ok := that.commands[strings.ToLower(text)]; ok {
		return handler(ctx)
	}

	position, err := ParsePosition(text)
	if err != nil {
		log.Debug("rejected input", "input", text, "error", err)
		that.println(invalidInputMessage)
		return nil
	}

	_, err = that.game.MakeTurn(ctx, position)

	switch {
	case err == nil:
		return nil
	case errors.Is(err, apperror.ErrCoordOccupied):
		that.println(occupiedMessage)
	case errors.Is(err, apperror.ErrGameOver):
		that.println(gameOverMessage)
	case errors.Is(err, entity.ErrInvalidPosition):
		that.println(outOfRangeMessage)
	default:
		return fmt.Errorf("failed to make turn: %w", err)
	}

	return nil
}

func (that *Console) handleHelp(_ context.Context) error {
	that.println(strings.Join(helpLines, "\n"))
	return nil
}

func (that *Console) handleHistory(ctx context.Context) error {
	that.println(historyMessage(that.game.GetGame(ctx)))
	return nil
}

func (that *Console) handleQuit(_ context.Context) error {
	that.println("Bye!")
	return errQuit
}

func isTerminal(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(file.Fd()) || isatty.IsCygwinTerminal(file.Fd())
}

func (that *Console) print(text string) {
	if that.err != nil {
		return
	}

	_, that.err = io.WriteString(that.output, text)
}

func (that *Console) println(lines ...string) {
	that.print(strings.Join(lines, "\n") + "\n")
}
