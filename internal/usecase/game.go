package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
)

type GameUseCase interface {
	GetGame(ctx context.Context) *entity.Game
	MakeTurn(ctx context.Context, position entity.Position) (*entity.Game, error)
}

type gameUseCase struct {
	logger *slog.Logger
	game   *entity.Game
}

// NewGameUseCase - owns the game for the whole session.
func NewGameUseCase(logger *slog.Logger, game *entity.Game) GameUseCase {
	logger = logger.With("component", "game")
	logger.Info("game created", "turn", game.Turn.String())

	return &gameUseCase{
		logger: logger,
		game:   game,
	}
}

func (that *gameUseCase) GetGame(_ context.Context) *entity.Game {
	return that.game
}

func (that *gameUseCase) MakeTurn(ctx context.Context, position entity.Position) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "position", position.String())

	mark := that.game.Turn
	if err := that.game.MakeTurn(position); err != nil {
		log.InfoContext(ctx, "turn rejected", "mark", mark.String(), "error", err)
		return that.game, fmt.Errorf("failed to make turn: %w", err)
	}

	log.DebugContext(ctx, "turn accepted", "mark", mark.String(), "occupied", that.game.Board.Occupied())

	if that.game.IsFinished() {
		that.logResult(ctx)
	}

	return that.game, nil
}

func (that *gameUseCase) logResult(ctx context.Context) {
	log := that.logger.With("method", "logResult", "moves", len(that.game.History))

	if that.game.IsDraw() {
		log.InfoContext(ctx, "game finished in a draw")
		return
	}

	log.InfoContext(ctx, "game finished", "winner", that.game.Winner.String())
}
