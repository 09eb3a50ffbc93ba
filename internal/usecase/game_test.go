package usecase

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe-console/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-console/internal/entity"
	"github.com/rocketscienceinc/tictactoe-console/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pos(col, row int) entity.Position {
	return entity.Position{Col: col, Row: row}
}

func TestGameUseCase_GetGame(t *testing.T) {
	ctx, st := suite.New(t)

	// Given: a use case wrapping a new game
	game := entity.NewGame(entity.Options{InitialTurn: entity.PlayerO})
	useCaseInstance := NewGameUseCase(st.Logger, game)

	// When: asking for the game
	actual := useCaseInstance.GetGame(ctx)

	// Then: the same game is returned
	assert.Same(t, game, actual)
	assert.Contains(t, st.Logs.String(), `"msg":"game created","component":"game"`)
}

func TestGameUseCase_MakeTurn(t *testing.T) {
	t.Run("Successful turn", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a new game where X moves first
		useCaseInstance := NewGameUseCase(st.Logger, entity.NewGame(entity.Options{InitialTurn: entity.PlayerX}))

		// When: X plays the center
		game, err := useCaseInstance.MakeTurn(ctx, pos(2, 2))

		// Then: the move is applied and logged
		require.NoError(t, err)
		assert.Equal(t, entity.PlayerX, game.Board.Cell(pos(2, 2)))
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Contains(t, st.Logs.String(), `"msg":"turn accepted"`)
	})

	t.Run("Keeps the error taxonomy when wrapping", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a game where (1,1) is taken
		useCaseInstance := NewGameUseCase(st.Logger, entity.NewGame(entity.Options{InitialTurn: entity.PlayerX}))
		_, err := useCaseInstance.MakeTurn(ctx, pos(1, 1))
		require.NoError(t, err)

		// When: the same coordinate and an off-board coordinate are played
		game, errOccupied := useCaseInstance.MakeTurn(ctx, pos(1, 1))
		_, errInvalid := useCaseInstance.MakeTurn(ctx, pos(5, 1))

		// Then: both errors still match their sentinels and the state is returned untouched
		require.ErrorIs(t, errOccupied, apperror.ErrCoordOccupied)
		require.ErrorIs(t, errInvalid, entity.ErrInvalidPosition)
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, 1, game.Board.Occupied())
		assert.Contains(t, st.Logs.String(), `"msg":"turn rejected"`)
	})

	t.Run("Logs the winner once the game finishes", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a new game where X moves first
		useCaseInstance := NewGameUseCase(st.Logger, entity.NewGame(entity.Options{InitialTurn: entity.PlayerX}))

		// When: X completes the top row
		var game *entity.Game
		for _, p := range []entity.Position{pos(1, 1), pos(1, 2), pos(2, 1), pos(2, 2), pos(3, 1)} {
			var err error
			game, err = useCaseInstance.MakeTurn(ctx, p)
			require.NoError(t, err)
		}

		// Then: the win is recorded and logged
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.Contains(t, st.Logs.String(), `"msg":"game finished"`)
		assert.Contains(t, st.Logs.String(), `"winner":"X"`)

		// And: further turns fail with ErrGameOver
		_, err := useCaseInstance.MakeTurn(ctx, pos(3, 3))
		require.ErrorIs(t, err, apperror.ErrGameOver)
	})

	t.Run("Logs a draw", func(t *testing.T) {
		ctx, st := suite.New(t)

		// Given: a new game where X moves first
		useCaseInstance := NewGameUseCase(st.Logger, entity.NewGame(entity.Options{InitialTurn: entity.PlayerX}))

		// When: the board fills without a line
		for _, p := range []entity.Position{
			pos(1, 1), pos(2, 1), pos(3, 1),
			pos(2, 2), pos(1, 2), pos(3, 2),
			pos(2, 3), pos(1, 3), pos(3, 3),
		} {
			_, err := useCaseInstance.MakeTurn(ctx, p)
			require.NoError(t, err)
		}

		// Then: the draw is logged
		assert.True(t, useCaseInstance.GetGame(ctx).IsDraw())
		assert.Contains(t, st.Logs.String(), `"msg":"game finished in a draw"`)
	})
}
