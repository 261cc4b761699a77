package service

import (
	"io"
	"log/slog"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draughtsdev/checkers-backend/internal/checkers"
	"github.com/draughtsdev/checkers-backend/internal/entity"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newBotGame - an empty board owned by a bot playing O, O to move.
func newBotGame() *entity.Game {
	bot := entity.NewBotPlayer("abc", "game-1")
	bot.Mark = entity.MarkO

	return &entity.Game{
		ID:      "game-1",
		Turn:    entity.MarkO,
		Status:  entity.StatusOngoing,
		Players: []*entity.Player{{ID: "human", Mark: entity.MarkX}, bot},
	}
}

func TestBotService_MakeTurn(t *testing.T) {
	t.Run("applies the move it describes", func(t *testing.T) {
		// Given: O's only piece at (5,0) with a single step available
		game := newBotGame()
		game.Board[5][0] = entity.CellO
		game.Board[0][1] = entity.CellX
		botService := NewBotService(discardLogger(), rand.New(rand.NewSource(1)))

		// When: the bot takes its turn
		move, err := botService.MakeTurn(game)

		// Then: the only candidate is chosen and already executed
		require.NoError(t, err)
		assert.Equal(t, "6a-5b", move)
		assert.Equal(t, entity.CellO, game.Board[4][1])
		assert.Equal(t, entity.EmptyCell, game.Board[5][0])
		assert.Equal(t, entity.MarkX, game.Turn)
	})

	t.Run("prefers a capture over any simple move", func(t *testing.T) {
		// Given: a capturable X next to O plus plenty of quiet moves,
		// under many different random sources
		for seed := int64(0); seed < 20; seed++ {
			game := newBotGame()
			game.Board[5][2] = entity.CellO
			game.Board[5][6] = entity.CellO
			game.Board[6][1] = entity.CellO
			game.Board[4][1] = entity.CellX
			game.Board[0][1] = entity.CellX
			botService := NewBotService(discardLogger(), rand.New(rand.NewSource(seed)))

			// When: the bot takes its turn
			move, err := botService.MakeTurn(game)

			// Then: it always jumps (5,2) -> (3,0) over the X piece
			require.NoError(t, err)
			assert.Equal(t, "6c-4a", move, "seed %d", seed)
			assert.Equal(t, entity.EmptyCell, game.Board[4][1], "seed %d", seed)
			assert.Equal(t, entity.CellO, game.Board[3][0], "seed %d", seed)
		}
	})

	t.Run("a backward-only capture draw yields no move", func(t *testing.T) {
		// Given: the only jump for O goes toward increasing rows; the
		// enumeration offers it but the engine refuses non-forward moves
		game := newBotGame()
		game.Board[2][2] = entity.CellO
		game.Board[3][3] = entity.CellX
		game.Board[7][0] = entity.CellX
		engine := checkers.NewEngine(discardLogger(), game)
		before := engine.Board()
		botService := NewBotService(discardLogger(), rand.New(rand.NewSource(1)))

		// When: the bot takes its turn
		move, err := botService.MakeTurn(game)

		// Then: the move is rejected and nothing changed
		require.ErrorIs(t, err, ErrMoveRejected)
		assert.Empty(t, move)
		assert.Equal(t, before, engine.Board())
	})

	t.Run("reports no available moves for a stuck side", func(t *testing.T) {
		// Given: O's only piece cornered on its back row
		game := newBotGame()
		game.Board[0][0] = entity.CellO
		game.Board[7][2] = entity.CellX
		botService := NewBotService(discardLogger(), rand.New(rand.NewSource(1)))

		// When: the bot takes its turn
		move, err := botService.MakeTurn(game)

		// Then: there is nothing to play
		require.ErrorIs(t, err, ErrNoAvailableMoves)
		assert.Empty(t, move)
	})

	t.Run("fails without a bot player in the game", func(t *testing.T) {
		// Given: a human-only game
		game := &entity.Game{
			ID:      "game-2",
			Turn:    entity.MarkO,
			Status:  entity.StatusOngoing,
			Players: []*entity.Player{{ID: "human", Mark: entity.MarkX}},
		}
		botService := NewBotService(discardLogger(), rand.New(rand.NewSource(1)))

		// When: the bot is asked to move
		_, err := botService.MakeTurn(game)

		// Then: the bot player is missing
		require.ErrorIs(t, err, ErrBotNotFound)
	})
}
