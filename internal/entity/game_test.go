package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draughtsdev/checkers-backend/internal/apperror"
)

func TestNewGame(t *testing.T) {
	// Given: a freshly created game
	game := NewGame("game-1", PrivateType)

	// Then: X opens and the game waits for an opponent
	assert.Equal(t, MarkX, game.Turn)
	assert.Equal(t, StatusWaiting, game.Status)
	assert.False(t, game.Ended)

	// And: both sides start with twelve pieces on dark squares only
	assert.Equal(t, 12, game.Board.CountPieces(MarkX))
	assert.Equal(t, 12, game.Board.CountPieces(MarkO))

	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			cell := game.Board[row][col]
			if (row+col)%2 == 0 {
				assert.True(t, cell.IsEmpty(), "light square (%d,%d) must be empty", row, col)
				continue
			}
			switch {
			case row < 3:
				assert.Equal(t, CellX, cell, "square (%d,%d)", row, col)
			case row > 4:
				assert.Equal(t, CellO, cell, "square (%d,%d)", row, col)
			default:
				assert.True(t, cell.IsEmpty(), "middle square (%d,%d) must be empty", row, col)
			}
		}
	}
}

func TestMark_Opponent(t *testing.T) {
	assert.Equal(t, MarkO, MarkX.Opponent())
	assert.Equal(t, MarkX, MarkO.Opponent())
}

func TestCell_JSON(t *testing.T) {
	t.Run("cells serialize as readable marks", func(t *testing.T) {
		// Given: a row with one piece of each kind
		row := [3]Cell{CellX, CellO, EmptyCell}

		// When: marshalled and unmarshalled
		data, err := json.Marshal(row)
		require.NoError(t, err)
		assert.JSONEq(t, `["X","O",""]`, string(data))

		var decoded [3]Cell
		require.NoError(t, json.Unmarshal(data, &decoded))

		// Then: the round trip is lossless
		assert.Equal(t, row, decoded)
	})

	t.Run("unknown cell value is rejected", func(t *testing.T) {
		var cell Cell
		err := json.Unmarshal([]byte(`"K"`), &cell)
		assert.ErrorIs(t, err, ErrUnknownCell)
	})
}

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsFinished returns true when game status is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}
		assert.True(t, game.IsFinished())
	})

	t.Run("IsOngoing returns true when game status is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}
		assert.True(t, game.IsOngoing())
	})

	t.Run("IsWaiting returns true when game status is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}
		assert.True(t, game.IsWaiting())
	})
}

func TestGame_ConfirmOngoingState(t *testing.T) {
	t.Run("Returns nil when game is ongoing", func(t *testing.T) {
		game := &Game{Status: StatusOngoing}
		assert.NoError(t, game.ConfirmOngoingState())
	})

	t.Run("Returns ErrGameIsNotStarted when game is waiting", func(t *testing.T) {
		game := &Game{Status: StatusWaiting}
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is finished", func(t *testing.T) {
		game := &Game{Status: StatusFinished}
		assert.ErrorIs(t, game.ConfirmOngoingState(), apperror.ErrGameFinished)
	})

	t.Run("Returns error for unknown game status", func(t *testing.T) {
		game := &Game{Status: "unknown"}
		err := game.ConfirmOngoingState()
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestGame_BotPlayer(t *testing.T) {
	t.Run("finds the bot among the players", func(t *testing.T) {
		// Given: a game with a human and a bot
		human := &Player{ID: "human-1"}
		bot := NewBotPlayer("abc", "game-1")
		game := &Game{Players: []*Player{human, bot}}

		// Then: the bot is identified
		require.NotNil(t, game.BotPlayer())
		assert.True(t, game.BotPlayer().IsBot())
		assert.False(t, human.IsBot())
	})

	t.Run("returns nil for human-only games", func(t *testing.T) {
		game := &Game{Players: []*Player{{ID: "human-1"}, {ID: "human-2"}}}
		assert.Nil(t, game.BotPlayer())
	})
}
