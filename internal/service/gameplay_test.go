package service

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/draughtsdev/checkers-backend/internal/apperror"
	"github.com/draughtsdev/checkers-backend/internal/checkers"
	"github.com/draughtsdev/checkers-backend/internal/entity"
	"github.com/draughtsdev/checkers-backend/internal/repository"
)

type fakePlayerRepo struct {
	players map[string]*entity.Player
}

func newFakePlayerRepo() *fakePlayerRepo {
	return &fakePlayerRepo{players: make(map[string]*entity.Player)}
}

func (that *fakePlayerRepo) CreateOrUpdate(_ context.Context, player *entity.Player) error {
	that.players[player.ID] = player
	return nil
}

func (that *fakePlayerRepo) GetByID(_ context.Context, id string) (*entity.Player, error) {
	player, ok := that.players[id]
	if !ok {
		return nil, repository.ErrPlayerNotFound
	}
	return player, nil
}

type fakeGameRepo struct {
	games map[string]*entity.Game
}

func newFakeGameRepo() *fakeGameRepo {
	return &fakeGameRepo{games: make(map[string]*entity.Game)}
}

func (that *fakeGameRepo) CreateOrUpdate(_ context.Context, game *entity.Game) error {
	that.games[game.ID] = game
	return nil
}

func (that *fakeGameRepo) GetByID(_ context.Context, id string) (*entity.Game, error) {
	game, ok := that.games[id]
	if !ok {
		return nil, repository.ErrGameNotFound
	}
	return game, nil
}

func (that *fakeGameRepo) GetWaitingPublicGame(_ context.Context) (*entity.Game, error) {
	for _, game := range that.games {
		if game.IsPublic() && game.IsWaiting() {
			return game, nil
		}
	}
	return nil, apperror.ErrNoActiveGames
}

func (that *fakeGameRepo) DeleteByID(_ context.Context, id string) error {
	delete(that.games, id)
	return nil
}

type gamePlayFixture struct {
	players  *fakePlayerRepo
	games    *fakeGameRepo
	gamePlay GamePlayService
}

func newGamePlayFixture() *gamePlayFixture {
	playerRepo := newFakePlayerRepo()
	gameRepo := newFakeGameRepo()

	playerService := NewPlayerService(playerRepo)
	gameService := NewGameService(gameRepo)
	botService := NewBotService(discardLogger(), rand.New(rand.NewSource(1)))

	return &gamePlayFixture{
		players:  playerRepo,
		games:    gameRepo,
		gamePlay: NewGamePlayService(discardLogger(), playerService, gameService, botService),
	}
}

// seedTwoPlayerGame - a running game between two stored humans.
func (that *gamePlayFixture) seedTwoPlayerGame() *entity.Game {
	game := entity.NewGame("GAME01", entity.PrivateType)
	game.Status = entity.StatusOngoing

	playerX := &entity.Player{ID: "player-x", Mark: entity.MarkX, GameID: game.ID}
	playerO := &entity.Player{ID: "player-o", Mark: entity.MarkO, GameID: game.ID}
	game.Players = []*entity.Player{playerX, playerO}

	that.players.players[playerX.ID] = playerX
	that.players.players[playerO.ID] = playerO
	that.games.games[game.ID] = game

	return game
}

func TestGamePlayService_MakeTurn(t *testing.T) {
	ctx := context.Background()

	t.Run("applies a legal move and flips the turn", func(t *testing.T) {
		// Given: a running two-player game
		fixture := newGamePlayFixture()
		fixture.seedTwoPlayerGame()

		// When: X plays (2,1) -> (3,0), i.e. "3b-4a"
		game, botMoves, err := fixture.gamePlay.MakeTurn(ctx, "player-x", "3b-4a")

		// Then: the board reflects the move and O is next
		require.NoError(t, err)
		assert.Empty(t, botMoves)
		assert.Equal(t, entity.CellX, game.Board[3][0])
		assert.Equal(t, entity.EmptyCell, game.Board[2][1])
		assert.Equal(t, entity.MarkO, game.Turn)
	})

	t.Run("rejects a move out of turn", func(t *testing.T) {
		// Given: a running game with X to move
		fixture := newGamePlayFixture()
		fixture.seedTwoPlayerGame()

		// When: O tries to move first
		_, _, err := fixture.gamePlay.MakeTurn(ctx, "player-o", "6a-5b")

		// Then: the turn check fires
		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
	})

	t.Run("rejects malformed notation", func(t *testing.T) {
		fixture := newGamePlayFixture()
		fixture.seedTwoPlayerGame()

		_, _, err := fixture.gamePlay.MakeTurn(ctx, "player-x", "3b4a")

		require.ErrorIs(t, err, checkers.ErrBadNotation)
	})

	t.Run("rejects an illegal move and keeps the board", func(t *testing.T) {
		// Given: a running game
		fixture := newGamePlayFixture()
		seeded := fixture.seedTwoPlayerGame()
		before := seeded.Board

		// When: X tries a backward move
		_, _, err := fixture.gamePlay.MakeTurn(ctx, "player-x", "3b-2a")

		// Then: the engine refused and nothing changed
		require.ErrorIs(t, err, apperror.ErrIllegalMove)
		assert.Equal(t, before, seeded.Board)
		assert.Equal(t, entity.MarkX, seeded.Turn)
	})

	t.Run("refuses to move in a waiting game", func(t *testing.T) {
		// Given: a game still waiting for the second player
		fixture := newGamePlayFixture()
		seeded := fixture.seedTwoPlayerGame()
		seeded.Status = entity.StatusWaiting

		_, _, err := fixture.gamePlay.MakeTurn(ctx, "player-x", "3b-4a")

		require.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("bot answers once the human has moved", func(t *testing.T) {
		// Given: a running bot game with the bot holding O
		fixture := newGamePlayFixture()
		seeded := fixture.seedTwoPlayerGame()
		seeded.Type = entity.WithBotType

		botPlayer := entity.NewBotPlayer("abc", seeded.ID)
		botPlayer.Mark = entity.MarkO
		seeded.Players[1] = botPlayer
		fixture.players.players[botPlayer.ID] = botPlayer

		// When: the human plays an opening move
		game, botMoves, err := fixture.gamePlay.MakeTurn(ctx, "player-x", "3b-4a")

		// Then: the bot replied exactly once (no captures on a fresh
		// board) and the turn is back with the human
		require.NoError(t, err)
		require.Len(t, botMoves, 1)
		assert.Equal(t, entity.MarkX, game.Turn)
		assert.Equal(t, 12, game.Board.CountPieces(entity.MarkO))
	})
}

func TestGamePlayService_GameLifecycle(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a game and assigns X to the creator", func(t *testing.T) {
		// Given: a stored player without a game
		fixture := newGamePlayFixture()
		player := &entity.Player{ID: "player-1"}
		fixture.players.players[player.ID] = player

		// When: the player asks for a game
		game, err := fixture.gamePlay.GetOrCreateGame(ctx, player, entity.PrivateType)

		// Then: a waiting game exists and the creator holds X
		require.NoError(t, err)
		assert.Equal(t, entity.MarkX, player.Mark)
		assert.Equal(t, game.ID, player.GameID)
		assert.True(t, game.IsWaiting())
		assert.Len(t, game.Players, 1)
	})

	t.Run("creating a bot game seats the bot immediately", func(t *testing.T) {
		// Given: a stored player without a game
		fixture := newGamePlayFixture()
		player := &entity.Player{ID: "player-1"}
		fixture.players.players[player.ID] = player

		// When: the player asks for a game against the computer
		game, err := fixture.gamePlay.GetOrCreateGame(ctx, player, entity.WithBotType)

		// Then: two seated players, marks drawn, game running; if the
		// bot drew X it has already made its opening move
		require.NoError(t, err)
		require.Len(t, game.Players, 2)
		assert.True(t, game.IsOngoing())

		botPlayer := game.BotPlayer()
		require.NotNil(t, botPlayer)
		assert.NotEmpty(t, botPlayer.Mark)
		assert.NotEqual(t, botPlayer.Mark, player.Mark)

		if botPlayer.Mark == entity.MarkX {
			assert.Equal(t, entity.MarkO, game.Turn, "bot holding X must have opened")
		}
	})

	t.Run("second player joins as O and the game starts", func(t *testing.T) {
		// Given: a waiting game created by player-1
		fixture := newGamePlayFixture()
		creator := &entity.Player{ID: "player-1"}
		fixture.players.players[creator.ID] = creator
		game, err := fixture.gamePlay.GetOrCreateGame(ctx, creator, entity.PrivateType)
		require.NoError(t, err)

		joiner := &entity.Player{ID: "player-2"}
		fixture.players.players[joiner.ID] = joiner

		// When: the second player joins by game ID
		joined, err := fixture.gamePlay.JoinGameByID(ctx, game.ID, joiner.ID)

		// Then: the game is running with both players seated
		require.NoError(t, err)
		assert.True(t, joined.IsOngoing())
		assert.Equal(t, entity.MarkO, joiner.Mark)
		assert.Len(t, joined.Players, 2)
	})

	t.Run("a third player cannot join", func(t *testing.T) {
		// Given: a full game
		fixture := newGamePlayFixture()
		seeded := fixture.seedTwoPlayerGame()
		third := &entity.Player{ID: "player-3"}
		fixture.players.players[third.ID] = third

		// When: another player tries to join
		_, err := fixture.gamePlay.JoinGameByID(ctx, seeded.ID, third.ID)

		// Then: the game is full
		require.ErrorIs(t, err, apperror.ErrGameAlreadyExists)
	})

	t.Run("cleanup releases the players and removes the game", func(t *testing.T) {
		// Given: a finished game
		fixture := newGamePlayFixture()
		seeded := fixture.seedTwoPlayerGame()
		seeded.Status = entity.StatusFinished

		// When: the game is cleaned up
		fixture.gamePlay.CleanupGame(ctx, seeded)

		// Then: the record is gone and the players are free again
		_, ok := fixture.games.games[seeded.ID]
		assert.False(t, ok)
		assert.Empty(t, fixture.players.players["player-x"].GameID)
		assert.Empty(t, fixture.players.players["player-o"].Mark)
	})
}
