package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/draughtsdev/checkers-backend/internal/apperror"
	"github.com/draughtsdev/checkers-backend/internal/entity"
)

var ErrGameNotFound = errors.New("game not found")

const waitingPublicGamesKey = "games:public:waiting"

type GameRepository interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetWaitingPublicGame(ctx context.Context) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbGame struct {
	client *redis.Client
}

func NewGameRepository(client *redis.Client) GameRepository {
	return &dbGame{
		client: client,
	}
}

func (that *dbGame) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	gameKey := "game:" + game.ID
	if err = that.client.Set(ctx, gameKey, gameJSON, 0).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	// Waiting public games are indexed separately so matchmaking can
	// pick one without scanning the keyspace.
	if game.IsPublic() && game.IsWaiting() {
		if err = that.client.SAdd(ctx, waitingPublicGamesKey, game.ID).Err(); err != nil {
			return fmt.Errorf("failed to index waiting game: %w", err)
		}
	} else if err = that.client.SRem(ctx, waitingPublicGamesKey, game.ID).Err(); err != nil {
		return fmt.Errorf("failed to unindex game: %w", err)
	}

	return nil
}

func (that *dbGame) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	gameKey := "game:" + id

	response, err := that.client.Get(ctx, gameKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrGameNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	var existingGame entity.Game
	if err = json.Unmarshal([]byte(response), &existingGame); err != nil {
		return nil, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &existingGame, nil
}

func (that *dbGame) GetWaitingPublicGame(ctx context.Context) (*entity.Game, error) {
	id, err := that.client.SRandMember(ctx, waitingPublicGamesKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, apperror.ErrNoActiveGames
	}

	if err != nil {
		return nil, fmt.Errorf("failed to pick waiting game: %w", err)
	}

	return that.GetByID(ctx, id)
}

func (that *dbGame) DeleteByID(ctx context.Context, id string) error {
	gameKey := "game:" + id

	if err := that.client.Del(ctx, gameKey).Err(); err != nil {
		return fmt.Errorf("failed to delete game by ID: %w", err)
	}

	if err := that.client.SRem(ctx, waitingPublicGamesKey, id).Err(); err != nil {
		return fmt.Errorf("failed to unindex game: %w", err)
	}

	return nil
}
