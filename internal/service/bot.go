package service

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/draughtsdev/checkers-backend/internal/checkers"
	"github.com/draughtsdev/checkers-backend/internal/entity"
)

var (
	ErrBotNotFound      = errors.New("bot player not found")
	ErrNoAvailableMoves = errors.New("no available moves")
	ErrMoveRejected     = errors.New("engine rejected the chosen move")
)

type BotService interface {
	MakeTurn(game *entity.Game) (string, error)
}

type botService struct {
	logger *slog.Logger
	rng    *rand.Rand
}

// NewBotService - the random source is injectable so tests can pin the
// selection; a nil rng falls back to a time-seeded one.
func NewBotService(logger *slog.Logger, rng *rand.Rand) BotService {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) //nolint: gosec // it's ok
	}

	return &botService{
		logger: logger.With("component", "bot"),
		rng:    rng,
	}
}

// MakeTurn - picks one move for the bot side and applies it. Jumps are
// mandatory: whenever at least one jump is available, a jump is chosen.
// A non-empty description always refers to a move that has already been
// applied, so callers must not replay it.
func (that *botService) MakeTurn(game *entity.Game) (string, error) {
	botPlayer := game.BotPlayer()
	if botPlayer == nil {
		return "", ErrBotNotFound
	}

	engine := checkers.NewEngine(that.logger, game)
	captures, moves := that.enumerateMoves(engine, game, botPlayer.Mark)

	candidates := moves
	if len(captures) > 0 {
		candidates = captures
	}
	if len(candidates) == 0 {
		return "", ErrNoAvailableMoves
	}

	move := candidates[that.rng.Intn(len(candidates))]

	if !engine.ApplyMove(move.FromRow, move.FromCol, move.ToRow, move.ToCol) {
		// Jump candidates come from all four diagonals, but the engine
		// only accepts forward moves; a backward jump draw ends the
		// bot's turn with nothing applied.
		that.logger.Warn("chosen move rejected by engine", "game", game.ID, "move", move.String())
		return "", fmt.Errorf("%w: %s", ErrMoveRejected, move)
	}

	return move.String(), nil
}

// enumerateMoves - scans the whole board and collects the bot side's
// candidate simple moves (two forward diagonals) and jumps (all four
// diagonals) separately.
func (that *botService) enumerateMoves(engine *checkers.Engine, game *entity.Game, mark entity.Mark) (captures, moves []checkers.Move) {
	forward := 1
	if mark == entity.MarkO {
		forward = -1
	}

	moveDirections := [2][2]int{{forward, -1}, {forward, 1}}
	jumpDirections := [4][2]int{{-2, -2}, {-2, 2}, {2, -2}, {2, 2}}

	for row := 0; row < entity.BoardSize; row++ {
		for col := 0; col < entity.BoardSize; col++ {
			if !game.Board[row][col].Holds(mark) {
				continue
			}

			for _, dir := range moveDirections {
				if engine.IsValidMove(row, col, row+dir[0], col+dir[1]) {
					moves = append(moves, checkers.Move{FromRow: row, FromCol: col, ToRow: row + dir[0], ToCol: col + dir[1]})
				}
			}

			for _, dir := range jumpDirections {
				if engine.IsValidJump(row, col, row+dir[0], col+dir[1]) {
					captures = append(captures, checkers.Move{FromRow: row, FromCol: col, ToRow: row + dir[0], ToCol: col + dir[1]})
				}
			}
		}
	}

	return captures, moves
}
