package entity

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/draughtsdev/checkers-backend/internal/apperror"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"
)

const (
	PublicType  = "public"
	PrivateType = "private"
	WithBotType = "bot"
)

// BoardSize - the board is fixed at 8x8 for the lifetime of a game.
const BoardSize = 8

var (
	ErrUnknownGameStatus = errors.New("unknown game status")
	ErrUnknownCell       = errors.New("unknown cell value")
)

// Mark identifies a side. X starts on rows 0-2, O on rows 5-7.
type Mark string

const (
	MarkX Mark = "X"
	MarkO Mark = "O"
)

// Opponent - returns the other side.
func (that Mark) Opponent() Mark {
	if that == MarkX {
		return MarkO
	}
	return MarkX
}

// Cell is the content of a single board square. It is a closed
// enumeration rather than a raw string so that a cell can never hold
// anything but one piece or nothing.
type Cell uint8

const (
	EmptyCell Cell = iota
	CellX
	CellO
)

// CellOf - converts a side mark to the cell value holding its piece.
func CellOf(mark Mark) Cell {
	if mark == MarkX {
		return CellX
	}
	return CellO
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Holds - reports whether the cell contains a piece of the given side.
func (that Cell) Holds(mark Mark) bool {
	return that == CellOf(mark)
}

func (that Cell) String() string {
	switch that {
	case CellX:
		return string(MarkX)
	case CellO:
		return string(MarkO)
	default:
		return ""
	}
}

// MarshalJSON - cells are stored as "X", "O" or "" so persisted games
// stay readable in Redis.
func (that Cell) MarshalJSON() ([]byte, error) {
	return []byte(`"` + that.String() + `"`), nil
}

func (that *Cell) UnmarshalJSON(data []byte) error {
	switch string(data) {
	case `"X"`:
		*that = CellX
	case `"O"`:
		*that = CellO
	case `""`:
		*that = EmptyCell
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCell, data)
	}

	return nil
}

// Board is the 8x8 grid. It is an array value, so assigning or
// returning it copies the whole grid.
type Board [BoardSize][BoardSize]Cell

// CountPieces - returns how many pieces of the given side remain.
func (that *Board) CountPieces(mark Mark) int {
	count := 0
	for _, row := range that {
		for _, cell := range row {
			if cell.Holds(mark) {
				count++
			}
		}
	}

	return count
}

// InBounds - reports whether the coordinates lie on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < BoardSize && col >= 0 && col < BoardSize
}

type Game struct {
	ID      string    `json:"id"`
	Board   Board     `json:"board"`
	Winner  string    `json:"winner"`
	Status  string    `json:"status"`
	Turn    Mark      `json:"player_turn"`
	Ended   bool      `json:"ended"`
	Players []*Player `json:"players,omitempty"`
	Type    string    `json:"type,omitempty"`
}

func NewGame(id, gameType string) *Game {
	return &Game{
		ID:     id,
		Board:  initialBoard(),
		Turn:   MarkX,
		Status: StatusWaiting,
		Type:   gameType,
	}
}

// initialBoard - three rows of pieces per side on the dark squares,
// X at the top (rows 0-2), O at the bottom (rows 5-7).
func initialBoard() Board {
	var board Board

	for row := 0; row < 3; row++ {
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 != 0 {
				board[row][col] = CellX
			}
		}
	}

	for row := 5; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if (row+col)%2 != 0 {
				board[row][col] = CellO
			}
		}
	}

	return board
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

func (that *Game) IsPublic() bool {
	return that.Type == PublicType
}

func (that *Game) IsWithBot() bool {
	return that.Type == WithBotType
}

// BotPlayer - returns the bot participant, or nil for human-only games.
func (that *Game) BotPlayer() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}

	return nil
}

func (that *Game) GetRandomMarks() (Mark, Mark) {
	if rand.Intn(2) == 0 { //nolint: gosec // it's ok
		return MarkX, MarkO
	}
	return MarkO, MarkX
}
