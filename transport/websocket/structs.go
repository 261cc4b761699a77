package websocket

import (
	"encoding/json"

	"github.com/draughtsdev/checkers-backend/internal/entity"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type RequestPayload struct {
	PlayerID string `json:"player_id,omitempty"`
	GameID   string `json:"game_id,omitempty"`
	GameType string `json:"game_type,omitempty"`
	Move     string `json:"move,omitempty"`
}

type ResponsePayload struct {
	Player   *entity.Player `json:"player,omitempty"`
	Game     *entity.Game   `json:"game,omitempty"`
	BotMoves []string       `json:"bot_moves,omitempty"`
	Winner   string         `json:"winner,omitempty"`
	Error    string         `json:"error,omitempty"`
}
