package entity

import "strings"

const botIDPrefix = "bot:"

type Player struct {
	ID     string `json:"id"`
	Mark   Mark   `json:"mark,omitempty"`
	GameID string `json:"game_id,omitempty"`
}

// NewBotPlayer - creates the automated opponent for a game. The mark is
// assigned later, once sides are drawn.
func NewBotPlayer(id, gameID string) *Player {
	return &Player{
		ID:     botIDPrefix + id,
		GameID: gameID,
	}
}

func (that *Player) IsBot() bool {
	return strings.HasPrefix(that.ID, botIDPrefix)
}
