package websocket

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/draughtsdev/checkers-backend/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, conn *websocket.Conn, message *Message) error {
	request, err := decodePayload(message)
	if err != nil {
		return that.sendError(conn, message.Action, err)
	}

	player, err := that.players.GetOrCreatePlayer(ctx, request.PlayerID)
	if err != nil {
		return that.sendError(conn, message.Action, err)
	}

	return that.sendMessage(conn, message.Action, ResponsePayload{Player: player})
}

func (that *Server) handleNewGame(ctx context.Context, conn *websocket.Conn, message *Message) error {
	request, err := decodePayload(message)
	if err != nil {
		return that.sendError(conn, message.Action, err)
	}

	player, err := that.players.GetOrCreatePlayer(ctx, request.PlayerID)
	if err != nil {
		return that.sendError(conn, message.Action, err)
	}

	gameType := request.GameType
	if gameType == "" {
		gameType = entity.PrivateType
	}

	game, err := that.gamePlay.GetOrCreateGame(ctx, player, gameType)
	if err != nil {
		return that.sendError(conn, message.Action, err)
	}

	return that.sendMessage(conn, message.Action, ResponsePayload{Player: player, Game: game})
}

func (that *Server) handleJoinGame(ctx context.Context, conn *websocket.Conn, message *Message) error {
	request, err := decodePayload(message)
	if err != nil {
		return that.sendError(conn, message.Action, err)
	}

	var game *entity.Game
	if request.GameID != "" {
		game, err = that.gamePlay.JoinGameByID(ctx, request.GameID, request.PlayerID)
	} else {
		game, err = that.gamePlay.JoinWaitingPublicGame(ctx, request.PlayerID)
	}
	if err != nil {
		return that.sendError(conn, message.Action, err)
	}

	return that.sendMessage(conn, message.Action, ResponsePayload{Game: game})
}

// handleGameTurn - applies the player's move and reports the updated
// board plus whatever the bot answered. On a finished game the winner
// travels with the final state and the game is cleaned up.
func (that *Server) handleGameTurn(ctx context.Context, conn *websocket.Conn, message *Message) error {
	request, err := decodePayload(message)
	if err != nil {
		return that.sendError(conn, message.Action, err)
	}

	game, botMoves, err := that.gamePlay.MakeTurn(ctx, request.PlayerID, request.Move)
	if err != nil {
		return that.sendError(conn, message.Action, err)
	}

	response := ResponsePayload{Game: game, BotMoves: botMoves}
	if game.IsFinished() {
		response.Winner = game.Winner
		that.gamePlay.CleanupGame(ctx, game)
	}

	return that.sendMessage(conn, message.Action, response)
}

func (that *Server) sendError(conn *websocket.Conn, action string, cause error) error {
	if err := that.sendMessage(conn, action, ResponsePayload{Error: cause.Error()}); err != nil {
		return err
	}

	return cause
}

func decodePayload(message *Message) (*RequestPayload, error) {
	request := &RequestPayload{}
	if len(message.Payload) == 0 {
		return request, nil
	}

	if err := json.Unmarshal(message.Payload, request); err != nil {
		return nil, fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	return request, nil
}
