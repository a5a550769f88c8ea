package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/rocketscienceinc/cuescore-backend/internal/repository"
	"github.com/rocketscienceinc/cuescore-backend/internal/usecase"
)

var errSendBufferFull = errors.New("send buffer is full")

func (that *Server) handleSubscribe(ctx context.Context, c *client, msg Message) error {
	var payload SubscribePayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.GameID == "" {
		return that.sendError(c, msg.Action, "gameId is required")
	}

	game, err := that.uGame.GetGame(ctx, payload.GameID)
	if err != nil {
		return that.sendFailure(c, msg.Action, err)
	}

	that.hub.subscribe(game.ID, c)

	return that.sendGame(c, msg.Action, game)
}

// handleAction applies a command. Subscribers learn about the result through the hub;
// the sender also gets it as the reply.
func (that *Server) handleAction(ctx context.Context, c *client, msg Message) error {
	var payload ActionPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil || payload.GameID == "" {
		return that.sendError(c, msg.Action, "gameId and command are required")
	}

	game, err := that.uGame.Execute(ctx, payload.GameID, payload.Command)
	if err != nil {
		return that.sendFailure(c, msg.Action, err)
	}

	return that.sendGame(c, msg.Action, game)
}

func (that *Server) sendGame(c *client, action string, game entity.Game) error {
	return that.send(c, action, ResponsePayload{Game: &game})
}

// sendFailure replies with the error text for client errors and a generic message
// otherwise.
func (that *Server) sendFailure(c *client, action string, err error) error {
	if errors.Is(err, repository.ErrGameNotFound) || usecase.IsClientError(err) {
		return that.sendError(c, action, err.Error())
	}

	if sendErr := that.sendError(c, action, "internal error"); sendErr != nil {
		return errors.Join(err, sendErr)
	}

	return err
}

func (that *Server) sendError(c *client, action, text string) error {
	return that.send(c, action, ResponsePayload{Error: text})
}

func (that *Server) send(c *client, action string, payload ResponsePayload) error {
	msg, err := newMessage(action, payload)
	if err != nil {
		return fmt.Errorf("failed to marshal response: %w", err)
	}

	if !c.enqueue(msg) {
		return errSendBufferFull
	}

	return nil
}
