package websocket

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/rocketscienceinc/cuescore-backend/internal/repository"
	"github.com/rocketscienceinc/cuescore-backend/internal/usecase"
	mockedWebsocket "github.com/rocketscienceinc/cuescore-backend/mocks/websocket"
)

type fixture struct {
	uGame *mockedWebsocket.MockgameUseCase
	hub   *Hub
	url   string
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	uGame := mockedWebsocket.NewMockgameUseCase(t)
	hub := NewHub(logger)

	srv := httptest.NewServer(New(logger, uGame, hub).Handler())
	t.Cleanup(srv.Close)

	return fixture{
		uGame: uGame,
		hub:   hub,
		url:   "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws",
	}
}

func (that fixture) dial(t *testing.T) *websocket.Conn {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(ctx, that.url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close(websocket.StatusNormalClosure, "") })

	return conn
}

func send(t *testing.T, conn *websocket.Conn, action string, payload any) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, wsjson.Write(ctx, conn, map[string]any{"action": action, "payload": payload}))
}

func receive(t *testing.T, conn *websocket.Conn) (string, ResponsePayload) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var msg struct {
		Action  string          `json:"action"`
		Payload ResponsePayload `json:"payload"`
	}
	require.NoError(t, wsjson.Read(ctx, conn, &msg))

	return msg.Action, msg.Payload
}

func TestServer_Subscribe(t *testing.T) {
	t.Run("Subscriber receives published snapshots", func(t *testing.T) {
		// Given: a client subscribed to an existing game
		f := newFixture(t)
		game := entity.Game{ID: "g1", Type: entity.GameTypeRotation, Status: entity.StatusInProgress}
		f.uGame.EXPECT().GetGame(mock.Anything, "g1").Return(game, nil).Once()

		conn := f.dial(t)
		send(t, conn, actionSubscribe, SubscribePayload{GameID: "g1"})

		action, payload := receive(t, conn)
		require.Equal(t, actionSubscribe, action)
		require.NotNil(t, payload.Game)
		assert.Equal(t, "g1", payload.Game.ID)

		// When: a new snapshot of the game is published
		game.CurrentRack = 2
		f.hub.Publish(game)

		// Then: the client receives it
		action, payload = receive(t, conn)
		assert.Equal(t, actionState, action)
		require.NotNil(t, payload.Game)
		assert.Equal(t, 2, payload.Game.CurrentRack)
	})

	t.Run("Unknown game is reported", func(t *testing.T) {
		f := newFixture(t)
		f.uGame.EXPECT().GetGame(mock.Anything, "nope").Return(entity.Game{}, repository.ErrGameNotFound).Once()

		conn := f.dial(t)
		send(t, conn, actionSubscribe, SubscribePayload{GameID: "nope"})

		action, payload := receive(t, conn)
		assert.Equal(t, actionSubscribe, action)
		assert.Nil(t, payload.Game)
		assert.Equal(t, repository.ErrGameNotFound.Error(), payload.Error)
	})

	t.Run("Missing game id", func(t *testing.T) {
		f := newFixture(t)

		conn := f.dial(t)
		send(t, conn, actionSubscribe, map[string]string{})

		_, payload := receive(t, conn)
		assert.Equal(t, "gameId is required", payload.Error)
	})
}

func TestServer_Action(t *testing.T) {
	t.Run("Result reaches the sender and other subscribers", func(t *testing.T) {
		// Given: a watcher subscribed to the game and a separate player connection
		f := newFixture(t)
		game := entity.Game{ID: "g1", Type: entity.GameTypeBowlard, Status: entity.StatusInProgress}
		f.uGame.EXPECT().GetGame(mock.Anything, "g1").Return(game, nil).Once()

		watcher := f.dial(t)
		send(t, watcher, actionSubscribe, SubscribePayload{GameID: "g1"})
		_, _ = receive(t, watcher)

		updated := game
		updated.TotalRacks = 1
		f.uGame.EXPECT().
			Execute(mock.Anything, "g1", usecase.Command{Type: usecase.CommandAddPins, Pins: 9}).
			RunAndReturn(func(context.Context, string, usecase.Command) (entity.Game, error) {
				f.hub.Publish(updated)
				return updated, nil
			}).
			Once()

		// When: the player sends an action
		player := f.dial(t)
		send(t, player, actionGame, ActionPayload{GameID: "g1", Command: usecase.Command{Type: usecase.CommandAddPins, Pins: 9}})

		// Then: the player gets the reply and the watcher gets the new state
		action, payload := receive(t, player)
		assert.Equal(t, actionGame, action)
		require.NotNil(t, payload.Game)
		assert.Equal(t, 1, payload.Game.TotalRacks)

		action, payload = receive(t, watcher)
		assert.Equal(t, actionState, action)
		require.NotNil(t, payload.Game)
		assert.Equal(t, 1, payload.Game.TotalRacks)
	})

	t.Run("Server errors are not leaked", func(t *testing.T) {
		f := newFixture(t)
		f.uGame.EXPECT().
			Execute(mock.Anything, "g1", mock.Anything).
			Return(entity.Game{}, errors.New("redis: connection refused")).
			Once()

		conn := f.dial(t)
		send(t, conn, actionGame, ActionPayload{GameID: "g1", Command: usecase.Command{Type: usecase.CommandUndo}})

		_, payload := receive(t, conn)
		assert.Equal(t, "internal error", payload.Error)
	})

	t.Run("Unknown action keeps the connection open", func(t *testing.T) {
		f := newFixture(t)
		f.uGame.EXPECT().GetGame(mock.Anything, "g1").Return(entity.Game{ID: "g1"}, nil).Once()

		conn := f.dial(t)
		send(t, conn, "game:dance", nil)

		action, payload := receive(t, conn)
		assert.Equal(t, "game:dance", action)
		assert.Equal(t, "unknown action", payload.Error)

		send(t, conn, actionSubscribe, SubscribePayload{GameID: "g1"})
		action, _ = receive(t, conn)
		assert.Equal(t, actionSubscribe, action)
	})
}
