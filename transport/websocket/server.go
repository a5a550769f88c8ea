package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"nhooyr.io/websocket"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/rocketscienceinc/cuescore-backend/internal/usecase"
)

const (
	readLimit       = 1 << 16
	shutdownTimeout = 5 * time.Second
)

type gameUseCase interface {
	GetGame(ctx context.Context, id string) (entity.Game, error)
	Execute(ctx context.Context, id string, cmd usecase.Command) (entity.Game, error)
}

type Server struct {
	logger *slog.Logger
	uGame  gameUseCase
	hub    *Hub

	handlers map[string]func(ctx context.Context, c *client, msg Message) error
}

func New(logger *slog.Logger, uGame gameUseCase, hub *Hub) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		uGame:  uGame,
		hub:    hub,

		handlers: make(map[string]func(context.Context, *client, Message) error),
	}

	server.handlers[actionSubscribe] = server.handleSubscribe
	server.handlers[actionGame] = server.handleAction

	return server
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start serves WebSocket clients on port until ctx is cancelled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
		// open connections end with the application
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			that.logger.Error("failed to shut down WebSocket server", "error", err)
		}
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

func (that *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		log.Error("failed to accept connection", "error", err)
		return
	}
	conn.SetReadLimit(readLimit)

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	c := newClient(conn)
	defer that.hub.unsubscribe(c)

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer cancel()

		if err := c.writeLoop(ctx); err != nil && !errors.Is(err, context.Canceled) {
			log.Warn("write loop stopped", "error", err)
		}
	}()

	log.Info("WebSocket connection established")

	that.handleMessages(ctx, c)

	cancel()
	<-done

	_ = conn.Close(websocket.StatusNormalClosure, "bye")
}

// handleMessages processes messages from the client until the connection closes.
func (that *Server) handleMessages(ctx context.Context, c *client) {
	log := that.logger.With("method", "handleMessages")

	for {
		_, data, err := c.conn.Read(ctx)
		if err != nil {
			if status := websocket.CloseStatus(err); status != websocket.StatusNormalClosure && status != websocket.StatusGoingAway && ctx.Err() == nil {
				log.Warn("error reading message", "error", err)
			}
			return
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Warn("failed to unmarshal message", "error", err)
			that.sendError(c, actionError, "invalid message")
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			that.sendError(c, message.Action, "unknown action")
			continue
		}

		if err = handler(ctx, c, message); err != nil {
			log.Error("error processing message", "action", message.Action, "error", err)
		}
	}
}
