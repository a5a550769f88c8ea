package websocket

import (
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

// Hub fans out game snapshots to the clients subscribed to each game.
type Hub struct {
	logger *slog.Logger

	mu          sync.RWMutex
	subscribers map[string]map[*client]struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:      logger.With("component", "hub"),
		subscribers: make(map[string]map[*client]struct{}),
	}
}

func (that *Hub) subscribe(gameID string, c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	clients, ok := that.subscribers[gameID]
	if !ok {
		clients = make(map[*client]struct{})
		that.subscribers[gameID] = clients
	}

	clients[c] = struct{}{}
}

// unsubscribe removes the client from every game it follows.
func (that *Hub) unsubscribe(c *client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	for gameID, clients := range that.subscribers {
		delete(clients, c)

		if len(clients) == 0 {
			delete(that.subscribers, gameID)
		}
	}
}

// Publish sends the snapshot to every subscriber of the game. Slow clients miss
// the update instead of blocking the caller.
func (that *Hub) Publish(game entity.Game) {
	log := that.logger.With("method", "Publish", "gameID", game.ID)

	that.mu.RLock()
	defer that.mu.RUnlock()

	clients := that.subscribers[game.ID]
	if len(clients) == 0 {
		return
	}

	msg, err := newMessage(actionState, ResponsePayload{Game: &game})
	if err != nil {
		log.Error("failed to marshal game", "error", err)
		return
	}

	for c := range clients {
		if !c.enqueue(msg) {
			log.Warn("client send buffer is full, update dropped")
		}
	}
}
