package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/rocketscienceinc/cuescore-backend/internal/usecase"
)

const (
	actionSubscribe = "game:subscribe"
	actionGame      = "game:action"
	actionState     = "game:state"
	actionError     = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type SubscribePayload struct {
	GameID string `json:"gameId"`
}

type ActionPayload struct {
	GameID  string          `json:"gameId"`
	Command usecase.Command `json:"command"`
}

type ResponsePayload struct {
	Game  *entity.Game `json:"game,omitempty"`
	Error string       `json:"error,omitempty"`
}

func newMessage(action string, payload ResponsePayload) (Message, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Message{}, err
	}

	return Message{Action: action, Payload: raw}, nil
}
