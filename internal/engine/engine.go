// Package engine implements the rule engines for every supported game type.
//
// Engines are pure: each method takes a game snapshot and returns a new one built
// from a deep copy, so callers can keep or compare previous snapshots freely.
package engine

import (
	"errors"
	"time"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

type Action string

const (
	ActionWinSet           Action = "WIN_SET"
	ActionResetRack        Action = "RESET_RACK"
	ActionAddPins          Action = "ADD_PINS"
	ActionUndoBowlingRoll  Action = "UNDO_BOWLING_ROLL"
	ActionJapanBallClick   Action = "JAPAN_BALL_CLICK"
	ActionJapanMultiplier  Action = "JAPAN_MULTIPLIER"
	ActionJapanDeduction   Action = "JAPAN_DEDUCTION"
	ActionJapanRackDone    Action = "JAPAN_RACK_COMPLETE"
	ActionJapanOrderChange Action = "JAPAN_ORDER_CHANGE"
)

var (
	ErrUnsupportedAction = errors.New("action is not supported by this game type")
	ErrInvalidMultiplier = errors.New("multiplier must be at least 1")
	ErrInvalidPoints     = errors.New("points must be positive")
)

// ActionData carries the arguments of a custom action. Each action reads only the
// fields it needs.
type ActionData struct {
	PlayerID   string `json:"playerId,omitempty"`
	Ball       int    `json:"ball,omitempty"`
	Pins       int    `json:"pins,omitempty"`
	Points     int    `json:"points,omitempty"`
	Multiplier int    `json:"multiplier,omitempty"`
}

// Victory is the result of a victory check.
type Victory struct {
	IsGameOver bool   `json:"isGameOver"`
	WinnerID   string `json:"winnerId,omitempty"`
}

type Engine interface {
	Type() entity.GameType

	InitializePlayers(setups []entity.PlayerSetup) ([]entity.Player, error)

	HandlePocketBall(game entity.Game, ballNumber int) entity.Game
	HandleSwitchPlayer(game entity.Game) entity.Game
	HandleCustomAction(game entity.Game, action Action, data ActionData) (entity.Game, error)
	HandleUndo(game entity.Game) entity.Game

	CheckVictoryCondition(game entity.Game) Victory
}

// Clock returns the time stamped on shots and history entries.
type Clock func() time.Time
