package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/cuescore-backend/internal/engine"
	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

var ErrUnknownCommand = errors.New("unknown command")

type CommandType string

const (
	CommandPocketBall      CommandType = "POCKET_BALL"
	CommandSwitchPlayer    CommandType = "SWITCH_PLAYER"
	CommandSwitchToPlayer  CommandType = "SWITCH_TO_PLAYER"
	CommandUndo            CommandType = "UNDO"
	CommandWinSet          CommandType = CommandType(engine.ActionWinSet)
	CommandResetRack       CommandType = CommandType(engine.ActionResetRack)
	CommandAddPins         CommandType = CommandType(engine.ActionAddPins)
	CommandUndoBowlingRoll CommandType = CommandType(engine.ActionUndoBowlingRoll)
	CommandBallClick       CommandType = CommandType(engine.ActionJapanBallClick)
	CommandMultiplier      CommandType = CommandType(engine.ActionJapanMultiplier)
	CommandDeduction       CommandType = CommandType(engine.ActionJapanDeduction)
	CommandRackComplete    CommandType = CommandType(engine.ActionJapanRackDone)
	CommandOrderChange     CommandType = CommandType(engine.ActionJapanOrderChange)
)

// Command is one game action as sent by a client.
type Command struct {
	Type        CommandType `json:"type"`
	PlayerID    string      `json:"playerId,omitempty"`
	PlayerIndex int         `json:"playerIndex,omitempty"`
	Ball        int         `json:"ball,omitempty"`
	Pins        int         `json:"pins,omitempty"`
	Points      int         `json:"points,omitempty"`
	Multiplier  int         `json:"multiplier,omitempty"`
}

// Execute routes a command to the matching session operation.
func (that *GameManager) Execute(ctx context.Context, id string, cmd Command) (entity.Game, error) {
	switch cmd.Type {
	case CommandPocketBall:
		return that.PocketBall(ctx, id, cmd.Ball)
	case CommandSwitchPlayer:
		return that.SwitchPlayer(ctx, id)
	case CommandSwitchToPlayer:
		return that.SwitchToPlayer(ctx, id, cmd.PlayerIndex)
	case CommandUndo:
		return that.UndoLastShot(ctx, id)
	case CommandWinSet:
		return that.WinSet(ctx, id, cmd.PlayerID)
	case CommandResetRack:
		return that.ResetRack(ctx, id)
	case CommandAddPins:
		return that.AddPins(ctx, id, cmd.Pins)
	case CommandUndoBowlingRoll:
		return that.UndoBowlingRoll(ctx, id)
	case CommandBallClick:
		return that.JapanBallClick(ctx, id, cmd.Ball)
	case CommandMultiplier:
		return that.ApplyMultiplier(ctx, id, cmd.Multiplier)
	case CommandDeduction:
		return that.ApplyDeduction(ctx, id, cmd.PlayerID, cmd.Points)
	case CommandRackComplete:
		return that.CompleteRack(ctx, id)
	case CommandOrderChange:
		return that.ChangeOrder(ctx, id, cmd.PlayerID)
	default:
		return entity.Game{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Type)
	}
}
