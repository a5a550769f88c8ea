package engine

import (
	"fmt"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

// DefaultTargetScore is a majority of the 120 points in a rotation rack.
const DefaultTargetScore = 61

type RotationEngine struct {
	clock Clock
}

func NewRotationEngine(clock Clock) *RotationEngine {
	return &RotationEngine{clock: clock}
}

func (that *RotationEngine) Type() entity.GameType {
	return entity.GameTypeRotation
}

func (that *RotationEngine) InitializePlayers(setups []entity.PlayerSetup) ([]entity.Player, error) {
	if err := requirePlayers(setups, 1); err != nil {
		return nil, err
	}

	return newPlayers(setups, func(index int, player *entity.Player) {
		player.IsActive = index == 0
		if player.TargetScore <= 0 {
			player.TargetScore = DefaultTargetScore
		}
	}), nil
}

// HandlePocketBall scores the ball's own number and records the delta for charts.
func (that *RotationEngine) HandlePocketBall(game entity.Game, ballNumber int) entity.Game {
	next, pocketed := pocketBall(game, ballNumber, rotationBallValue(ballNumber), that.clock, nil)
	if !pocketed {
		return next
	}

	shot, _ := next.LastShot()
	next.ScoreHistory = append(next.ScoreHistory, entity.ScoreHistoryEntry{
		PlayerID:  shot.PlayerID,
		Score:     rotationBallValue(ballNumber),
		Timestamp: shot.Timestamp,
	})

	return next
}

func (that *RotationEngine) HandleSwitchPlayer(game entity.Game) entity.Game {
	return switchPlayer(game)
}

func (that *RotationEngine) CheckVictoryCondition(game entity.Game) Victory {
	for _, player := range game.Players {
		if player.TargetScore > 0 && player.Score >= player.TargetScore {
			return Victory{IsGameOver: true, WinnerID: player.ID}
		}
	}

	return Victory{}
}

func (that *RotationEngine) HandleCustomAction(game entity.Game, action Action, _ ActionData) (entity.Game, error) {
	switch action {
	case ActionResetRack:
		return that.resetRack(game), nil
	default:
		return game.Clone(), fmt.Errorf("%w: %s for %s", ErrUnsupportedAction, action, that.Type())
	}
}

func (that *RotationEngine) HandleUndo(game entity.Game) entity.Game {
	return undoLastShot(game, rotationBallValue, true)
}

// resetRack racks the balls again. Scores carry over from rack to rack.
func (that *RotationEngine) resetRack(game entity.Game) entity.Game {
	next := game.Clone()

	for i := range next.Players {
		next.Players[i].BallsPocketed = []int{}
	}

	next.ShotHistory = []entity.Shot{}
	next.CurrentRack++
	next.TotalRacks++
	next.RackInProgress = false

	return next
}

func rotationBallValue(ballNumber int) int {
	return ballNumber
}
