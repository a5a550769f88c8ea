package engine

import (
	"fmt"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

const (
	DefaultTargetSets = 3

	nineBall       = 9
	nineBallPoints = 10
)

type SetMatchEngine struct {
	clock Clock
}

func NewSetMatchEngine(clock Clock) *SetMatchEngine {
	return &SetMatchEngine{clock: clock}
}

func (that *SetMatchEngine) Type() entity.GameType {
	return entity.GameTypeSetMatch
}

// InitializePlayers leaves every player inactive: the first action of a set match
// selects who is at the table.
func (that *SetMatchEngine) InitializePlayers(setups []entity.PlayerSetup) ([]entity.Player, error) {
	if err := requirePlayers(setups, 1); err != nil {
		return nil, err
	}

	return newPlayers(setups, func(_ int, player *entity.Player) {
		if player.TargetSets <= 0 {
			player.TargetSets = DefaultTargetSets
		}
	}), nil
}

func (that *SetMatchEngine) HandlePocketBall(game entity.Game, ballNumber int) entity.Game {
	next, _ := pocketBall(game, ballNumber, setMatchBallValue(ballNumber), that.clock, nil)
	return next
}

func (that *SetMatchEngine) HandleSwitchPlayer(game entity.Game) entity.Game {
	return switchPlayer(game)
}

func (that *SetMatchEngine) CheckVictoryCondition(game entity.Game) Victory {
	for _, player := range game.Players {
		if player.TargetSets > 0 && player.SetsWon >= player.TargetSets {
			return Victory{IsGameOver: true, WinnerID: player.ID}
		}
	}

	return Victory{}
}

func (that *SetMatchEngine) HandleCustomAction(game entity.Game, action Action, data ActionData) (entity.Game, error) {
	switch action {
	case ActionWinSet:
		return that.winSet(game, data.PlayerID)
	default:
		return game.Clone(), fmt.Errorf("%w: %s for %s", ErrUnsupportedAction, action, that.Type())
	}
}

// HandleUndo reverses the latest event. Shots only exist inside the current rack, so
// an empty shot history means the latest event was a set win.
func (that *SetMatchEngine) HandleUndo(game entity.Game) entity.Game {
	if len(game.ShotHistory) > 0 {
		return UndoLastShot(game, setMatchBallValue)
	}

	return that.undoSetWin(game)
}

// winSet credits a set and clears the rack. The game completes in the same step
// when the winner reaches the target.
func (that *SetMatchEngine) winSet(game entity.Game, winnerID string) (entity.Game, error) {
	next := game.Clone()

	index := next.PlayerIndex(winnerID)
	if index < 0 {
		return next, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, winnerID)
	}

	next.Players[index].SetsWon++

	for i := range next.Players {
		next.Players[i].Score = 0
		next.Players[i].BallsPocketed = []int{}
	}

	next.ScoreHistory = append(next.ScoreHistory, entity.ScoreHistoryEntry{
		PlayerID:  winnerID,
		Score:     1,
		Timestamp: that.clock(),
	})
	next.ShotHistory = []entity.Shot{}
	next.CurrentRack++
	next.RackInProgress = false

	if victory := that.CheckVictoryCondition(next); victory.IsGameOver {
		next.Status = entity.StatusCompleted
		next.Winner = victory.WinnerID
	}

	return next, nil
}

func (that *SetMatchEngine) undoSetWin(game entity.Game) entity.Game {
	next := game.Clone()

	last := len(next.ScoreHistory) - 1
	if last < 0 {
		return next
	}

	entry := next.ScoreHistory[last]
	next.ScoreHistory = next.ScoreHistory[:last]

	if index := next.PlayerIndex(entry.PlayerID); index >= 0 && next.Players[index].SetsWon > 0 {
		next.Players[index].SetsWon--
	}

	if next.CurrentRack > 1 {
		next.CurrentRack--
	}

	if next.IsCompleted() && !that.CheckVictoryCondition(next).IsGameOver {
		next.Status = entity.StatusInProgress
		next.Winner = ""
		next.EndTime = nil
	}

	return next
}

func setMatchBallValue(ballNumber int) int {
	if ballNumber == nineBall {
		return nineBallPoints
	}

	return 1
}
