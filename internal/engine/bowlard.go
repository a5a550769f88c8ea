package engine

import (
	"fmt"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
	"github.com/rocketscienceinc/cuescore-backend/internal/bowling"
	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

// BowlardEngine scores solo bowling played on a pool table. Pins are entered with
// ADD_PINS, there are no balls to pocket.
type BowlardEngine struct {
	clock Clock
}

func NewBowlardEngine(clock Clock) *BowlardEngine {
	return &BowlardEngine{clock: clock}
}

func (that *BowlardEngine) Type() entity.GameType {
	return entity.GameTypeBowlard
}

func (that *BowlardEngine) InitializePlayers(setups []entity.PlayerSetup) ([]entity.Player, error) {
	if len(setups) != 1 {
		return nil, fmt.Errorf("%w: bowlard is played by exactly one player, got %d", apperror.ErrInvalidGameSetup, len(setups))
	}

	return newPlayers(setups, func(_ int, player *entity.Player) {
		player.IsActive = true
		player.BowlingFrames = entity.NewBowlingFrames()
	}), nil
}

func (that *BowlardEngine) HandlePocketBall(game entity.Game, _ int) entity.Game {
	return game.Clone()
}

func (that *BowlardEngine) HandleSwitchPlayer(game entity.Game) entity.Game {
	return switchPlayer(game)
}

func (that *BowlardEngine) CheckVictoryCondition(game entity.Game) Victory {
	player, ok := game.CurrentPlayer()
	if !ok || len(player.BowlingFrames) != entity.BowlingFrameCount {
		return Victory{}
	}

	if player.BowlingFrames[entity.BowlingFrameCount-1].IsComplete {
		return Victory{IsGameOver: true, WinnerID: player.ID}
	}

	return Victory{}
}

func (that *BowlardEngine) HandleCustomAction(game entity.Game, action Action, data ActionData) (entity.Game, error) {
	switch action {
	case ActionAddPins:
		return that.addPins(game, data.Pins)
	case ActionUndoBowlingRoll:
		return that.HandleUndo(game), nil
	default:
		return game.Clone(), fmt.Errorf("%w: %s for %s", ErrUnsupportedAction, action, that.Type())
	}
}

// HandleUndo drops the last recorded roll and recomputes every score from scratch,
// since a removed roll can unresolve bonuses several frames back.
func (that *BowlardEngine) HandleUndo(game entity.Game) entity.Game {
	next := game.Clone()

	player, ok := bowler(&next)
	if !ok {
		return next
	}

	frames := player.BowlingFrames

	last := -1
	for i := range frames {
		if len(frames[i].Rolls) > 0 {
			last = i
		}
	}

	if last < 0 {
		return next
	}

	frames[last].Rolls = frames[last].Rolls[:len(frames[last].Rolls)-1]
	frames[last] = bowling.UpdateFrameStatus(frames[last], last)

	for i := last; i < len(frames); i++ {
		frames[i].Score = nil
	}

	player.BowlingFrames = bowling.CalculateScores(frames)
	player.Score = bowling.LatestScore(player.BowlingFrames)

	if shot, ok := next.LastShot(); ok && shot.DataType() == entity.ShotDataPins {
		next.ShotHistory = next.ShotHistory[:len(next.ShotHistory)-1]
	}

	if next.IsCompleted() {
		next.Status = entity.StatusInProgress
		next.Winner = ""
		next.EndTime = nil
	}

	return next
}

func (that *BowlardEngine) addPins(game entity.Game, pins int) (entity.Game, error) {
	next := game.Clone()

	player, ok := bowler(&next)
	if !ok {
		return next, fmt.Errorf("%w: no bowler in game %s", apperror.ErrPlayerNotFound, next.ID)
	}

	index := bowling.CurrentFrameIndex(player.BowlingFrames)
	if index < 0 {
		return next, apperror.ErrGameFinished
	}

	if err := bowling.ValidateRoll(player.BowlingFrames[index], pins); err != nil {
		return next, fmt.Errorf("frame %d: %w", index+1, err)
	}

	frame := &player.BowlingFrames[index]
	frame.Rolls = append(frame.Rolls, pins)
	*frame = bowling.UpdateFrameStatus(*frame, index)

	player.BowlingFrames = bowling.CalculateScores(player.BowlingFrames)
	player.Score = bowling.LatestScore(player.BowlingFrames)

	shot := newShot(player.ID, 0, that.clock)
	shot.CustomData = &entity.ShotData{Type: entity.ShotDataPins, Pins: pins}
	next.ShotHistory = append(next.ShotHistory, shot)
	next.RackInProgress = true

	if victory := that.CheckVictoryCondition(next); victory.IsGameOver {
		next.Status = entity.StatusCompleted
		next.Winner = victory.WinnerID
	}

	return next, nil
}

// bowler returns the player whose frames are being filled, with frames initialised.
func bowler(game *entity.Game) (*entity.Player, bool) {
	if game.CurrentPlayerIndex < 0 || game.CurrentPlayerIndex >= len(game.Players) {
		return nil, false
	}

	player := &game.Players[game.CurrentPlayerIndex]
	if len(player.BowlingFrames) != entity.BowlingFrameCount {
		player.BowlingFrames = entity.NewBowlingFrames()
	}

	return player, true
}
