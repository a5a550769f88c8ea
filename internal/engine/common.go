package engine

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

// BallValue returns the points a pocketed ball is worth.
type BallValue func(ballNumber int) int

// SwitchToPlayer activates the player at index. An out-of-range index leaves the
// game unchanged.
func SwitchToPlayer(game entity.Game, index int) entity.Game {
	next := game.Clone()
	if index < 0 || index >= len(next.Players) {
		return next
	}

	next.ActivatePlayer(index)

	return next
}

// RackBalls returns the balls that make up a full rack for the game type.
func RackBalls(gameType entity.GameType) []int {
	var count int

	switch gameType {
	case entity.GameTypeRotation:
		count = 15
	case entity.GameTypeSetMatch, entity.GameTypeJapan:
		count = 9
	default:
		return nil
	}

	balls := make([]int, count)
	for i := range balls {
		balls[i] = i + 1
	}

	return balls
}

// AllBallsPocketed reports whether every ball of the rack has been pocketed by someone.
func AllBallsPocketed(game entity.Game) bool {
	balls := RackBalls(game.Type)
	if len(balls) == 0 {
		return false
	}

	pocketed := game.PocketedBalls()
	for _, ball := range balls {
		if _, ok := pocketed[ball]; !ok {
			return false
		}
	}

	return true
}

// DetermineWinner picks the leading player for a manually ended game.
func DetermineWinner(game entity.Game) string {
	winner := ""
	best := 0

	for i, player := range game.Players {
		value := player.Score
		if game.Type == entity.GameTypeSetMatch {
			value = player.SetsWon
		}

		if i == 0 || value > best {
			winner = player.ID
			best = value
		}
	}

	return winner
}

func switchPlayer(game entity.Game) entity.Game {
	next := game.Clone()
	if len(next.Players) == 0 {
		return next
	}

	next.ActivatePlayer((next.CurrentPlayerIndex + 1) % len(next.Players))

	return next
}

func newPlayers(setups []entity.PlayerSetup, configure func(index int, player *entity.Player)) []entity.Player {
	players := make([]entity.Player, len(setups))
	for i, setup := range setups {
		players[i] = entity.Player{
			ID:            uuid.NewString(),
			Name:          setup.Name,
			BallsPocketed: []int{},
			TargetScore:   setup.TargetScore,
			TargetSets:    setup.TargetSets,
		}

		configure(i, &players[i])
	}

	return players
}

func requirePlayers(setups []entity.PlayerSetup, minimum int) error {
	if len(setups) < minimum {
		return fmt.Errorf("%w: need at least %d players, got %d", apperror.ErrInvalidGameSetup, minimum, len(setups))
	}

	return nil
}

func newShot(playerID string, ballNumber int, clock Clock) entity.Shot {
	return entity.Shot{
		ID:         uuid.NewString(),
		PlayerID:   playerID,
		BallNumber: ballNumber,
		Timestamp:  clock(),
	}
}

// pocketBall credits the active player with the ball. It reports false and returns an
// unchanged copy when the ball is already down this rack or nobody is active.
func pocketBall(game entity.Game, ballNumber, points int, clock Clock, data *entity.ShotData) (entity.Game, bool) {
	next := game.Clone()

	if next.IsBallPocketed(ballNumber) {
		return next, false
	}

	index := next.ActivePlayerIndex()
	if index < 0 {
		return next, false
	}

	player := &next.Players[index]
	player.Score += points
	player.BallsPocketed = append(player.BallsPocketed, ballNumber)

	shot := newShot(player.ID, ballNumber, clock)
	shot.IsSunk = true
	shot.CustomData = data

	next.ShotHistory = append(next.ShotHistory, shot)
	next.RackInProgress = true

	return next, true
}

// UndoLastShot is the default undo: it pops the last shot and, if a ball was sunk,
// takes the ball and its points back from the shooter.
func UndoLastShot(game entity.Game, value BallValue) entity.Game {
	return undoLastShot(game, value, false)
}

func undoLastShot(game entity.Game, value BallValue, withScoreHistory bool) entity.Game {
	next := game.Clone()

	shot, ok := next.LastShot()
	if !ok {
		return next
	}

	next.ShotHistory = next.ShotHistory[:len(next.ShotHistory)-1]

	if !shot.IsSunk || shot.BallNumber == 0 {
		return next
	}

	index := next.PlayerIndex(shot.PlayerID)
	if index < 0 {
		return next
	}

	points := value(shot.BallNumber)
	player := &next.Players[index]
	player.BallsPocketed = removeBall(player.BallsPocketed, shot.BallNumber)
	player.Score = subtractClamped(player.Score, points)

	if withScoreHistory {
		if last := len(next.ScoreHistory) - 1; last >= 0 &&
			next.ScoreHistory[last].PlayerID == shot.PlayerID && next.ScoreHistory[last].Score == points {
			next.ScoreHistory = next.ScoreHistory[:last]
		}
	}

	return next
}

// removeBall drops the most recent occurrence of ball.
func removeBall(balls []int, ball int) []int {
	for i := len(balls) - 1; i >= 0; i-- {
		if balls[i] == ball {
			return append(balls[:i], balls[i+1:]...)
		}
	}

	return balls
}

func subtractClamped(score, points int) int {
	if score-points < 0 {
		return 0
	}

	return score - points
}
