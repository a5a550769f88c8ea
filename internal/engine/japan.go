package engine

import (
	"fmt"
	"math/rand/v2"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

// JapanEngine scores Japan rules: scoring balls earn points during a rack and every
// other player pays them when the rack completes.
type JapanEngine struct {
	clock   Clock
	shuffle shuffleFunc
}

func NewJapanEngine(clock Clock) *JapanEngine {
	return &JapanEngine{clock: clock, shuffle: rand.Shuffle}
}

func (that *JapanEngine) Type() entity.GameType {
	return entity.GameTypeJapan
}

func (that *JapanEngine) InitializePlayers(setups []entity.PlayerSetup) ([]entity.Player, error) {
	if err := requirePlayers(setups, 2); err != nil {
		return nil, err
	}

	return newPlayers(setups, func(index int, player *entity.Player) {
		player.IsActive = index == 0
	}), nil
}

// HandlePocketBall is a ball click: the active player earns the ball's points times
// the rack multiplier.
func (that *JapanEngine) HandlePocketBall(game entity.Game, ballNumber int) entity.Game {
	points := japanSettings(game).BallPoints[ballNumber] * japanMultiplier(game)

	next, _ := pocketBall(game, ballNumber, points, that.clock, &entity.ShotData{
		Type:   entity.ShotDataBallClick,
		Points: points,
	})

	return next
}

func (that *JapanEngine) HandleSwitchPlayer(game entity.Game) entity.Game {
	return switchPlayer(game)
}

// CheckVictoryCondition never ends a Japan game, it is always ended by hand.
func (that *JapanEngine) CheckVictoryCondition(_ entity.Game) Victory {
	return Victory{}
}

func (that *JapanEngine) HandleCustomAction(game entity.Game, action Action, data ActionData) (entity.Game, error) {
	switch action {
	case ActionJapanBallClick:
		return that.HandlePocketBall(game, data.Ball), nil
	case ActionJapanMultiplier:
		return that.applyMultiplier(game, data.Multiplier)
	case ActionJapanDeduction:
		return that.applyDeduction(game, data.PlayerID, data.Points)
	case ActionJapanRackDone:
		return that.completeRack(game), nil
	case ActionJapanOrderChange:
		return that.changeOrder(game, data.PlayerID)
	default:
		return game.Clone(), fmt.Errorf("%w: %s for %s", ErrUnsupportedAction, action, that.Type())
	}
}

// HandleUndo reverses the last shot using the inverse carried in its payload.
func (that *JapanEngine) HandleUndo(game entity.Game) entity.Game {
	next := game.Clone()

	shot, ok := next.LastShot()
	if !ok {
		return next
	}

	next.ShotHistory = next.ShotHistory[:len(next.ShotHistory)-1]

	if shot.CustomData == nil {
		return next
	}

	data := shot.CustomData

	switch data.Type {
	case entity.ShotDataBallClick:
		if index := next.PlayerIndex(shot.PlayerID); index >= 0 {
			player := &next.Players[index]
			player.Score = max(player.Score-data.Points, scoreFloor(next, player.ID))
			// chronological order, not ball identity
			if n := len(player.BallsPocketed); n > 0 {
				player.BallsPocketed = player.BallsPocketed[:n-1]
			}
		}
	case entity.ShotDataRackComplete:
		undoRackComplete(&next, data)
	case entity.ShotDataMultiplier:
		next.JapanMultiplier = normalizeMultiplier(data.PreviousMultiplier)
	case entity.ShotDataDeduction:
		if index := next.PlayerIndex(shot.PlayerID); index >= 0 {
			next.Players[index].Score += data.Points
		}
	case entity.ShotDataOrderChange:
		undoOrderChange(&next, data)
	}

	return next
}

func (that *JapanEngine) applyMultiplier(game entity.Game, multiplier int) (entity.Game, error) {
	next := game.Clone()
	if multiplier < 1 {
		return next, fmt.Errorf("%w: %d", ErrInvalidMultiplier, multiplier)
	}

	shot := newShot(activePlayerID(next), 0, that.clock)
	shot.CustomData = &entity.ShotData{
		Type:               entity.ShotDataMultiplier,
		Multiplier:         multiplier,
		PreviousMultiplier: japanMultiplier(next),
	}

	next.ShotHistory = append(next.ShotHistory, shot)
	next.JapanMultiplier = multiplier

	return next, nil
}

// applyDeduction takes points from what a player earned in the current rack, never
// more. The shot records the amount actually taken so undo gives back exactly that.
func (that *JapanEngine) applyDeduction(game entity.Game, playerID string, points int) (entity.Game, error) {
	next := game.Clone()
	if points <= 0 {
		return next, fmt.Errorf("%w: %d", ErrInvalidPoints, points)
	}

	if playerID == "" {
		playerID = activePlayerID(next)
	}

	index := next.PlayerIndex(playerID)
	if index < 0 {
		return next, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, playerID)
	}

	player := &next.Players[index]
	deducted := min(points, max(rackEarnings(next)[player.ID], 0))
	player.Score -= deducted

	shot := newShot(player.ID, 0, that.clock)
	shot.IsFoul = true
	shot.CustomData = &entity.ShotData{Type: entity.ShotDataDeduction, Points: deducted}
	next.ShotHistory = append(next.ShotHistory, shot)

	return next, nil
}

// completeRack settles the rack: each player receives their earned points from every
// other player, so the deltas of one rack sum to zero.
func (that *JapanEngine) completeRack(game entity.Game) entity.Game {
	next := game.Clone()
	settings := japanSettings(next)

	earned := rackEarnings(next)
	totalEarned := 0
	for _, points := range earned {
		totalEarned += points
	}

	previousTotals := map[string]int{}
	if n := len(next.JapanRackHistory); n > 0 {
		for _, result := range next.JapanRackHistory[n-1].Results {
			previousTotals[result.PlayerID] = result.TotalPoints
		}
	}

	snapshot := make([]entity.PlayerSnapshot, len(next.Players))
	results := make([]entity.JapanRackResult, len(next.Players))
	playerCount := len(next.Players)

	for i := range next.Players {
		player := &next.Players[i]

		snapshot[i] = entity.PlayerSnapshot{
			PlayerID:      player.ID,
			Score:         player.Score,
			BallsPocketed: append([]int{}, player.BallsPocketed...),
		}

		delta := earned[player.ID]*playerCount - totalEarned
		total := previousTotals[player.ID] + delta

		results[i] = entity.JapanRackResult{
			PlayerID:     player.ID,
			EarnedPoints: earned[player.ID],
			DeltaPoints:  delta,
			TotalPoints:  total,
		}

		player.Score = total
		player.BallsPocketed = []int{}
	}

	shot := newShot(activePlayerID(next), 0, that.clock)
	shot.CustomData = &entity.ShotData{
		Type:                 entity.ShotDataRackComplete,
		PreviousRack:         next.CurrentRack,
		PreviousMultiplier:   japanMultiplier(next),
		PreviousPlayerStates: snapshot,
		PreviousOrderDue:     next.JapanOrderChangeDue,
	}

	next.JapanRackHistory = append(next.JapanRackHistory, entity.JapanRackHistoryEntry{
		RackNumber: next.CurrentRack,
		Results:    results,
	})
	next.ShotHistory = append(next.ShotHistory, shot)
	next.CurrentRack++
	next.TotalRacks++
	next.RackInProgress = false
	next.JapanMultiplier = 1
	next.JapanOrderChangeDue = settings.OrderChangeInterval > 0 &&
		len(next.JapanRackHistory)%settings.OrderChangeInterval == 0

	return next
}

func (that *JapanEngine) changeOrder(game entity.Game, selectedPlayerID string) (entity.Game, error) {
	next := game.Clone()
	if next.PlayerIndex(selectedPlayerID) < 0 {
		return next, fmt.Errorf("%w: %s", apperror.ErrPlayerNotFound, selectedPlayerID)
	}

	previousOrder := make([]string, len(next.Players))
	for i, player := range next.Players {
		previousOrder[i] = player.ID
	}

	shot := newShot(selectedPlayerID, 0, that.clock)
	shot.CustomData = &entity.ShotData{
		Type:                entity.ShotDataOrderChange,
		PreviousOrder:       previousOrder,
		PreviousActiveIndex: next.CurrentPlayerIndex,
		PreviousOrderDue:    next.JapanOrderChangeDue,
	}

	next.Players = calculateNewPlayerOrder(next.Players, selectedPlayerID, that.shuffle)
	next.ActivatePlayer(next.PlayerIndex(selectedPlayerID))
	next.ShotHistory = append(next.ShotHistory, shot)
	next.JapanOrderChangeDue = false

	return next, nil
}

// rackEarnings sums ball clicks minus deductions since the last completed rack.
func rackEarnings(game entity.Game) map[string]int {
	start := 0
	for i := len(game.ShotHistory) - 1; i >= 0; i-- {
		if game.ShotHistory[i].DataType() == entity.ShotDataRackComplete {
			start = i + 1
			break
		}
	}

	earned := map[string]int{}
	for _, shot := range game.ShotHistory[start:] {
		switch shot.DataType() {
		case entity.ShotDataBallClick:
			earned[shot.PlayerID] += shot.CustomData.Points
		case entity.ShotDataDeduction:
			earned[shot.PlayerID] -= shot.CustomData.Points
		}
	}

	return earned
}

// scoreFloor is the lowest score a rack can leave a player with: zero, or the
// settled total of the last completed rack when that is negative.
func scoreFloor(game entity.Game, playerID string) int {
	n := len(game.JapanRackHistory)
	if n == 0 {
		return 0
	}

	total, _ := game.JapanRackHistory[n-1].TotalFor(playerID)

	return min(total, 0)
}

func undoRackComplete(game *entity.Game, data *entity.ShotData) {
	game.CurrentRack = data.PreviousRack
	if game.TotalRacks > 0 {
		game.TotalRacks--
	}

	game.JapanMultiplier = normalizeMultiplier(data.PreviousMultiplier)
	game.JapanOrderChangeDue = data.PreviousOrderDue

	if n := len(game.JapanRackHistory); n > 0 {
		game.JapanRackHistory = game.JapanRackHistory[:n-1]
	}

	previous := make(map[string]entity.PlayerSnapshot, len(data.PreviousPlayerStates))
	for _, state := range data.PreviousPlayerStates {
		previous[state.PlayerID] = state
	}

	for i := range game.Players {
		player := &game.Players[i]

		state, ok := previous[player.ID]
		if !ok {
			player.BallsPocketed = []int{}
			continue
		}

		player.Score = state.Score
		player.BallsPocketed = append([]int{}, state.BallsPocketed...)
	}

	game.RackInProgress = len(game.PocketedBalls()) > 0
}

func undoOrderChange(game *entity.Game, data *entity.ShotData) {
	byID := make(map[string]entity.Player, len(game.Players))
	for _, player := range game.Players {
		byID[player.ID] = player
	}

	restored := make([]entity.Player, 0, len(game.Players))
	for _, id := range data.PreviousOrder {
		if player, ok := byID[id]; ok {
			restored = append(restored, player)
			delete(byID, id)
		}
	}

	// players missing from the recorded order keep their relative position at the end
	for _, player := range game.Players {
		if _, ok := byID[player.ID]; ok {
			restored = append(restored, player)
		}
	}

	game.Players = restored
	game.JapanOrderChangeDue = data.PreviousOrderDue

	if data.PreviousActiveIndex >= 0 && data.PreviousActiveIndex < len(game.Players) {
		game.ActivatePlayer(data.PreviousActiveIndex)
	}
}

func japanSettings(game entity.Game) entity.JapanSettings {
	if game.JapanSettings == nil || game.JapanSettings.BallPoints == nil {
		return entity.DefaultJapanSettings()
	}

	return *game.JapanSettings
}

func japanMultiplier(game entity.Game) int {
	return normalizeMultiplier(game.JapanMultiplier)
}

func normalizeMultiplier(multiplier int) int {
	if multiplier < 1 {
		return 1
	}

	return multiplier
}

func activePlayerID(game entity.Game) string {
	if index := game.ActivePlayerIndex(); index >= 0 {
		return game.Players[index].ID
	}

	if player, ok := game.CurrentPlayer(); ok {
		return player.ID
	}

	return ""
}
