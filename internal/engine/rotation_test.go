package engine

import (
	"testing"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRotationEngine_InitializePlayers(t *testing.T) {
	players, err := NewRotationEngine(tickingClock()).InitializePlayers([]entity.PlayerSetup{
		{Name: "Ann", TargetScore: 40},
		{Name: "Ben"},
	})

	require.NoError(t, err)
	assert.True(t, players[0].IsActive)
	assert.False(t, players[1].IsActive)
	assert.Equal(t, 40, players[0].TargetScore)
	assert.Equal(t, DefaultTargetScore, players[1].TargetScore)
}

func TestRotationEngine_HandlePocketBall(t *testing.T) {
	// Given: a rotation game
	engine := NewRotationEngine(tickingClock())
	game := startGame(t, engine, setups("Ann", "Ben"))

	// When: balls 7 and 12 are pocketed
	game = engine.HandlePocketBall(game, 7)
	game = engine.HandlePocketBall(game, 12)

	// Then: each ball is worth its number and the deltas are charted
	assert.Equal(t, 19, game.Players[0].Score)
	require.Len(t, game.ScoreHistory, 2)
	assert.Equal(t, 7, game.ScoreHistory[0].Score)
	assert.Equal(t, 12, game.ScoreHistory[1].Score)
	assert.True(t, game.RackInProgress)
}

func TestRotationEngine_CheckVictoryCondition(t *testing.T) {
	// Given: a handicap race where Ben only needs 20
	engine := NewRotationEngine(tickingClock())
	game := startGame(t, engine, []entity.PlayerSetup{{Name: "Ann", TargetScore: 61}, {Name: "Ben", TargetScore: 20}})
	game = engine.HandleSwitchPlayer(game)

	// When: Ben scores 19
	game = engine.HandlePocketBall(game, 4)
	game = engine.HandlePocketBall(game, 15)
	assert.False(t, engine.CheckVictoryCondition(game).IsGameOver)

	// When: and one more
	game = engine.HandlePocketBall(game, 1)

	// Then: Ben has won
	assert.Equal(t, Victory{IsGameOver: true, WinnerID: game.Players[1].ID}, engine.CheckVictoryCondition(game))
}

func TestRotationEngine_ResetRack(t *testing.T) {
	// Given: all fifteen balls split between two players
	engine := NewRotationEngine(tickingClock())
	game := startGame(t, engine, setups("Ann", "Ben"))
	for _, ball := range []int{1, 2, 3, 4, 5, 6, 7} {
		game = engine.HandlePocketBall(game, ball)
	}
	game = engine.HandleSwitchPlayer(game)
	for _, ball := range []int{15, 14, 13, 12, 11, 10, 9, 8} {
		game = engine.HandlePocketBall(game, ball)
	}
	require.True(t, AllBallsPocketed(game))
	before := game

	// When: the rack is reset
	game = mustAction(t, engine, game, ActionResetRack, ActionData{})

	// Then: balls are cleared, scores carry over, counters advance
	for i, player := range game.Players {
		assert.Empty(t, player.BallsPocketed)
		assert.Equal(t, before.Players[i].Score, player.Score)
	}
	assert.Equal(t, 28, game.Players[0].Score)
	assert.Equal(t, 92, game.Players[1].Score)
	assert.Equal(t, before.CurrentRack+1, game.CurrentRack)
	assert.Equal(t, before.TotalRacks+1, game.TotalRacks)
	assert.Empty(t, game.ShotHistory)
	assert.Len(t, game.ScoreHistory, 15)
	assert.False(t, AllBallsPocketed(game))

	// And: balls can be pocketed again in the new rack
	game = engine.HandlePocketBall(game, 1)
	assert.Equal(t, 93, game.Players[1].Score)
}

func TestRotationEngine_HandleUndo(t *testing.T) {
	// Given: two pocketed balls by different players
	engine := NewRotationEngine(tickingClock())
	game := startGame(t, engine, setups("Ann", "Ben"))
	game = engine.HandlePocketBall(game, 3)
	game = engine.HandleSwitchPlayer(game)
	game = engine.HandlePocketBall(game, 8)

	// When: both are undone
	game = engine.HandleUndo(game)

	// Then: the latest shooter loses the ball and its delta
	assert.Zero(t, game.Players[1].Score)
	assert.Len(t, game.ScoreHistory, 1)

	game = engine.HandleUndo(game)
	assert.Zero(t, game.Players[0].Score)
	assert.Empty(t, game.Players[0].BallsPocketed)
	assert.Empty(t, game.ScoreHistory)
}
