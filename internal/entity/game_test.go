package entity

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGameStatusMethods(t *testing.T) {
	t.Run("IsCompleted returns true when game status is completed", func(t *testing.T) {
		// Given: a game with StatusCompleted
		game := Game{Status: StatusCompleted}

		// Then: it is completed and not in progress
		assert.True(t, game.IsCompleted())
		assert.False(t, game.IsInProgress())
	})

	t.Run("IsInProgress returns true when game status is in progress", func(t *testing.T) {
		game := Game{Status: StatusInProgress}

		assert.True(t, game.IsInProgress())
		assert.False(t, game.IsCompleted())
	})
}

func TestGame_ConfirmInProgress(t *testing.T) {
	t.Run("Returns nil when game is in progress", func(t *testing.T) {
		// Given: a game with StatusInProgress
		game := Game{Status: StatusInProgress}

		// When: checking if the game accepts actions
		err := game.ConfirmInProgress()

		// Then: it should return nil error
		assert.NoError(t, err)
	})

	t.Run("Returns ErrGameIsNotStarted when game is not started", func(t *testing.T) {
		game := Game{Status: StatusNotStarted}

		err := game.ConfirmInProgress()

		assert.ErrorIs(t, err, apperror.ErrGameIsNotStarted)
	})

	t.Run("Returns ErrGameFinished when game is completed", func(t *testing.T) {
		game := Game{Status: StatusCompleted}

		err := game.ConfirmInProgress()

		assert.ErrorIs(t, err, apperror.ErrGameFinished)
	})

	t.Run("Returns ErrUnknownGameStatus for anything else", func(t *testing.T) {
		game := Game{Status: "PAUSED"}

		err := game.ConfirmInProgress()

		assert.ErrorIs(t, err, ErrUnknownGameStatus)
	})
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with every nested collection populated
	score := 9
	end := time.Date(2026, time.March, 1, 10, 0, 0, 0, time.UTC)
	settings := DefaultJapanSettings()
	game := Game{
		ID:      "g",
		Players: []Player{{ID: "p1", BallsPocketed: []int{1, 2}, BowlingFrames: []BowlingFrame{{FrameNumber: 1, Rolls: []int{4, 5}, Score: &score}}}},
		EndTime: &end,
		ShotHistory: []Shot{{
			ID:         "s1",
			CustomData: &ShotData{Type: ShotDataRackComplete, PreviousPlayerStates: []PlayerSnapshot{{PlayerID: "p1", BallsPocketed: []int{5}}}},
		}},
		ScoreHistory:     []ScoreHistoryEntry{{PlayerID: "p1", Score: 1}},
		ChessClock:       &ChessClockSettings{Enabled: true, IndividualTimes: []int{30}},
		JapanSettings:    &settings,
		JapanRackHistory: []JapanRackHistoryEntry{{RackNumber: 1, Results: []JapanRackResult{{PlayerID: "p1", TotalPoints: 3}}}},
	}

	// When: the clone is changed everywhere
	clone := game.Clone()
	require.Equal(t, game, clone)

	clone.Players[0].BallsPocketed[0] = 7
	clone.Players[0].BowlingFrames[0].Rolls[0] = 0
	*clone.Players[0].BowlingFrames[0].Score = 0
	*clone.EndTime = end.Add(time.Hour)
	clone.ShotHistory[0].CustomData.PreviousPlayerStates[0].BallsPocketed[0] = 1
	clone.ScoreHistory[0].Score = 2
	clone.ChessClock.IndividualTimes[0] = 1
	clone.JapanSettings.BallPoints[5] = 10
	clone.JapanRackHistory[0].Results[0].TotalPoints = 0

	// Then: the original is untouched
	assert.Equal(t, []int{1, 2}, game.Players[0].BallsPocketed)
	assert.Equal(t, []int{4, 5}, game.Players[0].BowlingFrames[0].Rolls)
	assert.Equal(t, 9, *game.Players[0].BowlingFrames[0].Score)
	assert.Equal(t, end, *game.EndTime)
	assert.Equal(t, []int{5}, game.ShotHistory[0].CustomData.PreviousPlayerStates[0].BallsPocketed)
	assert.Equal(t, 1, game.ScoreHistory[0].Score)
	assert.Equal(t, []int{30}, game.ChessClock.IndividualTimes)
	assert.Equal(t, 1, game.JapanSettings.BallPoints[5])
	assert.Equal(t, 3, game.JapanRackHistory[0].Results[0].TotalPoints)
}

func TestGame_ActivatePlayer(t *testing.T) {
	game := Game{Players: []Player{{ID: "a", IsActive: true}, {ID: "b"}, {ID: "c"}}}

	game.ActivatePlayer(2)

	assert.Equal(t, 2, game.CurrentPlayerIndex)
	assert.Equal(t, 2, game.ActivePlayerIndex())
	assert.False(t, game.Players[0].IsActive)
	current, ok := game.CurrentPlayer()
	assert.True(t, ok)
	assert.Equal(t, "c", current.ID)
}
