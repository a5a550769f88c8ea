package engine

import (
	"testing"
	"time"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/stretchr/testify/require"
)

// tickingClock advances one second on every call so events never share a timestamp.
func tickingClock() Clock {
	now := time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC)

	return func() time.Time {
		now = now.Add(time.Second)
		return now
	}
}

func setups(names ...string) []entity.PlayerSetup {
	out := make([]entity.PlayerSetup, len(names))
	for i, name := range names {
		out[i] = entity.PlayerSetup{Name: name}
	}

	return out
}

func startGame(t *testing.T, engine Engine, playerSetups []entity.PlayerSetup) entity.Game {
	t.Helper()

	players, err := engine.InitializePlayers(playerSetups)
	require.NoError(t, err)

	return entity.Game{
		ID:           "game-1",
		Type:         engine.Type(),
		Status:       entity.StatusInProgress,
		Players:      players,
		StartTime:    time.Date(2026, time.January, 1, 12, 0, 0, 0, time.UTC),
		CurrentRack:  1,
		ShotHistory:  []entity.Shot{},
		ScoreHistory: []entity.ScoreHistoryEntry{},
	}
}

func playerIDs(players []entity.Player) []string {
	ids := make([]string, len(players))
	for i, player := range players {
		ids[i] = player.ID
	}

	return ids
}

func mustAction(t *testing.T, engine Engine, game entity.Game, action Action, data ActionData) entity.Game {
	t.Helper()

	next, err := engine.HandleCustomAction(game, action, data)
	require.NoError(t, err)

	return next
}
