package repository

import (
	"testing"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/rocketscienceinc/cuescore-backend/testing/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsRepository_GetAll(t *testing.T) {
	t.Run("Empty when nothing is stored", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Logger, st.Storage)

		stats, err := statsRepo.GetAll(ctx)

		require.NoError(t, err)
		assert.Empty(t, stats)
	})

	t.Run("Malformed stats degrade to empty", func(t *testing.T) {
		ctx, st := suite.New(t)

		statsRepo := NewStatsRepository(st.Logger, st.Storage)

		// Given: garbage under the stats key
		require.NoError(t, st.Storage.Set(ctx, statsKey, "{not json", 0).Err())

		// When: stats are read
		stats, err := statsRepo.GetAll(ctx)

		// Then: no error and no stats
		require.NoError(t, err)
		assert.Empty(t, stats)

		// And: recording starts a fresh list
		require.NoError(t, statsRepo.RecordResult(ctx, []string{"Ann"}, "Ann"))
		stats, err = statsRepo.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entity.PlayerStats{{Name: "Ann", TotalWins: 1, TotalGames: 1}}, stats)
	})
}

func TestStatsRepository_RecordResult(t *testing.T) {
	ctx, st := suite.New(t)

	statsRepo := NewStatsRepository(st.Logger, st.Storage)

	// Given: two games between Ann and Ben
	require.NoError(t, statsRepo.RecordResult(ctx, []string{"Ann", "Ben"}, "Ann"))
	require.NoError(t, statsRepo.RecordResult(ctx, []string{"Ann", "Ben"}, "Ben"))

	// When: a solo game is recorded
	require.NoError(t, statsRepo.RecordResult(ctx, []string{"Cid"}, "Cid"))

	// Then: every name is tracked
	stats, err := statsRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []entity.PlayerStats{
		{Name: "Ann", TotalWins: 1, TotalGames: 2},
		{Name: "Ben", TotalWins: 1, TotalGames: 2},
		{Name: "Cid", TotalWins: 1, TotalGames: 1},
	}, stats)

	// And: the stored layout is a flat JSON list
	raw, err := st.Storage.Get(ctx, statsKey).Result()
	require.NoError(t, err)
	assert.JSONEq(t, `[
		{"name":"Ann","totalWins":1,"totalGames":2},
		{"name":"Ben","totalWins":1,"totalGames":2},
		{"name":"Cid","totalWins":1,"totalGames":1}
	]`, raw)
}
