package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecordGameResult(t *testing.T) {
	t.Run("Adds new names and counts the winner", func(t *testing.T) {
		// Given: Ann already has a record
		stats := []PlayerStats{{Name: "Ann", TotalWins: 1, TotalGames: 2}}

		// When: Ann beats Ben
		updated := RecordGameResult(stats, []string{"Ann", "Ben"}, "Ann")

		// Then: both get a game and only Ann a win
		assert.Equal(t, []PlayerStats{
			{Name: "Ann", TotalWins: 2, TotalGames: 3},
			{Name: "Ben", TotalWins: 0, TotalGames: 1},
		}, updated)
		assert.Equal(t, 2, stats[0].TotalGames)
	})

	t.Run("Counts a repeated name once", func(t *testing.T) {
		updated := RecordGameResult(nil, []string{"Ann", "Ann"}, "")

		assert.Equal(t, []PlayerStats{{Name: "Ann", TotalGames: 1}}, updated)
	})
}
