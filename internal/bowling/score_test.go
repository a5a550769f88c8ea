package bowling

import (
	"testing"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// framesFrom builds ten frames from the given per-frame rolls with status flags set.
func framesFrom(rolls ...[]int) []entity.BowlingFrame {
	frames := entity.NewBowlingFrames()
	for i, frameRolls := range rolls {
		frames[i].Rolls = append([]int{}, frameRolls...)
		frames[i] = UpdateFrameStatus(frames[i], i)
	}

	return frames
}

// rollAll feeds pins one roll at a time the way a Bowlard game records them.
func rollAll(t *testing.T, pins ...int) []entity.BowlingFrame {
	t.Helper()

	frames := entity.NewBowlingFrames()
	for _, p := range pins {
		frames = roll(t, frames, p)
	}

	return frames
}

func roll(t *testing.T, frames []entity.BowlingFrame, pins int) []entity.BowlingFrame {
	t.Helper()

	index := CurrentFrameIndex(frames)
	require.GreaterOrEqual(t, index, 0, "game is already over")
	require.NoError(t, ValidateRoll(frames[index], pins))

	frames = entity.CloneBowlingFrames(frames)
	frames[index].Rolls = append(frames[index].Rolls, pins)
	frames[index] = UpdateFrameStatus(frames[index], index)

	return CalculateScores(frames)
}

func repeat(pins, times int) []int {
	out := make([]int, times)
	for i := range out {
		out[i] = pins
	}

	return out
}

func scoreOf(t *testing.T, frame entity.BowlingFrame) int {
	t.Helper()

	require.NotNil(t, frame.Score, "frame %d has no score", frame.FrameNumber)
	return *frame.Score
}

func TestCalculateScores(t *testing.T) {
	t.Run("All gutter balls score zero", func(t *testing.T) {
		// Given: twenty gutter balls
		frames := rollAll(t, repeat(0, 20)...)

		// Then: the final score is zero
		assert.Equal(t, 0, scoreOf(t, frames[9]))
	})

	t.Run("Every roll knocks down a single pin", func(t *testing.T) {
		// Given: twenty rolls of one pin
		frames := rollAll(t, repeat(1, 20)...)

		// Then: each frame adds two points
		for i, frame := range frames {
			assert.Equal(t, 2*(i+1), scoreOf(t, frame))
		}
	})

	t.Run("Perfect game scores 300", func(t *testing.T) {
		// Given: twelve strikes
		frames := rollAll(t, repeat(10, 12)...)

		// Then: the cumulative score runs 30, 60, ... 300
		for i, frame := range frames {
			assert.Equal(t, 30*(i+1), scoreOf(t, frame))
		}
		assert.True(t, frames[9].IsComplete)
	})

	t.Run("Strike in the 9th frame takes the first two rolls of the 10th", func(t *testing.T) {
		// Given: eight open frames of 3+4, a strike, then 3, 7, 5 in the 10th
		rolls := [][]int{}
		for range 8 {
			rolls = append(rolls, []int{3, 4})
		}
		rolls = append(rolls, []int{10}, []int{3, 7, 5})

		// When: scores are calculated
		frames := CalculateScores(framesFrom(rolls...))

		// Then: frame 9 is 8*7+20 and frame 10 adds its own 15 pins
		assert.Equal(t, 76, scoreOf(t, frames[8]))
		assert.Equal(t, 91, scoreOf(t, frames[9]))
	})

	t.Run("Spare waits for exactly one more roll", func(t *testing.T) {
		// Given: a spare in the first frame
		frames := rollAll(t, 3, 7)

		// Then: its score is unknown
		assert.Nil(t, frames[0].Score)

		// When: the next roll is recorded
		frames = roll(t, frames, 4)

		// Then: the spare resolves to 10 + 4 while frame 2 is still open
		assert.Equal(t, 14, scoreOf(t, frames[0]))
		assert.Nil(t, frames[1].Score)
	})

	t.Run("Strike waits for two more rolls", func(t *testing.T) {
		// Given: a strike followed by one roll
		frames := rollAll(t, 10, 3)

		// Then: the strike is unresolved
		assert.Nil(t, frames[0].Score)

		// When: the second bonus roll arrives
		frames = roll(t, frames, 4)

		// Then: strike is 17 and the open frame adds 7
		assert.Equal(t, 17, scoreOf(t, frames[0]))
		assert.Equal(t, 24, scoreOf(t, frames[1]))
	})

	t.Run("Double strike chains the look-ahead one frame further", func(t *testing.T) {
		// Given: two strikes
		frames := rollAll(t, 10, 10)
		assert.Nil(t, frames[0].Score)

		// When: the first ball of frame 3 is rolled
		frames = roll(t, frames, 5)

		// Then: frame 1 resolves through frame 3, frame 2 still waits
		assert.Equal(t, 25, scoreOf(t, frames[0]))
		assert.Nil(t, frames[1].Score)

		// When: frame 3 is finished
		frames = roll(t, frames, 2)

		// Then: the rest resolve
		assert.Equal(t, 42, scoreOf(t, frames[1]))
		assert.Equal(t, 49, scoreOf(t, frames[2]))
	})

	t.Run("Strike in the 9th frame does not chain past the 10th frame's first roll", func(t *testing.T) {
		// Given: nine open frames with a strike in the 9th and one strike in the 10th
		rolls := [][]int{}
		for range 8 {
			rolls = append(rolls, []int{0, 0})
		}
		rolls = append(rolls, []int{10}, []int{10})

		// When: scores are calculated
		frames := CalculateScores(framesFrom(rolls...))

		// Then: frame 9 needs the 10th frame's second roll
		assert.Equal(t, 0, scoreOf(t, frames[7]))
		assert.Nil(t, frames[8].Score)
		assert.Nil(t, frames[9].Score)
	})

	t.Run("10th frame reports a partial score before it is complete", func(t *testing.T) {
		// Given: nine open frames and a strike in the 10th
		frames := rollAll(t, append(repeat(0, 18), 10)...)

		// Then: frame 10 already shows 10 but is not final
		assert.Equal(t, 10, scoreOf(t, frames[9]))
		assert.False(t, frames[9].IsComplete)
		assert.False(t, IsScoreFinalized(9, frames))
	})

	t.Run("Input frames are not modified", func(t *testing.T) {
		// Given: frames with rolls but no scores
		frames := framesFrom([]int{3, 4}, []int{10})

		// When: scores are calculated
		_ = CalculateScores(frames)

		// Then: the input keeps its nil scores
		assert.Nil(t, frames[0].Score)
		assert.Nil(t, frames[1].Score)
	})
}

func TestIsScoreFinalized(t *testing.T) {
	sequences := map[string][]int{
		"perfect game":  repeat(10, 12),
		"all spares":    repeat(5, 21),
		"mixed":         {10, 10, 3, 7, 10, 0, 0, 9, 1, 10, 4, 5, 10, 10, 10, 10},
		"open frames":   repeat(4, 20),
		"tenth spare":   append(repeat(0, 18), 6, 4, 10),
		"late doubles":  append(repeat(2, 14), 10, 10, 10, 3, 4),
		"gutter strike": {0, 10, 10, 0, 10, 1, 9, 10, 0, 0, 10, 10, 10, 10, 10, 10},
	}

	for name, pins := range sequences {
		t.Run(name, func(t *testing.T) {
			frames := entity.NewBowlingFrames()

			for _, p := range pins {
				// When: each roll is recorded
				frames = roll(t, frames, p)

				// Then: frames 1-9 show a score exactly when it is final
				for i := 0; i < lastFrameIndex; i++ {
					assert.Equal(t, IsScoreFinalized(i, frames), frames[i].Score != nil,
						"frame %d after %v", i+1, frames[i].Rolls)
				}
			}

			assert.True(t, IsScoreFinalized(lastFrameIndex, frames))
		})
	}
}

func TestLatestScore(t *testing.T) {
	// Given: an open frame followed by an unresolved strike
	frames := rollAll(t, 3, 4, 10)

	// Then: the latest known score is the open frame's
	assert.Equal(t, 7, LatestScore(frames))
	assert.Equal(t, 0, LatestScore(entity.NewBowlingFrames()))
}
