// Package bowling holds the frame rules and the cascading score calculator
// used by Bowlard games.
package bowling

import "github.com/rocketscienceinc/cuescore-backend/internal/entity"

const lastFrameIndex = entity.BowlingFrameCount - 1

// CalculateScores returns a copy of frames with every cumulative score that can be
// determined from the rolls recorded so far. The input is not modified.
//
// Frames 1-9 stay nil until their strike or spare bonus rolls are known. Frame 10
// has nothing after it to wait for, so it reports previous cumulative plus the rolls
// recorded in it even before it is complete.
func CalculateScores(frames []entity.BowlingFrame) []entity.BowlingFrame {
	result := entity.CloneBowlingFrames(frames)

	cumulative := 0
	resolved := true

	for i := range result {
		result[i].Score = nil

		if !resolved {
			continue
		}

		score, ok := frameScore(result, i)
		if !ok {
			resolved = false
			continue
		}

		cumulative += score
		total := cumulative
		result[i].Score = &total
	}

	return result
}

// IsScoreFinalized reports whether the displayed score of a frame can no longer change.
func IsScoreFinalized(frameIndex int, frames []entity.BowlingFrame) bool {
	if frameIndex < 0 || frameIndex >= len(frames) {
		return false
	}

	frame := frames[frameIndex]
	if !frame.IsComplete {
		return false
	}

	if frameIndex == lastFrameIndex {
		return true
	}

	switch {
	case isStrike(frame.Rolls):
		_, ok := bonusRolls(frames, frameIndex, 2)
		return ok
	case isSpare(frame.Rolls):
		_, ok := bonusRolls(frames, frameIndex, 1)
		return ok
	default:
		return true
	}
}

// LatestScore returns the last cumulative score that has been determined.
func LatestScore(frames []entity.BowlingFrame) int {
	latest := 0
	for _, frame := range frames {
		if frame.Score == nil {
			break
		}

		latest = *frame.Score
	}

	return latest
}

// frameScore returns the frame's own pins plus bonus, not the cumulative total.
func frameScore(frames []entity.BowlingFrame, index int) (int, bool) {
	rolls := frames[index].Rolls

	if index == lastFrameIndex {
		if len(rolls) == 0 {
			return 0, false
		}

		return sum(rolls), true
	}

	switch {
	case isStrike(rolls):
		bonus, ok := bonusRolls(frames, index, 2)
		if !ok {
			return 0, false
		}

		return entity.BowlingPins + sum(bonus), true
	case len(rolls) < 2:
		return 0, false
	case isSpare(rolls):
		bonus, ok := bonusRolls(frames, index, 1)
		if !ok {
			return 0, false
		}

		return entity.BowlingPins + sum(bonus), true
	default:
		return rolls[0] + rolls[1], true
	}
}

// bonusRolls collects the next count individual rolls after the frame at index.
// A strike in the following frame (other than the 10th) has no second roll, so the
// look-ahead continues into the frame after it.
func bonusRolls(frames []entity.BowlingFrame, index, count int) ([]int, bool) {
	next := index + 1
	if next >= len(frames) || len(frames[next].Rolls) == 0 {
		return nil, false
	}

	rolls := []int{frames[next].Rolls[0]}
	if count == 1 {
		return rolls, true
	}

	if len(frames[next].Rolls) >= 2 {
		return append(rolls, frames[next].Rolls[1]), true
	}

	if next == lastFrameIndex || !isStrike(frames[next].Rolls) {
		return nil, false
	}

	after := next + 1
	if after >= len(frames) || len(frames[after].Rolls) == 0 {
		return nil, false
	}

	return append(rolls, frames[after].Rolls[0]), true
}

func isStrike(rolls []int) bool {
	return len(rolls) >= 1 && rolls[0] == entity.BowlingPins
}

func isSpare(rolls []int) bool {
	return len(rolls) >= 2 && rolls[0] != entity.BowlingPins && rolls[0]+rolls[1] == entity.BowlingPins
}

func sum(rolls []int) int {
	total := 0
	for _, pins := range rolls {
		total += pins
	}

	return total
}
