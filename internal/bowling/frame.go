package bowling

import (
	"fmt"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

// UpdateFrameStatus returns a copy of frame with strike, spare and completion
// recomputed from its rolls.
func UpdateFrameStatus(frame entity.BowlingFrame, frameIndex int) entity.BowlingFrame {
	result := frame.Clone()
	rolls := result.Rolls

	result.IsStrike = isStrike(rolls)
	result.IsSpare = isSpare(rolls)

	if frameIndex < lastFrameIndex {
		result.IsComplete = result.IsStrike || len(rolls) >= 2
		return result
	}

	// the 10th frame earns its bonus rolls inside the frame
	if result.IsStrike || result.IsSpare {
		result.IsComplete = len(rolls) >= 3
	} else {
		result.IsComplete = len(rolls) >= 2
	}

	return result
}

// CurrentFrameIndex returns the first incomplete frame, or -1 when all are complete.
func CurrentFrameIndex(frames []entity.BowlingFrame) int {
	for i, frame := range frames {
		if !frame.IsComplete {
			return i
		}
	}

	return -1
}

// ValidateRoll checks that pins can be knocked down as the next roll of frame.
func ValidateRoll(frame entity.BowlingFrame, pins int) error {
	if pins < 0 || pins > entity.BowlingPins {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPins, pins)
	}

	if standing := PinsStanding(frame.Rolls); pins > standing {
		return fmt.Errorf("%w: %d with %d pins standing", apperror.ErrInvalidPins, pins, standing)
	}

	return nil
}

// PinsStanding returns how many pins are up for the next roll of the frame.
func PinsStanding(rolls []int) int {
	standing, _ := walkSubFrames(rolls)
	return standing
}

// RollPositions returns each roll's position inside its logical sub-frame: 0 for the
// first ball at a full rack, 1 for the second. In the 10th frame the rack is reset
// after a strike or a spare, so the following roll starts a fresh sub-frame.
func RollPositions(rolls []int) []int {
	_, positions := walkSubFrames(rolls)
	return positions
}

func walkSubFrames(rolls []int) (int, []int) {
	positions := make([]int, len(rolls))
	standing := entity.BowlingPins
	position := 0

	for i, pins := range rolls {
		positions[i] = position
		standing -= pins

		if standing <= 0 || position == 1 {
			standing = entity.BowlingPins
			position = 0
		} else {
			position = 1
		}
	}

	return standing, positions
}
