package bowling

import (
	"strconv"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

const (
	LabelStrike = "X"
	LabelSpare  = "/"
	LabelGutter = "G"
	LabelMiss   = "-"
)

// RollLabels renders the rolls of a frame with the usual score sheet symbols.
// A zero on the first ball of a sub-frame is a gutter, on the second ball a miss.
func RollLabels(frame entity.BowlingFrame) []string {
	positions := RollPositions(frame.Rolls)
	labels := make([]string, len(frame.Rolls))

	for i, pins := range frame.Rolls {
		switch {
		case positions[i] == 0 && pins == entity.BowlingPins:
			labels[i] = LabelStrike
		case positions[i] == 1 && frame.Rolls[i-1]+pins == entity.BowlingPins:
			labels[i] = LabelSpare
		case positions[i] == 0 && pins == 0:
			labels[i] = LabelGutter
		case pins == 0:
			labels[i] = LabelMiss
		default:
			labels[i] = strconv.Itoa(pins)
		}
	}

	return labels
}
