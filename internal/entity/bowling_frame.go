package entity

const (
	BowlingFrameCount = 10
	BowlingPins       = 10
)

type BowlingFrame struct {
	FrameNumber int   `json:"frameNumber"`
	Rolls       []int `json:"rolls"`
	IsStrike    bool  `json:"isStrike"`
	IsSpare     bool  `json:"isSpare"`
	// Score is the cumulative score through this frame, nil until it can be determined.
	Score      *int `json:"score,omitempty"`
	IsComplete bool `json:"isComplete"`
}

func NewBowlingFrames() []BowlingFrame {
	frames := make([]BowlingFrame, BowlingFrameCount)
	for i := range frames {
		frames[i] = BowlingFrame{
			FrameNumber: i + 1,
			Rolls:       []int{},
		}
	}

	return frames
}

func (that BowlingFrame) Clone() BowlingFrame {
	clone := that
	clone.Rolls = cloneSlice(that.Rolls)

	if that.Score != nil {
		score := *that.Score
		clone.Score = &score
	}

	return clone
}

func CloneBowlingFrames(frames []BowlingFrame) []BowlingFrame {
	if frames == nil {
		return nil
	}

	clone := make([]BowlingFrame, len(frames))
	for i, frame := range frames {
		clone[i] = frame.Clone()
	}

	return clone
}
