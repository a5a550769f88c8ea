package entity

type Player struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Score         int    `json:"score"`
	BallsPocketed []int  `json:"ballsPocketed"`
	IsActive      bool   `json:"isActive"`

	TargetScore   int            `json:"targetScore,omitempty"`
	TargetSets    int            `json:"targetSets,omitempty"`
	SetsWon       int            `json:"setsWon,omitempty"`
	BowlingFrames []BowlingFrame `json:"bowlingFrames,omitempty"`
}

// PlayerSetup is the start parameter for one roster entry.
type PlayerSetup struct {
	Name        string `json:"name"`
	TargetScore int    `json:"targetScore,omitempty"`
	TargetSets  int    `json:"targetSets,omitempty"`
}

func (that Player) Clone() Player {
	clone := that
	clone.BallsPocketed = cloneSlice(that.BallsPocketed)

	if that.BowlingFrames != nil {
		clone.BowlingFrames = make([]BowlingFrame, len(that.BowlingFrames))
		for i, frame := range that.BowlingFrames {
			clone.BowlingFrames[i] = frame.Clone()
		}
	}

	return clone
}

func (that Player) HasPocketed(ballNumber int) bool {
	for _, ball := range that.BallsPocketed {
		if ball == ballNumber {
			return true
		}
	}

	return false
}

// Setup returns the start parameters that produced this player, used for rematches.
func (that Player) Setup() PlayerSetup {
	return PlayerSetup{
		Name:        that.Name,
		TargetScore: that.TargetScore,
		TargetSets:  that.TargetSets,
	}
}
