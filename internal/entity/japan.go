package entity

// JapanSettings configure the scoring balls and how often the playing order rotates.
type JapanSettings struct {
	// BallPoints maps a ball number to the points it earns; missing balls earn nothing.
	BallPoints map[int]int `json:"ballPoints"`
	// OrderChangeInterval is the number of racks between order changes, 0 disables them.
	OrderChangeInterval int `json:"orderChangeInterval,omitempty"`
}

func DefaultJapanSettings() JapanSettings {
	return JapanSettings{
		BallPoints: map[int]int{5: 1, 9: 2},
	}
}

func (that JapanSettings) Clone() JapanSettings {
	clone := that
	if that.BallPoints != nil {
		clone.BallPoints = make(map[int]int, len(that.BallPoints))
		for ball, points := range that.BallPoints {
			clone.BallPoints[ball] = points
		}
	}

	return clone
}

type JapanRackHistoryEntry struct {
	RackNumber int               `json:"rackNumber"`
	Results    []JapanRackResult `json:"results"`
}

type JapanRackResult struct {
	PlayerID     string `json:"playerId"`
	EarnedPoints int    `json:"earnedPoints"`
	DeltaPoints  int    `json:"deltaPoints"`
	TotalPoints  int    `json:"totalPoints"`
}

func (that JapanRackHistoryEntry) Clone() JapanRackHistoryEntry {
	clone := that
	clone.Results = cloneSlice(that.Results)

	return clone
}

// TotalFor returns the player's running total after this rack.
func (that JapanRackHistoryEntry) TotalFor(playerID string) (int, bool) {
	for _, result := range that.Results {
		if result.PlayerID == playerID {
			return result.TotalPoints, true
		}
	}

	return 0, false
}
