package entity

import "time"

type ShotDataType string

const (
	ShotDataBallClick    ShotDataType = "ball_click"
	ShotDataRackComplete ShotDataType = "rack_complete"
	ShotDataMultiplier   ShotDataType = "multiplier"
	ShotDataDeduction    ShotDataType = "deduction"
	ShotDataOrderChange  ShotDataType = "order_change"
	ShotDataPins         ShotDataType = "pins"
)

// Shot is one atomic event. Shots are never modified after they are appended.
type Shot struct {
	ID         string    `json:"id"`
	PlayerID   string    `json:"playerId"`
	BallNumber int       `json:"ballNumber"`
	IsSunk     bool      `json:"isSunk"`
	IsFoul     bool      `json:"isFoul"`
	Timestamp  time.Time `json:"timestamp"`
	CustomData *ShotData `json:"customData,omitempty"`
}

// ShotData is the tagged payload of a shot. Which fields are set depends on Type.
type ShotData struct {
	Type ShotDataType `json:"type"`

	// ball_click, deduction
	Points int `json:"points,omitempty"`

	// pins
	Pins int `json:"pins,omitempty"`

	// multiplier
	Multiplier int `json:"multiplier,omitempty"`

	// rack_complete, multiplier
	PreviousRack         int              `json:"previousRack,omitempty"`
	PreviousMultiplier   int              `json:"previousMultiplier,omitempty"`
	PreviousPlayerStates []PlayerSnapshot `json:"previousPlayerStates,omitempty"`
	PreviousOrderDue     bool             `json:"previousOrderChangeDue,omitempty"`

	// order_change
	PreviousOrder       []string `json:"previousOrder,omitempty"`
	PreviousActiveIndex int      `json:"previousActiveIndex,omitempty"`
}

// PlayerSnapshot is the part of a player that a rack completion overwrites.
type PlayerSnapshot struct {
	PlayerID      string `json:"playerId"`
	Score         int    `json:"score"`
	BallsPocketed []int  `json:"ballsPocketed"`
}

func (that Shot) Clone() Shot {
	clone := that
	if that.CustomData != nil {
		data := that.CustomData.Clone()
		clone.CustomData = &data
	}

	return clone
}

func (that Shot) DataType() ShotDataType {
	if that.CustomData == nil {
		return ""
	}

	return that.CustomData.Type
}

func (that ShotData) Clone() ShotData {
	clone := that
	clone.PreviousOrder = cloneSlice(that.PreviousOrder)

	if that.PreviousPlayerStates != nil {
		clone.PreviousPlayerStates = make([]PlayerSnapshot, len(that.PreviousPlayerStates))
		for i, state := range that.PreviousPlayerStates {
			clone.PreviousPlayerStates[i] = PlayerSnapshot{
				PlayerID:      state.PlayerID,
				Score:         state.Score,
				BallsPocketed: cloneSlice(state.BallsPocketed),
			}
		}
	}

	return clone
}
