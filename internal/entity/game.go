package entity

import (
	"errors"
	"fmt"
	"time"

	"github.com/rocketscienceinc/cuescore-backend/internal/apperror"
)

type GameType string

const (
	GameTypeSetMatch GameType = "SET_MATCH"
	GameTypeRotation GameType = "ROTATION"
	GameTypeBowlard  GameType = "BOWLARD"
	GameTypeJapan    GameType = "JAPAN"
)

type GameStatus string

const (
	StatusNotStarted GameStatus = "NOT_STARTED"
	StatusInProgress GameStatus = "IN_PROGRESS"
	StatusCompleted  GameStatus = "COMPLETED"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

// IsValid reports whether the tag names one of the supported game types.
func (that GameType) IsValid() bool {
	switch that {
	case GameTypeSetMatch, GameTypeRotation, GameTypeBowlard, GameTypeJapan:
		return true
	default:
		return false
	}
}

// ChessClockSettings are owned by the clock collaborator; the game only carries them.
type ChessClockSettings struct {
	Enabled          bool  `json:"enabled"`
	TimeLimitSeconds int   `json:"timeLimitSeconds,omitempty"`
	WarningSeconds   int   `json:"warningSeconds,omitempty"`
	IndividualTimes  []int `json:"individualTimes,omitempty"`
}

// Game is an immutable snapshot. Engines never modify a Game they receive,
// they return a new one built from Clone.
type Game struct {
	ID                 string     `json:"id"`
	Type               GameType   `json:"type"`
	Status             GameStatus `json:"status"`
	Players            []Player   `json:"players"`
	CurrentPlayerIndex int        `json:"currentPlayerIndex"`
	StartTime          time.Time  `json:"startTime"`
	EndTime            *time.Time `json:"endTime,omitempty"`
	Winner             string     `json:"winner,omitempty"`

	CurrentRack    int  `json:"currentRack"`
	TotalRacks     int  `json:"totalRacks"`
	RackInProgress bool `json:"rackInProgress"`

	ShotHistory  []Shot              `json:"shotHistory"`
	ScoreHistory []ScoreHistoryEntry `json:"scoreHistory"`

	ChessClock *ChessClockSettings `json:"chessClock,omitempty"`

	JapanSettings       *JapanSettings          `json:"japanSettings,omitempty"`
	JapanRackHistory    []JapanRackHistoryEntry `json:"japanRackHistory,omitempty"`
	JapanMultiplier     int                     `json:"japanMultiplier,omitempty"`
	JapanOrderChangeDue bool                    `json:"japanOrderChangeDue,omitempty"`
}

type ScoreHistoryEntry struct {
	PlayerID  string    `json:"playerId"`
	Score     int       `json:"score"`
	Timestamp time.Time `json:"timestamp"`
}

// Clone returns a deep copy that shares no slices or pointers with the receiver.
func (that Game) Clone() Game {
	clone := that

	if that.Players != nil {
		clone.Players = make([]Player, len(that.Players))
		for i, player := range that.Players {
			clone.Players[i] = player.Clone()
		}
	}

	if that.EndTime != nil {
		endTime := *that.EndTime
		clone.EndTime = &endTime
	}

	if that.ShotHistory != nil {
		clone.ShotHistory = make([]Shot, len(that.ShotHistory))
		for i, shot := range that.ShotHistory {
			clone.ShotHistory[i] = shot.Clone()
		}
	}

	clone.ScoreHistory = cloneSlice(that.ScoreHistory)

	if that.ChessClock != nil {
		clock := *that.ChessClock
		clock.IndividualTimes = cloneSlice(that.ChessClock.IndividualTimes)
		clone.ChessClock = &clock
	}

	if that.JapanSettings != nil {
		settings := that.JapanSettings.Clone()
		clone.JapanSettings = &settings
	}

	if that.JapanRackHistory != nil {
		clone.JapanRackHistory = make([]JapanRackHistoryEntry, len(that.JapanRackHistory))
		for i, entry := range that.JapanRackHistory {
			clone.JapanRackHistory[i] = entry.Clone()
		}
	}

	return clone
}

func (that Game) IsCompleted() bool {
	return that.Status == StatusCompleted
}

func (that Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

// ConfirmInProgress returns an error describing why the game cannot accept actions.
func (that Game) ConfirmInProgress() error {
	switch that.Status {
	case StatusInProgress:
		return nil
	case StatusNotStarted:
		return apperror.ErrGameIsNotStarted
	case StatusCompleted:
		return apperror.ErrGameFinished
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// CurrentPlayer returns the player at CurrentPlayerIndex.
func (that Game) CurrentPlayer() (Player, bool) {
	if that.CurrentPlayerIndex < 0 || that.CurrentPlayerIndex >= len(that.Players) {
		return Player{}, false
	}

	return that.Players[that.CurrentPlayerIndex], true
}

// ActivePlayerIndex returns the index of the player flagged active, or -1.
func (that Game) ActivePlayerIndex() int {
	for i, player := range that.Players {
		if player.IsActive {
			return i
		}
	}

	return -1
}

func (that Game) PlayerIndex(id string) int {
	for i, player := range that.Players {
		if player.ID == id {
			return i
		}
	}

	return -1
}

// IsBallPocketed reports whether any player has pocketed the ball in the current rack.
func (that Game) IsBallPocketed(ballNumber int) bool {
	for _, player := range that.Players {
		if player.HasPocketed(ballNumber) {
			return true
		}
	}

	return false
}

// PocketedBalls returns the union of all players' pocketed balls.
func (that Game) PocketedBalls() map[int]struct{} {
	pocketed := make(map[int]struct{})
	for _, player := range that.Players {
		for _, ball := range player.BallsPocketed {
			pocketed[ball] = struct{}{}
		}
	}

	return pocketed
}

func (that Game) LastShot() (Shot, bool) {
	if len(that.ShotHistory) == 0 {
		return Shot{}, false
	}

	return that.ShotHistory[len(that.ShotHistory)-1], true
}

// ActivatePlayer marks only the player at index as active and makes it current.
func (that *Game) ActivatePlayer(index int) {
	for i := range that.Players {
		that.Players[i].IsActive = i == index
	}

	that.CurrentPlayerIndex = index
}

func cloneSlice[T any](in []T) []T {
	if in == nil {
		return nil
	}

	out := make([]T, len(in))
	copy(out, in)

	return out
}
