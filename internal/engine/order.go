package engine

import (
	"math/rand/v2"

	"github.com/rocketscienceinc/cuescore-backend/internal/entity"
)

const maxShuffleAttempts = 100

type shuffleFunc func(n int, swap func(i, j int))

// CalculateNewPlayerOrder returns the playing order after a Japan order change with
// the selected player breaking first.
//
// Two players keep their order. Three players follow a fixed table keyed by the
// selected player's seat. With four or more the others are shuffled until the cycle
// of "who plays after whom" differs from the current one in at least one edge,
// falling back to the reversed order of the others.
func CalculateNewPlayerOrder(players []entity.Player, selectedPlayerID string) []entity.Player {
	return calculateNewPlayerOrder(players, selectedPlayerID, rand.Shuffle)
}

func calculateNewPlayerOrder(players []entity.Player, selectedPlayerID string, shuffle shuffleFunc) []entity.Player {
	order := clonePlayers(players)

	selected := -1
	for i, player := range order {
		if player.ID == selectedPlayerID {
			selected = i
			break
		}
	}

	if selected < 0 || len(order) <= 2 {
		return order
	}

	if len(order) == 3 {
		a, b, c := order[0], order[1], order[2]

		switch selected {
		case 0:
			return []entity.Player{a, c, b}
		case 1:
			return []entity.Player{b, a, c}
		default:
			return []entity.Player{c, b, a}
		}
	}

	original := successors(order)

	others := make([]entity.Player, 0, len(order)-1)
	others = append(others, order[:selected]...)
	others = append(others, order[selected+1:]...)

	for range maxShuffleAttempts {
		candidate := make([]entity.Player, 0, len(order))
		candidate = append(candidate, order[selected])
		candidate = append(candidate, others...)

		rest := candidate[1:]
		shuffle(len(rest), func(i, j int) {
			rest[i], rest[j] = rest[j], rest[i]
		})

		if !sameCycle(original, successors(candidate)) {
			return candidate
		}
	}

	fallback := make([]entity.Player, 0, len(order))
	fallback = append(fallback, order[selected])
	for i := len(others) - 1; i >= 0; i-- {
		fallback = append(fallback, others[i])
	}

	return fallback
}

// successors maps each player to the one who plays after them, wrapping around.
func successors(order []entity.Player) map[string]string {
	next := make(map[string]string, len(order))
	for i, player := range order {
		next[player.ID] = order[(i+1)%len(order)].ID
	}

	return next
}

func sameCycle(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}

	for id, next := range a {
		if b[id] != next {
			return false
		}
	}

	return true
}

func clonePlayers(players []entity.Player) []entity.Player {
	clone := make([]entity.Player, len(players))
	for i, player := range players {
		clone[i] = player.Clone()
	}

	return clone
}
