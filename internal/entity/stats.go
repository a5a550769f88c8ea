package entity

// PlayerStats are aggregate results keyed by display name.
type PlayerStats struct {
	Name       string `json:"name"`
	TotalWins  int    `json:"totalWins"`
	TotalGames int    `json:"totalGames"`
}

// RecordGameResult returns stats with one more game for every distinct name and a
// win for winnerName. An empty winnerName counts the game without a winner.
func RecordGameResult(stats []PlayerStats, names []string, winnerName string) []PlayerStats {
	result := cloneSlice(stats)
	if result == nil {
		result = []PlayerStats{}
	}

	index := make(map[string]int, len(result))
	for i, entry := range result {
		index[entry.Name] = i
	}

	seen := make(map[string]struct{}, len(names))
	for _, name := range names {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		i, ok := index[name]
		if !ok {
			result = append(result, PlayerStats{Name: name})
			i = len(result) - 1
			index[name] = i
		}

		result[i].TotalGames++
		if name == winnerName {
			result[i].TotalWins++
		}
	}

	return result
}
