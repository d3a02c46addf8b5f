package leaderboard

import (
	"math"
	"sort"

	"github.com/undergrid/empire/internal/domain"
)

// InfluenceScore computes a player's composite standing, floored to an
// integer.
func InfluenceScore(p domain.Player, enterpriseCount int) int {
	score := p.TotalEarnings/1000 +
		float64(enterpriseCount)*500 +
		float64(p.Stats.SuccessfulAttacks)*300 +
		float64(p.Stats.SuccessfulDefenses)*200 +
		float64(p.EndgamePoints)*100
	return int(math.Floor(score))
}

// Rank scores every player and returns the full ordered set, highest score
// first. Equal scores break deterministically on ascending player id, so
// the ordering never depends on how the input was enumerated. Rank is the
// post-sort index plus one.
func Rank(players []domain.Player, enterpriseCounts map[string]int) []Entry {
	entries := make([]Entry, 0, len(players))
	for _, p := range players {
		count := enterpriseCounts[p.ID]
		entries = append(entries, Entry{
			PlayerID:        p.ID,
			Username:        p.Username,
			Score:           InfluenceScore(p, count),
			TotalRevenue:    p.TotalEarnings,
			EnterpriseCount: count,
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].PlayerID < entries[j].PlayerID
	})

	for i := range entries {
		entries[i].Rank = i + 1
	}

	return entries
}

// Slice returns the top n entries without copying past the set's end
func Slice(entries []Entry, n int) []Entry {
	if len(entries) < n {
		n = len(entries)
	}
	return entries[:n]
}

// Find locates a player in the full ranked set. Returns nil when the
// player was not ranked at all.
func Find(entries []Entry, playerID string) *Entry {
	for i := range entries {
		if entries[i].PlayerID == playerID {
			return &entries[i]
		}
	}
	return nil
}
