package analytics

import "github.com/undergrid/empire/pkg/formulas"

// ClassifyIntelRisk buckets an intel level on a strict-greater-than ladder.
// Exactly 80 is high, not critical.
func ClassifyIntelRisk(level float64) IntelRisk {
	switch {
	case level > 80:
		return RiskCritical
	case level > 60:
		return RiskHigh
	case level > 40:
		return RiskMedium
	default:
		return RiskLow
	}
}

// legacyTiers is the reputation ladder, ascending by minimum score
var legacyTiers = []LegacyTier{
	{Rank: 1, Name: "Rising Criminal", MinScore: 0},
	{Rank: 2, Name: "Established Boss", MinScore: 1000},
	{Rank: 3, Name: "Crime Lord", MinScore: 5000},
	{Rank: 4, Name: "Kingpin", MinScore: 15000},
	{Rank: 5, Name: "Underworld Legend", MinScore: 50000},
}

// LegacyTiers returns the full ladder
func LegacyTiers() []LegacyTier {
	out := make([]LegacyTier, len(legacyTiers))
	copy(out, legacyTiers)
	return out
}

// ClassifyLegacy finds the highest tier whose minimum the score meets and
// reports progress toward the next. The top tier pegs progress at 100.
func ClassifyLegacy(score int) LegacyStanding {
	current := legacyTiers[0]
	var next *LegacyTier

	for i, tier := range legacyTiers {
		if score >= tier.MinScore {
			current = tier
			if i+1 < len(legacyTiers) {
				n := legacyTiers[i+1]
				next = &n
			} else {
				next = nil
			}
		}
	}

	if next == nil {
		return LegacyStanding{Tier: current, Progress: 100}
	}

	span := float64(next.MinScore - current.MinScore)
	progress := formulas.ClampPercent(float64(score-current.MinScore) / span * 100)

	return LegacyStanding{Tier: current, NextTier: next, Progress: progress}
}
