package oracle

import "github.com/undergrid/empire/pkg/formulas"

// Generated numbers are never trusted at face value. Percentages clamp to
// [0,100], payouts and durations must be positive, and enums fall back to
// a safe default when the service invents a value.

var knownDifficulties = map[string]bool{
	DifficultyEasy:    true,
	DifficultyMedium:  true,
	DifficultyHard:    true,
	DifficultyExtreme: true,
}

const (
	maxRewardCrypto  = 1_000_000.0
	maxDurationHours = 168.0 // one week
	maxDailyPct      = 25.0
)

// SanitizeMissionBrief bounds a generated mission's numeric fields
func SanitizeMissionBrief(b MissionBrief) MissionBrief {
	if !knownDifficulties[b.Difficulty] {
		b.Difficulty = DifficultyMedium
	}
	b.RewardCrypto = formulas.Clamp(b.RewardCrypto, 0, maxRewardCrypto)
	b.SuccessChance = formulas.ClampPercent(b.SuccessChance)
	b.DurationHours = formulas.Clamp(b.DurationHours, 1, maxDurationHours)
	return b
}

// SanitizeNPC bounds a generated NPC's stat block
func SanitizeNPC(n NPCProfile) NPCProfile {
	n.Strength = formulas.ClampPercent(n.Strength)
	n.Cunning = formulas.ClampPercent(n.Cunning)
	n.Loyalty = formulas.ClampPercent(n.Loyalty)
	return n
}

// SanitizeCommentary bounds a suggested return so generated figures can
// never inflate investment payouts past the house limit
func SanitizeCommentary(c InvestmentCommentary) InvestmentCommentary {
	c.SuggestedDailyPct = formulas.Clamp(c.SuggestedDailyPct, 0, maxDailyPct)
	c.Confidence = formulas.ClampPercent(c.Confidence)
	return c
}
