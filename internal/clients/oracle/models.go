package oracle

// Difficulty levels the oracle is allowed to assign
const (
	DifficultyEasy    = "easy"
	DifficultyMedium  = "medium"
	DifficultyHard    = "hard"
	DifficultyExtreme = "extreme"
)

// MissionBrief is generated narrative plus the numbers the engine consumes
type MissionBrief struct {
	Title         string  `json:"title"`
	Briefing      string  `json:"briefing"`
	Difficulty    string  `json:"difficulty"`
	RewardCrypto  float64 `json:"reward_crypto"`
	SuccessChance float64 `json:"success_chance"` // percent
	DurationHours float64 `json:"duration_hours"`
}

// NPCProfile is a generated non-player character
type NPCProfile struct {
	Name      string  `json:"name"`
	Backstory string  `json:"backstory"`
	Strength  float64 `json:"strength"` // 0-100
	Cunning   float64 `json:"cunning"`  // 0-100
	Loyalty   float64 `json:"loyalty"`  // 0-100
}

// InvestmentCommentary is flavor text plus a suggested return figure
type InvestmentCommentary struct {
	Symbol            string  `json:"symbol"`
	Commentary        string  `json:"commentary"`
	SuggestedDailyPct float64 `json:"suggested_daily_pct"`
	Confidence        float64 `json:"confidence"` // percent
}
