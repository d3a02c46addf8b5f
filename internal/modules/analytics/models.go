package analytics

// CategoryReport is one automated-income category's readout
type CategoryReport struct {
	Name       string  `json:"name"`
	Active     int     `json:"active"`
	Total      int     `json:"total"`
	Efficiency float64 `json:"efficiency"` // active/total as a percent
	DailyTotal float64 `json:"daily_total"`
}

// WorkflowSummary is the automated-income dashboard view
type WorkflowSummary struct {
	Categories      []CategoryReport `json:"categories"`
	DailyTotal      float64          `json:"daily_total"`
	ProjectedWeekly float64          `json:"projected_weekly"`
}

// IntelRisk classifies how exposed an operation is
type IntelRisk string

const (
	RiskCritical IntelRisk = "critical"
	RiskHigh     IntelRisk = "high"
	RiskMedium   IntelRisk = "medium"
	RiskLow      IntelRisk = "low"
)

// LegacyTier is one rung of the reputation ladder
type LegacyTier struct {
	Rank     int    `json:"rank"`
	Name     string `json:"name"`
	MinScore int    `json:"min_score"`
}

// LegacyStanding places a score on the ladder
type LegacyStanding struct {
	Tier     LegacyTier  `json:"tier"`
	NextTier *LegacyTier `json:"next_tier,omitempty"`
	Progress float64     `json:"progress"` // percent toward the next tier
}
