package territories

import "time"

// Defaults for records whose tax fields were never set. Missing values fall
// back rather than zeroing tax income out.
const (
	DefaultTaxRate = 2.0
	DefaultValue   = 50000.0
)

// Territory represents a controlled district record. TaxRate and Value are
// pointers: older records may lack them, and derivations substitute the
// defaults above.
type Territory struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	OwnerID           string    `json:"owner_id,omitempty"`
	ControllingCrewID string    `json:"controlling_crew_id,omitempty"`
	TaxRate           *float64  `json:"tax_rate,omitempty"`
	Value             *float64  `json:"value,omitempty"`
	ControlPercentage float64   `json:"control_percentage"`
	DefenseRating     float64   `json:"defense_rating"`
	Tier              int       `json:"tier"`
	IsContested       bool      `json:"is_contested"`
	CreatedDate       time.Time `json:"created_date"`
}

// Summary aggregates derived territory metrics
type Summary struct {
	Total          int     `json:"total"`
	Contested      int     `json:"contested"`
	DailyTaxIncome float64 `json:"daily_tax_income"`
	AverageControl float64 `json:"average_control"`
	AverageDefense float64 `json:"average_defense"`
	TotalValue     float64 `json:"total_value"`
}
