package investments

import (
	"time"

	"github.com/undergrid/empire/internal/domain"
)

// Investment is a lump-sum position paying a fixed daily return while active
type Investment struct {
	ID          string                  `json:"id"`
	PlayerID    string                  `json:"player_id"`
	Name        string                  `json:"name"`
	Amount      float64                 `json:"amount"`
	DailyReturn float64                 `json:"daily_return"`
	Status      domain.InvestmentStatus `json:"status"`
	CreatedDate time.Time               `json:"created_date"`
}

// PassiveIncome is a recurring hourly income source
type PassiveIncome struct {
	ID            string    `json:"id"`
	PlayerID      string    `json:"player_id"`
	SourceName    string    `json:"source_name"`
	AmountPerHour float64   `json:"amount_per_hour"`
	IsActive      bool      `json:"is_active"`
	CreatedDate   time.Time `json:"created_date"`
}

// PortfolioSummary is the derived view over a player's positions
type PortfolioSummary struct {
	TotalInvested    int     `json:"total_investments"`
	ActiveCount      int     `json:"active_investments"`
	InvestedCapital  float64 `json:"invested_capital"`
	DailyReturnTotal float64 `json:"daily_return_total"`
	PassiveSources   int     `json:"passive_sources"`
	PassiveHourly    float64 `json:"passive_hourly"`
	PassiveDaily     float64 `json:"passive_daily"`
}
