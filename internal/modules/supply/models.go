package supply

import (
	"time"

	"github.com/undergrid/empire/internal/domain"
)

// disruptedEfficiencyCap is applied when a chain is first disrupted:
// whatever it ran at before, it runs at half throughput or worse until
// restored.
const disruptedEfficiencyCap = 50.0

// RiskLevel buckets a chain's risk score
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// Chain represents a supply route between territories feeding an enterprise
type Chain struct {
	ID                string             `json:"id"`
	EnterpriseID      string             `json:"enterprise_id"`
	OwnerID           string             `json:"owner_id"`
	SourceTerritoryID string             `json:"source_territory_id"`
	DestTerritoryID   string             `json:"dest_territory_id"`
	WeeklyVolume      float64            `json:"weekly_volume"`
	ProfitPerUnit     float64            `json:"profit_per_unit"`
	Efficiency        float64            `json:"efficiency"` // 0-100
	RiskScore         float64            `json:"risk_score"` // 0-100
	DisruptionStatus  domain.ChainStatus `json:"disruption_status"`
	CreatedDate       time.Time          `json:"created_date"`
}

// RiskDistribution counts chains per risk bucket
type RiskDistribution struct {
	Low    int `json:"low"`
	Medium int `json:"medium"`
	High   int `json:"high"`
}

// NetworkSummary aggregates derived supply-chain metrics
type NetworkSummary struct {
	Total             int              `json:"total"`
	Operational       int              `json:"operational"`
	Disrupted         int              `json:"disrupted"`
	Blocked           int              `json:"blocked"`
	WeeklyProfit      float64          `json:"weekly_profit"`
	AverageEfficiency float64          `json:"average_efficiency"`
	Risk              RiskDistribution `json:"risk"`
}
