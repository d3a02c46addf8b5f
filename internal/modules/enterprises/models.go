package enterprises

import "time"

// Pricing constants for the production economy. Each produced unit sells at
// the base unit price; production runs around the clock.
const (
	UnitPrice   = 10.0
	HoursPerDay = 24
)

// Enterprise represents an income-producing business record
type Enterprise struct {
	ID              string    `json:"id"`
	OwnerID         string    `json:"owner_id"`
	Type            string    `json:"type"`
	Name            string    `json:"name"`
	ProductionRate  float64   `json:"production_rate"` // units per hour
	StorageCapacity float64   `json:"storage_capacity"`
	CurrentStock    float64   `json:"current_stock"`
	HeatLevel       float64   `json:"heat_level"` // 0-100 law-enforcement attention
	TotalRevenue    float64   `json:"total_revenue"`
	PurchaseCost    float64   `json:"purchase_cost"`
	IsActive        bool      `json:"is_active"`
	CreatedDate     time.Time `json:"created_date"`
}

// Summary aggregates derived enterprise metrics for a single owner
type Summary struct {
	Total               int     `json:"total"`
	Active              int     `json:"active"`
	TotalProduction     float64 `json:"total_production"`
	DailyIncome         float64 `json:"daily_income"`
	TotalRevenue        float64 `json:"total_revenue"`
	AverageHeat         float64 `json:"average_heat"`
	CapacityUtilization float64 `json:"capacity_utilization"`
}
