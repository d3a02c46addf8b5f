package enterprises

import (
	"github.com/undergrid/empire/pkg/formulas"
)

// Derivations over enterprise snapshots. All functions are pure folds:
// order-independent, no I/O, and safe on empty input.

// TotalProduction sums production rates over active enterprises
func TotalProduction(list []Enterprise) float64 {
	total := 0.0
	for _, e := range list {
		if e.IsActive {
			total += e.ProductionRate
		}
	}
	return total
}

// TotalRevenue sums lifetime revenue across all enterprises
func TotalRevenue(list []Enterprise) float64 {
	total := 0.0
	for _, e := range list {
		total += e.TotalRevenue
	}
	return total
}

// AverageHeat averages heat levels; empty input yields 0
func AverageHeat(list []Enterprise) float64 {
	if len(list) == 0 {
		return 0
	}
	total := 0.0
	for _, e := range list {
		total += e.HeatLevel
	}
	return total / float64(len(list))
}

// DailyIncome projects daily income over active enterprises:
// production_rate x unit price x 24 hours
func DailyIncome(list []Enterprise) float64 {
	return TotalProduction(list) * UnitPrice * HoursPerDay
}

// CapacityUtilization returns stock as a percentage of total capacity
func CapacityUtilization(list []Enterprise) float64 {
	var stock, capacity float64
	for _, e := range list {
		stock += e.CurrentStock
		capacity += e.StorageCapacity
	}
	return formulas.ClampPercent(formulas.SafeRatio(stock, capacity) * 100)
}

// Summarize derives the full metric set for a snapshot
func Summarize(list []Enterprise) Summary {
	active := 0
	for _, e := range list {
		if e.IsActive {
			active++
		}
	}

	return Summary{
		Total:               len(list),
		Active:              active,
		TotalProduction:     TotalProduction(list),
		DailyIncome:         formulas.RoundTo(DailyIncome(list), 2),
		TotalRevenue:        formulas.RoundTo(TotalRevenue(list), 2),
		AverageHeat:         formulas.RoundTo(AverageHeat(list), 2),
		CapacityUtilization: formulas.RoundTo(CapacityUtilization(list), 2),
	}
}
