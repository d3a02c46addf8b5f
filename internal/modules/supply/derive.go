package supply

import (
	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/pkg/formulas"
)

// WeeklyProfit sums projected weekly profit over a chain snapshot. Blocked
// chains contribute nothing; disrupted chains still flow at whatever
// efficiency their disruption left them.
func WeeklyProfit(chains []Chain) float64 {
	total := 0.0
	for _, c := range chains {
		if c.DisruptionStatus == domain.ChainBlocked {
			continue
		}
		total += c.WeeklyVolume * c.ProfitPerUnit * (c.Efficiency / 100)
	}
	return total
}

// AverageEfficiency averages efficiency across all chains; empty input
// yields 0
func AverageEfficiency(chains []Chain) float64 {
	if len(chains) == 0 {
		return 0
	}
	total := 0.0
	for _, c := range chains {
		total += c.Efficiency
	}
	return total / float64(len(chains))
}

// ClassifyRisk buckets a 0-100 risk score. Boundaries are inclusive on the
// lower end: exactly 30 is medium, exactly 70 is high.
func ClassifyRisk(score float64) RiskLevel {
	switch {
	case score < 30:
		return RiskLow
	case score < 70:
		return RiskMedium
	default:
		return RiskHigh
	}
}

// DeriveRiskDistribution counts chains per risk bucket
func DeriveRiskDistribution(chains []Chain) RiskDistribution {
	var dist RiskDistribution
	for _, c := range chains {
		switch ClassifyRisk(c.RiskScore) {
		case RiskLow:
			dist.Low++
		case RiskMedium:
			dist.Medium++
		case RiskHigh:
			dist.High++
		}
	}
	return dist
}

// Summarize derives the full network metric set for a snapshot
func Summarize(chains []Chain) NetworkSummary {
	summary := NetworkSummary{
		Total:             len(chains),
		WeeklyProfit:      formulas.RoundTo(WeeklyProfit(chains), 2),
		AverageEfficiency: formulas.RoundTo(AverageEfficiency(chains), 2),
		Risk:              DeriveRiskDistribution(chains),
	}

	for _, c := range chains {
		switch c.DisruptionStatus {
		case domain.ChainDisrupted:
			summary.Disrupted++
		case domain.ChainBlocked:
			summary.Blocked++
		default:
			summary.Operational++
		}
	}

	return summary
}

// applyDisruption transitions a chain to disrupted, capping its efficiency.
// Pure: operates on and returns a copy.
func applyDisruption(c Chain) Chain {
	c.DisruptionStatus = domain.ChainDisrupted
	if c.Efficiency > disruptedEfficiencyCap {
		c.Efficiency = disruptedEfficiencyCap
	}
	return c
}

// applyBlock transitions a chain to blocked
func applyBlock(c Chain) Chain {
	c.DisruptionStatus = domain.ChainBlocked
	return c
}

// applyRestore returns a chain to operational at full efficiency
func applyRestore(c Chain) Chain {
	c.DisruptionStatus = domain.ChainOperational
	c.Efficiency = 100
	return c
}
