package investments

import "github.com/undergrid/empire/internal/domain"

// hoursPerDay converts hourly passive rates to daily totals
const hoursPerDay = 24.0

// TotalDailyReturn sums daily returns over active investments only
func TotalDailyReturn(positions []Investment) float64 {
	total := 0.0
	for _, p := range positions {
		if p.Status == domain.InvestmentActive {
			total += p.DailyReturn
		}
	}
	return total
}

// InvestedCapital sums capital tied up in active investments
func InvestedCapital(positions []Investment) float64 {
	total := 0.0
	for _, p := range positions {
		if p.Status == domain.InvestmentActive {
			total += p.Amount
		}
	}
	return total
}

// PassiveHourlyRate sums hourly rates over active sources
func PassiveHourlyRate(sources []PassiveIncome) float64 {
	total := 0.0
	for _, s := range sources {
		if s.IsActive {
			total += s.AmountPerHour
		}
	}
	return total
}

// Summarize derives the portfolio view. Pure; empty slices yield zeros.
func Summarize(positions []Investment, sources []PassiveIncome) PortfolioSummary {
	summary := PortfolioSummary{
		TotalInvested:    len(positions),
		InvestedCapital:  InvestedCapital(positions),
		DailyReturnTotal: TotalDailyReturn(positions),
		PassiveHourly:    PassiveHourlyRate(sources),
	}

	for _, p := range positions {
		if p.Status == domain.InvestmentActive {
			summary.ActiveCount++
		}
	}
	for _, s := range sources {
		if s.IsActive {
			summary.PassiveSources++
		}
	}

	summary.PassiveDaily = summary.PassiveHourly * hoursPerDay
	return summary
}
