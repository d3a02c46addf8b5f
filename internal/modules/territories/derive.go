package territories

import (
	"github.com/undergrid/empire/pkg/formulas"
)

// effectiveTaxRate returns the record's tax rate or the default
func effectiveTaxRate(t Territory) float64 {
	if t.TaxRate != nil {
		return *t.TaxRate
	}
	return DefaultTaxRate
}

// effectiveValue returns the record's value or the default
func effectiveValue(t Territory) float64 {
	if t.Value != nil {
		return *t.Value
	}
	return DefaultValue
}

// TaxIncome sums daily territory tax: rate percent applied to value
func TaxIncome(list []Territory) float64 {
	total := 0.0
	for _, t := range list {
		total += effectiveTaxRate(t) * effectiveValue(t) / 100
	}
	return total
}

// AverageControl averages control percentages; empty input yields 0
func AverageControl(list []Territory) float64 {
	if len(list) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range list {
		total += t.ControlPercentage
	}
	return total / float64(len(list))
}

// AverageDefense averages defense ratings; empty input yields 0
func AverageDefense(list []Territory) float64 {
	if len(list) == 0 {
		return 0
	}
	total := 0.0
	for _, t := range list {
		total += t.DefenseRating
	}
	return total / float64(len(list))
}

// TotalValue sums effective territory values
func TotalValue(list []Territory) float64 {
	total := 0.0
	for _, t := range list {
		total += effectiveValue(t)
	}
	return total
}

// Summarize derives the full metric set for a snapshot
func Summarize(list []Territory) Summary {
	contested := 0
	for _, t := range list {
		if t.IsContested {
			contested++
		}
	}

	return Summary{
		Total:          len(list),
		Contested:      contested,
		DailyTaxIncome: formulas.RoundTo(TaxIncome(list), 2),
		AverageControl: formulas.RoundTo(AverageControl(list), 2),
		AverageDefense: formulas.RoundTo(AverageDefense(list), 2),
		TotalValue:     formulas.RoundTo(TotalValue(list), 2),
	}
}
