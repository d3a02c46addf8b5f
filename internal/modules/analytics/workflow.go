package analytics

import (
	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/modules/enterprises"
	"github.com/undergrid/empire/internal/modules/investments"
	"github.com/undergrid/empire/internal/modules/territories"
	"github.com/undergrid/empire/pkg/formulas"
)

// Snapshot is the set of collections the workflow summary derives from
type Snapshot struct {
	Enterprises []enterprises.Enterprise
	Territories []territories.Territory
	Investments []investments.Investment
	Passive     []investments.PassiveIncome
}

// DeriveWorkflow computes the automated-income dashboard from a snapshot.
// Pure: the same snapshot always yields the same summary, and empty
// collections report 0% efficiency rather than NaN.
func DeriveWorkflow(snap Snapshot) WorkflowSummary {
	categories := []CategoryReport{
		enterpriseCategory(snap.Enterprises),
		territoryCategory(snap.Territories),
		investmentCategory(snap.Investments),
		passiveCategory(snap.Passive),
	}

	total := 0.0
	for _, c := range categories {
		total += c.DailyTotal
	}

	return WorkflowSummary{
		Categories:      categories,
		DailyTotal:      total,
		ProjectedWeekly: total * 7,
	}
}

func enterpriseCategory(list []enterprises.Enterprise) CategoryReport {
	active := 0
	for _, e := range list {
		if e.IsActive {
			active++
		}
	}
	return category("enterprise_production", active, len(list), enterprises.DailyIncome(list))
}

func territoryCategory(list []territories.Territory) CategoryReport {
	// Contested territories still tax, but count against efficiency
	active := 0
	for _, t := range list {
		if !t.IsContested {
			active++
		}
	}
	return category("territory_tax", active, len(list), territories.TaxIncome(list))
}

func investmentCategory(list []investments.Investment) CategoryReport {
	active := 0
	for _, inv := range list {
		if inv.Status == domain.InvestmentActive {
			active++
		}
	}
	return category("investment_returns", active, len(list), investments.TotalDailyReturn(list))
}

func passiveCategory(list []investments.PassiveIncome) CategoryReport {
	active := 0
	for _, src := range list {
		if src.IsActive {
			active++
		}
	}
	return category("passive_income", active, len(list), investments.PassiveHourlyRate(list)*24)
}

func category(name string, active, total int, daily float64) CategoryReport {
	return CategoryReport{
		Name:       name,
		Active:     active,
		Total:      total,
		Efficiency: formulas.SafeRatio(float64(active), float64(total)) * 100,
		DailyTotal: daily,
	}
}
