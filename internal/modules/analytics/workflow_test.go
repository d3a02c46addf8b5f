package analytics

import (
	"testing"

	"github.com/undergrid/empire/internal/domain"
	"github.com/undergrid/empire/internal/modules/enterprises"
	"github.com/undergrid/empire/internal/modules/investments"
	"github.com/undergrid/empire/internal/modules/territories"
)

func TestDeriveWorkflowEnterpriseCategory(t *testing.T) {
	snap := Snapshot{
		Enterprises: []enterprises.Enterprise{
			{ProductionRate: 100, IsActive: true},
			{ProductionRate: 50, IsActive: false},
		},
	}

	got := DeriveWorkflow(snap)

	ent := got.Categories[0]
	if ent.Name != "enterprise_production" {
		t.Fatalf("first category = %s", ent.Name)
	}
	// One of two enterprises running
	if ent.Efficiency != 50 {
		t.Errorf("Efficiency = %v, want 50", ent.Efficiency)
	}
	// 100 units/h at 10 per unit over 24h, inactive rate excluded
	if ent.DailyTotal != 24000 {
		t.Errorf("DailyTotal = %v, want 24000", ent.DailyTotal)
	}
}

func TestDeriveWorkflowEmptySnapshot(t *testing.T) {
	got := DeriveWorkflow(Snapshot{})

	if got.DailyTotal != 0 || got.ProjectedWeekly != 0 {
		t.Errorf("totals = %v / %v, want 0 / 0", got.DailyTotal, got.ProjectedWeekly)
	}
	for _, c := range got.Categories {
		if c.Efficiency != 0 {
			t.Errorf("%s efficiency = %v, want 0 on empty snapshot", c.Name, c.Efficiency)
		}
	}
}

func TestDeriveWorkflowGrandTotal(t *testing.T) {
	rate, value := 5.0, 100000.0
	snap := Snapshot{
		Enterprises: []enterprises.Enterprise{{ProductionRate: 10, IsActive: true}}, // 2400
		Territories: []territories.Territory{{TaxRate: &rate, Value: &value}},       // 5000
		Investments: []investments.Investment{
			{DailyReturn: 600, Status: domain.InvestmentActive}, // 600
		},
		Passive: []investments.PassiveIncome{{AmountPerHour: 25, IsActive: true}}, // 600
	}

	got := DeriveWorkflow(snap)

	if got.DailyTotal != 8600 {
		t.Errorf("DailyTotal = %v, want 8600", got.DailyTotal)
	}
	if got.ProjectedWeekly != 60200 {
		t.Errorf("ProjectedWeekly = %v, want 60200", got.ProjectedWeekly)
	}
}

func TestDeriveWorkflowIdempotent(t *testing.T) {
	snap := Snapshot{
		Enterprises: []enterprises.Enterprise{{ProductionRate: 10, IsActive: true}},
		Passive:     []investments.PassiveIncome{{AmountPerHour: 5, IsActive: true}},
	}

	first := DeriveWorkflow(snap)
	second := DeriveWorkflow(snap)

	if first.DailyTotal != second.DailyTotal || first.ProjectedWeekly != second.ProjectedWeekly {
		t.Errorf("workflow summary not stable: %+v vs %+v", first, second)
	}
	for i := range first.Categories {
		if first.Categories[i] != second.Categories[i] {
			t.Errorf("category %d differs between runs", i)
		}
	}
}
