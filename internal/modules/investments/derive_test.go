package investments

import (
	"testing"

	"github.com/undergrid/empire/internal/domain"
)

func TestTotalDailyReturnActiveOnly(t *testing.T) {
	positions := []Investment{
		{DailyReturn: 500, Status: domain.InvestmentActive},
		{DailyReturn: 300, Status: domain.InvestmentActive},
		{DailyReturn: 900, Status: domain.InvestmentMatured},
		{DailyReturn: 100, Status: domain.InvestmentLiquidated},
	}

	if got := TotalDailyReturn(positions); got != 800 {
		t.Errorf("TotalDailyReturn = %v, want 800", got)
	}
}

func TestTotalDailyReturnEmptySnapshot(t *testing.T) {
	if got := TotalDailyReturn(nil); got != 0 {
		t.Errorf("TotalDailyReturn(nil) = %v, want 0", got)
	}
}

func TestPassiveHourlyRateSkipsInactive(t *testing.T) {
	sources := []PassiveIncome{
		{AmountPerHour: 50, IsActive: true},
		{AmountPerHour: 25, IsActive: true},
		{AmountPerHour: 1000, IsActive: false},
	}

	if got := PassiveHourlyRate(sources); got != 75 {
		t.Errorf("PassiveHourlyRate = %v, want 75", got)
	}
}

func TestSummarize(t *testing.T) {
	positions := []Investment{
		{Amount: 10000, DailyReturn: 500, Status: domain.InvestmentActive},
		{Amount: 5000, DailyReturn: 250, Status: domain.InvestmentLiquidated},
	}
	sources := []PassiveIncome{
		{AmountPerHour: 100, IsActive: true},
		{AmountPerHour: 40, IsActive: false},
	}

	got := Summarize(positions, sources)

	if got.TotalInvested != 2 || got.ActiveCount != 1 {
		t.Errorf("counts = %d/%d, want 2/1", got.TotalInvested, got.ActiveCount)
	}
	if got.InvestedCapital != 10000 {
		t.Errorf("InvestedCapital = %v, want 10000", got.InvestedCapital)
	}
	if got.DailyReturnTotal != 500 {
		t.Errorf("DailyReturnTotal = %v, want 500", got.DailyReturnTotal)
	}
	if got.PassiveSources != 1 || got.PassiveHourly != 100 {
		t.Errorf("passive = %d sources at %v/h, want 1 at 100", got.PassiveSources, got.PassiveHourly)
	}
	if got.PassiveDaily != 2400 {
		t.Errorf("PassiveDaily = %v, want 2400", got.PassiveDaily)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	positions := []Investment{{Amount: 1000, DailyReturn: 50, Status: domain.InvestmentActive}}
	sources := []PassiveIncome{{AmountPerHour: 10, IsActive: true}}

	first := Summarize(positions, sources)
	second := Summarize(positions, sources)

	if first != second {
		t.Errorf("Summarize not stable: %+v vs %+v", first, second)
	}
}
