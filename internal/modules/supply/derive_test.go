package supply

import (
	"testing"

	"github.com/undergrid/empire/internal/domain"
)

func TestWeeklyProfitExcludesBlocked(t *testing.T) {
	chains := []Chain{
		{WeeklyVolume: 100, ProfitPerUnit: 10, Efficiency: 100, DisruptionStatus: domain.ChainOperational}, // 1000
		{WeeklyVolume: 100, ProfitPerUnit: 10, Efficiency: 50, DisruptionStatus: domain.ChainDisrupted},    // 500
		{WeeklyVolume: 100, ProfitPerUnit: 10, Efficiency: 50, DisruptionStatus: domain.ChainBlocked},      // 0
	}

	if got := WeeklyProfit(chains); got != 1500 {
		t.Errorf("WeeklyProfit = %v, want 1500", got)
	}
}

func TestWeeklyProfitEmptySnapshot(t *testing.T) {
	if got := WeeklyProfit(nil); got != 0 {
		t.Errorf("WeeklyProfit(nil) = %v, want 0", got)
	}
}

func TestWeeklyProfitScalesByEfficiency(t *testing.T) {
	chains := []Chain{
		{WeeklyVolume: 200, ProfitPerUnit: 5, Efficiency: 75, DisruptionStatus: domain.ChainOperational},
	}

	if got := WeeklyProfit(chains); got != 750 {
		t.Errorf("WeeklyProfit = %v, want 750", got)
	}
}

func TestClassifyRiskBoundaries(t *testing.T) {
	tests := []struct {
		score float64
		want  RiskLevel
	}{
		{0, RiskLow},
		{29.9, RiskLow},
		{30, RiskMedium}, // lower bound inclusive
		{69.9, RiskMedium},
		{70, RiskHigh},
		{100, RiskHigh},
	}

	for _, tt := range tests {
		if got := ClassifyRisk(tt.score); got != tt.want {
			t.Errorf("ClassifyRisk(%v) = %v, want %v", tt.score, got, tt.want)
		}
	}
}

func TestApplyDisruptionCapsEfficiency(t *testing.T) {
	tests := []struct {
		name           string
		efficiency     float64
		wantEfficiency float64
	}{
		{"full efficiency capped to 50", 100, 50},
		{"already below cap untouched", 35, 35},
		{"exactly at cap untouched", 50, 50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := applyDisruption(Chain{Efficiency: tt.efficiency, DisruptionStatus: domain.ChainOperational})

			if c.DisruptionStatus != domain.ChainDisrupted {
				t.Errorf("status = %v, want disrupted", c.DisruptionStatus)
			}
			if c.Efficiency != tt.wantEfficiency {
				t.Errorf("efficiency = %v, want %v", c.Efficiency, tt.wantEfficiency)
			}
		})
	}
}

func TestApplyRestoreResetsEfficiency(t *testing.T) {
	c := applyRestore(Chain{Efficiency: 35, DisruptionStatus: domain.ChainBlocked})

	if c.DisruptionStatus != domain.ChainOperational {
		t.Errorf("status = %v, want operational", c.DisruptionStatus)
	}
	if c.Efficiency != 100 {
		t.Errorf("efficiency = %v, want 100", c.Efficiency)
	}
}

func TestSummarize(t *testing.T) {
	chains := []Chain{
		{WeeklyVolume: 100, ProfitPerUnit: 10, Efficiency: 100, RiskScore: 10, DisruptionStatus: domain.ChainOperational},
		{WeeklyVolume: 100, ProfitPerUnit: 10, Efficiency: 50, RiskScore: 45, DisruptionStatus: domain.ChainDisrupted},
		{WeeklyVolume: 100, ProfitPerUnit: 10, Efficiency: 50, RiskScore: 90, DisruptionStatus: domain.ChainBlocked},
	}

	summary := Summarize(chains)

	if summary.Total != 3 || summary.Operational != 1 || summary.Disrupted != 1 || summary.Blocked != 1 {
		t.Errorf("status counts wrong: %+v", summary)
	}
	if summary.WeeklyProfit != 1500 {
		t.Errorf("WeeklyProfit = %v, want 1500", summary.WeeklyProfit)
	}
	if summary.Risk.Low != 1 || summary.Risk.Medium != 1 || summary.Risk.High != 1 {
		t.Errorf("risk distribution wrong: %+v", summary.Risk)
	}
}
