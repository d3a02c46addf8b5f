package territories

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestTaxIncomeDefaults(t *testing.T) {
	tests := []struct {
		name string
		list []Territory
		want float64
	}{
		{
			name: "explicit fields",
			list: []Territory{
				{TaxRate: floatPtr(5), Value: floatPtr(100000)}, // 5% of 100k = 5000
			},
			want: 5000,
		},
		{
			name: "missing tax rate falls back to 2",
			list: []Territory{
				{Value: floatPtr(100000)}, // 2% of 100k = 2000
			},
			want: 2000,
		},
		{
			name: "missing value falls back to 50000",
			list: []Territory{
				{TaxRate: floatPtr(4)}, // 4% of 50k = 2000
			},
			want: 2000,
		},
		{
			name: "both missing",
			list: []Territory{
				{}, // 2% of 50k = 1000
			},
			want: 1000,
		},
		{
			name: "empty snapshot",
			list: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TaxIncome(tt.list); got != tt.want {
				t.Errorf("TaxIncome = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageControlEmpty(t *testing.T) {
	if got := AverageControl(nil); got != 0 {
		t.Errorf("AverageControl(nil) = %v, want 0", got)
	}
}

func TestSummarize(t *testing.T) {
	list := []Territory{
		{ControlPercentage: 80, DefenseRating: 50, IsContested: true},
		{ControlPercentage: 40, DefenseRating: 30},
	}

	summary := Summarize(list)

	if summary.Total != 2 || summary.Contested != 1 {
		t.Errorf("counts = %d/%d, want 2/1", summary.Total, summary.Contested)
	}
	if summary.AverageControl != 60 {
		t.Errorf("AverageControl = %v, want 60", summary.AverageControl)
	}
	if summary.AverageDefense != 40 {
		t.Errorf("AverageDefense = %v, want 40", summary.AverageDefense)
	}
	// Two territories with default 50k value
	if summary.TotalValue != 100000 {
		t.Errorf("TotalValue = %v, want 100000", summary.TotalValue)
	}
	// 2 x (2% of 50k)
	if summary.DailyTaxIncome != 2000 {
		t.Errorf("DailyTaxIncome = %v, want 2000", summary.DailyTaxIncome)
	}
}

func TestUpgradeCostScalesWithTier(t *testing.T) {
	if got := UpgradeCost(1); got != 5000 {
		t.Errorf("UpgradeCost(1) = %v, want 5000", got)
	}
	if got := UpgradeCost(3); got != 15000 {
		t.Errorf("UpgradeCost(3) = %v, want 15000", got)
	}
	if got := UpgradeCost(0); got != 5000 {
		t.Errorf("UpgradeCost(0) = %v, want 5000 (clamped to tier 1)", got)
	}
}
