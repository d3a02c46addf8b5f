package enterprises

import "testing"

func TestTotalProductionSkipsInactive(t *testing.T) {
	list := []Enterprise{
		{ProductionRate: 100, IsActive: true},
		{ProductionRate: 50, IsActive: false},
	}

	if got := TotalProduction(list); got != 100 {
		t.Errorf("TotalProduction = %v, want 100", got)
	}
}

func TestDailyIncomeProjection(t *testing.T) {
	// 100 units/hour x 10 per unit x 24 hours = 24000
	list := []Enterprise{
		{ProductionRate: 100, IsActive: true},
		{ProductionRate: 50, IsActive: false},
	}

	if got := DailyIncome(list); got != 24000 {
		t.Errorf("DailyIncome = %v, want 24000", got)
	}
}

func TestAverageHeatEmptySnapshot(t *testing.T) {
	if got := AverageHeat(nil); got != 0 {
		t.Errorf("AverageHeat(nil) = %v, want 0", got)
	}
}

func TestCapacityUtilization(t *testing.T) {
	tests := []struct {
		name string
		list []Enterprise
		want float64
	}{
		{
			name: "half full",
			list: []Enterprise{
				{CurrentStock: 50, StorageCapacity: 100},
				{CurrentStock: 25, StorageCapacity: 50},
			},
			want: 50,
		},
		{
			name: "zero capacity",
			list: []Enterprise{{CurrentStock: 0, StorageCapacity: 0}},
			want: 0,
		},
		{
			name: "empty snapshot",
			list: nil,
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CapacityUtilization(tt.list); got != tt.want {
				t.Errorf("CapacityUtilization = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	list := []Enterprise{
		{ProductionRate: 100, IsActive: true, HeatLevel: 20, TotalRevenue: 5000},
		{ProductionRate: 50, IsActive: false, HeatLevel: 40, TotalRevenue: 1000},
	}

	summary := Summarize(list)

	if summary.Total != 2 || summary.Active != 1 {
		t.Errorf("counts = %d/%d, want 2/1", summary.Total, summary.Active)
	}
	if summary.DailyIncome != 24000 {
		t.Errorf("DailyIncome = %v, want 24000", summary.DailyIncome)
	}
	if summary.AverageHeat != 30 {
		t.Errorf("AverageHeat = %v, want 30", summary.AverageHeat)
	}
	if summary.TotalRevenue != 6000 {
		t.Errorf("TotalRevenue = %v, want 6000", summary.TotalRevenue)
	}
}

func TestSummarizeIdempotent(t *testing.T) {
	list := []Enterprise{
		{ProductionRate: 33, IsActive: true, HeatLevel: 11.5, CurrentStock: 7, StorageCapacity: 21},
	}

	first := Summarize(list)
	second := Summarize(list)

	if first != second {
		t.Errorf("Summarize not idempotent: %+v != %+v", first, second)
	}
}
