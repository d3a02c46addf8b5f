package analytics

import "testing"

func TestClassifyIntelRiskBoundaries(t *testing.T) {
	tests := []struct {
		level float64
		want  IntelRisk
	}{
		{0, RiskLow},
		{40, RiskLow}, // strict greater-than
		{41, RiskMedium},
		{60, RiskMedium},
		{80, RiskHigh}, // exactly 80 is high, not critical
		{81, RiskCritical},
		{100, RiskCritical},
	}

	for _, tt := range tests {
		if got := ClassifyIntelRisk(tt.level); got != tt.want {
			t.Errorf("ClassifyIntelRisk(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestClassifyLegacyBoundaries(t *testing.T) {
	tests := []struct {
		score    int
		wantRank int
		wantName string
	}{
		{0, 1, "Rising Criminal"},
		{999, 1, "Rising Criminal"},
		{1000, 2, "Established Boss"}, // boundary inclusive
		{4999, 2, "Established Boss"},
		{5000, 3, "Crime Lord"},
		{15000, 4, "Kingpin"},
		{50000, 5, "Underworld Legend"},
		{999999, 5, "Underworld Legend"},
	}

	for _, tt := range tests {
		got := ClassifyLegacy(tt.score)
		if got.Tier.Rank != tt.wantRank || got.Tier.Name != tt.wantName {
			t.Errorf("ClassifyLegacy(%d) = %s (rank %d), want %s (rank %d)",
				tt.score, got.Tier.Name, got.Tier.Rank, tt.wantName, tt.wantRank)
		}
	}
}

func TestClassifyLegacyProgress(t *testing.T) {
	// Halfway between Established Boss (1000) and Crime Lord (5000)
	got := ClassifyLegacy(3000)
	if got.Progress != 50 {
		t.Errorf("Progress = %v, want 50", got.Progress)
	}
	if got.NextTier == nil || got.NextTier.Name != "Crime Lord" {
		t.Errorf("NextTier = %+v, want Crime Lord", got.NextTier)
	}
}

func TestClassifyLegacyTopTierPegged(t *testing.T) {
	got := ClassifyLegacy(80000)
	if got.Progress != 100 {
		t.Errorf("Progress = %v, want 100", got.Progress)
	}
	if got.NextTier != nil {
		t.Errorf("NextTier = %+v, want nil at top tier", got.NextTier)
	}
}
