package formulas

import (
	"math"
	"testing"
)

func TestSafeAverageEmptyInput(t *testing.T) {
	result := SafeAverage([]float64{})
	if result != 0 {
		t.Errorf("SafeAverage of empty slice = %v, want 0", result)
	}
	if math.IsNaN(result) {
		t.Error("SafeAverage of empty slice must never be NaN")
	}
}

func TestSafeRatio(t *testing.T) {
	tests := []struct {
		name        string
		numerator   float64
		denominator float64
		want        float64
	}{
		{"normal division", 10, 4, 2.5},
		{"zero denominator", 10, 0, 0},
		{"zero numerator", 0, 5, 0},
		{"both zero", 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SafeRatio(tt.numerator, tt.denominator); got != tt.want {
				t.Errorf("SafeRatio(%v, %v) = %v, want %v", tt.numerator, tt.denominator, got, tt.want)
			}
		})
	}
}

func TestClampPercent(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"within range", 55, 55},
		{"below zero", -12, 0},
		{"above hundred", 140, 100},
		{"exact boundary low", 0, 0},
		{"exact boundary high", 100, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampPercent(tt.v); got != tt.want {
				t.Errorf("ClampPercent(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestCalculateReturns(t *testing.T) {
	prices := []float64{100, 110, 99}
	returns := CalculateReturns(prices)

	if len(returns) != 2 {
		t.Fatalf("expected 2 returns, got %d", len(returns))
	}
	if math.Abs(returns[0]-0.10) > 1e-9 {
		t.Errorf("returns[0] = %v, want 0.10", returns[0])
	}
	if math.Abs(returns[1]-(-0.10)) > 1e-9 {
		t.Errorf("returns[1] = %v, want -0.10", returns[1])
	}
}

func TestCalculateReturnsShortSeries(t *testing.T) {
	if got := CalculateReturns([]float64{42}); len(got) != 0 {
		t.Errorf("expected empty returns for single price, got %v", got)
	}
}

func TestMomentum(t *testing.T) {
	prices := []float64{100, 105, 110, 120}

	m := Momentum(prices, 3)
	if m == nil {
		t.Fatal("expected momentum value, got nil")
	}
	if math.Abs(*m-0.20) > 1e-9 {
		t.Errorf("momentum = %v, want 0.20", *m)
	}

	if Momentum(prices, 10) != nil {
		t.Error("expected nil momentum for insufficient data")
	}
}

func TestTrendFromCloses(t *testing.T) {
	tests := []struct {
		name   string
		closes []float64
		period int
		want   Trend
	}{
		{
			name:   "rising series",
			closes: []float64{100, 100, 100, 100, 120},
			period: 5,
			want:   TrendRising,
		},
		{
			name:   "falling series",
			closes: []float64{100, 100, 100, 100, 80},
			period: 5,
			want:   TrendFalling,
		},
		{
			name:   "flat series",
			closes: []float64{100, 100, 100, 100, 100},
			period: 5,
			want:   TrendStable,
		},
		{
			name:   "too short",
			closes: []float64{100, 101},
			period: 5,
			want:   TrendStable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TrendFromCloses(tt.closes, tt.period); got != tt.want {
				t.Errorf("TrendFromCloses() = %v, want %v", got, tt.want)
			}
		})
	}
}
