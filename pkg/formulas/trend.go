package formulas

import (
	"github.com/markcheno/go-talib"
)

// Trend classifies the direction of a price series
type Trend string

const (
	TrendRising  Trend = "rising"
	TrendFalling Trend = "falling"
	TrendStable  Trend = "stable"
)

// Thresholds for SMA-relative trend classification. A closing price more
// than 2% above its moving average counts as rising, more than 2% below
// as falling.
const (
	trendUpperBand = 1.02
	trendLowerBand = 0.98
)

// TrendFromCloses classifies the trend of a close-price series against its
// simple moving average over the given period. Series shorter than the
// period are considered stable.
func TrendFromCloses(closes []float64, period int) Trend {
	if len(closes) < period || period < 1 {
		return TrendStable
	}

	sma := talib.Sma(closes, period)
	last := closes[len(closes)-1]
	avg := sma[len(sma)-1]

	if avg == 0 || isNaN(avg) {
		return TrendStable
	}

	switch {
	case last > avg*trendUpperBand:
		return TrendRising
	case last < avg*trendLowerBand:
		return TrendFalling
	default:
		return TrendStable
	}
}

// RSI calculates the Relative Strength Index for a close-price series
//
// RSI Formula:
//
//	RSI = 100 - (100 / (1 + RS))
//	where RS = Average Gain / Average Loss over N periods
//
// Returns the current RSI value (0-100) or nil if there is insufficient data.
func RSI(closes []float64, length int) *float64 {
	if len(closes) < length+1 {
		return nil
	}

	rsi := talib.Rsi(closes, length)

	if len(rsi) > 0 && !isNaN(rsi[len(rsi)-1]) {
		result := rsi[len(rsi)-1]
		return &result
	}

	return nil
}

// isNaN checks if a float64 is NaN
func isNaN(f float64) bool {
	return f != f
}
