package calculator

import (
	"math"

	"StockronAnalyzer/internal/model"
)

// CalculateATR computes the average true range over the given window.
// True range per bar is max(|high-low|, |high-prevClose|, |low-prevClose|);
// the first bar has no prior close, so its true range is just high-low.
// The rolling mean uses the same minimum-period relaxation as the SMA.
func CalculateATR(bars []model.OHLCV, window int) []float64 {
	tr := make([]float64, len(bars))
	for i, b := range bars {
		hl := math.Abs(b.High - b.Low)
		if i == 0 {
			tr[i] = hl
			continue
		}
		pc := bars[i-1].Close
		tr[i] = math.Max(hl, math.Max(math.Abs(b.High-pc), math.Abs(b.Low-pc)))
	}
	return CalculateSMA(tr, window)
}

// ATRFallback is the substitute volatility measure for series too short to
// produce a real ATR: 2% of the current price, floored at 0.05.
func ATRFallback(price float64) float64 {
	return math.Max(0.02*price, 0.05)
}
