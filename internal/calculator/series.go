package calculator

import (
	"math"

	"StockronAnalyzer/internal/model"
)

// Undefined positions in an indicator series are marked with NaN so that
// output length always equals input length.

// MinPeriods returns the relaxed minimum number of bars a rolling window
// needs before producing a value: half the window rounded up, never below
// 2, never above the window itself.
func MinPeriods(window int) int {
	m := (window + 1) / 2
	if m < 2 {
		m = 2
	}
	if m > window {
		m = window
	}
	return m
}

// LastValid returns the most recent defined value in an indicator series.
func LastValid(series []float64) (float64, bool) {
	for i := len(series) - 1; i >= 0; i-- {
		if !math.IsNaN(series[i]) {
			return series[i], true
		}
	}
	return 0, false
}

// Closes extracts the close column from a bar series.
func Closes(bars []model.OHLCV) []float64 {
	closes := make([]float64, len(bars))
	for i, b := range bars {
		closes[i] = b.Close
	}
	return closes
}

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}
