package calculator

import (
	"math"
	"testing"
	"time"

	"StockronAnalyzer/internal/model"
)

func TestMinPeriods(t *testing.T) {
	tests := []struct {
		window, want int
	}{
		{1, 1},
		{2, 2},
		{3, 2},
		{4, 2},
		{14, 7},
		{20, 10},
		{50, 25},
		{200, 100},
	}
	for _, tt := range tests {
		if got := MinPeriods(tt.window); got != tt.want {
			t.Errorf("MinPeriods(%d) = %d, want %d", tt.window, got, tt.want)
		}
	}
}

func TestCalculateSMA(t *testing.T) {
	got := CalculateSMA([]float64{1, 2, 3, 4, 5}, 3)
	if len(got) != 5 {
		t.Fatalf("expected output length 5, got %d", len(got))
	}
	if !math.IsNaN(got[0]) {
		t.Errorf("position 0 should be undefined, got %v", got[0])
	}
	want := []float64{math.NaN(), 1.5, 2, 3, 4}
	for i := 1; i < 5; i++ {
		if math.Abs(got[i]-want[i]) > 1e-9 {
			t.Errorf("position %d: got %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCalculateSMA_ShortSeries(t *testing.T) {
	// One bar can never satisfy the floor of 2 minimum periods.
	got := CalculateSMA([]float64{10}, 50)
	if !math.IsNaN(got[0]) {
		t.Errorf("single bar should be undefined, got %v", got[0])
	}
	if _, ok := LastValid(got); ok {
		t.Error("expected no valid SMA for a single bar")
	}
}

func TestCalculateATR(t *testing.T) {
	day := func(i int) time.Time { return time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i) }
	bars := []model.OHLCV{
		{Time: day(0), High: 12, Low: 8, Close: 10},
		{Time: day(1), High: 11, Low: 9, Close: 10},  // TR = max(2, 1, 1) = 2
		{Time: day(2), High: 15, Low: 10, Close: 14}, // TR = max(5, 5, 0) = 5
	}
	got := CalculateATR(bars, 2)
	if !math.IsNaN(got[0]) {
		t.Errorf("first ATR position should be undefined, got %v", got[0])
	}
	// Window 2, minimum periods 2: mean of the last two true ranges.
	if math.Abs(got[1]-3) > 1e-9 { // (4+2)/2
		t.Errorf("ATR[1] = %v, want 3", got[1])
	}
	if math.Abs(got[2]-3.5) > 1e-9 { // (2+5)/2
		t.Errorf("ATR[2] = %v, want 3.5", got[2])
	}
}

func TestATRFallback(t *testing.T) {
	if got := ATRFallback(100); got != 2.0 {
		t.Errorf("ATRFallback(100) = %v, want 2", got)
	}
	if got := ATRFallback(1); got != 0.05 {
		t.Errorf("ATRFallback(1) = %v, want 0.05 floor", got)
	}
}

func TestCalculateRSI_Bounds(t *testing.T) {
	up := make([]float64, 30)
	down := make([]float64, 30)
	for i := range up {
		up[i] = 100 + float64(i)
		down[i] = 100 - float64(i)
	}

	rsiUp := CalculateRSI(up, 14)
	if !math.IsNaN(rsiUp[0]) {
		t.Errorf("first RSI position should be undefined, got %v", rsiUp[0])
	}
	last, ok := LastValid(rsiUp)
	if !ok || last < 99 {
		t.Errorf("all-gains series should push RSI toward 100, got %v", last)
	}

	rsiDown := CalculateRSI(down, 14)
	last, ok = LastValid(rsiDown)
	if !ok || last > 1 {
		t.Errorf("all-losses series should push RSI toward 0, got %v", last)
	}

	for i := 1; i < len(rsiUp); i++ {
		if rsiUp[i] < 0 || rsiUp[i] > 100 {
			t.Fatalf("RSI out of bounds at %d: %v", i, rsiUp[i])
		}
	}
}

func TestCalculateRSI_FlatSeries(t *testing.T) {
	flat := []float64{50, 50, 50, 50, 50}
	got := CalculateRSI(flat, 14)
	// No gains, no losses: RS = 0/epsilon = 0, RSI = 0.
	for i := 1; i < len(got); i++ {
		if got[i] != 0 {
			t.Errorf("flat series RSI[%d] = %v, want 0", i, got[i])
		}
	}
}

func TestLastValid(t *testing.T) {
	series := []float64{math.NaN(), 2, math.NaN()}
	v, ok := LastValid(series)
	if !ok || v != 2 {
		t.Errorf("LastValid = (%v, %v), want (2, true)", v, ok)
	}
	if _, ok := LastValid([]float64{math.NaN()}); ok {
		t.Error("expected no valid value in all-NaN series")
	}
}
