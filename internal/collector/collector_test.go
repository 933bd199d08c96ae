package collector

import (
	"errors"
	"testing"
	"time"

	"StockronAnalyzer/internal/model"
)

func TestCollect_FullHistory(t *testing.T) {
	c := NewCollector(&MockFetcher{Price: 100})
	ind, err := c.Collect("AAPL", model.Timeframe6mo, 50, 14)
	if err != nil {
		t.Fatalf("Collect: %v", err)
	}
	if ind.CurrentPrice <= 0 {
		t.Errorf("price = %v", ind.CurrentPrice)
	}
	if !ind.SMADefined {
		t.Error("120 bars should produce a real SMA50")
	}
	if ind.SMAWindow != 50 || ind.ATRWindow != 14 {
		t.Errorf("windows not carried: %d/%d", ind.SMAWindow, ind.ATRWindow)
	}
	if ind.ATR <= 0 {
		t.Errorf("ATR = %v", ind.ATR)
	}
	if ind.RSI < 0 || ind.RSI > 100 {
		t.Errorf("RSI out of bounds: %v", ind.RSI)
	}
}

func TestCollect_ShortHistoryFallsBack(t *testing.T) {
	bars := GenerateMockBars(200, 3)
	c := NewCollector(&MockFetcher{Bars: bars})
	ind, err := c.Collect("NEWIPO", model.Timeframe6mo, 50, 14)
	if err != nil {
		t.Fatalf("short history must degrade, not fail: %v", err)
	}
	if ind.SMADefined {
		t.Error("3 bars cannot produce a real SMA50")
	}
	if ind.SMA != ind.CurrentPrice {
		t.Errorf("SMA fallback should be the current price, got %v vs %v", ind.SMA, ind.CurrentPrice)
	}
	want := 0.02 * ind.CurrentPrice
	if ind.ATR != want {
		t.Errorf("ATR fallback = %v, want %v", ind.ATR, want)
	}
}

func TestCollect_ProviderFailure(t *testing.T) {
	c := NewCollector(&MockFetcher{BarsErr: errors.New("timeout")})
	if _, err := c.Collect("AAPL", model.Timeframe6mo, 50, 14); err == nil {
		t.Fatal("provider failure must surface")
	}
}

func TestCollect_EmptySeries(t *testing.T) {
	c := NewCollector(&MockFetcher{Bars: []model.OHLCV{}})
	if _, err := c.Collect("AAPL", model.Timeframe6mo, 50, 14); err == nil {
		t.Fatal("empty series must surface as an error")
	}
}

func TestCollect_ZeroPrice(t *testing.T) {
	bars := []model.OHLCV{{Time: time.Now(), Close: 0}}
	c := NewCollector(&MockFetcher{Bars: bars})
	if _, err := c.Collect("AAPL", model.Timeframe6mo, 50, 14); err == nil {
		t.Fatal("zero closing price is not a resolvable price")
	}
}

func TestNormalizeTimeframe(t *testing.T) {
	if model.NormalizeTimeframe("1y") != model.Timeframe1y {
		t.Error("1y should pass through")
	}
	for _, s := range []string{"", "7mo", "max"} {
		if model.NormalizeTimeframe(s) != model.DefaultTimeframe {
			t.Errorf("%q should fall back to the default timeframe", s)
		}
	}
}
