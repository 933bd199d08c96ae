package collector

import (
	"fmt"
	"log"
	"time"

	"StockronAnalyzer/internal/calculator"
	"StockronAnalyzer/internal/model"
)

// MockFetcher returns controllable fixed data for development and testing.
type MockFetcher struct {
	Price float64
	Bars  []model.OHLCV
	Bag   *model.FundamentalsBag

	BarsErr error
	BagErr  error

	BarsCalls int
	BagCalls  int
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchDailyBars(_ string, _ model.Timeframe) ([]model.OHLCV, error) {
	m.BarsCalls++
	if m.BarsErr != nil {
		return nil, m.BarsErr
	}
	if m.Bars != nil {
		return m.Bars, nil
	}
	return GenerateMockBars(m.Price, 120), nil
}

func (m *MockFetcher) FetchFundamentals(_ string) (*model.FundamentalsBag, error) {
	m.BagCalls++
	if m.BagErr != nil {
		return nil, m.BagErr
	}
	return m.Bag, nil
}

// GenerateMockBars produces a gently trending series around basePrice.
func GenerateMockBars(basePrice float64, count int) []model.OHLCV {
	bars := make([]model.OHLCV, count)
	for i := 0; i < count; i++ {
		p := basePrice * (1 + float64(i-count/2)*0.001)
		bars[i] = model.OHLCV{
			Time:   time.Now().AddDate(0, 0, -(count - i)),
			Open:   p * 0.999,
			High:   p * 1.005,
			Low:    p * 0.995,
			Close:  p,
			Volume: 1000000,
		}
	}
	return bars
}

// Collector orchestrates price fetching and indicator computation.
type Collector struct {
	Fetcher Fetcher
}

// NewCollector creates a new Collector.
func NewCollector(fetcher Fetcher) *Collector {
	return &Collector{Fetcher: fetcher}
}

// Collect fetches daily bars and computes the style's indicators. It fails
// only when no price is resolvable; a short history degrades to documented
// fallbacks instead.
func (c *Collector) Collect(symbol string, timeframe model.Timeframe, smaWindow, atrWindow int) (*model.MarketIndicators, error) {
	bars, err := c.Fetcher.FetchDailyBars(symbol, timeframe)
	if err != nil {
		return nil, fmt.Errorf("fetch daily bars: %w", err)
	}
	if len(bars) == 0 {
		return nil, fmt.Errorf("no bars returned for %s", symbol)
	}
	price := bars[len(bars)-1].Close
	if price <= 0 {
		return nil, fmt.Errorf("no resolvable price for %s", symbol)
	}

	ind := &model.MarketIndicators{
		CurrentPrice: price,
		SMAWindow:    smaWindow,
		ATRWindow:    atrWindow,
	}
	closes := calculator.Closes(bars)

	if sma, ok := calculator.LastValid(calculator.CalculateSMA(closes, smaWindow)); ok {
		ind.SMA = sma
		ind.SMADefined = true
	} else {
		log.Printf("[WARN] SMA%d unavailable for %s (%d bars), using current price", smaWindow, symbol, len(bars))
		ind.SMA = price
	}

	if atr, ok := calculator.LastValid(calculator.CalculateATR(bars, atrWindow)); ok {
		ind.ATR = atr
	} else {
		log.Printf("[WARN] ATR%d unavailable for %s, using volatility fallback", atrWindow, symbol)
		ind.ATR = calculator.ATRFallback(price)
	}

	if rsi, ok := calculator.LastValid(calculator.CalculateRSI(closes, 14)); ok {
		ind.RSI = rsi
	} else {
		ind.RSI = 50
	}

	return ind, nil
}

// CollectFundamentals fetches the raw fundamentals bag. Callers treat a
// failure as partial data, not a fatal error.
func (c *Collector) CollectFundamentals(symbol string) (*model.FundamentalsBag, error) {
	bag, err := c.Fetcher.FetchFundamentals(symbol)
	if err != nil {
		return nil, fmt.Errorf("fetch fundamentals: %w", err)
	}
	return bag, nil
}
