package collector

import "StockronAnalyzer/internal/model"

// Fetcher defines the interface for the external market-data provider.
// Implementations do not retry: a failure or empty result surfaces
// immediately.
type Fetcher interface {
	FetchDailyBars(symbol string, timeframe model.Timeframe) ([]model.OHLCV, error)
	FetchFundamentals(symbol string) (*model.FundamentalsBag, error)
	Name() string
}
