package model

import "time"

// OHLCV represents a single candlestick bar.
type OHLCV struct {
	Time   time.Time
	Open   float64
	High   float64
	Low    float64
	Close  float64
	Volume float64
}

// Timeframe is a supported lookback window for daily price history.
type Timeframe string

const (
	Timeframe1mo Timeframe = "1mo"
	Timeframe3mo Timeframe = "3mo"
	Timeframe6mo Timeframe = "6mo"
	Timeframe1y  Timeframe = "1y"
	Timeframe2y  Timeframe = "2y"
)

// DefaultTimeframe is used when a request omits the timeframe.
const DefaultTimeframe = Timeframe6mo

// NormalizeTimeframe maps an arbitrary string onto a supported Timeframe,
// falling back to the default for anything unrecognized.
func NormalizeTimeframe(s string) Timeframe {
	switch Timeframe(s) {
	case Timeframe1mo, Timeframe3mo, Timeframe6mo, Timeframe1y, Timeframe2y:
		return Timeframe(s)
	default:
		return DefaultTimeframe
	}
}

// FundamentalsBag is the raw, untrusted key/value payload from the data
// provider, plus the descriptive fields that ride along with it. Field
// values may be numbers, formatted strings, or garbage; only the numeric
// normalizer is allowed to interpret them.
type FundamentalsBag struct {
	CompanyName string
	Sector      string
	Fields      map[string]any
}
