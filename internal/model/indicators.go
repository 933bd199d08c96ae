package model

// MarketIndicators holds the technical indicators computed for one request.
// SMA and ATR carry fallback values when history is too short; SMADefined
// records whether SMA came from real data, because the sell-signal rule
// must not fire on a substituted value.
type MarketIndicators struct {
	CurrentPrice float64
	SMA          float64
	SMAWindow    int
	SMADefined   bool
	ATR          float64
	ATRWindow    int
	RSI          float64
}
