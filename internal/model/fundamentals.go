package model

// FundamentalsSnapshot is the canonical, normalized view of a security's
// fundamentals. Every field is always present in the JSON encoding; a nil
// pointer means the provider had no usable value. Growth fields are
// fractional (0.20 = 20%), never percentages.
type FundamentalsSnapshot struct {
	PERatio       *float64 `json:"PE Ratio"`
	ForwardPE     *float64 `json:"Forward PE"`
	PSRatio       *float64 `json:"PS Ratio"`
	PEGRatio      *float64 `json:"PEG Ratio"`
	RevenueGrowth *float64 `json:"Revenue Growth"`
	EPSGrowth     *float64 `json:"EPS Growth"`
	Beta          *float64 `json:"Beta"`
	DebtEquity    *float64 `json:"Debt/Equity"`
	MarketCap     *float64 `json:"Market Cap"`
}
