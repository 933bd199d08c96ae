package strategy

import "math"

// Style selects the indicator windows and sell threshold for the analysis.
type Style string

const (
	StyleSwing    Style = "swing"
	StyleInvestor Style = "investor"
)

// StyleParams are the per-style tuning knobs for the zone and signal rules.
type StyleParams struct {
	SMAWindow     int
	ATRWindow     int
	SellThreshold float64 // fractional deviation below SMA that triggers a sell
}

var styleParams = map[Style]StyleParams{
	StyleSwing:    {SMAWindow: 50, ATRWindow: 14, SellThreshold: 0.03},
	StyleInvestor: {SMAWindow: 200, ATRWindow: 20, SellThreshold: 0.05},
}

// NormalizeStyle maps an arbitrary string onto a supported style, defaulting
// to swing.
func NormalizeStyle(s string) Style {
	if Style(s) == StyleInvestor {
		return StyleInvestor
	}
	return StyleSwing
}

// ParamsFor returns the tuning parameters for a style.
func ParamsFor(style Style) StyleParams {
	if p, ok := styleParams[style]; ok {
		return p
	}
	return styleParams[StyleSwing]
}

func round2(f float64) float64 { return math.Round(f*100) / 100 }
func round4(f float64) float64 { return math.Round(f*10000) / 10000 }
