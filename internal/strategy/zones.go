package strategy

import (
	"fmt"

	"StockronAnalyzer/internal/model"
)

// ZoneStrategy derives buy/sell price bands. Two implementations exist:
// the ATR-based bands and a fixed-percentage variant that works off the
// current price alone. They are selected by the request's mode parameter
// and never merged.
type ZoneStrategy interface {
	Name() string
	Zones(ind *model.MarketIndicators, p StyleParams, style Style) model.ZoneResult
}

const (
	ModeATR     = "atr"
	ModePercent = "percent"
)

// ZoneStrategyFor returns the strategy for a mode string, defaulting to ATR.
func ZoneStrategyFor(mode string) ZoneStrategy {
	if mode == ModePercent {
		return PercentZoneStrategy{}
	}
	return ATRZoneStrategy{}
}

// ATRZoneStrategy anchors the buy zone at SMA-ATR..SMA and the sell zone
// one to two ATRs above the current price.
type ATRZoneStrategy struct{}

func (ATRZoneStrategy) Name() string { return ModeATR }

func (ATRZoneStrategy) Zones(ind *model.MarketIndicators, p StyleParams, style Style) model.ZoneResult {
	if ind == nil || ind.CurrentPrice <= 0 {
		return model.ZoneResult{Rationale: "no resolvable price"}
	}
	return model.ZoneResult{
		BuyZone:  []float64{round4(ind.SMA - ind.ATR), round4(ind.SMA)},
		SellZone: []float64{round4(ind.CurrentPrice + ind.ATR), round4(ind.CurrentPrice + 2*ind.ATR)},
		Rationale: fmt.Sprintf("%s profile: accumulate between SMA%d minus ATR(%d) and SMA%d; trim 1-2 ATRs above price. RSI(14) at %.0f.",
			style, p.SMAWindow, p.ATRWindow, p.SMAWindow, ind.RSI),
	}
}

// PercentZoneStrategy derives both bands from the current price and the
// style's percentage threshold, ignoring indicators entirely.
type PercentZoneStrategy struct{}

func (PercentZoneStrategy) Name() string { return ModePercent }

func (PercentZoneStrategy) Zones(ind *model.MarketIndicators, p StyleParams, style Style) model.ZoneResult {
	if ind == nil || ind.CurrentPrice <= 0 {
		return model.ZoneResult{Rationale: "no resolvable price"}
	}
	price, t := ind.CurrentPrice, p.SellThreshold
	return model.ZoneResult{
		BuyZone:  []float64{round4(price * (1 - 2*t)), round4(price * (1 - t))},
		SellZone: []float64{round4(price * (1 + t)), round4(price * (1 + 2*t))},
		Rationale: fmt.Sprintf("%s profile: fixed %.0f%% bands around the current price.",
			style, t*100),
	}
}

// EvaluateSellSignal applies the SMA-deviation exit rule. When no real SMA
// exists (history too short), the signal stays untriggered with nil reason
// and stop loss; a substituted SMA must never fire an exit.
func EvaluateSellSignal(ind *model.MarketIndicators, p StyleParams) model.SellSignal {
	if ind == nil || !ind.SMADefined {
		return model.SellSignal{}
	}
	threshold := ind.SMA * (1 - p.SellThreshold)
	if ind.CurrentPrice >= threshold {
		return model.SellSignal{}
	}
	reason := fmt.Sprintf("Price %.2f is more than %.0f%% below the %d-day SMA (%.2f)",
		ind.CurrentPrice, p.SellThreshold*100, p.SMAWindow, ind.SMA)
	stop := round4(ind.SMA * (1 - 2*p.SellThreshold))
	return model.SellSignal{Triggered: true, Reason: &reason, StopLoss: &stop}
}
