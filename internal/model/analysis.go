package model

import "time"

// Stance is the discrete investment recommendation.
type Stance string

const (
	StanceBuy  Stance = "Buy"
	StanceHold Stance = "Hold"
	StanceWait Stance = "Wait"
)

// RiskLevel buckets a security's risk from its Beta.
type RiskLevel string

const (
	RiskLow      RiskLevel = "Low"
	RiskMedium   RiskLevel = "Medium"
	RiskHigh     RiskLevel = "High"
	RiskVeryHigh RiskLevel = "Very High"
	RiskUnknown  RiskLevel = "Unknown"
)

// ScoreResult holds the three sub-scores, the weighted composite, and the
// derived classifications. Sub-scores are clamped to [0,100] before blending.
type ScoreResult struct {
	Quant    float64
	Quality  float64
	Catalyst float64
	Overall  float64
	Stance   Stance
	Risk     RiskLevel
}

// ZoneResult is a pair of price bands. A nil band means no price was
// resolvable for that zone.
type ZoneResult struct {
	BuyZone   []float64 `json:"buy_zone"`
	SellZone  []float64 `json:"sell_zone"`
	Rationale string    `json:"rationale"`
}

// SellSignal is the exit recommendation. Reason and StopLoss are nil unless
// a real moving average was available to evaluate against.
type SellSignal struct {
	Triggered bool     `json:"triggered"`
	Reason    *string  `json:"reason"`
	StopLoss  *float64 `json:"stop_loss"`
}

// Analysis is the full assessment returned to the caller and cached per
// ticker+style.
type Analysis struct {
	Ticker           string               `json:"ticker"`
	Style            string               `json:"style"`
	CompanyName      string               `json:"company_name"`
	Sector           string               `json:"sector"`
	Price            float64              `json:"price"`
	Stance           Stance               `json:"stance"`
	QuantScore       float64              `json:"quant_score"`
	QualityScore     float64              `json:"quality_score"`
	CatalystScore    float64              `json:"catalyst_score"`
	OverallScore     float64              `json:"overall_score"`
	QuantSummary     string               `json:"quant_summary"`
	QualitySummary   string               `json:"quality_summary"`
	CatalystSummary  string               `json:"catalyst_summary"`
	AISummary        string               `json:"ai_summary"`
	Fundamentals     FundamentalsSnapshot `json:"fundamentals_json"`
	BuySellZones     ZoneResult           `json:"buy_sell_zones"`
	SellSignal       SellSignal           `json:"sell_signal"`
	SellReason       *string              `json:"sell_reason"`
	StopLoss         *float64             `json:"stop_loss"`
	RiskLevel        RiskLevel            `json:"risk_level"`
	EducationalNotes []string             `json:"educational_notes"`
	LastUpdated      time.Time            `json:"last_updated"`
}
