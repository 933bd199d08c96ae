package strategy

import (
	"math"

	"StockronAnalyzer/internal/model"
)

// Composite weights for the overall score.
const (
	weightQuant    = 0.4
	weightQuality  = 0.4
	weightCatalyst = 0.2
)

// Score converts a normalized fundamentals snapshot into the full score
// result. Deterministic and side-effect-free: each rule adjusts exactly one
// sub-score, starting from a base of 50, and every sub-score is clamped to
// [0,100] before blending.
func Score(snap *model.FundamentalsSnapshot) model.ScoreResult {
	quant, quality, catalyst := 50.0, 50.0, 50.0

	if pe := snap.PERatio; pe != nil {
		if *pe < 15 {
			quant += 12
		} else if *pe > 60 {
			quant -= 10
		}
	}
	if g := snap.EPSGrowth; g != nil {
		if *g > 0.20 {
			quant += 15
		} else if *g < 0 {
			quant -= 10
		}
	}

	if de := snap.DebtEquity; de != nil {
		if *de < 0.5 {
			quality += 15
		} else if *de > 2.0 {
			quality -= 10
		}
	}

	if g := snap.EPSGrowth; g != nil && *g > 0.10 {
		catalyst += 5
	}
	if b := snap.Beta; b != nil && *b > 1.5 {
		catalyst -= 5
	}

	quant = clampScore(quant)
	quality = clampScore(quality)
	catalyst = clampScore(catalyst)
	overall := round2(weightQuant*quant + weightQuality*quality + weightCatalyst*catalyst)

	return model.ScoreResult{
		Quant:    quant,
		Quality:  quality,
		Catalyst: catalyst,
		Overall:  overall,
		Stance:   StanceFor(overall),
		Risk:     RiskFromBeta(snap.Beta),
	}
}

// StanceFor maps the composite score to a stance. Band lower bounds are
// inclusive: 70 is already a Buy, 55 already a Hold.
func StanceFor(overall float64) model.Stance {
	switch {
	case overall >= 70:
		return model.StanceBuy
	case overall >= 55:
		return model.StanceHold
	default:
		return model.StanceWait
	}
}

// RiskFromBeta buckets a security's Beta into a risk level.
func RiskFromBeta(beta *float64) model.RiskLevel {
	if beta == nil {
		return model.RiskUnknown
	}
	switch {
	case *beta < 0.8:
		return model.RiskLow
	case *beta < 1.2:
		return model.RiskMedium
	case *beta < 1.6:
		return model.RiskHigh
	default:
		return model.RiskVeryHigh
	}
}

func clampScore(s float64) float64 {
	if s < 0 {
		s = 0
	}
	if s > 100 {
		s = 100
	}
	return math.Round(s)
}
