package strategy

import (
	"fmt"

	"StockronAnalyzer/internal/model"
)

// EducationalNotes is the fixed advisory text attached to every analysis.
var EducationalNotes = []string{
	"Scores are rule-based heuristics computed from public fundamentals and price history, not investment advice.",
	"Buy and sell zones are derived from moving averages and recent volatility; always size positions responsibly.",
	"A sell signal is a risk flag, not a prediction. Review the underlying data before acting.",
	"Past ratios and price behavior do not guarantee future results.",
}

// QuantSummary renders the valuation/growth one-liner.
func QuantSummary(score model.ScoreResult, snap *model.FundamentalsSnapshot) string {
	return fmt.Sprintf("Quant score %.0f: P/E %s, EPS growth %s.",
		score.Quant, fmtRatio(snap.PERatio), fmtPct(snap.EPSGrowth))
}

// QualitySummary renders the balance-sheet one-liner.
func QualitySummary(score model.ScoreResult, snap *model.FundamentalsSnapshot) string {
	return fmt.Sprintf("Quality score %.0f: debt/equity %s.",
		score.Quality, fmtRatio(snap.DebtEquity))
}

// CatalystSummary renders the momentum/volatility one-liner.
func CatalystSummary(score model.ScoreResult, snap *model.FundamentalsSnapshot) string {
	return fmt.Sprintf("Catalyst score %.0f: beta %s, revenue growth %s.",
		score.Catalyst, fmtRatio(snap.Beta), fmtPct(snap.RevenueGrowth))
}

// AISummary assembles the narrative paragraph. It is a pure function of the
// already-computed values; there is no model call behind it.
func AISummary(ticker string, score model.ScoreResult, snap *model.FundamentalsSnapshot) string {
	var tone string
	switch score.Stance {
	case model.StanceBuy:
		tone = "the fundamentals support opening or adding to a position"
	case model.StanceHold:
		tone = "the fundamentals support holding but not chasing"
	default:
		tone = "the fundamentals argue for patience before committing capital"
	}
	return fmt.Sprintf("%s rates %s with an overall score of %.2f; %s. P/E %s and PEG %s frame the valuation, while debt/equity %s describes the balance-sheet load.",
		ticker, score.Stance, score.Overall, tone,
		fmtRatio(snap.PERatio), fmtRatio(snap.PEGRatio), fmtRatio(snap.DebtEquity))
}

func fmtRatio(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", *v)
}

func fmtPct(v *float64) string {
	if v == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.1f%%", *v*100)
}
