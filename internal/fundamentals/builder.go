// Package fundamentals maps raw provider bags onto the canonical snapshot
// schema. Provider incompleteness degrades to null fields, never to errors.
package fundamentals

import (
	"StockronAnalyzer/internal/model"
	"StockronAnalyzer/internal/numeric"
)

// Provider field names behind each canonical key.
const (
	fieldTrailingPE    = "trailingPE"
	fieldForwardPE     = "forwardPE"
	fieldPriceToSales  = "priceToSalesTrailing12Months"
	fieldPEGRatio      = "pegRatio"
	fieldRevenueGrowth = "revenueGrowth"
	fieldEPSGrowth     = "earningsGrowth"
	fieldBeta          = "beta"
	fieldDebtToEquity  = "debtToEquity"
	fieldMarketCap     = "marketCap"
)

// BuildSnapshot normalizes a raw fundamentals bag into the canonical
// snapshot. A nil bag, or any individually unusable field, yields nulls.
func BuildSnapshot(bag *model.FundamentalsBag) model.FundamentalsSnapshot {
	if bag == nil || bag.Fields == nil {
		return model.FundamentalsSnapshot{}
	}
	f := bag.Fields
	return model.FundamentalsSnapshot{
		PERatio:       numeric.NormalizePtr(f[fieldTrailingPE]),
		ForwardPE:     numeric.NormalizePtr(f[fieldForwardPE]),
		PSRatio:       numeric.NormalizePtr(f[fieldPriceToSales]),
		PEGRatio:      numeric.NormalizePtr(f[fieldPEGRatio]),
		RevenueGrowth: numeric.NormalizePtr(f[fieldRevenueGrowth]),
		EPSGrowth:     numeric.NormalizePtr(f[fieldEPSGrowth]),
		Beta:          numeric.NormalizePtr(f[fieldBeta]),
		DebtEquity:    numeric.NormalizePtr(f[fieldDebtToEquity]),
		MarketCap:     numeric.NormalizePtr(f[fieldMarketCap]),
	}
}
