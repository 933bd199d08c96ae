package fundamentals

import (
	"encoding/json"
	"testing"

	"StockronAnalyzer/internal/model"
)

var canonicalKeys = []string{
	"PE Ratio", "Forward PE", "PS Ratio", "PEG Ratio",
	"Revenue Growth", "EPS Growth", "Beta", "Debt/Equity", "Market Cap",
}

func TestBuildSnapshot_FullBag(t *testing.T) {
	bag := &model.FundamentalsBag{
		Fields: map[string]any{
			"trailingPE":                   24.5,
			"forwardPE":                    "21.2",
			"priceToSalesTrailing12Months": 6.1,
			"pegRatio":                     1.8,
			"revenueGrowth":                0.12,
			"earningsGrowth":               0.2,
			"beta":                         1.1,
			"debtToEquity":                 "1,234.56%",
			"marketCap":                    2.5e12,
		},
	}
	snap := BuildSnapshot(bag)
	if snap.PERatio == nil || *snap.PERatio != 24.5 {
		t.Errorf("PE Ratio = %v, want 24.5", snap.PERatio)
	}
	if snap.ForwardPE == nil || *snap.ForwardPE != 21.2 {
		t.Errorf("Forward PE = %v, want 21.2", snap.ForwardPE)
	}
	if snap.DebtEquity == nil || *snap.DebtEquity != 1234.56 {
		t.Errorf("Debt/Equity = %v, want 1234.56", snap.DebtEquity)
	}
}

func TestBuildSnapshot_NilBag(t *testing.T) {
	snap := BuildSnapshot(nil)
	if snap.PERatio != nil || snap.Beta != nil || snap.MarketCap != nil {
		t.Error("nil bag should produce the all-null snapshot")
	}
}

func TestBuildSnapshot_GarbageFields(t *testing.T) {
	bag := &model.FundamentalsBag{
		Fields: map[string]any{
			"trailingPE": "N/A",
			"beta":       true,
			"marketCap":  nil,
		},
	}
	snap := BuildSnapshot(bag)
	if snap.PERatio != nil {
		t.Errorf("garbage PE should be null, got %v", *snap.PERatio)
	}
	if snap.Beta != nil {
		t.Errorf("bool beta should be null, got %v", *snap.Beta)
	}
}

func TestSnapshot_AlwaysExposesCanonicalKeys(t *testing.T) {
	data, err := json.Marshal(BuildSnapshot(nil))
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var m map[string]*float64
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if len(m) != len(canonicalKeys) {
		t.Errorf("expected exactly %d keys, got %d", len(canonicalKeys), len(m))
	}
	for _, k := range canonicalKeys {
		if _, present := m[k]; !present {
			t.Errorf("canonical key %q missing from encoding", k)
		}
	}
}
