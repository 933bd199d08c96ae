package strategy

import (
	"fmt"
	"testing"

	"StockronAnalyzer/internal/model"
)

func fp(f float64) *float64 { return &f }

func TestScore_BaseValues(t *testing.T) {
	// Empty snapshot: no rule fires, everything stays at base 50.
	res := Score(&model.FundamentalsSnapshot{})
	if res.Quant != 50 || res.Quality != 50 || res.Catalyst != 50 {
		t.Errorf("expected base 50s, got %v/%v/%v", res.Quant, res.Quality, res.Catalyst)
	}
	if res.Overall != 50 {
		t.Errorf("overall = %v, want 50", res.Overall)
	}
	if res.Stance != model.StanceWait {
		t.Errorf("stance = %v, want Wait", res.Stance)
	}
	if res.Risk != model.RiskUnknown {
		t.Errorf("risk = %v, want Unknown for null beta", res.Risk)
	}
}

func TestScore_Adjustments(t *testing.T) {
	tests := []struct {
		name     string
		snap     model.FundamentalsSnapshot
		quant    float64
		quality  float64
		catalyst float64
	}{
		{"cheap PE", model.FundamentalsSnapshot{PERatio: fp(10)}, 62, 50, 50},
		{"expensive PE", model.FundamentalsSnapshot{PERatio: fp(80)}, 40, 50, 50},
		{"strong EPS growth", model.FundamentalsSnapshot{EPSGrowth: fp(0.3)}, 65, 50, 55},
		{"negative EPS growth", model.FundamentalsSnapshot{EPSGrowth: fp(-0.1)}, 40, 50, 50},
		{"modest EPS growth only moves catalyst", model.FundamentalsSnapshot{EPSGrowth: fp(0.15)}, 50, 50, 55},
		{"low debt", model.FundamentalsSnapshot{DebtEquity: fp(0.2)}, 50, 65, 50},
		{"high debt", model.FundamentalsSnapshot{DebtEquity: fp(3)}, 50, 40, 50},
		{"high beta", model.FundamentalsSnapshot{Beta: fp(2)}, 50, 50, 45},
		{
			"everything good",
			model.FundamentalsSnapshot{PERatio: fp(10), EPSGrowth: fp(0.3), DebtEquity: fp(0.2), Beta: fp(1.0)},
			77, 65, 55,
		},
	}
	for _, tt := range tests {
		res := Score(&tt.snap)
		if res.Quant != tt.quant || res.Quality != tt.quality || res.Catalyst != tt.catalyst {
			t.Errorf("%s: got %v/%v/%v, want %v/%v/%v",
				tt.name, res.Quant, res.Quality, res.Catalyst, tt.quant, tt.quality, tt.catalyst)
		}
	}
}

func TestScore_ClampedForExtremeInputs(t *testing.T) {
	snaps := []model.FundamentalsSnapshot{
		{PERatio: fp(-500), EPSGrowth: fp(-99), DebtEquity: fp(1e9), Beta: fp(1e9)},
		{PERatio: fp(1e12), EPSGrowth: fp(1e12), DebtEquity: fp(-1e12), Beta: fp(-1e12)},
	}
	for _, snap := range snaps {
		res := Score(&snap)
		for _, s := range []float64{res.Quant, res.Quality, res.Catalyst, res.Overall} {
			if s < 0 || s > 100 {
				t.Fatalf("score out of [0,100]: %v (snap %+v)", s, snap)
			}
		}
	}
}

func TestStanceFor_Boundaries(t *testing.T) {
	tests := []struct {
		overall float64
		want    model.Stance
	}{
		{54, model.StanceWait},
		{55, model.StanceHold},
		{69, model.StanceHold},
		{70, model.StanceBuy},
		{100, model.StanceBuy},
		{0, model.StanceWait},
	}
	for _, tt := range tests {
		if got := StanceFor(tt.overall); got != tt.want {
			t.Errorf("StanceFor(%v) = %v, want %v", tt.overall, got, tt.want)
		}
	}
}

func TestRiskFromBeta_Boundaries(t *testing.T) {
	tests := []struct {
		beta *float64
		want model.RiskLevel
	}{
		{nil, model.RiskUnknown},
		{fp(0.79), model.RiskLow},
		{fp(0.80), model.RiskMedium},
		{fp(1.19), model.RiskMedium},
		{fp(1.20), model.RiskHigh},
		{fp(1.59), model.RiskHigh},
		{fp(1.60), model.RiskVeryHigh},
	}
	for _, tt := range tests {
		if got := RiskFromBeta(tt.beta); got != tt.want {
			label := "nil"
			if tt.beta != nil {
				label = fmt.Sprintf("%.2f", *tt.beta)
			}
			t.Errorf("RiskFromBeta(%s) = %v, want %v", label, got, tt.want)
		}
	}
}
