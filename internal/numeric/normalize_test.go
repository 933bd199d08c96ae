package numeric

import (
	"encoding/json"
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
		ok   bool
	}{
		{"nil", nil, 0, false},
		{"float", 3.14, 3.14, true},
		{"int", 42, 42, true},
		{"int64", int64(-7), -7, true},
		{"plain string", "12.5", 12.5, true},
		{"padded string", "  42 ", 42, true},
		{"thousands and percent", "1,234.56%", 1234.56, true},
		{"negative percent", "-3.5%", -3.5, true},
		{"garbage", "N/A", 0, false},
		{"empty string", "", 0, false},
		{"bare percent", "%", 0, false},
		{"nan", math.NaN(), 0, false},
		{"inf", math.Inf(1), 0, false},
		{"inf string", "Inf", 0, false},
		{"bool", true, 0, false},
		{"map", map[string]any{"raw": 1.0}, 0, false},
		{"json number", json.Number("19.99"), 19.99, true},
	}
	for _, tt := range tests {
		got, ok := Normalize(tt.in)
		if ok != tt.ok || (ok && got != tt.want) {
			t.Errorf("%s: Normalize(%v) = (%v, %v), want (%v, %v)", tt.name, tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestNormalizeOr(t *testing.T) {
	if got := NormalizeOr("garbage", -1); got != -1 {
		t.Errorf("expected fallback -1, got %v", got)
	}
	if got := NormalizeOr("2.5", -1); got != 2.5 {
		t.Errorf("expected 2.5, got %v", got)
	}
}

func TestNormalizePtr(t *testing.T) {
	if p := NormalizePtr(nil); p != nil {
		t.Errorf("expected nil for nil input, got %v", *p)
	}
	p := NormalizePtr("1,000")
	if p == nil || *p != 1000 {
		t.Errorf("expected 1000, got %v", p)
	}
}
