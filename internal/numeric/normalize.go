// Package numeric is the sole gate between untrusted provider values and
// downstream arithmetic. Nothing here ever panics.
package numeric

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Normalize coerces an arbitrary provider value into a finite float64.
// It reports ok=false for nil, unparseable strings, non-finite results,
// and any type it does not recognize.
func Normalize(v any) (float64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return finite(n)
	case float32:
		return finite(float64(n))
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}
		return finite(f)
	case string:
		s := strings.TrimSpace(n)
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSuffix(s, "%")
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return finite(f)
	default:
		return 0, false
	}
}

// NormalizeOr returns the normalized value, or fallback when v is unusable.
func NormalizeOr(v any, fallback float64) float64 {
	if f, ok := Normalize(v); ok {
		return f
	}
	return fallback
}

// NormalizePtr returns a pointer to the normalized value, or nil when v is
// unusable. This is the null fallback used by the fundamentals builder.
func NormalizePtr(v any) *float64 {
	if f, ok := Normalize(v); ok {
		return &f
	}
	return nil
}

func finite(f float64) (float64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}
