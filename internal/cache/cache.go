// Package cache is a flat key/value store of timestamped payloads.
// Freshness is purely logical: entries are never evicted, only judged
// stale on read against a per-kind TTL.
package cache

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// TTLs for the two cache kinds. Both fixed at 24 hours.
const (
	AnalysisTTL     = 24 * time.Hour
	FundamentalsTTL = 24 * time.Hour
)

// Entry is a stored payload stamped with its write time.
type Entry struct {
	Timestamp time.Time       `json:"timestamp"`
	Payload   json.RawMessage `json:"payload"`
}

// Cache stores entries by key. Implementations absorb their own I/O
// failures: a failed read is a miss, a failed write is silently dropped.
type Cache interface {
	Get(key string) (*Entry, bool)
	Put(key string, payload json.RawMessage)
	Close() error
}

// AnalysisKey identifies an analysis slot: one per security+style.
func AnalysisKey(ticker string, style string) string {
	return fmt.Sprintf("analysis|%s|%s", strings.ToUpper(ticker), style)
}

// FundamentalsKey identifies a fundamentals slot: one per security+calendar
// day, shared across styles so multiple styles reuse one fetch.
func FundamentalsKey(ticker string, day time.Time) string {
	return fmt.Sprintf("fundamentals|%s|%s", strings.ToUpper(ticker), day.Format("2006-01-02"))
}

// IsFresh reports whether an entry is still within its TTL at the given
// instant. Freshness depends on nothing but the entry age.
func IsFresh(e *Entry, ttl time.Duration, now time.Time) bool {
	if e == nil {
		return false
	}
	return now.Sub(e.Timestamp) < ttl
}
