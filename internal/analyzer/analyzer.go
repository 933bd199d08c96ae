// Package analyzer runs the assessment pipeline: cache consultation,
// provider fetch, normalization, scoring, zone derivation, and write-back.
package analyzer

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"StockronAnalyzer/internal/cache"
	"StockronAnalyzer/internal/collector"
	"StockronAnalyzer/internal/fundamentals"
	"StockronAnalyzer/internal/model"
	"StockronAnalyzer/internal/recorder"
	"StockronAnalyzer/internal/strategy"
)

// User-visible failure classes. Everything else is absorbed into fallbacks.
var (
	ErrEmptyTicker = errors.New("ticker is required")
	ErrNoPriceData = errors.New("no price data available")
)

// Request is one analysis request. Freeze forces reuse of a still-valid
// cached analysis; it never extends a stale entry's life.
type Request struct {
	Ticker    string     `json:"ticker"`
	Timeframe string     `json:"timeframe"`
	Style     string     `json:"style"`
	Mode      string     `json:"mode"`
	Freeze    FreezeFlag `json:"freeze"`
}

// FreezeFlag accepts the freeze directive as either a boolean or a string
// ("true", "1", "freeze", "yes"). Anything else means no freeze.
type FreezeFlag bool

func (f *FreezeFlag) UnmarshalJSON(data []byte) error {
	var b bool
	if err := json.Unmarshal(data, &b); err == nil {
		*f = FreezeFlag(b)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch strings.ToLower(strings.TrimSpace(s)) {
		case "true", "1", "freeze", "yes":
			*f = true
		default:
			*f = false
		}
	}
	return nil
}

// Analyzer wires the pipeline together. The cache and recorder are injected
// so their lifecycles belong to the process, not to package globals.
type Analyzer struct {
	collector   *collector.Collector
	cache       cache.Cache
	recorder    recorder.Recorder
	defaultMode string
}

// New creates an Analyzer. defaultMode selects the zone strategy when a
// request does not name one.
func New(col *collector.Collector, c cache.Cache, rec recorder.Recorder, defaultMode string) *Analyzer {
	return &Analyzer{collector: col, cache: c, recorder: rec, defaultMode: defaultMode}
}

// snapshotRecord is the cached per-day fundamentals payload, shared across
// styles.
type snapshotRecord struct {
	CompanyName string                     `json:"company_name"`
	Sector      string                     `json:"sector"`
	Snapshot    model.FundamentalsSnapshot `json:"snapshot"`
}

// Analyze serves one request, reusing a fresh cached analysis when possible.
func (a *Analyzer) Analyze(req Request) (*model.Analysis, error) {
	ticker := strings.ToUpper(strings.TrimSpace(req.Ticker))
	if ticker == "" {
		return nil, ErrEmptyTicker
	}
	style := strategy.NormalizeStyle(req.Style)
	timeframe := model.NormalizeTimeframe(req.Timeframe)
	mode := req.Mode
	if mode == "" {
		mode = a.defaultMode
	}

	now := time.Now()
	key := cache.AnalysisKey(ticker, string(style))
	if entry, ok := a.cache.Get(key); ok && cache.IsFresh(entry, cache.AnalysisTTL, now) {
		// Freeze is a distinct, earlier branch than the normal freshness
		// check, per the caching contract.
		if req.Freeze {
			if res := decodeAnalysis(key, entry); res != nil {
				log.Printf("[INFO] freeze directive: reusing cached analysis for %s/%s", ticker, style)
				return res, nil
			}
		}
		if res := decodeAnalysis(key, entry); res != nil {
			return res, nil
		}
		// Corrupt payload: treated as a miss, recompute below.
	}

	return a.compute(ticker, timeframe, style, mode, now)
}

// Refresh recomputes an analysis unconditionally and re-warms the cache.
// Used by the watchlist scheduler.
func (a *Analyzer) Refresh(ticker, styleName string) (*model.Analysis, error) {
	ticker = strings.ToUpper(strings.TrimSpace(ticker))
	if ticker == "" {
		return nil, ErrEmptyTicker
	}
	style := strategy.NormalizeStyle(styleName)
	return a.compute(ticker, model.DefaultTimeframe, style, a.defaultMode, time.Now())
}

func (a *Analyzer) compute(ticker string, timeframe model.Timeframe, style strategy.Style, mode string, now time.Time) (*model.Analysis, error) {
	params := strategy.ParamsFor(style)

	ind, err := a.collector.Collect(ticker, timeframe, params.SMAWindow, params.ATRWindow)
	if err != nil {
		return nil, fmt.Errorf("%w for %s: %v", ErrNoPriceData, ticker, err)
	}

	rec := a.fundamentalsFor(ticker, now)
	snap := rec.Snapshot

	score := strategy.Score(&snap)
	zones := strategy.ZoneStrategyFor(mode).Zones(ind, params, style)
	signal := strategy.EvaluateSellSignal(ind, params)

	result := &model.Analysis{
		Ticker:           ticker,
		Style:            string(style),
		CompanyName:      rec.CompanyName,
		Sector:           rec.Sector,
		Price:            ind.CurrentPrice,
		Stance:           score.Stance,
		QuantScore:       score.Quant,
		QualityScore:     score.Quality,
		CatalystScore:    score.Catalyst,
		OverallScore:     score.Overall,
		QuantSummary:     strategy.QuantSummary(score, &snap),
		QualitySummary:   strategy.QualitySummary(score, &snap),
		CatalystSummary:  strategy.CatalystSummary(score, &snap),
		AISummary:        strategy.AISummary(ticker, score, &snap),
		Fundamentals:     snap,
		BuySellZones:     zones,
		SellSignal:       signal,
		SellReason:       signal.Reason,
		StopLoss:         signal.StopLoss,
		RiskLevel:        score.Risk,
		EducationalNotes: strategy.EducationalNotes,
		LastUpdated:      now.UTC(),
	}

	if payload, err := json.Marshal(result); err == nil {
		a.cache.Put(cache.AnalysisKey(ticker, string(style)), payload)
	} else {
		log.Printf("[WARN] marshal analysis for cache: %v", err)
	}

	if err := a.recorder.RecordAnalysis(result); err != nil {
		log.Printf("[ERROR] record analysis: %v", err)
	}

	return result, nil
}

// fundamentalsFor returns the day's snapshot for a ticker, fetching at most
// once per calendar day across all styles. Provider failure degrades to the
// all-null snapshot.
func (a *Analyzer) fundamentalsFor(ticker string, now time.Time) snapshotRecord {
	key := cache.FundamentalsKey(ticker, now)
	if entry, ok := a.cache.Get(key); ok && cache.IsFresh(entry, cache.FundamentalsTTL, now) {
		var rec snapshotRecord
		if err := json.Unmarshal(entry.Payload, &rec); err == nil {
			return rec
		}
		log.Printf("[WARN] corrupt fundamentals cache entry for %s, refetching", ticker)
	}

	var rec snapshotRecord
	bag, err := a.collector.CollectFundamentals(ticker)
	if err != nil {
		log.Printf("[WARN] fundamentals unavailable for %s, using null snapshot: %v", ticker, err)
		rec.Snapshot = fundamentals.BuildSnapshot(nil)
		return rec
	}
	rec.Snapshot = fundamentals.BuildSnapshot(bag)
	if bag != nil {
		rec.CompanyName = bag.CompanyName
		rec.Sector = bag.Sector
	}

	if payload, err := json.Marshal(rec); err == nil {
		a.cache.Put(key, payload)
	}
	return rec
}

func decodeAnalysis(key string, entry *cache.Entry) *model.Analysis {
	var res model.Analysis
	if err := json.Unmarshal(entry.Payload, &res); err != nil {
		log.Printf("[WARN] corrupt cache entry %s: %v", key, err)
		return nil
	}
	return &res
}
