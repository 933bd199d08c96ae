package recorder

import "StockronAnalyzer/internal/model"

// Recorder persists computed analyses for later review. Recording is best
// effort: failures are logged by callers and never surfaced to the client.
type Recorder interface {
	RecordAnalysis(a *model.Analysis) error
	Close() error
}
