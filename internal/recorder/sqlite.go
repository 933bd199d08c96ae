package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"StockronAnalyzer/internal/model"
)

// SQLiteRecorder appends every freshly computed analysis to a SQLite
// history table.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode so dashboards can read while the service writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS analyses (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			ticker         TEXT NOT NULL,
			style          TEXT NOT NULL,
			price          REAL,
			quant_score    REAL,
			quality_score  REAL,
			catalyst_score REAL,
			overall_score  REAL,
			stance         TEXT,
			risk_level     TEXT,
			sell_triggered INTEGER,
			stop_loss      REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ts ON analyses(timestamp)`,
		`CREATE INDEX IF NOT EXISTS idx_analyses_ticker ON analyses(ticker, style)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordAnalysis(a *model.Analysis) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stopLoss sql.NullFloat64
	if a.StopLoss != nil {
		stopLoss = sql.NullFloat64{Float64: *a.StopLoss, Valid: true}
	}

	_, err := r.db.Exec(`INSERT INTO analyses
		(timestamp, ticker, style, price,
		 quant_score, quality_score, catalyst_score, overall_score,
		 stance, risk_level, sell_triggered, stop_loss)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
		time.Now().Unix(), a.Ticker, a.Style, a.Price,
		a.QuantScore, a.QualityScore, a.CatalystScore, a.OverallScore,
		string(a.Stance), string(a.RiskLevel), a.SellSignal.Triggered, stopLoss,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
