// Package scheduler re-warms the analysis cache for a configured watchlist
// and raises Telegram alerts when a sell signal triggers.
package scheduler

import (
	"context"
	"fmt"
	"log"

	"StockronAnalyzer/internal/analyzer"
	"StockronAnalyzer/internal/model"
	"StockronAnalyzer/internal/notifier"

	"github.com/robfig/cron/v3"
)

// Scheduler manages the periodic watchlist refresh.
type Scheduler struct {
	Cron     *cron.Cron
	Analyzer *analyzer.Analyzer
	Notifier *notifier.TelegramNotifier // nil disables alerting
	Symbols  []string
	Style    string
	Ctx      context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, a *analyzer.Analyzer, tn *notifier.TelegramNotifier, symbols []string, style string) *Scheduler {
	return &Scheduler{
		Cron:     cron.New(cron.WithSeconds()),
		Analyzer: a,
		Notifier: tn,
		Symbols:  symbols,
		Style:    style,
		Ctx:      ctx,
	}
}

// Register schedules the refresh task.
func (s *Scheduler) Register(cronExpr string) error {
	if _, err := s.Cron.AddFunc(cronExpr, s.refreshTask); err != nil {
		return fmt.Errorf("register watchlist refresh: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the refresh task immediately (for RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Printf("[INFO] refreshing watchlist (%d symbols)", len(s.Symbols))
	var refreshed []*model.Analysis
	for _, symbol := range s.Symbols {
		res, err := s.Analyzer.Refresh(symbol, s.Style)
		if err != nil {
			log.Printf("[ERROR] refresh %s: %v", symbol, err)
			continue
		}
		refreshed = append(refreshed, res)
		if res.SellSignal.Triggered {
			s.trySend(notifier.FormatSellAlert(res))
		}
	}
	if len(refreshed) > 0 {
		s.trySend(notifier.FormatWatchlistReport(refreshed))
	}
}

func (s *Scheduler) trySend(text string) {
	if s.Notifier == nil {
		return
	}
	if err := s.Notifier.SendWithRetry(s.Ctx, text, 3); err != nil {
		log.Printf("[ERROR] send notification: %v", err)
	}
}
