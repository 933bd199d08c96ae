package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"StockronAnalyzer/internal/analyzer"
	"StockronAnalyzer/internal/cache"
	"StockronAnalyzer/internal/collector"
	"StockronAnalyzer/internal/config"
	"StockronAnalyzer/internal/notifier"
	"StockronAnalyzer/internal/recorder"
	"StockronAnalyzer/internal/scheduler"
	"StockronAnalyzer/internal/server"
)

const version = "1.0.0"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] Stockron Analyzer starting...")

	// .env, then config
	_ = godotenv.Load()
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher collector.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = collector.NewEngineFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = collector.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init cache
	var store cache.Cache
	if cfg.Cache.Backend == "badger" {
		bc, err := cache.NewBadgerCache(cfg.Cache.Path)
		if err != nil {
			log.Printf("[WARN] init badger cache failed, using memory: %v", err)
			store = cache.NewMemoryCache()
		} else {
			store = bc
		}
	} else {
		store = cache.NewMemoryCache()
	}
	defer store.Close()

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	a := analyzer.New(collector.NewCollector(fetcher), store, rec, cfg.Strategy.Mode)

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Optional watchlist refresh
	if len(cfg.Watchlist.Symbols) > 0 {
		var tn *notifier.TelegramNotifier
		if cfg.Telegram.BotToken != "" {
			tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		}
		sched := scheduler.NewScheduler(ctx, a, tn, cfg.Watchlist.Symbols, cfg.Watchlist.Style)
		if err := sched.Register(cfg.Watchlist.Cron); err != nil {
			log.Fatalf("[FATAL] register watchlist cron: %v", err)
		}
		sched.Start()
		defer sched.Stop()

		if os.Getenv("RUN_ON_START") == "true" {
			log.Println("[INFO] RUN_ON_START enabled, refreshing watchlist now")
			go sched.RunNow()
		}
	}

	// HTTP server
	srv := server.New(cfg.Server.Port, a, version)
	errCh := make(chan error, 1)
	go func() { errCh <- srv.Start() }()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	case <-sigCh:
		log.Println("[INFO] shutdown signal received, stopping...")
	}

	cancel()
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] server shutdown: %v", err)
	}
	log.Println("[INFO] Stockron Analyzer stopped")
}
