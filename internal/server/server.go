// Package server is the HTTP surface over the analyzer. Routing, CORS, and
// schema handling are deliberately thin; all behavior lives in the pipeline.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"StockronAnalyzer/internal/analyzer"
)

const serviceName = "Stockron Backend"

// Server wraps the HTTP listener.
type Server struct {
	httpServer *http.Server
	analyzer   *analyzer.Analyzer
	version    string
}

// New creates a Server listening on the given port.
func New(port int, a *analyzer.Analyzer, version string) *Server {
	s := &Server{analyzer: a, version: version}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /analyze", s.handleAnalyze)
	mux.HandleFunc("POST /scan", s.handleScan)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      corsMiddleware(mux),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
	}
	return s
}

// Start begins serving. Blocks until the listener stops.
func (s *Server) Start() error {
	log.Printf("[INFO] http server listening on %s", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"version":   s.version,
		"service":   serviceName,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req analyzer.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	res, err := s.analyzer.Analyze(req)
	if err != nil {
		switch {
		case errors.Is(err, analyzer.ErrEmptyTicker):
			writeError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, analyzer.ErrNoPriceData):
			writeError(w, http.StatusNotFound, err.Error())
		default:
			log.Printf("[ERROR] analyze %s: %v", req.Ticker, err)
			writeError(w, http.StatusBadGateway, "analysis failed")
		}
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleScan is a placeholder: batch scanning is part of the service
// surface but not implemented.
func (s *Server) handleScan(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusNotImplemented, map[string]string{
		"status": "not_implemented",
		"detail": "batch scanning is not available; use /analyze per ticker",
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[ERROR] encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
