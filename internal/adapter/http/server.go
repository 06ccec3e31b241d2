// Package http serves the monitor's operational endpoints. Readiness is
// tied to scan progress: /readyz reports 503 until the scanner has finished
// one full roster sweep, and once ready it carries that sweep's summary so a
// probe can tell a stalled scanner from a calm forecast.
package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/treehub/storm-monitor/internal/scanner"
)

// SweepReporter exposes the scanner's most recent sweep to the probes.
type SweepReporter interface {
	LastSweep() (scanner.SweepStatus, bool)
}

// Server hosts /healthz, /readyz, and /metrics for the monitor process.
type Server struct {
	srv    *http.Server
	sweeps SweepReporter
	logger *slog.Logger
}

// NewServer wires the operational routes onto addr. /metrics serves the
// default Prometheus registry.
func NewServer(addr string, sweeps SweepReporter, logger *slog.Logger) *Server {
	s := &Server{sweeps: sweeps, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", s.handleReady)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Generous write timeout: the metrics payload grows with the roster.
	s.srv = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("operational endpoints listening", "addr", s.srv.Addr)
	return s.srv.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.srv.Handler.ServeHTTP(w, r)
}

type readyResponse struct {
	Status string        `json:"status"`
	Reason string        `json:"reason,omitempty"`
	Sweep  *sweepSummary `json:"last_sweep,omitempty"`
}

type sweepSummary struct {
	CompletedAt     time.Time `json:"completed_at"`
	Locations       int       `json:"locations_scanned"`
	StormEvents     int       `json:"storm_events"`
	FailedLocations int       `json:"failed_locations"`
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "storm-monitor",
	})
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	status, ok := s.sweeps.LastSweep()
	if !ok {
		s.writeJSON(w, http.StatusServiceUnavailable, readyResponse{
			Status: "not ready",
			Reason: "no completed sweep yet",
		})
		return
	}

	s.writeJSON(w, http.StatusOK, readyResponse{
		Status: "ready",
		Sweep: &sweepSummary{
			CompletedAt:     status.CompletedAt,
			Locations:       status.Locations,
			StormEvents:     status.StormEvents,
			FailedLocations: status.FailedLocations,
		},
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warn("encode probe response failed", "error", err)
	}
}
