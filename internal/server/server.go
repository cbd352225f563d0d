// Package server exposes the estimation core over HTTP: the estimation
// endpoint, the static city catalog, the persisted estimate history and
// a health probe.
package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/seewa-ng/helios/internal/models"
	"github.com/seewa-ng/helios/internal/repository"
)

// Estimator runs a single solar estimation. Implemented by
// service.EstimationService.
type Estimator interface {
	Estimate(ctx context.Context, req models.EstimationRequest) (*models.EstimationResult, error)
}

// Pinger reports database liveness for the health probe. Satisfied by
// *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Server holds the handler dependencies. The repository and pinger may
// be nil when no database is configured; estimation stays available.
type Server struct {
	log       *slog.Logger
	estimator Estimator
	repo      repository.Interface
	db        Pinger
}

// New creates the HTTP server facade.
func New(log *slog.Logger, estimator Estimator, repo repository.Interface, db Pinger) *Server {
	return &Server{log: log, estimator: estimator, repo: repo, db: db}
}

// Routes returns a chi.Router with all API routes mounted.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/api/solar-estimate", s.SolarEstimate)
	r.Get("/api/cities", s.Cities)
	r.Get("/api/estimates", s.RecentEstimates)
	r.Get("/healthz", s.Health)
	return r
}

// Health answers the liveness probe, pinging the database when one is
// configured.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			s.log.ErrorContext(r.Context(), "Health check DB ping failed", "error", err)
			http.Error(w, "DB ping failed", http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte("OK")); err != nil {
		s.log.ErrorContext(r.Context(), "failed to write reply", "error", err)
	}
}

// writeJSON serializes v with the given status code.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("failed to encode response", "error", err)
	}
}

// writeError emits the uniform failure payload: success=false plus a
// human-readable message.
func (s *Server) writeError(w http.ResponseWriter, status int, msg string) {
	s.writeJSON(w, status, map[string]any{
		"success": false,
		"error":   msg,
	})
}
