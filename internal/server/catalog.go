package server

import (
	"net/http"
	"strconv"

	"github.com/seewa-ng/helios/internal/catalog"
)

// cityJSON mirrors the catalog entry for the lookup endpoint.
type cityJSON struct {
	Name       string  `json:"name"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	Irradiance float64 `json:"irradiance"`
	Region     string  `json:"region"`
}

// Cities serves the fixed city table verbatim, independent of the
// estimation flow.
func (s *Server) Cities(w http.ResponseWriter, _ *http.Request) {
	cities := catalog.Cities()
	out := make([]cityJSON, 0, len(cities))
	for _, c := range cities {
		out = append(out, cityJSON{
			Name:       c.Name,
			Lat:        c.Location.Latitude,
			Lng:        c.Location.Longitude,
			Irradiance: c.Irradiance,
			Region:     string(c.Region),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

const (
	defaultHistoryLimit = 10
	maxHistoryLimit     = 100
)

// RecentEstimates lists the most recently persisted estimate summaries.
// Answers 503 when no estimate store is configured.
func (s *Server) RecentEstimates(w http.ResponseWriter, r *http.Request) {
	if s.repo == nil {
		s.writeError(w, http.StatusServiceUnavailable, "estimate history is not configured")
		return
	}

	limit := defaultHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			s.writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = min(parsed, maxHistoryLimit)
	}

	summaries, err := s.repo.RecentEstimates(r.Context(), limit)
	if err != nil {
		s.log.ErrorContext(r.Context(), "Failed to fetch recent estimates", "error", err)
		s.writeError(w, http.StatusInternalServerError, "failed to fetch estimates")
		return
	}

	s.writeJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"estimates": summaries,
	})
}
