package http

import (
	"log/slog"
	"net/http"
	"time"
)

func (s *Service) handleHealth(w http.ResponseWriter, _ *http.Request) error {
	return respondJSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Inventory Management API is running",
		Timestamp: time.Now().UTC(),
	})
}

// handleDBHealth is the readiness probe; it reports 503 until the database
// answers a ping.
func (s *Service) handleDBHealth(w http.ResponseWriter, r *http.Request) error {
	if healthy, err := s.dbHealth.IsHealthy(r.Context()); err != nil || !healthy {
		if err != nil {
			s.logger.WarnContext(r.Context(), "database health check failed", slog.Any("error", err))
		}
		return respondJSON(w, http.StatusServiceUnavailable, messageResponse{
			Success: false,
			Message: "database is unavailable",
		})
	}

	return respondJSON(w, http.StatusOK, messageResponse{
		Success: true,
		Message: "database is healthy",
	})
}
