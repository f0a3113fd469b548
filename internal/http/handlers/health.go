package handlers

import (
	"net/http"
	"time"

	"github.com/fieldhub/admin-backend/internal/http/respond"
)

// HealthHandler reports liveness, the current timestamp, and uptime.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a health endpoint handler.
func NewHealthHandler(startedAt time.Time) *HealthHandler {
	return &HealthHandler{startedAt: startedAt}
}

// Handle serves the unauthenticated liveness check.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	respond.JSON(w, http.StatusOK, "Server is running", map[string]string{
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"uptime":    time.Since(h.startedAt).Truncate(time.Second).String(),
	})
}
