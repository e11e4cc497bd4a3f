package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"ollama-scriptgen/internal/contextutil"
)

// HealthHandler handles HTTP requests for health checks.
type HealthHandler struct {
	now    func() time.Time
	logger *slog.Logger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{
		now:    time.Now,
		logger: slog.Default(),
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	// Overall health status, always "healthy" while the process serves requests
	Status string `json:"status"`

	// Timestamp of the health check
	Timestamp string `json:"timestamp"`
}

// ServeHTTP reports liveness. The service has no dependencies, so it is healthy
// whenever it can answer.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContextOr(ctx, h.logger)

	if r.Method != http.MethodGet {
		logger.WarnContext(ctx, "method not allowed", "method", r.Method)
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: h.now().UTC().Format(time.RFC3339),
	}

	if err := writeJSON(w, http.StatusOK, response); err != nil {
		logger.ErrorContext(ctx, "failed to encode health response", "error", err)
	}
}
