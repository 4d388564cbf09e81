package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/registration-flow/internal/adapters/http/dto"
	"github.com/jsamuelsen11/registration-flow/internal/platform/logging"
	"github.com/jsamuelsen11/registration-flow/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// HealthHandler serves the liveness and readiness probes.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a new HealthHandler with the given health registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. Always returns 200 OK.
func (h *HealthHandler) Liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, http.StatusOK, dto.HealthResponse{Status: statusOK})
}

// Readiness handles GET /health/ready. Returns 200 when every registered
// dependency is healthy and 503 otherwise; failing checks are logged at WARN.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	results := h.registry.CheckAll(r.Context())

	checks := make(map[string]string, len(results))
	var failing []string
	for name, err := range results {
		if err != nil {
			checks[name] = err.Error()
			failing = append(failing, name)
		} else {
			checks[name] = statusOK
		}
	}

	resp := dto.HealthResponse{Status: statusReady, Checks: checks}
	code := http.StatusOK
	if len(failing) > 0 {
		slices.Sort(failing)
		logging.FromContext(r.Context()).WarnContext(r.Context(), "readiness check failed",
			slog.Any("failing", failing),
		)
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, code, resp)
}
