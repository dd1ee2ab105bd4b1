package server

import (
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
)

// HealthHandler reports liveness for load balancers and container probes.
type HealthHandler struct {
	logger *log.Logger
}

// NewHealthHandler creates a [HealthHandler] that logs failed writes to logger.
func NewHealthHandler(logger *log.Logger) HealthHandler {
	return HealthHandler{logger: logger}
}

func (h HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "ok"}); err != nil && h.logger != nil {
		h.logger.Error("health response failed", "err", err)
	}
}
