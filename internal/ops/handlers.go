// Package ops is the operational HTTP surface of the host process: liveness,
// readiness, and request logging. It carries no application functionality;
// the app itself is driven in-process, not over HTTP.
package ops

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Handler serves the operational endpoints.
type Handler struct {
	ready  func() bool
	logger *slog.Logger
}

// NewHandler constructs the ops handler. ready reports whether the app has
// finished bootstrapping.
func NewHandler(ready func() bool, logger *slog.Logger) *Handler {
	return &Handler{ready: ready, logger: logger}
}

// NewRouter mounts the operational endpoints.
func NewRouter(h *Handler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", h.Health)
	mux.HandleFunc("/ready", h.Ready)
	return mux
}

// Health reports process liveness.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready reports whether bootstrap has completed and records are loaded.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.ready != nil && !h.ready() {
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "starting"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
