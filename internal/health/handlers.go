package health

import (
	"context"
	"encoding/json"
	"net/http"
)

// Checker represents dependencies that can be probed for readiness.
type Checker interface {
	CheckRegistries(ctx context.Context) error
}

// Handler exposes HTTP handlers for health endpoints.
type Handler struct {
	Checker Checker
}

// Live reports liveness status.
func (h Handler) Live(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// Ready reports readiness based on registry probes.
func (h Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.Checker == nil {
		http.Error(w, "dependencies unavailable", http.StatusServiceUnavailable)
		return
	}
	registryStatus := "ok"
	if err := h.Checker.CheckRegistries(r.Context()); err != nil {
		registryStatus = err.Error()
	}
	status := map[string]string{
		"registries": registryStatus,
	}
	w.Header().Set("Content-Type", "application/json")
	if registryStatus != "ok" {
		w.WriteHeader(http.StatusServiceUnavailable)
	} else {
		w.WriteHeader(http.StatusOK)
	}
	_ = json.NewEncoder(w).Encode(status)
}
