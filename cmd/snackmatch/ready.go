package main

import (
	"context"
	"log/slog"
	"net/http"
	"sync/atomic"
)

// Readyable is implemented by storage backends that need a connectivity
// probe before the service reports ready.
type Readyable interface {
	Ready(context.Context) error
}

// readiness serves /ready. Probes run on every request until the whole
// set passes once; from then on the endpoint answers without probing, so
// a backend that degrades later does not flap the pod.
type readiness struct {
	passed atomic.Bool
	probes []Readyable
}

func newReadiness(probes ...Readyable) *readiness {
	return &readiness{probes: probes}
}

func (h *readiness) check(ctx context.Context) error {
	if h.passed.Load() {
		return nil
	}
	for _, probe := range h.probes {
		if err := probe.Ready(ctx); err != nil {
			return err
		}
	}
	h.passed.Store(true)
	return nil
}

func (h *readiness) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.check(r.Context()); err != nil {
		slog.WarnContext(r.Context(), "readiness probe failed", "error", err)
		http.Error(w, "not ready: "+err.Error(), http.StatusServiceUnavailable)
		return
	}
	if _, err := w.Write([]byte("ok")); err != nil {
		slog.ErrorContext(r.Context(), "failed to write readiness response", "error", err)
	}
}
