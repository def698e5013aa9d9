package main

import (
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	requestCount = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "snackmatch_http_requests_total",
		Help: "HTTP requests by method, path and status code.",
	}, []string{"method", "path", "code"})

	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name: "snackmatch_http_request_duration_seconds",
		Help: "HTTP request latency.",
	}, []string{"method", "path"})
)

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

type instrumented struct {
	http.Handler
}

func (i *instrumented) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
	i.Handler.ServeHTTP(sw, r)
	if r.URL.Path == "/ready" || r.URL.Path == "/metrics" {
		return
	}
	elapsed := time.Since(start)
	requestCount.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(sw.status)).Inc()
	requestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(elapsed.Seconds())
	slog.Info("request", "method", r.Method, "url", r.URL.Path, "status", sw.status, "duration", elapsed)
}

type recoverer struct {
	http.Handler
}

func (r *recoverer) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	defer func() {
		if err := recover(); err != nil {
			slog.ErrorContext(req.Context(), "panic recovered", "error", err, "stack", debug.Stack())
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
	}()
	r.Handler.ServeHTTP(w, req)
}

func WithMiddleware(h http.Handler) http.Handler {
	return &instrumented{
		&recoverer{
			h,
		},
	}
}
