// Package http exposes a read-only debug surface for a running router:
// current route, registry depth and lane status. Reads are best-effort
// snapshots; a batch may be mid-flight while they are served.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/aretw0/wayline/pkg/domain"
)

// Introspector is the view of a router the debug server needs.
type Introspector interface {
	CurrentRoute() domain.Route
	Depth() int
	InFlight() bool
	QueueLen() int
}

// Server serves router introspection endpoints.
type Server struct {
	router  Introspector
	logger  *slog.Logger
	metrics http.Handler
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the logger for request failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithMetricsHandler mounts a metrics endpoint (e.g. promhttp) at /metrics.
func WithMetricsHandler(h http.Handler) Option {
	return func(s *Server) {
		s.metrics = h
	}
}

// NewHandler creates an HTTP handler exposing the router's state.
func NewHandler(router Introspector, opts ...Option) http.Handler {
	s := &Server{
		router: router,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Get("/healthz", s.handleHealth)
	r.Get("/route", s.handleRoute)
	r.Get("/status", s.handleStatus)
	if s.metrics != nil {
		r.Method(http.MethodGet, "/metrics", s.metrics)
	}
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, map[string]string{"status": "ok"})
}

func (s *Server) handleRoute(w http.ResponseWriter, r *http.Request) {
	route := s.router.CurrentRoute()
	s.writeJSON(w, map[string]any{
		"route": route.Strings(),
		"path":  route.String(),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	route := s.router.CurrentRoute()
	s.writeJSON(w, map[string]any{
		"route":     route.Strings(),
		"path":      route.String(),
		"depth":     s.router.Depth(),
		"in_flight": s.router.InFlight(),
		"queue_len": s.router.QueueLen(),
	})
}

func (s *Server) writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.logger.Error("failed to encode debug response", "err", err)
	}
}
