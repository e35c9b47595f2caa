// Package httpapi serves a read-only JSON view of a route network:
// points, routes, shortest paths and reachability.
//
// Endpoints (all GET, JSON bodies):
//
//	/health                       liveness and network size
//	/points, /points/{pointID}    point listing and lookup
//	/routes, /routes/{routeID}    route listing and lookup
//	/path?from=&to=               A* shortest path with open/closed counts
//	/reach/{pointID}?max_depth=   points reachable in hops, BFS order
//	/metrics                      Prometheus exposition, when enabled
//
// Errors are {"error": true, "message": "...", "code": status}: 400 bad query,
// 404 unknown id, 409 no network loaded, 500 anything else.
package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/katalvlaran/geoplan/core"
	"github.com/katalvlaran/geoplan/internal/metrics"
)

// Server holds the dependencies of the HTTP handlers.
type Server struct {
	graph   *core.Graph
	metrics *metrics.Collector
	logger  *zap.Logger
	origins []string
}

// Option configures a Server.
type Option func(*Server)

// WithLogger sets the request and error logger. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithMetrics records searches on c and mounts its registry at /metrics.
func WithMetrics(c *metrics.Collector) Option {
	return func(s *Server) { s.metrics = c }
}

// WithAllowedOrigins sets the CORS allow-list. The default allows any origin.
func WithAllowedOrigins(origins ...string) Option {
	return func(s *Server) {
		if len(origins) > 0 {
			s.origins = origins
		}
	}
}

// NewServer returns a Server reading from g.
func NewServer(g *core.Graph, opts ...Option) *Server {
	s := &Server{graph: g, logger: zap.NewNop(), origins: []string{"*"}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Handler builds the router with its middleware chain.
func (s *Server) Handler() http.Handler {
	router := chi.NewRouter()

	router.Use(RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(Logger(s.logger))
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins: s.origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         300,
	}))

	router.Get("/health", s.health)

	router.Route("/points", func(r chi.Router) {
		r.Get("/", s.listPoints)
		r.Get("/{pointID}", s.getPoint)
	})
	router.Route("/routes", func(r chi.Router) {
		r.Get("/", s.listRoutes)
		r.Get("/{routeID}", s.getRoute)
	})
	router.Get("/path", s.path)
	router.Get("/reach/{pointID}", s.reach)

	if s.metrics != nil {
		router.Handle("/metrics", s.metrics.Handler())
	}
	return router
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, errorDTO{Error: true, Message: message, Code: status})
}
