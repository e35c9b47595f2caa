package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/katalvlaran/geoplan/astar"
	"github.com/katalvlaran/geoplan/bfs"
	"github.com/katalvlaran/geoplan/core"
	"github.com/katalvlaran/geoplan/geo"
)

// health handles GET /health
func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	snap := s.graph.Snapshot()
	s.respondJSON(w, http.StatusOK, healthDTO{Status: "ok", Points: snap.NumPoints(), Routes: snap.NumRoutes()})
}

// listPoints handles GET /points
func (s *Server) listPoints(w http.ResponseWriter, _ *http.Request) {
	pts := s.graph.Points()
	out := make([]pointDTO, 0, len(pts))
	for _, p := range pts {
		out = append(out, toPoint(p))
	}
	s.respondJSON(w, http.StatusOK, out)
}

// getPoint handles GET /points/{pointID}
func (s *Server) getPoint(w http.ResponseWriter, r *http.Request) {
	p, err := s.graph.GetPoint(geo.ParsePointID(chi.URLParam(r, "pointID")))
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, toPoint(p))
}

// listRoutes handles GET /routes
func (s *Server) listRoutes(w http.ResponseWriter, _ *http.Request) {
	rts := s.graph.Routes()
	out := make([]routeDTO, 0, len(rts))
	for _, rt := range rts {
		out = append(out, toRoute(rt))
	}
	s.respondJSON(w, http.StatusOK, out)
}

// getRoute handles GET /routes/{routeID}
func (s *Server) getRoute(w http.ResponseWriter, r *http.Request) {
	rt, err := s.graph.GetRoute(geo.ParseRouteID(chi.URLParam(r, "routeID")))
	if err != nil {
		s.respondError(w, http.StatusNotFound, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, toRoute(rt))
}

// path handles GET /path?from=&to=
func (s *Server) path(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	from, to := q.Get("from"), q.Get("to")
	if from == "" || to == "" {
		s.respondError(w, http.StatusBadRequest, "query parameters from and to are required")
		return
	}
	origin, destination := geo.ParsePointID(from), geo.ParsePointID(to)

	start := time.Now()
	res, err := astar.Search(s.graph.Snapshot(), origin, destination)
	if s.metrics != nil {
		s.metrics.ObserveSearch(res, err, time.Since(start))
	}
	if err != nil {
		status := searchStatus(err)
		if status == http.StatusInternalServerError {
			s.logger.Error("search failed",
				zap.String("from", from),
				zap.String("to", to),
				zap.Error(err),
			)
		}
		s.respondError(w, status, err.Error())
		return
	}
	s.respondJSON(w, http.StatusOK, toPath(origin, destination, res))
}

// searchStatus maps a search error to its HTTP status.
func searchStatus(err error) int {
	switch {
	case errors.Is(err, astar.ErrEmptyGraph):
		return http.StatusConflict
	case errors.Is(err, astar.ErrUnknownPoint):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// reach handles GET /reach/{pointID}?max_depth=
func (s *Server) reach(w http.ResponseWriter, r *http.Request) {
	start := geo.ParsePointID(chi.URLParam(r, "pointID"))

	opts := []bfs.Option{bfs.WithContext(r.Context())}
	if raw := r.URL.Query().Get("max_depth"); raw != "" {
		d, err := strconv.Atoi(raw)
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "max_depth must be an integer")
			return
		}
		opts = append(opts, bfs.WithMaxDepth(d))
	}

	res, err := bfs.BFS(s.graph.Snapshot(), start, opts...)
	switch {
	case err == nil:
		s.respondJSON(w, http.StatusOK, toReach(start, res))
	case errors.Is(err, bfs.ErrStartNotFound), errors.Is(err, core.ErrPointNotFound):
		s.respondError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, bfs.ErrOptionViolation):
		s.respondError(w, http.StatusBadRequest, err.Error())
	default:
		s.logger.Error("reachability failed", zap.String("point", start.String()), zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
	}
}
