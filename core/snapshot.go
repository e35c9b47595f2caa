// SPDX-License-Identifier: MIT
//
// File: snapshot.go
// Role: Snapshot construction and read-only queries.
// Determinism:
//   - Points(), Routes() and IncidentRoutes() follow storage (load) order.

package core

import (
	"fmt"

	"github.com/katalvlaran/geoplan/dataset"
	"github.com/katalvlaran/geoplan/geo"
)

// newSnapshot indexes a validated dataset.Set.
//
// Implementation:
//   - Stage 1: Take ownership of the point and route slices (the set is not reused).
//   - Stage 2: Index points and routes by id.
//   - Stage 3: Append every route index to the incidence list of both endpoints,
//     walking routes in storage order so each list is ascending.
//
// Complexity: O(P + R) time and space.
func newSnapshot(set *dataset.Set) *Snapshot {
	s := &Snapshot{
		points:   set.Points,
		routes:   set.Routes,
		pointIdx: make(map[geo.PointID]int, len(set.Points)),
		routeIdx: make(map[geo.RouteID]int, len(set.Routes)),
		incident: make(map[geo.PointID][]int, len(set.Points)),
	}
	for i, p := range s.points {
		s.pointIdx[p.ID] = i
	}
	for i, r := range s.routes {
		s.routeIdx[r.ID] = i
		s.incident[r.End1] = append(s.incident[r.End1], i)
		if r.End2 != r.End1 {
			s.incident[r.End2] = append(s.incident[r.End2], i)
		}
	}
	return s
}

// Empty reports whether no points are loaded.
func (s *Snapshot) Empty() bool { return s == nil || len(s.points) == 0 }

// NumPoints returns the number of loaded points.
func (s *Snapshot) NumPoints() int { return len(s.points) }

// NumRoutes returns the number of loaded routes.
func (s *Snapshot) NumRoutes() int { return len(s.routes) }

// GetPoint returns the point with the given id, or an error wrapping ErrPointNotFound.
// Complexity: O(1).
func (s *Snapshot) GetPoint(id geo.PointID) (geo.Point, error) {
	i, ok := s.pointIdx[id]
	if !ok {
		return geo.Point{}, fmt.Errorf("%w: %q", ErrPointNotFound, id)
	}
	return s.points[i], nil
}

// GetRoute returns the route with the given id, or an error wrapping ErrRouteNotFound.
// Complexity: O(1).
func (s *Snapshot) GetRoute(id geo.RouteID) (geo.Route, error) {
	i, ok := s.routeIdx[id]
	if !ok {
		return geo.Route{}, fmt.Errorf("%w: %q", ErrRouteNotFound, id)
	}
	return s.routes[i], nil
}

// IncidentRoutes returns the routes touching id, in storage order.
// An unknown id has no incident routes.
// Complexity: O(deg(id)).
func (s *Snapshot) IncidentRoutes(id geo.PointID) []geo.Route {
	idx := s.incident[id]
	out := make([]geo.Route, len(idx))
	for k, i := range idx {
		out[k] = s.routes[i]
	}
	return out
}

// Points returns a copy of all points in storage order.
func (s *Snapshot) Points() []geo.Point {
	out := make([]geo.Point, len(s.points))
	copy(out, s.points)
	return out
}

// Routes returns a copy of all routes in storage order.
func (s *Snapshot) Routes() []geo.Route {
	out := make([]geo.Route, len(s.routes))
	copy(out, s.routes)
	return out
}
