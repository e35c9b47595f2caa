// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Graph lifecycle (Load, Clear) and read facade over the current Snapshot.
// Concurrency:
//   - Readers take mu.RLock only long enough to copy the snap pointer.
//   - Load parses and indexes without holding mu; the swap itself is the only write.

package core

import (
	"go.uber.org/zap"

	"github.com/katalvlaran/geoplan/dataset"
	"github.com/katalvlaran/geoplan/geo"
)

// Snapshot returns the current immutable contents of g, or nil for a nil *Graph.
// Complexity: O(1).
func (g *Graph) Snapshot() *Snapshot {
	if g == nil {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.snap
}

// Load replaces the contents of g with the points and routes read from the
// two sources.
//
// Implementation:
//   - Stage 1: dataset.Read parses and validates both sources into a staging Set.
//   - Stage 2: On failure, log and return the *dataset.Error; g is untouched.
//   - Stage 3: Index the Set into a new Snapshot outside the lock.
//   - Stage 4: Swap the snapshot pointer under the write lock.
//
// Errors:
//   - *dataset.Error carrying the numeric load code (see package dataset).
//
// Complexity: O(P + R) time and space.
func (g *Graph) Load(points, routes dataset.Source) error {
	set, err := dataset.Read(points, routes)
	if err != nil {
		g.logger.Warn("graph load rejected",
			zap.String("points", points.Name),
			zap.String("routes", routes.Name),
			zap.Error(err))
		g.notify(err)
		return err
	}

	next := newSnapshot(set)

	g.mu.Lock()
	g.snap = next
	g.mu.Unlock()

	g.logger.Info("graph loaded",
		zap.String("points_source", points.Name),
		zap.String("routes_source", routes.Name),
		zap.Int("points", next.NumPoints()),
		zap.Int("routes", next.NumRoutes()))
	g.notify(nil)
	return nil
}

// LoadFiles is Load over two file paths.
func (g *Graph) LoadFiles(pointsPath, routesPath string) error {
	return g.Load(dataset.FileSource(pointsPath), dataset.FileSource(routesPath))
}

// Clear empties g.
func (g *Graph) Clear() {
	g.mu.Lock()
	g.snap = emptySnapshot
	g.mu.Unlock()
}

// notify runs the load hooks with the counts now live.
func (g *Graph) notify(err error) {
	s := g.Snapshot()
	for _, h := range g.hooks {
		h(s.NumPoints(), s.NumRoutes(), err)
	}
}

// Empty reports whether no points are loaded.
func (g *Graph) Empty() bool { return g.Snapshot().Empty() }

// NumPoints returns the number of loaded points.
func (g *Graph) NumPoints() int { return g.Snapshot().NumPoints() }

// NumRoutes returns the number of loaded routes.
func (g *Graph) NumRoutes() int { return g.Snapshot().NumRoutes() }

// GetPoint returns the point with the given id, or an error wrapping ErrPointNotFound.
func (g *Graph) GetPoint(id geo.PointID) (geo.Point, error) { return g.Snapshot().GetPoint(id) }

// GetRoute returns the route with the given id, or an error wrapping ErrRouteNotFound.
func (g *Graph) GetRoute(id geo.RouteID) (geo.Route, error) { return g.Snapshot().GetRoute(id) }

// IncidentRoutes returns the routes touching id, in storage order.
func (g *Graph) IncidentRoutes(id geo.PointID) []geo.Route { return g.Snapshot().IncidentRoutes(id) }

// Points returns a copy of all points in storage order.
func (g *Graph) Points() []geo.Point { return g.Snapshot().Points() }

// Routes returns a copy of all routes in storage order.
func (g *Graph) Routes() []geo.Route { return g.Snapshot().Routes() }
