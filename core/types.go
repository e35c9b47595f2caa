// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph, Snapshot, options and sentinel errors.
// Concurrency:
//   - Graph.mu guards the snap pointer only; Snapshot contents are never mutated after publication.

package core

import (
	"errors"
	"sync"

	"go.uber.org/zap"

	"github.com/katalvlaran/geoplan/geo"
)

// Sentinel errors for graph lookups.
var (
	// ErrPointNotFound indicates a lookup for a point id that is not loaded.
	ErrPointNotFound = errors.New("core: point not found")

	// ErrRouteNotFound indicates a lookup for a route id that is not loaded.
	ErrRouteNotFound = errors.New("core: route not found")
)

// LoadHook observes every Load attempt: the resulting counts on success, or
// the load error (with the previous counts still live) on failure.
type LoadHook func(points, routes int, err error)

// GraphOption configures a Graph at construction.
type GraphOption func(g *Graph)

// WithLogger sets the logger used for load diagnostics. A nil logger is ignored.
func WithLogger(l *zap.Logger) GraphOption {
	return func(g *Graph) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithLoadHook registers fn to run after every Load attempt.
func WithLoadHook(fn LoadHook) GraphOption {
	return func(g *Graph) {
		if fn != nil {
			g.hooks = append(g.hooks, fn)
		}
	}
}

// Graph is the live route network. The zero value is not usable; call NewGraph.
type Graph struct {
	mu     sync.RWMutex // guards snap
	snap   *Snapshot
	logger *zap.Logger
	hooks  []LoadHook
}

// Snapshot is an immutable view of the graph contents at one point in time.
//
// points and routes hold storage order; the index maps locate an entity by id
// and incident lists, per point, the indices of touching routes in ascending
// storage order.
type Snapshot struct {
	points   []geo.Point
	routes   []geo.Route
	pointIdx map[geo.PointID]int
	routeIdx map[geo.RouteID]int
	incident map[geo.PointID][]int
}

// emptySnapshot is shared by every empty graph; it is never mutated.
var emptySnapshot = &Snapshot{
	pointIdx: map[geo.PointID]int{},
	routeIdx: map[geo.RouteID]int{},
	incident: map[geo.PointID][]int{},
}

// NewGraph returns an empty Graph configured by opts.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{snap: emptySnapshot, logger: zap.NewNop()}
	for _, opt := range opts {
		opt(g)
	}
	return g
}
