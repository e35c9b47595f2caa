// Package bfs provides tunable options and error definitions
// for breadth-first search over a route network.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/geoplan/geo"
)

// Sentinel errors for BFS execution.
var (
	// ErrStartNotFound is returned when the start id is not a loaded point.
	ErrStartNotFound = errors.New("bfs: start point not found")

	// ErrGraphNil is returned if a nil graph is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Graph is the read surface BFS needs. *core.Graph and *core.Snapshot implement it.
type Graph interface {
	GetPoint(id geo.PointID) (geo.Point, error)
	IncidentRoutes(id geo.PointID) []geo.Route
}

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*BFSOptions)

// BFSOptions holds parameters and callbacks to customize BFS execution.
type BFSOptions struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a point is enqueued, before visiting.
	// Receives point id and its depth from the start.
	OnEnqueue func(id geo.PointID, depth int)

	// OnDequeue is called immediately before visiting a point.
	OnDequeue func(id geo.PointID, depth int)

	// OnVisit is called when visiting a point. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(id geo.PointID, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// FilterRoute can skip routes by returning false.
	// Called for each route leaving the current point.
	FilterRoute func(curr geo.PointID, r geo.Route) bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns a BFSOptions with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no filtering (all routes allowed)
//   - no-op hooks (OnEnqueue, OnDequeue, OnVisit)
func DefaultOptions() BFSOptions {
	return BFSOptions{
		Ctx:         context.Background(),
		OnEnqueue:   func(geo.PointID, int) {},
		OnDequeue:   func(geo.PointID, int) {},
		OnVisit:     func(geo.PointID, int) error { return nil },
		MaxDepth:    0,
		FilterRoute: func(geo.PointID, geo.Route) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BFSOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(id geo.PointID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(id geo.PointID, depth int)) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(id geo.PointID, depth int) error) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth (inclusive).
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// WithFilterRoute skips routes when fn returns false.
func WithFilterRoute(fn func(curr geo.PointID, r geo.Route) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterRoute = fn
		}
	}
}

// Hop records how a point was first reached: from which point, over which route.
type Hop struct {
	From  geo.PointID
	Route geo.RouteID
}

// Result holds the outcome of a BFS traversal:
//   - Order: points visited, in visit sequence.
//   - Depth: map from point id to its distance (in routes) from the start.
//   - Parent: map from point id to the hop that reached it (start has none).
type Result struct {
	Order  []geo.PointID
	Depth  map[geo.PointID]int
	Parent map[geo.PointID]Hop
}

// PathTo reconstructs the fewest-hops point sequence from the start to dest.
// Returns an error if dest was not reached.
func (r *Result) PathTo(dest geo.PointID) ([]geo.PointID, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %q", dest)
	}
	// build reversed path
	path := []geo.PointID{}
	for cur := dest; ; {
		path = append(path, cur)
		hop, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = hop.From
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
