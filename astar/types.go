package astar

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/geoplan/core"
	"github.com/katalvlaran/geoplan/geo"
)

// Sentinel errors returned (wrapped in *SearchError) by Search.
var (
	// ErrEmptyGraph indicates that the graph is nil or holds no points.
	ErrEmptyGraph = errors.New("astar: graph is empty")

	// ErrUnknownPoint indicates that the origin or the destination is not a loaded point.
	ErrUnknownPoint = errors.New("astar: unknown point")

	// ErrInternal indicates a graph that violates its load-time invariants.
	ErrInternal = errors.New("astar: inconsistent graph")
)

// Numeric search error codes.
const (
	CodeEmptyGraph = iota + 1
	CodeUnknownPoint
	CodeOriginHeuristic
	CodeSuccessor
	CodeSuccessorHeuristic
	CodePredecessor
)

// NoPath is the Result.Length reported when the destination is unreachable.
const NoPath = -1.0

// Graph is the read surface the search needs. *core.Graph and *core.Snapshot
// implement it.
type Graph interface {
	Empty() bool
	GetPoint(id geo.PointID) (geo.Point, error)
	GetRoute(id geo.RouteID) (geo.Route, error)
	IncidentRoutes(id geo.PointID) []geo.Route
}

// snapshotter is implemented by graphs that can pin an immutable view.
type snapshotter interface {
	Snapshot() *core.Snapshot
}

// SearchError reports a failed search with its numeric code.
type SearchError struct {
	Code        int
	Origin      geo.PointID
	Destination geo.PointID
	Err         error // underlying cause, may be nil
}

// Error formats as "astar: error <code> computing path <origin>→<destination>: <cause>".
func (e *SearchError) Error() string {
	msg := fmt.Sprintf("astar: error %d computing path %s→%s", e.Code, e.Origin, e.Destination)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes the code's sentinel and the cause.
func (e *SearchError) Unwrap() []error {
	var kind error
	switch e.Code {
	case CodeEmptyGraph:
		kind = ErrEmptyGraph
	case CodeUnknownPoint:
		kind = ErrUnknownPoint
	default:
		kind = ErrInternal
	}
	if e.Err == nil {
		return []error{kind}
	}
	return []error{kind, e.Err}
}

// Node is one search state: a point reached through Route with accumulated
// length G and heuristic H. The origin node has the empty Route.
type Node struct {
	Point geo.PointID
	Route geo.RouteID
	G     float64
	H     float64
}

// F returns the estimated total length G + H.
func (n Node) F() float64 { return n.G + n.H }

// Segment is one step of a path: the route taken and the point it reaches.
// The first segment of a path has the empty Route and names the origin.
type Segment struct {
	Route geo.RouteID
	Point geo.PointID
}

// Result is the outcome of a Search.
type Result struct {
	Length float64   // total length, or NoPath
	Path   []Segment // origin to destination inclusive; empty when no path
	Open   int       // frontier size at termination
	Closed int       // expanded nodes at termination
}

// Found reports whether a path was found.
func (r Result) Found() bool { return r.Length >= 0 && len(r.Path) > 0 }

// Options configures Search.
//
// Logger   – receives a debug entry per expansion (default: no-op).
// OnExpand – called with every node moved from Open to Closed, in order.
type Options struct {
	Logger   *zap.Logger
	OnExpand func(n Node)
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// WithLogger sets the logger for expansion traces. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(n Node)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// DefaultOptions returns the no-op configuration.
func DefaultOptions() Options {
	return Options{
		Logger:   zap.NewNop(),
		OnExpand: func(Node) {},
	}
}
