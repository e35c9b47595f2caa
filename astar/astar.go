package astar

import (
	"container/heap"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/geoplan/geo"
)

// Search computes the shortest path from origin to destination in g.
//
// Validation (in order):
//  1. g must be non-nil and hold at least one point (code 1).
//  2. origin and destination must be loaded points (code 2).
//
// When g can pin a snapshot (*core.Graph), the whole search reads from that
// one snapshot. g is never mutated, so repeated calls on an unchanged graph
// return identical results.
//
// An unreachable destination is not an error: the Result carries NoPath, an
// empty Path and the final Open/Closed sizes.
//
// Complexity:
//
//   - Time:  O((P + R) log P)
//   - Space: O(P)
func Search(g Graph, origin, destination geo.PointID, opts ...Option) (Result, error) {
	// 1) Build options.
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	fail := func(code int, err error) (Result, error) {
		return Result{}, &SearchError{Code: code, Origin: origin, Destination: destination, Err: err}
	}

	// 2) Pin one consistent view of the graph.
	if g == nil {
		return fail(CodeEmptyGraph, nil)
	}
	if s, ok := g.(snapshotter); ok {
		snap := s.Snapshot()
		if snap == nil {
			return fail(CodeEmptyGraph, nil)
		}
		g = snap
	}
	if g.Empty() {
		return fail(CodeEmptyGraph, nil)
	}

	// 3) Resolve both endpoints.
	orig, err := g.GetPoint(origin)
	if err != nil {
		return fail(CodeUnknownPoint, err)
	}
	dest, err := g.GetPoint(destination)
	if err != nil {
		return fail(CodeUnknownPoint, err)
	}

	r := &runner{
		g:       g,
		options: cfg,
		dest:    dest,
		open:    make(openPQ, 0, 16),
		inOpen:  make(map[geo.PointID]*openItem),
		closed:  make(map[geo.PointID]Node),
	}

	// 4) Seed Open with the origin and run to completion.
	if err = r.init(orig); err != nil {
		return fail(CodeOriginHeuristic, err)
	}
	if code, err := r.process(); err != nil {
		return fail(code, err)
	}

	res := Result{
		Length: NoPath,
		Path:   []Segment{},
		Open:   r.open.Len(),
		Closed: len(r.closed),
	}
	if !r.found {
		return res, nil
	}

	// 5) Rebuild the path from the destination node back through Closed.
	if res.Path, err = r.reconstruct(); err != nil {
		return fail(CodePredecessor, err)
	}
	res.Length = r.goal.G

	return res, nil
}

// runner holds the mutable state of a single search.
type runner struct {
	g       Graph                     // read-only within Search
	options Options                   // logger and hooks
	dest    geo.Point                 // destination point, heuristic target
	open    openPQ                    // frontier, min-heap on (f, seq)
	inOpen  map[geo.PointID]*openItem // point id → queued item
	closed  map[geo.PointID]Node      // point id → expanded node
	seq     uint64                    // next insertion sequence
	found   bool                      // destination expanded
	goal    Node                      // destination node once found
}

// init pushes the origin node with g = 0 and h = distance to the destination.
// Distance validates both points, so the destination is checked once here.
func (r *runner) init(orig geo.Point) error {
	h, err := orig.Distance(r.dest)
	if err != nil {
		return err
	}
	heap.Init(&r.open)
	r.push(Node{Point: orig.ID, G: 0, H: h})
	return nil
}

// push queues n behind every queued node of equal f.
func (r *runner) push(n Node) {
	item := &openItem{node: n, seq: r.seq}
	r.seq++
	heap.Push(&r.open, item)
	r.inOpen[n.Point] = item
}

// process is the main loop: pop the best node, close it, stop on the
// destination, otherwise expand it. It returns the failing code with any error.
func (r *runner) process() (int, error) {
	for r.open.Len() > 0 {
		// 1) Move the front of Open to Closed.
		cur := heap.Pop(&r.open).(*openItem).node
		delete(r.inOpen, cur.Point)
		r.closed[cur.Point] = cur
		r.options.OnExpand(cur)
		if ce := r.options.Logger.Check(zap.DebugLevel, "astar expand"); ce != nil {
			ce.Write(
				zap.String("point", cur.Point.String()),
				zap.String("via", cur.Route.String()),
				zap.Float64("g", cur.G),
				zap.Float64("h", cur.H),
				zap.Int("open", r.open.Len()),
				zap.Int("closed", len(r.closed)))
		}

		// 2) Stop on the destination.
		if cur.Point == r.dest.ID {
			r.found = true
			r.goal = cur
			return 0, nil
		}

		// 3) Generate successors.
		if code, err := r.expand(cur); err != nil {
			return code, err
		}
	}

	return 0, nil
}

// expand generates one successor per route incident to cur, in storage order,
// and merges each into Open:
//
//   - a successor for a closed point is dropped;
//   - a successor for a queued point replaces it only with a strictly smaller f;
//   - any other successor is queued.
func (r *runner) expand(cur Node) (int, error) {
	for _, route := range r.g.IncidentRoutes(cur.Point) {
		next, err := route.OtherEndpoint(cur.Point)
		if err != nil {
			return CodeSuccessor, err
		}
		pt, err := r.g.GetPoint(next)
		if err != nil {
			return CodeSuccessor, fmt.Errorf("successor of %q via %q: %w", cur.Point, route.ID, err)
		}
		// r.dest was validated by init; only the successor needs checking.
		if err := pt.Validate(); err != nil {
			return CodeSuccessorHeuristic, fmt.Errorf("distance: %w", err)
		}
		h := geo.Haversine(pt, r.dest)
		succ := Node{Point: next, Route: route.ID, G: cur.G + route.Length, H: h}

		if _, done := r.closed[next]; done {
			continue
		}
		if old, queued := r.inOpen[next]; queued {
			if succ.F() >= old.node.F() {
				continue
			}
			heap.Remove(&r.open, old.index)
		}
		r.push(succ)
	}

	return 0, nil
}

// reconstruct walks from the goal node back to the origin. Each closed node's
// predecessor is the other endpoint of the route that reached it, which was
// closed earlier, so a consistent graph yields at most len(closed)-1 steps.
func (r *runner) reconstruct() ([]Segment, error) {
	var rev []Segment
	cur := r.goal
	for cur.Route.Valid() {
		if len(rev) >= len(r.closed) {
			return nil, fmt.Errorf("predecessor chain of %q does not reach the origin", r.goal.Point)
		}
		rev = append(rev, Segment{Route: cur.Route, Point: cur.Point})

		route, err := r.g.GetRoute(cur.Route)
		if err != nil {
			return nil, err
		}
		prevID, err := route.OtherEndpoint(cur.Point)
		if err != nil {
			return nil, err
		}
		prev, ok := r.closed[prevID]
		if !ok {
			return nil, fmt.Errorf("predecessor %q of %q was never expanded", prevID, cur.Point)
		}
		cur = prev
	}
	rev = append(rev, Segment{Point: cur.Point})

	// Reverse into origin → destination order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}
	return rev, nil
}
