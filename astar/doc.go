// Package astar computes the shortest route between two points of a core
// graph with the A* algorithm, using the great-circle distance to the
// destination as heuristic.
//
// A* expands frontier nodes in ascending f = g + h, where g is the length
// accumulated from the origin and h = geo.Point.Distance(node, destination).
// When every route is at least as long as the straight-line distance between
// its endpoints the heuristic is admissible and consistent, and the first
// expansion of the destination carries an optimal length.
//
// Search state:
//
//   - Open: a binary min-heap keyed by (f, seq). seq is a monotonically
//     increasing insertion counter, so among nodes of equal f the one inserted
//     first is expanded first (FIFO tie-break). An index keyed by point id
//     gives O(1) membership and O(log n) replacement.
//   - Closed: expanded nodes keyed by point id. A closed point is never
//     re-opened.
//
// Successors are generated from the routes incident to the expanded point in
// graph storage order. A successor for a point already in Open replaces the
// queued node only when its f is strictly smaller; the replacement is queued
// as a new insertion.
//
// Complexity:
//
//   - Time:  O((P + R) log P)
//   - Space: O(P)
//
// Result:
//
//	Length – total route length to the destination, or NoPath (-1) when the
//	         destination is unreachable. Unreachable is not an error.
//	Path   – (route, point) segments from origin to destination; the origin
//	         segment carries the empty RouteID. Empty when no path exists.
//	Open, Closed – sizes of Open and Closed at termination, always reported.
//
// Errors (*SearchError, numeric Code):
//
//	1 ErrEmptyGraph    – the graph holds no points.
//	2 ErrUnknownPoint  – origin or destination is not a loaded point.
//	3 ErrInternal      – origin heuristic could not be computed.
//	4 ErrInternal      – a successor point could not be resolved.
//	5 ErrInternal      – a successor heuristic could not be computed.
//	6 ErrInternal      – a predecessor could not be resolved while rebuilding the path.
//
// Codes 3–6 can only be produced by a graph that breaks the load-time
// invariants of package core.
//
// Example usage:
//
//	res, err := astar.Search(g, "A", "C")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    fmt.Printf("%.1f km via %d segments\n", res.Length, len(res.Path))
//	}
package astar
