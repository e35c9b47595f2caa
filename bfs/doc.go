// Package bfs provides breadth-first search over a route network, returning
// the set of points reachable from a start point, their hop depth and the
// route that first reached each of them.
//
// What
//
//   - Explore points in non-decreasing hop count (routes traversed) from a start point.
//   - Returns a Result containing:
//   - Order:  visit sequence
//   - Depth:  point → hops from start
//   - Parent: point → Hop{From, Route} in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a point is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual routes via WithFilterRoute.
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - Reachability diagnostics: len(Order) is the size of the start point's
//     connected component, which is exactly the Closed count an A* search
//     reports when its destination lies outside that component.
//   - Fewest-hops itineraries, independent of route lengths.
//
// Determinism
//
//	Routes are taken from Graph.IncidentRoutes, which returns them in storage
//	order, so the visit sequence is fully reproducible.
//
// Complexity (P = |points|, R = |routes|)
//
//   - Time:   O(P + R)
//   - Memory: O(P)
//
// Errors
//
//   - ErrGraphNil         if g is nil.
//   - ErrStartNotFound    if the start point is not loaded.
//   - ErrOptionViolation  for invalid options (e.g. negative MaxDepth).
//   - ErrNeighbors        if a route cannot be followed from its endpoint.
//   - Context cancellation errors.
//   - Any error returned by OnVisit (wrapped).
//
// Example
//
//	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println("reachable in ≤2 hops:", res.Order)
package bfs
