// Package core provides the route-network Graph: an ordered set of geo.Point
// values and an ordered set of geo.Route values, loaded once in bulk and read
// concurrently afterwards.
//
// The Graph G = (P,R) keeps these invariants from the moment a Load succeeds:
//
//   - no two points share an id;
//   - no two routes share an id;
//   - both endpoints of every route name a point of P.
//
// Storage order is load order. It is part of the observable contract: Points,
// Routes and IncidentRoutes enumerate in that order, and search tie-breaks
// depend on it.
//
// Lifecycle:
//
//	NewGraph()      – empty graph.
//	Load(p, r)      – transactional bulk replace: the sources are parsed and
//	                  validated into a fresh Snapshot; only a fully valid
//	                  Snapshot is swapped in. Any failure leaves the previous
//	                  contents untouched.
//	Clear()         – back to empty.
//
// Points and routes are never added, edited or removed individually.
//
// Read API (on *Graph and *Snapshot):
//
//	Empty() bool                                  // O(1)
//	GetPoint(id geo.PointID) (geo.Point, error)   // O(1), ErrPointNotFound
//	GetRoute(id geo.RouteID) (geo.Route, error)   // O(1), ErrRouteNotFound
//	IncidentRoutes(id geo.PointID) []geo.Route    // O(deg), storage order
//	Points() []geo.Point, Routes() []geo.Route    // O(P), O(R) copies
//	NumPoints(), NumRoutes()                      // O(1)
//
// Concurrency:
//
//	A Snapshot is immutable once published. Graph guards its current Snapshot
//	pointer with a sync.RWMutex, so reads and Load never interleave inside one
//	call. Callers that issue many reads that must agree with each other (a
//	search) take one Snapshot and read from it.
package core
