// Package geo defines the located entities of a route network: identifiers,
// points with geographic coordinates, and routes with measured lengths.
//
// Identifiers:
//
//	PointID and RouteID are distinct string-backed types. An identifier is
//	valid iff it is non-empty and contains none of the persisted separators
//	(';', '\n', '\r'). NewPointID/NewRouteID reject invalid input with
//	ErrInvalidID; ParsePointID/ParseRouteID fall back to the empty identifier.
//
// Entities:
//
//	Point{ID, Name, Latitude, Longitude}     – valid iff ID valid, |lat| ≤ 90, |lon| ≤ 180.
//	Route{ID, Name, End1, End2, Length (km)} – valid iff ids valid, End1 ≠ End2, Length > 0.
//
// Validity is declared with go-playground/validator struct tags and checked
// on demand by Valid/Validate; constructing an entity never fails.
//
// Distance:
//
//	Point.Distance returns the great-circle (haversine) distance in kilometres,
//	using the atan2 form with EarthRadiusKm = 6371. Two points with the same ID
//	are at distance 0 regardless of their coordinates. The metric is symmetric
//	and obeys the spherical triangle inequality, which makes it a consistent
//	A* heuristic whenever route lengths are at least the straight-line distance.
//
// Errors (sentinel):
//
//	ErrInvalidID    – identifier is empty or contains a separator.
//	ErrInvalidPoint – point fails validity (Validate, Distance).
//	ErrInvalidRoute – route fails validity (Validate).
//	ErrNotEndpoint  – OtherEndpoint called with an id that is not an endpoint.
package geo
