// SPDX-License-Identifier: MIT

package geo

import (
	"errors"
	"strings"
)

// Sentinel errors for geo entities.
var (
	// ErrInvalidID indicates an identifier that is empty or contains a separator.
	ErrInvalidID = errors.New("geo: invalid identifier")

	// ErrInvalidPoint indicates a point with an invalid id or out-of-range coordinates.
	ErrInvalidPoint = errors.New("geo: invalid point")

	// ErrInvalidRoute indicates a route with invalid ids, a self-loop or a non-positive length.
	ErrInvalidRoute = errors.New("geo: invalid route")

	// ErrNotEndpoint indicates that a point id is not one of the route's endpoints.
	ErrNotEndpoint = errors.New("geo: point is not an endpoint of the route")
)

// idForbidden lists the characters an identifier may not contain: the field
// separator of the persisted sources and the record separators.
const idForbidden = ";\n\r"

// validID is the shared validity predicate of PointID and RouteID.
func validID(s string) bool {
	return s != "" && !strings.ContainsAny(s, idForbidden)
}

// PointID identifies a Point. The zero value is the invalid (empty) identifier.
type PointID string

// NewPointID returns raw as a PointID, or ErrInvalidID and the empty identifier.
func NewPointID(raw string) (PointID, error) {
	if !validID(raw) {
		return "", ErrInvalidID
	}
	return PointID(raw), nil
}

// ParsePointID stores raw, falling back to the empty identifier when raw is invalid.
func ParsePointID(raw string) PointID {
	id, _ := NewPointID(raw)
	return id
}

// Valid reports whether the identifier is usable.
func (id PointID) Valid() bool { return validID(string(id)) }

// String returns the identifier text.
func (id PointID) String() string { return string(id) }

// RouteID identifies a Route. The zero value is the invalid (empty) identifier
// and marks the origin segment of a path.
type RouteID string

// NewRouteID returns raw as a RouteID, or ErrInvalidID and the empty identifier.
func NewRouteID(raw string) (RouteID, error) {
	if !validID(raw) {
		return "", ErrInvalidID
	}
	return RouteID(raw), nil
}

// ParseRouteID stores raw, falling back to the empty identifier when raw is invalid.
func ParseRouteID(raw string) RouteID {
	id, _ := NewRouteID(raw)
	return id
}

// Valid reports whether the identifier is usable.
func (id RouteID) Valid() bool { return validID(string(id)) }

// String returns the identifier text.
func (id RouteID) String() string { return string(id) }

// Point is a named location. Latitude and Longitude are in decimal degrees.
type Point struct {
	ID        PointID `validate:"geoid"`
	Name      string
	Latitude  float64 `validate:"latitude"`
	Longitude float64 `validate:"longitude"`
}

// Route is an undirected connection of length Length (km) between End1 and End2.
// Endpoints are held by id only; they are resolved against the owning graph.
type Route struct {
	ID     RouteID `validate:"geoid"`
	Name   string
	End1   PointID `validate:"geoid"`
	End2   PointID `validate:"geoid,nefield=End1"`
	Length float64 `validate:"gt=0,finite"`
}
