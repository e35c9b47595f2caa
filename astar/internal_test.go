package astar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/geoplan/astar"
	"github.com/katalvlaran/geoplan/geo"
)

// brokenGraph serves whatever it is given, without the invariants core.Graph
// enforces at load time. It drives the internal-inconsistency codes.
type brokenGraph struct {
	points    map[geo.PointID]geo.Point
	routes    []geo.Route
	hideRoute geo.RouteID // GetRoute fails for this id
}

var errMissing = errors.New("missing")

func (b *brokenGraph) Empty() bool { return len(b.points) == 0 }

func (b *brokenGraph) GetPoint(id geo.PointID) (geo.Point, error) {
	p, ok := b.points[id]
	if !ok {
		return geo.Point{}, errMissing
	}
	return p, nil
}

func (b *brokenGraph) GetRoute(id geo.RouteID) (geo.Route, error) {
	if id == b.hideRoute {
		return geo.Route{}, errMissing
	}
	for _, r := range b.routes {
		if r.ID == id {
			return r, nil
		}
	}
	return geo.Route{}, errMissing
}

func (b *brokenGraph) IncidentRoutes(id geo.PointID) []geo.Route {
	var out []geo.Route
	for _, r := range b.routes {
		if r.Touches(id) {
			out = append(out, r)
		}
	}
	return out
}

func points(ps ...geo.Point) map[geo.PointID]geo.Point {
	m := make(map[geo.PointID]geo.Point, len(ps))
	for _, p := range ps {
		m[p.ID] = p
	}
	return m
}

func TestSearch_InternalCodes(t *testing.T) {
	a := geo.Point{ID: "A"}
	b := geo.Point{ID: "B", Longitude: 0.01}
	bad := geo.Point{ID: "B", Latitude: 120}
	ab := geo.Route{ID: "R1", End1: "A", End2: "B", Length: 5}

	cases := []struct {
		name string
		g    *brokenGraph
		from geo.PointID
		to   geo.PointID
		code int
	}{
		{
			name: "origin heuristic",
			g:    &brokenGraph{points: points(a, bad)},
			from: "A", to: "B",
			code: astar.CodeOriginHeuristic,
		},
		{
			name: "successor not loaded",
			g: &brokenGraph{
				points: points(a, geo.Point{ID: "C", Longitude: 1}),
				routes: []geo.Route{ab},
			},
			from: "A", to: "C",
			code: astar.CodeSuccessor,
		},
		{
			name: "successor heuristic",
			g: &brokenGraph{
				points: points(a, geo.Point{ID: "B", Latitude: 100}, geo.Point{ID: "C", Longitude: 1}),
				routes: []geo.Route{ab},
			},
			from: "A", to: "C",
			code: astar.CodeSuccessorHeuristic,
		},
		{
			name: "predecessor route missing",
			g:    &brokenGraph{points: points(a, b), routes: []geo.Route{ab}, hideRoute: "R1"},
			from: "A", to: "B",
			code: astar.CodePredecessor,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := astar.Search(tc.g, tc.from, tc.to)
			requireCode(t, err, tc.code, astar.ErrInternal)
			assert.Equal(t, astar.Result{}, res)
		})
	}
}

func TestSearchError_Message(t *testing.T) {
	err := &astar.SearchError{Code: astar.CodeEmptyGraph, Origin: "A", Destination: "B"}
	assert.Equal(t, "astar: error 1 computing path A→B", err.Error())
	assert.ErrorIs(t, err, astar.ErrEmptyGraph)
	assert.NotErrorIs(t, err, astar.ErrInternal)

	wrapped := &astar.SearchError{Code: astar.CodePredecessor, Origin: "A", Destination: "B", Err: errMissing}
	assert.Equal(t, "astar: error 6 computing path A→B: missing", wrapped.Error())
	assert.ErrorIs(t, wrapped, errMissing)
	assert.ErrorIs(t, wrapped, astar.ErrInternal)
}
