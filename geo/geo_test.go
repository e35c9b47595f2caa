package geo_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoplan/geo"
)

func TestPointID_Constructors(t *testing.T) {
	cases := []struct {
		raw   string
		valid bool
	}{
		{"P1", true},
		{"Praça da Sé", true},
		{"", false},
		{"a;b", false},
		{"line\nbreak", false},
		{"cr\r", false},
	}
	for _, tc := range cases {
		id, err := geo.NewPointID(tc.raw)
		if tc.valid {
			require.NoError(t, err, "NewPointID(%q)", tc.raw)
			assert.Equal(t, tc.raw, id.String())
			assert.True(t, id.Valid())
		} else {
			assert.ErrorIs(t, err, geo.ErrInvalidID, "NewPointID(%q)", tc.raw)
			assert.Equal(t, geo.PointID(""), id)
		}
		// Parse falls back to the empty sentinel instead of failing.
		parsed := geo.ParsePointID(tc.raw)
		assert.Equal(t, tc.valid, parsed.Valid())
		if !tc.valid {
			assert.Empty(t, parsed.String())
		}
	}
}

func TestRouteID_Constructors(t *testing.T) {
	id, err := geo.NewRouteID("R1")
	require.NoError(t, err)
	assert.True(t, id.Valid())

	_, err = geo.NewRouteID("")
	assert.ErrorIs(t, err, geo.ErrInvalidID)
	assert.False(t, geo.ParseRouteID("x;y").Valid())
	assert.False(t, geo.RouteID("").Valid())
}

func TestPoint_Validity(t *testing.T) {
	cases := []struct {
		name string
		p    geo.Point
		ok   bool
	}{
		{"origin", geo.Point{ID: "A", Latitude: 0, Longitude: 0}, true},
		{"poles and antimeridian", geo.Point{ID: "A", Latitude: -90, Longitude: 180}, true},
		{"fractional", geo.Point{ID: "A", Latitude: -22.9068, Longitude: -43.1729}, true},
		{"empty id", geo.Point{Latitude: 1, Longitude: 1}, false},
		{"separator in id", geo.Point{ID: "A;B", Latitude: 1, Longitude: 1}, false},
		{"latitude high", geo.Point{ID: "A", Latitude: 90.5}, false},
		{"latitude low", geo.Point{ID: "A", Latitude: -91}, false},
		{"longitude high", geo.Point{ID: "A", Longitude: 180.01}, false},
		{"longitude low", geo.Point{ID: "A", Longitude: -181}, false},
		{"latitude NaN", geo.Point{ID: "A", Latitude: math.NaN()}, false},
		{"longitude Inf", geo.Point{ID: "A", Longitude: math.Inf(1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.p.Valid())
			if !tc.ok {
				assert.ErrorIs(t, tc.p.Validate(), geo.ErrInvalidPoint)
			}
		})
	}
}

func TestRoute_Validity(t *testing.T) {
	cases := []struct {
		name string
		r    geo.Route
		ok   bool
	}{
		{"plain", geo.Route{ID: "R", End1: "A", End2: "B", Length: 1.5}, true},
		{"empty id", geo.Route{End1: "A", End2: "B", Length: 1}, false},
		{"empty endpoint", geo.Route{ID: "R", End1: "A", Length: 1}, false},
		{"self loop", geo.Route{ID: "R", End1: "A", End2: "A", Length: 1}, false},
		{"zero length", geo.Route{ID: "R", End1: "A", End2: "B"}, false},
		{"negative length", geo.Route{ID: "R", End1: "A", End2: "B", Length: -3}, false},
		{"NaN length", geo.Route{ID: "R", End1: "A", End2: "B", Length: math.NaN()}, false},
		{"infinite length", geo.Route{ID: "R", End1: "A", End2: "B", Length: math.Inf(1)}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.ok, tc.r.Valid())
			if !tc.ok {
				assert.ErrorIs(t, tc.r.Validate(), geo.ErrInvalidRoute)
			}
		})
	}
}

func TestRoute_OtherEndpoint(t *testing.T) {
	r := geo.Route{ID: "R1", End1: "A", End2: "B", Length: 2}

	other, err := r.OtherEndpoint("A")
	require.NoError(t, err)
	assert.Equal(t, geo.PointID("B"), other)

	other, err = r.OtherEndpoint("B")
	require.NoError(t, err)
	assert.Equal(t, geo.PointID("A"), other)

	_, err = r.OtherEndpoint("C")
	assert.ErrorIs(t, err, geo.ErrNotEndpoint)

	assert.True(t, r.Touches("B"))
	assert.False(t, r.Touches("C"))
	assert.Equal(t, [2]geo.PointID{"A", "B"}, r.Endpoints())
}
