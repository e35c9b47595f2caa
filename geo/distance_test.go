package geo_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/geoplan/geo"
)

const kmTolerance = 1e-6

func TestDistance_SamePointIsZero(t *testing.T) {
	p := geo.Point{ID: "A", Latitude: 12.5, Longitude: -40}
	d, err := p.Distance(p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDistance_SameIDShortCircuits(t *testing.T) {
	// Same id but different coordinates: identity wins over geometry.
	a := geo.Point{ID: "A", Latitude: 0, Longitude: 0}
	b := geo.Point{ID: "A", Latitude: 45, Longitude: 45}
	d, err := a.Distance(b)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)
}

func TestDistance_CoincidentDistinctPoints(t *testing.T) {
	a := geo.Point{ID: "A", Latitude: -23.55, Longitude: -46.63}
	b := geo.Point{ID: "B", Latitude: -23.55, Longitude: -46.63}
	d, err := a.Distance(b)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, d, kmTolerance)
}

func TestDistance_KnownValues(t *testing.T) {
	cases := []struct {
		a, b geo.Point
		want float64
		tol  float64
	}{
		// One degree of longitude on the equator: R·π/180.
		{geo.Point{ID: "A"}, geo.Point{ID: "B", Longitude: 1}, 111.19492664455873, 1e-9},
		// Pole to pole: half the circumference.
		{geo.Point{ID: "N", Latitude: 90}, geo.Point{ID: "S", Latitude: -90}, 20015.086796020572, 1e-6},
		// Antipodes on the equator.
		{geo.Point{ID: "A"}, geo.Point{ID: "B", Longitude: 180}, 20015.086796020572, 1e-6},
		// Natal to Rio de Janeiro, about 2085 km.
		{
			geo.Point{ID: "NAT", Latitude: -5.7945, Longitude: -35.2110},
			geo.Point{ID: "RIO", Latitude: -22.9068, Longitude: -43.1729},
			2085, 10,
		},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("%s-%s", tc.a.ID, tc.b.ID), func(t *testing.T) {
			d, err := tc.a.Distance(tc.b)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, d, tc.tol)
		})
	}
}

func TestDistance_Symmetric(t *testing.T) {
	pts := []geo.Point{
		{ID: "A", Latitude: 0, Longitude: 0},
		{ID: "B", Latitude: 10, Longitude: 20},
		{ID: "C", Latitude: -33.9, Longitude: 151.2},
		{ID: "D", Latitude: 51.5, Longitude: -0.12},
		{ID: "E", Latitude: 89.9, Longitude: -179.9},
	}
	for _, p := range pts {
		for _, q := range pts {
			pq, err := p.Distance(q)
			require.NoError(t, err)
			qp, err := q.Distance(p)
			require.NoError(t, err)
			assert.InDelta(t, pq, qp, kmTolerance, "%s↔%s", p.ID, q.ID)
		}
	}
}

func TestDistance_TriangleInequality(t *testing.T) {
	a := geo.Point{ID: "A", Latitude: 0, Longitude: 0}
	b := geo.Point{ID: "B", Latitude: 5, Longitude: 5}
	c := geo.Point{ID: "C", Latitude: -3, Longitude: 12}
	ab, _ := a.Distance(b)
	bc, _ := b.Distance(c)
	ac, _ := a.Distance(c)
	assert.LessOrEqual(t, ac, ab+bc+kmTolerance)
}

func TestDistance_InvalidPoint(t *testing.T) {
	ok := geo.Point{ID: "A"}
	bad := geo.Point{ID: "B", Latitude: 100}

	_, err := ok.Distance(bad)
	assert.ErrorIs(t, err, geo.ErrInvalidPoint)
	_, err = bad.Distance(ok)
	assert.ErrorIs(t, err, geo.ErrInvalidPoint)
	// Validity is checked before the identity short-circuit.
	_, err = geo.Point{}.Distance(geo.Point{})
	assert.ErrorIs(t, err, geo.ErrInvalidPoint)
}

func TestHaversine_MatchesDistance(t *testing.T) {
	natal := geo.Point{ID: "NAT", Latitude: -5.795, Longitude: -35.209}
	recife := geo.Point{ID: "REC", Latitude: -8.047, Longitude: -34.877}

	d, err := natal.Distance(recife)
	require.NoError(t, err)
	assert.Equal(t, d, geo.Haversine(natal, recife))
	assert.Equal(t, geo.Haversine(natal, recife), geo.Haversine(recife, natal))
	assert.Equal(t, 0.0, geo.Haversine(natal, natal))
}

func TestHaversine_SkipsValidation(t *testing.T) {
	// Distance rejects the out-of-range point; Haversine trusts its caller.
	a := geo.Point{ID: "A"}
	b := geo.Point{ID: "B", Latitude: 95}
	_, err := a.Distance(b)
	assert.ErrorIs(t, err, geo.ErrInvalidPoint)
	assert.NotPanics(t, func() { geo.Haversine(a, b) })
}
