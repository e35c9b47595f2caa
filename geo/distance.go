package geo

import (
	"fmt"
	"math"
)

// EarthRadiusKm is the mean Earth radius used by Distance.
const EarthRadiusKm = 6371.0

// degToRad converts decimal degrees to radians.
func degToRad(deg float64) float64 { return deg * math.Pi / 180.0 }

// Distance returns the great-circle distance in kilometres between p and q.
//
// Both points must be valid (ErrInvalidPoint otherwise). Points sharing an ID
// are at distance 0 without evaluating the formula. The central angle is
// computed as 2·atan2(√a, √(1−a)), which stays accurate near 0 and near
// antipodes where asin(√a) loses precision.
//
// Complexity: O(1).
func (p Point) Distance(q Point) (float64, error) {
	if err := p.Validate(); err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	if err := q.Validate(); err != nil {
		return 0, fmt.Errorf("distance: %w", err)
	}
	return Haversine(p, q), nil
}

// Haversine is Distance without the validity checks, for callers that have
// already validated both points. Points sharing an ID are at distance 0.
func Haversine(p, q Point) float64 {
	if p.ID == q.ID {
		return 0
	}

	lat1, lat2 := degToRad(p.Latitude), degToRad(q.Latitude)
	lon1, lon2 := degToRad(p.Longitude), degToRad(q.Longitude)

	sinDLat := math.Sin((lat2 - lat1) / 2)
	sinDLon := math.Sin((lon2 - lon1) / 2)
	a := sinDLat*sinDLat + math.Cos(lat1)*math.Cos(lat2)*sinDLon*sinDLon

	return 2 * EarthRadiusKm * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
