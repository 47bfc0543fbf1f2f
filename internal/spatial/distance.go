package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Earth's mean radius in meters.
const EarthRadiusMeters = 6371000.0

// GridPrecision is the number of decimal places used for grid-cell keys.
// Four decimals is roughly 11 meters of latitude.
const GridPrecision = 4

// RoundCoord rounds a coordinate to the grid precision so that nearby points
// share a cell key.
func RoundCoord(v float64) float64 {
	const scale = 1e4 // 10^GridPrecision
	return math.Round(v*scale) / scale
}

// HaversineDistance returns the great-circle distance between two points in
// meters.
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}
