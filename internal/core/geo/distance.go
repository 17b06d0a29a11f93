// Package geo holds the single distance formula shared by the proximity
// filter and its sort key. Filter and ordering must never disagree, so
// everything that compares distances goes through Distance.
package geo

import (
	"math"

	"github.com/myrp-alexandre/ubsvoce/internal/core/domain"
)

const earthRadiusMeters = 6371000.0

// Distance returns the haversine distance between two points in meters.
func Distance(a, b domain.Point) float64 {
	lat1 := degreesToRadians(a.Lat)
	lat2 := degreesToRadians(b.Lat)
	deltaLat := degreesToRadians(b.Lat - a.Lat)
	deltaLng := degreesToRadians(b.Lng - a.Lng)

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// IsWithin reports whether the unit lies inside radiusMeters of center.
// The boundary is inclusive.
func IsWithin(u domain.Unit, center domain.Point, radiusMeters float64) bool {
	return Distance(center, u.Location) <= radiusMeters
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}
