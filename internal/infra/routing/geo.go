// Package routing implements the pure computation services of the
// optimization engine: great-circle distance, stop partitioning, schedule
// estimation, and request fingerprinting. Nothing in this package performs
// I/O.
package routing

import (
	"math"

	"dispatch/internal/domain/entity"
)

const earthRadiusKm = 6371.0

// Distance returns the great-circle distance between two coordinates in
// kilometers using the haversine formula.
func Distance(a, b entity.Coordinate) float64 {
	lat1Rad := a.Lat * math.Pi / 180
	lng1Rad := a.Lng * math.Pi / 180
	lat2Rad := b.Lat * math.Pi / 180
	lng2Rad := b.Lng * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

// PathDistance returns the summed distance along an ordered path of
// coordinates in kilometers. Paths of fewer than two points have length 0.
func PathDistance(points []entity.Coordinate) float64 {
	total := 0.0
	for i := 0; i < len(points)-1; i++ {
		total += Distance(points[i], points[i+1])
	}

	return total
}
