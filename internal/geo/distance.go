// Package geo provides great-circle distance computation for matching.
package geo

import (
	"math"

	"github.com/paulmach/orb"
)

const earthRadiusKm = 6371.0

// DistanceKm calculates the Haversine great-circle distance between two
// points in kilometers, rounded to one decimal place. Points are (lon, lat)
// pairs in degrees. Callers are responsible for validating coordinate
// ranges; identical points return 0.0.
func DistanceKm(a, b orb.Point) float64 {
	lat1Rad := a.Lat() * math.Pi / 180
	lng1Rad := a.Lon() * math.Pi / 180
	lat2Rad := b.Lat() * math.Pi / 180
	lng2Rad := b.Lon() * math.Pi / 180

	deltaLat := lat2Rad - lat1Rad
	deltaLng := lng2Rad - lng1Rad

	h := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return math.Round(earthRadiusKm*c*10) / 10
}
