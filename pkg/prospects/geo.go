package prospects

import (
	"errors"
	"math"
)

// ErrNotFound is returned when a prospect does not exist
var ErrNotFound = errors.New("prospect not found")

const earthRadiusKm = 6371.0

// haversineKm computes the great-circle distance between two points
// in kilometers. Used to report distances in responses; the SQL-side
// filtering and ordering is done by PostGIS.
func haversineKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
