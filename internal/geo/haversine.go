package geo

import "math"

const earthRadiusKm = 6371.0

// Point is a geographic coordinate in degrees.
type Point struct {
	Lat float64
	Lon float64
}

// DistanceKm returns the great-circle distance between two points using the
// haversine formula. Symmetric, and zero for identical points.
func DistanceKm(a, b Point) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLon := degreesToRadians(b.Lon - a.Lon)

	latA := degreesToRadians(a.Lat)
	latB := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Sin(dLon/2)*math.Sin(dLon/2)*math.Cos(latA)*math.Cos(latB)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
	return earthRadiusKm * c
}

// Midpoint returns the arithmetic midpoint of two points. Good enough for
// placing segment labels at city scale; not a geodesic midpoint.
func Midpoint(a, b Point) Point {
	return Point{
		Lat: (a.Lat + b.Lat) / 2,
		Lon: (a.Lon + b.Lon) / 2,
	}
}

// RoundKm rounds a distance to two decimal places for API responses.
func RoundKm(d float64) float64 {
	return math.Round(d*100) / 100
}

func degreesToRadians(d float64) float64 {
	return d * math.Pi / 180
}
