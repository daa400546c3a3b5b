package utils

import (
	"math"

	"github.com/mmcloughlin/geohash"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

const (
	// Earth's radius in meters
	earthRadiusMeters = 6371000.0

	// Effective urban transit speed in meters per minute, stops included
	// (roughly 15 km/h)
	transitSpeedMetersPerMinute = 250.0
)

// GeoPoint represents a geographical point with latitude and longitude
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DistanceMeters calculates the great-circle distance between two points in
// meters using the Haversine formula
func DistanceMeters(point1, point2 GeoPoint) float64 {
	lat1 := point1.Latitude * math.Pi / 180.0
	lon1 := point1.Longitude * math.Pi / 180.0
	lat2 := point2.Latitude * math.Pi / 180.0
	lon2 := point2.Longitude * math.Pi / 180.0

	dLat := lat2 - lat1
	dLon := lon2 - lon1
	a := math.Sin(dLat/2)*math.Sin(dLat/2) + math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

// ETAMinutes estimates minutes to cover a distance at effective urban
// transit speed, rounded up to whole minutes.
func ETAMinutes(distanceMeters float64) int {
	if distanceMeters <= 0 {
		return 0
	}
	return int(math.Ceil(distanceMeters / transitSpeedMetersPerMinute))
}

// EncodeLocationCell converts a location to a geohash cell string
func EncodeLocationCell(location models.Location, precision uint) string {
	return geohash.EncodeWithPrecision(location.Latitude, location.Longitude, precision)
}

// DecodeGeohash converts a geohash string to latitude and longitude
func DecodeGeohash(hash string) (latitude, longitude float64) {
	return geohash.Decode(hash)
}

// GeoPointFromLocation converts a Location model to a GeoPoint
func GeoPointFromLocation(location models.Location) GeoPoint {
	return GeoPoint{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
	}
}
