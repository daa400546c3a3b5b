package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/AvigateGroup/avigate-tracker/internal/pkg/models"
)

func TestDistanceMeters(t *testing.T) {
	// Obalende to CMS, Lagos Island, roughly 1.9 km apart
	obalende := GeoPoint{Latitude: 6.4434, Longitude: 3.4145}
	cms := GeoPoint{Latitude: 6.4510, Longitude: 3.3983}

	distance := DistanceMeters(obalende, cms)
	assert.InDelta(t, 1970, distance, 150)

	// Same point yields zero
	assert.InDelta(t, 0, DistanceMeters(obalende, obalende), 0.001)
}

func TestETAMinutes(t *testing.T) {
	tests := []struct {
		name     string
		meters   float64
		expected int
	}{
		{name: "zero distance", meters: 0, expected: 0},
		{name: "negative distance", meters: -10, expected: 0},
		{name: "one minute exactly", meters: 250, expected: 1},
		{name: "partial minute rounds up", meters: 260, expected: 2},
		{name: "one kilometer", meters: 1000, expected: 4},
		{name: "two kilometers", meters: 2000, expected: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ETAMinutes(tt.meters))
		})
	}
}

func TestEncodeDecodeGeohash(t *testing.T) {
	location := models.Location{Latitude: 6.5244, Longitude: 3.3792}

	hash := EncodeLocationCell(location, 7)
	assert.Len(t, hash, 7)

	lat, lng := DecodeGeohash(hash)
	assert.InDelta(t, location.Latitude, lat, 0.01)
	assert.InDelta(t, location.Longitude, lng, 0.01)
}
