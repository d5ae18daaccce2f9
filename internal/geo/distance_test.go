package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_IdenticalPointsAreZero(t *testing.T) {
	downtown := Coordinates{Latitude: 43.6532, Longitude: -79.3832}
	assert.Equal(t, 0.0, DistanceKm(downtown, downtown))
}

func TestDistanceKm_IsSymmetric(t *testing.T) {
	downtown := Coordinates{Latitude: 43.6532, Longitude: -79.3832}
	yorkdale := Coordinates{Latitude: 43.7255, Longitude: -79.4523}

	assert.InDelta(t, DistanceKm(downtown, yorkdale), DistanceKm(yorkdale, downtown), 1e-9)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Downtown Toronto to Yorkdale is roughly 10 km great-circle.
	downtown := Coordinates{Latitude: 43.6532, Longitude: -79.3832}
	yorkdale := Coordinates{Latitude: 43.7255, Longitude: -79.4523}

	km := DistanceKm(downtown, yorkdale)
	assert.Greater(t, km, 8.0)
	assert.Less(t, km, 12.0)
}

func TestDistanceKm_IsDeterministic(t *testing.T) {
	a := Coordinates{Latitude: 43.7766, Longitude: -79.2578}
	b := Coordinates{Latitude: 43.5890, Longitude: -79.6441}

	first := DistanceKm(a, b)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, DistanceKm(a, b))
	}
}

func TestDistanceKm_AntimeridianStaysFinite(t *testing.T) {
	a := Coordinates{Latitude: 0, Longitude: 179.9}
	b := Coordinates{Latitude: 0, Longitude: -179.9}

	km := DistanceKm(a, b)
	assert.Greater(t, km, 0.0)
	assert.Less(t, km, 100.0)
}
