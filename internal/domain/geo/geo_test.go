package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// The outlet used across tests sits in Pune, India.
var outlet = Point{Latitude: 18.654949627383616, Longitude: 73.84475261136429}

func TestDistanceKm_SamePoint(t *testing.T) {
	assert.InDelta(t, 0, DistanceKm(outlet, outlet), 1e-9)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Pune Shivajinagar is roughly 13 km south of the outlet.
	shivajinagar := Point{Latitude: 18.5314, Longitude: 73.8446}
	d := DistanceKm(outlet, shivajinagar)
	assert.InDelta(t, 13.7, d, 0.5)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	p := Point{Latitude: 19.0760, Longitude: 72.8777}
	assert.InDelta(t, DistanceKm(outlet, p), DistanceKm(p, outlet), 1e-9)
}

func TestCheckServiceArea_Within(t *testing.T) {
	nearby := Point{Latitude: 18.66, Longitude: 73.85}
	check := CheckServiceArea(outlet, nearby, 5)
	assert.True(t, check.Within)
	assert.Less(t, check.DistanceKm, 5.0)
	assert.Equal(t, 5.0, check.RadiusKm)
}

func TestCheckServiceArea_Outside(t *testing.T) {
	// Mumbai is ~120 km away; far outside a 5 km radius.
	mumbai := Point{Latitude: 19.0760, Longitude: 72.8777}
	check := CheckServiceArea(outlet, mumbai, 5)
	assert.False(t, check.Within)
	assert.Greater(t, check.DistanceKm, 100.0)
}

func TestCheckServiceArea_BoundaryInclusive(t *testing.T) {
	p := Point{Latitude: 18.654949627383616, Longitude: 73.84475261136429}
	check := CheckServiceArea(outlet, p, 0)
	assert.True(t, check.Within, "a point at exactly the radius is deliverable")
}
