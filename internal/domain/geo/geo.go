// Package geo provides the great-circle distance check that gates order
// creation by delivery radius.
package geo

import (
	"fmt"
	"math"
)

// earthRadiusKm is the mean Earth radius used by the haversine formula.
const earthRadiusKm = 6371.0

// Point is a WGS84 coordinate pair.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Validate rejects coordinates outside the WGS84 range.
func (p Point) Validate() error {
	if p.Latitude < -90 || p.Latitude > 90 {
		return fmt.Errorf("latitude %v out of range [-90, 90]", p.Latitude)
	}
	if p.Longitude < -180 || p.Longitude > 180 {
		return fmt.Errorf("longitude %v out of range [-180, 180]", p.Longitude)
	}
	return nil
}

// DistanceKm returns the haversine great-circle distance between two points
// in kilometers.
func DistanceKm(a, b Point) float64 {
	lat1 := toRadians(a.Latitude)
	lat2 := toRadians(b.Latitude)
	dLat := toRadians(b.Latitude - a.Latitude)
	dLng := toRadians(b.Longitude - a.Longitude)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

// ServiceAreaCheck is the outcome of a delivery-radius check. The computed
// distance is kept so rejection messages can cite it.
type ServiceAreaCheck struct {
	DistanceKm float64
	RadiusKm   float64
	Within     bool
}

// CheckServiceArea measures the distance from the outlet to the delivery
// point and compares it against the service radius.
func CheckServiceArea(outlet, point Point, radiusKm float64) ServiceAreaCheck {
	d := DistanceKm(outlet, point)
	return ServiceAreaCheck{
		DistanceKm: d,
		RadiusKm:   radiusKm,
		Within:     d <= radiusKm,
	}
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
