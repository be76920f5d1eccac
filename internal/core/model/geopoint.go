package model

import "math"

// Sentinel coordinates returned by the GPRMC codec when a field fails to parse.
// They sit on the closed boundary so IsValid rejects them without a separate flag.
const (
	InvalidLatitude  = 90.0
	InvalidLongitude = 180.0
)

const earthRadiusKM = 6371.0

type GeoPoint struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// IsValid reports whether the point is a usable GPS fix. The origin and the
// codec sentinels both count as invalid.
func (p GeoPoint) IsValid() bool {
	if p.Latitude == 0.0 && p.Longitude == 0.0 {
		return false
	}
	return p.Latitude > -InvalidLatitude && p.Latitude < InvalidLatitude &&
		p.Longitude > -InvalidLongitude && p.Longitude < InvalidLongitude
}

// DistanceKM returns the great-circle distance to another point (haversine).
func (p GeoPoint) DistanceKM(o GeoPoint) float64 {
	lat1 := p.Latitude * math.Pi / 180.0
	lat2 := o.Latitude * math.Pi / 180.0
	dLat := (o.Latitude - p.Latitude) * math.Pi / 180.0
	dLon := (o.Longitude - p.Longitude) * math.Pi / 180.0

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKM * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
