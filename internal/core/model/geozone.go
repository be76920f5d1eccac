package model

// Geozone is a circular geographic boundary owned by an account.
type Geozone struct {
	ID          string   `json:"id"`
	AccountID   string   `json:"accountId"`
	Description string   `json:"description"`
	Center      GeoPoint `json:"center"`
	RadiusM     float64  `json:"radiusM"`
}

// Contains reports whether the point lies inside the zone boundary.
func (z *Geozone) Contains(p GeoPoint) bool {
	return z.Center.DistanceKM(p)*1000.0 <= z.RadiusM
}

// GeozoneTransition marks a device crossing into or out of a zone. StatusCode
// is always StatusGeofenceArrive or StatusGeofenceDepart.
type GeozoneTransition struct {
	Timestamp  int64
	StatusCode StatusCode
	ZoneID     string
}
