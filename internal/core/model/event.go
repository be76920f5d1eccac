package model

// EventRecord is one persisted location/status event. The identity key is
// (AccountID, DeviceID, Timestamp, StatusCode); a geozone event and a plain
// location event may share a timestamp because their status codes differ.
type EventRecord struct {
	AccountID    string     `json:"accountId"`
	DeviceID     string     `json:"deviceId"`
	Timestamp    int64      `json:"timestamp"`
	StatusCode   StatusCode `json:"statusCode"`
	Point        GeoPoint   `json:"point"`
	HDOP         float64    `json:"hdop"`
	Satellites   uint32     `json:"satellites"`
	SpeedKPH     float64    `json:"speedKph"`
	HeadingDeg   float64    `json:"headingDeg"`
	OdometerKM   float64    `json:"odometerKm"`
	BatteryLevel float64    `json:"batteryLevel"` // 0.0 - 1.0
	GPIOMask     uint64     `json:"gpioMask"`
	GPIOMaskSet  bool       `json:"gpioMaskSet"`
	GeozoneID    string     `json:"geozoneId,omitempty"` // set on synthetic transition events
}
