package model

import (
	"strings"
	"time"

	"gctrack/internal/core/util"
)

// Device is the tracking terminal record. The ingest pipeline holds one per
// request and mutates only the connection/odometer fields; everything else is
// owned by provisioning.
type Device struct {
	ID            string    `json:"id"`
	AccountID     string    `json:"accountId"`
	DeviceID      string    `json:"deviceId"`
	Name          string    `json:"name"`
	UniqueID      string    `json:"uniqueId"`
	AllowedIP     string    `json:"allowedIp,omitempty"` // blank or "*" allows any source
	CurrentIP     string    `json:"currentIp,omitempty"`
	LastConnect   int64     `json:"lastConnect"`
	LastOdometer  float64   `json:"lastOdometerKm"`
	LastLatitude  float64   `json:"lastLatitude"`
	LastLongitude float64   `json:"lastLongitude"`
	LastZoneID    string    `json:"lastZoneId,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

func NewDevice(accountID, deviceID, uniqueID string) *Device {
	return &Device{
		ID:        util.GenerateID(),
		AccountID: accountID,
		DeviceID:  deviceID,
		Name:      deviceID,
		UniqueID:  uniqueID,
		CreatedAt: time.Now(),
	}
}

// IsValidIPAddress checks a source IP against the device's allowed-IP pattern.
// The pattern is a comma-separated list of exact addresses or prefix wildcards
// such as "10.1.2.*". A blank pattern allows every source.
func (d *Device) IsValidIPAddress(ip string) bool {
	pattern := strings.TrimSpace(d.AllowedIP)
	if pattern == "" || pattern == "*" {
		return true
	}
	for _, item := range strings.Split(pattern, ",") {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		if item == "*" || item == ip {
			return true
		}
		if strings.HasSuffix(item, "*") && strings.HasPrefix(ip, strings.TrimSuffix(item, "*")) {
			return true
		}
	}
	return false
}

// LastGeoPoint returns the last valid fix stored on the device record.
func (d *Device) LastGeoPoint() GeoPoint {
	return GeoPoint{Latitude: d.LastLatitude, Longitude: d.LastLongitude}
}
