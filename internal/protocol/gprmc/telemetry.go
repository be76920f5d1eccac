package gprmc

import (
	"strings"

	"gctrack/internal/core/model"
)

// extension holds the vendor telemetry fields that trail the checksum.
type extension struct {
	BatteryVolts float64
	StatusCode   model.StatusCode
	GPIOMask     uint64
	GPIOMaskSet  bool
	HDOP         float64
	Satellites   uint32
}

// extensionStart locates the first vendor field. The checksum lands in field
// 11 or 12 depending on the sentence variant, so it is found by scanning for
// the '*' marker.
func extensionStart(fields []string) int {
	if len(fields) > 11 && strings.Contains(fields[11], "*") {
		return 12
	}
	if len(fields) > 12 && strings.Contains(fields[12], "*") {
		return 13
	}
	return 12
}

// parseExtension decodes the zero to four trailing fields. Two mutually
// exclusive layouts exist, picked by the first character of the first field:
//
//	millivolts first: "3722mV,VIBRATION"
//	token first:      "AUTO-3893mv,<gpio hex>,<hdop>,<satellites>"
//
// Either layout may re-map the status; the caller's status is the fallback.
func parseExtension(fields []string, status model.StatusCode) extension {
	ext := extension{StatusCode: status}

	start := extensionStart(fields)
	var extra [4]string
	for i := range extra {
		if len(fields) > start+i {
			extra[i] = fields[start+i]
		}
	}

	if extra[0] != "" && extra[0][0] >= '0' && extra[0][0] <= '9' {
		ext.BatteryVolts = parseFloat(extra[0], 0.0) / 1000.0
		ext.StatusCode = ParseStatusCode(extra[1], status)
		return ext
	}

	token, batt := extra[0], ""
	if ep := strings.IndexByte(extra[0], '-'); ep >= 0 {
		token, batt = extra[0][:ep], extra[0][ep+1:]
	}
	ext.StatusCode = ParseStatusCode(token, status)
	ext.BatteryVolts = parseFloat(batt, 0.0) / 1000.0
	ext.GPIOMask, ext.GPIOMaskSet = parseHexUint(extra[1])
	ext.HDOP = parseFloat(extra[2], 0.0)
	ext.Satellites = uint32(parseInt64(extra[3], 0))
	return ext
}
