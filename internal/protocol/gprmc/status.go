package gprmc

import (
	"strconv"
	"strings"

	"gctrack/internal/core/model"
)

// statusTokens maps the vendor status vocabulary to canonical codes. The
// ALARM<n> and 0x<hex> forms are handled as pattern rules in ParseStatusCode.
var statusTokens = map[string]model.StatusCode{
	"AUTO":       model.StatusLocation,
	"SOS":        model.StatusWaymark0,
	"MOVE":       model.StatusMotionMoving,
	"POLL":       model.StatusQuery,
	"GFIN":       model.StatusGeofenceArrive,
	"GFOUT":      model.StatusGeofenceDepart,
	"GOUT":       model.StatusGeofenceDepart,
	"PARK":       model.StatusParked,
	"UNPARK":     model.StatusUnparked,
	"UNPA":       model.StatusUnparked,
	"START":      model.StatusLocation,
	"ACCON":      model.StatusIgnitionOn,
	"ACCOFF":     model.StatusIgnitionOff,
	"LP":         model.StatusLowBattery,
	"DC":         model.StatusPowerFailure,
	"CH":         model.StatusPowerRestored,
	"OPEN":       model.InputStatusOn[0],
	"CLOSE":      model.InputStatusOff[0],
	"STATIONARY": model.StatusMotionDormant,
	"VIBRATION":  model.StatusLocation,
	"OVERSPEED":  model.StatusMotionExcessSpeed,
}

// ParseStatusCode maps a raw device status token to a canonical status code.
// dft is returned for blank or unrecognized tokens; an unknown token is not an
// error, some terminals put unrelated payload (barcode scans) in this field.
func ParseStatusCode(token string, dft model.StatusCode) model.StatusCode {
	code := strings.ToUpper(strings.TrimSpace(token))

	// A "B" or "B-" prefix marks an event replayed from flash memory. It has
	// no effect on the mapping.
	if strings.HasPrefix(code, "B-") {
		code = code[2:]
	} else if strings.HasPrefix(code, "B") {
		code = code[1:]
	}

	if code == "" {
		return dft
	}

	if strings.HasPrefix(code, "0X") {
		v, err := strconv.ParseUint(code[2:], 16, 32)
		if err != nil {
			return dft
		}
		return model.StatusCode(v)
	}

	if sc, ok := statusTokens[code]; ok {
		return sc
	}

	if strings.HasPrefix(code, "ALARM") && len(code) >= 6 {
		ndx := int(code[5] - '0')
		if ndx >= 0 && ndx <= 9 && ndx < len(model.InputStatusOn) {
			return model.InputStatusOn[ndx]
		}
		return model.StatusInputOn
	}

	return dft
}
