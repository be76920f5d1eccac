package model

import "fmt"

// StatusCode is the canonical event status every vendor token is normalized into.
// Values outside the named set come from explicit hex overrides sent by the device.
type StatusCode uint32

const (
	StatusNone   StatusCode = 0x0000
	StatusIgnore StatusCode = 0xFFFFFFFF

	StatusLocation          StatusCode = 0xF020
	StatusWaymark0          StatusCode = 0xF710
	StatusQuery             StatusCode = 0xF130
	StatusMotionMoving      StatusCode = 0xF112
	StatusMotionDormant     StatusCode = 0xF116
	StatusMotionExcessSpeed StatusCode = 0xF11A
	StatusGeofenceArrive    StatusCode = 0xF210
	StatusGeofenceDepart    StatusCode = 0xF230
	StatusParked            StatusCode = 0xF20A
	StatusUnparked          StatusCode = 0xF20B
	StatusIgnitionOn        StatusCode = 0xF401
	StatusIgnitionOff       StatusCode = 0xF403
	StatusLowBattery        StatusCode = 0xFD10
	StatusPowerFailure      StatusCode = 0xFD13
	StatusPowerRestored     StatusCode = 0xFD15

	// Generic digital input change, used when the input index is out of range.
	StatusInputOn  StatusCode = 0xF400
	StatusInputOff StatusCode = 0xF402
)

// InputStatusOn/InputStatusOff map a digital input index to its status code.
var (
	InputStatusOn = [8]StatusCode{
		0xF420, 0xF421, 0xF422, 0xF423, 0xF424, 0xF425, 0xF426, 0xF427,
	}
	InputStatusOff = [8]StatusCode{
		0xF440, 0xF441, 0xF442, 0xF443, 0xF444, 0xF445, 0xF446, 0xF447,
	}
)

var statusNames = map[StatusCode]string{
	StatusNone:              "none",
	StatusIgnore:            "ignore",
	StatusLocation:          "location",
	StatusWaymark0:          "waymark",
	StatusQuery:             "query",
	StatusMotionMoving:      "moving",
	StatusMotionDormant:     "dormant",
	StatusMotionExcessSpeed: "overspeed",
	StatusGeofenceArrive:    "geofence.arrive",
	StatusGeofenceDepart:    "geofence.depart",
	StatusParked:            "parked",
	StatusUnparked:          "unparked",
	StatusIgnitionOn:        "ignition.on",
	StatusIgnitionOff:       "ignition.off",
	StatusLowBattery:        "battery.low",
	StatusPowerFailure:      "power.failure",
	StatusPowerRestored:     "power.restored",
	StatusInputOn:           "input.on",
	StatusInputOff:          "input.off",
}

func (c StatusCode) String() string {
	if name, ok := statusNames[c]; ok {
		return name
	}
	for i, sc := range InputStatusOn {
		if sc == c {
			return fmt.Sprintf("input.on.%d", i)
		}
	}
	for i, sc := range InputStatusOff {
		if sc == c {
			return fmt.Sprintf("input.off.%d", i)
		}
	}
	return fmt.Sprintf("0x%04X", uint32(c))
}
