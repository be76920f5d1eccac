package gprmc

import (
	"testing"

	"gctrack/internal/core/model"
)

func TestParseStatusCode(t *testing.T) {
	tests := []struct {
		name  string
		token string
		dft   model.StatusCode
		want  model.StatusCode
	}{
		{name: "auto", token: "AUTO", dft: model.StatusNone, want: model.StatusLocation},
		{name: "lowercase", token: "auto", dft: model.StatusNone, want: model.StatusLocation},
		{name: "sos", token: "SOS", dft: model.StatusNone, want: model.StatusWaymark0},
		{name: "move", token: "MOVE", dft: model.StatusNone, want: model.StatusMotionMoving},
		{name: "poll", token: "POLL", dft: model.StatusNone, want: model.StatusQuery},
		{name: "geofence in", token: "GFIN", dft: model.StatusNone, want: model.StatusGeofenceArrive},
		{name: "geofence out", token: "GFOUT", dft: model.StatusNone, want: model.StatusGeofenceDepart},
		{name: "geofence out short", token: "GOUT", dft: model.StatusNone, want: model.StatusGeofenceDepart},
		{name: "park", token: "PARK", dft: model.StatusNone, want: model.StatusParked},
		{name: "unpark", token: "UNPARK", dft: model.StatusNone, want: model.StatusUnparked},
		{name: "unpark truncated", token: "UNPA", dft: model.StatusNone, want: model.StatusUnparked},
		{name: "start", token: "START", dft: model.StatusNone, want: model.StatusLocation},
		{name: "ignition on", token: "ACCON", dft: model.StatusNone, want: model.StatusIgnitionOn},
		{name: "ignition off", token: "ACCOFF", dft: model.StatusNone, want: model.StatusIgnitionOff},
		{name: "low power", token: "LP", dft: model.StatusNone, want: model.StatusLowBattery},
		{name: "power cut", token: "DC", dft: model.StatusNone, want: model.StatusPowerFailure},
		{name: "charging", token: "CH", dft: model.StatusNone, want: model.StatusPowerRestored},
		{name: "input open", token: "OPEN", dft: model.StatusNone, want: model.InputStatusOn[0]},
		{name: "input close", token: "CLOSE", dft: model.StatusNone, want: model.InputStatusOff[0]},
		{name: "stationary", token: "STATIONARY", dft: model.StatusNone, want: model.StatusMotionDormant},
		{name: "vibration", token: "VIBRATION", dft: model.StatusNone, want: model.StatusLocation},
		{name: "overspeed", token: "OVERSPEED", dft: model.StatusNone, want: model.StatusMotionExcessSpeed},

		{name: "flash prefix", token: "B-AUTO", dft: model.StatusNone, want: model.StatusLocation},
		{name: "flash prefix short", token: "BAUTO", dft: model.StatusNone, want: model.StatusLocation},
		{name: "flash prefix alone", token: "B", dft: model.StatusQuery, want: model.StatusQuery},

		{name: "hex override", token: "0xF020", dft: model.StatusNone, want: model.StatusLocation},
		{name: "hex override arbitrary", token: "0x1234", dft: model.StatusNone, want: model.StatusCode(0x1234)},
		{name: "hex override bad", token: "0xZZZZ", dft: model.StatusQuery, want: model.StatusQuery},

		{name: "alarm 1", token: "ALARM1", dft: model.StatusNone, want: model.InputStatusOn[1]},
		{name: "alarm 6", token: "ALARM6", dft: model.StatusNone, want: model.InputStatusOn[6]},
		{name: "alarm out of table", token: "ALARM9", dft: model.StatusNone, want: model.StatusInputOn},
		{name: "alarm non digit", token: "ALARMX", dft: model.StatusNone, want: model.StatusInputOn},
		{name: "alarm too short", token: "ALARM", dft: model.StatusQuery, want: model.StatusQuery},

		{name: "empty", token: "", dft: model.StatusLocation, want: model.StatusLocation},
		{name: "whitespace", token: "  ", dft: model.StatusLocation, want: model.StatusLocation},
		{name: "unknown token keeps default", token: "GS818SCAN42", dft: model.StatusLocation, want: model.StatusLocation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ParseStatusCode(tt.token, tt.dft); got != tt.want {
				t.Errorf("ParseStatusCode(%q, %v) = %v, want %v", tt.token, tt.dft, got, tt.want)
			}
		})
	}
}

// The flash-replay prefix must not change what a token maps to.
func TestParseStatusCodePrefixIdempotent(t *testing.T) {
	for _, token := range []string{"AUTO", "SOS", "POLL", "ACCON", "ALARM2"} {
		plain := ParseStatusCode(token, model.StatusNone)
		if got := ParseStatusCode("B-"+token, model.StatusNone); got != plain {
			t.Errorf("ParseStatusCode(B-%s) = %v, want %v", token, got, plain)
		}
		if got := ParseStatusCode("B"+token, model.StatusNone); got != plain {
			t.Errorf("ParseStatusCode(B%s) = %v, want %v", token, got, plain)
		}
	}
}
