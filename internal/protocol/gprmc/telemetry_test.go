package gprmc

import (
	"strings"
	"testing"

	"gctrack/internal/core/model"
)

func TestExtensionStart(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		want     int
	}{
		{
			name:     "checksum in field 11",
			sentence: "$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507,,*19,AUTO",
			want:     12,
		},
		{
			name:     "checksum in field 12",
			sentence: "$GPRMC,124422.000,A,3135.5867,S,14245.3128,W,0.16,100.00,110809,,,A*71,ALARM1",
			want:     13,
		},
		{
			name:     "no extension fields",
			sentence: "$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507,,*19",
			want:     12,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := strings.Split(tt.sentence, ",")
			if got := extensionStart(fields); got != tt.want {
				t.Errorf("extensionStart() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestParseExtension(t *testing.T) {
	tests := []struct {
		name     string
		sentence string
		status   model.StatusCode
		want     extension
	}{
		{
			name:     "token leading with plain status",
			sentence: "$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507,,*19,AUTO",
			status:   model.StatusLocation,
			want:     extension{StatusCode: model.StatusLocation},
		},
		{
			name:     "token leading with embedded voltage",
			sentence: "$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507,,*19,AUTO-3893mv",
			status:   model.StatusNone,
			want:     extension{StatusCode: model.StatusLocation, BatteryVolts: 3.893},
		},
		{
			name:     "token leading full telemetry",
			sentence: "$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507,,*19,AUTO-3893mv,1F,1.2,8",
			status:   model.StatusNone,
			want: extension{
				StatusCode:   model.StatusLocation,
				BatteryVolts: 3.893,
				GPIOMask:     0x1F,
				GPIOMaskSet:  true,
				HDOP:         1.2,
				Satellites:   8,
			},
		},
		{
			name:     "numeric leading voltage then status",
			sentence: "$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507,,*19,3722mV,VIBRATION",
			status:   model.StatusWaymark0,
			want:     extension{StatusCode: model.StatusLocation, BatteryVolts: 3.722},
		},
		{
			name:     "numeric leading keeps caller status when second field blank",
			sentence: "$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507,,*19,3722mV",
			status:   model.StatusWaymark0,
			want:     extension{StatusCode: model.StatusWaymark0, BatteryVolts: 3.722},
		},
		{
			name:     "thirteen field variant alarm",
			sentence: "$GPRMC,124422.000,A,3135.5867,S,14245.3128,W,0.16,100.00,110809,,,A*71,ALARM1",
			status:   model.StatusLocation,
			want:     extension{StatusCode: model.InputStatusOn[1]},
		},
		{
			name:     "no extension fields keeps everything default",
			sentence: "$GPRMC,023000.000,A,3130.0577,N,14271.7421,W,0.53,208.37,210507,,*19",
			status:   model.StatusLocation,
			want:     extension{StatusCode: model.StatusLocation},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := strings.Split(tt.sentence, ",")
			got := parseExtension(fields, tt.status)
			if got.StatusCode != tt.want.StatusCode {
				t.Errorf("StatusCode = %v, want %v", got.StatusCode, tt.want.StatusCode)
			}
			if !almostEqual(got.BatteryVolts, tt.want.BatteryVolts, 1e-9) {
				t.Errorf("BatteryVolts = %v, want %v", got.BatteryVolts, tt.want.BatteryVolts)
			}
			if got.GPIOMask != tt.want.GPIOMask || got.GPIOMaskSet != tt.want.GPIOMaskSet {
				t.Errorf("GPIO = (%#x, %v), want (%#x, %v)",
					got.GPIOMask, got.GPIOMaskSet, tt.want.GPIOMask, tt.want.GPIOMaskSet)
			}
			if !almostEqual(got.HDOP, tt.want.HDOP, 1e-9) {
				t.Errorf("HDOP = %v, want %v", got.HDOP, tt.want.HDOP)
			}
			if got.Satellites != tt.want.Satellites {
				t.Errorf("Satellites = %d, want %d", got.Satellites, tt.want.Satellites)
			}
		})
	}
}
