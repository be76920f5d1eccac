package gprmc

import (
	"errors"
	"log"
	"strings"
	"time"

	"gctrack/internal/core/model"
)

var (
	ErrNotGPRMC     = errors.New("not a $GPRMC sentence")
	ErrTooFewFields = errors.New("too few $GPRMC fields")
)

// Fix is one decoded location report, ready for event assembly.
type Fix struct {
	Timestamp    int64
	Point        model.GeoPoint
	SpeedKPH     float64
	HeadingDeg   float64
	Valid        bool
	StatusCode   model.StatusCode
	HDOP         float64
	Satellites   uint32
	GPIOMask     uint64
	GPIOMaskSet  bool
	BatteryVolts float64
}

type Decoder struct {
	now func() time.Time
}

func NewDecoder() *Decoder {
	return &Decoder{now: time.Now}
}

// Decode parses a $GPRMC sentence together with the report's status token.
//
// Expected layout:
//
//	$GPRMC,<hhmmss[.sss]>,<A|V>,<ddmm.mmmm>,<N|S>,<dddmm.mmmm>,<E|W>,
//	<speed knots>,<course deg>,<ddmmyy>,...,*<cksum>[,<ext0>..<ext3>]
//
// A sentence with a different header or fewer than 10 fields is rejected. An
// out-of-range coordinate does not reject the sentence; the fix is marked
// invalid and the caller decides whether the event is still worth keeping.
func (d *Decoder) Decode(sentence, statusToken string) (*Fix, error) {
	fields := strings.Split(sentence, ",")
	if len(fields) < 1 || fields[0] != "$GPRMC" {
		return nil, ErrNotGPRMC
	}
	if len(fields) < 10 {
		return nil, ErrTooFewFields
	}

	hms := parseInt64(fields[1], 0)
	dmy := parseInt64(fields[9], 0)
	fixtime := utcSeconds(dmy, hms, d.now())
	valid := fields[2] == "A"

	var lat, lon, knots, heading float64
	if valid {
		lat = ParseLatitude(fields[3], fields[4])
		lon = ParseLongitude(fields[5], fields[6])
		knots = parseFloat(fields[7], 0.0)
		heading = parseFloat(fields[8], 0.0)
	}
	speedKPH := 0.0
	if knots > 0.0 {
		speedKPH = KnotsToKPH(knots)
	}

	point := model.GeoPoint{Latitude: lat, Longitude: lon}
	if !point.IsValid() {
		if valid {
			log.Printf("invalid $GPRMC lat/lon: %.5f/%.5f", lat, lon)
		}
		point = model.GeoPoint{}
		valid = false
	}

	status := ParseStatusCode(statusToken, model.StatusLocation)
	ext := parseExtension(fields, status)

	return &Fix{
		Timestamp:    fixtime,
		Point:        point,
		SpeedKPH:     speedKPH,
		HeadingDeg:   heading,
		Valid:        valid,
		StatusCode:   ext.StatusCode,
		HDOP:         ext.HDOP,
		Satellites:   ext.Satellites,
		GPIOMask:     ext.GPIOMask,
		GPIOMaskSet:  ext.GPIOMaskSet,
		BatteryVolts: ext.BatteryVolts,
	}, nil
}
