package gprmc

import (
	"strconv"
	"strings"
	"time"

	"gctrack/internal/core/model"
)

const (
	kilometersPerKnot = 1.852
	daySeconds        = 86400
)

// KnotsToKPH converts speed over ground from knots to kilometers per hour.
func KnotsToKPH(knots float64) float64 {
	return knots * kilometersPerKnot
}

// ParseLatitude decodes a DDMM.MMMM latitude field with its hemisphere letter
// into decimal degrees. Unparseable input yields the invalid-latitude sentinel
// rather than an error; point validity checking catches it downstream.
func ParseLatitude(s, hemisphere string) float64 {
	v := parseFloat(s, 99999.0)
	if v >= 99999.0 {
		return model.InvalidLatitude
	}
	deg := float64(int64(v) / 100)
	lat := deg + (v-deg*100.0)/60.0
	if hemisphere == "S" {
		return -lat
	}
	return lat
}

// ParseLongitude decodes a DDDMM.MMMM longitude field with its hemisphere
// letter into decimal degrees, with the same sentinel convention as latitude.
func ParseLongitude(s, hemisphere string) float64 {
	v := parseFloat(s, 99999.0)
	if v >= 99999.0 {
		return model.InvalidLongitude
	}
	deg := float64(int64(v) / 100)
	lon := deg + (v-deg*100.0)/60.0
	if hemisphere == "W" {
		return -lon
	}
	return lon
}

// utcSeconds combines the HHMMSS time field and DDMMYY date field into epoch
// seconds. When the date field is absent the day is estimated from the current
// clock: a time-of-day more than 12 hours away from now is assumed to belong
// to the adjacent day. Terminals that buffer reports longer than 12 hours
// without a date field will get the wrong day; that ambiguity is inherent to
// the wire format.
func utcSeconds(dmy, hms int64, now time.Time) int64 {
	hh := (hms / 10000) % 100
	mm := (hms / 100) % 100
	ss := hms % 100
	tod := hh*3600 + mm*60 + ss

	var day int64
	if dmy > 0 {
		yy := dmy%100 + 2000
		mo := (dmy / 100) % 100
		dd := (dmy / 10000) % 100
		// Proleptic Gregorian day count, exact for years 2000-2099.
		yr := yy*1000 + ((mo-3)*1000)/12
		day = (367*yr+625)/1000 - 2*(yr/1000) + yr/4000 - yr/100000 + yr/400000 + dd - 719469
	} else {
		utc := now.Unix()
		curTOD := utc % daySeconds
		day = utc / daySeconds
		dif := curTOD - tod
		if dif < 0 {
			dif = -dif
		}
		if dif > daySeconds/2 {
			if curTOD > tod {
				day++
			} else {
				day--
			}
		}
	}
	return day*daySeconds + tod
}

// parseFloat parses the leading decimal-number prefix of s, so "3722mV" yields
// 3722. Returns dft when no numeric prefix exists.
func parseFloat(s string, dft float64) float64 {
	n := numberPrefix(s, true)
	if n == "" {
		return dft
	}
	v, err := strconv.ParseFloat(n, 64)
	if err != nil {
		return dft
	}
	return v
}

// parseInt64 parses the leading integer prefix of s, truncating at the first
// non-digit; "023000.000" yields 23000.
func parseInt64(s string, dft int64) int64 {
	n := numberPrefix(s, false)
	if n == "" {
		return dft
	}
	v, err := strconv.ParseInt(n, 10, 64)
	if err != nil {
		return dft
	}
	return v
}

// parseHexUint parses a hex field with an optional 0x prefix. The second
// return value distinguishes "absent or unparseable" from a legitimate zero.
func parseHexUint(s string) (uint64, bool) {
	s = strings.ToUpper(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "0X")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func numberPrefix(s string, allowDot bool) string {
	s = strings.TrimSpace(s)
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	j := i
	dot := false
	digits := false
	for j < len(s) {
		c := s[j]
		if c >= '0' && c <= '9' {
			digits = true
			j++
			continue
		}
		if allowDot && c == '.' && !dot {
			dot = true
			j++
			continue
		}
		break
	}
	if !digits {
		return ""
	}
	return s[:j]
}
