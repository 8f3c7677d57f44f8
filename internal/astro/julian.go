// Package astro implements the NOAA solar-position algorithm: Julian-date
// conversion, solar orbital elements, elevation-angle event solving, and
// twilight classification.
package astro

import (
	"math"
	"time"
)

// J2000 is the Julian Day of the epoch 2000-01-01 12:00 UTC.
const J2000 = 2451545.0

// daysPerJulianCentury converts Julian Days to Julian Centuries.
const daysPerJulianCentury = 36525.0

// julianDay calculates the fractional Julian Day for a given time.
// The time is converted to UTC first; sub-day precision comes from the
// clock-time fraction.
func julianDay(t time.Time) float64 {
	t = t.UTC()

	y := float64(t.Year())
	m := float64(t.Month())
	d := float64(t.Day())

	h := float64(t.Hour())
	min := float64(t.Minute())
	sec := float64(t.Second())
	ns := float64(t.Nanosecond())

	dayFrac := (h + min/60 + sec/3600 + ns/3600e9) / 24.0

	// January and February count as months 13/14 of the previous year.
	if m <= 2 {
		y--
		m += 12
	}

	// Gregorian calendar correction
	A := math.Floor(y / 100)
	B := 2 - A + math.Floor(A/4)

	return math.Floor(365.25*(y+4716)) +
		math.Floor(30.6001*(m+1)) +
		d + dayFrac + B - 1524.5
}

// julianCentury converts a Julian Day to Julian Centuries since J2000.0,
// the time variable of all the orbital polynomials.
func julianCentury(jd float64) float64 {
	return (jd - J2000) / daysPerJulianCentury
}

// degToRad converts degrees to radians.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// radToDeg converts radians to degrees.
func radToDeg(rad float64) float64 {
	return rad * 180 / math.Pi
}

// normalizeAngle360 normalizes an angle to 0-360 degrees.
func normalizeAngle360(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// clampUnit clamps x to [-1, 1] before an inverse-trig call, so that
// floating-point overshoot never produces a domain error.
func clampUnit(x float64) float64 {
	if x > 1 {
		return 1
	}
	if x < -1 {
		return -1
	}
	return x
}
