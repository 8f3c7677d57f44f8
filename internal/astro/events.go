package astro

import (
	"math"
	"time"
)

// Elevation thresholds (degrees of the Sun's center above the horizon)
// for the standard daily events. SunriseElevation folds in the constant
// refraction and solar-radius offset of 50 arcminutes.
const (
	SunriseElevation      = -0.833
	CivilElevation        = -6.0
	NauticalElevation     = -12.0
	AstronomicalElevation = -18.0
	GoldenHourElevation   = 6.0
	BlueHourElevation     = -4.0
)

// EventTime is the time a solar event occurs, tagged with whether the Sun
// actually crosses the event's elevation that day. During polar day or
// polar night some elevations are never reached; Reached is false then and
// At holds the noon ± 12 h fallback instant so downstream consumers still
// see a well-defined time.
type EventTime struct {
	At      time.Time
	Reached bool
}

// hourAngleForElevation solves for the hour angle (degrees) at which the
// Sun's center crosses the target elevation, given the observer latitude
// and the solar declination (both degrees).
//
// The second return value reports whether the elevation is reached at all:
// when the cosine falls outside [-1, 1] the Sun never crosses that angle
// on this day at this latitude (polar day or polar night). That is a
// first-class outcome, not an error.
func hourAngleForElevation(latDeg, declDeg, elevDeg float64) (float64, bool) {
	latRad := degToRad(latDeg)
	declRad := degToRad(declDeg)
	elevRad := degToRad(elevDeg)

	denom := math.Cos(latRad) * math.Cos(declRad)
	if denom == 0 {
		// Observer exactly at a pole with the Sun on the equator.
		return 0, false
	}

	cosH := (math.Sin(elevRad) - math.Sin(latRad)*math.Sin(declRad)) / denom
	if cosH < -1 || cosH > 1 {
		return 0, false
	}

	return radToDeg(math.Acos(cosH)), true
}

// solarNoonMinutes returns solar noon as minutes from midnight UTC for the
// given longitude (degrees, east positive) and equation of time (minutes).
func solarNoonMinutes(lonDeg, eqTimeMinutes float64) float64 {
	return 720 - 4*lonDeg - eqTimeMinutes
}

// eventMinutes returns the clock time of an elevation crossing as minutes
// from midnight UTC. The morning (rising) crossing precedes solar noon by
// 4 minutes per degree of hour angle; the evening (setting) crossing
// follows it.
func eventMinutes(lonDeg, eqTimeMinutes, hourAngleDeg float64, morning bool) float64 {
	noon := solarNoonMinutes(lonDeg, eqTimeMinutes)
	if morning {
		return noon - 4*hourAngleDeg
	}
	return noon + 4*hourAngleDeg
}

// minutesToTime anchors a minutes-from-midnight-UTC value to the calendar
// day of date. Values below zero or beyond 1440 roll over into the
// adjacent days; time.Time arithmetic carries the date for us.
func minutesToTime(date time.Time, minutes float64) time.Time {
	d := date.UTC()
	midnight := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return midnight.Add(time.Duration(minutes * float64(time.Minute)))
}
