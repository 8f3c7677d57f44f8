package astro

import (
	"math"
	"time"
)

// SunPosition is the Sun's instantaneous horizontal-coordinate geometry
// for an observer.
type SunPosition struct {
	ElevationDeg float64 // degrees above the horizon, signed
	AzimuthDeg   float64 // degrees clockwise from north, [0, 360)
}

// SunPositionAt computes the Sun's elevation and azimuth at an exact
// instant for the given observer coordinates.
//
// This is the inverse of the event solver: time in, angle out. The hour
// angle comes from the instant's offset from solar noon (4 minutes per
// degree), elevation from the standard spherical-triangle formula, and
// azimuth from the arccosine form with the afternoon hemisphere reflected.
func SunPositionAt(t time.Time, coords Coordinates) SunPosition {
	T := julianCentury(julianDay(t))
	declDeg := solarDeclination(T)
	eqTime := equationOfTime(T)

	utc := t.UTC()
	minutes := float64(utc.Hour())*60 + float64(utc.Minute()) +
		float64(utc.Second())/60 + float64(utc.Nanosecond())/6e10

	// Hour angle in degrees: positive after solar noon. The instant's UTC
	// day can straddle solar noon at far longitudes, so wrap into
	// (-180, 180] before the sign decides the hemisphere.
	haDeg := (minutes - solarNoonMinutes(coords.LonDeg, eqTime)) / 4
	haDeg = math.Mod(haDeg, 360)
	if haDeg > 180 {
		haDeg -= 360
	} else if haDeg <= -180 {
		haDeg += 360
	}

	latRad := degToRad(coords.LatDeg)
	declRad := degToRad(declDeg)
	haRad := degToRad(haDeg)

	sinElev := math.Sin(latRad)*math.Sin(declRad) +
		math.Cos(latRad)*math.Cos(declRad)*math.Cos(haRad)
	elevRad := math.Asin(clampUnit(sinElev))
	elevDeg := radToDeg(elevRad)

	return SunPosition{
		ElevationDeg: elevDeg,
		AzimuthDeg:   azimuthDeg(latRad, declRad, elevRad, haDeg),
	}
}

// azimuthDeg computes the azimuth (degrees clockwise from north) given
// the observer latitude, solar declination, and elevation in radians plus
// the hour angle in degrees.
func azimuthDeg(latRad, declRad, elevRad, haDeg float64) float64 {
	denom := math.Cos(latRad) * math.Cos(elevRad)
	if math.Abs(denom) < 1e-12 {
		// At the poles (or with the Sun at the zenith) azimuth is
		// undefined; report the meridian direction instead of dividing
		// by zero.
		if latRad > 0 {
			return 180
		}
		return 0
	}

	cosAz := (math.Sin(declRad) - math.Sin(latRad)*math.Sin(elevRad)) / denom
	az := radToDeg(math.Acos(clampUnit(cosAz)))

	// The arccosine only spans the eastern half; after solar noon the Sun
	// is on the western side.
	if haDeg > 0 {
		az = 360 - az
	}
	return normalizeAngle360(az)
}

// PhaseAt returns the twilight phase at an instant for the given
// coordinates.
func PhaseAt(t time.Time, coords Coordinates) TwilightPhase {
	return PhaseForElevation(SunPositionAt(t, coords).ElevationDeg)
}
