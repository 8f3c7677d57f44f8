package astro

import (
	"time"
)

// Window is a bounded daylight interval such as a golden-hour or
// blue-hour window.
type Window struct {
	Start EventTime
	End   EventTime
}

// Exists reports whether both endpoints of the window are actually
// reached on this day.
func (w Window) Exists() bool {
	return w.Start.Reached && w.End.Reached
}

// SunTimes is the full solar event schedule for one date and location.
// All instants are UTC; converting for display is the caller's concern.
type SunTimes struct {
	// Date is the reference instant the schedule was computed for,
	// pinned to 12:00 UTC of the requested calendar day.
	Date   time.Time
	Coords Coordinates

	SolarNoon time.Time

	Sunrise EventTime
	Sunset  EventTime

	CivilTwilightStart        EventTime
	CivilTwilightEnd          EventTime
	NauticalTwilightStart     EventTime
	NauticalTwilightEnd       EventTime
	AstronomicalTwilightStart EventTime
	AstronomicalTwilightEnd   EventTime

	GoldenHourMorning Window
	GoldenHourEvening Window
	BlueHourMorning   Window
	BlueHourEvening   Window

	// DayLengthMinutes is sunset minus sunrise. Degenerate polar days are
	// surfaced as-is (the fallback sentinels make it come out as 1440).
	DayLengthMinutes float64
}

// Polar reports whether the Sun never crossed the horizon on this day
// (polar day or polar night).
func (st SunTimes) Polar() bool {
	return !st.Sunrise.Reached || !st.Sunset.Reached
}

// CalculateSunTimes computes the solar event schedule for the calendar
// day of date at the given coordinates.
//
// The date is pinned to local noon UTC so the Julian-Century-derived
// quantities are stable across the day; declination and the equation of
// time are then treated as constant for the whole day, the standard NOAA
// simplification. The function is pure: identical inputs produce
// identical outputs and it is safe to call concurrently.
func CalculateSunTimes(date time.Time, coords Coordinates) (SunTimes, error) {
	if err := coords.Validate(); err != nil {
		return SunTimes{}, err
	}

	d := date.UTC()
	ref := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)

	T := julianCentury(julianDay(ref))
	declDeg := solarDeclination(T)
	eqTime := equationOfTime(T)

	noonMinutes := solarNoonMinutes(coords.LonDeg, eqTime)
	noonAt := minutesToTime(ref, noonMinutes)

	solve := func(elevDeg float64) (morning, evening EventTime) {
		ha, reached := hourAngleForElevation(coords.LatDeg, declDeg, elevDeg)
		if !reached {
			// Never crossed today: fall back to noon ± 12 h so callers
			// always get a well-defined instant. Reached stays false so
			// polar-latitude callers can tell the day is degenerate.
			morning = EventTime{At: noonAt.Add(-12 * time.Hour)}
			evening = EventTime{At: noonAt.Add(12 * time.Hour)}
			return morning, evening
		}
		morning = EventTime{At: minutesToTime(ref, eventMinutes(coords.LonDeg, eqTime, ha, true)), Reached: true}
		evening = EventTime{At: minutesToTime(ref, eventMinutes(coords.LonDeg, eqTime, ha, false)), Reached: true}
		return morning, evening
	}

	st := SunTimes{
		Date:      ref,
		Coords:    coords,
		SolarNoon: noonAt,
	}

	st.Sunrise, st.Sunset = solve(SunriseElevation)
	st.CivilTwilightStart, st.CivilTwilightEnd = solve(CivilElevation)
	st.NauticalTwilightStart, st.NauticalTwilightEnd = solve(NauticalElevation)
	st.AstronomicalTwilightStart, st.AstronomicalTwilightEnd = solve(AstronomicalElevation)

	goldenMorningEnd, goldenEveningStart := solve(GoldenHourElevation)
	blueMorningEnd, blueEveningStart := solve(BlueHourElevation)

	// Window edges at the horizon and at civil twilight are definitional
	// aliases of events already solved, not independent solutions.
	st.GoldenHourMorning = Window{Start: st.Sunrise, End: goldenMorningEnd}
	st.GoldenHourEvening = Window{Start: goldenEveningStart, End: st.Sunset}
	st.BlueHourMorning = Window{Start: st.CivilTwilightStart, End: blueMorningEnd}
	st.BlueHourEvening = Window{Start: blueEveningStart, End: st.CivilTwilightEnd}

	st.DayLengthMinutes = st.Sunset.At.Sub(st.Sunrise.At).Minutes()

	return st, nil
}
