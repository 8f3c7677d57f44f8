package astro

import (
	"math"
	"testing"
	"time"
)

func mustSunTimes(t *testing.T, date time.Time, coords Coordinates) SunTimes {
	t.Helper()
	st, err := CalculateSunTimes(date, coords)
	if err != nil {
		t.Fatalf("CalculateSunTimes() error: %v", err)
	}
	return st
}

func TestCalculateSunTimesSanFranciscoSolstice(t *testing.T) {
	st := mustSunTimes(t, time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC), sanFrancisco)

	if !st.Sunrise.Reached || !st.Sunset.Reached {
		t.Fatal("expected sunrise and sunset to be reached")
	}

	// Sunrise lands between 12:00 and 13:30 UTC.
	lo := time.Date(2025, 6, 21, 12, 0, 0, 0, time.UTC)
	hi := time.Date(2025, 6, 21, 13, 30, 0, 0, time.UTC)
	if st.Sunrise.At.Before(lo) || st.Sunrise.At.After(hi) {
		t.Errorf("sunrise = %v, want between %v and %v", st.Sunrise.At, lo, hi)
	}
}

func TestCalculateSunTimesWinterDayLength(t *testing.T) {
	st := mustSunTimes(t, time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC), sanFrancisco)

	hours := st.DayLengthMinutes / 60
	if hours < 9.0 || hours > 10.0 {
		t.Errorf("day length = %.2f h, want between 9.0 and 10.0", hours)
	}
}

func TestCalculateSunTimesEquatorEquinox(t *testing.T) {
	st := mustSunTimes(t, time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		Coordinates{LatDeg: 0, LonDeg: 0})

	hours := st.DayLengthMinutes / 60
	if hours < 11.5 || hours > 12.5 {
		t.Errorf("day length = %.2f h, want between 11.5 and 12.5", hours)
	}
}

func TestCalculateSunTimesArcticJanuary(t *testing.T) {
	// 65°N in mid January: short day, but not yet polar night.
	st := mustSunTimes(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Coordinates{LatDeg: 65, LonDeg: 25})

	if !st.Sunrise.Reached {
		t.Fatal("expected sunrise to be reached at 65°N in January")
	}
	if st.Polar() {
		t.Fatal("Polar() = true, want false")
	}
	if hours := st.DayLengthMinutes / 60; hours >= 10 {
		t.Errorf("day length = %.2f h, want under 10", hours)
	}
}

func TestEventOrdering(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, 3, 20, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 9, 22, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC),
	}
	coords := []Coordinates{
		sanFrancisco,
		{LatDeg: 0, LonDeg: 0},
		{LatDeg: -33.9, LonDeg: 151.2},
		{LatDeg: 51.5, LonDeg: -0.1},
	}

	for _, date := range dates {
		for _, c := range coords {
			st := mustSunTimes(t, date, c)

			ordered := []struct {
				name string
				ev   EventTime
			}{
				{"astronomical twilight start", st.AstronomicalTwilightStart},
				{"nautical twilight start", st.NauticalTwilightStart},
				{"civil twilight start", st.CivilTwilightStart},
				{"sunrise", st.Sunrise},
				{"solar noon", EventTime{At: st.SolarNoon, Reached: true}},
				{"sunset", st.Sunset},
				{"civil twilight end", st.CivilTwilightEnd},
				{"nautical twilight end", st.NauticalTwilightEnd},
				{"astronomical twilight end", st.AstronomicalTwilightEnd},
			}

			for i := 1; i < len(ordered); i++ {
				prev, curr := ordered[i-1], ordered[i]
				if !prev.ev.Reached || !curr.ev.Reached {
					continue
				}
				if prev.ev.At.After(curr.ev.At) {
					t.Errorf("%v at %v: %s (%v) after %s (%v)",
						date.Format("2006-01-02"), c, prev.name, prev.ev.At, curr.name, curr.ev.At)
				}
			}

			if st.DayLengthMinutes < 0 || st.DayLengthMinutes > 1440 {
				t.Errorf("day length %.1f min out of [0, 1440] for %v at %v",
					st.DayLengthMinutes, date, c)
			}
		}
	}
}

func TestGoldenHourWithinCivilTwilight(t *testing.T) {
	st := mustSunTimes(t, time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC), sanFrancisco)

	if !st.GoldenHourMorning.Exists() || !st.GoldenHourEvening.Exists() {
		t.Fatal("expected golden hour windows to exist")
	}

	if st.GoldenHourMorning.Start.At.Before(st.CivilTwilightStart.At) {
		t.Errorf("golden hour morning start %v before civil twilight start %v",
			st.GoldenHourMorning.Start.At, st.CivilTwilightStart.At)
	}
	if st.GoldenHourEvening.End.At.After(st.CivilTwilightEnd.At) {
		t.Errorf("golden hour evening end %v after civil twilight end %v",
			st.GoldenHourEvening.End.At, st.CivilTwilightEnd.At)
	}

	// Definitional aliases rather than independently solved edges.
	if !st.GoldenHourMorning.Start.At.Equal(st.Sunrise.At) {
		t.Error("golden hour morning must start at sunrise")
	}
	if !st.GoldenHourEvening.End.At.Equal(st.Sunset.At) {
		t.Error("golden hour evening must end at sunset")
	}
	if !st.BlueHourMorning.Start.At.Equal(st.CivilTwilightStart.At) {
		t.Error("blue hour morning must start at civil twilight start")
	}
	if !st.BlueHourEvening.End.At.Equal(st.CivilTwilightEnd.At) {
		t.Error("blue hour evening must end at civil twilight end")
	}
}

func TestPolarNightFallback(t *testing.T) {
	// Svalbard in late December: the Sun never clears the horizon. The
	// schedule must still carry well-defined instants, tagged unreached,
	// sitting 12 hours either side of solar noon.
	st := mustSunTimes(t, time.Date(2025, 12, 21, 0, 0, 0, 0, time.UTC),
		Coordinates{LatDeg: 78.22, LonDeg: 15.64})

	if st.Sunrise.Reached || st.Sunset.Reached {
		t.Fatal("expected sunrise/sunset to be unreached during polar night")
	}
	if !st.Polar() {
		t.Error("Polar() = false, want true")
	}
	if st.Sunrise.At.IsZero() || st.Sunset.At.IsZero() {
		t.Fatal("fallback instants must be populated")
	}

	if got := st.SolarNoon.Sub(st.Sunrise.At); got != 12*time.Hour {
		t.Errorf("sunrise fallback offset = %v, want 12h before solar noon", got)
	}
	if got := st.Sunset.At.Sub(st.SolarNoon); got != 12*time.Hour {
		t.Errorf("sunset fallback offset = %v, want 12h after solar noon", got)
	}
}

func TestPolarDay(t *testing.T) {
	st := mustSunTimes(t, time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC),
		Coordinates{LatDeg: 78.22, LonDeg: 15.64})

	if st.Sunrise.Reached || st.Sunset.Reached {
		t.Fatal("expected sunrise/sunset to be unreached during polar day")
	}
	// The fallback spans the whole day.
	if math.Abs(st.DayLengthMinutes-1440) > 1e-6 {
		t.Errorf("day length = %.2f min, want 1440 for the fallback span", st.DayLengthMinutes)
	}
}

func TestCalculateSunTimesDeterministic(t *testing.T) {
	date := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)

	a := mustSunTimes(t, date, sanFrancisco)
	b := mustSunTimes(t, date, sanFrancisco)
	if a != b {
		t.Error("identical inputs must produce identical schedules")
	}

	// Any instant within the same calendar day yields the same schedule.
	c := mustSunTimes(t, date.Add(23*time.Hour+59*time.Minute), sanFrancisco)
	if a != c {
		t.Error("schedule must not depend on the time-of-day of the input date")
	}
}

func TestCalculateSunTimesInvalidInput(t *testing.T) {
	date := time.Date(2025, 6, 21, 0, 0, 0, 0, time.UTC)

	bad := []Coordinates{
		{LatDeg: math.NaN(), LonDeg: 0},
		{LatDeg: 0, LonDeg: math.NaN()},
		{LatDeg: 91, LonDeg: 0},
		{LatDeg: -91, LonDeg: 0},
		{LatDeg: 0, LonDeg: 181},
		{LatDeg: 0, LonDeg: math.Inf(1)},
	}

	for _, c := range bad {
		if _, err := CalculateSunTimes(date, c); err == nil {
			t.Errorf("CalculateSunTimes(%v) error = nil, want validation error", c)
		}
	}
}
