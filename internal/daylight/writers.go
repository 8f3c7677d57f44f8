package daylight

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/litescript/ls-daybreak/internal/astro"
)

// displayName maps event names to table labels.
var displayName = map[string]string{
	EventAstronomicalDawn:   "Astronomical dawn",
	EventNauticalDawn:       "Nautical dawn",
	EventCivilDawn:          "Civil dawn",
	EventSunrise:            "Sunrise",
	EventGoldenMorningEnd:   "Golden hour ends",
	EventSolarNoon:          "Solar noon",
	EventGoldenEveningStart: "Golden hour begins",
	EventSunset:             "Sunset",
	EventCivilDusk:          "Civil dusk",
	EventNauticalDusk:       "Nautical dusk",
	EventAstronomicalDusk:   "Astronomical dusk",
}

// WriteSummaryTable writes the day's schedule as a plain-text table.
func WriteSummaryTable(w io.Writer, st astro.SunTimes, tz *time.Location) {
	if tz == nil {
		tz = time.UTC
	}

	fmt.Fprintf(w, "Sun times for %s @ %s\n",
		st.Date.In(tz).Format("2006-01-02"), st.Coords)
	fmt.Fprintln(w, strings.Repeat("─", 46))

	if st.Polar() {
		if astro.PhaseAt(st.SolarNoon, st.Coords) >= astro.PhaseGolden {
			fmt.Fprintln(w, "Polar day: the sun does not set today")
		} else {
			fmt.Fprintln(w, "Polar night: the sun does not rise today")
		}
	}

	for _, e := range Timeline(st) {
		label := displayName[e.Name]
		if label == "" {
			label = e.Name
		}
		fmt.Fprintf(w, "%-22s %s\n", label, e.Event.At.In(tz).Format("15:04:05"))
	}

	fmt.Fprintln(w, strings.Repeat("─", 46))
	fmt.Fprintf(w, "Day length: %s\n", FormatDayLength(st.DayLengthMinutes))
}

// WriteNowLine writes a single-line report of the current sun state:
// phase, elevation, azimuth, and the next event.
func WriteNowLine(w io.Writer, st astro.SunTimes, coords astro.Coordinates, now time.Time, tz *time.Location) {
	if tz == nil {
		tz = time.UTC
	}

	pos := astro.SunPositionAt(now, coords)
	phase := astro.PhaseForElevation(pos.ElevationDeg)

	line := fmt.Sprintf("%s  el %+.1f°  az %.0f°", phase, pos.ElevationDeg, pos.AzimuthDeg)

	if next, ok := NextEvent(st, now); ok {
		label := displayName[next.Name]
		if label == "" {
			label = next.Name
		}
		line += fmt.Sprintf("  →  %s %s", strings.ToLower(label), next.Event.At.In(tz).Format("15:04"))
	}

	fmt.Fprintln(w, line)
}

// FormatDayLength renders a minute count as "14h 46m".
func FormatDayLength(minutes float64) string {
	if minutes < 0 {
		return fmt.Sprintf("%.0f min", minutes)
	}
	h := int(minutes) / 60
	m := int(minutes) % 60
	return fmt.Sprintf("%dh %02dm", h, m)
}
