package daylight

import (
	"encoding/json"
	"io"
	"time"

	"github.com/litescript/ls-daybreak/internal/astro"
)

// ScheduleExport is the JSON-serializable representation of a day's
// sun schedule. Instants are formatted in the display timezone; the
// degenerate polar cases keep their fallback instants and are flagged.
type ScheduleExport struct {
	Date             string         `json:"date"`
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	Timezone         string         `json:"timezone"`
	Polar            bool           `json:"polar"`
	SolarNoon        time.Time      `json:"solar_noon"`
	DayLengthMinutes float64        `json:"day_length_minutes"`
	Events           []EventExport  `json:"events"`
	Windows          []WindowExport `json:"windows"`
}

// EventExport is a JSON-friendly event representation.
type EventExport struct {
	Name    string    `json:"name"`
	At      time.Time `json:"at"`
	Reached bool      `json:"reached"`
}

// WindowExport is a JSON-friendly golden/blue hour window.
type WindowExport struct {
	Name   string    `json:"name"`
	Start  time.Time `json:"start"`
	End    time.Time `json:"end"`
	Exists bool      `json:"exists"`
}

// ExportSchedule converts a schedule to an exportable form, with all
// instants rendered in tz.
func ExportSchedule(st astro.SunTimes, tz *time.Location) *ScheduleExport {
	if tz == nil {
		tz = time.UTC
	}

	export := &ScheduleExport{
		Date:             st.Date.In(tz).Format("2006-01-02"),
		Latitude:         st.Coords.LatDeg,
		Longitude:        st.Coords.LonDeg,
		Timezone:         tz.String(),
		Polar:            st.Polar(),
		SolarNoon:        st.SolarNoon.In(tz),
		DayLengthMinutes: st.DayLengthMinutes,
	}

	events := []NamedEvent{
		{EventAstronomicalDawn, st.AstronomicalTwilightStart},
		{EventNauticalDawn, st.NauticalTwilightStart},
		{EventCivilDawn, st.CivilTwilightStart},
		{EventSunrise, st.Sunrise},
		{EventSunset, st.Sunset},
		{EventCivilDusk, st.CivilTwilightEnd},
		{EventNauticalDusk, st.NauticalTwilightEnd},
		{EventAstronomicalDusk, st.AstronomicalTwilightEnd},
	}
	for _, e := range events {
		export.Events = append(export.Events, EventExport{
			Name:    e.Name,
			At:      e.Event.At.In(tz),
			Reached: e.Event.Reached,
		})
	}

	windows := []struct {
		name string
		win  astro.Window
	}{
		{"golden_hour_morning", st.GoldenHourMorning},
		{"golden_hour_evening", st.GoldenHourEvening},
		{"blue_hour_morning", st.BlueHourMorning},
		{"blue_hour_evening", st.BlueHourEvening},
	}
	for _, w := range windows {
		export.Windows = append(export.Windows, WindowExport{
			Name:   w.name,
			Start:  w.win.Start.At.In(tz),
			End:    w.win.End.At.In(tz),
			Exists: w.win.Exists(),
		})
	}

	return export
}

// WriteJSON writes the export as indented JSON.
func (e *ScheduleExport) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(e)
}
