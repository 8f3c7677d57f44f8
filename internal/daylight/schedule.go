// Package daylight presents computed sun schedules: chronological event
// timelines, headless text output, and JSON export.
package daylight

import (
	"sort"
	"time"

	"github.com/litescript/ls-daybreak/internal/astro"
)

// Event names used in timelines, exports, and planner targets.
const (
	EventAstronomicalDawn   = "astronomical_dawn"
	EventNauticalDawn       = "nautical_dawn"
	EventCivilDawn          = "civil_dawn"
	EventSunrise            = "sunrise"
	EventGoldenMorningEnd   = "golden_hour_morning_end"
	EventSolarNoon          = "solar_noon"
	EventGoldenEveningStart = "golden_hour_evening_start"
	EventSunset             = "sunset"
	EventCivilDusk          = "civil_dusk"
	EventNauticalDusk       = "nautical_dusk"
	EventAstronomicalDusk   = "astronomical_dusk"
)

// NamedEvent pairs an event name with its solved time.
type NamedEvent struct {
	Name  string
	Event astro.EventTime
}

// Timeline returns the day's events in chronological order. Events whose
// elevation was never reached are excluded; solar noon is always present.
func Timeline(st astro.SunTimes) []NamedEvent {
	all := []NamedEvent{
		{EventAstronomicalDawn, st.AstronomicalTwilightStart},
		{EventNauticalDawn, st.NauticalTwilightStart},
		{EventCivilDawn, st.CivilTwilightStart},
		{EventSunrise, st.Sunrise},
		{EventGoldenMorningEnd, st.GoldenHourMorning.End},
		{EventSolarNoon, astro.EventTime{At: st.SolarNoon, Reached: true}},
		{EventGoldenEveningStart, st.GoldenHourEvening.Start},
		{EventSunset, st.Sunset},
		{EventCivilDusk, st.CivilTwilightEnd},
		{EventNauticalDusk, st.NauticalTwilightEnd},
		{EventAstronomicalDusk, st.AstronomicalTwilightEnd},
	}

	events := all[:0:0]
	for _, e := range all {
		if e.Event.Reached {
			events = append(events, e)
		}
	}
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Event.At.Before(events[j].Event.At)
	})
	return events
}

// Stale reports whether the schedule no longer covers the UTC calendar
// day of now.
func Stale(st astro.SunTimes, now time.Time) bool {
	sy, sm, sd := st.Date.Date()
	ny, nm, nd := now.UTC().Date()
	return sy != ny || sm != nm || sd != nd
}

// NextEvent returns the first timeline event after now.
func NextEvent(st astro.SunTimes, now time.Time) (NamedEvent, bool) {
	for _, e := range Timeline(st) {
		if e.Event.At.After(now) {
			return e, true
		}
	}
	return NamedEvent{}, false
}

// Lookup resolves an event name against a schedule. The boolean is false
// for unknown names.
func Lookup(st astro.SunTimes, name string) (astro.EventTime, bool) {
	switch name {
	case EventAstronomicalDawn:
		return st.AstronomicalTwilightStart, true
	case EventNauticalDawn:
		return st.NauticalTwilightStart, true
	case EventCivilDawn:
		return st.CivilTwilightStart, true
	case EventSunrise:
		return st.Sunrise, true
	case EventGoldenMorningEnd:
		return st.GoldenHourMorning.End, true
	case EventSolarNoon:
		return astro.EventTime{At: st.SolarNoon, Reached: true}, true
	case EventGoldenEveningStart:
		return st.GoldenHourEvening.Start, true
	case EventSunset:
		return st.Sunset, true
	case EventCivilDusk:
		return st.CivilTwilightEnd, true
	case EventNauticalDusk:
		return st.NauticalTwilightEnd, true
	case EventAstronomicalDusk:
		return st.AstronomicalTwilightEnd, true
	default:
		return astro.EventTime{}, false
	}
}
