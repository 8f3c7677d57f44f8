package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/litescript/ls-daybreak/internal/astro"
	"github.com/litescript/ls-daybreak/internal/daylight"
	"github.com/litescript/ls-daybreak/internal/version"
)

// Phase display colors, darkest to brightest.
const (
	colorNight        = "#30304A" // Deep blue-gray
	colorAstronomical = "#43527E"
	colorNautical     = "#5A6FA8"
	colorCivil        = "#8E9FD1"
	colorGolden       = "#FFB347" // Warm orange
	colorDay          = "#FFD700" // Gold
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("135")).Bold(true)
	labelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	valueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("60"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("60")).
			Padding(0, 1)
)

// phaseStyle returns the style for a twilight phase badge.
func phaseStyle(p astro.TwilightPhase) lipgloss.Style {
	var c string
	switch p {
	case astro.PhaseNight:
		c = colorNight
	case astro.PhaseAstronomical:
		c = colorAstronomical
	case astro.PhaseNautical:
		c = colorNautical
	case astro.PhaseCivil:
		c = colorCivil
	case astro.PhaseGolden:
		c = colorGolden
	default:
		c = colorDay
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c)).Bold(true)
}

func renderError(err error) string {
	return errorStyle.Render(fmt.Sprintf("Error: %v", err)) + "\n\n" +
		dimStyle.Render("Press q to quit")
}

// renderDashboard composes the header, schedule panel, and position panel.
func renderDashboard(m Model) string {
	var b strings.Builder

	b.WriteString(renderHeader(m))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(renderSchedule(m)))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(renderPosition(m)))
	b.WriteString("\n")
	b.WriteString(dimStyle.Render("q quit • r recompute"))

	return b.String()
}

func renderHeader(m Model) string {
	title := titleStyle.Render("ls-daybreak " + version.Version)
	where := m.locName
	if where == "" {
		where = m.coords.String()
	} else {
		where += "  " + m.coords.String()
	}
	return title + "  " + labelStyle.Render(where) +
		dimStyle.Render("  "+m.now.In(m.tz).Format("Mon Jan 2 15:04:05 MST"))
}

// renderSchedule renders the day's event timeline with the next event
// highlighted.
func renderSchedule(m Model) string {
	st := m.times

	var lines []string

	if st.Polar() {
		notice := "Polar night: the sun does not rise today"
		if astro.PhaseAt(st.SolarNoon, st.Coords) >= astro.PhaseGolden {
			notice = "Polar day: the sun does not set today"
		}
		lines = append(lines, phaseStyle(astro.PhaseGolden).Render(notice))
	}

	next, hasNext := daylight.NextEvent(st, m.now)

	for _, e := range daylight.Timeline(st) {
		label := eventLabel(e.Name)
		clock := e.Event.At.In(m.tz).Format("15:04:05")
		line := fmt.Sprintf("%-22s %s", label, clock)

		switch {
		case hasNext && e.Name == next.Name && e.Event.At.Equal(next.Event.At):
			line = valueStyle.Bold(true).Render(line) + labelStyle.Render("  ← next")
		case e.Event.At.Before(m.now):
			line = dimStyle.Render(line)
		default:
			line = valueStyle.Render(line)
		}
		lines = append(lines, line)
	}

	lines = append(lines, "")
	lines = append(lines, labelStyle.Render("Day length  ")+
		valueStyle.Render(daylight.FormatDayLength(st.DayLengthMinutes)))

	return strings.Join(lines, "\n")
}

// renderPosition renders the live sun position and twilight phase.
func renderPosition(m Model) string {
	phase := astro.PhaseForElevation(m.pos.ElevationDeg)

	var lines []string
	lines = append(lines, labelStyle.Render("Phase      ")+
		phaseStyle(phase).Render(phase.String()))
	lines = append(lines, labelStyle.Render("Elevation  ")+
		valueStyle.Render(fmt.Sprintf("%+.1f°", m.pos.ElevationDeg)))
	lines = append(lines, labelStyle.Render("Azimuth    ")+
		valueStyle.Render(fmt.Sprintf("%.1f° %s", m.pos.AzimuthDeg, compassPoint(m.pos.AzimuthDeg))))

	return strings.Join(lines, "\n")
}

// eventLabel maps event names to display labels.
func eventLabel(name string) string {
	switch name {
	case daylight.EventAstronomicalDawn:
		return "Astronomical dawn"
	case daylight.EventNauticalDawn:
		return "Nautical dawn"
	case daylight.EventCivilDawn:
		return "Civil dawn"
	case daylight.EventSunrise:
		return "Sunrise"
	case daylight.EventGoldenMorningEnd:
		return "Golden hour ends"
	case daylight.EventSolarNoon:
		return "Solar noon"
	case daylight.EventGoldenEveningStart:
		return "Golden hour begins"
	case daylight.EventSunset:
		return "Sunset"
	case daylight.EventCivilDusk:
		return "Civil dusk"
	case daylight.EventNauticalDusk:
		return "Nautical dusk"
	case daylight.EventAstronomicalDusk:
		return "Astronomical dusk"
	default:
		return name
	}
}

// compassPoint returns the 8-wind compass label for an azimuth.
func compassPoint(azDeg float64) string {
	points := []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}
	idx := int((azDeg+22.5)/45) % 8
	if idx < 0 {
		idx += 8
	}
	return points[idx]
}
