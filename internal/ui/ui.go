// Package ui provides the terminal user interface using Bubble Tea.
package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-daybreak/internal/astro"
	"github.com/litescript/ls-daybreak/internal/daylight"
)

// TickMsg triggers periodic recomputation of the live sun position.
type TickMsg time.Time

// tickInterval is how often the dashboard refreshes the live position.
const tickInterval = time.Second

// Model is the root Bubble Tea model for the daylight dashboard.
type Model struct {
	coords  astro.Coordinates
	locName string
	tz      *time.Location
	clock   func() time.Time

	width  int
	height int
	ready  bool

	now   time.Time
	times astro.SunTimes
	pos   astro.SunPosition
	err   error
}

// New creates the dashboard model for a location. locName may be empty;
// tz nil means UTC. clock defaults to time.Now and exists for tests.
func New(coords astro.Coordinates, locName string, tz *time.Location) Model {
	if tz == nil {
		tz = time.UTC
	}
	m := Model{
		coords:  coords,
		locName: locName,
		tz:      tz,
		clock:   time.Now,
	}
	m.refresh()
	return m
}

// refresh recomputes the schedule and the live position.
func (m *Model) refresh() {
	m.now = m.clock().UTC()
	m.pos = astro.SunPositionAt(m.now, m.coords)

	// The schedule only changes when the UTC calendar day rolls over.
	if daylight.Stale(m.times, m.now) {
		m.times, m.err = astro.CalculateSunTimes(m.now, m.coords)
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tickCmd()
}

func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		case "r":
			m.times = astro.SunTimes{} // force full recompute
			m.refresh()
			return m, nil
		}

	case TickMsg:
		m.refresh()
		return m, tickCmd()
	}

	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.err != nil {
		return renderError(m.err)
	}
	return renderDashboard(m)
}
