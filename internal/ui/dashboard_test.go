package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/litescript/ls-daybreak/internal/astro"
)

var sanFrancisco = astro.Coordinates{LatDeg: 37.7749, LonDeg: -122.4194}

// fixedModel builds a model pinned to a known instant.
func fixedModel(t *testing.T, at time.Time) Model {
	t.Helper()
	m := Model{
		coords: sanFrancisco,
		tz:     time.UTC,
		clock:  func() time.Time { return at },
	}
	m.refresh()
	m.ready = true
	m.width = 80
	m.height = 40
	return m
}

func TestCompassPoint(t *testing.T) {
	tests := []struct {
		az   float64
		want string
	}{
		{0, "N"},
		{45, "NE"},
		{90, "E"},
		{135, "SE"},
		{180, "S"},
		{225, "SW"},
		{270, "W"},
		{315, "NW"},
		{359, "N"},
		{22.4, "N"},
		{22.6, "NE"},
	}
	for _, tt := range tests {
		if got := compassPoint(tt.az); got != tt.want {
			t.Errorf("compassPoint(%.1f) = %q, want %q", tt.az, got, tt.want)
		}
	}
}

func TestViewContainsSchedule(t *testing.T) {
	// Solar noon in San Francisco on the June solstice.
	m := fixedModel(t, time.Date(2025, 6, 21, 20, 11, 0, 0, time.UTC))

	out := m.View()
	for _, want := range []string{"Sunrise", "Sunset", "Day length", "Elevation", "Azimuth", "Phase"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(out, "day") {
		t.Error("view should show the day phase at solar noon")
	}
}

func TestViewNotReady(t *testing.T) {
	m := New(sanFrancisco, "", time.UTC)
	if got := m.View(); got != "Loading..." {
		t.Errorf("View() before WindowSizeMsg = %q, want Loading...", got)
	}
}

func TestUpdateQuitKeys(t *testing.T) {
	m := fixedModel(t, time.Date(2025, 6, 21, 20, 0, 0, 0, time.UTC))

	for _, key := range []string{"q", "esc", "ctrl+c"} {
		var msg tea.KeyMsg
		switch key {
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "ctrl+c":
			msg = tea.KeyMsg{Type: tea.KeyCtrlC}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		}

		_, cmd := m.Update(msg)
		if cmd == nil {
			t.Errorf("Update(%q) returned nil cmd, want tea.Quit", key)
		}
	}
}

func TestUpdateWindowSize(t *testing.T) {
	m := New(sanFrancisco, "", time.UTC)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 50})
	got := updated.(Model)
	if !got.ready || got.width != 100 || got.height != 50 {
		t.Errorf("WindowSizeMsg not applied: ready=%v width=%d height=%d",
			got.ready, got.width, got.height)
	}
}

func TestTickAdvancesClock(t *testing.T) {
	at := time.Date(2025, 6, 21, 20, 0, 0, 0, time.UTC)
	m := fixedModel(t, at)

	later := at.Add(time.Hour)
	m.clock = func() time.Time { return later }

	updated, cmd := m.Update(TickMsg(later))
	got := updated.(Model)
	if !got.now.Equal(later) {
		t.Errorf("now = %v, want %v after tick", got.now, later)
	}
	if cmd == nil {
		t.Error("tick must schedule the next tick")
	}
}
