// Package planner computes recommended activity start times by working
// backward from a target solar event.
package planner

import (
	"errors"
	"fmt"
	"time"

	"github.com/litescript/ls-daybreak/internal/astro"
	"github.com/litescript/ls-daybreak/internal/daylight"
)

// Request describes a planning query: be at the objective for Target,
// having walked/ridden for Duration, leaving Buffer of slack.
type Request struct {
	Target   string // a daylight event name, e.g. daylight.EventSunrise
	Duration time.Duration
	Buffer   time.Duration
}

// Plan is the planner's answer.
type Plan struct {
	Target       string
	EventAt      time.Time
	EventReached bool // false when the target elevation is never crossed that day
	StartAt      time.Time
	StartPhase   astro.TwilightPhase
	// NeedsLight is set when the recommended start falls before civil
	// twilight, i.e. a headlamp is advisable.
	NeedsLight bool
}

// Errors returned by ComputePlan.
var (
	ErrUnknownTarget    = errors.New("unknown target event")
	ErrNegativeDuration = errors.New("duration and buffer must not be negative")
)

// ComputePlan resolves the target event against the schedule and subtracts
// the activity duration and buffer.
//
// When the target elevation is never reached (polar day or night), the
// plan is still produced from the schedule's fallback instant, with
// EventReached false so callers can warn instead of silently trusting a
// degenerate time.
func ComputePlan(st astro.SunTimes, req Request) (Plan, error) {
	if req.Duration < 0 || req.Buffer < 0 {
		return Plan{}, ErrNegativeDuration
	}

	ev, ok := daylight.Lookup(st, req.Target)
	if !ok {
		return Plan{}, fmt.Errorf("%w: %q", ErrUnknownTarget, req.Target)
	}

	start := ev.At.Add(-req.Duration - req.Buffer)
	phase := astro.PhaseAt(start, st.Coords)

	return Plan{
		Target:       req.Target,
		EventAt:      ev.At,
		EventReached: ev.Reached,
		StartAt:      start,
		StartPhase:   phase,
		NeedsLight:   phase < astro.PhaseCivil,
	}, nil
}
