// Command ls-daybreak computes sunrise, sunset, and twilight times for a
// location and shows them in a terminal dashboard or as headless output.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"golang.org/x/term"

	"github.com/litescript/ls-daybreak/internal/astro"
	"github.com/litescript/ls-daybreak/internal/config"
	"github.com/litescript/ls-daybreak/internal/daylight"
	"github.com/litescript/ls-daybreak/internal/logging"
	"github.com/litescript/ls-daybreak/internal/planner"
	"github.com/litescript/ls-daybreak/internal/ui"
)

// CLI flags
var (
	configPath    string
	locationName  string
	latFlag       float64
	lonFlag       float64
	dateFlag      string
	tzFlag        string
	summaryMode   bool
	snapshotPath  string
	nowMode       bool
	watchInterval time.Duration
	planTarget    string
	planDuration  time.Duration
	planBuffer    time.Duration
)

func main() {
	// A .env file is optional; real environment variables win either way.
	_ = godotenv.Load()

	flag.StringVar(&configPath, "config", envOr("DAYBREAK_CONFIG", ""), "Path to YAML config file")
	flag.StringVar(&locationName, "location", "", "Named location from the config file")
	flag.Float64Var(&latFlag, "lat", envFloat("DAYBREAK_LAT"), "Latitude in degrees (north positive)")
	flag.Float64Var(&lonFlag, "lon", envFloat("DAYBREAK_LON"), "Longitude in degrees (east positive)")
	flag.StringVar(&dateFlag, "date", "", "Date to compute (YYYY-MM-DD, default today)")
	flag.StringVar(&tzFlag, "tz", envOr("DAYBREAK_TZ", ""), "IANA timezone for display (default location's, else UTC)")
	flag.BoolVar(&summaryMode, "summary", false, "Print the schedule table instead of the TUI")
	flag.StringVar(&snapshotPath, "snapshot-path", "", "Export JSON schedule to file (use - for stdout)")
	flag.BoolVar(&nowMode, "now", false, "Single-line current sun state")
	flag.DurationVar(&watchInterval, "watch", 0, "Repeat -now/-summary output at interval (e.g., 30s)")
	flag.StringVar(&planTarget, "plan", "", "Plan a start time for a target event (e.g., sunrise, civil_dawn)")
	flag.DurationVar(&planDuration, "duration", 0, "Activity duration for -plan (e.g., 2h30m)")
	flag.DurationVar(&planBuffer, "buffer", -1, "Slack before the target event for -plan")
	logLevel := flag.String("log-level", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	logger := logging.New(logging.ParseLevel(*logLevel))

	cfg := loadConfig(logger)

	coords, locLabel, tz, err := resolveObserver(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	date, err := resolveDate()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	times, err := astro.CalculateSunTimes(date, coords)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("schedule computed for %s at %s", date.Format("2006-01-02"), coords)

	headless := summaryMode || snapshotPath != "" || nowMode || planTarget != "" ||
		!term.IsTerminal(int(os.Stdout.Fd()))
	if headless {
		runHeadless(times, coords, tz, cfg, logger)
		return
	}

	model := ui.New(coords, locLabel, tz)
	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig loads the YAML config when a path is given or the default
// file exists; otherwise built-in defaults apply.
func loadConfig(logger *logging.Logger) *config.Config {
	path := configPath
	if path == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			candidate := home + "/.config/daybreak/daybreak.yaml"
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
			}
		}
	}
	if path == "" {
		return config.Default()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("loaded config from %s (%d locations)", path, len(cfg.Locations))
	return cfg
}

// resolveObserver picks the observer coordinates and display timezone
// from, in priority order: -location, -lat/-lon (or env), the config's
// default location.
func resolveObserver(cfg *config.Config) (astro.Coordinates, string, *time.Location, error) {
	name := locationName
	if name == "" && math.IsNaN(latFlag) && math.IsNaN(lonFlag) {
		name = cfg.DefaultLocation
	}

	if name != "" {
		loc, ok := cfg.FindLocation(name)
		if !ok {
			return astro.Coordinates{}, "", nil, fmt.Errorf("location %q not found in config", name)
		}
		tz, err := displayTimezone(loc)
		if err != nil {
			return astro.Coordinates{}, "", nil, err
		}
		return loc.Coordinates(), loc.Name, tz, nil
	}

	if math.IsNaN(latFlag) || math.IsNaN(lonFlag) {
		return astro.Coordinates{}, "", nil,
			fmt.Errorf("no location given: use -location, -lat/-lon, or DAYBREAK_LAT/DAYBREAK_LON")
	}

	coords := astro.Coordinates{LatDeg: latFlag, LonDeg: lonFlag}
	if err := coords.Validate(); err != nil {
		return astro.Coordinates{}, "", nil, err
	}
	tz, err := displayTimezone(config.Location{})
	if err != nil {
		return astro.Coordinates{}, "", nil, err
	}
	return coords, "", tz, nil
}

// displayTimezone resolves the display timezone: the -tz flag wins, then
// the location's configured zone, then UTC.
func displayTimezone(loc config.Location) (*time.Location, error) {
	if tzFlag != "" {
		tz, err := time.LoadLocation(tzFlag)
		if err != nil {
			return nil, fmt.Errorf("bad -tz value: %w", err)
		}
		return tz, nil
	}
	return loc.TimeLocation()
}

func resolveDate() (time.Time, error) {
	if dateFlag == "" {
		return time.Now().UTC(), nil
	}
	d, err := time.Parse("2006-01-02", dateFlag)
	if err != nil {
		return time.Time{}, fmt.Errorf("bad -date value (want YYYY-MM-DD): %w", err)
	}
	return d, nil
}

// runHeadless handles all non-TUI modes, optionally repeating on a timer.
func runHeadless(times astro.SunTimes, coords astro.Coordinates, tz *time.Location, cfg *config.Config, logger *logging.Logger) {
	outputOnce := func() error {
		// An explicit -date pins the schedule; otherwise recompute once
		// the UTC day rolls over so long watch sessions stay current.
		if dateFlag == "" && daylight.Stale(times, time.Now()) {
			st, err := astro.CalculateSunTimes(time.Now().UTC(), coords)
			if err != nil {
				return err
			}
			times = st
			logger.Info("schedule recomputed for %s", times.Date.Format("2006-01-02"))
		}

		if planTarget != "" {
			return writePlan(times, tz, cfg)
		}

		if snapshotPath != "" {
			if err := writeSnapshot(times, tz); err != nil {
				return err
			}
			logger.Debug("snapshot written to %s", snapshotPath)
		}
		if summaryMode {
			daylight.WriteSummaryTable(os.Stdout, times, tz)
		}
		if nowMode {
			daylight.WriteNowLine(os.Stdout, times, coords, time.Now().UTC(), tz)
		}
		return nil
	}

	if err := outputOnce(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if watchInterval == 0 {
		return
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	ticker := time.NewTicker(watchInterval)
	defer ticker.Stop()

	logger.Info("watching every %s", watchInterval)

	for {
		select {
		case <-sigCh:
			logger.Debug("watch interrupted, exiting")
			return
		case <-ticker.C:
			if summaryMode {
				fmt.Println()
			}
			if err := outputOnce(); err != nil {
				logger.Error("watch update failed: %v", err)
			}
		}
	}
}

func writeSnapshot(times astro.SunTimes, tz *time.Location) error {
	export := daylight.ExportSchedule(times, tz)
	if snapshotPath == "-" {
		return export.WriteJSON(os.Stdout)
	}
	f, err := os.Create(snapshotPath)
	if err != nil {
		return fmt.Errorf("create snapshot file: %w", err)
	}
	defer f.Close()
	return export.WriteJSON(f)
}

func writePlan(times astro.SunTimes, tz *time.Location, cfg *config.Config) error {
	buffer := planBuffer
	if buffer < 0 {
		buffer = cfg.DefaultBuffer()
	}

	plan, err := planner.ComputePlan(times, planner.Request{
		Target:   planTarget,
		Duration: planDuration,
		Buffer:   buffer,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Target    %s @ %s\n", plan.Target, plan.EventAt.In(tz).Format("15:04:05"))
	fmt.Printf("Start     %s (duration %s, buffer %s)\n",
		plan.StartAt.In(tz).Format("15:04:05"), planDuration, buffer)
	fmt.Printf("Departure light: %s\n", plan.StartPhase)
	if plan.NeedsLight {
		fmt.Println("Bring a headlamp: the start falls before civil twilight.")
	}
	if !plan.EventReached {
		fmt.Println("Warning: the sun never crosses this event's elevation on that date; times are the noon ± 12 h fallback.")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// envFloat reads a float environment variable, returning NaN when unset
// so flag defaults can distinguish "not provided".
func envFloat(key string) float64 {
	v := os.Getenv(key)
	if v == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return math.NaN()
	}
	return f
}
