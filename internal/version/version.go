// Package version provides build and version information.
package version

// Version is the current application version.
const Version = "0.3.0"

// Milestones:
// 0.3.0 - Start-time planner, YAML location config, .env overrides
// 0.2.0 - Golden/blue hour windows, twilight phase classifier, JSON export
// 0.1.0 - Initial release: NOAA sun times engine, TUI dashboard, headless modes
