package astro

import (
	"errors"
	"fmt"
	"math"
)

// Coordinates represent an observer's location on Earth.
type Coordinates struct {
	LatDeg float64 // Latitude in degrees (north positive)
	LonDeg float64 // Longitude in degrees (east positive)
}

// Errors for structurally invalid input. These are distinct from the
// unreachable-elevation outcome, which is modeled by EventTime.Reached.
var (
	ErrInvalidLatitude  = errors.New("latitude must be a finite value in [-90, 90]")
	ErrInvalidLongitude = errors.New("longitude must be a finite value in [-180, 180]")
)

// Validate checks that the coordinates are finite and within range.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.LatDeg) || math.IsInf(c.LatDeg, 0) || c.LatDeg < -90 || c.LatDeg > 90 {
		return fmt.Errorf("%w: got %v", ErrInvalidLatitude, c.LatDeg)
	}
	if math.IsNaN(c.LonDeg) || math.IsInf(c.LonDeg, 0) || c.LonDeg < -180 || c.LonDeg > 180 {
		return fmt.Errorf("%w: got %v", ErrInvalidLongitude, c.LonDeg)
	}
	return nil
}

// String formats coordinates as "37.7749°N 122.4194°W".
func (c Coordinates) String() string {
	ns := "N"
	lat := c.LatDeg
	if lat < 0 {
		ns = "S"
		lat = -lat
	}
	ew := "E"
	lon := c.LonDeg
	if lon < 0 {
		ew = "W"
		lon = -lon
	}
	return fmt.Sprintf("%.4f°%s %.4f°%s", lat, ns, lon, ew)
}
