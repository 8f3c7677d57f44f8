package astro

// TwilightPhase categorizes the lighting regime for a given solar
// elevation. Phases are ordered: a higher phase value always corresponds
// to a higher elevation band.
type TwilightPhase int

const (
	PhaseNight        TwilightPhase = iota // Sun below -18°
	PhaseAstronomical                      // -18° to -12°
	PhaseNautical                          // -12° to -6°
	PhaseCivil                             // -6° to 0°
	PhaseGolden                            // 0° to 6°
	PhaseDay                               // above 6°
)

// String returns the phase name.
func (p TwilightPhase) String() string {
	switch p {
	case PhaseNight:
		return "night"
	case PhaseAstronomical:
		return "astronomical"
	case PhaseNautical:
		return "nautical"
	case PhaseCivil:
		return "civil"
	case PhaseGolden:
		return "golden"
	case PhaseDay:
		return "day"
	default:
		return "?"
	}
}

// PhaseForElevation returns the twilight phase for a solar elevation in
// degrees. Total over all finite inputs.
func PhaseForElevation(elevDeg float64) TwilightPhase {
	switch {
	case elevDeg > GoldenHourElevation:
		return PhaseDay
	case elevDeg > 0:
		return PhaseGolden
	case elevDeg > CivilElevation:
		return PhaseCivil
	case elevDeg > NauticalElevation:
		return PhaseNautical
	case elevDeg > AstronomicalElevation:
		return PhaseAstronomical
	default:
		return PhaseNight
	}
}
