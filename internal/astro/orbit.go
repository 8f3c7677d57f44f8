package astro

import "math"

// Solar orbital elements for one instant, all derived from the Julian
// Century T. Formulas follow the NOAA solar calculator (after Meeus,
// "Astronomical Algorithms"). Documented accuracy window is roughly the
// years 1901-2099; outside it the polynomials stay defined but degrade.

// geomMeanLongitude returns the Sun's geometric mean longitude in degrees,
// normalized to [0, 360).
func geomMeanLongitude(T float64) float64 {
	L0 := 280.46646 + T*(36000.76983+T*0.0003032)
	return normalizeAngle360(L0)
}

// geomMeanAnomaly returns the Sun's geometric mean anomaly in degrees.
func geomMeanAnomaly(T float64) float64 {
	return 357.52911 + T*(35999.05029-0.0001537*T)
}

// orbitEccentricity returns the eccentricity of Earth's orbit (unitless).
func orbitEccentricity(T float64) float64 {
	return 0.016708634 - T*(0.000042037+0.0000001267*T)
}

// equationOfCenter returns the Sun's equation of center in degrees: the
// three-harmonic correction for the ellipticity of Earth's orbit.
func equationOfCenter(T float64) float64 {
	M := geomMeanAnomaly(T)
	Mrad := degToRad(M)

	return math.Sin(Mrad)*(1.914602-T*(0.004817+0.000014*T)) +
		math.Sin(2*Mrad)*(0.019993-0.000101*T) +
		math.Sin(3*Mrad)*0.000289
}

// trueLongitude returns the Sun's true longitude in degrees.
func trueLongitude(T float64) float64 {
	return geomMeanLongitude(T) + equationOfCenter(T)
}

// ascendingNodeLongitude returns Omega, the longitude of the Moon's
// ascending node in degrees, used in the nutation corrections.
func ascendingNodeLongitude(T float64) float64 {
	return 125.04 - 1934.136*T
}

// apparentLongitude returns the Sun's apparent longitude in degrees,
// correcting the true longitude for nutation and aberration.
func apparentLongitude(T float64) float64 {
	omega := ascendingNodeLongitude(T)
	return trueLongitude(T) - 0.00569 - 0.00478*math.Sin(degToRad(omega))
}

// meanObliquity returns the mean obliquity of the ecliptic in degrees
// (the 23°26'21.448" polynomial, converted from DMS form).
func meanObliquity(T float64) float64 {
	seconds := 21.448 - T*(46.815+T*(0.00059-T*0.001813))
	return 23.0 + (26.0+seconds/60.0)/60.0
}

// correctedObliquity returns the obliquity of the ecliptic corrected for
// nutation, in degrees.
func correctedObliquity(T float64) float64 {
	omega := ascendingNodeLongitude(T)
	return meanObliquity(T) + 0.00256*math.Cos(degToRad(omega))
}

// solarDeclination returns the Sun's declination in degrees: its angular
// distance north (positive) or south of the celestial equator.
func solarDeclination(T float64) float64 {
	epsRad := degToRad(correctedObliquity(T))
	lambdaRad := degToRad(apparentLongitude(T))

	return radToDeg(math.Asin(math.Sin(epsRad) * math.Sin(lambdaRad)))
}

// equationOfTime returns the difference between apparent solar time and
// mean clock time, in minutes. Positive means the sundial runs ahead of
// the clock.
func equationOfTime(T float64) float64 {
	L0rad := degToRad(geomMeanLongitude(T))
	Mrad := degToRad(geomMeanAnomaly(T))
	e := orbitEccentricity(T)

	epsRad := degToRad(correctedObliquity(T))
	y := math.Tan(epsRad / 2)
	y *= y

	eqTime := y*math.Sin(2*L0rad) -
		2*e*math.Sin(Mrad) +
		4*e*y*math.Sin(Mrad)*math.Cos(2*L0rad) -
		0.5*y*y*math.Sin(4*L0rad) -
		1.25*e*e*math.Sin(2*Mrad)

	// Radians of hour angle to minutes: 1 degree = 4 minutes.
	return 4 * radToDeg(eqTime)
}
