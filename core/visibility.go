package core

import "math"

// VisibilityDiameterKm returns the diameter, along the ground, of the
// circle from which the body is visible above minElevationDeg.
//
// With r = EarthRadiusKm + altitudeKm and ε the minimum elevation,
// cosAlpha = cos(ε)·r/R; the arc half-angle is acos(cosAlpha) and the
// diameter is twice the corresponding great-circle arc. When cosAlpha
// exceeds 1 the geometry is infeasible and the function returns the
// sentinel 0 rather than an error.
//
// A mask at or above 90° is handled up front: the body is then visible
// from the sub-point alone, so there is no ground circle. The explicit
// check is required because math.Cos(90°·DegToRad) is a tiny positive
// value rather than zero, which would slip past the cosAlpha test.
func VisibilityDiameterKm(altitudeKm, minElevationDeg float64) float64 {
	if minElevationDeg >= 90 {
		return 0
	}
	r := EarthRadiusKm + altitudeKm
	cosAlpha := math.Cos(minElevationDeg*DegToRad) * r / EarthRadiusKm
	if cosAlpha > 1 {
		return 0
	}
	alpha := math.Acos(cosAlpha)
	return 2 * EarthRadiusKm * alpha
}
