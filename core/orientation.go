package core

import (
	"math"

	"github.com/MDStebel/OrbitMath/model"
)

// CorrectedInclination computes the latitude-dependent inclination
// correction for a body's orbit ring. The result keeps the ring's
// apparent inclination visually stable as the sub-point latitude varies.
//
// The computation has two stages over the same |latitude|:
//
//  1. an exponent base, π/multiplier + |lat|·(π/180)/inclination, a
//     dimensionless shaping quantity that grows with |latitude|;
//  2. a band power, selected by ascending linear scan of the profile's
//     latitude thresholds: the first threshold with |lat| ≤ threshold
//     wins, otherwise the last power (one past the last threshold).
//
// The result is pow(exponentBase, power). Both the formula and the
// step-function band lookup are empirical tuning, not physics: the
// constants and the order of operations must stay exactly as written,
// and the derivative discontinuity at each threshold is accepted. The
// heading factor is applied by the caller, never here.
//
// Total over all real latitudes; depends only on |latitudeDeg|.
func CorrectedInclination(p model.OrbitingBodyProfile, latitudeDeg float64) float64 {
	absLat := math.Abs(latitudeDeg)
	exponentBase := math.Pi/p.CorrectionMultiplier + absLat*DegToRad/p.InclinationRadians

	// First match wins; fall back to the last power when no threshold
	// is reached. Linear scan on purpose: the bands are tiny and the
	// "≤" boundary rule is part of the tuned behaviour.
	power := p.CorrectionPowers[len(p.CorrectionPowers)-1]
	for i, threshold := range p.LatitudeThresholds {
		if absLat <= threshold {
			power = p.CorrectionPowers[i]
			break
		}
	}

	return math.Pow(exponentBase, power)
}

// OrientedInclination applies the sample's heading factor to the
// corrected inclination, flipping the ring tilt on descending passes.
func OrientedInclination(p model.OrbitingBodyProfile, s model.GeodeticSample) float64 {
	return CorrectedInclination(p, s.LatitudeDeg) * s.HeadingFactor
}
