package model

import (
	"errors"
	"fmt"
	"math"
)

var (
	ErrZeroMultiplier     = errors.New("correction multiplier must be non-zero")
	ErrBadInclination     = errors.New("inclination must be positive")
	ErrBandTableMismatch  = errors.New("correction powers must be one longer than latitude thresholds")
	ErrThresholdsUnsorted = errors.New("latitude thresholds must be strictly ascending")
	ErrThresholdRange     = errors.New("latitude thresholds must lie within [0, 90] degrees")
)

// RGBA is the ring tint handed to the (external) mesh builder.
type RGBA struct {
	R, G, B, A uint8
}

// OrbitingBodyProfile is the immutable per-body parameter record. One
// profile exists per supported Body; all per-frame computation is a pure
// function of a profile plus the current GeodeticSample.
//
// LatitudeThresholds partitions |latitude| into len(thresholds)+1 bands;
// CorrectionPowers holds one exponent per band. The tables are empirical
// tuning data, not derived quantities.
type OrbitingBodyProfile struct {
	Body Body
	Name string

	// InclinationRadians is the nominal orbital inclination.
	InclinationRadians float64

	// CorrectionMultiplier divides π in the exponent base formula.
	CorrectionMultiplier float64

	// LatitudeThresholds are ascending band breakpoints in degrees.
	LatitudeThresholds []float64

	// CorrectionPowers has exactly len(LatitudeThresholds)+1 entries.
	CorrectionPowers []float64

	// RingRadiusScene and RingColor are consumed only by the mesh
	// builder that owns the ring node; the engine passes them through.
	RingRadiusScene float64
	RingColor       RGBA

	// MinElevationDeg is the elevation mask used for the visibility
	// circle diameter published alongside the orientation.
	MinElevationDeg float64

	// TLE lines feed the SGP4 sub-point model. Empty lines select the
	// fixed sub-point model instead.
	TLELine1 string
	TLELine2 string
}

// Validate checks the construction-time invariants. Profiles are fixed
// constants, so a failure here is a configuration error: it is checked
// once when a profile enters the catalog, never per frame.
func (p OrbitingBodyProfile) Validate() error {
	if p.CorrectionMultiplier == 0 {
		return ErrZeroMultiplier
	}
	if !(p.InclinationRadians > 0) {
		return ErrBadInclination
	}
	if len(p.CorrectionPowers) != len(p.LatitudeThresholds)+1 {
		return fmt.Errorf("%w: %d powers for %d thresholds",
			ErrBandTableMismatch, len(p.CorrectionPowers), len(p.LatitudeThresholds))
	}
	prev := math.Inf(-1)
	for i, th := range p.LatitudeThresholds {
		if th < 0 || th > 90 {
			return fmt.Errorf("%w: thresholds[%d] = %v", ErrThresholdRange, i, th)
		}
		if th <= prev {
			return fmt.Errorf("%w: thresholds[%d] = %v follows %v",
				ErrThresholdsUnsorted, i, th, prev)
		}
		prev = th
	}
	return nil
}

const degToRad = math.Pi / 180.0

// Built-in profiles. The threshold/power bands are empirically tuned
// against the rendered globe and must be changed only as complete rows;
// the step-function band selection (no interpolation) is intentional.
var builtinProfiles = map[Body]OrbitingBodyProfile{
	BodyISS: {
		Body:                 BodyISS,
		Name:                 "ISS",
		InclinationRadians:   51.64 * degToRad,
		CorrectionMultiplier: 2.5,
		LatitudeThresholds:   []float64{25, 35, 45, 49, 51},
		CorrectionPowers:     []float64{0.80, 0.85, 0.97, 1.06, 1.11, 1.18},
		RingRadiusScene:      1.066,
		RingColor:            RGBA{R: 255, G: 149, B: 0, A: 255},
		MinElevationDeg:      30,
		TLELine1:             "1 25544U 98067A   21275.59097222  .00000204  00000-0  10270-4 0  9990",
		TLELine2:             "2 25544  51.6459 115.9059 0001817  61.3028  35.9198 15.49370953257760",
	},
	BodyTiangong: {
		Body:                 BodyTiangong,
		Name:                 "Tiangong",
		InclinationRadians:   41.47 * degToRad,
		CorrectionMultiplier: 2.5,
		LatitudeThresholds:   []float64{15, 25, 33, 38, 40},
		CorrectionPowers:     []float64{0.75, 0.85, 0.97, 1.07, 1.12, 1.20},
		RingRadiusScene:      1.060,
		RingColor:            RGBA{R: 255, G: 45, B: 85, A: 255},
		MinElevationDeg:      30,
		TLELine1:             "1 48274U 21035A   21275.51782528  .00021906  00000-0  26294-3 0  9998",
		TLELine2:             "2 48274  41.4697 177.8687 0008238 273.2706  86.7348 15.61141201 25640",
	},
	BodyHubble: {
		Body:                 BodyHubble,
		Name:                 "Hubble",
		InclinationRadians:   28.47 * degToRad,
		CorrectionMultiplier: 2.5,
		LatitudeThresholds:   []float64{10, 17, 23, 26, 27},
		CorrectionPowers:     []float64{0.75, 0.85, 0.97, 1.07, 1.12, 1.20},
		RingRadiusScene:      1.085,
		RingColor:            RGBA{R: 90, G: 200, B: 250, A: 255},
		MinElevationDeg:      30,
		TLELine1:             "1 20580U 90037B   21275.48381556  .00000930  00000-0  45067-4 0  9993",
		TLELine2:             "2 20580  28.4701 288.8193 0002832 321.7771 171.4552 15.09299865524095",
	},
}

// ProfileFor returns the built-in profile for the body. The returned
// value shares its band tables with the built-in record; callers must
// treat them as read-only.
func ProfileFor(body Body) (OrbitingBodyProfile, error) {
	p, ok := builtinProfiles[body]
	if !ok {
		return OrbitingBodyProfile{}, fmt.Errorf("no profile for body %q", body)
	}
	return p, nil
}

// Profiles returns the built-in profiles for all supported bodies.
func Profiles() []OrbitingBodyProfile {
	res := make([]OrbitingBodyProfile, 0, len(builtinProfiles))
	for _, b := range []Body{BodyISS, BodyTiangong, BodyHubble} {
		res = append(res, builtinProfiles[b])
	}
	return res
}
