// core/catalog_loader.go
package core

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/MDStebel/OrbitMath/model"
)

// internal JSON shapes – kept unexported so we're free to evolve them.
type bodyCatalogJSON struct {
	Bodies []bodyJSON `json:"bodies"`
}

type bodyJSON struct {
	Body string `json:"body"`
	Name string `json:"name"`

	// Empirical correction tables. Omitted fields keep the built-in
	// profile values; threshold/power tables must be replaced as a pair.
	InclinationDeg       *float64  `json:"inclination_deg"`
	CorrectionMultiplier *float64  `json:"correction_multiplier"`
	LatitudeThresholds   []float64 `json:"latitude_thresholds"`
	CorrectionPowers     []float64 `json:"correction_powers"`

	RingRadiusScene *float64  `json:"ring_radius_scene"`
	RingColor       *rgbaJSON `json:"ring_color"`
	MinElevationDeg *float64  `json:"min_elevation_deg"`

	TLELine1 string `json:"tle1"`
	TLELine2 string `json:"tle2"`
}

type rgbaJSON struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// LoadBodyProfiles reads a JSON body catalog from r and returns one
// validated profile per entry. Each entry starts from the built-in
// profile for its body and overlays whatever fields are present, so a
// catalog can retune a single band table without restating everything.
//
// It fails on JSON errors, unknown bodies, and profiles that violate
// the construction invariants (band table lengths, threshold ordering,
// zero multiplier). Per-frame code relies on those invariants and never
// re-checks them.
func LoadBodyProfiles(r io.Reader) ([]model.OrbitingBodyProfile, error) {
	var payload bodyCatalogJSON
	dec := json.NewDecoder(r)
	if err := dec.Decode(&payload); err != nil {
		return nil, fmt.Errorf("LoadBodyProfiles: decode failed: %w", err)
	}

	profiles := make([]model.OrbitingBodyProfile, 0, len(payload.Bodies))
	for i, jb := range payload.Bodies {
		if jb.Body == "" {
			return nil, fmt.Errorf("LoadBodyProfiles: bodies[%d] has empty body", i)
		}
		body, err := model.ParseBody(jb.Body)
		if err != nil {
			return nil, fmt.Errorf("LoadBodyProfiles: bodies[%d]: %w", i, err)
		}
		p, err := model.ProfileFor(body)
		if err != nil {
			return nil, fmt.Errorf("LoadBodyProfiles: bodies[%d]: %w", i, err)
		}

		if jb.Name != "" {
			p.Name = jb.Name
		}
		if jb.InclinationDeg != nil {
			p.InclinationRadians = *jb.InclinationDeg * DegToRad
		}
		if jb.CorrectionMultiplier != nil {
			p.CorrectionMultiplier = *jb.CorrectionMultiplier
		}
		if jb.LatitudeThresholds != nil {
			p.LatitudeThresholds = jb.LatitudeThresholds
		}
		if jb.CorrectionPowers != nil {
			p.CorrectionPowers = jb.CorrectionPowers
		}
		if jb.RingRadiusScene != nil {
			p.RingRadiusScene = *jb.RingRadiusScene
		}
		if jb.RingColor != nil {
			p.RingColor = model.RGBA{R: jb.RingColor.R, G: jb.RingColor.G, B: jb.RingColor.B, A: jb.RingColor.A}
		}
		if jb.MinElevationDeg != nil {
			p.MinElevationDeg = *jb.MinElevationDeg
		}
		if jb.TLELine1 != "" {
			p.TLELine1 = jb.TLELine1
		}
		if jb.TLELine2 != "" {
			p.TLELine2 = jb.TLELine2
		}

		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("LoadBodyProfiles: bodies[%d] (%s): %w", i, body, err)
		}
		profiles = append(profiles, p)
	}

	return profiles, nil
}
