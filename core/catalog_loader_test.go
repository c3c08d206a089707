package core

import (
	"strings"
	"testing"

	"github.com/MDStebel/OrbitMath/model"
)

func TestLoadBodyProfilesOverlaysBuiltin(t *testing.T) {
	payload := `{
		"bodies": [
			{
				"body": "iss",
				"name": "Station",
				"min_elevation_deg": 35,
				"ring_color": {"r": 1, "g": 2, "b": 3, "a": 4}
			}
		]
	}`

	profiles, err := LoadBodyProfiles(strings.NewReader(payload))
	if err != nil {
		t.Fatalf("LoadBodyProfiles error: %v", err)
	}
	if len(profiles) != 1 {
		t.Fatalf("len(profiles) = %d, want 1", len(profiles))
	}

	p := profiles[0]
	builtin, err := model.ProfileFor(model.BodyISS)
	if err != nil {
		t.Fatalf("ProfileFor error: %v", err)
	}

	if p.Name != "Station" {
		t.Errorf("Name = %q, want overlay", p.Name)
	}
	if p.MinElevationDeg != 35 {
		t.Errorf("MinElevationDeg = %v, want 35", p.MinElevationDeg)
	}
	if p.RingColor != (model.RGBA{R: 1, G: 2, B: 3, A: 4}) {
		t.Errorf("RingColor = %#v, want overlay", p.RingColor)
	}
	// Untouched fields keep the built-in values.
	if p.CorrectionMultiplier != builtin.CorrectionMultiplier {
		t.Errorf("CorrectionMultiplier = %v, want builtin %v", p.CorrectionMultiplier, builtin.CorrectionMultiplier)
	}
	if len(p.LatitudeThresholds) != len(builtin.LatitudeThresholds) {
		t.Errorf("thresholds overwritten without being present in JSON")
	}
}

func TestLoadBodyProfilesRejectsUnknownBody(t *testing.T) {
	_, err := LoadBodyProfiles(strings.NewReader(`{"bodies":[{"body":"mir"}]}`))
	if err == nil {
		t.Fatalf("expected unknown body to fail")
	}
}

func TestLoadBodyProfilesRejectsEmptyBody(t *testing.T) {
	_, err := LoadBodyProfiles(strings.NewReader(`{"bodies":[{"name":"nameless"}]}`))
	if err == nil {
		t.Fatalf("expected empty body to fail")
	}
}

func TestLoadBodyProfilesRejectsBrokenBandTable(t *testing.T) {
	// Replacing only the thresholds breaks the powers = thresholds+1
	// invariant and must fail at load time, not at frame time.
	payload := `{"bodies":[{"body":"iss","latitude_thresholds":[10, 20]}]}`
	_, err := LoadBodyProfiles(strings.NewReader(payload))
	if err == nil {
		t.Fatalf("expected mismatched band table to fail validation")
	}
}

func TestLoadBodyProfilesRejectsBadJSON(t *testing.T) {
	_, err := LoadBodyProfiles(strings.NewReader(`{"bodies": [`))
	if err == nil {
		t.Fatalf("expected decode failure")
	}
}
