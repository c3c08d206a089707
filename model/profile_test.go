package model

import (
	"errors"
	"testing"
)

func validProfile() OrbitingBodyProfile {
	p, err := ProfileFor(BodyISS)
	if err != nil {
		panic(err)
	}
	return p
}

func TestBuiltinProfilesValidate(t *testing.T) {
	for _, p := range Profiles() {
		if err := p.Validate(); err != nil {
			t.Errorf("builtin profile %v invalid: %v", p.Body, err)
		}
	}
}

func TestValidateRejectsBadProfiles(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*OrbitingBodyProfile)
		wantErr error
	}{
		{
			name:    "zero multiplier",
			mutate:  func(p *OrbitingBodyProfile) { p.CorrectionMultiplier = 0 },
			wantErr: ErrZeroMultiplier,
		},
		{
			name:    "zero inclination",
			mutate:  func(p *OrbitingBodyProfile) { p.InclinationRadians = 0 },
			wantErr: ErrBadInclination,
		},
		{
			name:    "band table length mismatch",
			mutate:  func(p *OrbitingBodyProfile) { p.CorrectionPowers = p.CorrectionPowers[:2] },
			wantErr: ErrBandTableMismatch,
		},
		{
			name:    "thresholds not ascending",
			mutate:  func(p *OrbitingBodyProfile) { p.LatitudeThresholds = []float64{25, 25, 45, 49, 51} },
			wantErr: ErrThresholdsUnsorted,
		},
		{
			name:    "threshold above 90",
			mutate:  func(p *OrbitingBodyProfile) { p.LatitudeThresholds = []float64{25, 35, 45, 49, 95} },
			wantErr: ErrThresholdRange,
		},
		{
			name:    "negative threshold",
			mutate:  func(p *OrbitingBodyProfile) { p.LatitudeThresholds = []float64{-5, 35, 45, 49, 51} },
			wantErr: ErrThresholdRange,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validProfile()
			p.LatitudeThresholds = append([]float64{}, p.LatitudeThresholds...)
			p.CorrectionPowers = append([]float64{}, p.CorrectionPowers...)
			tc.mutate(&p)

			err := p.Validate()
			if err == nil {
				t.Fatalf("expected validation failure")
			}
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("error = %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestProfileForUnknownBody(t *testing.T) {
	if _, err := ProfileFor(BodyUnknown); err == nil {
		t.Fatalf("expected no profile for the unknown body")
	}
}

func TestParseBody(t *testing.T) {
	cases := map[string]Body{
		"iss":        BodyISS,
		"ISS":        BodyISS,
		" tiangong ": BodyTiangong,
		"hst":        BodyHubble,
		"25544":      BodyISS,
	}
	for in, want := range cases {
		got, err := ParseBody(in)
		if err != nil {
			t.Errorf("ParseBody(%q) error: %v", in, err)
			continue
		}
		if got != want {
			t.Errorf("ParseBody(%q) = %v, want %v", in, got, want)
		}
	}

	if _, err := ParseBody("salyut"); err == nil {
		t.Errorf("expected unknown body to fail")
	}
}

func TestBodyString(t *testing.T) {
	if BodyISS.String() != "iss" || BodyTiangong.String() != "tiangong" || BodyHubble.String() != "hubble" {
		t.Fatalf("unexpected body names: %v %v %v", BodyISS, BodyTiangong, BodyHubble)
	}
	if BodyUnknown.String() != "unknown" {
		t.Fatalf("BodyUnknown = %v", BodyUnknown)
	}
}
