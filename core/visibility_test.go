package core

import (
	"math"
	"testing"
)

func TestVisibilityDiameterAtSurface(t *testing.T) {
	// Satellite at the surface, elevation 0: cosAlpha is exactly 1,
	// alpha is 0, diameter is 0.
	if got := VisibilityDiameterKm(0, 0); got != 0 {
		t.Fatalf("VisibilityDiameterKm(0, 0) = %v, want 0", got)
	}
}

func TestVisibilityDiameterInfeasibleOverhead(t *testing.T) {
	// At a 90° mask the body is visible only from the sub-point, so the
	// ground circle degenerates to a point. math.Cos(90°·DegToRad) is a
	// tiny positive value, not zero, so without the explicit overhead
	// check the formula would report a near-hemisphere diameter instead.
	cases := []struct {
		altitudeKm, minElevationDeg float64
	}{
		{400, 90},
		{0, 90},
		{408, 120},
	}
	for _, tc := range cases {
		if got := VisibilityDiameterKm(tc.altitudeKm, tc.minElevationDeg); got != 0 {
			t.Errorf("VisibilityDiameterKm(%v, %v) = %v, want 0 sentinel",
				tc.altitudeKm, tc.minElevationDeg, got)
		}
	}
}

func TestVisibilityDiameterInfeasibleLowElevation(t *testing.T) {
	// cos(10°)·6779/6371 ≈ 1.048 > 1: infeasible by the formula even
	// though intuition says a low mask should widen the circle.
	if got := VisibilityDiameterKm(408, 10); got != 0 {
		t.Fatalf("VisibilityDiameterKm(408, 10) = %v, want 0 sentinel", got)
	}
}

func TestVisibilityDiameterFeasible(t *testing.T) {
	alt, elev := 408.0, 30.0
	got := VisibilityDiameterKm(alt, elev)
	if got <= 0 {
		t.Fatalf("VisibilityDiameterKm(%v, %v) = %v, want > 0", alt, elev, got)
	}

	r := EarthRadiusKm + alt
	want := 2 * EarthRadiusKm * math.Acos(math.Cos(elev*DegToRad)*r/EarthRadiusKm)
	if got != want {
		t.Fatalf("VisibilityDiameterKm(%v, %v) = %v, want %v", alt, elev, got, want)
	}
}

func TestVisibilityDiameterPure(t *testing.T) {
	a := VisibilityDiameterKm(408, 35)
	b := VisibilityDiameterKm(408, 35)
	if a != b {
		t.Fatalf("repeated calls differ: %v vs %v", a, b)
	}
}
