package core

import (
	"math"
	"testing"
)

func matsAlmostEqual(a, b Mat4, tol float64) bool {
	for i := range a {
		if math.Abs(a[i]-b[i]) > tol {
			return false
		}
	}
	return true
}

func TestCompositeAllZerosIsIdentity(t *testing.T) {
	got := Composite(0, 0, 0)
	if !matsAlmostEqual(got, Identity(), 0) {
		t.Fatalf("Composite(0,0,0) = %v, want identity", got)
	}
}

func TestCompositeOrderMatters(t *testing.T) {
	a, b, c := 0.5, 1.0, 2.0
	m1 := Composite(a, b, c)
	m2 := Composite(a, c, b)
	if matsAlmostEqual(m1, m2, 1e-15) {
		t.Fatalf("swapping longitude/latitude offsets must change the transform")
	}
}

func TestCompositeMatchesExplicitMultiplication(t *testing.T) {
	a, b, c := 0.3, -1.2, 2.4
	want := RotationZ(a).Mul(RotationX(c).Mul(RotationY(b)))
	got := Composite(a, b, c)
	if got != want {
		t.Fatalf("Composite = %v, want R1·(R3·R2) = %v", got, want)
	}
}

func TestCompositeBitIdenticalAcrossCalls(t *testing.T) {
	m1 := Composite(0.9013, -2.71, 0.42)
	m2 := Composite(0.9013, -2.71, 0.42)
	if m1 != m2 {
		t.Fatalf("recomputation differs: %v vs %v", m1, m2)
	}
}

func TestRotationZQuarterTurn(t *testing.T) {
	m := RotationZ(math.Pi / 2)
	got := m.ApplyVec3(Vec3{X: 1})
	want := Vec3{Y: 1}
	if math.Abs(got.X-want.X) > 1e-12 || math.Abs(got.Y-want.Y) > 1e-12 || math.Abs(got.Z-want.Z) > 1e-12 {
		t.Fatalf("RotationZ(π/2)·x̂ = %v, want ŷ", got)
	}
}

func TestRotationsPreserveLength(t *testing.T) {
	v := Vec3{X: 0.3, Y: -1.1, Z: 2.2}
	for _, m := range []Mat4{RotationX(0.7), RotationY(-2.1), RotationZ(1.3), Composite(0.5, 1.0, -0.4)} {
		if got, want := m.ApplyVec3(v).Norm(), v.Norm(); math.Abs(got-want) > 1e-12 {
			t.Fatalf("rotation changed vector length: %v vs %v", got, want)
		}
	}
}

func TestOffsetConventionBridge(t *testing.T) {
	// Longitude flips by −180°, latitude by +180°. The asymmetry is the
	// documented scene-frame convention, not a bug.
	if got, want := LongitudeOffsetRad(180), 0.0; got != want {
		t.Fatalf("LongitudeOffsetRad(180) = %v, want 0", got)
	}
	if got, want := LatitudeOffsetRad(-180), 0.0; got != want {
		t.Fatalf("LatitudeOffsetRad(-180) = %v, want 0", got)
	}
	if got, want := LongitudeOffsetRad(0), -math.Pi; got != want {
		t.Fatalf("LongitudeOffsetRad(0) = %v, want -π", got)
	}
	if got, want := LatitudeOffsetRad(0), math.Pi; got != want {
		t.Fatalf("LatitudeOffsetRad(0) = %v, want π", got)
	}
}
