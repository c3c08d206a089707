package core

import "math"

// Mat4 is a homogeneous rotation transform: a 3×3 rotation embedded in
// a 4×4 matrix, row-major. The translation column is always zero; the
// renderer applies the matrix to the ring node as-is, replacing (not
// accumulating onto) whatever transform the node carried before.
type Mat4 [16]float64

// Identity returns the identity transform.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// RotationX returns a rotation by angle (radians) about the scene X axis.
func RotationX(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		1, 0, 0, 0,
		0, c, -s, 0,
		0, s, c, 0,
		0, 0, 0, 1,
	}
}

// RotationY returns a rotation by angle (radians) about the scene Y axis.
func RotationY(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		c, 0, s, 0,
		0, 1, 0, 0,
		-s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotationZ returns a rotation by angle (radians) about the scene Z axis.
func RotationZ(angle float64) Mat4 {
	s, c := math.Sincos(angle)
	return Mat4{
		c, -s, 0, 0,
		s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Mul returns m · n.
func (m Mat4) Mul(n Mat4) Mat4 {
	var out Mat4
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			sum := 0.0
			for k := 0; k < 4; k++ {
				sum += m[row*4+k] * n[k*4+col]
			}
			out[row*4+col] = sum
		}
	}
	return out
}

// ApplyVec3 applies the rotation to a point (w = 1).
func (m Mat4) ApplyVec3(v Vec3) Vec3 {
	return Vec3{
		X: m[0]*v.X + m[1]*v.Y + m[2]*v.Z + m[3],
		Y: m[4]*v.X + m[5]*v.Y + m[6]*v.Z + m[7],
		Z: m[8]*v.X + m[9]*v.Y + m[10]*v.Z + m[11],
	}
}

// LongitudeOffsetRad converts a sub-point longitude in degrees to the
// scene-frame rotation offset about the Y axis.
func LongitudeOffsetRad(longitudeDeg float64) float64 {
	return (longitudeDeg - 180.0) * DegToRad
}

// LatitudeOffsetRad converts a sub-point latitude in degrees to the
// scene-frame rotation offset about the X axis. The +180° here against
// the −180° in LongitudeOffsetRad is the fixed convention bridge between
// geodetic coordinates and the scene basis: the asymmetry is intentional.
func LatitudeOffsetRad(latitudeDeg float64) float64 {
	return (latitudeDeg + 180.0) * DegToRad
}

// Composite builds the ring orientation from the corrected inclination
// and the scene-frame offsets:
//
//	R1 = rotation by correctedInclinationRad about Z
//	R2 = rotation by lonOffsetRad about Y
//	R3 = rotation by latOffsetRad about X
//
// composed as R1 · (R3 · R2). Rotation composition is non-commutative;
// the order is part of the contract.
func Composite(correctedInclinationRad, lonOffsetRad, latOffsetRad float64) Mat4 {
	r1 := RotationZ(correctedInclinationRad)
	r2 := RotationY(lonOffsetRad)
	r3 := RotationX(latOffsetRad)
	return r1.Mul(r3.Mul(r2))
}
