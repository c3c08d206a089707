package core

import "math"

// EarthRadiusKm is the mean Earth radius used for all spherical
// geometry in the visibility calculation (kilometres).
const EarthRadiusKm = 6371.0

// Degree/radian conversion factors shared across the package.
const (
	DegToRad = math.Pi / 180.0
	RadToDeg = 180.0 / math.Pi
)

// Vec3 is a point or direction in the host scene's basis.
type Vec3 struct {
	X, Y, Z float64
}

// Norm returns the Euclidean norm of the vector.
func (v Vec3) Norm() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Sub returns v - other.
func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{X: v.X - other.X, Y: v.Y - other.Y, Z: v.Z - other.Z}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(other Vec3) float64 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

// Scale returns v multiplied by a scalar.
func (v Vec3) Scale(k float64) Vec3 {
	return Vec3{X: v.X * k, Y: v.Y * k, Z: v.Z * k}
}
