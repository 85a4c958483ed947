// Package math3d provides 3D math primitives for glyph3d.
package math3d

import (
	"errors"
	"math"
)

// ErrZeroLength is returned when a zero-length vector has no direction.
var ErrZeroLength = errors.New("math3d: zero-length vector")

// Vec3 represents a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// V3 creates a new Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{x, y, z}
}

// Zero3 returns the zero vector.
func Zero3() Vec3 {
	return Vec3{}
}

// Up returns the world up vector (0, 1, 0).
func Up() Vec3 {
	return Vec3{0, 1, 0}
}

// Forward returns the camera-space forward vector (0, 0, 1).
func Forward() Vec3 {
	return Vec3{0, 0, 1}
}

// Right returns the world right vector (1, 0, 0).
func Right() Vec3 {
	return Vec3{1, 0, 0}
}

// Add returns the vector sum a + b.
func (a Vec3) Add(b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns the vector difference a - b.
func (a Vec3) Sub(b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns the scalar product a * s.
func (a Vec3) Scale(s float64) Vec3 {
	return Vec3{a.X * s, a.Y * s, a.Z * s}
}

// Dot returns the dot product a · b.
func (a Vec3) Dot(b Vec3) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// Cross returns the cross product a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Len returns the length (magnitude) of the vector.
func (a Vec3) Len() float64 {
	return math.Sqrt(a.X*a.X + a.Y*a.Y + a.Z*a.Z)
}

// LenSq returns the squared length (faster, no sqrt).
func (a Vec3) LenSq() float64 {
	return a.X*a.X + a.Y*a.Y + a.Z*a.Z
}

// Distance returns the distance between two points.
func (a Vec3) Distance(b Vec3) float64 {
	return b.Sub(a).Len()
}

// Normalize returns the unit vector in the same direction.
// A zero vector normalizes to the zero vector.
func (a Vec3) Normalize() Vec3 {
	n, err := a.TryNormalize()
	if err != nil {
		return Vec3{}
	}
	return n
}

// TryNormalize returns the unit vector in the same direction, or
// ErrZeroLength when a has no direction.
func (a Vec3) TryNormalize() (Vec3, error) {
	l2 := a.LenSq()
	if l2 == 0 || math.IsNaN(l2) {
		return Vec3{}, ErrZeroLength
	}
	return a.Scale(1 / math.Sqrt(l2)), nil
}

// Negate returns the negated vector.
func (a Vec3) Negate() Vec3 {
	return Vec3{-a.X, -a.Y, -a.Z}
}

// Min returns the component-wise minimum.
func (a Vec3) Min(b Vec3) Vec3 {
	return Vec3{
		math.Min(a.X, b.X),
		math.Min(a.Y, b.Y),
		math.Min(a.Z, b.Z),
	}
}

// Max returns the component-wise maximum.
func (a Vec3) Max(b Vec3) Vec3 {
	return Vec3{
		math.Max(a.X, b.X),
		math.Max(a.Y, b.Y),
		math.Max(a.Z, b.Z),
	}
}

// ApproxEqual reports whether every component of a and b differs by at most eps.
func (a Vec3) ApproxEqual(b Vec3, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps &&
		math.Abs(a.Y-b.Y) <= eps &&
		math.Abs(a.Z-b.Z) <= eps
}

// RotateX rotates the vector by theta radians around the X axis.
func (a Vec3) RotateX(theta float64) Vec3 {
	s, c := math.Sincos(theta)
	return Vec3{
		a.X,
		a.Y*c - a.Z*s,
		a.Y*s + a.Z*c,
	}
}

// RotateY rotates the vector by theta radians around the Y axis.
func (a Vec3) RotateY(theta float64) Vec3 {
	s, c := math.Sincos(theta)
	return Vec3{
		a.X*c + a.Z*s,
		a.Y,
		a.Z*c - a.X*s,
	}
}

// RotateZ rotates the vector by theta radians around the Z axis.
func (a Vec3) RotateZ(theta float64) Vec3 {
	s, c := math.Sincos(theta)
	return Vec3{
		a.X*c - a.Y*s,
		a.X*s + a.Y*c,
		a.Z,
	}
}

// RotateEuler applies the Euler angles in r as X, then Y, then Z.
// This is the order used for model transforms.
func (a Vec3) RotateEuler(r Vec3) Vec3 {
	return a.RotateX(r.X).RotateY(r.Y).RotateZ(r.Z)
}

// InverseRotateEuler undoes a camera orientation: -Y, then -X, then -Z.
func (a Vec3) InverseRotateEuler(r Vec3) Vec3 {
	return a.RotateY(-r.Y).RotateX(-r.X).RotateZ(-r.Z)
}

// TriangleNormal returns the unit normal of the triangle (a, b, c) following
// its winding. ok is false when the triangle is degenerate (collinear or
// coincident points) and has no normal.
func TriangleNormal(a, b, c Vec3) (n Vec3, ok bool) {
	n, err := b.Sub(a).Cross(c.Sub(a)).TryNormalize()
	if err != nil {
		return Vec3{}, false
	}
	return n, true
}
