// Package vec provides float32 3-vector math for the simulation core.
package vec

import "math"

// V3 is a 3-component vector.
type V3 struct {
	X, Y, Z float32
}

// Add returns a + b.
func Add(a, b V3) V3 {
	return V3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

// Sub returns a - b.
func Sub(a, b V3) V3 {
	return V3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

// Scale returns v scaled by s.
func Scale(v V3, s float32) V3 {
	return V3{v.X * s, v.Y * s, v.Z * s}
}

// Neg returns -v.
func Neg(v V3) V3 {
	return V3{-v.X, -v.Y, -v.Z}
}

// Dot returns the dot product of a and b.
func Dot(a, b V3) float32 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z
}

// LengthSq returns the squared magnitude of v.
func LengthSq(v V3) float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

// Length returns the magnitude of v.
func Length(v V3) float32 {
	return float32(math.Sqrt(float64(LengthSq(v))))
}

// Normalize returns v scaled to unit length.
// The zero vector normalizes to the zero vector.
func Normalize(v V3) V3 {
	l := Length(v)
	if l == 0 {
		return V3{}
	}
	return V3{v.X / l, v.Y / l, v.Z / l}
}

// Reflect mirrors v about the plane with unit normal n.
func Reflect(v, n V3) V3 {
	d := 2 * Dot(v, n)
	return V3{v.X - d*n.X, v.Y - d*n.Y, v.Z - d*n.Z}
}

// IsZero reports whether all components of v are exactly zero.
func IsZero(v V3) bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}
