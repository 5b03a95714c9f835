// Package gamemath holds the pure vector and angle helpers shared by the shot
// systems. Angles are radians, x points right and y points down.
package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Add returns a + b.
func Add(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func Sub(a, b dmath.Vec2) dmath.Vec2 {
	return dmath.Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns v * s.
func Scale(v dmath.Vec2, s float64) dmath.Vec2 {
	return dmath.Vec2{X: v.X * s, Y: v.Y * s}
}

// Length returns |v|.
func Length(v dmath.Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns |a - b|.
func Distance(a, b dmath.Vec2) float64 {
	return math.Hypot(a.X-b.X, a.Y-b.Y)
}

// Normalize returns v scaled to unit length. ok is false when |v| is at or
// below eps, in which case v is returned unchanged.
func Normalize(v dmath.Vec2, eps float64) (dmath.Vec2, bool) {
	l := Length(v)
	if l <= eps {
		return v, false
	}
	return dmath.Vec2{X: v.X / l, Y: v.Y / l}, true
}

// WithLength returns v rescaled to length l. A zero vector stays zero.
func WithLength(v dmath.Vec2, l float64) dmath.Vec2 {
	n, ok := Normalize(v, 0)
	if !ok {
		return dmath.Vec2{}
	}
	return Scale(n, l)
}

// ClampLength shortens v to max when it is longer. A non-positive max
// disables the clamp.
func ClampLength(v dmath.Vec2, max float64) dmath.Vec2 {
	if max <= 0 {
		return v
	}
	if l := Length(v); l > max {
		return Scale(v, max/l)
	}
	return v
}

// Rotate turns v by a radians.
func Rotate(v dmath.Vec2, a float64) dmath.Vec2 {
	s, c := math.Sincos(a)
	return dmath.Vec2{X: v.X*c - v.Y*s, Y: v.X*s + v.Y*c}
}
