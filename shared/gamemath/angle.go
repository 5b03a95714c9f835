package gamemath

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// DegToRad converts degrees to radians.
func DegToRad(d float64) float64 {
	return d * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(r float64) float64 {
	return r * 180 / math.Pi
}

// DirectionFromAngle returns the unit vector of angle a.
func DirectionFromAngle(a float64) dmath.Vec2 {
	s, c := math.Sincos(a)
	return dmath.Vec2{X: c, Y: s}
}

// AngleFromDirection returns the angle of v. The zero vector maps to 0.
func AngleFromDirection(v dmath.Vec2) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(v.Y, v.X)
}

// AngleTowards returns the angle of the ray from 'from' to 'to'.
func AngleTowards(from, to dmath.Vec2) float64 {
	return AngleFromDirection(Sub(to, from))
}

// legacyAngle is the angle convention of the mirrored aim: the x axis is
// flipped, so it has to be fed x-swapped points.
func legacyAngle(v dmath.Vec2) float64 {
	if v.X == 0 && v.Y == 0 {
		return 0
	}
	return math.Atan2(v.Y, -v.X)
}

// MirroredAimAngle computes the spawn-time aim used by target-random shots.
// The x coordinates of source and target are swapped before the legacy angle
// is taken; the resulting heading points from source to target.
func MirroredAimAngle(source, target dmath.Vec2) float64 {
	mirroredSource := dmath.Vec2{X: target.X, Y: source.Y}
	mirroredTarget := dmath.Vec2{X: source.X, Y: target.Y}
	return legacyAngle(Sub(mirroredTarget, mirroredSource))
}
