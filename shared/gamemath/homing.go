package gamemath

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// CalculateHomingVelocity re-aims velocity at target while keeping its
// magnitude. ok is false when the direction to the target is degenerate, and
// the caller should keep the old velocity for this tick.
func CalculateHomingVelocity(pos, target, velocity dmath.Vec2, eps float64) (dmath.Vec2, bool) {
	dir, ok := Normalize(Sub(target, pos), eps)
	if !ok {
		return velocity, false
	}
	return Scale(dir, Length(velocity)), true
}

// Nearest returns the index of the point in candidates closest to pos and its
// distance. The index is -1 when candidates is empty.
func Nearest(pos dmath.Vec2, candidates []dmath.Vec2) (int, float64) {
	best, bestDist := -1, 0.0
	for i, c := range candidates {
		d := Distance(pos, c)
		if best < 0 || d < bestDist {
			best, bestDist = i, d
		}
	}
	return best, bestDist
}
