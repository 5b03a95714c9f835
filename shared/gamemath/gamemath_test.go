package gamemath

import (
	"math"
	"testing"

	dmath "github.com/yohamta/donburi/features/math"
	"pgregory.net/rapid"
)

const tolerance = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < tolerance
}

func vec(x, y float64) dmath.Vec2 {
	return dmath.Vec2{X: x, Y: y}
}

func TestDirectionFromAngle(t *testing.T) {
	tests := []struct {
		deg  float64
		x, y float64
	}{
		{0, 1, 0},
		{90, 0, 1},
		{180, -1, 0},
		{-90, 0, -1},
	}
	for _, tt := range tests {
		d := DirectionFromAngle(DegToRad(tt.deg))
		if !near(d.X, tt.x) || !near(d.Y, tt.y) {
			t.Errorf("DirectionFromAngle(%v°) = %+v, want (%v,%v)", tt.deg, d, tt.x, tt.y)
		}
	}
}

func TestMirroredAimPointsAtTarget(t *testing.T) {
	tests := []struct {
		name           string
		source, target dmath.Vec2
	}{
		{"right", vec(0, 0), vec(10, 0)},
		{"left", vec(0, 0), vec(-10, 0)},
		{"down", vec(5, 5), vec(5, 50)},
		{"diagonal", vec(100, 100), vec(40, 20)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DirectionFromAngle(MirroredAimAngle(tt.source, tt.target))
			want, _ := Normalize(Sub(tt.target, tt.source), 0)
			if !near(got.X, want.X) || !near(got.Y, want.Y) {
				t.Errorf("aim = %+v, want %+v", got, want)
			}
		})
	}
}

func TestCalculateHomingVelocity(t *testing.T) {
	v, ok := CalculateHomingVelocity(vec(0, 0), vec(10, 0), vec(0, -5), 1e-6)
	if !ok || !near(v.X, 5) || !near(v.Y, 0) {
		t.Fatalf("got %+v, %v; want (5,0)", v, ok)
	}
	v, ok = CalculateHomingVelocity(vec(0, 0), vec(0, 10), v, 1e-6)
	if !ok || !near(v.X, 0) || !near(v.Y, 5) {
		t.Fatalf("got %+v, %v; want (0,5)", v, ok)
	}

	old := vec(3, 4)
	v, ok = CalculateHomingVelocity(vec(7, 7), vec(7, 7), old, 1e-6)
	if ok || v != old {
		t.Errorf("degenerate direction must keep velocity, got %+v, %v", v, ok)
	}
}

func TestHomingPreservesSpeed(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		coord := rapid.Float64Range(-1000, 1000)
		pos := vec(coord.Draw(t, "px"), coord.Draw(t, "py"))
		target := vec(coord.Draw(t, "tx"), coord.Draw(t, "ty"))
		vel := vec(coord.Draw(t, "vx"), coord.Draw(t, "vy"))

		got, ok := CalculateHomingVelocity(pos, target, vel, 1e-6)
		if !ok {
			return
		}
		if math.Abs(Length(got)-Length(vel)) > 1e-6*math.Max(1, Length(vel)) {
			t.Fatalf("speed changed: %v -> %v", Length(vel), Length(got))
		}
	})
}

func TestRotateKeepsLength(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		v := vec(rapid.Float64Range(-100, 100).Draw(t, "x"), rapid.Float64Range(-100, 100).Draw(t, "y"))
		a := rapid.Float64Range(-10, 10).Draw(t, "a")
		if math.Abs(Length(Rotate(v, a))-Length(v)) > 1e-9 {
			t.Fatalf("rotate changed length of %+v by %v", v, a)
		}
	})
}

func TestClampLength(t *testing.T) {
	if v := ClampLength(vec(6, 8), 5); !near(Length(v), 5) {
		t.Errorf("clamped length = %v, want 5", Length(v))
	}
	if v := ClampLength(vec(6, 8), 0); v != vec(6, 8) {
		t.Errorf("max 0 must disable clamping, got %+v", v)
	}
	if v := ClampLength(vec(1, 0), 5); v != vec(1, 0) {
		t.Errorf("short vector changed: %+v", v)
	}
}

func TestNearest(t *testing.T) {
	if i, _ := Nearest(vec(0, 0), nil); i != -1 {
		t.Errorf("empty candidates: got %d", i)
	}
	i, d := Nearest(vec(0, 0), []dmath.Vec2{vec(10, 0), vec(0, 3), vec(-5, 0)})
	if i != 1 || !near(d, 3) {
		t.Errorf("Nearest = %d, %v; want 1, 3", i, d)
	}
}
