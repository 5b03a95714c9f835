package components

import "github.com/yohamta/donburi"

// AnimationData is the render-facing state of a sprite: which animation plays,
// its draw angle and colour multipliers.
type AnimationData struct {
	Idle    int
	Hit     int
	Current int
	Angle   float64 // radians
	R, G, B float32
}

var Animation = donburi.NewComponentType[AnimationData]()
