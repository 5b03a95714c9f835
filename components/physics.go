package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

type PhysicsData struct {
	Position math.Vec2
	Velocity math.Vec2
	MaxSpeed float64 // 0 = unlimited
}

var Physics = donburi.NewComponentType[PhysicsData]()
