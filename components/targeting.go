package components

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -destination=../systems/mocks/targeter_mock.go -package=mocks . Targeter

// Targeter answers the side-effect free target queries used by homing and
// target-random aiming. ok is false when no such target is alive.
type Targeter interface {
	NearestEnemy(pos math.Vec2) (math.Vec2, bool)
	Boss() (math.Vec2, bool)
	RandomEnemyOrBoss() (math.Vec2, bool)
	Player() (math.Vec2, bool)
}

type TargetingData struct {
	Targeter Targeter
}

var Targeting = donburi.NewComponentType[TargetingData]()
