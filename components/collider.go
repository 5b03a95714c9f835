package components

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// HitFunc is called on both sides of a collision. It may remove self.
type HitFunc func(e *ecs.ECS, self, other *donburi.Entry)

// ColliderData binds an entity to a collision list. The resolv object is the
// broad phase box around Circle; Circle.Center is relative to the physics
// position.
type ColliderData struct {
	*resolv.Object
	List   config.CollisionListID
	Circle catalog.Circle
	OnHit  HitFunc
}

var Collider = donburi.NewComponentType[ColliderData]()
