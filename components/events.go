package components

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

// ShotHitEvent is published when a sub-shot collides with a target.
type ShotHitEvent struct {
	SubShot      donburi.Entity
	Target       donburi.Entity
	List         config.CollisionListID
	Position     math.Vec2
	Damage       float64
	HitAnimation int
}

// SubShotDestroyedEvent is published whenever a sub-shot is released, by
// sweep, hit or forced clear.
type SubShotDestroyedEvent struct {
	SubShot   donburi.Entity
	Group     donburi.Entity
	Position  math.Vec2
	GroupDone bool
}

var (
	ShotHit          = events.NewEventType[ShotHitEvent]()
	SubShotDestroyed = events.NewEventType[SubShotDestroyedEvent]()
)
