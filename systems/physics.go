package systems

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/shared/gamemath"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePhysics integrates velocity into position and moves colliders along.
func UpdatePhysics(ecs *ecs.ECS) {
	components.Physics.Each(ecs.World, func(e *donburi.Entry) {
		physics := components.Physics.Get(e)

		physics.Velocity = gamemath.ClampLength(physics.Velocity, physics.MaxSpeed)
		physics.Position = gamemath.Add(physics.Position, physics.Velocity)

		if e.HasComponent(components.Collider) {
			factory.SyncCollider(components.Collider.Get(e), physics.Position)
		}
	})
}
