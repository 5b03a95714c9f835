package factory

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/archetypes"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.SetValue(space, components.SpaceData{
		Space: resolv.NewSpace(width, height, cellWidth, cellHeight),
	})
	return space
}

// Space returns the collision space of the world.
func Space(ecs *ecs.ECS) *resolv.Space {
	return components.Space.Get(components.Space.MustFirst(ecs.World)).Space
}
