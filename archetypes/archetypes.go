package archetypes

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	cfg "github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	ShotGroup = newArchetype(
		tags.ShotGroup,
		components.ShotGroup,
	)
	SubShot = newArchetype(
		tags.SubShot,
		components.SubShot,
		components.Physics,
		components.Collider,
		components.Animation,
		components.Gimmick,
	)
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Physics,
		components.Collider,
		components.Health,
		components.Flash,
	)
	Enemy = newArchetype(
		tags.Enemy,
		components.Enemy,
		components.Physics,
		components.Collider,
		components.Health,
		components.Flash,
	)
	Boss = newArchetype(
		tags.Boss,
		components.Boss,
		components.Physics,
		components.Collider,
		components.Health,
		components.Flash,
	)
	Item = newArchetype(
		tags.Item,
		components.Physics,
		components.Collider,
	)
	Space = newArchetype(
		components.Space,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
