package systems

import (
	"math/rand"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	cfg "github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

type fataler interface {
	Helper()
	Fatalf(format string, args ...any)
}

// newTestECS builds a world around the given definitions. A nil targeter
// uses the world's own entities.
func newTestECS(t fataler, definitions string, targeter components.Targeter) *ecs.ECS {
	t.Helper()
	cat, err := catalog.Load([]byte(definitions))
	if err != nil {
		t.Fatalf("catalog.Load: %v", err)
	}
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, cfg.Collision.SpaceWidth, cfg.Collision.SpaceHeight, cfg.Collision.CellWidth, cfg.Collision.CellHeight)
	if targeter == nil {
		targeter = NewWorldTargeter(e)
	}
	factory.CreateShotWorld(e, cat, rand.New(rand.NewSource(1)), targeter)
	return e
}

func vec(x, y float64) math.Vec2 {
	return math.Vec2{X: x, Y: y}
}

func firstSubShot(e *ecs.ECS, group *donburi.Entry) *donburi.Entry {
	return e.World.Entry(components.ShotGroup.Get(group).SubShots[0])
}

func countSubShots(e *ecs.ECS) int {
	n := 0
	components.SubShot.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}

func countGroups(e *ecs.ECS) int {
	n := 0
	components.ShotGroup.Each(e.World, func(*donburi.Entry) { n++ })
	return n
}
