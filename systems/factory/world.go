package factory

import (
	"math/rand"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	"github.com/yohamta/donburi/ecs"
)

// CreateShotWorld creates the singletons the shot systems read: catalog,
// random source, targeter and statistics.
func CreateShotWorld(ecs *ecs.ECS, cat *catalog.Catalog, rng *rand.Rand, targeter components.Targeter) {
	w := ecs.World
	components.ShotCatalog.SetValue(w.Entry(w.Create(components.ShotCatalog)), components.ShotCatalogData{Catalog: cat})
	components.Random.SetValue(w.Entry(w.Create(components.Random)), components.RandomData{Rand: rng})
	components.Targeting.SetValue(w.Entry(w.Create(components.Targeting)), components.TargetingData{Targeter: targeter})
	w.Entry(w.Create(components.ShotStats))
}

// Catalog returns the shot catalog of the world.
func Catalog(ecs *ecs.ECS) *catalog.Catalog {
	return components.ShotCatalog.Get(components.ShotCatalog.MustFirst(ecs.World)).Catalog
}

// Rand returns the random source of the world.
func Rand(ecs *ecs.ECS) *rand.Rand {
	return components.Random.Get(components.Random.MustFirst(ecs.World)).Rand
}

// Targeter returns the target query collaborator of the world.
func Targeter(ecs *ecs.ECS) components.Targeter {
	return components.Targeting.Get(components.Targeting.MustFirst(ecs.World)).Targeter
}

// Stats returns the allocation counters of the world.
func Stats(ecs *ecs.ECS) *components.ShotStatsData {
	return components.ShotStats.Get(components.ShotStats.MustFirst(ecs.World))
}
