// Package simulation owns one shot world: the catalog, the donburi world with
// its groups, sub-shots and targets, and the ordered per-tick systems.
// Independent simulations share nothing but the read-only catalog.
package simulation

import (
	"math/rand"
	"time"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/events"
	"github.com/yohamta/donburi/features/math"
)

type options struct {
	seed     int64
	targeter components.Targeter
	space    [4]int
}

// Option configures a Simulation.
type Option func(*options)

// WithSeed fixes the random source so a run can be reproduced.
func WithSeed(seed int64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// WithTargeter replaces the world-backed target queries.
func WithTargeter(t components.Targeter) Option {
	return func(o *options) {
		o.targeter = t
	}
}

// WithSpace overrides the size and cell size of the collision space.
func WithSpace(width, height, cellWidth, cellHeight int) Option {
	return func(o *options) {
		o.space = [4]int{width, height, cellWidth, cellHeight}
	}
}

// Simulation is a frame-stepped shot system. It is not safe for concurrent
// use.
type Simulation struct {
	ecs     *ecs.ECS
	catalog *catalog.Catalog
}

// New creates a simulation around cat.
func New(cat *catalog.Catalog, opts ...Option) *Simulation {
	o := options{
		seed: time.Now().UnixNano(),
		space: [4]int{
			config.Collision.SpaceWidth,
			config.Collision.SpaceHeight,
			config.Collision.CellWidth,
			config.Collision.CellHeight,
		},
	}
	for _, opt := range opts {
		opt(&o)
	}

	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateSpace(e, o.space[0], o.space[1], o.space[2], o.space[3])

	targeter := o.targeter
	if targeter == nil {
		targeter = systems.NewWorldTargeter(e)
	}
	factory.CreateShotWorld(e, cat, rand.New(rand.NewSource(o.seed)), targeter)
	systems.GetOrCreatePause(e)

	e.AddSystem(systems.WithPauseCheck(systems.UpdateShots))
	e.AddSystem(systems.WithPauseCheck(systems.UpdatePhysics))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateCollisions))
	e.AddSystem(systems.WithPauseCheck(systems.UpdateTargets))

	return &Simulation{ecs: e, catalog: cat}
}

// SpawnShot fires shot type typeID from origin on list. It panics when the id
// is not in the catalog.
func (s *Simulation) SpawnShot(typeID int, list config.CollisionListID, origin math.Vec2) donburi.Entity {
	return factory.CreateShot(s.ecs, typeID, list, origin).Entity()
}

// RemoveEnemyShots destroys every shot on the enemy shot list at once.
func (s *Simulation) RemoveEnemyShots() {
	systems.RemoveEnemyShots(s.ecs)
}

// Tick advances the simulation by one frame and delivers the events it
// produced.
func (s *Simulation) Tick() {
	s.ecs.Update()
	events.ProcessAllEvents(s.ecs.World)
}

// SetPaused sets the global pause flag. A paused tick still delivers events.
func (s *Simulation) SetPaused(paused bool) {
	systems.SetPaused(s.ecs, paused)
}

// Paused reports the global pause flag.
func (s *Simulation) Paused() bool {
	return systems.GetOrCreatePause(s.ecs).IsPaused
}

// Stats returns a copy of the allocation counters.
func (s *Simulation) Stats() components.ShotStatsData {
	return *factory.Stats(s.ecs)
}

// ECS exposes the underlying world for callers that run their own systems.
func (s *Simulation) ECS() *ecs.ECS {
	return s.ecs
}

// Catalog returns the shot catalog.
func (s *Simulation) Catalog() *catalog.Catalog {
	return s.catalog
}

// SpawnPlayer adds the player target.
func (s *Simulation) SpawnPlayer(pos math.Vec2, radius float64, health int) donburi.Entity {
	return factory.CreatePlayer(s.ecs, pos, radius, health).Entity()
}

// SpawnEnemy adds an enemy target.
func (s *Simulation) SpawnEnemy(pos math.Vec2, radius float64, health int) donburi.Entity {
	return factory.CreateEnemy(s.ecs, pos, radius, health).Entity()
}

// SpawnBoss adds the boss target.
func (s *Simulation) SpawnBoss(pos math.Vec2, radius float64, health int) donburi.Entity {
	return factory.CreateBoss(s.ecs, pos, radius, health).Entity()
}

// MoveTarget sets the position of a target entity.
func (s *Simulation) MoveTarget(target donburi.Entity, pos math.Vec2) {
	if !s.ecs.World.Valid(target) {
		return
	}
	entry := s.ecs.World.Entry(target)
	components.Physics.Get(entry).Position = pos
	factory.SyncCollider(components.Collider.Get(entry), pos)
}

// OnShotHit subscribes fn to hit events. Events are delivered at the end of
// Tick.
func (s *Simulation) OnShotHit(fn func(components.ShotHitEvent)) {
	components.ShotHit.Subscribe(s.ecs.World, func(_ donburi.World, ev components.ShotHitEvent) {
		fn(ev)
	})
}

// OnSubShotDestroyed subscribes fn to destruction events.
func (s *Simulation) OnSubShotDestroyed(fn func(components.SubShotDestroyedEvent)) {
	components.SubShotDestroyed.Subscribe(s.ecs.World, func(_ donburi.World, ev components.SubShotDestroyedEvent) {
		fn(ev)
	})
}

// SubShots returns the live sub-shots of a group in spawn order. It is empty
// once the group is gone.
func (s *Simulation) SubShots(group donburi.Entity) []donburi.Entity {
	if !s.ecs.World.Valid(group) {
		return nil
	}
	return append([]donburi.Entity(nil), components.ShotGroup.Get(s.ecs.World.Entry(group)).SubShots...)
}

// GroupExists reports whether a shot group is still alive.
func (s *Simulation) GroupExists(group donburi.Entity) bool {
	return s.ecs.World.Valid(group)
}
