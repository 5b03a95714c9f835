package factory

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/archetypes"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreatePlayer spawns the player on the player list.
func CreatePlayer(ecs *ecs.ECS, pos math.Vec2, radius float64, health int) *donburi.Entry {
	p := archetypes.Player.Spawn(ecs)
	components.Player.SetValue(p, components.PlayerData{Bombs: config.Target.PlayerBombs})
	initTarget(ecs, p, config.PlayerList, pos, radius, health)
	return p
}

// CreateEnemy spawns a regular enemy on the enemy list.
func CreateEnemy(ecs *ecs.ECS, pos math.Vec2, radius float64, health int) *donburi.Entry {
	e := archetypes.Enemy.Spawn(ecs)
	initTarget(ecs, e, config.EnemyList, pos, radius, health)
	return e
}

// CreateBoss spawns the boss on the enemy list.
func CreateBoss(ecs *ecs.ECS, pos math.Vec2, radius float64, health int) *donburi.Entry {
	b := archetypes.Boss.Spawn(ecs)
	initTarget(ecs, b, config.EnemyList, pos, radius, health)
	return b
}

// CreateItem spawns a pickup on list. Items have no hit response.
func CreateItem(ecs *ecs.ECS, list config.CollisionListID, pos math.Vec2, radius float64) *donburi.Entry {
	i := archetypes.Item.Spawn(ecs)
	components.Physics.SetValue(i, components.PhysicsData{Position: pos})
	RegisterCollider(ecs, i, list, catalog.Circle{Radius: radius}, pos, nil)
	return i
}

func initTarget(ecs *ecs.ECS, entry *donburi.Entry, list config.CollisionListID, pos math.Vec2, radius float64, health int) {
	components.Physics.SetValue(entry, components.PhysicsData{Position: pos})
	components.Health.SetValue(entry, components.HealthData{Current: health, Max: health})
	components.Flash.SetValue(entry, components.FlashData{R: 1, G: 1, B: 1})
	RegisterCollider(ecs, entry, list, catalog.Circle{Radius: radius}, pos, onTargetHit)
}

// onTargetHit applies the damage of a hitting sub-shot. Hits from anything
// else are left to the caller's own systems.
func onTargetHit(ecs *ecs.ECS, self, other *donburi.Entry) {
	if !self.Valid() || !other.Valid() || !other.HasComponent(components.SubShot) {
		return
	}
	if invulnFrames(self) > 0 {
		return
	}

	damage := int(components.SubShot.Get(other).Health)
	if damage < 1 {
		damage = 1
	}
	health := components.Health.Get(self)
	health.Current -= damage
	if health.Current < 0 {
		health.Current = 0
	}

	flash := components.Flash.Get(self)
	flash.Duration = config.Target.DamageFlashFrames
	flash.R, flash.G, flash.B = 3, 1, 1

	switch {
	case self.HasComponent(components.Player):
		components.Player.Get(self).InvulnFrames = config.Target.PlayerInvulnFrames
	case self.HasComponent(components.Enemy):
		components.Enemy.Get(self).InvulnFrames = config.Target.EnemyInvulnFrames
	case self.HasComponent(components.Boss):
		components.Boss.Get(self).InvulnFrames = config.Target.EnemyInvulnFrames
	}
}

func invulnFrames(entry *donburi.Entry) int {
	switch {
	case entry.HasComponent(components.Player):
		return components.Player.Get(entry).InvulnFrames
	case entry.HasComponent(components.Enemy):
		return components.Enemy.Get(entry).InvulnFrames
	case entry.HasComponent(components.Boss):
		return components.Boss.Get(entry).InvulnFrames
	}
	return 0
}
