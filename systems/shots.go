package systems

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	cfg "github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/script"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/shared/gamemath"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// UpdateShots advances every shot group by one tick. Each live sub-shot is
// steered and runs its gimmick, then is destroyed when it went inactive or
// left the simulation bounds. Empty groups are destroyed.
func UpdateShots(ecs *ecs.ECS) {
	var groups []donburi.Entity
	components.ShotGroup.Each(ecs.World, func(e *donburi.Entry) {
		groups = append(groups, e.Entity())
	})

	cat := factory.Catalog(ecs)
	base := script.Builtins(factory.Rand(ecs))
	for _, id := range groups {
		if ecs.World.Valid(id) {
			updateShotGroup(ecs, cat, base, ecs.World.Entry(id))
		}
	}
}

func updateShotGroup(ecs *ecs.ECS, cat *catalog.Catalog, base script.Env, group *donburi.Entry) {
	// Entries are cached per entity id and get reused once an id is freed,
	// so liveness is checked on the versioned ids.
	groupID := group.Entity()
	if !ecs.World.Valid(groupID) {
		return
	}

	// Snapshot: destruction unlinks entries from the group while we iterate.
	ids := append([]donburi.Entity(nil), components.ShotGroup.Get(group).SubShots...)
	for _, id := range ids {
		if !ecs.World.Valid(id) {
			continue
		}
		entry := ecs.World.Entry(id)
		ctx := factory.NewSubShotContext(ecs, base, entry)
		tpl := cat.Template(components.SubShot.Get(entry).Template)

		steerSubShot(ecs, tpl, ctx, entry)
		RunGimmick(ecs, entry)

		if !ecs.World.Valid(id) {
			continue
		}
		if shouldDestroySubShot(entry) {
			factory.DestroySubShot(ecs, entry)
		}
	}

	if !ecs.World.Valid(groupID) {
		return
	}
	group = ecs.World.Entry(groupID)
	if components.ShotGroup.Get(group).Live <= 0 {
		factory.DestroyShotGroup(ecs, group)
	}
}

// SteerSubShot applies the rotation, homing and final homing updates of one
// sub-shot without moving it.
func SteerSubShot(ecs *ecs.ECS, entry *donburi.Entry) {
	tpl := factory.Catalog(ecs).Template(components.SubShot.Get(entry).Template)
	ctx := factory.NewSubShotContext(ecs, script.Builtins(factory.Rand(ecs)), entry)
	steerSubShot(ecs, tpl, ctx, entry)
}

func steerSubShot(ecs *ecs.ECS, tpl *catalog.SubShotTemplate, ctx script.Context, entry *donburi.Entry) {
	UpdateRotation(tpl, ctx, entry)
	UpdateHoming(ecs, entry)
	UpdateFinalHoming(ecs, entry)
}

// UpdateRotation adds the per-tick rotation delta and applies it as the draw
// angle.
func UpdateRotation(tpl *catalog.SubShotTemplate, ctx script.Context, entry *donburi.Entry) {
	sub := components.SubShot.Get(entry)
	sub.Rotation += gamemath.DegToRad(tpl.RotationAdd.NumberOr(ctx, 0))
	components.Animation.Get(entry).Angle = sub.Rotation
}

// UpdateHoming re-aims a homing sub-shot at the nearest enemy or the boss.
func UpdateHoming(ecs *ecs.ECS, entry *donburi.Entry) {
	if components.SubShot.Get(entry).Homing != catalog.HomingNearest {
		return
	}
	physics := components.Physics.Get(entry)
	target, ok := nearestHostile(factory.Targeter(ecs), physics.Position)
	if !ok {
		return
	}
	homeTowards(entry, target)
}

// UpdateFinalHoming re-aims a final-homing sub-shot at the player.
func UpdateFinalHoming(ecs *ecs.ECS, entry *donburi.Entry) {
	if components.SubShot.Get(entry).Homing != catalog.HomingFinal {
		return
	}
	target, ok := factory.Targeter(ecs).Player()
	if !ok {
		return
	}
	homeTowards(entry, target)
}

func homeTowards(entry *donburi.Entry, target math.Vec2) {
	physics := components.Physics.Get(entry)
	velocity, ok := gamemath.CalculateHomingVelocity(physics.Position, target, physics.Velocity, cfg.Shot.DegenerateDirection)
	if !ok {
		return
	}
	physics.Velocity = velocity
	faceVelocity(entry)
}

// faceVelocity turns the draw angle to the heading. The rotation gained since
// spawn stays on top, so homing and rotationadd compose.
func faceVelocity(entry *donburi.Entry) {
	sub := components.SubShot.Get(entry)
	heading := gamemath.AngleFromDirection(components.Physics.Get(entry).Velocity)
	components.Animation.Get(entry).Angle = heading + sub.Rotation - sub.Aim
}

func shouldDestroySubShot(entry *donburi.Entry) bool {
	if !components.SubShot.Get(entry).Active {
		return true
	}
	return outOfBounds(components.Physics.Get(entry).Position)
}

func outOfBounds(p math.Vec2) bool {
	return p.X < cfg.Shot.BoundsMinX || p.X > cfg.Shot.BoundsMaxX ||
		p.Y < cfg.Shot.BoundsMinY || p.Y > cfg.Shot.BoundsMaxY
}

// RemoveEnemyShots destroys every sub-shot of every group on the enemy shot
// list. Groups collapse as their last sub-shot goes.
func RemoveEnemyShots(ecs *ecs.ECS) {
	var groups []donburi.Entity
	components.ShotGroup.Each(ecs.World, func(e *donburi.Entry) {
		if components.ShotGroup.Get(e).List == cfg.EnemyShotList {
			groups = append(groups, e.Entity())
		}
	})

	for _, id := range groups {
		if !ecs.World.Valid(id) {
			continue
		}
		group := ecs.World.Entry(id)
		g := components.ShotGroup.Get(group)
		if len(g.SubShots) == 0 {
			factory.DestroyShotGroup(ecs, group)
			continue
		}
		for _, id := range append([]donburi.Entity(nil), g.SubShots...) {
			if ecs.World.Valid(id) {
				factory.DestroySubShot(ecs, ecs.World.Entry(id))
			}
		}
	}
}
