package factory

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/archetypes"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/script"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// CreateShot fires shot type typeID from origin on the given collision list.
// Every sub-shot template is spawned amount times, in declaration order.
// An unknown id panics.
func CreateShot(ecs *ecs.ECS, typeID int, list config.CollisionListID, origin math.Vec2) *donburi.Entry {
	shotType := Catalog(ecs).MustGet(typeID)

	group := archetypes.ShotGroup.Spawn(ecs)
	components.ShotGroup.SetValue(group, components.ShotGroupData{
		TypeID: typeID,
		List:   list,
		Origin: origin,
	})
	Stats(ecs).GroupsCreated++

	base := script.Builtins(Rand(ecs))
	for i, tpl := range shotType.SubShots {
		ref := catalog.TemplateRef{TypeID: typeID, Index: i}
		groupCtx := &SpawnContext{ecs: ecs, base: base, Group: group, Origin: origin}
		amount := int(tpl.Amount.NumberOr(groupCtx, 1))
		for index := 0; index < amount; index++ {
			CreateSubShot(ecs, group, tpl, ref, index, &origin)
		}
	}

	components.ShotGroup.Get(group).Origin = origin
	return group
}

// CreateSubShot spawns one sub-shot of group. origin is the group origin for
// this spawn call; a position field overwrites it for every later sub-shot.
func CreateSubShot(ecs *ecs.ECS, group *donburi.Entry, tpl *catalog.SubShotTemplate, ref catalog.TemplateRef, index int, origin *math.Vec2) *donburi.Entry {
	rng := Rand(ecs)
	ctx := &SpawnContext{
		ecs:    ecs,
		base:   script.Builtins(rng),
		Group:  group,
		Index:  index,
		Origin: *origin,
	}

	// The offset runs with a zero offset and is visible to every later field.
	ctx.Offset = tpl.Offset.VectorOr(ctx, math.Vec2{})

	if !tpl.Position.Empty() {
		*origin = tpl.Position.VectorOr(ctx, *origin)
		ctx.Origin = *origin
	}

	var velocity math.Vec2
	aim := 0.0
	if !tpl.Velocity.Empty() {
		velocity = tpl.Velocity.VectorOr(ctx, velocity)
		aim = gamemath.AngleFromDirection(velocity)
	}
	if !tpl.Angle.Empty() {
		aim = gamemath.DegToRad(tpl.Angle.NumberOr(ctx, 0))
		velocity = gamemath.DirectionFromAngle(aim)
		ctx.Offset = gamemath.Rotate(ctx.Offset, aim)
	}

	switch tpl.Homing {
	case catalog.HomingTargetRandom, catalog.HomingTargetRandomFinal:
		target := spawnTarget(ecs, tpl.Homing, rng)
		aim = gamemath.MirroredAimAngle(ctx.Position(), target)
		speed := gamemath.Length(velocity)
		if speed == 0 {
			speed = 1
		}
		velocity = gamemath.Scale(gamemath.DirectionFromAngle(aim), speed)
		ctx.Offset = gamemath.Rotate(ctx.Offset, aim)
	}

	if !tpl.Speed.Empty() {
		speed := tpl.Speed.NumberOr(ctx, 0)
		dir, ok := gamemath.Normalize(velocity, 0)
		if !ok {
			dir = gamemath.DirectionFromAngle(aim)
		}
		velocity = gamemath.Scale(dir, speed)
	}

	entry := archetypes.SubShot.Spawn(ecs)
	pos := ctx.Position()

	components.Physics.SetValue(entry, components.PhysicsData{
		Position: pos,
		Velocity: velocity,
		MaxSpeed: gamemath.Length(velocity),
	})

	g := components.ShotGroup.Get(group)
	RegisterCollider(ecs, entry, g.List, tpl.Collider, pos, onSubShotHit)

	rotation := aim
	if !tpl.Rotation.Empty() {
		rotation = gamemath.DegToRad(tpl.Rotation.NumberOr(ctx, 0))
	}

	r, gr, b := resolveColor(tpl.Color.StringOr(ctx, catalog.ColorWhite), rng)
	components.Animation.SetValue(entry, components.AnimationData{
		Idle:    tpl.IdleAnimation,
		Hit:     tpl.HitAnimation,
		Current: tpl.IdleAnimation,
		Angle:   rotation,
		R:       r,
		G:       gr,
		B:       b,
	})

	components.Gimmick.SetValue(entry, components.GimmickData{Kind: tpl.Gimmick})

	components.SubShot.SetValue(entry, components.SubShotData{
		Group:    group.Entity(),
		Template: ref,
		Index:    index,
		Homing:   tpl.Homing,
		Rotation: rotation,
		Aim:      aim,
		Active:   true,
		Health:   tpl.Health.NumberOr(ctx, 1),
	})

	g.SubShots = append(g.SubShots, entry.Entity())
	g.Live++
	Stats(ecs).SubShotsSpawned++

	return entry
}

// spawnTarget picks the one-time aim point of a target-random sub-shot. With
// nothing to aim at, a random point inside the simulation bounds is used.
func spawnTarget(ecs *ecs.ECS, mode catalog.HomingMode, rng *rand.Rand) math.Vec2 {
	targeter := Targeter(ecs)
	var (
		target math.Vec2
		ok     bool
	)
	if mode == catalog.HomingTargetRandomFinal {
		target, ok = targeter.Player()
	} else {
		target, ok = targeter.RandomEnemyOrBoss()
	}
	if ok {
		return target
	}
	return math.Vec2{
		X: config.Shot.BoundsMinX + rng.Float64()*(config.Shot.BoundsMaxX-config.Shot.BoundsMinX),
		Y: config.Shot.BoundsMinY + rng.Float64()*(config.Shot.BoundsMaxY-config.Shot.BoundsMinY),
	}
}

// resolveColor maps a colour selector to channel multipliers. Rainbow draws
// every channel from {0,1} and redraws when all three are 0.
func resolveColor(token string, rng *rand.Rand) (float32, float32, float32) {
	if token == catalog.ColorRainbow {
		for {
			r, g, b := float32(rng.Intn(2)), float32(rng.Intn(2)), float32(rng.Intn(2))
			if r != 0 || g != 0 || b != 0 {
				return r, g, b
			}
		}
	}
	r, g, b, ok := catalog.ColorRGB(token)
	if !ok {
		panic(fmt.Sprintf("factory: unrecognized shot color %q", token))
	}
	return r, g, b
}

func onSubShotHit(ecs *ecs.ECS, self, other *donburi.Entry) {
	if !self.Valid() {
		return
	}
	sub := components.SubShot.Get(self)
	components.ShotHit.Publish(ecs.World, components.ShotHitEvent{
		SubShot:      self.Entity(),
		Target:       other.Entity(),
		List:         components.Collider.Get(self).List,
		Position:     components.Physics.Get(self).Position,
		Damage:       sub.Health,
		HitAnimation: components.Animation.Get(self).Hit,
	})
	DestroySubShot(ecs, self)
}

// DestroySubShot releases the collider, gimmick state and entity of a
// sub-shot, unlinks it from its group and destroys the group once it has no
// live sub-shots left.
func DestroySubShot(ecs *ecs.ECS, entry *donburi.Entry) {
	if entry == nil || !entry.Valid() || !entry.HasComponent(components.SubShot) {
		handleMisuse("destroy of a released sub-shot")
		return
	}

	self := entry.Entity()
	groupID := components.SubShot.Get(entry).Group

	var g *components.ShotGroupData
	if ecs.World.Valid(groupID) {
		g = components.ShotGroup.Get(ecs.World.Entry(groupID))
	}
	releaseSubShot(ecs, entry, g == nil || g.Live <= 1)

	if g == nil {
		return
	}
	g.SubShots = removeEntity(g.SubShots, self)
	g.Live--
	if g.Live <= 0 {
		DestroyShotGroup(ecs, ecs.World.Entry(groupID))
	}
}

// DestroyShotGroup releases a group together with every sub-shot it still
// owns.
func DestroyShotGroup(ecs *ecs.ECS, group *donburi.Entry) {
	if group == nil || !group.Valid() || !group.HasComponent(components.ShotGroup) {
		handleMisuse("destroy of a released shot group")
		return
	}
	g := components.ShotGroup.Get(group)
	for _, id := range g.SubShots {
		if ecs.World.Valid(id) {
			releaseSubShot(ecs, ecs.World.Entry(id), true)
		}
	}
	g.SubShots = nil
	g.Live = 0

	ecs.World.Remove(group.Entity())
	Stats(ecs).GroupsDestroyed++
}

// releaseSubShot frees every handle of one sub-shot. The caller owns the
// group bookkeeping.
func releaseSubShot(ecs *ecs.ECS, entry *donburi.Entry, groupDone bool) {
	groupID := components.SubShot.Get(entry).Group
	pos := components.Physics.Get(entry).Position
	stats := Stats(ecs)

	UnregisterCollider(ecs, entry)

	gimmick := components.Gimmick.Get(entry)
	if gimmick.HasState() {
		gimmick.PingPong = nil
		gimmick.Veer = nil
		gimmick.SelfDestruct = nil
		stats.GimmickStatesFreed++
	}

	self := entry.Entity()
	ecs.World.Remove(self)
	stats.SubShotsDestroyed++

	components.SubShotDestroyed.Publish(ecs.World, components.SubShotDestroyedEvent{
		SubShot:   self,
		Group:     groupID,
		Position:  pos,
		GroupDone: groupDone,
	})
}

func removeEntity(list []donburi.Entity, e donburi.Entity) []donburi.Entity {
	for i, id := range list {
		if id == e {
			return append(list[:i], list[i+1:]...)
		}
	}
	return list
}

func handleMisuse(msg string) {
	if config.Debug.Assertions {
		panic("factory: " + msg)
	}
	log.Printf("Warning: %s", msg)
}
