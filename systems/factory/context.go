package factory

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/script"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// Names under which the shot accessors are visible to expressions.
const (
	VarCurrentSubShot     = "cursubshot"
	VarAngleTowardsPlayer = "angletowardsplayer"
)

// SpawnContext is the evaluation context of one spawnSubShot call. Offset is
// zero while the offset expression itself runs and holds the evaluated offset
// for every later field.
type SpawnContext struct {
	ecs    *ecs.ECS
	base   script.Env
	Group  *donburi.Entry
	Index  int
	Origin math.Vec2
	Offset math.Vec2
}

// Position is origin plus offset, the point the sub-shot spawns at.
func (c *SpawnContext) Position() math.Vec2 {
	return gamemath.Add(c.Origin, c.Offset)
}

// Env implements script.Context.
func (c *SpawnContext) Env() script.Env {
	return c.base.With(
		VarCurrentSubShot, CurrentSubShotIndex(c),
		VarAngleTowardsPlayer, script.Lazy(func() any { return AngleTowardsPlayer(c) }),
	)
}

// SubShotContext evaluates per-tick fields of a live sub-shot.
type SubShotContext struct {
	ecs   *ecs.ECS
	base  script.Env
	Entry *donburi.Entry
}

// NewSubShotContext returns the context of a live sub-shot. base is usually
// script.Builtins of the world's random source.
func NewSubShotContext(ecs *ecs.ECS, base script.Env, entry *donburi.Entry) *SubShotContext {
	return &SubShotContext{ecs: ecs, base: base, Entry: entry}
}

// Env implements script.Context.
func (c *SubShotContext) Env() script.Env {
	return c.base.With(
		VarCurrentSubShot, CurrentSubShotIndex(c),
		VarAngleTowardsPlayer, script.Lazy(func() any { return AngleTowardsPlayer(c) }),
	)
}

// CurrentSubShotIndex returns the spawn index of the sub-shot an expression
// is evaluated for, or 0 outside of a shot context.
func CurrentSubShotIndex(ctx script.Context) int {
	switch c := ctx.(type) {
	case *SpawnContext:
		return c.Index
	case *SubShotContext:
		return components.SubShot.Get(c.Entry).Index
	}
	return 0
}

// AngleTowardsPlayer returns the angle in degrees from the resolved position
// of the sub-shot toward the player. It is 0 when there is no player or no
// shot context.
func AngleTowardsPlayer(ctx script.Context) float64 {
	var (
		e   *ecs.ECS
		pos math.Vec2
	)
	switch c := ctx.(type) {
	case *SpawnContext:
		e, pos = c.ecs, c.Position()
	case *SubShotContext:
		e, pos = c.ecs, components.Physics.Get(c.Entry).Position
	default:
		return 0
	}
	player, ok := Targeter(e).Player()
	if !ok {
		return 0
	}
	return gamemath.RadToDeg(gamemath.AngleTowards(pos, player))
}
