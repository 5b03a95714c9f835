package systems

import (
	gomath "math"
	"math/rand"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	cfg "github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/shared/gamemath"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// RunGimmick runs the gimmick of a sub-shot for one tick. Private state is
// allocated on the first run and reused afterwards.
func RunGimmick(ecs *ecs.ECS, entry *donburi.Entry) {
	gimmick := components.Gimmick.Get(entry)

	switch gimmick.Kind {
	case catalog.GimmickPingPong:
		runPingPong(ecs, entry, gimmick)
	case catalog.GimmickVeer:
		runVeer(ecs, entry, gimmick)
	case catalog.GimmickSpin:
		runSpin(entry)
	case catalog.GimmickSpeedRamp:
		runSpeedRamp(entry)
	case catalog.GimmickSelfDestruct:
		runSelfDestruct(ecs, entry, gimmick)
	case catalog.GimmickEdgeBounce:
		runEdgeBounce(entry)
	}
}

func countGimmickAlloc(ecs *ecs.ECS) {
	factory.Stats(ecs).GimmickStatesAlloc++
}

// runPingPong steers between a random point on the play field border and the
// field center at constant speed.
func runPingPong(ecs *ecs.ECS, entry *donburi.Entry, gimmick *components.GimmickData) {
	physics := components.Physics.Get(entry)
	if gimmick.PingPong == nil {
		gimmick.PingPong = &components.PingPongState{
			Target: randomBorderPoint(factory.Rand(ecs)),
		}
		countGimmickAlloc(ecs)
	}
	state := gimmick.PingPong

	if gamemath.Distance(physics.Position, state.Target) < cfg.Gimmick.PingPongThreshold {
		state.TowardsCenter = !state.TowardsCenter
		if state.TowardsCenter {
			cx, cy := cfg.Field.Center()
			state.Target = math.Vec2{X: cx, Y: cy}
		} else {
			state.Target = randomBorderPoint(factory.Rand(ecs))
		}
	}

	homeTowards(entry, state.Target)
}

// randomBorderPoint returns a uniformly distributed point on the play field
// border.
func randomBorderPoint(rng *rand.Rand) math.Vec2 {
	f := cfg.Field
	w, h := f.MaxX-f.MinX, f.MaxY-f.MinY
	d := rng.Float64() * 2 * (w + h)
	switch {
	case d < w:
		return math.Vec2{X: f.MinX + d, Y: f.MinY}
	case d < w+h:
		return math.Vec2{X: f.MaxX, Y: f.MinY + d - w}
	case d < 2*w+h:
		return math.Vec2{X: f.MaxX - (d - w - h), Y: f.MaxY}
	default:
		return math.Vec2{X: f.MinX, Y: f.MaxY - (d - 2*w - h)}
	}
}

// runVeer occasionally turns the velocity through one full circle over the
// veer duration.
func runVeer(ecs *ecs.ECS, entry *donburi.Entry, gimmick *components.GimmickData) {
	physics := components.Physics.Get(entry)
	if gimmick.Veer == nil {
		gimmick.Veer = &components.VeerState{}
		countGimmickAlloc(ecs)
	}
	state := gimmick.Veer

	if !state.Bursting {
		if gamemath.Length(physics.Velocity) == 0 {
			return
		}
		if factory.Rand(ecs).Float64() >= cfg.Gimmick.VeerChance {
			return
		}
		state.Bursting = true
		state.Base = physics.Velocity
		state.Ramp = gween.New(0, 1, cfg.Gimmick.VeerDuration, ease.Linear)
	}

	progress, done := state.Ramp.Update(1)
	physics.Velocity = gamemath.Rotate(state.Base, 2*gomath.Pi*float64(progress))
	faceVelocity(entry)

	if done {
		physics.Velocity = state.Base
		state.Bursting = false
		state.Ramp = nil
	}
}

// runSpin turns the velocity by a fixed step every tick.
func runSpin(entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	physics.Velocity = gamemath.Rotate(physics.Velocity, cfg.Gimmick.SpinStep)
	faceVelocity(entry)
}

// runSpeedRamp accelerates the sub-shot up to the ramp cap.
func runSpeedRamp(entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	speed := gamemath.Length(physics.Velocity) * cfg.Gimmick.RampFactor
	if speed > cfg.Gimmick.RampMaxSpeed {
		speed = cfg.Gimmick.RampMaxSpeed
	}
	physics.Velocity = gamemath.WithLength(physics.Velocity, speed)
	if physics.MaxSpeed < speed {
		physics.MaxSpeed = speed
	}
}

// runSelfDestruct deactivates the sub-shot a fixed number of ticks after its
// first run.
func runSelfDestruct(ecs *ecs.ECS, entry *donburi.Entry, gimmick *components.GimmickData) {
	if gimmick.SelfDestruct == nil {
		gimmick.SelfDestruct = &components.SelfDestructState{}
		countGimmickAlloc(ecs)
	}
	state := gimmick.SelfDestruct
	state.Ticks++
	if state.Ticks >= cfg.Gimmick.SelfDestructTicks {
		components.SubShot.Get(entry).Active = false
	}
}

// runEdgeBounce pushes the sub-shot back inward once it crosses the left or
// right play field edge.
func runEdgeBounce(entry *donburi.Entry) {
	physics := components.Physics.Get(entry)
	switch {
	case physics.Position.X < cfg.Field.MinX && physics.Velocity.X < 0:
		physics.Velocity.X = -physics.Velocity.X
	case physics.Position.X > cfg.Field.MaxX && physics.Velocity.X > 0:
		physics.Velocity.X = -physics.Velocity.X
	default:
		return
	}
	faceVelocity(entry)
}
