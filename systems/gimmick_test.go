package systems

import (
	gomath "math"
	"testing"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	cfg "github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/shared/gamemath"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
)

const gimmickDefinitions = `
[Shot]
id = 1
[SubShot]
velocity = 2, 0
gimmick = pingpong
radius = 1

[Shot]
id = 2
[SubShot]
velocity = 3, 0
gimmick = veer
radius = 1

[Shot]
id = 3
[SubShot]
velocity = 2, 0
gimmick = spin
radius = 1

[Shot]
id = 4
[SubShot]
velocity = 1, 0
gimmick = speedramp
radius = 1

[Shot]
id = 5
[SubShot]
gimmick = selfdestruct
radius = 1

[Shot]
id = 6
[SubShot]
velocity = -4, 1
gimmick = edgebounce
radius = 1

[Shot]
id = 7
[SubShot]
gimmick = veer
radius = 1
`

func TestGimmickStateAllocatedOnceFreedOnce(t *testing.T) {
	for _, typeID := range []int{1, 2, 5} {
		e := newTestECS(t, gimmickDefinitions, nil)
		group := factory.CreateShot(e, typeID, cfg.EnemyShotList, vec(300, 200))
		shot := firstSubShot(e, group)

		stats := factory.Stats(e)
		if stats.GimmickStatesAlloc != 0 {
			t.Fatalf("shot %d: state allocated before the first run", typeID)
		}
		RunGimmick(e, shot)
		RunGimmick(e, shot)
		if stats.GimmickStatesAlloc != 1 {
			t.Fatalf("shot %d: allocations = %d, want 1", typeID, stats.GimmickStatesAlloc)
		}

		factory.DestroySubShot(e, shot)
		if stats.GimmickStatesFreed != 1 {
			t.Fatalf("shot %d: frees = %d, want 1", typeID, stats.GimmickStatesFreed)
		}
	}
}

func TestStatelessGimmicksNeverAllocate(t *testing.T) {
	for _, typeID := range []int{3, 4, 6} {
		e := newTestECS(t, gimmickDefinitions, nil)
		group := factory.CreateShot(e, typeID, cfg.EnemyShotList, vec(300, 200))
		shot := firstSubShot(e, group)
		for i := 0; i < 10; i++ {
			RunGimmick(e, shot)
		}
		factory.DestroySubShot(e, shot)
		if s := factory.Stats(e); s.GimmickStatesAlloc != 0 || s.GimmickStatesFreed != 0 {
			t.Fatalf("shot %d: stats = %+v, want no gimmick state", typeID, *s)
		}
	}
}

func TestSelfDestruct(t *testing.T) {
	e := newTestECS(t, gimmickDefinitions, nil)
	group := factory.CreateShot(e, 5, cfg.EnemyShotList, vec(300, 200))
	shotID, groupID := firstSubShot(e, group).Entity(), group.Entity()

	for i := 0; i < cfg.Gimmick.SelfDestructTicks-1; i++ {
		UpdateShots(e)
	}
	if !e.World.Valid(shotID) {
		t.Fatal("destroyed too early")
	}
	UpdateShots(e)
	if e.World.Valid(shotID) || e.World.Valid(groupID) {
		t.Fatal("sub-shot and group should be gone after the self-destruct duration")
	}
	if s := factory.Stats(e); s.GimmickStatesFreed != 1 {
		t.Fatalf("frees = %d, want 1", s.GimmickStatesFreed)
	}
}

func TestSpinRotatesVelocity(t *testing.T) {
	e := newTestECS(t, gimmickDefinitions, nil)
	group := factory.CreateShot(e, 3, cfg.EnemyShotList, vec(300, 200))
	shot := firstSubShot(e, group)

	const ticks = 10
	for i := 0; i < ticks; i++ {
		RunGimmick(e, shot)
	}
	v := components.Physics.Get(shot).Velocity
	want := gamemath.Rotate(vec(2, 0), ticks*cfg.Gimmick.SpinStep)
	if gamemath.Distance(v, want) > 1e-9 {
		t.Fatalf("velocity = %+v, want %+v", v, want)
	}
	if angle := components.Animation.Get(shot).Angle; gomath.Abs(angle-ticks*cfg.Gimmick.SpinStep) > 1e-9 {
		t.Errorf("facing = %v, want %v", angle, ticks*cfg.Gimmick.SpinStep)
	}
}

func TestSpeedRampCapped(t *testing.T) {
	e := newTestECS(t, gimmickDefinitions, nil)
	group := factory.CreateShot(e, 4, cfg.EnemyShotList, vec(300, 200))
	shot := firstSubShot(e, group)

	RunGimmick(e, shot)
	if got := gamemath.Length(components.Physics.Get(shot).Velocity); gomath.Abs(got-cfg.Gimmick.RampFactor) > 1e-9 {
		t.Fatalf("speed after one tick = %v, want %v", got, cfg.Gimmick.RampFactor)
	}
	for i := 0; i < 500; i++ {
		RunGimmick(e, shot)
	}
	physics := components.Physics.Get(shot)
	if got := gamemath.Length(physics.Velocity); gomath.Abs(got-cfg.Gimmick.RampMaxSpeed) > 1e-9 {
		t.Fatalf("speed = %v, want cap %v", got, cfg.Gimmick.RampMaxSpeed)
	}
	if physics.MaxSpeed < cfg.Gimmick.RampMaxSpeed {
		t.Errorf("max speed %v would clamp the ramp", physics.MaxSpeed)
	}
}

func TestEdgeBounce(t *testing.T) {
	e := newTestECS(t, gimmickDefinitions, nil)
	group := factory.CreateShot(e, 6, cfg.EnemyShotList, vec(cfg.Field.MinX+2, 200))
	shot := firstSubShot(e, group)

	RunGimmick(e, shot)
	if v := components.Physics.Get(shot).Velocity; v.X != -4 {
		t.Fatalf("bounced inside the field: %+v", v)
	}

	UpdatePhysics(e)
	RunGimmick(e, shot)
	if v := components.Physics.Get(shot).Velocity; v.X != 4 || v.Y != 1 {
		t.Fatalf("velocity = %+v, want (4,1) after crossing the left edge", v)
	}
}

func TestVeerBurstTurnsOnceAround(t *testing.T) {
	chance := cfg.Gimmick.VeerChance
	cfg.Gimmick.VeerChance = 1
	defer func() { cfg.Gimmick.VeerChance = chance }()

	e := newTestECS(t, gimmickDefinitions, nil)
	group := factory.CreateShot(e, 2, cfg.EnemyShotList, vec(300, 200))
	shot := firstSubShot(e, group)
	base := components.Physics.Get(shot).Velocity

	RunGimmick(e, shot)
	state := components.Gimmick.Get(shot).Veer
	if state == nil || !state.Bursting {
		t.Fatal("burst should start with a trigger chance of 1")
	}

	half := int(cfg.Gimmick.VeerDuration) / 2
	for i := 1; i < half; i++ {
		RunGimmick(e, shot)
	}
	v := components.Physics.Get(shot).Velocity
	if gomath.Abs(gamemath.Length(v)-gamemath.Length(base)) > 1e-6 {
		t.Fatalf("burst changed speed: %v", gamemath.Length(v))
	}
	if v.X > 0 {
		t.Fatalf("velocity %+v should point backwards half way through the turn", v)
	}

	for i := half; i < int(cfg.Gimmick.VeerDuration); i++ {
		RunGimmick(e, shot)
	}
	if state.Bursting {
		t.Fatal("burst should be over after the veer duration")
	}
	if got := components.Physics.Get(shot).Velocity; gamemath.Distance(got, base) > 1e-9 {
		t.Fatalf("velocity after the burst = %+v, want %+v", got, base)
	}
}

func TestVeerIdleWithoutVelocity(t *testing.T) {
	chance := cfg.Gimmick.VeerChance
	cfg.Gimmick.VeerChance = 1
	defer func() { cfg.Gimmick.VeerChance = chance }()

	e := newTestECS(t, gimmickDefinitions, nil)
	group := factory.CreateShot(e, 7, cfg.EnemyShotList, vec(300, 200))
	shot := firstSubShot(e, group)

	for i := 0; i < 5; i++ {
		RunGimmick(e, shot)
	}
	if components.Gimmick.Get(shot).Veer.Bursting {
		t.Fatal("a resting sub-shot must never veer")
	}
}

func TestPingPongAlternatesTargets(t *testing.T) {
	e := newTestECS(t, gimmickDefinitions, nil)
	cx, cy := cfg.Field.Center()
	group := factory.CreateShot(e, 1, cfg.EnemyShotList, vec(cx, cy))
	shot := firstSubShot(e, group)

	RunGimmick(e, shot)
	state := components.Gimmick.Get(shot).PingPong
	first := state.Target
	onBorder := first.X == cfg.Field.MinX || first.X == cfg.Field.MaxX ||
		first.Y == cfg.Field.MinY || first.Y == cfg.Field.MaxY
	if !onBorder {
		t.Fatalf("first target %+v is not on the field border", first)
	}

	// Park the shot on its target: the next run flips toward the center.
	components.Physics.Get(shot).Position = first
	RunGimmick(e, shot)
	if !state.TowardsCenter || state.Target != vec(cx, cy) {
		t.Fatalf("state = %+v, want heading to the center", *state)
	}
	if got := gamemath.Length(components.Physics.Get(shot).Velocity); gomath.Abs(got-2) > 1e-9 {
		t.Fatalf("speed = %v, want constant 2", got)
	}
}
