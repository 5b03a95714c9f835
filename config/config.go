package config

import (
	"image/color"
	"math"
)

// ShotConfig contains the simulation rectangle and numeric guards used by the
// shot lifecycle and steering.
type ShotConfig struct {
	// Simulation bounds. A sub-shot whose position leaves this rectangle is
	// destroyed on the next sweep.
	BoundsMinX float64
	BoundsMaxX float64
	BoundsMinY float64
	BoundsMaxY float64

	// Direction vectors shorter than this are treated as degenerate and the
	// re-aim for that tick is skipped.
	DegenerateDirection float64

	// Enemy distance below which the enemy is considered "not found" and the
	// boss wins the nearest-target comparison.
	BossTieDistance float64
}

// FieldConfig describes the visible play field. Gimmicks steer relative to it.
type FieldConfig struct {
	MinX, MinY float64
	MaxX, MaxY float64
}

// Center returns the middle of the play field.
func (f FieldConfig) Center() (float64, float64) {
	return (f.MinX + f.MaxX) / 2, (f.MinY + f.MaxY) / 2
}

// GimmickConfig contains the tuning values of the built-in gimmicks.
type GimmickConfig struct {
	// Radial ping-pong
	PingPongThreshold float64 // distance at which the current target counts as reached

	// Randomized veer burst
	VeerChance   float64 // per-tick trigger probability while idle
	VeerDuration float32 // ticks for one full turn (1 second at 60 TPS)

	// Continuous spin
	SpinStep float64 // radians per tick

	// Speed ramp
	RampFactor   float64 // speed multiplier per tick, > 1
	RampMaxSpeed float64 // speed cap

	// Timed self-destruct
	SelfDestructTicks int
}

// CollisionConfig contains the resolv space layout and the list pairs that are
// checked against each other every tick.
type CollisionConfig struct {
	SpaceWidth  int
	SpaceHeight int
	CellWidth   int
	CellHeight  int

	// Pairs of collision lists whose members can hit each other
	Checks []CollisionCheck
}

// CollisionCheck is one list pair. Order is irrelevant.
type CollisionCheck struct {
	A, B CollisionListID
}

// TargetConfig contains the hit response of players, enemies and the boss.
type TargetConfig struct {
	DamageFlashFrames  int
	PlayerInvulnFrames int
	EnemyInvulnFrames  int
	PlayerBombs        int
}

// GameConfig holds the window, tick and wave configuration of the sandbox
// driver.
type GameConfig struct {
	Width  int
	Height int
	TPS    int

	PlayerShotID       int // shot type fired by the player
	PlayerFireInterval int // ticks between player shots while fire is held
	EnemyFireInterval  int // ticks between enemy volleys
	EnemiesPerWave     int
	EnemyHealth        int
	BossHealth         int
	PlayerHealth       int
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	// Assertions turns handle misuse (double destroy, destroyed handle use)
	// into a panic instead of a logged warning.
	Assertions bool
	// Definitions is the definition file the driver loads, relative to the
	// bundled assets or the -dir flag.
	Definitions string
}

// Global configuration instances
var Shot ShotConfig
var Field FieldConfig
var Gimmick GimmickConfig
var Collision CollisionConfig
var Target TargetConfig
var Game GameConfig
var Debug DebugConfig

func init() {
	Game = GameConfig{
		Width:  640,
		Height: 480,
		TPS:    60,

		PlayerShotID:       1,
		PlayerFireInterval: 6,
		EnemyFireInterval:  45,
		EnemiesPerWave:     3,
		EnemyHealth:        10,
		BossHealth:         200,
		PlayerHealth:       20,
	}

	Shot = ShotConfig{
		BoundsMinX:          -100,
		BoundsMaxX:          740,
		BoundsMinY:          -100,
		BoundsMaxY:          480,
		DegenerateDirection: 1e-6,
		BossTieDistance:     1e-6,
	}

	Field = FieldConfig{
		MinX: 20,
		MinY: 20,
		MaxX: 620,
		MaxY: 460,
	}

	Gimmick = GimmickConfig{
		PingPongThreshold: 8.0,
		VeerChance:        0.005,
		VeerDuration:      60, // 1 second at 60 TPS
		SpinStep:          math.Pi / 90,
		RampFactor:        1.03,
		RampMaxSpeed:      12.0,
		SelfDestructTicks: 180, // 3 seconds at 60 TPS
	}

	Collision = CollisionConfig{
		SpaceWidth:  int(Shot.BoundsMaxX - Shot.BoundsMinX),
		SpaceHeight: int(Shot.BoundsMaxY - Shot.BoundsMinY),
		CellWidth:   16,
		CellHeight:  16,
		Checks: []CollisionCheck{
			{A: PlayerList, B: EnemyShotList},
			{A: PlayerList, B: EnemyList},
			{A: PlayerItemList, B: ItemList},
			{A: EnemyList, B: PlayerShotList},
		},
	}

	Target = TargetConfig{
		DamageFlashFrames:  8,
		PlayerInvulnFrames: 90,
		EnemyInvulnFrames:  0,
		PlayerBombs:        3,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{
		Assertions:  true,
		Definitions: "shots/SHOTS.def",
	}
}

// Colours of the debug renderer.
var (
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Red       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green     = color.RGBA{R: 40, G: 220, B: 40, A: 255}
	DarkGray  = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Orange    = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	LightBlue = color.RGBA{R: 120, G: 180, B: 255, A: 255}
)
