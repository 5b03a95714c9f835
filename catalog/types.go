// Package catalog holds the immutable shot definitions loaded at startup.
// It has no dependencies on donburi or resolv beyond the shared vector type.
package catalog

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/script"
	"github.com/yohamta/donburi/features/math"
)

// HomingMode selects how a sub-shot aims.
type HomingMode int

const (
	HomingNone HomingMode = iota
	HomingNearest
	HomingFinal
	HomingTargetRandom
	HomingTargetRandomFinal
)

var homingModeNames = map[string]HomingMode{
	"normal":            HomingNone,
	"none":              HomingNone,
	"homing":            HomingNearest,
	"homingfinal":       HomingFinal,
	"targetrandom":      HomingTargetRandom,
	"targetrandomfinal": HomingTargetRandomFinal,
}

func (m HomingMode) String() string {
	switch m {
	case HomingNone:
		return "normal"
	case HomingNearest:
		return "homing"
	case HomingFinal:
		return "homingfinal"
	case HomingTargetRandom:
		return "targetrandom"
	case HomingTargetRandomFinal:
		return "targetrandomfinal"
	}
	return "unknown"
}

// ParseHomingMode maps a definition token to its mode.
func ParseHomingMode(token string) (HomingMode, bool) {
	m, ok := homingModeNames[token]
	return m, ok
}

// GimmickKind is the closed set of per-tick behaviour overrides.
type GimmickKind int

const (
	GimmickNone GimmickKind = iota
	GimmickPingPong
	GimmickVeer
	GimmickSpin
	GimmickSpeedRamp
	GimmickSelfDestruct
	GimmickEdgeBounce
)

var gimmickNames = map[string]GimmickKind{
	"none":         GimmickNone,
	"pingpong":     GimmickPingPong,
	"veer":         GimmickVeer,
	"spin":         GimmickSpin,
	"speedramp":    GimmickSpeedRamp,
	"selfdestruct": GimmickSelfDestruct,
	"edgebounce":   GimmickEdgeBounce,
}

func (k GimmickKind) String() string {
	switch k {
	case GimmickPingPong:
		return "pingpong"
	case GimmickVeer:
		return "veer"
	case GimmickSpin:
		return "spin"
	case GimmickSpeedRamp:
		return "speedramp"
	case GimmickSelfDestruct:
		return "selfdestruct"
	case GimmickEdgeBounce:
		return "edgebounce"
	}
	return "none"
}

// ParseGimmick maps a gimmick name to its kind.
func ParseGimmick(name string) (GimmickKind, bool) {
	k, ok := gimmickNames[name]
	return k, ok
}

// Color names accepted by the colour selector.
const (
	ColorWhite   = "white"
	ColorRed     = "red"
	ColorGrey    = "grey"
	ColorYellow  = "yellow"
	ColorGreen   = "green"
	ColorRainbow = "rainbow"
)

// ColorRGB returns the channel multipliers of a fixed colour token. Rainbow
// has no fixed value and reports false, as does an unknown token.
func ColorRGB(token string) (r, g, b float32, ok bool) {
	switch token {
	case ColorWhite:
		return 1, 1, 1, true
	case ColorRed:
		return 1, 0, 0, true
	case ColorGrey:
		return 0.5, 0.5, 0.5, true
	case ColorYellow:
		return 1, 1, 0, true
	case ColorGreen:
		return 0, 1, 0, true
	}
	return 0, 0, 0, false
}

// IsColor reports whether token is a recognised colour selector.
func IsColor(token string) bool {
	if token == ColorRainbow {
		return true
	}
	_, _, _, ok := ColorRGB(token)
	return ok
}

// Circle is a collider shape relative to the sub-shot position.
type Circle struct {
	Center math.Vec2
	Radius float64
}

// SubShotTemplate is one projectile recipe of a shot type. Shared read-only by
// every sub-shot spawned from it.
type SubShotTemplate struct {
	Homing HomingMode

	Amount      *script.Expr // spawn count, default 1
	Offset      *script.Expr // default 0,0
	Position    *script.Expr // overrides the group origin when present
	Velocity    *script.Expr
	Angle       *script.Expr // degrees
	Speed       *script.Expr
	Rotation    *script.Expr // start rotation in degrees
	RotationAdd *script.Expr // degrees per tick
	Color       *script.Expr // default white
	Health      *script.Expr // default 1

	Gimmick GimmickKind

	Collider Circle

	IdleAnimation int
	HitAnimation  int
}

// ShotType is a catalog entry: every sub-shot template fired together.
type ShotType struct {
	ID       int
	SubShots []*SubShotTemplate
}

// TemplateRef addresses one template inside the catalog arena.
type TemplateRef struct {
	TypeID int
	Index  int
}
