package components

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// GimmickData carries the gimmick kind of a sub-shot and its private state.
// At most one state pointer is set, and only after the first invocation.
type GimmickData struct {
	Kind         catalog.GimmickKind
	PingPong     *PingPongState
	Veer         *VeerState
	SelfDestruct *SelfDestructState
}

// HasState reports whether private state has been allocated.
func (g *GimmickData) HasState() bool {
	return g.PingPong != nil || g.Veer != nil || g.SelfDestruct != nil
}

type PingPongState struct {
	TowardsCenter bool
	Target        math.Vec2
}

type VeerState struct {
	Bursting bool
	Base     math.Vec2 // velocity at burst start
	Ramp     *gween.Tween
}

type SelfDestructState struct {
	Ticks int
}

var Gimmick = donburi.NewComponentType[GimmickData]()
