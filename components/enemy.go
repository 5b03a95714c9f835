package components

import "github.com/yohamta/donburi"

// EnemyData marks a hostile target that homing shots can chase.
type EnemyData struct {
	InvulnFrames int
}

// BossData marks the boss. Only one is expected at a time.
type BossData struct {
	InvulnFrames int
}

var (
	Enemy = donburi.NewComponentType[EnemyData]()
	Boss  = donburi.NewComponentType[BossData]()
)
