package systems

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTargets counts down hit flash and invulnerability frames and removes
// enemies and the boss once their health is gone.
func UpdateTargets(ecs *ecs.ECS) {
	var toRemove []*donburi.Entry

	components.Flash.Each(ecs.World, func(e *donburi.Entry) {
		flash := components.Flash.Get(e)
		if flash.Duration > 0 {
			flash.Duration--
			if flash.Duration == 0 {
				flash.R, flash.G, flash.B = 1, 1, 1
			}
		}
	})

	components.Player.Each(ecs.World, func(e *donburi.Entry) {
		if p := components.Player.Get(e); p.InvulnFrames > 0 {
			p.InvulnFrames--
		}
	})

	components.Enemy.Each(ecs.World, func(e *donburi.Entry) {
		if en := components.Enemy.Get(e); en.InvulnFrames > 0 {
			en.InvulnFrames--
		}
		if components.Health.Get(e).Current <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	components.Boss.Each(ecs.World, func(e *donburi.Entry) {
		if b := components.Boss.Get(e); b.InvulnFrames > 0 {
			b.InvulnFrames--
		}
		if components.Health.Get(e).Current <= 0 {
			toRemove = append(toRemove, e)
		}
	})

	for _, e := range toRemove {
		factory.UnregisterCollider(ecs, e)
		ecs.World.Remove(e.Entity())
	}
}
