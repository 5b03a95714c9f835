package scenes

import (
	"fmt"
	"image/color"
	"math"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	cfg "github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const (
	hudBarWidth  = 130
	hudBarHeight = 13
	hudMargin    = 10
)

// DrawShots renders every sub-shot as its collider circle, tinted by its
// colour, with a tick showing the draw angle.
func DrawShots(ecs *ecs.ECS, screen *ebiten.Image) {
	tags.SubShot.Each(ecs.World, func(e *donburi.Entry) {
		anim := components.Animation.Get(e)
		collider := components.Collider.Get(e)
		center := factory.ColliderCenter(collider, components.Physics.Get(e).Position)

		clr := color.RGBA{
			R: uint8(255 * anim.R),
			G: uint8(255 * anim.G),
			B: uint8(255 * anim.B),
			A: 255,
		}
		x, y, r := float32(center.X), float32(center.Y), float32(collider.Circle.Radius)
		vector.DrawFilledCircle(screen, x, y, r, clr, false)

		s, c := math.Sincos(anim.Angle)
		vector.StrokeLine(screen, x, y, x+float32(c)*(r+3), y+float32(s)*(r+3), 1, cfg.White, false)
	})
}

// DrawTargets renders the player, enemies and the boss together with the
// player's health bar.
func DrawTargets(ecs *ecs.ECS, screen *ebiten.Image) {
	drawTargets(ecs, screen, tags.Enemy, cfg.Orange)
	drawTargets(ecs, screen, tags.Boss, cfg.Red)
	drawTargets(ecs, screen, tags.Player, cfg.LightBlue)

	playerEntry, ok := components.Player.First(ecs.World)
	if !ok {
		return
	}
	hp := components.Health.Get(playerEntry)

	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth), float32(hudBarHeight),
		cfg.DarkGray, false)

	ratio := float32(0)
	if hp.Max > 0 {
		ratio = float32(hp.Current) / float32(hp.Max)
	}
	vector.DrawFilledRect(screen,
		float32(hudMargin), float32(hudMargin),
		float32(hudBarWidth)*ratio, float32(hudBarHeight),
		cfg.Green, false)
}

func drawTargets(ecs *ecs.ECS, screen *ebiten.Image, tag *donburi.ComponentType[donburi.Tag], base color.RGBA) {
	tag.Each(ecs.World, func(e *donburi.Entry) {
		collider := components.Collider.Get(e)
		center := factory.ColliderCenter(collider, components.Physics.Get(e).Position)

		clr := base
		if flash := components.Flash.Get(e); flash.Duration > 0 {
			clr = cfg.White
		}
		vector.StrokeCircle(screen, float32(center.X), float32(center.Y), float32(collider.Circle.Radius), 2, clr, false)
	})
}

// DrawDebug prints the live counts of the shot world.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	stats := factory.Stats(ecs)
	msg := fmt.Sprintf("TPS: %0.1f\ngroups: %d\nsub-shots: %d\ngimmick states: %d",
		ebiten.ActualTPS(),
		stats.LiveGroups(),
		stats.LiveSubShots(),
		stats.GimmickStatesAlloc-stats.GimmickStatesFreed,
	)
	if systems.GetOrCreatePause(ecs).IsPaused {
		msg += "\nPAUSED"
	}
	ebitenutil.DebugPrintAt(screen, msg, hudMargin, hudMargin+hudBarHeight+4)
}
