// Package scenes holds the interactive driver of the shot simulation.
package scenes

import (
	"image/color"
	"log"
	"sync"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/catalog"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	cfg "github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/math"
)

// SandboxScene fires every enemy pattern of the catalog at a controllable
// player. Tab cycles the pattern, Z fires, X clears enemy shots.
type SandboxScene struct {
	catalog *catalog.Catalog
	seed    int64

	sim      *simulation.Simulation
	player   donburi.Entity
	patterns []int
	pattern  int
	ticks    int
	once     sync.Once
}

// NewSandboxScene creates the scene. The simulation is built on the first
// update.
func NewSandboxScene(cat *catalog.Catalog, seed int64) *SandboxScene {
	return &SandboxScene{catalog: cat, seed: seed}
}

func (s *SandboxScene) Update() {
	s.once.Do(s.configure)

	e := s.sim.ECS()
	UpdateInput(e)
	input := GetOrCreateInput(e)

	if GetAction(input, ActionPause).JustPressed {
		s.sim.SetPaused(!s.sim.Paused())
	}
	if !s.sim.Paused() {
		s.updatePlayer(input)
		s.updateEnemies()
	}

	s.sim.Tick()
	s.ticks++
}

func (s *SandboxScene) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	if s.sim == nil {
		return
	}
	s.sim.ECS().Draw(screen)
}

func (s *SandboxScene) configure() {
	s.sim = simulation.New(s.catalog, simulation.WithSeed(s.seed))

	e := s.sim.ECS()
	e.AddRenderer(cfg.Default, DrawTargets)
	e.AddRenderer(cfg.Default, DrawShots)
	e.AddRenderer(cfg.Default, DrawDebug)

	for _, id := range s.sim.Catalog().IDs() {
		if id != cfg.Game.PlayerShotID {
			s.patterns = append(s.patterns, id)
		}
	}
	if len(s.patterns) == 0 {
		log.Printf("Warning: no enemy patterns besides player shot %d", cfg.Game.PlayerShotID)
	}

	cx, _ := cfg.Field.Center()
	s.player = s.sim.SpawnPlayer(math.Vec2{X: cx, Y: cfg.Field.MaxY - 40}, 4, cfg.Game.PlayerHealth)

	s.sim.OnShotHit(func(ev components.ShotHitEvent) {
		if ev.Target == s.player {
			log.Printf("Player hit for %.0f by shot list %s", ev.Damage, ev.List)
		}
	})

	s.spawnWave()
}

func (s *SandboxScene) updatePlayer(input *InputData) {
	e := s.sim.ECS()
	if !e.World.Valid(s.player) {
		return
	}
	entry := e.World.Entry(s.player)
	pos := components.Physics.Get(entry).Position

	speed := Input.PlayerSpeed
	if GetAction(input, ActionMoveLeft).Pressed {
		pos.X -= speed
	}
	if GetAction(input, ActionMoveRight).Pressed {
		pos.X += speed
	}
	if GetAction(input, ActionMoveUp).Pressed {
		pos.Y -= speed
	}
	if GetAction(input, ActionMoveDown).Pressed {
		pos.Y += speed
	}
	pos.X = clamp(pos.X, cfg.Field.MinX, cfg.Field.MaxX)
	pos.Y = clamp(pos.Y, cfg.Field.MinY, cfg.Field.MaxY)
	s.sim.MoveTarget(s.player, pos)

	if GetAction(input, ActionFire).Pressed && s.ticks%cfg.Game.PlayerFireInterval == 0 {
		if _, ok := s.sim.Catalog().Get(cfg.Game.PlayerShotID); ok {
			s.sim.SpawnShot(cfg.Game.PlayerShotID, cfg.PlayerShotList, pos)
		}
	}

	if GetAction(input, ActionBomb).JustPressed {
		p := components.Player.Get(entry)
		if p.Bombs > 0 {
			p.Bombs--
			s.sim.RemoveEnemyShots()
		}
	}

	if GetAction(input, ActionNextPattern).JustPressed && len(s.patterns) > 0 {
		s.pattern = (s.pattern + 1) % len(s.patterns)
		log.Printf("Pattern %d (shot type %d)", s.pattern, s.patterns[s.pattern])
	}
}

// updateEnemies fires the current pattern from every enemy and the boss and
// starts a new wave once all of them are gone.
func (s *SandboxScene) updateEnemies() {
	e := s.sim.ECS()

	var shooters []math.Vec2
	components.Enemy.Each(e.World, func(entry *donburi.Entry) {
		shooters = append(shooters, components.Physics.Get(entry).Position)
	})
	components.Boss.Each(e.World, func(entry *donburi.Entry) {
		shooters = append(shooters, components.Physics.Get(entry).Position)
	})

	if len(shooters) == 0 {
		s.spawnWave()
		return
	}
	if len(s.patterns) == 0 || s.ticks%cfg.Game.EnemyFireInterval != 0 {
		return
	}
	for _, pos := range shooters {
		s.sim.SpawnShot(s.patterns[s.pattern], cfg.EnemyShotList, pos)
	}
}

func (s *SandboxScene) spawnWave() {
	n := cfg.Game.EnemiesPerWave
	width := cfg.Field.MaxX - cfg.Field.MinX
	for i := 0; i < n; i++ {
		x := cfg.Field.MinX + width*float64(i+1)/float64(n+1)
		s.sim.SpawnEnemy(math.Vec2{X: x, Y: cfg.Field.MinY + 60}, 10, cfg.Game.EnemyHealth)
	}
	cx, _ := cfg.Field.Center()
	s.sim.SpawnBoss(math.Vec2{X: cx, Y: cfg.Field.MinY + 30}, 20, cfg.Game.BossHealth)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
