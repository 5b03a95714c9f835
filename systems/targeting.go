package systems

import (
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/components"
	cfg "github.com/CaptainDreamcast/EyeOfTheMedusa3/config"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/shared/gamemath"
	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/math"
)

// WorldTargeter answers target queries from the player, enemy and boss
// entities of a world. Targets with no health left are ignored.
type WorldTargeter struct {
	ecs *ecs.ECS
}

var _ components.Targeter = (*WorldTargeter)(nil)

func NewWorldTargeter(ecs *ecs.ECS) *WorldTargeter {
	return &WorldTargeter{ecs: ecs}
}

func (t *WorldTargeter) enemyPositions() []math.Vec2 {
	var out []math.Vec2
	components.Enemy.Each(t.ecs.World, func(e *donburi.Entry) {
		if alive(e) {
			out = append(out, components.Physics.Get(e).Position)
		}
	})
	return out
}

// NearestEnemy returns the live enemy closest to pos.
func (t *WorldTargeter) NearestEnemy(pos math.Vec2) (math.Vec2, bool) {
	enemies := t.enemyPositions()
	i, _ := gamemath.Nearest(pos, enemies)
	if i < 0 {
		return math.Vec2{}, false
	}
	return enemies[i], true
}

// Boss returns the boss position while it is alive.
func (t *WorldTargeter) Boss() (math.Vec2, bool) {
	var (
		pos   math.Vec2
		found bool
	)
	components.Boss.Each(t.ecs.World, func(e *donburi.Entry) {
		if !found && alive(e) {
			pos, found = components.Physics.Get(e).Position, true
		}
	})
	return pos, found
}

// RandomEnemyOrBoss picks a random live enemy. With the boss alive it wins
// with probability 1/(enemies+1).
func (t *WorldTargeter) RandomEnemyOrBoss() (math.Vec2, bool) {
	rng := factory.Rand(t.ecs)
	enemies := t.enemyPositions()
	boss, bossAlive := t.Boss()

	if len(enemies) == 0 {
		return boss, bossAlive
	}
	enemy := enemies[rng.Intn(len(enemies))]
	if !bossAlive {
		return enemy, true
	}
	if rng.Float64() <= 1.0/float64(len(enemies)+1) {
		return boss, true
	}
	return enemy, true
}

// Player returns the player position.
func (t *WorldTargeter) Player() (math.Vec2, bool) {
	e, ok := components.Player.First(t.ecs.World)
	if !ok {
		return math.Vec2{}, false
	}
	return components.Physics.Get(e).Position, true
}

func alive(e *donburi.Entry) bool {
	return !e.HasComponent(components.Health) || components.Health.Get(e).Current > 0
}

// nearestHostile returns the homing target of pos: the nearest enemy, or the
// boss when it is closer or no enemy was found.
func nearestHostile(t components.Targeter, pos math.Vec2) (math.Vec2, bool) {
	enemy, enemyFound := t.NearestEnemy(pos)
	boss, bossAlive := t.Boss()
	if !bossAlive {
		return enemy, enemyFound
	}
	enemyDist := gamemath.Distance(pos, enemy)
	if !enemyFound || enemyDist < cfg.Shot.BossTieDistance || gamemath.Distance(pos, boss) < enemyDist {
		return boss, true
	}
	return enemy, true
}
