package systems

import (
	"testing"

	"github.com/CaptainDreamcast/EyeOfTheMedusa3/systems/factory"
)

func TestWorldTargeterEmpty(t *testing.T) {
	e := newTestECS(t, steeringDefinitions, nil)
	tg := NewWorldTargeter(e)

	if _, ok := tg.NearestEnemy(vec(0, 0)); ok {
		t.Error("no enemy expected")
	}
	if _, ok := tg.Boss(); ok {
		t.Error("no boss expected")
	}
	if _, ok := tg.RandomEnemyOrBoss(); ok {
		t.Error("nothing to pick from")
	}
	if _, ok := tg.Player(); ok {
		t.Error("no player expected")
	}
}

func TestRandomEnemyOrBossWeighting(t *testing.T) {
	e := newTestECS(t, steeringDefinitions, nil)
	tg := NewWorldTargeter(e)

	boss := vec(300, 50)
	factory.CreateBoss(e, boss, 10, 100)
	if got, ok := tg.RandomEnemyOrBoss(); !ok || got != boss {
		t.Fatalf("boss alone: got %+v, %v", got, ok)
	}

	for i := 0; i < 3; i++ {
		factory.CreateEnemy(e, vec(float64(50+100*i), 200), 4, 1)
	}
	const draws = 4000
	bossHits := 0
	for i := 0; i < draws; i++ {
		if got, _ := tg.RandomEnemyOrBoss(); got == boss {
			bossHits++
		}
	}
	// 1/(3+1) of the draws should go to the boss.
	if frac := float64(bossHits) / draws; frac < 0.2 || frac > 0.3 {
		t.Fatalf("boss picked %.3f of the time, want about 0.25", frac)
	}
}

func TestNearestHostileTieGoesToEnemy(t *testing.T) {
	e := newTestECS(t, steeringDefinitions, nil)
	factory.CreateEnemy(e, vec(10, 0), 4, 1)
	factory.CreateBoss(e, vec(-10, 0), 4, 1)

	got, ok := nearestHostile(NewWorldTargeter(e), vec(0, 0))
	if !ok || got != vec(10, 0) {
		t.Fatalf("got %+v, want the enemy on a tie", got)
	}
}

func TestNearestHostileEnemyOnTopFallsBackToBoss(t *testing.T) {
	e := newTestECS(t, steeringDefinitions, nil)
	factory.CreateEnemy(e, vec(0, 0), 4, 1)
	factory.CreateBoss(e, vec(50, 0), 4, 1)

	got, ok := nearestHostile(NewWorldTargeter(e), vec(0, 0))
	if !ok || got != vec(50, 0) {
		t.Fatalf("got %+v, want the boss", got)
	}
}
