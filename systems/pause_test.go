package systems

import (
	"testing"

	"github.com/yohamta/donburi/ecs"
)

func TestPausedSystemsSkip(t *testing.T) {
	e := newTestECS(t, collisionDefinitions, nil)
	calls := 0
	system := WithPauseCheck(func(*ecs.ECS) { calls++ })

	system(e)
	SetPaused(e, true)
	system(e)
	SetPaused(e, false)
	system(e)

	if calls != 2 {
		t.Fatalf("system ran %d times, want 2", calls)
	}
}
