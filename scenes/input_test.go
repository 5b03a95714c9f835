package scenes

import (
	"testing"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func TestGetAction(t *testing.T) {
	tests := []struct {
		name            string
		prev, curr      bool
		wantPressed     bool
		wantJustPress   bool
		wantJustRelease bool
	}{
		{"idle", false, false, false, false, false},
		{"pressed this frame", false, true, true, true, false},
		{"held", true, true, true, false, false},
		{"released", true, false, false, false, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := &InputData{}
			input.Previous[ActionPause] = tt.prev
			input.Current[ActionPause] = tt.curr

			got := GetAction(input, ActionPause)
			if got.Pressed != tt.wantPressed || got.JustPressed != tt.wantJustPress || got.JustReleased != tt.wantJustRelease {
				t.Errorf("GetAction() = %+v", got)
			}
		})
	}
}

func TestGetOrCreateInputIsSingleton(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	first := GetOrCreateInput(e)
	first.Current[ActionFire] = true

	if !GetOrCreateInput(e).Current[ActionFire] {
		t.Fatal("second lookup must return the same input state")
	}
	n := 0
	inputState.Each(e.World, func(*donburi.Entry) { n++ })
	if n != 1 {
		t.Fatalf("input entities = %d, want 1", n)
	}
}
