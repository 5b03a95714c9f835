package scenes

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// ActionID represents a logical sandbox action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionMoveUp
	ActionMoveDown
	ActionFire
	ActionBomb
	ActionPause
	ActionNextPattern
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key or button binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Deadzone for analog stick input (0.0 to 1.0)
	AnalogDeadzone float64
	// Player movement per tick while a direction is held
	PlayerSpeed float64
}

// Input is the global input configuration
var Input = InputConfig{
	AnalogDeadzone: 0.25,
	PlayerSpeed:    3,
	Bindings: map[ActionID]InputBinding{
		ActionMoveLeft: {
			Keys:                   []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftLeft},
		},
		ActionMoveRight: {
			Keys:                   []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftRight},
		},
		ActionMoveUp: {
			Keys:                   []ebiten.Key{ebiten.KeyUp, ebiten.KeyW},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftTop},
		},
		ActionMoveDown: {
			Keys:                   []ebiten.Key{ebiten.KeyDown, ebiten.KeyS},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonLeftBottom},
		},
		ActionFire: {
			Keys: []ebiten.Key{ebiten.KeyZ},
			// A / Cross button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightBottom},
		},
		ActionBomb: {
			Keys: []ebiten.Key{ebiten.KeyX},
			// B / Circle button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonRightRight},
		},
		ActionPause: {
			Keys: []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP},
			// Start / Options button
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonCenterRight},
		},
		ActionNextPattern: {
			Keys:                   []ebiten.Key{ebiten.KeyTab},
			StandardGamepadButtons: []ebiten.StandardGamepadButton{ebiten.StandardGamepadButtonFrontTopRight},
		},
	},
}

// ActionState represents the temporal state of an action
type ActionState struct {
	Pressed      bool // Currently held down
	JustPressed  bool // Pressed this frame
	JustReleased bool // Released this frame
}

// InputData stores the current and previous frame's pressed state for all
// actions. All devices are merged.
type InputData struct {
	Current  [ActionCount]bool
	Previous [ActionCount]bool
}

var inputState = donburi.NewComponentType[InputData]()

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls keyboard and gamepads into the input singleton. It runs
// outside the pause check so the pause toggle keeps working.
func UpdateInput(ecs *ecs.ECS) {
	input := GetOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	left, right, up, down := analogStickState(gamepadIDs)
	input.Current[ActionMoveLeft] = input.Current[ActionMoveLeft] || left
	input.Current[ActionMoveRight] = input.Current[ActionMoveRight] || right
	input.Current[ActionMoveUp] = input.Current[ActionMoveUp] || up
	input.Current[ActionMoveDown] = input.Current[ActionMoveDown] || down
}

// analogStickState reads the left stick of every standard gamepad and
// returns directional states past the deadzone.
func analogStickState(gamepads []ebiten.GamepadID) (left, right, up, down bool) {
	deadzone := Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}
		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		vertical := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickVertical)

		left = left || horizontal < -deadzone
		right = right || horizontal > deadzone
		up = up || vertical < -deadzone
		down = down || vertical > deadzone
	}
	return
}

// GetOrCreateInput returns the singleton input component, creating if needed
func GetOrCreateInput(ecs *ecs.ECS) *InputData {
	entry, ok := inputState.First(ecs.World)
	if !ok {
		entry = ecs.World.Entry(ecs.World.Create(inputState))
	}
	return inputState.Get(entry)
}

// GetAction returns the full ActionState for an action ID.
// JustPressed/JustReleased are derived from current vs previous frame.
func GetAction(input *InputData, id ActionID) ActionState {
	curr := input.Current[id]
	prev := input.Previous[id]
	return ActionState{
		Pressed:      curr,
		JustPressed:  curr && !prev,
		JustReleased: !curr && prev,
	}
}
