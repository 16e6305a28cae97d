package orion

import (
	"github.com/oliverbestmann/tricam/glm"
	"github.com/oliverbestmann/tricam/input"
)

// InputManager is the view of the input system the loop works with.
// It is implemented by *input.Manager.
type InputManager interface {
	// Update advances the input snapshot by one tick
	Update()

	// IsPressed is true for exactly one tick after the key went down
	IsPressed(key input.Key) bool

	// IsHeld is true as long as the key is down
	IsHeld(key input.Key) bool

	IsButtonHeld(button input.MouseButton) bool

	QuitRequested() bool

	MouseDelta() glm.Vec2f
	ScrollDelta() float32
}

var _ InputManager = (*input.Manager)(nil)

// KeyBindings maps input to camera and model actions.
type KeyBindings struct {
	Quit  input.Key
	Reset input.Key

	Forward  []input.Key
	Backward []input.Key
	Left     []input.Key
	Right    []input.Key

	RotateLeft  input.Key
	RotateRight input.Key

	// mouse movement turns the camera while this button is held
	Look input.MouseButton
}

func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Quit:  input.KeyEscape,
		Reset: input.KeyR,

		Forward:  []input.Key{input.KeyW, input.KeyArrowUp},
		Backward: []input.Key{input.KeyS, input.KeyArrowDown},
		Left:     []input.Key{input.KeyA, input.KeyArrowLeft},
		Right:    []input.Key{input.KeyD, input.KeyArrowRight},

		RotateLeft:  input.KeyQ,
		RotateRight: input.KeyE,

		Look: input.MouseButtonRight,
	}
}

func anyHeld(in InputManager, keys []input.Key) bool {
	for _, key := range keys {
		if in.IsHeld(key) {
			return true
		}
	}

	return false
}
