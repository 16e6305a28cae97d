package input

import (
	"log/slog"

	"github.com/oliverbestmann/tricam/glm"
)

type KeysState struct {
	// the keys that are currently held down
	Pressed map[Key]bool

	// keys that were pressed since the last call to nextTick()
	JustPressed map[Key]bool

	// keys that were released since the last call to nextTick()
	JustReleased map[Key]bool
}

func (k *KeysState) Press(key Key) {
	slog.Debug("Key pressed", slog.String("key", key.String()))

	setTrue(&k.Pressed, key)
	setTrue(&k.JustPressed, key)
}

func (k *KeysState) Release(key Key) {
	setFalse(&k.Pressed, key)
	setTrue(&k.JustReleased, key)
}

func (k *KeysState) nextTick() {
	clear(k.JustPressed)
	clear(k.JustReleased)
}

type MouseState struct {
	Cursor glm.Vec2f

	// cursor movement since the last tick
	Delta glm.Vec2f

	// scroll wheel movement since the last tick
	Scroll glm.Vec2f

	Pressed map[MouseButton]bool

	// mouse buttons that were clicked since the last call to nextTick()
	JustPressed map[MouseButton]bool

	// mouse buttons that were released since the last call to nextTick()
	JustReleased map[MouseButton]bool

	// false until the first cursor event arrived
	hasCursor bool
}

func (m *MouseState) Press(button MouseButton) {
	setTrue(&m.Pressed, button)
	setTrue(&m.JustPressed, button)
}

func (m *MouseState) Release(button MouseButton) {
	setFalse(&m.Pressed, button)
	setTrue(&m.JustReleased, button)
}

// Move records a new absolute cursor position. The very first
// position only initializes the cursor and does not produce a delta.
func (m *MouseState) Move(x, y float32) {
	pos := glm.Vec2f{x, y}

	if m.hasCursor {
		m.Delta = m.Delta.Add(pos.Sub(m.Cursor))
	}

	m.Cursor = pos
	m.hasCursor = true
}

func (m *MouseState) ScrollBy(dx, dy float32) {
	m.Scroll = m.Scroll.Add(glm.Vec2f{dx, dy})
}

func (m *MouseState) nextTick() {
	clear(m.JustPressed)
	clear(m.JustReleased)

	m.Delta = glm.Vec2f{}
	m.Scroll = glm.Vec2f{}
}

// State is the input snapshot the window callbacks write to.
type State struct {
	Keys  KeysState
	Mouse MouseState

	// set once the window asked to be closed
	Quit bool
}

func (s *State) RequestQuit() {
	s.Quit = true
}

func (s *State) nextTick() {
	s.Keys.nextTick()
	s.Mouse.nextTick()
}

func setTrue[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = true
}

func setFalse[K comparable](m *map[K]bool, key K) {
	if *m == nil {
		*m = map[K]bool{}
	}

	(*m)[key] = false
}
