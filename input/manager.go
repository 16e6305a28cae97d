package input

import "github.com/oliverbestmann/tricam/glm"

// Manager answers input queries against a snapshot that is advanced
// exactly once per frame by calling Update.
type Manager struct {
	state *State
	poll  func()
}

// NewManager creates a Manager on top of state. poll must deliver all
// pending platform events into state, e.g. glfw.PollEvents.
func NewManager(state *State, poll func()) *Manager {
	if poll == nil {
		poll = func() {}
	}

	return &Manager{state: state, poll: poll}
}

// Update drops the edge state of the previous tick and
// polls the platform for new events.
func (m *Manager) Update() {
	m.state.nextTick()
	m.poll()
}

// IsPressed reports whether key went down during the last tick.
func (m *Manager) IsPressed(key Key) bool {
	return m.state.Keys.JustPressed[key]
}

// IsHeld reports whether key is currently down.
func (m *Manager) IsHeld(key Key) bool {
	return m.state.Keys.Pressed[key]
}

func (m *Manager) IsReleased(key Key) bool {
	return m.state.Keys.JustReleased[key]
}

func (m *Manager) IsButtonHeld(button MouseButton) bool {
	return m.state.Mouse.Pressed[button]
}

func (m *Manager) IsButtonPressed(button MouseButton) bool {
	return m.state.Mouse.JustPressed[button]
}

func (m *Manager) QuitRequested() bool {
	return m.state.Quit
}

func (m *Manager) Cursor() glm.Vec2f {
	return m.state.Mouse.Cursor
}

// MouseDelta is the cursor movement of the last tick
func (m *Manager) MouseDelta() glm.Vec2f {
	return m.state.Mouse.Delta
}

// ScrollDelta is the vertical scroll wheel movement of the last tick
func (m *Manager) ScrollDelta() float32 {
	return m.state.Mouse.Scroll[1]
}
