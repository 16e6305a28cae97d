package input

import (
	"testing"

	"github.com/oliverbestmann/tricam/glm"
)

// scripted feeds one batch of events into the state per poll
type scripted struct {
	state  *State
	frames []func(s *State)
}

func (s *scripted) poll() {
	if len(s.frames) == 0 {
		return
	}

	s.frames[0](s.state)
	s.frames = s.frames[1:]
}

func newScripted(frames ...func(s *State)) *Manager {
	state := &State{}
	script := &scripted{state: state, frames: frames}
	return NewManager(state, script.poll)
}

func TestPressedIsEdgeTriggered(t *testing.T) {
	m := newScripted(
		func(s *State) { s.Keys.Press(KeyW) },
		func(s *State) {},
		func(s *State) { s.Keys.Release(KeyW) },
	)

	m.Update()
	if !m.IsPressed(KeyW) || !m.IsHeld(KeyW) {
		t.Fatalf("expected W to be pressed and held after first tick")
	}

	m.Update()
	if m.IsPressed(KeyW) {
		t.Fatalf("pressed must only be reported once per key down")
	}

	if !m.IsHeld(KeyW) {
		t.Fatalf("W must still be held")
	}

	m.Update()
	if m.IsHeld(KeyW) {
		t.Fatalf("W must not be held after release")
	}

	if !m.IsReleased(KeyW) {
		t.Fatalf("expected release edge")
	}
}

func TestPressAndReleaseWithinOneTick(t *testing.T) {
	m := newScripted(func(s *State) {
		s.Keys.Press(KeyEscape)
		s.Keys.Release(KeyEscape)
	})

	m.Update()

	if !m.IsPressed(KeyEscape) {
		t.Fatalf("a short tap must still produce a pressed edge")
	}

	if m.IsHeld(KeyEscape) {
		t.Fatalf("key was released in the same tick")
	}
}

func TestMouseDeltaAndScroll(t *testing.T) {
	m := newScripted(
		func(s *State) {
			s.Mouse.Move(10, 10)
			s.Mouse.Move(15, 8)
			s.Mouse.ScrollBy(0, 1)
			s.Mouse.ScrollBy(0, 2)
		},
		func(s *State) {},
	)

	m.Update()

	// the first position only initializes the cursor
	if got := m.MouseDelta(); got != (glm.Vec2f{5, -2}) {
		t.Fatalf("delta = %v", got)
	}

	if got := m.ScrollDelta(); got != 3 {
		t.Fatalf("scroll = %v", got)
	}

	if got := m.Cursor(); got != (glm.Vec2f{15, 8}) {
		t.Fatalf("cursor = %v", got)
	}

	m.Update()

	if !m.MouseDelta().IsZero() || m.ScrollDelta() != 0 {
		t.Fatalf("per tick deltas must reset")
	}
}

func TestQuitRequestedSticks(t *testing.T) {
	m := newScripted(func(s *State) { s.RequestQuit() })

	if m.QuitRequested() {
		t.Fatalf("quit before any event")
	}

	m.Update()
	m.Update()

	if !m.QuitRequested() {
		t.Fatalf("quit must stay requested")
	}
}

func TestKeyString(t *testing.T) {
	if got := KeyEscape.String(); got != "Escape" {
		t.Fatalf("got %q", got)
	}

	if got := Key(9999).String(); got != "Key(9999)" {
		t.Fatalf("got %q", got)
	}
}

func TestMouseButtons(t *testing.T) {
	m := newScripted(
		func(s *State) { s.Mouse.Press(MouseButtonRight) },
		func(s *State) {},
		func(s *State) { s.Mouse.Release(MouseButtonRight) },
	)

	m.Update()
	if !m.IsButtonPressed(MouseButtonRight) || !m.IsButtonHeld(MouseButtonRight) {
		t.Fatalf("expected right button to be pressed and held after first tick")
	}

	if m.IsButtonHeld(MouseButtonLeft) {
		t.Fatalf("left button was never pressed")
	}

	m.Update()
	if m.IsButtonPressed(MouseButtonRight) || !m.IsButtonHeld(MouseButtonRight) {
		t.Fatalf("expected right button to be held only on second tick")
	}

	m.Update()
	if m.IsButtonPressed(MouseButtonRight) || m.IsButtonHeld(MouseButtonRight) {
		t.Fatalf("expected right button to be up after release")
	}
}
