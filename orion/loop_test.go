package orion

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"

	"github.com/oliverbestmann/tricam/camera"
	"github.com/oliverbestmann/tricam/glm"
	"github.com/oliverbestmann/tricam/input"
)

// recorder collects the calls of the fakes in order
type recorder struct {
	calls []string
}

func (r *recorder) record(format string, args ...any) {
	r.calls = append(r.calls, fmt.Sprintf(format, args...))
}

// fakeInput replays one input.State per Update
type fakeInput struct {
	rec    *recorder
	frames []input.State
	state  input.State
}

func (f *fakeInput) Update() {
	f.rec.record("update")

	f.state = input.State{}
	if len(f.frames) > 0 {
		f.state = f.frames[0]
		f.frames = f.frames[1:]
	}
}

func (f *fakeInput) IsPressed(key input.Key) bool {
	return f.state.Keys.JustPressed[key]
}

func (f *fakeInput) IsHeld(key input.Key) bool {
	return f.state.Keys.Pressed[key]
}

func (f *fakeInput) IsButtonHeld(button input.MouseButton) bool {
	return f.state.Mouse.Pressed[button]
}

func (f *fakeInput) QuitRequested() bool {
	return f.state.Quit
}

func (f *fakeInput) MouseDelta() glm.Vec2f {
	return f.state.Mouse.Delta
}

func (f *fakeInput) ScrollDelta() float32 {
	return f.state.Mouse.Scroll[1]
}

type fakeRenderer struct {
	rec *recorder
	dt  float32

	uniform []byte

	// returned by Draw, one per call
	drawErrors []error
}

func (f *fakeRenderer) FrameStart() float32 {
	f.rec.record("frameStart")
	return f.dt
}

func (f *fakeRenderer) UpdateUniform(data []byte) error {
	f.rec.record("uniform")
	f.uniform = slices.Clone(data)
	return nil
}

func (f *fakeRenderer) Draw() error {
	f.rec.record("draw")

	if len(f.drawErrors) > 0 {
		err := f.drawErrors[0]
		f.drawErrors = f.drawErrors[1:]
		return err
	}

	return nil
}

func held(keys ...input.Key) input.State {
	var s input.State
	for _, key := range keys {
		s.Keys.Press(key)
	}

	return s
}

func newTestLoop(t *testing.T, frames ...input.State) (*Loop, *fakeRenderer, *recorder) {
	t.Helper()

	rec := &recorder{}
	renderer := &fakeRenderer{rec: rec, dt: 0.5}

	loop, err := NewLoop(LoopOptions{
		Input:       &fakeInput{rec: rec, frames: frames},
		Renderer:    renderer,
		Camera:      camera.New(camera.DefaultOptions()),
		Model:       glm.IdentityTransform[float32](),
		Aspect:      800.0 / 600.0,
		RotateSpeed: 1,
		Bindings:    DefaultKeyBindings(),
	})

	if err != nil {
		t.Fatalf("create loop: %v", err)
	}

	return loop, renderer, rec
}

func TestStepOrder(t *testing.T) {
	loop, _, rec := newTestLoop(t, input.State{})

	if err := loop.Step(); err != nil {
		t.Fatal(err)
	}

	want := []string{"frameStart", "update", "uniform", "draw"}
	if !slices.Equal(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}

	if loop.Frames() != 1 {
		t.Fatalf("frames = %d", loop.Frames())
	}
}

func TestQuitKeyStopsBeforeDraw(t *testing.T) {
	loop, _, rec := newTestLoop(t,
		input.State{},
		held(input.KeyEscape),
		input.State{},
	)

	if err := loop.Run(); err != nil {
		t.Fatal(err)
	}

	want := []string{
		"frameStart", "update", "uniform", "draw",
		"frameStart", "update",
	}

	if !slices.Equal(rec.calls, want) {
		t.Fatalf("calls = %v, want %v", rec.calls, want)
	}

	if loop.State() != Stopped {
		t.Fatalf("state = %v", loop.State())
	}

	// further steps are no-ops
	if err := loop.Step(); err != nil {
		t.Fatal(err)
	}

	if len(rec.calls) != len(want) {
		t.Fatalf("stopped loop kept running: %v", rec.calls)
	}
}

func TestWindowCloseStopsLoop(t *testing.T) {
	loop, _, rec := newTestLoop(t, input.State{Quit: true})

	if err := loop.Run(); err != nil {
		t.Fatal(err)
	}

	if slices.Contains(rec.calls, "draw") {
		t.Fatalf("draw after quit: %v", rec.calls)
	}
}

func TestUniformIsProjectionViewModel(t *testing.T) {
	loop, renderer, _ := newTestLoop(t, held(input.KeyW))

	if err := loop.Step(); err != nil {
		t.Fatal(err)
	}

	// replay the same frame on a separate camera
	cam := camera.New(camera.DefaultOptions())
	cam.ProcessKeyboard(camera.Forward, 0.5)

	expected := Uniforms{
		MVP: glm.Perspective[float32](cam.Zoom(), 800.0/600.0, 0.1, 1000).
			Mul(cam.LookAt()).
			Mul(glm.IdentityTransform[float32]().ModelMat()),
	}

	if !bytes.Equal(renderer.uniform, AsByteSlice(&expected)) {
		t.Fatalf("uniform mismatch")
	}

	if len(renderer.uniform) != 64 {
		t.Fatalf("uniform has %d bytes, want 64", len(renderer.uniform))
	}
}

func TestRotateAndReset(t *testing.T) {
	loop, _, _ := newTestLoop(t,
		held(input.KeyQ),
		held(input.KeyQ),
		held(input.KeyR),
	)

	for range 2 {
		if err := loop.Step(); err != nil {
			t.Fatal(err)
		}
	}

	// one radian per second for twice half a second
	if got := loop.Model().Rotate[2]; math.Abs(float64(got)-1) > 1e-6 {
		t.Fatalf("rotation = %v, want 1", got)
	}

	if err := loop.Step(); err != nil {
		t.Fatal(err)
	}

	if got := loop.Model(); got != glm.IdentityTransform[float32]() {
		t.Fatalf("model after reset = %v", got)
	}
}

func TestSkippedFrameContinues(t *testing.T) {
	loop, renderer, _ := newTestLoop(t)
	renderer.drawErrors = []error{
		fmt.Errorf("get current texture: %w", ErrSkipFrame),
	}

	for range 2 {
		if err := loop.Step(); err != nil {
			t.Fatalf("skipped frame must not fail the loop: %v", err)
		}
	}

	if loop.State() != Running {
		t.Fatalf("state = %v", loop.State())
	}

	if loop.Frames() != 1 {
		t.Fatalf("frames = %d, want 1", loop.Frames())
	}
}

func TestDrawErrorIsFatal(t *testing.T) {
	errDevice := errors.New("device lost")

	loop, renderer, _ := newTestLoop(t)
	renderer.drawErrors = []error{errDevice}

	err := loop.Run()
	if !errors.Is(err, errDevice) {
		t.Fatalf("Run() = %v, want %v", err, errDevice)
	}
}

func TestScrollZooms(t *testing.T) {
	var scroll input.State
	scroll.Mouse.ScrollBy(0, 10)

	loop, _, _ := newTestLoop(t, scroll)

	if err := loop.Step(); err != nil {
		t.Fatal(err)
	}

	if got := glm.RadToDeg[float32](loop.camera.Zoom()); math.Abs(float64(got)-35) > 1e-4 {
		t.Fatalf("zoom = %v°, want 35°", got)
	}
}

func TestMouseLookNeedsButton(t *testing.T) {
	var moved input.State
	moved.Mouse.Move(0, 0)
	moved.Mouse.Move(100, 0)

	loop, _, _ := newTestLoop(t, moved)
	if err := loop.Step(); err != nil {
		t.Fatal(err)
	}

	if loop.camera.Yaw() != -90 {
		t.Fatalf("camera turned without the look button: yaw=%v", loop.camera.Yaw())
	}

	moved.Mouse.Press(input.MouseButtonRight)

	loop, _, _ = newTestLoop(t, moved)
	if err := loop.Step(); err != nil {
		t.Fatal(err)
	}

	// sensitivity of 0.1 degrees per pixel
	if got := loop.camera.Yaw(); math.Abs(float64(got)+80) > 1e-4 {
		t.Fatalf("yaw = %v, want -80", got)
	}
}

func TestNewLoopValidates(t *testing.T) {
	if _, err := NewLoop(LoopOptions{}); err == nil {
		t.Fatalf("expected an error for missing collaborators")
	}
}
