package orion

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/oliverbestmann/tricam/camera"
	"github.com/oliverbestmann/tricam/glm"
	"github.com/oliverbestmann/tricam/input"
)

type State int

const (
	Running State = iota
	Stopped
)

func (s State) String() string {
	if s == Running {
		return "Running"
	}

	return "Stopped"
}

type LoopOptions struct {
	// required
	Input    InputManager
	Renderer Renderer
	Camera   *camera.Camera

	// initial placement of the triangle
	Model glm.Transformf

	// projection parameters
	Aspect float32
	Near   float32
	Far    float32

	// how fast the rotate keys spin the model, in radians per second
	RotateSpeed glm.Rad

	Bindings KeyBindings

	// optional frame cap
	Pacer *Pacer
}

// Loop drives the application one frame at a time. All state is owned
// by the loop and only touched from the goroutine calling Step or Run.
type Loop struct {
	input    InputManager
	renderer Renderer
	camera   *camera.Camera
	pacer    *Pacer
	bindings KeyBindings

	initialModel glm.Transformf
	model        glm.Transformf
	rotateSpeed  glm.Rad

	aspect, near, far float32

	uniforms Uniforms
	state    State

	frames  uint64
	skipped uint64
}

func NewLoop(opts LoopOptions) (*Loop, error) {
	switch {
	case opts.Input == nil:
		return nil, errors.New("Input must not be nil")
	case opts.Renderer == nil:
		return nil, errors.New("Renderer must not be nil")
	case opts.Camera == nil:
		return nil, errors.New("Camera must not be nil")
	}

	if opts.Aspect <= 0 {
		opts.Aspect = 1
	}

	if opts.Near <= 0 {
		opts.Near = 0.1
	}

	if opts.Far <= opts.Near {
		opts.Far = 1000
	}

	if opts.Bindings.Quit == input.KeyUnknown && len(opts.Bindings.Forward) == 0 {
		opts.Bindings = DefaultKeyBindings()
	}

	if opts.Model.Scale == (glm.Vec3f{}) {
		opts.Model.Scale = glm.Vec3f{1, 1, 1}
	}

	l := &Loop{
		input:        opts.Input,
		renderer:     opts.Renderer,
		camera:       opts.Camera,
		pacer:        opts.Pacer,
		bindings:     opts.Bindings,
		initialModel: opts.Model,
		model:        opts.Model,
		rotateSpeed:  opts.RotateSpeed,
		aspect:       opts.Aspect,
		near:         opts.Near,
		far:          opts.Far,
	}

	return l, nil
}

func (l *Loop) State() State {
	return l.state
}

// Model returns the current placement of the triangle
func (l *Loop) Model() glm.Transformf {
	return l.model
}

// Frames returns the number of frames handed to the renderer.
func (l *Loop) Frames() uint64 {
	return l.frames
}

// Run steps the loop until it stops. It returns the first error
// that is not ErrSkipFrame.
func (l *Loop) Run() error {
	slog.Info("Enter main loop")

	for l.state == Running {
		if err := l.Step(); err != nil {
			return err
		}
	}

	slog.Info("Main loop stopped",
		slog.Uint64("frames", l.frames),
		slog.Uint64("skipped", l.skipped),
	)

	return nil
}

// Step runs exactly one iteration of the loop. Once the loop is
// stopped Step does nothing.
func (l *Loop) Step() error {
	if l.state == Stopped {
		return nil
	}

	frameStart := l.pacer.Start()

	dt := l.renderer.FrameStart()

	l.input.Update()

	if l.input.QuitRequested() || l.input.IsPressed(l.bindings.Quit) {
		slog.Info("Quit requested")
		l.state = Stopped
		return nil
	}

	l.dispatchInput(dt)

	l.uniforms.MVP = l.modelViewProjection()

	if err := l.renderer.UpdateUniform(AsByteSlice(&l.uniforms)); err != nil {
		return fmt.Errorf("update uniform: %w", err)
	}

	err := l.renderer.Draw()
	switch {
	case errors.Is(err, ErrSkipFrame):
		l.skipped += 1
		slog.Debug("Skipped frame", slog.String("reason", err.Error()))

	case err != nil:
		return fmt.Errorf("draw: %w", err)

	default:
		l.frames += 1
	}

	l.pacer.Wait(frameStart)

	return nil
}

func (l *Loop) dispatchInput(dt float32) {
	b := l.bindings

	if l.input.IsPressed(b.Reset) {
		slog.Info("Reset camera and model")
		l.camera.Reset()
		l.model = l.initialModel
	}

	if anyHeld(l.input, b.Forward) {
		l.camera.ProcessKeyboard(camera.Forward, dt)
	}

	if anyHeld(l.input, b.Backward) {
		l.camera.ProcessKeyboard(camera.Backward, dt)
	}

	if anyHeld(l.input, b.Left) {
		l.camera.ProcessKeyboard(camera.Left, dt)
	}

	if anyHeld(l.input, b.Right) {
		l.camera.ProcessKeyboard(camera.Right, dt)
	}

	if scroll := l.input.ScrollDelta(); scroll != 0 {
		l.camera.ProcessMouseScroll(scroll)
	}

	if l.input.IsButtonHeld(b.Look) {
		// screen y grows downwards, camera pitch upwards
		dx, dy := l.input.MouseDelta().XY()
		if dx != 0 || dy != 0 {
			l.camera.ProcessMouseMovement(dx, -dy, true)
		}
	}

	step := l.rotateSpeed * glm.Rad(dt)

	if l.input.IsHeld(b.RotateLeft) {
		l.model.Rotate[2] += step
	}

	if l.input.IsHeld(b.RotateRight) {
		l.model.Rotate[2] -= step
	}
}

func (l *Loop) modelViewProjection() glm.Mat4f {
	projection := glm.Perspective(l.camera.Zoom(), l.aspect, l.near, l.far)
	view := l.camera.LookAt()
	model := l.model.ModelMat()

	return projection.Mul(view).Mul(model)
}
