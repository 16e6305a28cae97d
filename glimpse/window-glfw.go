package glimpse

import (
	"fmt"
	"log/slog"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/oliverbestmann/tricam/input"
	"github.com/oliverbestmann/webgpu/wgpu"
	"github.com/oliverbestmann/webgpu/wgpuglfw"
)

type glfwWindow struct {
	win   *glfw.Window
	state input.State
	input *input.Manager
	title string
}

// NewWindow opens a fixed size window without a client api, ready
// to be used as a webgpu surface.
func NewWindow(width, height int, title string) (Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initialize glfw: %w", err)
	}

	glfw.WindowHint(glfw.ClientAPI, glfw.NoAPI)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}

	slog.Info("Window created",
		slog.Int("width", width),
		slog.Int("height", height),
	)

	w := &glfwWindow{win: window, title: title}
	w.input = input.NewManager(&w.state, glfw.PollEvents)

	configureInput(window, &w.state)

	return w, nil
}

func (g *glfwWindow) GetSize() (uint32, uint32) {
	width, height := g.win.GetFramebufferSize()
	return uint32(width), uint32(height)
}

func (g *glfwWindow) SurfaceDescriptor() *wgpu.SurfaceDescriptor {
	return wgpuglfw.GetSurfaceDescriptor(g.win)
}

func (g *glfwWindow) Input() *input.Manager {
	return g.input
}

func (g *glfwWindow) SetTitle(title string) {
	if title == g.title {
		return
	}

	g.title = title
	g.win.SetTitle(title)
}

func (g *glfwWindow) Terminate() {
	slog.Info("Destroy window")

	g.win.Destroy()
	glfw.Terminate()
}

func configureInput(window *glfw.Window, state *input.State) {
	window.SetKeyCallback(func(_win *glfw.Window, glfwKey glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		if action == glfw.Repeat {
			return
		}

		key, ok := keyOf(glfwKey)
		if !ok {
			return
		}

		switch action {
		case glfw.Press:
			state.Keys.Press(key)

		case glfw.Release:
			state.Keys.Release(key)
		}
	})

	window.SetMouseButtonCallback(func(_win *glfw.Window, btn glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		button := input.MouseButton(btn)

		switch action {
		case glfw.Press:
			state.Mouse.Press(button)
		case glfw.Release:
			state.Mouse.Release(button)
		}
	})

	window.SetCursorPosCallback(func(_win *glfw.Window, xpos float64, ypos float64) {
		state.Mouse.Move(float32(xpos), float32(ypos))
	})

	window.SetScrollCallback(func(_win *glfw.Window, xoff float64, yoff float64) {
		state.Mouse.ScrollBy(float32(xoff), float32(yoff))
	})

	window.SetCloseCallback(func(_win *glfw.Window) {
		slog.Info("Window close requested")
		state.RequestQuit()
	})
}

func keyOf(glfwKey glfw.Key) (key input.Key, ok bool) {
	key, ok = glfwToKey[glfwKey]
	if !ok {
		slog.Debug(
			"Unknown key code",
			slog.String("key", glfw.GetKeyName(glfwKey, 0)),
		)
	}

	return
}
