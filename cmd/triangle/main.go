package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/oliverbestmann/tricam/camera"
	"github.com/oliverbestmann/tricam/config"
	"github.com/oliverbestmann/tricam/glimpse"
	"github.com/oliverbestmann/tricam/glm"
	"github.com/oliverbestmann/tricam/orion"
	"github.com/oliverbestmann/tricam/pulse"
	"github.com/pkg/profile"
)

func main() {
	configPath := flag.String("config", "", "path to a toml configuration file")
	flag.Parse()

	conf, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %s\n", err)
		os.Exit(1)
	}

	// the level was checked by Load already
	level, _ := conf.Log.SlogLevel()

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{AddSource: conf.Log.Source, Level: level})
	slog.SetDefault(slog.New(handler))

	if err := run(conf); err != nil {
		slog.Error("Triangle failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
}

func run(conf config.Config) error {
	if stop := startProfile(conf.Profile); stop != nil {
		defer stop()
	}

	// create a new window
	win, err := glimpse.NewWindow(
		conf.Window.Width,
		conf.Window.Height,
		conf.Window.Title,
	)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}

	defer win.Terminate()

	// initialize the webgpu device
	ctx, err := pulse.New(win.SurfaceDescriptor(), pulse.ContextOptions{
		ForceFallbackAdapter: conf.Render.ForceFallbackAdapter,
	})
	if err != nil {
		return fmt.Errorf("initializing wgpu: %w", err)
	}

	defer ctx.Release()

	presentMode, err := pulse.PresentModeOf(conf.Render.PresentMode)
	if err != nil {
		return err
	}

	view, err := pulse.NewView(ctx, presentMode)
	if err != nil {
		return fmt.Errorf("create view: %w", err)
	}

	width, height := win.GetSize()

	cc := conf.Render.ClearColor

	renderer, err := pulse.NewTriangleRenderer(view, pulse.TriangleOptions{
		Width:      width,
		Height:     height,
		Window:     win,
		Title:      conf.Window.Title,
		ClearColor: pulse.ColorSRGBA(cc[0], cc[1], cc[2], cc[3]),
	})
	if err != nil {
		return fmt.Errorf("create renderer: %w", err)
	}

	defer renderer.Release()

	loop, err := orion.NewLoop(orion.LoopOptions{
		Input:       win.Input(),
		Renderer:    renderer,
		Camera:      camera.New(cameraOptions(conf.Camera)),
		Model:       glm.IdentityTransform[float32](),
		Aspect:      conf.Window.Aspect(),
		Near:        conf.Render.Near,
		Far:         conf.Render.Far,
		RotateSpeed: glm.DegToRad(conf.Loop.RotateSpeed),
		Bindings:    orion.DefaultKeyBindings(),
		Pacer:       orion.NewPacer(conf.Loop.MaxFPS),
	})
	if err != nil {
		return fmt.Errorf("create loop: %w", err)
	}

	return loop.Run()
}

func cameraOptions(conf config.CameraConfig) camera.Options {
	return camera.Options{
		Position:    glm.Vec3f(conf.Position),
		WorldUp:     glm.Vec3f{0, 1, 0},
		Yaw:         conf.Yaw,
		Pitch:       conf.Pitch,
		Speed:       conf.Speed,
		Sensitivity: conf.Sensitivity,
		Zoom:        conf.Zoom,
		MinZoom:     conf.MinZoom,
		MaxZoom:     conf.MaxZoom,
	}
}

func startProfile(mode string) func() {
	var kind func(*profile.Profile)

	switch mode {
	case "cpu":
		kind = profile.CPUProfile
	case "mem":
		kind = profile.MemProfile
	case "trace":
		kind = profile.TraceProfile
	default:
		return nil
	}

	prof := profile.Start(kind, profile.NoShutdownHook)
	return prof.Stop
}
