// Package config loads the application configuration from an
// optional toml file on top of built in defaults.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strings"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Window WindowConfig `toml:"window"`
	Render RenderConfig `toml:"render"`
	Camera CameraConfig `toml:"camera"`
	Loop   LoopConfig   `toml:"loop"`
	Log    LogConfig    `toml:"log"`

	// one of "", "cpu", "mem" or "trace"
	Profile string `toml:"profile"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type RenderConfig struct {
	// srgb encoded rgba
	ClearColor [4]float32 `toml:"clear_color"`

	// one of "fifo", "mailbox" or "immediate"
	PresentMode string `toml:"present_mode"`

	ForceFallbackAdapter bool `toml:"force_fallback_adapter"`

	Near float32 `toml:"near"`
	Far  float32 `toml:"far"`
}

type CameraConfig struct {
	Position [3]float32 `toml:"position"`

	// angles in degrees
	Yaw   float32 `toml:"yaw"`
	Pitch float32 `toml:"pitch"`

	Speed       float32 `toml:"speed"`
	Sensitivity float32 `toml:"sensitivity"`

	// field of view in degrees
	Zoom    float32 `toml:"zoom"`
	MinZoom float32 `toml:"min_zoom"`
	MaxZoom float32 `toml:"max_zoom"`
}

type LoopConfig struct {
	// caps the frame rate by sleeping after each frame. 0 disables
	// the cap, the present mode then defines the frame rate.
	MaxFPS int `toml:"max_fps"`

	// model rotation speed of the rotate keys in degrees per second
	RotateSpeed float32 `toml:"rotate_speed"`
}

type LogConfig struct {
	// one of "debug", "info", "warn" or "error"
	Level string `toml:"level"`

	// include source file and line in log records
	Source bool `toml:"source"`
}

func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "Triangle",
		},
		Render: RenderConfig{
			ClearColor:  [4]float32{0.5, 0, 0.5, 1},
			PresentMode: "fifo",
			Near:        0.1,
			Far:         1000,
		},
		Camera: CameraConfig{
			Position:    [3]float32{0, 0, 3},
			Yaw:         -90,
			Pitch:       0,
			Speed:       2.5,
			Sensitivity: 0.1,
			Zoom:        45,
			MinZoom:     1,
			MaxZoom:     90,
		},
		Loop: LoopConfig{
			MaxFPS:      0,
			RotateSpeed: 90,
		},
		Log: LogConfig{
			Level:  "info",
			Source: true,
		},
	}
}

// Load reads the file at path on top of the defaults. An empty path
// returns the defaults. The result is validated.
func Load(path string) (Config, error) {
	conf := Default()

	if path != "" {
		meta, err := toml.DecodeFile(path, &conf)
		if err != nil {
			return Config{}, fmt.Errorf("decode %q: %w", path, err)
		}

		for _, key := range meta.Undecoded() {
			slog.Warn("Unknown configuration key", slog.String("key", key.String()))
		}
	}

	if err := conf.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate %q: %w", path, err)
	}

	return conf, nil
}

// Parse decodes configuration from toml text on top of the defaults.
func Parse(text string) (Config, error) {
	conf := Default()

	if _, err := toml.Decode(text, &conf); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return Config{}, err
	}

	return conf, nil
}

func (c Config) Validate() error {
	var errs []error

	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Window.Width > 0, "window.width must be positive, got %d", c.Window.Width)
	check(c.Window.Height > 0, "window.height must be positive, got %d", c.Window.Height)

	switch c.Render.PresentMode {
	case "fifo", "mailbox", "immediate":
	default:
		errs = append(errs, fmt.Errorf("render.present_mode %q is not one of fifo, mailbox, immediate", c.Render.PresentMode))
	}

	for idx, value := range c.Render.ClearColor {
		check(value >= 0 && value <= 1, "render.clear_color[%d] must be in [0, 1], got %v", idx, value)
	}

	check(c.Render.Near > 0, "render.near must be positive, got %v", c.Render.Near)
	check(c.Render.Far > c.Render.Near, "render.far must be larger than render.near, got %v", c.Render.Far)

	check(isFinite(c.Camera.MinZoom) && c.Camera.MinZoom > 0, "camera.min_zoom must be positive, got %v", c.Camera.MinZoom)
	check(c.Camera.MaxZoom < 180, "camera.max_zoom must be less than 180, got %v", c.Camera.MaxZoom)
	check(c.Camera.MinZoom <= c.Camera.MaxZoom, "camera.min_zoom must not exceed camera.max_zoom")
	check(isFinite(c.Camera.Zoom) && c.Camera.Zoom >= c.Camera.MinZoom && c.Camera.Zoom <= c.Camera.MaxZoom,
		"camera.zoom must be within [camera.min_zoom, camera.max_zoom], got %v", c.Camera.Zoom)
	check(isFinite(c.Camera.Speed) && c.Camera.Speed >= 0, "camera.speed must not be negative, got %v", c.Camera.Speed)
	check(isFinite(c.Camera.Sensitivity), "camera.sensitivity must be finite, got %v", c.Camera.Sensitivity)
	check(isFinite(c.Camera.Yaw) && isFinite(c.Camera.Pitch), "camera.yaw and camera.pitch must be finite")

	check(c.Loop.MaxFPS >= 0, "loop.max_fps must not be negative, got %d", c.Loop.MaxFPS)

	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}

	switch c.Profile {
	case "", "cpu", "mem", "trace":
	default:
		errs = append(errs, fmt.Errorf("profile %q is not one of cpu, mem, trace", c.Profile))
	}

	return errors.Join(errs...)
}

// SlogLevel parses the configured log level
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var level slog.Level

	if err := level.UnmarshalText([]byte(strings.ToUpper(l.Level))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}

	return level, nil
}

// Aspect is the aspect ratio of the window
func (w WindowConfig) Aspect() float32 {
	return float32(w.Width) / float32(w.Height)
}

func isFinite(value float32) bool {
	return !math.IsNaN(float64(value)) && !math.IsInf(float64(value), 0)
}
