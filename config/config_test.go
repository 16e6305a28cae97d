package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
}

func TestLoadWithoutPathReturnsDefaults(t *testing.T) {
	conf, err := Load("")
	if err != nil {
		t.Fatal(err)
	}

	if conf != Default() {
		t.Fatalf("got %+v", conf)
	}
}

func TestParseOverridesDefaults(t *testing.T) {
	conf, err := Parse(`
profile = "cpu"

[window]
title = "Demo"

[camera]
speed = 5.0
position = [1.0, 2.0, 3.0]

[loop]
max_fps = 30
`)
	if err != nil {
		t.Fatal(err)
	}

	if conf.Window.Title != "Demo" || conf.Window.Width != 800 {
		t.Fatalf("window = %+v", conf.Window)
	}

	if conf.Camera.Speed != 5 || conf.Camera.Position != [3]float32{1, 2, 3} {
		t.Fatalf("camera = %+v", conf.Camera)
	}

	// untouched values keep their defaults
	if conf.Camera.Zoom != 45 {
		t.Fatalf("zoom = %v", conf.Camera.Zoom)
	}

	if conf.Loop.MaxFPS != 30 || conf.Profile != "cpu" {
		t.Fatalf("got %+v", conf)
	}
}

func TestValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"width", "[window]\nwidth = 0", "window.width"},
		{"present mode", "[render]\npresent_mode = \"vsync\"", "render.present_mode"},
		{"clear color", "[render]\nclear_color = [2.0, 0.0, 0.0, 1.0]", "render.clear_color[0]"},
		{"far plane", "[render]\nfar = 0.01", "render.far"},
		{"zoom bounds", "[camera]\nmin_zoom = 60.0\nmax_zoom = 30.0", "camera.min_zoom"},
		{"zoom nan", "[camera]\nzoom = nan", "camera.zoom"},
		{"zoom out of bounds", "[camera]\nzoom = 120.0", "camera.zoom"},
		{"sensitivity", "[camera]\nsensitivity = inf", "camera.sensitivity"},
		{"max fps", "[loop]\nmax_fps = -1", "loop.max_fps"},
		{"log level", "[log]\nlevel = \"loud\"", "log.level"},
		{"profile", "profile = \"block\"", "profile"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.text)
			if err == nil {
				t.Fatalf("expected an error")
			}

			if !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("error %q does not mention %q", err, tc.want)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "triangle.toml")

	err := os.WriteFile(path, []byte("[log]\nlevel = \"debug\"\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	conf, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}

	level, err := conf.Log.SlogLevel()
	if err != nil {
		t.Fatal(err)
	}

	if level != slog.LevelDebug {
		t.Fatalf("level = %v", level)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestAspect(t *testing.T) {
	if got := Default().Window.Aspect(); got != float32(800)/float32(600) {
		t.Fatalf("aspect = %v", got)
	}
}
