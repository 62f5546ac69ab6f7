package config

import (
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/render"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "facet.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Default is invalid: %v", err)
	}
	if cfg.Width != 800 || cfg.Height != 800 || !cfg.RLE || !cfg.Flip {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Transform().IsIdentity() {
		t.Error("default transform is not the identity")
	}

	opts, err := cfg.Options()
	if err != nil {
		t.Fatal(err)
	}
	if opts.Mode != render.ModeFlat || opts.Light != math3d.V3(0, 0, -1) {
		t.Errorf("Options() = %+v", opts)
	}
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
model: head.obj
output: head.png
width: 320
height: 240
format: rgba
rle: false
light: [1, 0, -1]
mode: wireframe
fit: true
rotate:
  yaw: 90
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Model != "head.obj" || cfg.Output != "head.png" {
		t.Errorf("paths = %q %q", cfg.Model, cfg.Output)
	}
	if cfg.Width != 320 || cfg.Height != 240 || cfg.RLE || !cfg.Fit {
		t.Errorf("cfg = %+v", cfg)
	}
	if !cfg.Flip {
		t.Error("flip not kept at its default")
	}
	if cfg.Light.Vec3() != math3d.V3(1, 0, -1) {
		t.Errorf("light = %v", cfg.Light)
	}
	if f, _ := cfg.PixelFormat(); f != render.FormatRGBA {
		t.Errorf("format = %v", f)
	}
	if m, _ := cfg.RenderMode(); m != render.ModeWireframe {
		t.Errorf("mode = %v", m)
	}

	// Yaw of 90 degrees turns +X into -Z.
	got := cfg.Transform().MulVec3(math3d.V3(1, 0, 0))
	if math.Abs(got.X) > 1e-9 || math.Abs(got.Y) > 1e-9 || math.Abs(got.Z+1) > 1e-9 {
		t.Errorf("rotated +X = %v, want (0, 0, -1)", got)
	}
}

func TestLoadNormalizes(t *testing.T) {
	cfg, err := Load(writeConfig(t, "output: \"\"\nwidth: 0\nformat: \"\"\nmode: \"\"\n"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Output != DefaultOutput || cfg.Width != DefaultSize || cfg.Format != "rgb" || cfg.Mode != "flat" {
		t.Errorf("cfg = %+v", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		invalid bool
	}{
		{"negative width", "width: -5\n", true},
		{"too tall", "height: 70000\n", true},
		{"unknown format", "format: cmyk\n", true},
		{"unknown mode", "mode: gouraud\n", true},
		{"zero light", "light: [0, 0, 0]\n", true},
		{"short light", "light: [0, 1]\n", false},
		{"bad yaml", "width: [\n", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tc.content))
			if err == nil {
				t.Fatal("Load succeeded")
			}
			if errors.Is(err, ErrInvalid) != tc.invalid {
				t.Errorf("error = %v, ErrInvalid = %v", err, tc.invalid)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, os.ErrNotExist) {
			t.Errorf("error = %v, want not exist", err)
		}
	})
}

func TestWrite(t *testing.T) {
	cfg := Default()
	cfg.Model = "cube.glb"
	cfg.Light = Vec{X: 0.5, Y: 0.5, Z: -1}
	cfg.Rotate.Pitch = 30

	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.Write(path); err != nil {
		t.Fatalf("Write: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("Load(Write(cfg)) = %+v, want %+v", got, cfg)
	}
}

func TestWriteErrors(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "missing")
	path := filepath.Join(dir, "out.yaml")
	if err := Default().Write(path); err == nil {
		t.Fatal("Write into a missing directory succeeded")
	}
	if _, err := os.Stat(path); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Stat after failed Write: %v, want not exist", err)
	}
}
