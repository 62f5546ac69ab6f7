// Package config describes a single facet render: which model to draw,
// where to write it and how to light and orient it.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/taigrr/facet/pkg/math3d"
	"github.com/taigrr/facet/pkg/render"
)

const (
	DefaultModel  = "obj/african_head.obj"
	DefaultOutput = "output.tga"
	DefaultSize   = 800

	// MaxSize is the largest dimension a TGA header can hold.
	MaxSize = 0xFFFF
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("invalid config")

// Config is a render description, usually read from YAML and overridden by
// command-line flags.
type Config struct {
	Model  string   `yaml:"model"`
	Output string   `yaml:"output"`
	Width  int      `yaml:"width"`
	Height int      `yaml:"height"`
	Format string   `yaml:"format"` // grayscale, rgb or rgba
	RLE    bool     `yaml:"rle"`
	Light  Vec      `yaml:"light"`
	Mode   string   `yaml:"mode"` // flat or wireframe
	Fit    bool     `yaml:"fit"`  // Center and scale the model into [-1, 1]
	Rotate Rotation `yaml:"rotate"`
	Flip   bool     `yaml:"flip"` // Flip the image so +Y points up
}

// Rotation is applied to the model before rendering, in degrees.
// Roll (Z) is applied first, then pitch (X), then yaw (Y).
type Rotation struct {
	Pitch float64 `yaml:"pitch"`
	Yaw   float64 `yaml:"yaw"`
	Roll  float64 `yaml:"roll"`
}

// Vec is a three-component vector written as a YAML sequence.
type Vec math3d.Vec3

// UnmarshalYAML implements yaml.Unmarshaler for Vec.
func (v *Vec) UnmarshalYAML(value *yaml.Node) error {
	var xs []float64
	if err := value.Decode(&xs); err != nil {
		return err
	}
	if len(xs) != 3 {
		return fmt.Errorf("vector needs 3 components, got %d", len(xs))
	}
	*v = Vec{X: xs[0], Y: xs[1], Z: xs[2]}
	return nil
}

// MarshalYAML implements yaml.Marshaler for Vec.
func (v Vec) MarshalYAML() (any, error) {
	return []float64{v.X, v.Y, v.Z}, nil
}

// Vec3 returns the math3d value.
func (v Vec) Vec3() math3d.Vec3 {
	return math3d.Vec3(v)
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Model:  DefaultModel,
		Output: DefaultOutput,
		Width:  DefaultSize,
		Height: DefaultSize,
		Format: render.FormatRGB.String(),
		RLE:    true,
		Light:  Vec(math3d.Forward()),
		Mode:   render.ModeFlat.String(),
		Flip:   true,
	}
}

func (c *Config) normalize() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
	if c.Width == 0 {
		c.Width = DefaultSize
	}
	if c.Height == 0 {
		c.Height = DefaultSize
	}
	if c.Format == "" {
		c.Format = render.FormatRGB.String()
	}
	if c.Mode == "" {
		c.Mode = render.ModeFlat.String()
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Write saves the configuration as YAML.
// A partially written file is removed.
func (c Config) Write(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	if err = enc.Encode(&c); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err = enc.Close(); err != nil {
		return fmt.Errorf("flush %s: %w", path, err)
	}
	return nil
}

// Validate reports the first problem with c, wrapped in ErrInvalid.
func (c Config) Validate() error {
	if c.Width <= 0 || c.Width > MaxSize || c.Height <= 0 || c.Height > MaxSize {
		return fmt.Errorf("%w: size %dx%d must be within 1..%d", ErrInvalid, c.Width, c.Height, MaxSize)
	}
	if _, err := c.PixelFormat(); err != nil {
		return err
	}
	if _, err := c.RenderMode(); err != nil {
		return err
	}
	if c.Light.Vec3().LenSq() == 0 {
		return fmt.Errorf("%w: light direction is zero", ErrInvalid)
	}
	return nil
}

// PixelFormat converts Format to a render.Format.
func (c Config) PixelFormat() (render.Format, error) {
	f, err := render.ParseFormat(c.Format)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return f, nil
}

// RenderMode converts Mode to a render.Mode.
func (c Config) RenderMode() (render.Mode, error) {
	switch c.Mode {
	case render.ModeFlat.String():
		return render.ModeFlat, nil
	case render.ModeWireframe.String():
		return render.ModeWireframe, nil
	}
	return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalid, c.Mode)
}

// Options builds the render options described by c.
func (c Config) Options() (render.Options, error) {
	mode, err := c.RenderMode()
	if err != nil {
		return render.Options{}, err
	}
	opts := render.DefaultOptions()
	opts.Light = c.Light.Vec3()
	opts.Mode = mode
	return opts, nil
}

// Transform returns the model rotation as a matrix. It is the identity when
// no rotation is configured.
func (c Config) Transform() math3d.Mat4 {
	r := c.Rotate
	return math3d.RotateY(radians(r.Yaw)).
		Mul(math3d.RotateX(radians(r.Pitch))).
		Mul(math3d.RotateZ(radians(r.Roll)))
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
