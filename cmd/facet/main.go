// facet - software rasterizer
// Renders an OBJ or GLB model to a flat-shaded TGA, PNG or BMP image.
//
// Examples:
//
//	facet obj/african_head.obj
//	facet -o head.png -width 1024 -height 1024 -fit head.glb
//	facet -config scene.yaml -preview 80
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/taigrr/facet/pkg/config"
	"github.com/taigrr/facet/pkg/models"
	"github.com/taigrr/facet/pkg/render"
)

var (
	configPath = flag.String("config", "", "YAML render description")
	output     = flag.String("o", config.DefaultOutput, "Output image (.tga, .png or .bmp)")
	width      = flag.Int("width", config.DefaultSize, "Image width in pixels")
	height     = flag.Int("height", config.DefaultSize, "Image height in pixels")
	format     = flag.String("format", "rgb", "Pixel format: grayscale, rgb or rgba")
	rle        = flag.Bool("rle", true, "RLE-compress TGA output")
	light      = flag.String("light", "0,0,-1", "Light direction (X,Y,Z)")
	wireframe  = flag.Bool("wireframe", false, "Draw face edges instead of shaded faces")
	fit        = flag.Bool("fit", false, "Center and scale the model to fill the image")
	pitch      = flag.Float64("pitch", 0, "Rotate the model about X (degrees)")
	yaw        = flag.Float64("yaw", 0, "Rotate the model about Y (degrees)")
	roll       = flag.Float64("roll", 0, "Rotate the model about Z (degrees)")
	flip       = flag.Bool("flip", true, "Flip the image so +Y points up")
	preview    = flag.Int("preview", 0, "Print a terminal preview this many columns wide")
	progress   = flag.Bool("progress", false, "Show a progress bar while rendering")
	dumpConfig = flag.String("dump-config", "", "Write the effective configuration to this file")
	verbose    = flag.Bool("v", false, "Verbose logging")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "facet - software rasterizer\n\n")
		fmt.Fprintf(os.Stderr, "Usage: facet [options] [model.obj|model.glb]\n\n")
		fmt.Fprintf(os.Stderr, "Renders %s when no model is given.\n\n", config.DefaultModel)
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	render.SetLogger(logger)
	models.SetLogger(logger)

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// buildConfig layers explicitly set flags and the model argument over the
// config file, or over the defaults when there is none.
func buildConfig() (config.Config, error) {
	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return config.Config{}, err
		}
	}

	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "o":
			cfg.Output = *output
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "format":
			cfg.Format = *format
		case "rle":
			cfg.RLE = *rle
		case "light":
			v, err := parseVec(*light)
			if err != nil {
				flagErr = fmt.Errorf("-light: %w", err)
				return
			}
			cfg.Light = v
		case "wireframe":
			if *wireframe {
				cfg.Mode = render.ModeWireframe.String()
			} else {
				cfg.Mode = render.ModeFlat.String()
			}
		case "fit":
			cfg.Fit = *fit
		case "pitch":
			cfg.Rotate.Pitch = *pitch
		case "yaw":
			cfg.Rotate.Yaw = *yaw
		case "roll":
			cfg.Rotate.Roll = *roll
		case "flip":
			cfg.Flip = *flip
		}
	})
	if flagErr != nil {
		return config.Config{}, flagErr
	}
	if flag.NArg() == 1 {
		cfg.Model = flag.Arg(0)
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// parseVec parses "x,y,z".
func parseVec(s string) (config.Vec, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return config.Vec{}, fmt.Errorf("want X,Y,Z, got %q", s)
	}
	var xs [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return config.Vec{}, fmt.Errorf("component %d: %w", i, err)
		}
		xs[i] = v
	}
	return config.Vec{X: xs[0], Y: xs[1], Z: xs[2]}, nil
}

func run() error {
	cfg, err := buildConfig()
	if err != nil {
		return err
	}
	if *dumpConfig != "" {
		if err := cfg.Write(*dumpConfig); err != nil {
			return err
		}
	}

	mesh, err := models.Load(cfg.Model)
	if err != nil {
		return err
	}
	if mesh.NFaces() == 0 {
		render.Logger().Warn("model has no faces, the image will be blank", "path", cfg.Model)
	}
	if cfg.Fit {
		mesh.Fit()
	}
	if t := cfg.Transform(); !t.IsIdentity() {
		mesh.Transform(t)
	}

	pixFormat, err := cfg.PixelFormat()
	if err != nil {
		return err
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	if *progress && mesh.NFaces() > 0 {
		bar := progressbar.Default(int64(mesh.NFaces()), "rendering")
		defer bar.Close()
		opts.Progress = func(done, total int) {
			bar.Add(1)
		}
	}

	surface := render.NewSurface(cfg.Width, cfg.Height, pixFormat)
	render.Render(mesh, surface, opts)

	if cfg.Flip {
		surface.FlipVertically()
	}
	if err := surface.Save(cfg.Output, cfg.RLE); err != nil {
		return err
	}
	render.Logger().Info("image written",
		"path", cfg.Output, "width", cfg.Width, "height", cfg.Height, "format", pixFormat)

	if *preview > 0 {
		fmt.Println(render.Preview(surface, *preview))
	}
	return nil
}
