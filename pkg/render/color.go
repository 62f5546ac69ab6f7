package render

import (
	"fmt"
	"image/color"
)

// Format is the number of bytes stored per pixel.
type Format int

const (
	FormatGrayscale Format = 1
	FormatRGB       Format = 3
	FormatRGBA      Format = 4
)

// Valid reports whether f is one of the supported pixel formats.
func (f Format) Valid() bool {
	return f == FormatGrayscale || f == FormatRGB || f == FormatRGBA
}

func (f Format) String() string {
	switch f {
	case FormatGrayscale:
		return "grayscale"
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat converts "grayscale", "rgb" or "rgba" to a Format.
func ParseFormat(s string) (Format, error) {
	switch s {
	case "grayscale", "gray":
		return FormatGrayscale, nil
	case "rgb":
		return FormatRGB, nil
	case "rgba":
		return FormatRGBA, nil
	}
	return 0, fmt.Errorf("unknown pixel format %q", s)
}

// Color is a pixel value: four 8-bit channels and the number of channels
// that carry meaning. A grayscale color keeps its value in R.
type Color struct {
	R, G, B, A uint8
	Format     Format
}

// Colors for convenience
var (
	ColorBlack = RGB(0, 0, 0)
	ColorWhite = RGB(255, 255, 255)
	ColorRed   = RGB(255, 0, 0)
	ColorGreen = RGB(0, 255, 0)
	ColorBlue  = RGB(0, 0, 255)
)

// RGB creates an opaque color from RGB values.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255, Format: FormatRGBA}
}

// RGBA creates a color from RGBA values.
func RGBA(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a, Format: FormatRGBA}
}

// Gray creates a single-channel color.
func Gray(v uint8) Color {
	return Color{R: v, Format: FormatGrayscale}
}

// ColorFromBytes builds a color from the first f bytes of p.
// Channels past f are zero.
func ColorFromBytes(p []byte, f Format) Color {
	var ch [4]uint8
	copy(ch[:min(int(f), 4, len(p))], p)
	return Color{R: ch[0], G: ch[1], B: ch[2], A: ch[3], Format: f}
}

// Bytes returns the channels in R, G, B, A order.
func (c Color) Bytes() [4]uint8 {
	return [4]uint8{c.R, c.G, c.B, c.A}
}

// Scale multiplies every channel by intensity clamped to [0, 1].
func (c Color) Scale(intensity float64) Color {
	intensity = max(0, min(1, intensity))
	scale := func(v uint8) uint8 { return uint8(float64(v) * intensity) }
	return Color{
		R:      scale(c.R),
		G:      scale(c.G),
		B:      scale(c.B),
		A:      scale(c.A),
		Format: c.Format,
	}
}

// ToNRGBA converts to a straight-alpha color. Grayscale expands to R=G=B and
// formats without an alpha channel are opaque.
func (c Color) ToNRGBA() color.NRGBA {
	switch c.Format {
	case FormatGrayscale:
		return color.NRGBA{c.R, c.R, c.R, 255}
	case FormatRGB:
		return color.NRGBA{c.R, c.G, c.B, 255}
	}
	return color.NRGBA{c.R, c.G, c.B, c.A}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.ToNRGBA().RGBA()
}
