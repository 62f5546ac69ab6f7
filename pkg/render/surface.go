// Package render provides the raster surface, rasterization algorithms and
// the flat-shading pipeline of facet.
package render

import (
	"bytes"
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// Surface is a packed pixel buffer. Pixel (x, y) starts at byte
// (x + y*Width) * Format, with row 0 first in memory.
type Surface struct {
	width  int
	height int
	format Format
	data   []byte
}

// NewSurface creates a zeroed surface. It panics if format is not one of
// FormatGrayscale, FormatRGB or FormatRGBA.
func NewSurface(width, height int, format Format) *Surface {
	if !format.Valid() {
		panic(fmt.Sprintf("render: invalid surface format %v", format))
	}
	width, height = max(width, 0), max(height, 0)
	return &Surface{
		width:  width,
		height: height,
		format: format,
		data:   make([]byte, width*height*int(format)),
	}
}

// Width returns the width in pixels.
func (s *Surface) Width() int {
	return s.width
}

// Height returns the height in pixels.
func (s *Surface) Height() int {
	return s.height
}

// Format returns the bytes per pixel.
func (s *Surface) Format() Format {
	return s.format
}

// Bytes returns the underlying pixel buffer.
func (s *Surface) Bytes() []byte {
	return s.data
}

// Bounds returns the surface rectangle.
func (s *Surface) Bounds() image.Rectangle {
	return image.Rect(0, 0, s.width, s.height)
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

func (s *Surface) offset(x, y int) int {
	return (x + y*s.width) * int(s.format)
}

// At returns the color at (x, y). The second result is false when (x, y) is
// outside the surface.
func (s *Surface) At(x, y int) (Color, bool) {
	if !s.inBounds(x, y) {
		return Color{}, false
	}
	i := s.offset(x, y)
	return ColorFromBytes(s.data[i:i+int(s.format)], s.format), true
}

// Set writes the first Format channels of c at (x, y). Out-of-range
// coordinates leave the buffer untouched and return false.
func (s *Surface) Set(x, y int, c Color) bool {
	if !s.inBounds(x, y) {
		return false
	}
	ch := c.Bytes()
	i := s.offset(x, y)
	copy(s.data[i:i+int(s.format)], ch[:])
	return true
}

// Clear zeroes every pixel.
func (s *Surface) Clear() {
	clear(s.data)
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c Color) {
	if len(s.data) == 0 {
		return
	}
	ch := c.Bytes()
	bpp := int(s.format)
	copy(s.data, ch[:bpp])
	// copy-doubling
	for i := bpp; i < len(s.data); i *= 2 {
		copy(s.data[i:], s.data[:i])
	}
}

// FlipVertically reverses the row order in place.
// Rendering puts the origin at the bottom left while row 0 is stored first,
// so the finished image is flipped once before it is written.
func (s *Surface) FlipVertically() {
	stride := s.width * int(s.format)
	tmp := make([]byte, stride)
	for top, bot := 0, s.height-1; top < bot; top, bot = top+1, bot-1 {
		a := s.data[top*stride : (top+1)*stride]
		b := s.data[bot*stride : (bot+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// FlipHorizontally reverses the column order of every row in place.
func (s *Surface) FlipHorizontally() {
	bpp := int(s.format)
	tmp := make([]byte, bpp)
	for y := range s.height {
		for l, r := 0, s.width-1; l < r; l, r = l+1, r-1 {
			a := s.data[s.offset(l, y) : s.offset(l, y)+bpp]
			b := s.data[s.offset(r, y) : s.offset(r, y)+bpp]
			copy(tmp, a)
			copy(a, b)
			copy(b, tmp)
		}
	}
}

// Scale resamples the surface to width x height with nearest-neighbour
// sampling, replacing the pixel buffer. Channel bytes are copied unchanged,
// including the color of fully transparent pixels.
func (s *Surface) Scale(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("scale to %dx%d: dimensions must be positive", width, height)
	}
	if s.width == 0 || s.height == 0 {
		return fmt.Errorf("scale: empty surface")
	}

	scaled := NewSurface(width, height, s.format)
	if s.format == FormatGrayscale {
		src := &image.Gray{Pix: s.data, Stride: s.width, Rect: s.Bounds()}
		dst := &image.Gray{Pix: scaled.data, Stride: width, Rect: scaled.Bounds()}
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
		*s = *scaled
		return nil
	}

	// The raw channels are wrapped as *image.RGBA so the scaler copies
	// them without premultiplying.
	src := s.rawRGBA()
	dst := image.NewRGBA(scaled.Bounds())
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	bpp := int(s.format)
	for i := range width * height {
		copy(scaled.data[i*bpp:(i+1)*bpp], dst.Pix[i*4:i*4+bpp])
	}
	*s = *scaled
	return nil
}

// rawRGBA copies the channel bytes into a 4-byte-per-pixel image without
// any color conversion. Surfaces without alpha get A=255.
func (s *Surface) rawRGBA() *image.RGBA {
	img := image.NewRGBA(s.Bounds())
	bpp := int(s.format)
	for i := range s.width * s.height {
		px := img.Pix[i*4 : i*4+4]
		px[3] = 0xFF
		copy(px, s.data[i*bpp:(i+1)*bpp])
	}
	return img
}

// Clone returns a deep copy of the surface.
func (s *Surface) Clone() *Surface {
	return &Surface{
		width:  s.width,
		height: s.height,
		format: s.format,
		data:   bytes.Clone(s.data),
	}
}

// Equal reports whether both surfaces have the same size, format and pixels.
func (s *Surface) Equal(o *Surface) bool {
	return s.width == o.width && s.height == o.height &&
		s.format == o.format && bytes.Equal(s.data, o.data)
}
