package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// ToImage converts the surface to a standard Go image: *image.Gray for
// grayscale surfaces, *image.NRGBA otherwise. Row 0 of the surface is the
// top row of the image.
func (s *Surface) ToImage() image.Image {
	rect := s.Bounds()
	if s.format == FormatGrayscale {
		img := image.NewGray(rect)
		copy(img.Pix, s.data)
		return img
	}

	img := image.NewNRGBA(rect)
	for y := range s.height {
		for x := range s.width {
			c, _ := s.At(x, y)
			img.SetNRGBA(x, y, c.ToNRGBA())
		}
	}
	return img
}

// SurfaceFromImage copies img into a new surface of the given format.
func SurfaceFromImage(img image.Image, format Format) *Surface {
	b := img.Bounds()
	s := NewSurface(b.Dx(), b.Dy(), format)
	for y := range s.height {
		for x := range s.width {
			px := img.At(b.Min.X+x, b.Min.Y+y)
			var c Color
			if format == FormatGrayscale {
				g := color.GrayModel.Convert(px).(color.Gray)
				c = Gray(g.Y)
			} else {
				n := color.NRGBAModel.Convert(px).(color.NRGBA)
				c = RGBA(n.R, n.G, n.B, n.A)
			}
			s.Set(x, y, c)
		}
	}
	return s
}

// SavePNG saves the surface as a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.saveWith(path, func(w io.Writer) error {
		return png.Encode(w, s.ToImage())
	})
}

// SaveBMP saves the surface as a BMP file.
func (s *Surface) SaveBMP(path string) error {
	return s.saveWith(path, func(w io.Writer) error {
		return bmp.Encode(w, s.ToImage())
	})
}

// Save writes the surface choosing the codec from the file extension:
// .tga (rle applies), .png or .bmp.
func (s *Surface) Save(path string, rle bool) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".tga":
		return s.WriteTGA(path, rle)
	case ".png":
		return s.SavePNG(path)
	case ".bmp":
		return s.SaveBMP(path)
	default:
		return fmt.Errorf("save %s: unknown image extension %q", path, ext)
	}
}

func (s *Surface) saveWith(path string, encode func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %s: %w", path, cerr)
		}
		if err != nil {
			os.Remove(path)
		}
	}()
	if err := encode(f); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
