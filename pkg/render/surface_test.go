package render

import (
	"testing"
)

func TestNewSurface(t *testing.T) {
	for _, f := range []Format{FormatGrayscale, FormatRGB, FormatRGBA} {
		t.Run(f.String(), func(t *testing.T) {
			s := NewSurface(7, 5, f)
			if s.Width() != 7 || s.Height() != 5 || s.Format() != f {
				t.Fatalf("got %dx%d %v", s.Width(), s.Height(), s.Format())
			}
			if len(s.Bytes()) != 7*5*int(f) {
				t.Errorf("buffer has %d bytes, want %d", len(s.Bytes()), 7*5*int(f))
			}
		})
	}

	t.Run("invalid format panics", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Error("NewSurface with format 2 did not panic")
			}
		}()
		NewSurface(1, 1, Format(2))
	})
}

func TestSurfaceSetAt(t *testing.T) {
	s := NewSurface(4, 3, FormatRGB)

	if !s.Set(1, 2, RGBA(10, 20, 30, 40)) {
		t.Fatal("Set in bounds returned false")
	}
	c, ok := s.At(1, 2)
	if !ok {
		t.Fatal("At in bounds returned false")
	}
	if c.R != 10 || c.G != 20 || c.B != 30 || c.A != 0 || c.Format != FormatRGB {
		t.Errorf("At(1, 2) = %+v", c)
	}

	// Pixel (1, 2) starts at (1 + 2*4) * 3.
	if got := s.Bytes()[27:30]; got[0] != 10 || got[1] != 20 || got[2] != 30 {
		t.Errorf("buffer bytes = %v, want [10 20 30]", got)
	}

	before := append([]byte(nil), s.Bytes()...)
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 3}, {100, 100}} {
		if s.Set(p[0], p[1], ColorWhite) {
			t.Errorf("Set(%d, %d) out of bounds returned true", p[0], p[1])
		}
		if _, ok := s.At(p[0], p[1]); ok {
			t.Errorf("At(%d, %d) out of bounds returned true", p[0], p[1])
		}
	}
	if string(before) != string(s.Bytes()) {
		t.Error("out of bounds Set modified the buffer")
	}
}

func TestSurfaceGrayscaleStoresRed(t *testing.T) {
	s := NewSurface(2, 2, FormatGrayscale)
	s.Set(1, 1, RGB(77, 200, 200))
	if got := s.Bytes()[3]; got != 77 {
		t.Errorf("grayscale byte = %d, want 77", got)
	}
}

func TestSurfaceFillClear(t *testing.T) {
	s := NewSurface(5, 3, FormatRGBA)
	s.Fill(RGBA(1, 2, 3, 4))
	for y := range 3 {
		for x := range 5 {
			if c, _ := s.At(x, y); c != RGBA(1, 2, 3, 4) {
				t.Fatalf("At(%d, %d) = %+v after Fill", x, y, c)
			}
		}
	}

	s.Clear()
	for i, b := range s.Bytes() {
		if b != 0 {
			t.Fatalf("byte %d = %d after Clear", i, b)
		}
	}
}

// patterned returns a surface where every byte differs from its neighbours.
func patterned(w, h int, f Format) *Surface {
	s := NewSurface(w, h, f)
	for i := range s.Bytes() {
		s.Bytes()[i] = byte(i*7 + 3)
	}
	return s
}

func TestFlipVertically(t *testing.T) {
	for _, h := range []int{1, 4, 5} {
		s := patterned(3, h, FormatRGB)
		orig := s.Clone()

		s.FlipVertically()
		for y := range h {
			for x := range 3 {
				got, _ := s.At(x, y)
				want, _ := orig.At(x, h-1-y)
				if got != want {
					t.Fatalf("height %d: At(%d, %d) = %+v, want %+v", h, x, y, got, want)
				}
			}
		}

		s.FlipVertically()
		if !s.Equal(orig) {
			t.Errorf("height %d: flipping twice did not restore the surface", h)
		}
	}
}

func TestFlipHorizontally(t *testing.T) {
	s := patterned(5, 2, FormatRGBA)
	orig := s.Clone()

	s.FlipHorizontally()
	for y := range 2 {
		for x := range 5 {
			got, _ := s.At(x, y)
			want, _ := orig.At(4-x, y)
			if got != want {
				t.Fatalf("At(%d, %d) = %+v, want %+v", x, y, got, want)
			}
		}
	}

	s.FlipHorizontally()
	if !s.Equal(orig) {
		t.Error("flipping twice did not restore the surface")
	}
}

func TestSurfaceCloneEqual(t *testing.T) {
	s := patterned(4, 4, FormatGrayscale)
	c := s.Clone()
	if !c.Equal(s) {
		t.Fatal("clone not equal to original")
	}
	c.Set(0, 0, Gray(0xFF))
	if c.Equal(s) {
		t.Error("modifying the clone changed the original")
	}
	if s.Equal(NewSurface(4, 4, FormatRGB)) {
		t.Error("surfaces with different formats compared equal")
	}
}

func TestSurfaceScale(t *testing.T) {
	s := NewSurface(2, 1, FormatRGB)
	s.Set(0, 0, ColorRed)
	s.Set(1, 0, ColorBlue)

	if err := s.Scale(4, 2); err != nil {
		t.Fatalf("Scale: %v", err)
	}
	if s.Width() != 4 || s.Height() != 2 || s.Format() != FormatRGB {
		t.Fatalf("scaled to %dx%d %v", s.Width(), s.Height(), s.Format())
	}
	for y := range 2 {
		for x := range 4 {
			c, _ := s.At(x, y)
			wantRed := x < 2
			if (c.R == 255) != wantRed || (c.B == 255) == wantRed {
				t.Errorf("At(%d, %d) = %+v", x, y, c)
			}
		}
	}

	t.Run("grayscale", func(t *testing.T) {
		g := NewSurface(1, 1, FormatGrayscale)
		g.Set(0, 0, Gray(42))
		if err := g.Scale(3, 3); err != nil {
			t.Fatalf("Scale: %v", err)
		}
		if c, _ := g.At(2, 2); c.R != 42 {
			t.Errorf("At(2, 2) = %d, want 42", c.R)
		}
	})

	t.Run("rgba copies channels exactly", func(t *testing.T) {
		a := NewSurface(2, 1, FormatRGBA)
		a.Set(0, 0, RGBA(10, 20, 30, 0))
		a.Set(1, 0, RGBA(101, 77, 3, 128))
		if err := a.Scale(4, 3); err != nil {
			t.Fatalf("Scale: %v", err)
		}
		for y := range 3 {
			for x := range 4 {
				want := RGBA(10, 20, 30, 0)
				if x >= 2 {
					want = RGBA(101, 77, 3, 128)
				}
				if c, _ := a.At(x, y); c != want {
					t.Errorf("At(%d, %d) = %+v, want %+v", x, y, c, want)
				}
			}
		}
	})

	t.Run("invalid size", func(t *testing.T) {
		if err := NewSurface(2, 2, FormatRGB).Scale(0, 5); err == nil {
			t.Error("Scale to zero width succeeded")
		}
	})
}

func TestColorScale(t *testing.T) {
	base := RGBA(200, 100, 50, 255)

	tests := []struct {
		name      string
		intensity float64
		expected  Color
	}{
		{"half", 0.5, RGBA(100, 50, 25, 127)},
		{"identity", 1, base},
		{"clamped high", 3, base},
		{"zero", 0, RGBA(0, 0, 0, 0)},
		{"clamped low", -2, RGBA(0, 0, 0, 0)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := base.Scale(tc.intensity); got != tc.expected {
				t.Errorf("Scale(%v) = %+v, want %+v", tc.intensity, got, tc.expected)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in       string
		expected Format
		wantErr  bool
	}{
		{"grayscale", FormatGrayscale, false},
		{"gray", FormatGrayscale, false},
		{"rgb", FormatRGB, false},
		{"rgba", FormatRGBA, false},
		{"cmyk", 0, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			got, err := ParseFormat(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v", tc.in, err)
			}
			if got != tc.expected {
				t.Errorf("ParseFormat(%q) = %v, want %v", tc.in, got, tc.expected)
			}
		})
	}
}

func TestColorFromBytes(t *testing.T) {
	c := ColorFromBytes([]byte{9, 8, 7, 6, 5}, FormatRGB)
	if c != (Color{R: 9, G: 8, B: 7, Format: FormatRGB}) {
		t.Errorf("ColorFromBytes = %+v", c)
	}
	if n := c.ToNRGBA(); n.A != 255 {
		t.Errorf("RGB color alpha = %d, want opaque", n.A)
	}
	g := ColorFromBytes([]byte{40}, FormatGrayscale).ToNRGBA()
	if g.R != 40 || g.G != 40 || g.B != 40 || g.A != 255 {
		t.Errorf("gray ToNRGBA = %+v", g)
	}
}
