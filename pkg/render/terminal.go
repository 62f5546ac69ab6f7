package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// Draw converts the surface to terminal cells and draws them on the screen.
// Each cell covers two surface rows: ▀ (upper half block) with fg=top pixel
// and bg=bottom pixel. Surface pixel (0, 0) lands on area.Min.
func (s *Surface) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= s.height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= s.width {
				break
			}
			top, _ := s.At(x, topY)
			bot, _ := s.At(x, botY)

			cell := &uv.Cell{
				Content: "▀",
				Width:   1,
				Style: uv.Style{
					Fg: cellColor(top),
					Bg: cellColor(bot),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// cellColor converts a pixel to a terminal color.
func cellColor(c Color) color.Color {
	n := c.ToNRGBA()
	if n.A == 0 {
		return nil // Transparent = no color
	}
	return n
}

// Preview renders the surface as a string of styled half-block cells at most
// cols columns wide. The surface is not modified; a downscaled copy is used
// when it is wider than cols. Rows are emitted in storage order, so callers
// flip a bottom-left rendered surface first.
func Preview(s *Surface, cols int) string {
	if s.Width() == 0 || s.Height() == 0 || cols <= 0 {
		return ""
	}
	src := s
	if s.Width() > cols {
		h := max(1, s.Height()*cols/s.Width())
		src = s.Clone()
		if err := src.Scale(cols, h); err != nil {
			return ""
		}
	}

	rows := (src.Height() + 1) / 2
	scr := uv.NewScreenBuffer(src.Width(), rows)
	src.Draw(scr, scr.Bounds())
	return scr.Render()
}
