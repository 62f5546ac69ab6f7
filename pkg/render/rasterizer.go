package render

import (
	"github.com/taigrr/facet/pkg/math3d"
)

// Line draws a segment from p0 to p1 inclusive using Bresenham's algorithm.
// Steep lines are drawn with x and y swapped so the loop always walks the
// major axis; pixels outside the surface are dropped.
func Line(p0, p1 math3d.Vec2i, s *Surface, c Color) {
	steep := false
	if abs(p0.X-p1.X) < abs(p0.Y-p1.Y) {
		p0, p1 = p0.Transpose(), p1.Transpose()
		steep = true
	}
	if p0.X > p1.X {
		p0, p1 = p1, p0
	}

	dx := p1.X - p0.X
	dy := abs(p1.Y - p0.Y)
	ystep := -1
	if p1.Y > p0.Y {
		ystep = 1
	}

	// error2 is the fractional error scaled by 2*dx; dx == 0 only when both
	// endpoints coincide, in which case the loop runs once.
	error2 := 0
	y := p0.Y
	for x := p0.X; x <= p1.X; x++ {
		if steep {
			s.Set(y, x, c)
		} else {
			s.Set(x, y, c)
		}
		error2 += 2 * dy
		if error2 > dx {
			y += ystep
			error2 -= 2 * dx
		}
	}
}

// Barycentric returns the barycentric coordinates of p with respect to the
// triangle abc, as weights for a, b and c. ok is false for a degenerate
// triangle whose doubled area is below one pixel.
func Barycentric(a, b, c, p math3d.Vec2i) (bc math3d.Vec3, ok bool) {
	u := math3d.V3(float64(c.X-a.X), float64(b.X-a.X), float64(a.X-p.X)).
		Cross(math3d.V3(float64(c.Y-a.Y), float64(b.Y-a.Y), float64(a.Y-p.Y)))
	if abs64(u.Z) < 1 {
		return math3d.Vec3{}, false
	}
	return math3d.V3(1-(u.X+u.Y)/u.Z, u.Y/u.Z, u.X/u.Z), true
}

// Triangle fills the pixels whose coordinates lie inside or on the edge of
// the triangle p0 p1 p2. Degenerate triangles draw nothing.
func Triangle(p0, p1, p2 math3d.Vec2i, s *Surface, c Color) {
	if s.width == 0 || s.height == 0 {
		return
	}
	if _, ok := Barycentric(p0, p1, p2, p0); !ok {
		return
	}

	limit := [2]int{s.width - 1, s.height - 1}
	lo, hi := limit, [2]int{}
	for _, p := range [3]math3d.Vec2i{p0, p1, p2} {
		for axis := range 2 {
			lo[axis] = max(0, min(lo[axis], p.At(axis)))
			hi[axis] = min(limit[axis], max(hi[axis], p.At(axis)))
		}
	}

	for y := lo[1]; y <= hi[1]; y++ {
		for x := lo[0]; x <= hi[0]; x++ {
			bc, _ := Barycentric(p0, p1, p2, math3d.V2i(x, y))
			if bc.X < 0 || bc.Y < 0 || bc.Z < 0 {
				continue
			}
			s.Set(x, y, c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func abs64(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
