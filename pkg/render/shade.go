package render

import (
	"math"

	"github.com/taigrr/facet/pkg/math3d"
)

// MeshSource is the view of a mesh the pipeline needs.
// It is implemented by models.Mesh; declaring it here keeps render free of a
// dependency on the loader.
type MeshSource interface {
	NVerts() int
	NFaces() int
	Vert(i int) math3d.Vec3
	Face(i int) []int
}

// Mode selects how faces are drawn.
type Mode int

const (
	// ModeFlat fills each lit face with one gray level.
	ModeFlat Mode = iota
	// ModeWireframe draws face edges.
	ModeWireframe
)

func (m Mode) String() string {
	switch m {
	case ModeFlat:
		return "flat"
	case ModeWireframe:
		return "wireframe"
	}
	return "unknown"
}

// Options controls a render.
type Options struct {
	Light     math3d.Vec3           // Direction light travels; normalized before use
	Mode      Mode                  // ModeFlat or ModeWireframe
	WireColor Color                 // Edge color in ModeWireframe
	Progress  func(done, total int) // Called after every face when set
}

// DefaultOptions returns flat shading lit along -Z with white wireframes.
func DefaultOptions() Options {
	return Options{
		Light:     math3d.Forward(),
		Mode:      ModeFlat,
		WireColor: ColorWhite,
	}
}

// Stats counts what happened to each face of a render.
type Stats struct {
	Faces      int // Faces visited
	Drawn      int // Faces rasterized
	Culled     int // Faces facing away from the light
	Degenerate int // Faces with a zero-length normal
	Skipped    int // Faces with fewer than 3 or out-of-range indices
}

// Project maps a model-space vertex in [-1, 1] to raster coordinates on a
// width x height surface. Y is not flipped.
func Project(v math3d.Vec3, width, height int) math3d.Vec2i {
	return math3d.V2i(
		int((v.X+1)*float64(width)/2),
		int((v.Y+1)*float64(height)/2),
	)
}

// FaceIntensity returns the Lambert term of the face v0 v1 v2 under light.
// ok is false when the face normal has zero length.
func FaceIntensity(v0, v1, v2, light math3d.Vec3) (intensity float64, ok bool) {
	n := v2.Sub(v0).Cross(v1.Sub(v0))
	if n.LenSq() == 0 {
		return 0, false
	}
	return n.Normalize().Dot(light.Normalize()), true
}

// Rasterizer draws meshes onto a surface and keeps per-face statistics.
type Rasterizer struct {
	s     *Surface
	opts  Options
	Stats Stats
}

// NewRasterizer creates a rasterizer drawing onto s.
func NewRasterizer(s *Surface, opts Options) *Rasterizer {
	return &Rasterizer{s: s, opts: opts}
}

// ResetStats clears the statistics.
func (r *Rasterizer) ResetStats() {
	r.Stats = Stats{}
}

// faceVerts fetches the first three vertices of face i.
func (r *Rasterizer) faceVerts(mesh MeshSource, i int) (v [3]math3d.Vec3, ok bool) {
	face := mesh.Face(i)
	if len(face) < 3 {
		Logger().Debug("face skipped", "face", i, "reason", "fewer than 3 indices", "indices", len(face))
		return v, false
	}
	for j := range 3 {
		idx := face[j]
		if idx < 0 || idx >= mesh.NVerts() {
			Logger().Debug("face skipped", "face", i, "reason", "index out of range", "index", idx)
			return v, false
		}
		v[j] = mesh.Vert(idx)
	}
	return v, true
}

// DrawMesh flat-shades every face of mesh in order. Later faces overwrite
// earlier ones where they overlap.
func (r *Rasterizer) DrawMesh(mesh MeshSource) {
	w, h := r.s.Width(), r.s.Height()
	total := mesh.NFaces()
	for i := range total {
		r.Stats.Faces++
		r.drawFace(mesh, i, w, h)
		if r.opts.Progress != nil {
			r.opts.Progress(i+1, total)
		}
	}
}

func (r *Rasterizer) drawFace(mesh MeshSource, i, w, h int) {
	v, ok := r.faceVerts(mesh, i)
	if !ok {
		r.Stats.Skipped++
		return
	}

	intensity, ok := FaceIntensity(v[0], v[1], v[2], r.opts.Light)
	if !ok {
		r.Stats.Degenerate++
		Logger().Debug("face skipped", "face", i, "reason", "degenerate")
		return
	}
	if intensity <= 0 {
		r.Stats.Culled++
		return
	}

	level := uint8(math.Min(intensity, 1) * 255)
	Triangle(
		Project(v[0], w, h),
		Project(v[1], w, h),
		Project(v[2], w, h),
		r.s, RGBA(level, level, level, 255),
	)
	r.Stats.Drawn++
}

// Render draws mesh onto s according to opts and returns the face
// statistics.
func Render(mesh MeshSource, s *Surface, opts Options) Stats {
	r := NewRasterizer(s, opts)
	switch opts.Mode {
	case ModeWireframe:
		r.DrawMeshWireframe(mesh, opts.WireColor)
	default:
		r.DrawMesh(mesh)
	}
	Logger().Info("render complete",
		"mode", opts.Mode,
		"faces", r.Stats.Faces,
		"drawn", r.Stats.Drawn,
		"culled", r.Stats.Culled,
		"degenerate", r.Stats.Degenerate,
		"skipped", r.Stats.Skipped,
	)
	return r.Stats
}
