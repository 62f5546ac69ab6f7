// Package models provides 3D model loading and representation for facet.
package models

import (
	"fmt"

	"github.com/taigrr/facet/pkg/math3d"
)

// Face is an ordered list of 0-based vertex indices. Only the first three are
// used for rasterization; the loader keeps whatever the source file listed.
type Face []int

// Mesh holds the vertex positions and faces of a loaded model.
// It is built once by a loader and treated as read-only by the renderer.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Faces    []Face

	// Bounding box (calculated on load)
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{
		Name:     name,
		Vertices: make([]math3d.Vec3, 0),
		Faces:    make([]Face, 0),
	}
}

// NVerts returns the number of vertices.
func (m *Mesh) NVerts() int {
	return len(m.Vertices)
}

// NFaces returns the number of faces.
func (m *Mesh) NFaces() int {
	return len(m.Faces)
}

// Vert returns the position of vertex i.
func (m *Mesh) Vert(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// Face returns the vertex indices of face i.
func (m *Mesh) Face(i int) []int {
	return m.Faces[i]
}

// CalculateBounds computes the axis-aligned bounding box.
func (m *Mesh) CalculateBounds() {
	if len(m.Vertices) == 0 {
		m.BoundsMin, m.BoundsMax = math3d.Zero3(), math3d.Zero3()
		return
	}

	m.BoundsMin = m.Vertices[0]
	m.BoundsMax = m.Vertices[0]

	for _, v := range m.Vertices[1:] {
		m.BoundsMin = m.BoundsMin.Min(v)
		m.BoundsMax = m.BoundsMax.Max(v)
	}
}

// Center returns the center of the bounding box.
func (m *Mesh) Center() math3d.Vec3 {
	return m.BoundsMin.Add(m.BoundsMax).Scale(0.5)
}

// Size returns the dimensions of the bounding box.
func (m *Mesh) Size() math3d.Vec3 {
	return m.BoundsMax.Sub(m.BoundsMin)
}

// Transform applies a transformation matrix to all vertices.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Fit centers the mesh on the origin and scales it uniformly so its largest
// extent spans [-1, 1], the range the screen mapping expects.
// A mesh with no extent is only centered.
func (m *Mesh) Fit() {
	m.CalculateBounds()
	center := m.Center()
	transform := math3d.Translate(center.Negate())

	if maxDim := m.Size().MaxComponent(); maxDim > 0 {
		transform = math3d.ScaleUniform(2 / maxDim).Mul(transform)
	}
	m.Transform(transform)
}

// Validate checks that every face index refers to an existing vertex.
func (m *Mesh) Validate() error {
	n := len(m.Vertices)
	for fi, f := range m.Faces {
		for _, idx := range f {
			if idx < 0 || idx >= n {
				return fmt.Errorf("face %d: vertex %d of %d: %w", fi, idx, n, ErrIndexRange)
			}
		}
	}
	return nil
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Faces:     make([]Face, len(m.Faces)),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	for i, f := range m.Faces {
		clone.Faces[i] = append(Face(nil), f...)
	}
	return clone
}
