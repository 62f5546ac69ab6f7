package render

// DrawMeshWireframe draws the closed outline of every face with Line,
// using the same projection as DrawMesh. No faces are culled.
func (r *Rasterizer) DrawMeshWireframe(mesh MeshSource, c Color) {
	w, h := r.s.Width(), r.s.Height()
	total := mesh.NFaces()
	for i := range total {
		r.Stats.Faces++
		r.drawOutline(mesh, i, w, h, c)
		if r.opts.Progress != nil {
			r.opts.Progress(i+1, total)
		}
	}
}

func (r *Rasterizer) drawOutline(mesh MeshSource, i, w, h int, c Color) {
	face := mesh.Face(i)
	if len(face) < 3 {
		r.Stats.Skipped++
		Logger().Debug("face skipped", "face", i, "reason", "fewer than 3 indices", "indices", len(face))
		return
	}
	for _, idx := range face {
		if idx < 0 || idx >= mesh.NVerts() {
			r.Stats.Skipped++
			Logger().Debug("face skipped", "face", i, "reason", "index out of range", "index", idx)
			return
		}
	}

	// Polygons wider than a triangle keep every edge.
	for j := range face {
		a := Project(mesh.Vert(face[j]), w, h)
		b := Project(mesh.Vert(face[(j+1)%len(face)]), w, h)
		Line(a, b, r.s, c)
	}
	r.Stats.Drawn++
}

// Wireframe draws the edges of every face of mesh onto s.
func Wireframe(mesh MeshSource, s *Surface, c Color) Stats {
	r := NewRasterizer(s, DefaultOptions())
	r.DrawMeshWireframe(mesh, c)
	return r.Stats
}
