package models

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/taigrr/facet/pkg/math3d"
)

const maxOBJLine = 1 << 20

// ParseOBJ reads the Wavefront OBJ subset used by facet: "v x y z" vertex
// lines and "f i[/t[/n]] ..." face lines. Every other line is ignored.
// Face indices are converted to 0-based; negative indices count back from
// the last vertex read so far.
func ParseOBJ(r io.Reader, name string) (*Mesh, error) {
	mesh := NewMesh(name)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxOBJLine)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		var err error
		switch {
		case strings.HasPrefix(line, "v "):
			err = parseVertex(mesh, line[2:])
		case strings.HasPrefix(line, "f "):
			err = parseFace(mesh, line[2:])
		}
		if err != nil {
			return nil, &ParseError{Line: lineNo, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj: %w", err)
	}

	mesh.CalculateBounds()
	return mesh, nil
}

// parseVertex appends the first three coordinates of a "v" line.
// Extra values (w, vertex colors) are ignored.
func parseVertex(mesh *Mesh, rest string) error {
	fields := strings.Fields(rest)
	if len(fields) < 3 {
		return fmt.Errorf("%w: vertex needs 3 coordinates, got %d", ErrMalformed, len(fields))
	}

	var xyz [3]float64
	for i := range 3 {
		f, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return fmt.Errorf("%w: vertex coordinate %q", ErrMalformed, fields[i])
		}
		xyz[i] = f
	}

	mesh.Vertices = append(mesh.Vertices, math3d.V3(xyz[0], xyz[1], xyz[2]))
	return nil
}

// parseFace appends a face built from the leading index of every group.
// Texture and normal indices after the first slash are discarded.
func parseFace(mesh *Mesh, rest string) error {
	groups := strings.Fields(rest)
	face := make(Face, 0, len(groups))

	for _, g := range groups {
		lead, _, _ := strings.Cut(g, "/")
		n, err := strconv.Atoi(lead)
		if err != nil || n == 0 {
			return fmt.Errorf("%w: face index %q", ErrMalformed, g)
		}

		if n > 0 {
			n--
		} else {
			n += len(mesh.Vertices)
		}
		face = append(face, n)
	}

	mesh.Faces = append(mesh.Faces, face)
	return nil
}
