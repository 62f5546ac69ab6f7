package models

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Load reads a model file, choosing the loader from the file extension,
// and validates the face indices. A missing file reports ErrNotFound; an
// existing file without geometry yields an empty mesh and no error.
func Load(path string) (*Mesh, error) {
	var (
		mesh *Mesh
		err  error
	)

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		mesh, err = LoadOBJ(path)
	case ".glb", ".gltf":
		mesh, err = LoadGLB(path)
	default:
		return nil, fmt.Errorf("load %s: %w: %q", path, ErrUnsupportedFormat, ext)
	}
	if err != nil {
		return nil, err
	}

	if err := mesh.Validate(); err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	Logger().Info("model loaded",
		"path", path, "vertices", mesh.NVerts(), "faces", mesh.NFaces())
	return mesh, nil
}

// LoadOBJ opens and parses a Wavefront OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, openError(path, err)
	}
	defer f.Close()

	mesh, err := ParseOBJ(f, filepath.Base(path))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return mesh, nil
}

func openError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("open %s: %w: %w", path, ErrNotFound, err)
	}
	return fmt.Errorf("open %s: %w", path, err)
}
