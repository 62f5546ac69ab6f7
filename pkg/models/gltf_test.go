package models

import (
	"errors"
	"testing"
)

func TestLoadGLBInvalidPath(t *testing.T) {
	_, err := LoadGLB("/nonexistent/path.glb")
	if err == nil {
		t.Fatal("Expected error for nonexistent file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestGLTFLoaderCreation(t *testing.T) {
	loader := NewGLTFLoader()
	if loader == nil {
		t.Fatal("NewGLTFLoader returned nil")
	}
	if loader.MeshName != "" {
		t.Error("MeshName should default to loading every mesh")
	}
}

func TestReadFloat32(t *testing.T) {
	// 1.5 as little-endian IEEE 754
	b := []byte{0x00, 0x00, 0xc0, 0x3f}
	if got := readFloat32(b); got != 1.5 {
		t.Errorf("readFloat32 = %v, want 1.5", got)
	}
}
