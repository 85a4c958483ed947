package models

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// Options configures Load.
type Options struct {
	// ReverseWinding flips the loader's default triangle winding.
	ReverseWinding bool

	// Strict makes OBJ parse warnings fatal.
	Strict bool

	Logger *zap.Logger
}

// Load reads a model file, choosing the loader from its extension.
func Load(path string, opts Options) (*Mesh, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".obj":
		l := &OBJLoader{ReverseWinding: opts.ReverseWinding, Strict: opts.Strict, Logger: log}
		return l.Load(path)
	case ".glb", ".gltf":
		l := &GLTFLoader{ReverseWinding: !opts.ReverseWinding, Logger: log}
		return l.Load(path)
	default:
		return nil, fmt.Errorf("%w: %q (use .obj, .glb or .gltf)", ErrUnsupportedFormat, ext)
	}
}
