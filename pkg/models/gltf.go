package models

import (
	"fmt"
	"path/filepath"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// GLTFLoader loads the triangle geometry of GLTF/GLB files into a Mesh.
// Materials, normals and texture coordinates are not read.
type GLTFLoader struct {
	// ReverseWinding swaps the second and third index of every triangle.
	// GLTF front faces are counter-clockwise in a right-handed frame, which
	// this renderer sees mirrored, so it defaults to true.
	ReverseWinding bool

	Logger *zap.Logger
}

// NewGLTFLoader creates a new GLTF loader with default options.
func NewGLTFLoader() *GLTFLoader {
	return &GLTFLoader{
		ReverseWinding: true,
		Logger:         zap.NewNop(),
	}
}

// LoadGLB loads a binary GLTF (.glb) file.
func LoadGLB(path string) (*Mesh, error) {
	return NewGLTFLoader().Load(path)
}

// Load loads a GLTF or GLB file and returns a Mesh.
func (l *GLTFLoader) Load(path string) (*Mesh, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrFileOpen, path, err)
	}

	mesh := NewMesh(filepath.Base(path))

	// Process all meshes in the document
	for _, m := range doc.Meshes {
		if err := l.processMesh(doc, m, mesh); err != nil {
			return nil, fmt.Errorf("process mesh %q: %w", m.Name, err)
		}
	}

	mesh.CalculateBounds()

	log := l.Logger
	if log == nil {
		log = zap.NewNop()
	}
	log.Debug("mesh loaded",
		zap.String("mesh", mesh.Name),
		zap.Int("vertices", mesh.VertexCount()),
		zap.Int("triangles", mesh.TriangleCount()),
	)

	return mesh, nil
}

// processMesh extracts geometry from a GLTF mesh.
func (l *GLTFLoader) processMesh(doc *gltf.Document, m *gltf.Mesh, mesh *Mesh) error {
	for _, prim := range m.Primitives {
		if prim.Mode != gltf.PrimitiveTriangles && prim.Mode != 0 {
			// Skip non-triangle primitives (lines, points, etc)
			continue
		}

		posIdx, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		if posIdx < 0 || posIdx >= len(doc.Accessors) {
			return fmt.Errorf("position accessor %d: %w", posIdx, ErrIndexRange)
		}

		positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
		if err != nil {
			return fmt.Errorf("read positions: %w", err)
		}

		// Base vertex index for this primitive
		base := len(mesh.Vertices)
		for _, p := range positions {
			mesh.Vertices = append(mesh.Vertices, math3d.V3(float64(p[0]), float64(p[1]), float64(p[2])))
		}

		var indices []uint32
		if prim.Indices != nil {
			if *prim.Indices < 0 || *prim.Indices >= len(doc.Accessors) {
				return fmt.Errorf("index accessor %d: %w", *prim.Indices, ErrIndexRange)
			}
			indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
			if err != nil {
				return fmt.Errorf("read indices: %w", err)
			}
		} else {
			// No indices, assume sequential triangles
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		for i := 0; i+2 < len(indices); i += 3 {
			a, b, c := int(indices[i]), int(indices[i+1]), int(indices[i+2])
			if max(a, b, c) >= len(positions) {
				return fmt.Errorf("triangle %d: %w", i/3, ErrIndexRange)
			}
			if l.ReverseWinding {
				b, c = c, b
			}
			mesh.Indices = append(mesh.Indices, base+a, base+b, base+c)
		}
	}

	return nil
}
