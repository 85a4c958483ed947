package models

import (
	"errors"
	"testing"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

func triangleMesh() *Mesh {
	m := NewMesh("tri")
	m.Vertices = []math3d.Vec3{
		math3d.V3(2, 2, 2),
		math3d.V3(6, 2, 2),
		math3d.V3(2, 4, 2),
	}
	m.Indices = []int{0, 1, 2}
	m.CalculateBounds()
	return m
}

func TestMeshBoundsIncludeOrigin(t *testing.T) {
	m := triangleMesh()

	lo, hi := m.Bounds()
	if lo != math3d.Zero3() {
		t.Errorf("min = %v, want origin", lo)
	}
	if hi != math3d.V3(6, 4, 2) {
		t.Errorf("max = %v, want (6, 4, 2)", hi)
	}
	if got := m.Center(); got != math3d.V3(3, 2, 1) {
		t.Errorf("Center() = %v, want (3, 2, 1)", got)
	}
	if got := m.Size(); got != math3d.V3(6, 4, 2) {
		t.Errorf("Size() = %v, want (6, 4, 2)", got)
	}
}

func TestMeshFit(t *testing.T) {
	m := triangleMesh()
	m.Fit(2)

	// Extents were 4 x 2 x 0; the largest becomes 2 and the box is centered.
	want := []math3d.Vec3{
		math3d.V3(-1, -0.5, 0),
		math3d.V3(1, -0.5, 0),
		math3d.V3(-1, 0.5, 0),
	}
	for i, w := range want {
		if !m.Vertices[i].ApproxEqual(w, 1e-12) {
			t.Errorf("vertex %d = %v, want %v", i, m.Vertices[i], w)
		}
	}

	lo, hi := m.Bounds()
	if lo != math3d.V3(-1, -0.5, 0) || hi != math3d.V3(1, 0.5, 0) {
		t.Errorf("bounds after Fit = %v, %v", lo, hi)
	}
}

func TestMeshFitDegenerate(t *testing.T) {
	m := NewMesh("point")
	m.Vertices = []math3d.Vec3{math3d.V3(3, 3, 3), math3d.V3(3, 3, 3)}
	m.Fit(1)
	if m.Vertices[0] != math3d.V3(3, 3, 3) {
		t.Errorf("Fit moved a single-point mesh to %v", m.Vertices[0])
	}

	empty := NewMesh("empty")
	empty.Fit(1)
	if empty.VertexCount() != 0 {
		t.Error("Fit added vertices to an empty mesh")
	}
}

func TestMeshTransform(t *testing.T) {
	m := triangleMesh()
	m.Transform(math3d.Translate(math3d.V3(-10, 0, 0)))

	if got := m.Vertex(1); got != math3d.V3(-4, 2, 2) {
		t.Errorf("Vertex(1) = %v, want (-4, 2, 2)", got)
	}
	lo, hi := m.Bounds()
	if lo != math3d.V3(-8, 0, 0) || hi != math3d.V3(0, 4, 2) {
		t.Errorf("bounds after Transform = %v, %v", lo, hi)
	}
}

func TestMeshClone(t *testing.T) {
	m := triangleMesh()
	m.Warnings = []error{&ParseError{Line: 1, Err: ErrMalformedVertex}}

	c := m.Clone()
	c.Vertices[0] = math3d.V3(9, 9, 9)
	c.Indices[0] = 2

	if m.Vertices[0] != math3d.V3(2, 2, 2) {
		t.Error("Clone shares the vertex buffer")
	}
	if m.Indices[0] != 0 {
		t.Error("Clone shares the index buffer")
	}
	if len(c.Warnings) != 1 || c.Name != m.Name {
		t.Errorf("Clone lost metadata: %+v", c)
	}

	var nilMesh *Mesh
	if nilMesh.Clone() != nil {
		t.Error("nil Clone returned a mesh")
	}
}

func TestMeshFree(t *testing.T) {
	m := triangleMesh()
	m.Free()

	if m.VertexCount() != 0 || m.TriangleCount() != 0 {
		t.Errorf("freed mesh still has %d vertices, %d triangles", m.VertexCount(), m.TriangleCount())
	}
	if lo, hi := m.Bounds(); lo != math3d.Zero3() || hi != math3d.Zero3() {
		t.Errorf("freed bounds = %v, %v", lo, hi)
	}

	// Second free and nil free are no-ops.
	m.Free()
	var nilMesh *Mesh
	nilMesh.Free()

	if nilMesh.TriangleCount() != 0 || nilMesh.Err() != nil {
		t.Error("nil mesh reports content")
	}
}

func TestMeshErr(t *testing.T) {
	m := triangleMesh()
	if m.Err() != nil {
		t.Errorf("Err() = %v, want nil", m.Err())
	}

	m.Warnings = []error{
		&ParseError{Line: 2, Text: "v 1", Err: ErrMalformedVertex},
		&ParseError{Line: 5, Text: "f 1 2 9", Err: ErrIndexRange},
	}
	err := m.Err()
	if !errors.Is(err, ErrMalformedVertex) || !errors.Is(err, ErrIndexRange) {
		t.Errorf("Err() = %v, want both sentinels", err)
	}
}

func TestParseErrorMessage(t *testing.T) {
	err := &ParseError{Line: 7, Text: "f 1 2", Err: ErrFaceArity}
	want := `line 7: ` + ErrFaceArity.Error() + `: "f 1 2"`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
