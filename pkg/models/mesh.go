// Package models provides 3D mesh loading and representation.
package models

import (
	"math"

	"go.uber.org/multierr"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// Mesh is an immutable-after-load triangle mesh. Every three entries of
// Indices form one triangle; all indices are valid positions in Vertices.
// A mesh is shared by any number of render.MeshInstance values and never
// owned by them.
type Mesh struct {
	Name     string
	Vertices []math3d.Vec3
	Indices  []int

	// Bounding box in local space. It always contains the local origin.
	BoundsMin math3d.Vec3
	BoundsMax math3d.Vec3

	// Warnings holds the recoverable problems found while loading.
	Warnings []error
}

// NewMesh creates an empty mesh.
func NewMesh(name string) *Mesh {
	return &Mesh{Name: name}
}

// CalculateBounds computes the axis-aligned bounding box. The box starts at
// the origin, so it contains the pivot the mesh rotates about even when all
// vertices lie to one side of it.
func (m *Mesh) CalculateBounds() {
	m.BoundsMin = math3d.Zero3()
	m.BoundsMax = math3d.Zero3()

	for _, v := range m.Vertices {
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

// Bounds returns the local bounding box.
func (m *Mesh) Bounds() (min, max math3d.Vec3) {
	if m == nil {
		return
	}
	return m.BoundsMin, m.BoundsMax
}

// VertexCount returns the number of vertices.
func (m *Mesh) VertexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Vertices)
}

// IndexCount returns the number of indices.
func (m *Mesh) IndexCount() int {
	if m == nil {
		return 0
	}
	return len(m.Indices)
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return m.IndexCount() / 3
}

// Vertex returns vertex i.
func (m *Mesh) Vertex(i int) math3d.Vec3 {
	return m.Vertices[i]
}

// Face returns the vertex indices of triangle i.
func (m *Mesh) Face(i int) [3]int {
	return [3]int{m.Indices[3*i], m.Indices[3*i+1], m.Indices[3*i+2]}
}

// Err returns the load warnings combined into one error, or nil.
func (m *Mesh) Err() error {
	if m == nil {
		return nil
	}
	return multierr.Combine(m.Warnings...)
}

// Transform applies a transformation matrix to all vertices and recomputes
// the bounds.
func (m *Mesh) Transform(mat math3d.Mat4) {
	for i := range m.Vertices {
		m.Vertices[i] = mat.MulVec3(m.Vertices[i])
	}
	m.CalculateBounds()
}

// Fit centers the vertices on the origin and scales them uniformly so the
// largest extent equals size. Empty or flat-to-a-point meshes are left alone.
func (m *Mesh) Fit(size float64) {
	if len(m.Vertices) == 0 {
		return
	}

	lo, hi := m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		lo = lo.Min(v)
		hi = hi.Max(v)
	}

	ext := hi.Sub(lo)
	maxDim := math.Max(ext.X, math.Max(ext.Y, ext.Z))
	if maxDim <= 0 {
		return
	}

	center := lo.Add(hi).Scale(0.5)
	m.Transform(math3d.Scale(size / maxDim).Mul(math3d.Translate(center.Negate())))
}

// Clone creates a deep copy of the mesh.
func (m *Mesh) Clone() *Mesh {
	if m == nil {
		return nil
	}
	clone := &Mesh{
		Name:      m.Name,
		Vertices:  make([]math3d.Vec3, len(m.Vertices)),
		Indices:   make([]int, len(m.Indices)),
		Warnings:  append([]error(nil), m.Warnings...),
		BoundsMin: m.BoundsMin,
		BoundsMax: m.BoundsMax,
	}
	copy(clone.Vertices, m.Vertices)
	copy(clone.Indices, m.Indices)
	return clone
}

// Free releases the mesh buffers. Instances referencing the mesh must be
// retired first; a freed mesh draws nothing. Free is safe to call more than
// once and on a nil mesh.
func (m *Mesh) Free() {
	if m == nil {
		return
	}
	m.Vertices = nil
	m.Indices = nil
	m.Warnings = nil
	m.BoundsMin = math3d.Zero3()
	m.BoundsMax = math3d.Zero3()
}
