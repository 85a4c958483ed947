package render

import "github.com/taigrr/glyph3d/pkg/math3d"

// MeshSource is the read-only geometry a renderer draws. It is satisfied by
// *models.Mesh; keeping it here avoids a dependency on the models package.
type MeshSource interface {
	VertexCount() int
	TriangleCount() int
	Vertex(i int) math3d.Vec3
	Face(i int) [3]int
	Bounds() (min, max math3d.Vec3)
}

// MeshInstance places a shared mesh in the world. The instance never owns
// the mesh; many instances may reference the same one.
type MeshInstance struct {
	Mesh     MeshSource
	Position math3d.Vec3
	Rotation math3d.Vec3 // Euler angles in radians, applied X, Y, Z
}

// NewMeshInstance creates an instance of mesh at the origin.
func NewMeshInstance(mesh MeshSource) *MeshInstance {
	return &MeshInstance{Mesh: mesh}
}

// ApplyModel transforms a local-space vertex into world space. The vertex is
// rotated about the instance's local origin, then translated.
func (inst *MeshInstance) ApplyModel(v math3d.Vec3) math3d.Vec3 {
	return v.RotateEuler(inst.Rotation).Add(inst.Position)
}

// ModelMatrix returns the matrix form of ApplyModel.
func (inst *MeshInstance) ModelMatrix() math3d.Mat4 {
	return math3d.Translate(inst.Position).Mul(math3d.EulerXYZ(inst.Rotation))
}

// Translate moves the instance by d.
func (inst *MeshInstance) Translate(d math3d.Vec3) {
	inst.Position = inst.Position.Add(d)
}

// Rotate adds e to the instance's Euler angles.
func (inst *MeshInstance) Rotate(e math3d.Vec3) {
	inst.Rotation = inst.Rotation.Add(e)
}

// LocalBounds returns the mesh's local-space AABB.
func (inst *MeshInstance) LocalBounds() AABB {
	lo, hi := inst.Mesh.Bounds()
	return NewAABB(lo, hi)
}
