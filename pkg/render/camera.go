package render

import (
	"math"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// Camera represents a 3D camera with position and orientation.
//
// Camera space is +X right, +Y up and +Z forward. Rotation holds Euler angles
// in radians: X pitches (positive looks down), Y yaws (positive turns right)
// and Z rolls. The zero value is usable; NewCamera fills in common defaults.
type Camera struct {
	position math3d.Vec3
	rotation math3d.Vec3

	// Projection parameters. No range checks are made: a FOV outside
	// (0, π) or near >= far gives a degenerate projection.
	FOV  float64 // Vertical field of view in radians
	Near float64 // Near clipping plane
	Far  float64 // Far clipping plane

	// Cached view matrix. The zero value means "needs rebuild".
	viewMatrix math3d.Mat4
	viewValid  bool
}

// NewCamera creates a new camera at the origin looking down +Z.
func NewCamera() *Camera {
	return &Camera{
		FOV:  math.Pi / 3, // 60 degrees
		Near: 0.1,
		Far:  100,
	}
}

// Position returns the camera position.
func (c *Camera) Position() math3d.Vec3 {
	return c.position
}

// SetPosition sets the camera position.
func (c *Camera) SetPosition(pos math3d.Vec3) {
	c.position = pos
	c.viewValid = false
}

// Rotation returns the camera orientation as Euler angles.
func (c *Camera) Rotation() math3d.Vec3 {
	return c.rotation
}

// SetRotation sets the camera orientation as Euler angles.
func (c *Camera) SetRotation(rot math3d.Vec3) {
	c.rotation = rot
	c.viewValid = false
}

// Translate moves the camera by d in world space.
func (c *Camera) Translate(d math3d.Vec3) {
	c.SetPosition(c.position.Add(d))
}

// Rotate adds e to the camera's Euler angles.
func (c *Camera) Rotate(e math3d.Vec3) {
	c.SetRotation(c.rotation.Add(e))
}

// SetFOV sets the field of view (in radians).
func (c *Camera) SetFOV(fov float64) {
	c.FOV = fov
}

// SetNear sets the near clipping plane.
func (c *Camera) SetNear(near float64) {
	c.Near = near
}

// SetFar sets the far clipping plane.
func (c *Camera) SetFar(far float64) {
	c.Far = far
}

// SetClipPlanes sets the near and far clipping planes.
func (c *Camera) SetClipPlanes(near, far float64) {
	c.Near = near
	c.Far = far
}

// orient maps a camera-space direction into world space.
func (c *Camera) orient(dir math3d.Vec3) math3d.Vec3 {
	return dir.RotateZ(c.rotation.Z).RotateX(c.rotation.X).RotateY(c.rotation.Y)
}

// Forward returns the world-space direction the camera looks in.
func (c *Camera) Forward() math3d.Vec3 {
	return c.orient(math3d.Forward())
}

// Right returns the world-space right direction of the camera.
func (c *Camera) Right() math3d.Vec3 {
	return c.orient(math3d.Right())
}

// Up returns the world-space up direction of the camera.
func (c *Camera) Up() math3d.Vec3 {
	return c.orient(math3d.Up())
}

// MoveForward moves the camera forward (or backward if negative).
func (c *Camera) MoveForward(distance float64) {
	c.Translate(c.Forward().Scale(distance))
}

// MoveRight moves the camera right (or left if negative).
func (c *Camera) MoveRight(distance float64) {
	c.Translate(c.Right().Scale(distance))
}

// MoveUp moves the camera along the world up axis.
func (c *Camera) MoveUp(distance float64) {
	c.Translate(math3d.Up().Scale(distance))
}

// View transforms a world-space point into camera space: translate by
// -position, then undo the orientation (-Y, -X, -Z).
func (c *Camera) View(v math3d.Vec3) math3d.Vec3 {
	return v.Sub(c.position).InverseRotateEuler(c.rotation)
}

// ViewMatrix returns the matrix form of View.
func (c *Camera) ViewMatrix() math3d.Mat4 {
	if !c.viewValid {
		c.computeViewMatrix()
		c.viewValid = true
	}
	return c.viewMatrix
}

func (c *Camera) computeViewMatrix() {
	// View = Rotation * Translation(-position)
	rot := math3d.InverseEulerYXZ(c.rotation)
	trans := math3d.Translate(c.position.Negate())
	c.viewMatrix = rot.Mul(trans)
}

// LookAt orients the camera toward a target point without roll.
func (c *Camera) LookAt(target math3d.Vec3) {
	dir := target.Sub(c.position).Normalize()
	if dir == math3d.Zero3() {
		return
	}
	c.SetRotation(math3d.V3(
		-math.Asin(dir.Y),
		math.Atan2(dir.X, dir.Z),
		0,
	))
}
