// Package render turns mesh instances into shaded, character-grid triangles.
package render

import (
	"math"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

// Frustum holds the six outward plane normals of the camera-space view volume.
// The side planes pass through the camera origin, so a normal alone defines
// each of them; near and far are axis-aligned at z = Near and z = Far.
type Frustum struct {
	Planes [6]math3d.Vec3
	Near   float64
	Far    float64
}

// Frustum plane indices.
const (
	FrustumTop = iota
	FrustumBottom
	FrustumLeft
	FrustumRight
	FrustumNear
	FrustumFar
)

// NewFrustum builds the frustum for a vertical FOV (radians) and the
// viewport's aspect ratio (see Viewport.AspectRatio).
func NewFrustum(fov, aspect, near, far float64) Frustum {
	// Half viewport size at z = 1
	hh := math.Tan(fov * 0.5)
	hw := hh / aspect

	// Viewport corners
	nw := math3d.V3(-hw, hh, 1)
	ne := math3d.V3(hw, hh, 1)
	sw := math3d.V3(-hw, -hh, 1)
	se := math3d.V3(hw, -hh, 1)

	var f Frustum
	f.Planes[FrustumTop] = nw.Cross(ne).Normalize()
	f.Planes[FrustumBottom] = se.Cross(sw).Normalize()
	f.Planes[FrustumLeft] = sw.Cross(nw).Normalize()
	f.Planes[FrustumRight] = ne.Cross(se).Normalize()
	f.Planes[FrustumNear] = math3d.V3(0, 0, -1)
	f.Planes[FrustumFar] = math3d.V3(0, 0, 1)
	f.Near = near
	f.Far = far
	return f
}

// CullAABB reports whether a camera-space box lies entirely outside the
// frustum. The test is conservative: boxes near a frustum edge may be kept
// even though no part of them is visible, but a visible box is never culled.
func (f Frustum) CullAABB(box AABB) bool {
	for i := FrustumTop; i <= FrustumRight; i++ {
		n := f.Planes[i]

		// The corner furthest inside the plane. If even that one is outside,
		// the whole box is.
		inner := math3d.V3(
			selectComponent(n.X < 0, box.Max.X, box.Min.X),
			selectComponent(n.Y < 0, box.Max.Y, box.Min.Y),
			selectComponent(n.Z < 0, box.Max.Z, box.Min.Z),
		)

		if n.Dot(inner) > 0 {
			return true
		}
	}

	if box.Max.Z < f.Near {
		return true
	}
	if box.Min.Z > f.Far {
		return true
	}

	return false
}

// ContainsPoint reports whether a camera-space point lies inside the frustum.
// Points on a plane count as inside.
func (f Frustum) ContainsPoint(p math3d.Vec3) bool {
	for i := FrustumTop; i <= FrustumRight; i++ {
		if f.Planes[i].Dot(p) > 0 {
			return false
		}
	}
	return p.Z >= f.Near && p.Z <= f.Far
}

// selectComponent is a branchless conditional selection helper.
func selectComponent(cond bool, a, b float64) float64 {
	if cond {
		return a
	}
	return b
}
