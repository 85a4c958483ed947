package render

import (
	"math"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

const (
	// DefaultCellAspect is the height/width ratio of a typical terminal glyph.
	DefaultCellAspect = 2.0

	// DepthEpsilon is the smallest |z| that Project divides by.
	DepthEpsilon = 1e-4
)

// Viewport is the per-frame render context: screen size, aspect ratio and
// the frustum built for them. Call Prepare once per frame before projecting
// or culling.
type Viewport struct {
	Width  int
	Height int

	// CellAspect is the glyph height/width ratio; it corrects for
	// non-square character cells.
	CellAspect float64

	// AspectRatio is CellAspect * Height / Width. Projection multiplies X
	// by it and the frustum divides the half-width by it.
	AspectRatio float64

	Frustum Frustum

	// Camera parameters the frustum was built for.
	builtFOV, builtNear, builtFar float64
	built                         bool
}

// NewViewport creates a viewport for the given glyph aspect ratio.
// Non-positive values fall back to DefaultCellAspect.
func NewViewport(cellAspect float64) *Viewport {
	if cellAspect <= 0 {
		cellAspect = DefaultCellAspect
	}
	return &Viewport{CellAspect: cellAspect, AspectRatio: 1}
}

// Prepare records the screen size, recomputes the aspect ratio and rebuilds
// the frustum for cam. Dimensions below 1 are treated as 1.
func (v *Viewport) Prepare(width, height int, cam *Camera) {
	v.Width = max(width, 1)
	v.Height = max(height, 1)

	cell := v.CellAspect
	if cell <= 0 {
		cell = 1
	}
	v.AspectRatio = cell * float64(v.Height) / float64(v.Width)

	v.UpdateFrustum(cam)
}

// UpdateFrustum rebuilds the frustum from cam's FOV and clip planes and the
// current aspect ratio.
func (v *Viewport) UpdateFrustum(cam *Camera) {
	v.Frustum = NewFrustum(cam.FOV, v.AspectRatio, cam.Near, cam.Far)
	v.builtFOV = cam.FOV
	v.builtNear = cam.Near
	v.builtFar = cam.Far
	v.built = true
}

// Stale reports whether the frustum no longer matches cam.
func (v *Viewport) Stale(cam *Camera) bool {
	return !v.built ||
		v.builtFOV != cam.FOV ||
		v.builtNear != cam.Near ||
		v.builtFar != cam.Far
}

// Project applies the perspective projection to a camera-space point.
// X and Y are divided by depth only when |z| > DepthEpsilon; Z is mapped
// linearly so that z = Near gives 0 and z = Far gives Far.
func (v *Viewport) Project(cam *Camera, p math3d.Vec3) math3d.Vec3 {
	f := 1 / math.Tan(0.5*cam.FOV)
	q := cam.Far / (cam.Far - cam.Near)

	r := math3d.V3(
		p.X*f*v.AspectRatio,
		p.Y*f,
		(p.Z-cam.Near)*q,
	)

	if math.Abs(p.Z) > DepthEpsilon {
		r.X /= p.Z
		r.Y /= p.Z
	}

	return r
}

// NormToScreen maps normalized device coordinates in [-1, 1] to cell
// coordinates in [0, Width] x [0, Height]. Y is flipped so rows grow
// downward; out-of-range input is clamped to the screen edge.
func (v *Viewport) NormToScreen(p math3d.Vec3) (x, y int) {
	sx := clamp((p.X+1)*0.5, 0, 1)
	sy := clamp((1-p.Y)*0.5, 0, 1)

	return int(math.Round(sx * float64(v.Width))), int(math.Round(sy * float64(v.Height)))
}
