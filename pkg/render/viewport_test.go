package render

import (
	"math"
	"testing"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

func TestViewportPrepare(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		cell          float64
		wantW, wantH  int
		wantAspect    float64
	}{
		{"terminal", 80, 24, 2, 80, 24, 0.6},
		{"square cells", 100, 50, 1, 100, 50, 0.5},
		{"zero size", 0, 0, 2, 1, 1, 2},
		{"negative size", -5, 10, 2, 1, 10, 20},
		{"default cell aspect", 40, 40, 0, 40, 40, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			vp := NewViewport(tc.cell)
			vp.Prepare(tc.width, tc.height, NewCamera())

			if vp.Width != tc.wantW || vp.Height != tc.wantH {
				t.Errorf("size = %dx%d, want %dx%d", vp.Width, vp.Height, tc.wantW, tc.wantH)
			}
			if math.Abs(vp.AspectRatio-tc.wantAspect) > 1e-12 {
				t.Errorf("AspectRatio = %v, want %v", vp.AspectRatio, tc.wantAspect)
			}
		})
	}
}

func TestViewportStale(t *testing.T) {
	cam := NewCamera()
	vp := NewViewport(DefaultCellAspect)

	if !vp.Stale(cam) {
		t.Error("new viewport is not stale")
	}

	vp.Prepare(80, 24, cam)
	if vp.Stale(cam) {
		t.Error("viewport stale right after Prepare")
	}

	cam.SetClipPlanes(1, 50)
	if !vp.Stale(cam) {
		t.Error("viewport not stale after clip plane change")
	}

	vp.UpdateFrustum(cam)
	if vp.Frustum.Near != 1 || vp.Frustum.Far != 50 {
		t.Errorf("frustum clip planes = %v/%v, want 1/50", vp.Frustum.Near, vp.Frustum.Far)
	}
}

func TestViewportProject(t *testing.T) {
	cam := NewCamera()
	cam.SetFOV(math.Pi / 2)
	cam.SetClipPlanes(1, 101)

	vp := NewViewport(1)
	vp.Prepare(10, 10, cam)

	tests := []struct {
		name string
		in   math3d.Vec3
		want math3d.Vec3
	}{
		{"on axis at near", math3d.V3(0, 0, 1), math3d.V3(0, 0, 0)},
		{"on axis at far", math3d.V3(0, 0, 101), math3d.V3(0, 0, 101)},
		{"frustum corner", math3d.V3(2, 2, 2), math3d.V3(1, 1, 1.01)},
		{"perspective divide", math3d.V3(1, -1, 4), math3d.V3(0.25, -0.25, 3.03)},
		// Below the depth epsilon X and Y are left undivided.
		{"at the camera plane", math3d.V3(2, 3, 0), math3d.V3(2, 3, -1.01)},
		{"just inside epsilon", math3d.V3(2, 3, 5e-5), math3d.V3(2, 3, (5e-5-1)*1.01)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := vp.Project(cam, tc.in); !got.ApproxEqual(tc.want, 1e-9) {
				t.Errorf("Project(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestViewportProjectAppliesAspect(t *testing.T) {
	cam := NewCamera()
	cam.SetFOV(math.Pi / 2)

	vp := NewViewport(2)
	vp.Prepare(80, 24, cam)

	got := vp.Project(cam, math3d.V3(1, 1, 1))
	if math.Abs(got.X-0.6) > 1e-9 || math.Abs(got.Y-1) > 1e-9 {
		t.Errorf("Project = %v, want x 0.6 y 1", got)
	}
}

func TestNormToScreen(t *testing.T) {
	vp := NewViewport(DefaultCellAspect)
	vp.Prepare(80, 24, NewCamera())

	tests := []struct {
		name   string
		in     math3d.Vec3
		wx, wy int
	}{
		{"center", math3d.V3(0, 0, 0), 40, 12},
		{"top left", math3d.V3(-1, 1, 0), 0, 0},
		{"bottom right", math3d.V3(1, -1, 0), 80, 24},
		{"quarter", math3d.V3(-0.5, 0.5, 0), 20, 6},
		{"clamped high", math3d.V3(5, -5, 0), 80, 24},
		{"clamped low", math3d.V3(-5, 5, 0), 0, 0},
		{"rounds", math3d.V3(0.01, 0, 0), 40, 12},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			x, y := vp.NormToScreen(tc.in)
			if x != tc.wx || y != tc.wy {
				t.Errorf("NormToScreen(%v) = (%d, %d), want (%d, %d)", tc.in, x, y, tc.wx, tc.wy)
			}
		})
	}
}

func BenchmarkProject(b *testing.B) {
	cam := NewCamera()
	vp := NewViewport(DefaultCellAspect)
	vp.Prepare(160, 48, cam)
	p := math3d.V3(1, 2, 10)

	for b.Loop() {
		_ = vp.Project(cam, p)
	}
}
