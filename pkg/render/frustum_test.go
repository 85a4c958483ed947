package render

import (
	"math"
	"testing"

	"github.com/taigrr/glyph3d/pkg/math3d"
)

func TestAABBBasics(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -2, -3), math3d.V3(1, 2, 3))

	center := box.Center()
	if center.X != 0 || center.Y != 0 || center.Z != 0 {
		t.Errorf("center = %v, want (0, 0, 0)", center)
	}

	size := box.Size()
	if size.X != 2 || size.Y != 4 || size.Z != 6 {
		t.Errorf("size = %v, want (2, 4, 6)", size)
	}
}

func TestAABBContainsPoint(t *testing.T) {
	box := NewAABB(math3d.V3(0, 0, 0), math3d.V3(10, 10, 10))

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected bool
	}{
		{"center", math3d.V3(5, 5, 5), true},
		{"corner min", math3d.V3(0, 0, 0), true},
		{"corner max", math3d.V3(10, 10, 10), true},
		{"edge", math3d.V3(5, 0, 5), true},
		{"outside X", math3d.V3(11, 5, 5), false},
		{"outside Y", math3d.V3(5, -1, 5), false},
		{"outside Z", math3d.V3(5, 5, 15), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := box.ContainsPoint(tc.point)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, result, tc.expected)
			}
		})
	}
}

func TestAABBTransform(t *testing.T) {
	box := NewAABB(math3d.V3(-1, -1, -1), math3d.V3(1, 1, 1))

	t.Run("translation", func(t *testing.T) {
		transformed := box.Transform(math3d.Translate(math3d.V3(10, 20, 30)))

		if transformed.Min.X != 9 || transformed.Min.Y != 19 || transformed.Min.Z != 29 {
			t.Errorf("translated min = %v, want (9, 19, 29)", transformed.Min)
		}
		if transformed.Max.X != 11 || transformed.Max.Y != 21 || transformed.Max.Z != 31 {
			t.Errorf("translated max = %v, want (11, 21, 31)", transformed.Max)
		}
	})

	t.Run("rotation grows bound", func(t *testing.T) {
		// A unit cube turned 45 degrees about Y spans sqrt(2) along X and Z.
		transformed := box.Transform(math3d.RotateY(math.Pi / 4))
		want := math.Sqrt2

		if math.Abs(transformed.Max.X-want) > 1e-9 || math.Abs(transformed.Max.Z-want) > 1e-9 {
			t.Errorf("rotated max = %v, want (%v, 1, %v)", transformed.Max, want, want)
		}
		if math.Abs(transformed.Max.Y-1) > 1e-9 {
			t.Errorf("rotated max.Y = %v, want 1", transformed.Max.Y)
		}
	})
}

func TestFrustumPlanesAreUnit(t *testing.T) {
	f := NewFrustum(math.Pi/3, 0.6, 0.1, 100)

	for i, n := range f.Planes {
		if l := n.Len(); math.Abs(l-1) > 1e-9 {
			t.Errorf("plane %d normal length = %v, want 1", i, l)
		}
	}
}

func TestFrustumPlaneOrientation(t *testing.T) {
	// 90 degree FOV with a square viewport: side planes sit at 45 degrees.
	f := NewFrustum(math.Pi/2, 1, 1, 100)
	s := math.Sqrt2 / 2

	tests := []struct {
		name  string
		plane int
		want  math3d.Vec3
	}{
		{"top", FrustumTop, math3d.V3(0, s, -s)},
		{"bottom", FrustumBottom, math3d.V3(0, -s, -s)},
		{"left", FrustumLeft, math3d.V3(-s, 0, -s)},
		{"right", FrustumRight, math3d.V3(s, 0, -s)},
		{"near", FrustumNear, math3d.V3(0, 0, -1)},
		{"far", FrustumFar, math3d.V3(0, 0, 1)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.Planes[tc.plane]; !got.ApproxEqual(tc.want, 1e-9) {
				t.Errorf("plane = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestFrustumContainsPoint(t *testing.T) {
	f := NewFrustum(math.Pi/2, 1, 1, 100)

	tests := []struct {
		name     string
		point    math3d.Vec3
		expected bool
	}{
		{"center near", math3d.V3(0, 0, 1), true},
		{"center mid", math3d.V3(0, 0, 50), true},
		{"center far", math3d.V3(0, 0, 100), true},
		{"on right plane", math3d.V3(5, 0, 5), true},
		{"behind camera", math3d.V3(0, 0, -1), false},
		{"too far", math3d.V3(0, 0, 200), false},
		{"too close", math3d.V3(0, 0, 0.5), false},
		{"right of frustum", math3d.V3(6, 0, 5), false},
		{"above frustum", math3d.V3(0, 6, 5), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := f.ContainsPoint(tc.point)
			if result != tc.expected {
				t.Errorf("ContainsPoint(%v) = %v, want %v", tc.point, result, tc.expected)
			}
		})
	}
}

func TestFrustumCullAABB(t *testing.T) {
	f := NewFrustum(math.Pi/2, 1, 1, 100)

	tests := []struct {
		name   string
		box    AABB
		culled bool
	}{
		{
			"fully inside",
			NewAABB(math3d.V3(-1, -1, 5), math3d.V3(1, 1, 10)),
			false,
		},
		{
			"straddles near plane",
			NewAABB(math3d.V3(-1, -1, -2), math3d.V3(1, 1, 2)),
			false,
		},
		{
			"straddles right plane",
			NewAABB(math3d.V3(4, -1, 5), math3d.V3(8, 1, 6)),
			false,
		},
		{
			"straddles top plane",
			NewAABB(math3d.V3(-1, 4, 5), math3d.V3(1, 8, 6)),
			false,
		},
		{
			"straddles far plane",
			NewAABB(math3d.V3(-1, -1, 90), math3d.V3(1, 1, 110)),
			false,
		},
		{
			"entirely before near",
			NewAABB(math3d.V3(-0.1, -0.1, 0.2), math3d.V3(0.1, 0.1, 0.5)),
			true,
		},
		{
			"behind camera",
			NewAABB(math3d.V3(-1, -1, -10), math3d.V3(1, 1, -5)),
			true,
		},
		{
			"beyond far plane",
			NewAABB(math3d.V3(-1, -1, 150), math3d.V3(1, 1, 200)),
			true,
		},
		{
			"far to the right",
			NewAABB(math3d.V3(100, -1, 5), math3d.V3(110, 1, 10)),
			true,
		},
		{
			"far to the left",
			NewAABB(math3d.V3(-110, -1, 5), math3d.V3(-100, 1, 10)),
			true,
		},
		{
			"below",
			NewAABB(math3d.V3(-1, -110, 5), math3d.V3(1, -100, 10)),
			true,
		},
		{
			"large box containing frustum",
			NewAABB(math3d.V3(-200, -200, -200), math3d.V3(200, 200, 200)),
			false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := f.CullAABB(tc.box); got != tc.culled {
				t.Errorf("CullAABB(%v) = %v, want %v", tc.box, got, tc.culled)
			}
		})
	}
}

func TestFrustumAspectNarrowsWidth(t *testing.T) {
	// A wider aspect ratio means a narrower horizontal extent.
	box := NewAABB(math3d.V3(6, -0.1, 9.9), math3d.V3(6.5, 0.1, 10))

	wide := NewFrustum(math.Pi/2, 1, 1, 100)
	narrow := NewFrustum(math.Pi/2, 2, 1, 100)

	if wide.CullAABB(box) {
		t.Error("box inside the square frustum was culled")
	}
	if !narrow.CullAABB(box) {
		t.Error("box outside the narrow frustum was kept")
	}
}

func TestFrustumCullAgreesWithPoints(t *testing.T) {
	// A visible point wrapped in a tiny box must never be culled.
	f := NewFrustum(math.Pi/3, 0.6, 0.5, 50)
	d := math3d.V3(0.01, 0.01, 0.01)

	for x := -20.0; x <= 20; x += 2.5 {
		for y := -20.0; y <= 20; y += 2.5 {
			for z := 0.0; z <= 60; z += 5 {
				p := math3d.V3(x, y, z)
				if !f.ContainsPoint(p) {
					continue
				}
				if f.CullAABB(NewAABB(p.Sub(d), p.Add(d))) {
					t.Errorf("box around visible point %v was culled", p)
				}
			}
		}
	}
}
