package math3d

import "testing"

func TestEulerMatrixMatchesVectorRotation(t *testing.T) {
	rotations := []Vec3{
		V3(0, 0, 0),
		V3(0.5, 0, 0),
		V3(0, 1.2, 0),
		V3(0, 0, -0.7),
		V3(0.3, -1.4, 2.2),
	}
	points := []Vec3{V3(1, 0, 0), V3(1, 2, 3), V3(-0.5, 4, -2)}

	for _, r := range rotations {
		m := EulerXYZ(r)
		inv := InverseEulerYXZ(r)
		for _, p := range points {
			if got, want := m.MulVec3(p), p.RotateEuler(r); !got.ApproxEqual(want, eps) {
				t.Errorf("EulerXYZ(%v)·%v = %v, want %v", r, p, got, want)
			}
			if got, want := inv.MulVec3(p), p.InverseRotateEuler(r); !got.ApproxEqual(want, eps) {
				t.Errorf("InverseEulerYXZ(%v)·%v = %v, want %v", r, p, got, want)
			}
		}
	}
}

func TestTranslateThenRotate(t *testing.T) {
	m := Translate(V3(10, 0, 0)).Mul(RotateZ(0))
	if got := m.MulVec3(V3(1, 2, 3)); got != V3(11, 2, 3) {
		t.Errorf("got %v, want (11, 2, 3)", got)
	}
	if got := m.MulVec3Dir(V3(1, 2, 3)); got != V3(1, 2, 3) {
		t.Errorf("directions must ignore translation, got %v", got)
	}
	if got := m.Translation(); got != V3(10, 0, 0) {
		t.Errorf("translation = %v", got)
	}
}

func TestIdentityMul(t *testing.T) {
	m := Translate(V3(1, 2, 3)).Mul(RotateY(0.5))
	if got := Identity().Mul(m); got != m {
		t.Errorf("I·M != M")
	}
	if m.Get(3, 3) != 1 {
		t.Errorf("m[3][3] = %v, want 1", m.Get(3, 3))
	}
}

func TestScaleAboutCenter(t *testing.T) {
	m := Scale(0.5).Mul(Translate(V3(-4, -3, -2)))

	tests := []struct {
		in, want Vec3
	}{
		{V3(4, 3, 2), V3(0, 0, 0)},
		{V3(6, 2, 2), V3(1, -0.5, 0)},
		{V3(2, 4, 6), V3(-1, 0.5, 2)},
	}
	for _, tt := range tests {
		if got := m.MulVec3(tt.in); got != tt.want {
			t.Errorf("MulVec3(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if got := Scale(3).MulVec3Dir(V3(1, 0, 0)); got != V3(3, 0, 0) {
		t.Errorf("MulVec3Dir = %v, want (3, 0, 0)", got)
	}
}
