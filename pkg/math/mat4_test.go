package math

import (
	gomath "math"
	"testing"
)

func mat4Near(a, b Mat4, eps float32) bool {
	for i := range a {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

func TestMat4MulIdentity(t *testing.T) {
	m := Translate(1, 2, 3)
	got := m.Mul(Identity())
	if got != m {
		t.Errorf("M * I = %v, want %v", got, m)
	}
}

func TestMat4Inverse(t *testing.T) {
	m := Translate(5, -3, 2).Mul(RotateY(0.7)).Mul(Scale(2))
	inv := m.Inverse()
	got := m.Mul(inv)
	if !mat4Near(got, Identity(), 1e-4) {
		t.Errorf("M * M^-1 = %v, want identity", got)
	}
}

func TestMat4RotateYTransform(t *testing.T) {
	m := RotateY(float32(gomath.Pi / 2))
	got := m.TransformVec3(Vec3{0, 0, 1})
	want := Vec3{1, 0, 0}
	if got.Distance(want) > 1e-5 {
		t.Errorf("RotateY(pi/2) * (0,0,1) = %v, want %v", got, want)
	}
}

func TestMat4FromBasis(t *testing.T) {
	right := Vec3{1, 0, 0}
	up := Vec3{0, 1, 0}
	forward := Vec3{0, 0, 1}
	if got := FromBasis(right, up, forward); got != Identity() {
		t.Errorf("FromBasis(x,y,z) = %v, want identity", got)
	}

	// Rotated basis maps local forward onto the basis forward axis.
	f := Vec3{1, 0, 0}
	u := Vec3{0, 1, 0}
	r := f.Cross(u).Normalize()
	m := FromBasis(r, u, f)
	got := m.TransformVec3(Vec3{0, 0, 1})
	if got.Distance(f) > 1e-5 {
		t.Errorf("basis transform of +Z = %v, want %v", got, f)
	}
}

func TestMat4LookAtOrigin(t *testing.T) {
	view := LookAt(Vec3{0, 0, 10}, Vec3{}, Vec3{0, 1, 0})
	got := view.TransformVec3(Vec3{})
	// Origin ends up on the -Z axis, 10 units in front of the camera.
	want := Vec3{0, 0, -10}
	if got.Distance(want) > 1e-5 {
		t.Errorf("view * origin = %v, want %v", got, want)
	}
}
