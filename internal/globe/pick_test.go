package globe

import (
	gomath "math"
	"testing"

	"github.com/voyagersim/globeflight/pkg/math"
)

const (
	testVW = 800
	testVH = 600
)

// testInvViewProj builds the inverse view-projection of a camera at
// (0, 0, dist) looking at the origin.
func testInvViewProj(dist float32) math.Mat4 {
	proj := math.Perspective(gomath.Pi/4, float32(testVW)/float32(testVH), 1, 2000)
	view := math.LookAt(math.Vec3{Z: dist}, math.Vec3{}, math.Vec3{Y: 1})
	return proj.Mul(view).Inverse()
}

func TestPickSurfaceCenterHit(t *testing.T) {
	invVP := testInvViewProj(500)

	local, hit := PickSurface(testVW/2, testVH/2, testVW, testVH, invVP, math.Identity(), testRadius)
	if !hit {
		t.Fatal("center pick missed the sphere")
	}
	vecNear(t, local, math.Vec3{Z: testRadius}, 1.0, "center hit point")
}

func TestPickSurfaceCornerMiss(t *testing.T) {
	invVP := testInvViewProj(500)

	// The corner ray's closest approach to the center exceeds R.
	if _, hit := PickSurface(0, 0, testVW, testVH, invVP, math.Identity(), testRadius); hit {
		t.Error("corner pick hit the sphere, want miss")
	}
}

func TestPickSurfaceRotatedFrame(t *testing.T) {
	const angle = 0.9
	invVP := testInvViewProj(500)
	invRot := math.RotateY(-angle)

	local, hit := PickSurface(testVW/2, testVH/2, testVW, testVH, invVP, invRot, testRadius)
	if !hit {
		t.Fatal("pick missed the sphere")
	}

	// Rotating the local point forward must land back on the world hit.
	world := math.RotateY(angle).TransformVec3(local)
	vecNear(t, world, math.Vec3{Z: testRadius}, 1.0, "rotated frame round trip")
}

func TestPickSurfaceDegenerateInputs(t *testing.T) {
	invVP := testInvViewProj(500)

	if _, hit := PickSurface(10, 10, 0, 0, invVP, math.Identity(), testRadius); hit {
		t.Error("zero viewport should not hit")
	}
	if _, hit := PickSurface(10, 10, testVW, testVH, invVP, math.Identity(), 0); hit {
		t.Error("zero radius should not hit")
	}
}

func TestRayIntersectSphere(t *testing.T) {
	tests := []struct {
		name    string
		ray     Ray
		wantHit bool
		wantT   float32
	}{
		{
			name:    "head on",
			ray:     Ray{Origin: math.Vec3{Z: 500}, Dir: math.Vec3{Z: -1}},
			wantHit: true,
			wantT:   300,
		},
		{
			name:    "closest approach beyond radius",
			ray:     Ray{Origin: math.Vec3{Z: 500}, Dir: math.Vec3{Y: 1}},
			wantHit: false,
		},
		{
			name:    "sphere behind origin",
			ray:     Ray{Origin: math.Vec3{Z: 500}, Dir: math.Vec3{Z: 1}},
			wantHit: false,
		},
		{
			name:    "origin inside sphere",
			ray:     Ray{Origin: math.Vec3{}, Dir: math.Vec3{Z: 1}},
			wantHit: true,
			wantT:   testRadius,
		},
		{
			name:    "zero direction",
			ray:     Ray{Origin: math.Vec3{Z: 500}},
			wantHit: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotT, hit := tt.ray.IntersectSphere(testRadius)
			if hit != tt.wantHit {
				t.Fatalf("hit = %v, want %v", hit, tt.wantHit)
			}
			if hit && gomath.Abs(float64(gotT-tt.wantT)) > 1e-2 {
				t.Errorf("t = %v, want %v", gotT, tt.wantT)
			}
		})
	}
}
