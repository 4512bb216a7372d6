// Package globe implements the interactive globe simulation: surface
// picking, pin placement, great-circle arcs and the looping flight
// animation, all owned by a single Session.
package globe

import (
	gomath "math"

	"github.com/voyagersim/globeflight/pkg/math"
)

// Ray is a world-space ray with a normalized direction.
type Ray struct {
	Origin math.Vec3
	Dir    math.Vec3
}

// ScreenRay converts pixel coordinates to a world-space ray.
// x, y are device pixels, vw/vh the viewport size, invViewProj the
// inverse of the camera's view-projection matrix.
func ScreenRay(x, y float32, vw, vh int, invViewProj math.Mat4) Ray {
	// Normalized device coords, Y flipped (device Y grows downward).
	ndcX := 2.0*x/float32(vw) - 1.0
	ndcY := 1.0 - 2.0*y/float32(vh)

	near := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, -1.0, 1.0})
	far := invViewProj.MulVec4(math.Vec4{ndcX, ndcY, 1.0, 1.0})

	if near[3] != 0 {
		near[0] /= near[3]
		near[1] /= near[3]
		near[2] /= near[3]
	}
	if far[3] != 0 {
		far[0] /= far[3]
		far[1] /= far[3]
		far[2] /= far[3]
	}

	origin := math.Vec3{X: near[0], Y: near[1], Z: near[2]}
	dir := math.Vec3{X: far[0] - near[0], Y: far[1] - near[1], Z: far[2] - near[2]}.Normalize()

	return Ray{Origin: origin, Dir: dir}
}

// IntersectSphere solves the quadratic ray-sphere intersection against a
// sphere of the given radius centered at the origin. It returns the ray
// parameter of the nearest hit in front of the origin, or ok=false when
// the ray misses or is degenerate.
func (r Ray) IntersectSphere(radius float32) (t float32, ok bool) {
	a := r.Dir.Dot(r.Dir)
	if a == 0 {
		return 0, false // zero-length direction
	}

	b := 2 * r.Origin.Dot(r.Dir)
	c := r.Origin.Dot(r.Origin) - radius*radius

	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}

	sq := float32(gomath.Sqrt(float64(disc)))
	t = (-b - sq) / (2 * a)
	if t <= 0 {
		// Nearest root is behind the camera; the far root only applies
		// when the ray starts inside the sphere.
		t = (-b + sq) / (2 * a)
	}
	if t <= 0 {
		return 0, false
	}
	return t, true
}

// PickSurface maps a pixel position to a point on the sphere surface,
// expressed in the sphere's local (rotating) frame. invRotation is the
// inverse of the sphere's current world rotation. The second return is
// false when the ray misses the sphere; no input panics.
func PickSurface(x, y float32, vw, vh int, invViewProj, invRotation math.Mat4, radius float32) (math.Vec3, bool) {
	if vw <= 0 || vh <= 0 || radius <= 0 {
		return math.Vec3{}, false
	}

	ray := ScreenRay(x, y, vw, vh, invViewProj)
	t, ok := ray.IntersectSphere(radius)
	if !ok {
		return math.Vec3{}, false
	}

	world := ray.Origin.Add(ray.Dir.Scale(t))
	return invRotation.TransformVec3(world), true
}
