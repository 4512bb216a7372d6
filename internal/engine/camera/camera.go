// Package camera provides the orbit camera used to view the globe.
package camera

import (
	gomath "math"

	"github.com/voyagersim/globeflight/pkg/math"
)

// Orbit circles the world origin at a clamped distance and pitch.
type Orbit struct {
	Distance float32 // distance from the origin
	Pitch    float32 // vertical angle, radians
	Yaw      float32 // horizontal angle, radians

	MinDistance float32
	MaxDistance float32
	MinPitch    float32
	MaxPitch    float32

	DragSensitivity float32
	ZoomSensitivity float32

	FovY float32
	Near float32
	Far  float32
}

// NewOrbit creates an orbit camera framing a sphere of the given radius.
func NewOrbit(radius float32) *Orbit {
	return &Orbit{
		Distance:        radius * 3,
		Pitch:           0.35,
		Yaw:             0,
		MinDistance:     radius * 1.2,
		MaxDistance:     radius * 12,
		MinPitch:        -1.4,
		MaxPitch:        1.4,
		DragSensitivity: 0.005,
		ZoomSensitivity: 0.1,
		FovY:            gomath.Pi / 4,
		Near:            1,
		Far:             radius * 30,
	}
}

// Position returns the camera position in world space.
func (c *Orbit) Position() math.Vec3 {
	cp := float32(gomath.Cos(float64(c.Pitch)))
	return math.Vec3{
		X: c.Distance * cp * float32(gomath.Sin(float64(c.Yaw))),
		Y: c.Distance * float32(gomath.Sin(float64(c.Pitch))),
		Z: c.Distance * cp * float32(gomath.Cos(float64(c.Yaw))),
	}
}

// View returns the view matrix.
func (c *Orbit) View() math.Mat4 {
	return math.LookAt(c.Position(), math.Vec3{}, math.Vec3{Y: 1})
}

// Projection returns the projection matrix for the given aspect ratio.
func (c *Orbit) Projection(aspect float32) math.Mat4 {
	return math.Perspective(c.FovY, aspect, c.Near, c.Far)
}

// ViewProjection returns projection * view.
func (c *Orbit) ViewProjection(aspect float32) math.Mat4 {
	return c.Projection(aspect).Mul(c.View())
}

// HandleDrag updates yaw/pitch from a mouse drag delta.
func (c *Orbit) HandleDrag(deltaX, deltaY float32) {
	c.Yaw -= deltaX * c.DragSensitivity
	c.Pitch += deltaY * c.DragSensitivity

	if c.Pitch < c.MinPitch {
		c.Pitch = c.MinPitch
	}
	if c.Pitch > c.MaxPitch {
		c.Pitch = c.MaxPitch
	}
}

// HandleZoom updates the distance from a scroll wheel delta.
func (c *Orbit) HandleZoom(delta float32) {
	c.Distance -= delta * c.Distance * c.ZoomSensitivity
	if c.Distance < c.MinDistance {
		c.Distance = c.MinDistance
	}
	if c.Distance > c.MaxDistance {
		c.Distance = c.MaxDistance
	}
}
