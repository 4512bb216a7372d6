// Package scene renders the globe, its pins, the route line and the
// craft. Everything except the camera lives in the globe's model
// matrix, so local-frame state follows the sphere's rotation for free.
package scene

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/voyagersim/globeflight/internal/engine/shader"
	"github.com/voyagersim/globeflight/internal/engine/texture"
	"github.com/voyagersim/globeflight/internal/globe"
	"github.com/voyagersim/globeflight/internal/logger"
	"github.com/voyagersim/globeflight/pkg/math"
)

const (
	sphereSegments = 64
	sphereRings    = 32
	markerSize     = 4.0
	craftSize      = 6.0
)

// FrameState is the per-frame snapshot of the simulation the scene draws.
type FrameState struct {
	Rotation  float32
	Pins      []globe.Pin
	PinOffset float32
	Arc       []math.Vec3
	Craft     globe.Pose
	HasCraft  bool
}

// Scene owns the GL resources for one globe view.
type Scene struct {
	width  int
	height int

	surfaceProgram uint32
	flatProgram    uint32

	sphere mesh
	marker mesh
	craft  mesh
	route  lineMesh

	surfaceTex uint32
	lastArc    []math.Vec3

	lightDir math.Vec3
}

// New initializes OpenGL and builds the static meshes. Must be called
// after the GL context exists.
func New(width, height int, radius float32) (*Scene, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("initializing OpenGL: %w", err)
	}

	logger.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.Enable(gl.CULL_FACE)
	gl.ClearColor(0.02, 0.02, 0.06, 1.0)

	s := &Scene{
		width:    width,
		height:   height,
		lightDir: math.Vec3{X: -0.6, Y: -0.3, Z: -0.75}.Normalize(),
	}

	var err error
	s.surfaceProgram, err = shader.CompileProgram(surfaceVert, surfaceFrag)
	if err != nil {
		return nil, fmt.Errorf("surface program: %w", err)
	}
	s.flatProgram, err = shader.CompileProgram(flatVert, flatFrag)
	if err != nil {
		return nil, fmt.Errorf("flat program: %w", err)
	}

	sv, si := buildSphere(radius, sphereSegments, sphereRings)
	s.sphere = newMesh(sv, si, 3, 3, 2)

	mv, mi := buildMarker(markerSize)
	s.marker = newMesh(mv, mi, 3)

	cv, ci := buildCraft(craftSize)
	s.craft = newMesh(cv, ci, 3)

	s.route = newLineMesh()

	// Procedural surface until a candidate texture loads.
	s.surfaceTex = texture.Upload(texture.Procedural(1024, 512))

	gl.Viewport(0, 0, int32(width), int32(height))
	return s, nil
}

// Close releases the GL resources.
func (s *Scene) Close() {
	s.sphere.delete()
	s.marker.delete()
	s.craft.delete()
	s.route.delete()
	texture.Delete(s.surfaceTex)
	if s.surfaceProgram != 0 {
		gl.DeleteProgram(s.surfaceProgram)
	}
	if s.flatProgram != 0 {
		gl.DeleteProgram(s.flatProgram)
	}
}

// Resize updates the viewport.
func (s *Scene) Resize(width, height int) {
	s.width = width
	s.height = height
	gl.Viewport(0, 0, int32(width), int32(height))
}

// SetSurface swaps in a replacement globe surface.
func (s *Scene) SetSurface(img *image.RGBA) {
	texture.Delete(s.surfaceTex)
	s.surfaceTex = texture.Upload(img)
}

// Render draws one frame.
func (s *Scene) Render(view, proj math.Mat4, fs FrameState) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	viewProj := proj.Mul(view)
	model := math.RotateY(fs.Rotation)

	s.drawSurface(viewProj, model)

	// The session replaces the arc slice wholesale, so identity is
	// enough to detect a new route.
	if !sameArc(fs.Arc, s.lastArc) {
		s.route.set(fs.Arc)
		s.lastArc = fs.Arc
	}

	gl.UseProgram(s.flatProgram)
	gl.UniformMatrix4fv(shader.Uniform(s.flatProgram, "uViewProj"), 1, false, viewProj.Ptr())

	for _, pin := range fs.Pins {
		p := pin.Dir.Scale(pin.Surface.Length() + fs.PinOffset)
		m := model.Mul(math.Translate(p.X, p.Y, p.Z))
		gl.UniformMatrix4fv(shader.Uniform(s.flatProgram, "uModel"), 1, false, m.Ptr())
		if pin.Role == globe.RoleOrigin {
			gl.Uniform4f(shader.Uniform(s.flatProgram, "uColor"), 0.2, 0.9, 0.3, 1)
		} else {
			gl.Uniform4f(shader.Uniform(s.flatProgram, "uColor"), 0.95, 0.3, 0.2, 1)
		}
		s.marker.draw(gl.TRIANGLES)
	}

	if len(fs.Arc) > 1 {
		gl.UniformMatrix4fv(shader.Uniform(s.flatProgram, "uModel"), 1, false, model.Ptr())
		gl.Uniform4f(shader.Uniform(s.flatProgram, "uColor"), 1, 0.85, 0.2, 1)
		s.route.draw()
	}

	if fs.HasCraft {
		pose := fs.Craft
		m := model.
			Mul(math.Translate(pose.Position.X, pose.Position.Y, pose.Position.Z)).
			Mul(pose.Basis())
		gl.UniformMatrix4fv(shader.Uniform(s.flatProgram, "uModel"), 1, false, m.Ptr())
		gl.Uniform4f(shader.Uniform(s.flatProgram, "uColor"), 0.9, 0.9, 1, 1)
		s.craft.draw(gl.TRIANGLES)
	}

	gl.UseProgram(0)
}

func sameArc(a, b []math.Vec3) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}

func (s *Scene) drawSurface(viewProj, model math.Mat4) {
	gl.UseProgram(s.surfaceProgram)

	gl.UniformMatrix4fv(shader.Uniform(s.surfaceProgram, "uViewProj"), 1, false, viewProj.Ptr())
	gl.UniformMatrix4fv(shader.Uniform(s.surfaceProgram, "uModel"), 1, false, model.Ptr())
	gl.Uniform3f(shader.Uniform(s.surfaceProgram, "uLightDir"), s.lightDir.X, s.lightDir.Y, s.lightDir.Z)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, s.surfaceTex)
	gl.Uniform1i(shader.Uniform(s.surfaceProgram, "uSurface"), 0)

	s.sphere.draw(gl.TRIANGLES)

	gl.BindTexture(gl.TEXTURE_2D, 0)
}
