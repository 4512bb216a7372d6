package scene

import (
	gomath "math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/voyagersim/globeflight/pkg/math"
)

// mesh is an uploaded indexed vertex buffer.
type mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// newMesh uploads interleaved vertex data with the given attribute
// sizes (floats per attribute, assigned to locations 0..n in order).
func newMesh(vertices []float32, indices []uint32, attribs ...int32) mesh {
	var m mesh
	m.count = int32(len(indices))

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, unsafe.Pointer(&indices[0]), gl.STATIC_DRAW)

	var stride int32
	for _, size := range attribs {
		stride += size * 4
	}
	var offset uintptr
	for loc, size := range attribs {
		gl.VertexAttribPointerWithOffset(uint32(loc), size, gl.FLOAT, false, stride, offset)
		gl.EnableVertexAttribArray(uint32(loc))
		offset += uintptr(size * 4)
	}

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, 0)
	return m
}

// draw renders the mesh with the given primitive mode.
func (m *mesh) draw(mode uint32) {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(mode, m.count, gl.UNSIGNED_INT, nil)
	gl.BindVertexArray(0)
}

// delete releases the GL objects.
func (m *mesh) delete() {
	if m.vao != 0 {
		gl.DeleteVertexArrays(1, &m.vao)
	}
	if m.vbo != 0 {
		gl.DeleteBuffers(1, &m.vbo)
	}
	if m.ebo != 0 {
		gl.DeleteBuffers(1, &m.ebo)
	}
}

// buildSphere generates a UV sphere: interleaved position (3),
// normal (3) and texture coordinates (2).
func buildSphere(radius float32, segments, rings int) ([]float32, []uint32) {
	var vertices []float32
	var indices []uint32

	for ring := 0; ring <= rings; ring++ {
		theta := float64(ring) * gomath.Pi / float64(rings)
		sinTheta := float32(gomath.Sin(theta))
		cosTheta := float32(gomath.Cos(theta))

		for seg := 0; seg <= segments; seg++ {
			phi := float64(seg) * 2 * gomath.Pi / float64(segments)
			sinPhi := float32(gomath.Sin(phi))
			cosPhi := float32(gomath.Cos(phi))

			x := cosPhi * sinTheta
			y := cosTheta
			z := sinPhi * sinTheta

			vertices = append(vertices,
				x*radius, y*radius, z*radius, // position
				x, y, z, // normal
				float32(seg)/float32(segments), float32(ring)/float32(rings), // uv
			)
		}
	}

	for ring := 0; ring < rings; ring++ {
		for seg := 0; seg < segments; seg++ {
			current := uint32(ring*(segments+1) + seg)
			next := current + uint32(segments) + 1

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return vertices, indices
}

// buildCraft generates the moving object: a slim tetrahedron with its
// nose on +Z and belly on -Y, position only.
func buildCraft(size float32) ([]float32, []uint32) {
	s := size
	vertices := []float32{
		0, 0, 2.2 * s, // nose
		-s, 0.35 * s, -s, // tail left
		s, 0.35 * s, -s, // tail right
		0, -0.45 * s, -s, // belly
	}
	indices := []uint32{
		0, 1, 2, // top
		0, 3, 1, // left
		0, 2, 3, // right
		1, 3, 2, // tail
	}
	return vertices, indices
}

// buildMarker generates a pin marker octahedron, position only.
func buildMarker(size float32) ([]float32, []uint32) {
	s := size
	vertices := []float32{
		s, 0, 0,
		-s, 0, 0,
		0, s, 0,
		0, -s, 0,
		0, 0, s,
		0, 0, -s,
	}
	indices := []uint32{
		2, 0, 4, 2, 4, 1, 2, 1, 5, 2, 5, 0,
		3, 4, 0, 3, 1, 4, 3, 5, 1, 3, 0, 5,
	}
	return vertices, indices
}

// lineMesh is a dynamic polyline buffer for the route.
type lineMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

func newLineMesh() lineMesh {
	var l lineMesh
	gl.GenVertexArrays(1, &l.vao)
	gl.BindVertexArray(l.vao)

	gl.GenBuffers(1, &l.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)
	gl.EnableVertexAttribArray(0)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return l
}

// set replaces the polyline vertices.
func (l *lineMesh) set(points []math.Vec3) {
	l.count = int32(len(points))
	if l.count == 0 {
		return
	}

	data := make([]float32, 0, len(points)*3)
	for _, p := range points {
		data = append(data, p.X, p.Y, p.Z)
	}

	gl.BindBuffer(gl.ARRAY_BUFFER, l.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, unsafe.Pointer(&data[0]), gl.DYNAMIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

func (l *lineMesh) draw() {
	if l.count < 2 {
		return
	}
	gl.BindVertexArray(l.vao)
	gl.DrawArrays(gl.LINE_STRIP, 0, l.count)
	gl.BindVertexArray(0)
}

func (l *lineMesh) delete() {
	if l.vao != 0 {
		gl.DeleteVertexArrays(1, &l.vao)
	}
	if l.vbo != 0 {
		gl.DeleteBuffers(1, &l.vbo)
	}
}
