package globe

import (
	gomath "math"

	"github.com/voyagersim/globeflight/pkg/math"
)

// DefaultArcSegments is the number of interpolation segments per arc.
const DefaultArcSegments = 64

// thetaEpsilon bounds the angle below which two directions are treated
// as coincident and slerp would divide by sin(0).
const thetaEpsilon = 1e-6

// BuildArc returns the great-circle route between two unit directions
// as segments+1 waypoints in the sphere's local frame. Each waypoint
// sits at radius + baseOffset + sin(t*pi)*height, so the added height
// is zero at both endpoints and maximal at the midpoint.
//
// The function is pure and deterministic. Coincident directions yield
// segments+1 copies of the origin point; exact antipodes follow a
// consistently chosen meridian (see arcOrthogonal).
func BuildArc(a, b math.Vec3, segments int, radius, baseOffset, height float32) []math.Vec3 {
	if segments < 1 {
		segments = 1
	}

	dot := float64(a.Dot(b))
	// Floating error can push the dot product just outside [-1, 1].
	if dot > 1 {
		dot = 1
	} else if dot < -1 {
		dot = -1
	}
	theta := gomath.Acos(dot)
	sinTheta := gomath.Sin(theta)

	// At theta ~ pi the slerp weights sin((1-t)theta) and sin(t*theta)
	// cancel against each other and the plane of the circle is
	// ambiguous. Pick a fixed orthogonal axis and walk the meridian
	// through it instead.
	antipodal := gomath.Pi-theta < 1e-4
	var ortho math.Vec3
	if antipodal {
		ortho = arcOrthogonal(a)
	}

	points := make([]math.Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		t := float64(i) / float64(segments)

		var dir math.Vec3
		switch {
		case theta < thetaEpsilon:
			dir = a
		case antipodal:
			c := float32(gomath.Cos(t * theta))
			s := float32(gomath.Sin(t * theta))
			dir = a.Scale(c).Add(ortho.Scale(s)).Normalize()
		default:
			wa := float32(gomath.Sin((1-t)*theta) / sinTheta)
			wb := float32(gomath.Sin(t*theta) / sinTheta)
			dir = a.Scale(wa).Add(b.Scale(wb)).Normalize()
		}

		lift := float32(gomath.Sin(t*gomath.Pi)) * height
		points[i] = dir.Scale(radius + baseOffset + lift)
	}
	return points
}

// arcOrthogonal returns a unit vector orthogonal to a, chosen
// deterministically so antipodal routes always take the same meridian.
func arcOrthogonal(a math.Vec3) math.Vec3 {
	o := a.Cross(math.Vec3{Y: 1})
	if o.Length() < 1e-4 {
		o = a.Cross(math.Vec3{X: 1})
	}
	return o.Normalize()
}
