package globe

import (
	gomath "math"
	"testing"

	"github.com/voyagersim/globeflight/pkg/math"
)

const (
	testRadius = 200.0
	testHeight = 40.0
)

func vecNear(t *testing.T, got, want math.Vec3, eps float32, msg string) {
	t.Helper()
	if got.Distance(want) > eps {
		t.Errorf("%s: got %v, want %v", msg, got, want)
	}
}

func TestBuildArcEndpoints(t *testing.T) {
	a := math.Vec3{X: 1}
	b := math.Vec3{Y: 1}

	arc := BuildArc(a, b, 64, testRadius, 0, testHeight)

	if len(arc) != 65 {
		t.Fatalf("len(arc) = %d, want 65", len(arc))
	}
	vecNear(t, arc[0], a.Scale(testRadius), 1e-3, "arc start")
	vecNear(t, arc[64], b.Scale(testRadius), 1e-3, "arc end")
}

func TestBuildArcRadiusBounds(t *testing.T) {
	a := math.Vec3{X: 1}
	b := math.Vec3{X: -0.2, Y: 0.5, Z: 0.8}.Normalize()
	const base = 1.5

	arc := BuildArc(a, b, 64, testRadius, base, testHeight)

	for i, p := range arc {
		r := p.Length()
		if r < testRadius+base-1e-2 || r > testRadius+base+testHeight+1e-2 {
			t.Errorf("waypoint %d radius = %v, want within [%v, %v]",
				i, r, testRadius+base, testRadius+base+testHeight)
		}
	}

	// Ends carry no added height; the midpoint carries all of it.
	if r := arc[0].Length(); gomath.Abs(float64(r-(testRadius+base))) > 1e-2 {
		t.Errorf("start radius = %v, want %v", r, testRadius+base)
	}
	if r := arc[64].Length(); gomath.Abs(float64(r-(testRadius+base))) > 1e-2 {
		t.Errorf("end radius = %v, want %v", r, testRadius+base)
	}
	if r := arc[32].Length(); gomath.Abs(float64(r-(testRadius+base+testHeight))) > 1e-2 {
		t.Errorf("midpoint radius = %v, want %v", r, testRadius+base+testHeight)
	}
}

func TestBuildArcCoincident(t *testing.T) {
	a := math.Vec3{Z: 1}

	arc := BuildArc(a, a, 16, testRadius, 0, testHeight)

	if len(arc) != 17 {
		t.Fatalf("len(arc) = %d, want 17", len(arc))
	}
	for i, p := range arc {
		if p.X != p.X || p.Y != p.Y || p.Z != p.Z {
			t.Fatalf("waypoint %d is NaN: %v", i, p)
		}
		want := a.Scale(testRadius + float32(gomath.Sin(float64(i)/16*gomath.Pi))*testHeight)
		vecNear(t, p, want, 1e-2, "coincident waypoint")
	}
}

func TestBuildArcAntipodal(t *testing.T) {
	a := math.Vec3{Z: 1}
	b := math.Vec3{Z: -1}

	arc := BuildArc(a, b, 64, testRadius, 0, testHeight)

	vecNear(t, arc[0], a.Scale(testRadius), 1e-2, "antipodal start")
	vecNear(t, arc[64], b.Scale(testRadius), 1e-2, "antipodal end")

	// Midpoint sits at full height, orthogonal to both endpoints.
	mid := arc[32]
	if r := mid.Length(); gomath.Abs(float64(r-(testRadius+testHeight))) > 1e-2 {
		t.Errorf("antipodal midpoint radius = %v, want %v", r, testRadius+testHeight)
	}
	dir := mid.Normalize()
	if d := dir.Dot(a); gomath.Abs(float64(d)) > 1e-3 {
		t.Errorf("midpoint not orthogonal to origin: dot = %v", d)
	}
	if d := dir.Dot(b); gomath.Abs(float64(d)) > 1e-3 {
		t.Errorf("midpoint not orthogonal to destination: dot = %v", d)
	}
}

func TestBuildArcDeterministic(t *testing.T) {
	a := math.Vec3{X: 0.6, Y: 0.8}
	b := math.Vec3{Y: 0.8, Z: 0.6}

	first := BuildArc(a, b, 32, testRadius, 1.5, testHeight)
	second := BuildArc(a, b, 32, testRadius, 1.5, testHeight)

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("waypoint %d differs between runs: %v vs %v", i, first[i], second[i])
		}
	}
}

func TestBuildArcSegmentFloor(t *testing.T) {
	a := math.Vec3{X: 1}
	b := math.Vec3{Y: 1}

	arc := BuildArc(a, b, 0, testRadius, 0, testHeight)
	if len(arc) != 2 {
		t.Errorf("len(arc) with 0 segments = %d, want 2", len(arc))
	}
}
