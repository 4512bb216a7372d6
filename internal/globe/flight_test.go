package globe

import (
	gomath "math"
	"testing"

	"github.com/voyagersim/globeflight/pkg/math"
)

func testArc(segments int) []math.Vec3 {
	a := math.Vec3{Z: 1}
	b := math.Vec3{X: 1}
	return BuildArc(a, b, segments, testRadius, 1.5, testHeight)
}

func TestFlightStartState(t *testing.T) {
	f := NewFlight(0.04)
	if f.Active() {
		t.Error("new flight should be idle")
	}

	f.Start(testArc(64))
	if !f.Active() {
		t.Error("flight inactive after Start")
	}
	seg, progress := f.State()
	if seg != 0 || progress != 0 {
		t.Errorf("state after Start = (%d, %v), want (0, 0)", seg, progress)
	}
}

func TestFlightBasisOrthonormal(t *testing.T) {
	f := NewFlight(0.1)
	f.Start(testArc(64))

	// More than one full loop.
	for i := 0; i < 64*10+20; i++ {
		f.Tick()
		p := f.Pose()

		checks := []struct {
			name string
			dot  float32
		}{
			{"forward.up", p.Forward.Dot(p.Up)},
			{"forward.right", p.Forward.Dot(p.Right)},
			{"up.right", p.Up.Dot(p.Right)},
		}
		for _, c := range checks {
			if gomath.Abs(float64(c.dot)) > 1e-3 {
				t.Fatalf("tick %d: %s = %v, want ~0", i, c.name, c.dot)
			}
		}
		for _, v := range []math.Vec3{p.Forward, p.Up, p.Right} {
			if l := v.Length(); l < 0.999 || l > 1.001 {
				t.Fatalf("tick %d: basis vector length %v, want ~1", i, l)
			}
		}

		// Belly stays toward the sphere: up never points inward.
		if p.Up.Dot(p.Position.Normalize()) < 0 {
			t.Fatalf("tick %d: up points into the sphere", i)
		}
	}
}

func TestFlightWrapsForward(t *testing.T) {
	f := NewFlight(1.0) // one segment per tick
	f.Start(testArc(4))

	wantSegs := []int{1, 2, 3, 4, 1, 2, 3, 4, 1}
	for i, want := range wantSegs {
		f.Tick()
		seg, progress := f.State()
		if seg != want || progress != 0 {
			t.Fatalf("after tick %d: state = (%d, %v), want (%d, 0)", i+1, seg, progress, want)
		}
	}
}

func TestFlightPositionWithinRoute(t *testing.T) {
	f := NewFlight(0.04)
	arc := testArc(64)
	f.Start(arc)

	const base = 1.5
	for i := 0; i < 64*30; i++ {
		f.Tick()
		r := f.Pose().Position.Length()
		if r < testRadius+base-1 || r > testRadius+base+testHeight+1 {
			t.Fatalf("tick %d: craft radius %v outside route bounds", i, r)
		}
	}
}

func TestFlightStopIdempotent(t *testing.T) {
	f := NewFlight(0.04)
	f.Start(testArc(8))

	f.Stop()
	if f.Active() {
		t.Error("flight active after Stop")
	}
	f.Stop() // no-op
	f.Tick() // no-op while stopped
	if seg, progress := f.State(); seg != 0 || progress != 0 {
		t.Errorf("state after stop = (%d, %v), want (0, 0)", seg, progress)
	}
}

func TestFlightRestartReplacesArc(t *testing.T) {
	f := NewFlight(0.5)
	f.Start(testArc(8))
	f.Tick()
	f.Tick()
	f.Tick()

	f.Start(testArc(16))
	seg, progress := f.State()
	if seg != 0 || progress != 0 {
		t.Errorf("state after restart = (%d, %v), want (0, 0)", seg, progress)
	}
}

func TestFlightDegenerateArc(t *testing.T) {
	f := NewFlight(0.25)
	a := math.Vec3{Z: 1}
	f.Start(BuildArc(a, a, 8, testRadius, 0, 0))

	for i := 0; i < 20; i++ {
		f.Tick()
		p := f.Pose().Position
		if p.X != p.X || p.Y != p.Y || p.Z != p.Z {
			t.Fatalf("tick %d: NaN position %v", i, p)
		}
		vecNear(t, p, a.Scale(testRadius), 1e-2, "degenerate route position")
	}
}

func TestFlightShortArcIgnored(t *testing.T) {
	f := NewFlight(0.1)
	f.Start([]math.Vec3{{X: testRadius}})
	if f.Active() {
		t.Error("flight started on a single-point arc")
	}
}
