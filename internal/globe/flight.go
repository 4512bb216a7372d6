package globe

import "github.com/voyagersim/globeflight/pkg/math"

// Pose is the craft's position and orientation basis along the arc.
// Forward points along the direction of travel, Up away from the
// sphere center, Right completes the right-handed frame.
type Pose struct {
	Position math.Vec3
	Forward  math.Vec3
	Up       math.Vec3
	Right    math.Vec3
}

// Basis returns the pose as a rotation matrix (craft nose on local +Z,
// belly on local -Y).
func (p Pose) Basis() math.Mat4 {
	return math.FromBasis(p.Right, p.Up, p.Forward)
}

// Flight advances a craft along an arc, one segment at a time, wrapping
// back to the first segment at the end of the route. State is
// {segment, progress, active}; Start rebinds and resets it, Stop parks
// it. Both are idempotent and safe in any state.
type Flight struct {
	arc      []math.Vec3
	seg      int
	progress float32
	speed    float32
	active   bool
	pose     Pose
}

// NewFlight creates an idle animator advancing by speed (fraction of a
// segment) per tick.
func NewFlight(speed float32) *Flight {
	return &Flight{speed: speed}
}

// Start binds the animator to an arc and restarts from the first
// segment. Arcs shorter than one segment leave the animator idle.
func (f *Flight) Start(arc []math.Vec3) {
	if len(arc) < 2 {
		f.Stop()
		return
	}
	f.arc = arc
	f.seg = 0
	f.progress = 0
	f.active = true
	f.pose = Pose{}
	f.advance()
}

// Stop deactivates the animator. Safe to call repeatedly.
func (f *Flight) Stop() {
	f.active = false
	f.arc = nil
	f.seg = 0
	f.progress = 0
}

// Active reports whether a flight is running.
func (f *Flight) Active() bool {
	return f.active
}

// State returns the current segment index and intra-segment progress.
func (f *Flight) State() (seg int, progress float32) {
	return f.seg, f.progress
}

// Pose returns the craft pose computed by the last tick.
func (f *Flight) Pose() Pose {
	return f.pose
}

// Tick advances the flight by one simulation step.
func (f *Flight) Tick() {
	if !f.active {
		return
	}

	// Route end: wrap to the first segment and keep flying the same
	// direction. The craft never shuttles back.
	if f.seg >= len(f.arc)-1 {
		f.seg = 0
		f.progress = 0
	}

	f.advance()

	f.progress += f.speed
	if f.progress >= 1 {
		f.progress = 0
		f.seg++
	}
}

// advance interpolates the position within the current segment and
// rebuilds the orientation basis.
func (f *Flight) advance() {
	from := f.arc[f.seg]
	to := f.arc[f.seg+1]

	pos := from.Lerp(to, f.progress)
	forward := to.Sub(from).Normalize()
	up := pos.Normalize() // radially outward
	right := forward.Cross(up).Normalize()
	correctedUp := right.Cross(forward).Normalize()

	if forward.IsZero() {
		// Degenerate segment (coincident pins): hold position, keep
		// whatever orientation the previous segment produced.
		f.pose.Position = pos
		return
	}

	f.pose = Pose{
		Position: pos,
		Forward:  forward,
		Up:       correctedUp,
		Right:    right,
	}
}
