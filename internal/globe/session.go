package globe

import (
	"go.uber.org/zap"

	"github.com/voyagersim/globeflight/pkg/math"
)

// Params are the fixed tuning constants of a session.
type Params struct {
	Radius        float32 // sphere radius R
	ArcSegments   int     // interpolation segments per arc
	ArcBaseOffset float32 // radial clearance of the route above the surface
	ArcHeight     float32 // peak added height at the arc midpoint
	FlightSpeed   float32 // segment fraction per tick
	SpinStep      float32 // radians per tick while spinning
	PinOffset     float32 // marker clearance above the surface
}

// DefaultParams returns the reference tuning.
func DefaultParams() Params {
	return Params{
		Radius:        200,
		ArcSegments:   DefaultArcSegments,
		ArcBaseOffset: 1.5,
		ArcHeight:     40,
		FlightSpeed:   0.04,
		SpinStep:      0.0025,
		PinOffset:     2,
	}
}

// Session owns all mutable simulation state: the pin registry, the
// current arc, the flight animator and the spin flag. Every mutation
// happens on the caller's thread, either in response to a discrete
// input (Pick, Clear, ToggleSpin) or at a tick boundary; nothing here
// is safe for concurrent use and nothing needs to be.
type Session struct {
	params Params
	pins   *Registry
	arc    []math.Vec3
	flight *Flight
	spin   *Spin
	log    *zap.Logger
}

// NewSession creates an idle session. A nil logger disables logging.
func NewSession(params Params, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	return &Session{
		params: params,
		pins:   NewRegistry(params.Radius),
		flight: NewFlight(params.FlightSpeed),
		spin:   NewSpin(params.SpinStep),
		log:    log,
	}
}

// Params returns the session's tuning constants.
func (s *Session) Params() Params {
	return s.params
}

// Pick maps a click to the sphere surface and, on a hit, places a pin.
// The second pin completes the route: the arc is built and the flight
// started. Returns true when a pin was placed; misses and picks on a
// full registry change nothing.
func (s *Session) Pick(x, y float32, vw, vh int, invViewProj math.Mat4) bool {
	invRot := math.RotateY(-s.spin.Angle())
	local, hit := PickSurface(x, y, vw, vh, invViewProj, invRot, s.params.Radius)
	if !hit {
		return false
	}

	pin, added := s.pins.Add(local)
	if !added {
		return false
	}

	s.log.Debug("pin placed",
		zap.String("role", pin.Role.String()),
		zap.Int("count", s.pins.Count()),
	)

	if s.pins.Full() {
		s.rebuildArc()
	}
	return true
}

// Clear removes all pins, discards the arc and stops the flight.
// Idempotent.
func (s *Session) Clear() {
	s.pins.Clear()
	s.arc = nil
	s.flight.Stop()
}

// ToggleSpin flips the sphere rotation and returns the new state.
func (s *Session) ToggleSpin() bool {
	return s.spin.Toggle()
}

// Tick advances the spin and the flight by one simulation step.
func (s *Session) Tick() {
	s.spin.Tick()
	s.flight.Tick()
}

// PinCount returns the number of placed pins.
func (s *Session) PinCount() int {
	return s.pins.Count()
}

// Pins returns the placed pins in placement order.
func (s *Session) Pins() []Pin {
	return s.pins.Pins()
}

// FlightActive reports whether the craft is flying the route.
func (s *Session) FlightActive() bool {
	return s.flight.Active()
}

// FlightState returns the animator's segment index and progress.
func (s *Session) FlightState() (seg int, progress float32) {
	return s.flight.State()
}

// CraftPose returns the craft pose from the last tick; ok is false
// while no flight is active.
func (s *Session) CraftPose() (Pose, bool) {
	if !s.flight.Active() {
		return Pose{}, false
	}
	return s.flight.Pose(), true
}

// Spinning reports whether the sphere rotation is enabled.
func (s *Session) Spinning() bool {
	return s.spin.Enabled()
}

// RotationAngle returns the sphere's accumulated rotation in radians.
func (s *Session) RotationAngle() float32 {
	return s.spin.Angle()
}

// Arc returns the current route waypoints, or nil when no route is set.
func (s *Session) Arc() []math.Vec3 {
	return s.arc
}

// rebuildArc replaces the arc from the completed pin pair and re-arms
// the flight.
func (s *Session) rebuildArc() {
	origin := s.pins.At(0)
	dest := s.pins.At(1)

	s.arc = BuildArc(origin.Dir, dest.Dir,
		s.params.ArcSegments, s.params.Radius, s.params.ArcBaseOffset, s.params.ArcHeight)
	s.flight.Start(s.arc)

	s.log.Info("route built",
		zap.Int("waypoints", len(s.arc)),
		zap.Float32("height", s.params.ArcHeight),
	)
}
