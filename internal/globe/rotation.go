package globe

import gomath "math"

// Spin accumulates the sphere's own rotation around the vertical axis.
// Pins and arcs live in the sphere's local frame, so they follow the
// rotation with no extra bookkeeping.
type Spin struct {
	enabled bool
	angle   float32
	step    float32
}

// NewSpin creates a disabled spin advancing by step radians per tick.
func NewSpin(step float32) *Spin {
	return &Spin{step: step}
}

// Toggle flips the spin flag and returns the new state.
func (s *Spin) Toggle() bool {
	s.enabled = !s.enabled
	return s.enabled
}

// Enabled reports whether the sphere is spinning.
func (s *Spin) Enabled() bool {
	return s.enabled
}

// Angle returns the accumulated rotation in radians, kept in [0, 2pi).
func (s *Spin) Angle() float32 {
	return s.angle
}

// Tick advances the rotation by one step when enabled.
func (s *Spin) Tick() {
	if !s.enabled {
		return
	}
	s.angle += s.step
	if s.angle >= 2*gomath.Pi {
		s.angle -= 2 * gomath.Pi
	}
}
