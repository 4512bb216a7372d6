package globe

import "github.com/voyagersim/globeflight/pkg/math"

// Role identifies a pin's place in the route.
type Role int

const (
	RoleOrigin Role = iota
	RoleDestination
)

// String returns the role name for logging.
func (r Role) String() string {
	if r == RoleOrigin {
		return "origin"
	}
	return "destination"
}

// MaxPins is the number of markers a route consists of.
const MaxPins = 2

// Pin is a placed marker in the sphere's local frame. Dir is always a
// unit vector; Surface is Dir scaled to the sphere radius.
type Pin struct {
	Role    Role
	Dir     math.Vec3
	Surface math.Vec3
}

// Registry holds the placed pins, at most MaxPins, in placement order.
type Registry struct {
	radius float32
	pins   []Pin
}

// NewRegistry creates an empty registry for a sphere of the given radius.
func NewRegistry(radius float32) *Registry {
	return &Registry{
		radius: radius,
		pins:   make([]Pin, 0, MaxPins),
	}
}

// Add places a pin at the given local-frame point. The point is
// normalized to the surface; its role follows placement order. Add is a
// no-op returning (nil, false) when the registry is full or the point
// is degenerate.
func (r *Registry) Add(local math.Vec3) (*Pin, bool) {
	if len(r.pins) >= MaxPins {
		return nil, false
	}

	dir := local.Normalize()
	if dir.IsZero() {
		return nil, false
	}

	pin := Pin{
		Role:    Role(len(r.pins)),
		Dir:     dir,
		Surface: dir.Scale(r.radius),
	}
	r.pins = append(r.pins, pin)
	return &r.pins[len(r.pins)-1], true
}

// Clear removes all pins. Idempotent.
func (r *Registry) Clear() {
	r.pins = r.pins[:0]
}

// Count returns the number of placed pins.
func (r *Registry) Count() int {
	return len(r.pins)
}

// Full reports whether both route endpoints are placed.
func (r *Registry) Full() bool {
	return len(r.pins) == MaxPins
}

// Pins returns the placed pins in placement order.
func (r *Registry) Pins() []Pin {
	return r.pins
}

// At returns the pin at index i.
func (r *Registry) At(i int) Pin {
	return r.pins[i]
}
