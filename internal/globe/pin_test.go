package globe

import (
	"testing"

	"github.com/voyagersim/globeflight/pkg/math"
)

func TestRegistryRoles(t *testing.T) {
	reg := NewRegistry(testRadius)

	first, ok := reg.Add(math.Vec3{Z: 5})
	if !ok {
		t.Fatal("first Add failed")
	}
	if first.Role != RoleOrigin {
		t.Errorf("first pin role = %v, want origin", first.Role)
	}
	vecNear(t, first.Dir, math.Vec3{Z: 1}, 1e-6, "first pin dir")
	vecNear(t, first.Surface, math.Vec3{Z: testRadius}, 1e-3, "first pin surface")

	second, ok := reg.Add(math.Vec3{X: -3})
	if !ok {
		t.Fatal("second Add failed")
	}
	if second.Role != RoleDestination {
		t.Errorf("second pin role = %v, want destination", second.Role)
	}
	if !reg.Full() {
		t.Error("registry should be full after two pins")
	}
}

func TestRegistryCap(t *testing.T) {
	reg := NewRegistry(testRadius)
	reg.Add(math.Vec3{X: 1})
	reg.Add(math.Vec3{Y: 1})

	before := [2]Pin{reg.At(0), reg.At(1)}

	if pin, ok := reg.Add(math.Vec3{Z: 1}); ok || pin != nil {
		t.Errorf("third Add = (%v, %v), want (nil, false)", pin, ok)
	}
	if reg.Count() != 2 {
		t.Errorf("count after third Add = %d, want 2", reg.Count())
	}
	if reg.At(0) != before[0] || reg.At(1) != before[1] {
		t.Error("third Add modified existing pins")
	}
}

func TestRegistryRejectsZeroPoint(t *testing.T) {
	reg := NewRegistry(testRadius)
	if _, ok := reg.Add(math.Vec3{}); ok {
		t.Error("Add accepted a zero-length point")
	}
	if reg.Count() != 0 {
		t.Errorf("count = %d, want 0", reg.Count())
	}
}

func TestRegistryClearIdempotent(t *testing.T) {
	reg := NewRegistry(testRadius)
	reg.Add(math.Vec3{X: 1})
	reg.Add(math.Vec3{Y: 1})

	reg.Clear()
	if reg.Count() != 0 {
		t.Errorf("count after clear = %d, want 0", reg.Count())
	}

	reg.Clear() // second clear changes nothing
	if reg.Count() != 0 {
		t.Errorf("count after double clear = %d, want 0", reg.Count())
	}

	// Roles restart from origin after a clear.
	pin, ok := reg.Add(math.Vec3{Z: 1})
	if !ok || pin.Role != RoleOrigin {
		t.Errorf("pin after clear = (%v, %v), want origin", pin, ok)
	}
}
