package system

import (
	"testing"

	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/physics"
)

func newTestWorld(t *testing.T, width, height float64) *ecs.World {
	t.Helper()
	w := ecs.NewWorld()
	mustAdd(t, w, w.CreateEntity(), component.ViewportComponent, component.Viewport{Width: width, Height: height})
	mustAdd(t, w, w.CreateEntity(), component.PointerComponent, component.Pointer{})
	return w
}

func mustAdd[T any](t *testing.T, w *ecs.World, e ecs.Entity, h component.ComponentHandle[T], v T) {
	t.Helper()
	if err := ecs.Add(w, e, h, v); err != nil {
		t.Fatalf("add component: %v", err)
	}
}

func addDebris(t *testing.T, w *ecs.World, sim *fakeSim, x, y, vy float64) (ecs.Entity, physics.BodyHandle) {
	t.Helper()
	const width, height = 4.0, 20.0
	h := sim.CreateDynamicBody(physics.BodyOptions{X: x, Y: y, Width: width, Height: height})
	sim.setVelocity(h, 0, vy)

	e := w.CreateEntity()
	mustAdd(t, w, e, component.DebrisComponent, component.Debris{Width: width, Height: height})
	mustAdd(t, w, e, component.PhysicsBodyComponent, component.PhysicsBody{Handle: h, Width: width, Height: height})
	mustAdd(t, w, e, component.TransformComponent, component.Transform{})
	return e, h
}

func setPointer(t *testing.T, w *ecs.World, p component.Pointer) {
	t.Helper()
	_, ptr, ok := ecs.Single(w, component.PointerComponent)
	if !ok {
		t.Fatalf("no pointer entity")
	}
	*ptr = p
}
