package system

import (
	"math"
	"math/rand"
	"testing"

	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/physics"
)

func TestDebrisReseedsBodyBelowViewport(t *testing.T) {
	const vw, vh = 800.0, 600.0
	band := DefaultSpawnBand()

	for seed := int64(0); seed < 200; seed++ {
		w := newTestWorld(t, vw, vh)
		sim := &fakeSim{}
		e, h := addDebris(t, w, sim, 400, vh+1, 0)

		sys := NewDebrisSystem(sim, rand.New(rand.NewSource(seed)), band)
		sys.Update(w)

		got := sim.State(h)
		if got.X < 0 || got.X > vw {
			t.Fatalf("seed %d: x = %v outside [0, %v]", seed, got.X, vw)
		}
		if got.Y < -band.Top*vh || got.Y > -band.Bottom*vh {
			t.Fatalf("seed %d: y = %v outside [%v, %v]", seed, got.Y, -band.Top*vh, -band.Bottom*vh)
		}
		if len(sim.sets) != 1 {
			t.Fatalf("seed %d: expected one SetPosition, got %d", seed, len(sim.sets))
		}
		d, _ := ecs.Get(w, e, component.DebrisComponent)
		if d.Reseeds != 1 || sys.Reseeds() != 1 {
			t.Fatalf("seed %d: reseeds body=%d system=%d, want 1", seed, d.Reseeds, sys.Reseeds())
		}
	}
}

func TestDebrisOnBoundaryIsNotReseeded(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	sim := &fakeSim{}
	addDebris(t, w, sim, 100, 600, 0)

	NewDebrisSystem(sim, rand.New(rand.NewSource(1)), DefaultSpawnBand()).Update(w)
	if len(sim.sets) != 0 {
		t.Fatalf("body exactly at the bottom edge should not be reseeded")
	}
}

func TestDebrisSyncsVisualWithoutTouchingPhysics(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	sim := &fakeSim{}
	e, h := addDebris(t, w, sim, 200, -100, 60)
	sim.bodies[h-1].state.Angle = math.Pi / 2

	sys := NewDebrisSystem(sim, rand.New(rand.NewSource(1)), DefaultSpawnBand())
	physicsSys := NewPhysicsSystem(sim, 1.0/60.0)

	for i := 0; i < 300; i++ {
		physicsSys.Update(w)
		sys.Update(w)

		state := sim.State(h)
		tr, _ := ecs.Get(w, e, component.TransformComponent)
		if math.Abs(tr.X-(state.X-2)) > 1e-9 || math.Abs(tr.Y-(state.Y-10)) > 1e-9 {
			t.Fatalf("tick %d: transform (%v, %v) does not mirror body (%v, %v)", i, tr.X, tr.Y, state.X, state.Y)
		}
		if math.Abs(tr.Rotation-90) > 1e-9 {
			t.Fatalf("tick %d: rotation = %v, want 90", i, tr.Rotation)
		}
	}
	if len(sim.sets) != 0 {
		t.Fatalf("recycler wrote %d positions without a boundary crossing", len(sim.sets))
	}
}

func TestDebrisReseedsOncePerTick(t *testing.T) {
	w := newTestWorld(t, 800, 600)
	sim := &fakeSim{}
	_, h := addDebris(t, w, sim, 100, 5000, 0)

	sys := NewDebrisSystem(sim, rand.New(rand.NewSource(3)), DefaultSpawnBand())
	sys.Update(w)
	if len(sim.sets) != 1 {
		t.Fatalf("expected a single reseed, got %d", len(sim.sets))
	}
	if sim.State(h).Y > 0 {
		t.Fatalf("reseeded body should be above the viewport, y=%v", sim.State(h).Y)
	}

	sys.Update(w)
	if len(sim.sets) != 1 {
		t.Fatalf("body above the viewport must not be reseeded again")
	}
}

func TestDebrisPoolSizeIsStable(t *testing.T) {
	const (
		vw, vh = 1280.0, 720.0
		pool   = 300
		dt     = 1.0 / 60.0
	)
	rng := rand.New(rand.NewSource(99))
	band := DefaultSpawnBand()
	vp := component.Viewport{Width: vw, Height: vh}

	w := newTestWorld(t, vw, vh)
	sim := &fakeSim{}
	handles := make(map[physics.BodyHandle]ecs.Entity, pool)
	for i := 0; i < pool; i++ {
		x, y := SpawnPoint(rng, vp, band)
		if y >= 0 {
			t.Fatalf("initial spawn y=%v is not above the viewport", y)
		}
		e, h := addDebris(t, w, sim, x, y, 200+rng.Float64()*400)
		handles[h] = e
	}

	physicsSys := NewPhysicsSystem(sim, dt)
	debrisSys := NewDebrisSystem(sim, rng, band)

	crossed := func() bool {
		for _, e := range handles {
			d, _ := ecs.Get(w, e, component.DebrisComponent)
			if d.Reseeds == 0 {
				return false
			}
		}
		return true
	}

	ticks := 0
	for !crossed() {
		if ticks > 10000 {
			t.Fatalf("not every body crossed the bottom after %d ticks", ticks)
		}
		physicsSys.Update(w)
		debrisSys.Update(w)
		ticks++

		for h := range handles {
			if y := sim.State(h).Y; y > vh {
				t.Fatalf("tick %d: body %d left below the viewport at y=%v", ticks, h, y)
			}
		}
	}

	if got := len(w.Query(component.DebrisComponent.Kind())); got != pool {
		t.Fatalf("live debris = %d, want %d", got, pool)
	}
	if sim.BodyCount() != pool {
		t.Fatalf("simulator bodies = %d, want %d", sim.BodyCount(), pool)
	}

	total := 0
	for _, e := range handles {
		d, _ := ecs.Get(w, e, component.DebrisComponent)
		total += d.Reseeds
	}
	if total != debrisSys.Reseeds() || total != len(sim.sets) {
		t.Fatalf("reseed accounting mismatch: bodies=%d system=%d sets=%d", total, debrisSys.Reseeds(), len(sim.sets))
	}
}
