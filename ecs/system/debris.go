package system

import (
	"math/rand"

	"github.com/milk9111/swiper/common"
	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/physics"
)

// SpawnBand is the area above the viewport where debris is (re)seeded,
// as fractions of the viewport height measured upward from y=0.
type SpawnBand struct {
	Top    float64
	Bottom float64
}

func DefaultSpawnBand() SpawnBand {
	return SpawnBand{Top: 0.5, Bottom: 0.1}
}

// SpawnPoint picks a body centre uniformly across the viewport width and
// inside the band above it.
func SpawnPoint(rng *rand.Rand, vp component.Viewport, band SpawnBand) (float64, float64) {
	x := common.RandomRange(rng, 0, vp.Width)
	y := common.RandomRange(rng, -band.Top*vp.Height, -band.Bottom*vp.Height)
	return x, y
}

// DebrisSystem recycles falling bodies. A body below the viewport bottom is
// reseeded above the viewport through the simulator; every other body has
// its physics state mirrored onto its transform.
type DebrisSystem struct {
	sim     physics.Simulator
	rng     *rand.Rand
	band    SpawnBand
	reseeds int
}

func NewDebrisSystem(sim physics.Simulator, rng *rand.Rand, band SpawnBand) *DebrisSystem {
	return &DebrisSystem{sim: sim, rng: rng, band: band}
}

// Reseeds reports how many bodies have been recycled so far.
func (d *DebrisSystem) Reseeds() int {
	if d == nil {
		return 0
	}
	return d.reseeds
}

func (d *DebrisSystem) Update(w *ecs.World) {
	if d == nil || d.sim == nil || w == nil {
		return
	}
	_, vp, ok := ecs.Single(w, component.ViewportComponent)
	if !ok {
		return
	}

	for _, e := range w.Query(component.DebrisComponent.Kind(), component.PhysicsBodyComponent.Kind(), component.TransformComponent.Kind()) {
		debris, _ := ecs.GetPtr(w, e, component.DebrisComponent)
		body, _ := ecs.GetPtr(w, e, component.PhysicsBodyComponent)
		transform, _ := ecs.GetPtr(w, e, component.TransformComponent)

		state := d.sim.State(body.Handle)
		if state.Y > vp.Height {
			x, y := SpawnPoint(d.rng, *vp, d.band)
			d.sim.SetPosition(body.Handle, x, y)
			debris.Reseeds++
			d.reseeds++
			continue
		}

		transform.X = state.X - debris.Width*0.5
		transform.Y = state.Y - debris.Height*0.5
		transform.Rotation = common.Degrees(state.Angle)
	}
}
