package system

import (
	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/physics"
)

// PhysicsSystem advances the simulator by one fixed step per tick.
type PhysicsSystem struct {
	sim physics.Simulator
	dt  float64
}

func NewPhysicsSystem(sim physics.Simulator, dt float64) *PhysicsSystem {
	return &PhysicsSystem{sim: sim, dt: dt}
}

func (ps *PhysicsSystem) Update(w *ecs.World) {
	if ps == nil || ps.sim == nil {
		return
	}
	ps.sim.Step(ps.dt)
}

func (ps *PhysicsSystem) SetTimestep(dt float64) {
	if dt > 0 {
		ps.dt = dt
	}
}
