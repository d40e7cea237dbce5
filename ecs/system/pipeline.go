package system

import (
	"math/rand"

	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/physics"
)

// Pipeline is the per-tick system order: input, physics step, debris
// recycling, swipe control, then visual sync.
type Pipeline struct {
	*ecs.Scheduler
	Physics *PhysicsSystem
	Debris  *DebrisSystem
	Swipe   *SwipeSystem
	Sync    *SyncSystem
}

func NewPipeline(input ecs.System, sim physics.Simulator, dt float64, rng *rand.Rand, band SpawnBand) *Pipeline {
	p := &Pipeline{
		Physics: NewPhysicsSystem(sim, dt),
		Debris:  NewDebrisSystem(sim, rng, band),
		Swipe:   NewSwipeSystem(),
		Sync:    NewSyncSystem(sim),
	}
	p.Scheduler = ecs.NewScheduler()
	if input != nil {
		p.Scheduler.Add(input)
	}
	p.Scheduler.Add(p.Physics)
	p.Scheduler.Add(p.Debris)
	p.Scheduler.Add(p.Swipe)
	p.Scheduler.Add(p.Sync)
	return p
}
