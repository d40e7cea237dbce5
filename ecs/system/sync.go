package system

import (
	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/physics"
)

// SyncSystem pushes the track offset to the track and item transforms and
// moves each item's static anchor body to match its slot on screen.
type SyncSystem struct {
	sim physics.Simulator
}

func NewSyncSystem(sim physics.Simulator) *SyncSystem {
	return &SyncSystem{sim: sim}
}

func (s *SyncSystem) Update(w *ecs.World) {
	if s == nil || w == nil {
		return
	}
	trackEnt, track, ok := ecs.Single(w, component.TrackComponent)
	if !ok || track.Controller == nil {
		return
	}

	current := track.Controller.Current()
	layout := track.Controller.Layout()

	if t, ok := ecs.GetPtr(w, trackEnt, component.TransformComponent); ok {
		t.X = current
		t.Y = track.Top
	}

	for _, e := range w.Query(component.CarouselItemComponent.Kind(), component.TransformComponent.Kind()) {
		item, _ := ecs.GetPtr(w, e, component.CarouselItemComponent)
		t, _ := ecs.GetPtr(w, e, component.TransformComponent)

		slot := current + layout.SlotX(item.Index)
		t.X = slot
		t.Y = track.Top

		body, ok := ecs.GetPtr(w, e, component.PhysicsBodyComponent)
		if !ok || s.sim == nil {
			continue
		}
		s.sim.SetPosition(body.Handle, slot+layout.ItemWidth*0.5, track.Top+layout.ItemWidth*0.5)
	}
}
