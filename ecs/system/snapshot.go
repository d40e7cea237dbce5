package system

import (
	"math"

	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/physics"
)

// StateSnapshot is a serializable view of the scene used by the HUD and
// the headless soak runner.
type StateSnapshot struct {
	Mode     string         `yaml:"mode"`
	Offset   OffsetSnapshot `yaml:"offset"`
	Bounds   BoundsSnapshot `yaml:"bounds"`
	Viewport ViewportSize   `yaml:"viewport"`
	Debris   DebrisSnapshot `yaml:"debris"`
	Bodies   int            `yaml:"bodies"`
}

type OffsetSnapshot struct {
	Current float64 `yaml:"current"`
	Target  float64 `yaml:"target"`
	Start   float64 `yaml:"start"`
	Follow  float64 `yaml:"follow"`
}

type BoundsSnapshot struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type ViewportSize struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type DebrisSnapshot struct {
	Count   int `yaml:"count"`
	Reseeds int `yaml:"reseeds"`
	// Below counts bodies whose centre is under the viewport bottom. It is
	// zero right after the debris system has run.
	Below int     `yaml:"below"`
	MaxY  float64 `yaml:"max_y"`
}

// Snapshot reads the current scene state. sim may be nil, in which case
// body positions are not inspected.
func Snapshot(w *ecs.World, sim physics.Simulator, debris *DebrisSystem) StateSnapshot {
	var snap StateSnapshot
	if w == nil {
		return snap
	}

	if _, vp, ok := ecs.Single(w, component.ViewportComponent); ok {
		snap.Viewport = ViewportSize{Width: vp.Width, Height: vp.Height}
	}

	if _, track, ok := ecs.Single(w, component.TrackComponent); ok && track.Controller != nil {
		o := track.Controller.Offset()
		b := track.Controller.Bounds()
		snap.Mode = track.Controller.Mode().Name()
		snap.Offset = OffsetSnapshot{Current: o.Current, Target: o.Target, Start: o.Start, Follow: o.Follow}
		snap.Bounds = BoundsSnapshot{Min: b.Min, Max: b.Max}
	}

	snap.Debris.Reseeds = debris.Reseeds()
	snap.Debris.MaxY = math.Inf(-1)
	for _, e := range w.Query(component.DebrisComponent.Kind(), component.PhysicsBodyComponent.Kind()) {
		snap.Debris.Count++
		if sim == nil {
			continue
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		y := sim.State(body.Handle).Y
		if y > snap.Debris.MaxY {
			snap.Debris.MaxY = y
		}
		if y > snap.Viewport.Height {
			snap.Debris.Below++
		}
	}
	if snap.Debris.Count == 0 || sim == nil {
		snap.Debris.MaxY = 0
	}
	if sim != nil {
		snap.Bodies = sim.BodyCount()
	}

	return snap
}
