package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/milk9111/swiper/common"
	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/ecs/entity"
	"github.com/milk9111/swiper/ecs/system"
	"github.com/milk9111/swiper/physics"
	"github.com/milk9111/swiper/prefabs"
	"gopkg.in/yaml.v3"
)

const (
	dragPeriod = 240
	dragTicks  = 60
	dragSpeed  = 12.0
)

type summary struct {
	Frames     int                  `yaml:"frames"`
	Seed       int64                `yaml:"seed"`
	Drags      int                  `yaml:"drags"`
	Final      system.StateSnapshot `yaml:"final"`
	Violations []string             `yaml:"violations,omitempty"`
}

func main() {
	frames := flag.Int("frames", 3600, "ticks to simulate")
	width := flag.Float64("width", common.BaseWidth, "viewport width")
	height := flag.Float64("height", common.BaseHeight, "viewport height")
	seed := flag.Int64("seed", 1, "random seed")
	specPath := flag.String("spec", prefabs.SwiperSpecFile, "scene spec in prefabs/")
	flag.Parse()

	spec, err := prefabs.LoadSwiperSpec(*specPath)
	if err != nil {
		log.Fatal(err)
	}

	s, err := run(spec, *frames, component.Viewport{Width: *width, Height: *height}, *seed)
	if err != nil {
		log.Fatal(err)
	}

	out, err := yaml.Marshal(s)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(string(out))

	if len(s.Violations) > 0 {
		os.Exit(1)
	}
}

// run simulates frames ticks with a scripted back-and-forth drag over the
// track, checking the debris pool after every tick. The last part of the
// run is hands-off so the track can come to rest.
func run(spec *prefabs.SwiperSpec, frames int, vp component.Viewport, seed int64) (*summary, error) {
	w := ecs.NewWorld()
	space := physics.NewSpace(physics.Config{
		Gravity:    spec.Physics.Gravity,
		Damping:    spec.Physics.Damping,
		Iterations: spec.Physics.Iterations,
	})
	rng := rand.New(rand.NewSource(seed))

	scene, err := entity.BuildScene(w, space, spec, vp, rng)
	if err != nil {
		return nil, err
	}
	bodies := space.BodyCount()

	rowY := vp.Height * 0.5
	script := func(tick int) (float64, float64, bool) {
		if tick >= frames-frames/4 {
			return 0, 0, false
		}
		phase := tick % dragPeriod
		dir := 1.0
		if (tick/dragPeriod)%2 == 1 {
			dir = -1
		}
		start := vp.Width * (0.5 + 0.25*dir)
		if phase >= dragTicks {
			return start - dir*dragSpeed*dragTicks, rowY, false
		}
		return start - dir*dragSpeed*float64(phase), rowY, true
	}

	band := system.SpawnBand{Top: spec.Debris.SpawnTop, Bottom: spec.Debris.SpawnBottom}
	p := system.NewPipeline(system.NewScriptedInput(script), space, spec.Physics.Timestep, rng, band)

	s := &summary{Frames: frames, Seed: seed}
	violate := func(format string, args ...any) {
		if len(s.Violations) < 20 {
			s.Violations = append(s.Violations, fmt.Sprintf(format, args...))
		}
	}

	var wasDragging bool
	for tick := 0; tick < frames; tick++ {
		p.Update(w)

		snap := system.Snapshot(w, space, p.Debris)
		if snap.Debris.Count != len(scene.Debris) {
			violate("tick %d: debris count %d, want %d", tick, snap.Debris.Count, len(scene.Debris))
		}
		if snap.Bodies != bodies {
			violate("tick %d: body count %d, want %d", tick, snap.Bodies, bodies)
		}
		if snap.Debris.Below > 0 {
			violate("tick %d: %d debris bodies below the viewport", tick, snap.Debris.Below)
		}
		dragging := snap.Mode == "dragging"
		if dragging && !wasDragging {
			s.Drags++
		}
		wasDragging = dragging
	}

	s.Final = system.Snapshot(w, space, p.Debris)
	if frames > 0 {
		b := s.Final.Bounds
		if s.Final.Offset.Current < b.Min-1e-6 || s.Final.Offset.Current > b.Max+1e-6 {
			violate("resting offset %v outside [%v, %v]", s.Final.Offset.Current, b.Min, b.Max)
		}
	}
	return s, nil
}
