package entity

import (
	"errors"
	"fmt"
	"log"
	"math/rand"

	"github.com/milk9111/swiper/common"
	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/ecs/system"
	"github.com/milk9111/swiper/physics"
	"github.com/milk9111/swiper/prefabs"
	"github.com/milk9111/swiper/swipe"
)

var ErrNilSimulator = errors.New("entity: simulator is nil")

// Scene holds the entities created by BuildScene.
type Scene struct {
	Pointer  ecs.Entity
	Viewport ecs.Entity
	Track    ecs.Entity
	Items    []ecs.Entity
	Debris   []ecs.Entity
}

// BuildScene populates w with the pointer and viewport singletons, the
// carousel track and its items, and the debris pool. Bodies are created in
// sim; the debris pool is seeded above the viewport.
func BuildScene(w *ecs.World, sim physics.Simulator, spec *prefabs.SwiperSpec, vp component.Viewport, rng *rand.Rand) (*Scene, error) {
	if w == nil {
		return nil, errors.New("entity: world is nil")
	}
	if sim == nil {
		return nil, ErrNilSimulator
	}
	if spec == nil {
		return nil, fmt.Errorf("entity: %w: nil spec", prefabs.ErrInvalidSpec)
	}

	scene := &Scene{}
	var err error

	scene.Pointer = w.CreateEntity()
	if err := ecs.Add(w, scene.Pointer, component.PointerComponent, component.Pointer{}); err != nil {
		return nil, err
	}
	scene.Viewport = w.CreateEntity()
	if err := ecs.Add(w, scene.Viewport, component.ViewportComponent, vp); err != nil {
		return nil, err
	}

	if scene.Track, scene.Items, err = BuildCarousel(w, sim, spec, vp); err != nil {
		return nil, err
	}
	if scene.Debris, err = BuildDebris(w, sim, spec.Debris, NewDebrisStyle(spec.Debris), vp, rng); err != nil {
		return nil, err
	}

	return scene, nil
}

// BuildCarousel creates the track entity and one item per slot. Each item
// owns a static square anchor body centred on its slot.
func BuildCarousel(w *ecs.World, sim physics.Simulator, spec *prefabs.SwiperSpec, vp component.Viewport) (ecs.Entity, []ecs.Entity, error) {
	c := spec.Carousel
	layout := swipe.Layout{ItemCount: c.ItemCount, ItemWidth: c.ItemWidth}
	tuning := swipe.Tuning{
		FollowDecay:    spec.Motion.FollowDecay,
		EdgeEase:       spec.Motion.EdgeEase,
		EdgeResistance: spec.Motion.EdgeResistance,
	}
	ctrl, err := swipe.NewController(layout, tuning)
	if err != nil {
		return 0, nil, err
	}

	top := system.TrackTop(vp, layout)
	track := w.CreateEntity()
	if err := ecs.Add(w, track, component.TrackComponent, component.Track{Controller: ctrl, Top: top}); err != nil {
		return 0, nil, err
	}
	if err := ecs.Add(w, track, component.TransformComponent, component.Transform{Y: top, ScaleX: 1, ScaleY: 1}); err != nil {
		return 0, nil, err
	}

	anchor := c.ItemWidth * c.AnchorScale
	inner := c.ItemWidth - c.ItemGap
	items := make([]ecs.Entity, 0, c.ItemCount)
	for i := 0; i < c.ItemCount; i++ {
		slot := layout.SlotX(i)
		handle := sim.CreateStaticBody(physics.BodyOptions{
			X:      slot + c.ItemWidth*0.5,
			Y:      top + c.ItemWidth*0.5,
			Width:  anchor,
			Height: anchor,
		})

		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.CarouselItemComponent, component.CarouselItem{Index: i, AnchorSize: anchor}); err != nil {
			return 0, nil, err
		}
		if err := ecs.Add(w, e, component.TransformComponent, component.Transform{X: slot, Y: top, ScaleX: 1, ScaleY: 1}); err != nil {
			return 0, nil, err
		}
		if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
			Width:   inner,
			Height:  inner,
			OffsetX: c.ItemGap * 0.5,
			OffsetY: c.ItemGap * 0.5,
			Fill:    c.Fill.NRGBA,
			Border:  c.Border.NRGBA,
			Label:   ItemLabel(i),
		}); err != nil {
			return 0, nil, err
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
			Handle: handle,
			Width:  anchor,
			Height: anchor,
			Static: true,
		}); err != nil {
			return 0, nil, err
		}
		items = append(items, e)
	}

	return track, items, nil
}

// ItemLabel is the three digit number shown on the index-th item.
func ItemLabel(index int) string {
	return fmt.Sprintf("%03d", index+1)
}

// BuildDebris creates spec.Count dynamic bodies spread across the spawn
// band above the viewport.
func BuildDebris(w *ecs.World, sim physics.Simulator, spec prefabs.DebrisSpec, style DebrisStyle, vp component.Viewport, rng *rand.Rand) ([]ecs.Entity, error) {
	if style == nil {
		style = FormulaStyle{Spec: spec}
	}
	fallback := FormulaStyle{Spec: spec}
	band := system.SpawnBand{Top: spec.SpawnTop, Bottom: spec.SpawnBottom}

	out := make([]ecs.Entity, 0, spec.Count)
	for i := 0; i < spec.Count; i++ {
		shape, err := style.Shape(i, rng)
		if err != nil {
			log.Printf("debris: body %d: %v", i, err)
			shape, _ = fallback.Shape(i, rng)
		}

		x, y := system.SpawnPoint(rng, vp, band)
		angle := common.RandomRange(rng, -spec.MaxAngle, spec.MaxAngle)
		handle := sim.CreateDynamicBody(physics.BodyOptions{
			X:      x,
			Y:      y,
			Width:  shape.Width,
			Height: shape.Height,
			Angle:  angle,
			Mass:   shape.Mass,
		})

		e := w.CreateEntity()
		if err := ecs.Add(w, e, component.DebrisComponent, component.Debris{Width: shape.Width, Height: shape.Height}); err != nil {
			return nil, err
		}
		if err := ecs.Add(w, e, component.PhysicsBodyComponent, component.PhysicsBody{
			Handle: handle,
			Width:  shape.Width,
			Height: shape.Height,
			Mass:   shape.Mass,
		}); err != nil {
			return nil, err
		}
		if err := ecs.Add(w, e, component.TransformComponent, component.Transform{
			X:        x - shape.Width*0.5,
			Y:        y - shape.Height*0.5,
			ScaleX:   1,
			ScaleY:   1,
			Rotation: common.Degrees(angle),
		}); err != nil {
			return nil, err
		}
		if err := ecs.Add(w, e, component.SpriteComponent, component.Sprite{
			Width:  shape.Width,
			Height: shape.Height,
			Fill:   common.HSL(shape.FillHue, spec.Saturation, spec.Lightness),
			Border: common.HSL(shape.BorderHue, spec.Saturation, spec.Lightness),
		}); err != nil {
			return nil, err
		}
		out = append(out, e)
	}

	return out, nil
}
