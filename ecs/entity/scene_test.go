package entity

import (
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"testing"

	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/physics"
	"github.com/milk9111/swiper/prefabs"
)

func loadSpec(t *testing.T) *prefabs.SwiperSpec {
	t.Helper()
	spec, err := prefabs.LoadSwiperSpec("")
	if err != nil {
		t.Fatalf("LoadSwiperSpec: %v", err)
	}
	return spec
}

func TestBuildScenePopulatesWorld(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	sim := physics.NewSpace(physics.Config{Gravity: spec.Physics.Gravity, Damping: spec.Physics.Damping})
	vp := component.Viewport{Width: 1280, Height: 720}

	scene, err := BuildScene(w, sim, spec, vp, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("BuildScene: %v", err)
	}

	if len(scene.Items) != spec.Carousel.ItemCount {
		t.Fatalf("items = %d, want %d", len(scene.Items), spec.Carousel.ItemCount)
	}
	if len(scene.Debris) != spec.Debris.Count {
		t.Fatalf("debris = %d, want %d", len(scene.Debris), spec.Debris.Count)
	}
	if got, want := sim.BodyCount(), spec.Carousel.ItemCount+spec.Debris.Count; got != want {
		t.Fatalf("bodies = %d, want %d", got, want)
	}
	if _, _, ok := ecs.Single(w, component.PointerComponent); !ok {
		t.Fatalf("missing pointer singleton")
	}
	if _, got, ok := ecs.Single(w, component.ViewportComponent); !ok || *got != vp {
		t.Fatalf("viewport = %+v, want %+v", got, vp)
	}
	track, ok := ecs.Get(w, scene.Track, component.TrackComponent)
	if !ok || track.Controller == nil {
		t.Fatalf("track has no controller")
	}
	if track.Controller.Current() != 0 {
		t.Fatalf("initial offset = %v, want 0", track.Controller.Current())
	}
}

func TestBuildCarouselAnchorsMatchSlots(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	sim := physics.NewSpace(physics.Config{})
	vp := component.Viewport{Width: 1000, Height: 800}

	_, items, err := BuildCarousel(w, sim, spec, vp)
	if err != nil {
		t.Fatalf("BuildCarousel: %v", err)
	}

	width := spec.Carousel.ItemWidth
	top := vp.Height*0.5 - width*0.5
	for i, e := range items {
		item, _ := ecs.Get(w, e, component.CarouselItemComponent)
		if item.Index != i {
			t.Fatalf("item %d has index %d", i, item.Index)
		}
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)
		if sprite.Label != ItemLabel(i) {
			t.Fatalf("item %d label = %q", i, sprite.Label)
		}
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if !body.Static || body.Width != width*spec.Carousel.AnchorScale {
			t.Fatalf("item %d anchor = %+v", i, body)
		}
		state := sim.State(body.Handle)
		wantX := float64(i)*width + width*0.5
		if math.Abs(state.X-wantX) > 1e-9 || math.Abs(state.Y-(top+width*0.5)) > 1e-9 {
			t.Fatalf("item %d anchor at (%v, %v), want (%v, %v)", i, state.X, state.Y, wantX, top+width*0.5)
		}
	}
}

func TestBuildDebrisSeedsAboveViewport(t *testing.T) {
	spec := loadSpec(t)
	w := ecs.NewWorld()
	sim := physics.NewSpace(physics.Config{})
	vp := component.Viewport{Width: 640, Height: 480}

	debris, err := BuildDebris(w, sim, spec.Debris, FormulaStyle{Spec: spec.Debris}, vp, rand.New(rand.NewSource(7)))
	if err != nil {
		t.Fatalf("BuildDebris: %v", err)
	}

	for i, e := range debris {
		body, _ := ecs.Get(w, e, component.PhysicsBodyComponent)
		if body.Static {
			t.Fatalf("debris %d is static", i)
		}
		state := sim.State(body.Handle)
		if state.X < 0 || state.X > vp.Width {
			t.Fatalf("debris %d x = %v outside [0, %v]", i, state.X, vp.Width)
		}
		if state.Y < -spec.Debris.SpawnTop*vp.Height || state.Y > -spec.Debris.SpawnBottom*vp.Height {
			t.Fatalf("debris %d y = %v outside spawn band", i, state.Y)
		}
		if math.Abs(state.Angle) > spec.Debris.MaxAngle {
			t.Fatalf("debris %d angle = %v", i, state.Angle)
		}
		d, _ := ecs.Get(w, e, component.DebrisComponent)
		if d.Width < spec.Debris.MinWidth || d.Width > spec.Debris.MaxWidth || d.Height != spec.Debris.Height {
			t.Fatalf("debris %d size = %vx%v", i, d.Width, d.Height)
		}
		sprite, _ := ecs.Get(w, e, component.SpriteComponent)
		if sprite.Fill.A != 0xff || sprite.Width != d.Width {
			t.Fatalf("debris %d sprite = %+v", i, sprite)
		}
	}
}

func TestScriptStyleMatchesSpecRanges(t *testing.T) {
	spec := loadSpec(t)
	style, err := NewScriptStyle(spec.Debris.StyleScript, spec.Debris)
	if err != nil {
		t.Fatalf("NewScriptStyle: %v", err)
	}

	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 50; i++ {
		shape, err := style.Shape(i, rng)
		if err != nil {
			t.Fatalf("Shape(%d): %v", i, err)
		}
		if shape.Width < spec.Debris.MinWidth || shape.Width > spec.Debris.MaxWidth {
			t.Fatalf("width %v outside [%v, %v]", shape.Width, spec.Debris.MinWidth, spec.Debris.MaxWidth)
		}
		if shape.Mass < spec.Debris.MinMass || shape.Mass > spec.Debris.MaxMass {
			t.Fatalf("mass %v outside [%v, %v]", shape.Mass, spec.Debris.MinMass, spec.Debris.MaxMass)
		}
		if shape.Height != spec.Debris.Height {
			t.Fatalf("height = %v, want %v", shape.Height, spec.Debris.Height)
		}
		if shape.FillHue < 0 || shape.FillHue >= 1 {
			t.Fatalf("fill hue = %v", shape.FillHue)
		}
	}
}

func TestNewDebrisStyleFallsBackOnBrokenScript(t *testing.T) {
	dir := t.TempDir()
	prev := prefabs.Dir
	prefabs.Dir = dir
	t.Cleanup(func() { prefabs.Dir = prev })

	scripts := filepath.Join(dir, "scripts")
	if err := os.MkdirAll(scripts, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(scripts, "broken.tengo"), []byte("width := ("), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	spec := loadSpec(t).Debris
	spec.StyleScript = "broken.tengo"
	if _, ok := NewDebrisStyle(spec).(FormulaStyle); !ok {
		t.Fatalf("expected formula fallback for a script that does not compile")
	}

	spec.StyleScript = "missing.tengo"
	if _, ok := NewDebrisStyle(spec).(FormulaStyle); !ok {
		t.Fatalf("expected formula fallback for a missing script")
	}
}

func TestItemLabel(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "001"},
		{9, "010"},
		{41, "042"},
		{998, "999"},
	}
	for _, c := range cases {
		if got := ItemLabel(c.index); got != c.want {
			t.Fatalf("ItemLabel(%d) = %q, want %q", c.index, got, c.want)
		}
	}
}

func TestBuildSceneRejectsNilInputs(t *testing.T) {
	spec := loadSpec(t)
	if _, err := BuildScene(ecs.NewWorld(), nil, spec, component.Viewport{}, rand.New(rand.NewSource(1))); err == nil {
		t.Fatalf("expected error for nil simulator")
	}
	if _, err := BuildScene(ecs.NewWorld(), physics.NewSpace(physics.Config{}), nil, component.Viewport{}, rand.New(rand.NewSource(1))); err == nil {
		t.Fatalf("expected error for nil spec")
	}
}
