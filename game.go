package main

import (
	"fmt"
	"log"
	"math/rand"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/milk9111/swiper/common"
	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/ecs/entity"
	"github.com/milk9111/swiper/ecs/system"
	"github.com/milk9111/swiper/physics"
	"github.com/milk9111/swiper/prefabs"
	"github.com/milk9111/swiper/swipe"
	"gopkg.in/yaml.v3"
)

type Game struct {
	frames int

	specPath string
	spec     *prefabs.SwiperSpec

	world    *ecs.World
	space    *physics.Space
	pipeline *system.Pipeline
	render   *system.RenderSystem
	scene    *entity.Scene

	hud     *HUD
	watcher *prefabs.Watcher

	width, height float64
	cursor        ebiten.CursorShapeType

	paused bool
	debug  bool
}

type GameOptions struct {
	SpecPath string
	Seed     int64
	Debug    bool
	Watch    bool
}

func NewGame(opts GameOptions) (*Game, error) {
	spec, err := prefabs.LoadSwiperSpec(opts.SpecPath)
	if err != nil {
		return nil, err
	}

	g := &Game{
		specPath: opts.SpecPath,
		spec:     spec,
		world:    ecs.NewWorld(),
		space: physics.NewSpace(physics.Config{
			Gravity:    spec.Physics.Gravity,
			Damping:    spec.Physics.Damping,
			Iterations: spec.Physics.Iterations,
		}),
		render: system.NewRenderSystem(),
		width:  common.BaseWidth,
		height: common.BaseHeight,
		debug:  opts.Debug,
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	vp := component.Viewport{Width: g.width, Height: g.height}
	g.scene, err = entity.BuildScene(g.world, g.space, spec, vp, rng)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}

	band := system.SpawnBand{Top: spec.Debris.SpawnTop, Bottom: spec.Debris.SpawnBottom}
	g.pipeline = system.NewPipeline(system.NewInputSystem(), g.space, spec.Physics.Timestep, rng, band)

	if opts.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Printf("prefabs: hot reload disabled: %v", err)
		} else {
			g.watcher = w
		}
	}

	g.hud = NewHUD(g)
	log.Printf("swiper: %d items, %d debris, seed %d", len(g.scene.Items), len(g.scene.Debris), opts.Seed)
	return g, nil
}

func (g *Game) Update() error {
	g.frames++

	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF3) {
		g.debug = !g.debug
	}

	g.pollWatcher()
	g.hud.Update(g.snapshot())

	if g.paused {
		g.setCursor(ebiten.CursorShapeDefault)
		return nil
	}

	if _, vp, ok := ecs.Single(g.world, component.ViewportComponent); ok {
		vp.Width = g.width
		vp.Height = g.height
	}

	g.pipeline.Update(g.world)
	g.updateCursor()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.render.Draw(g.world, screen)
	if g.debug {
		physics.DrawDebug(g.space, screen)
	}
	g.hud.Draw(screen)
}

func (g *Game) LayoutF(outsideWidth, outsideHeight float64) (float64, float64) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	panic("shouldn't use Layout")
}

func (g *Game) Close() {
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) track() *component.Track {
	_, track, ok := ecs.Single(g.world, component.TrackComponent)
	if !ok {
		return nil
	}
	return track
}

func (g *Game) snapshot() system.StateSnapshot {
	return system.Snapshot(g.world, g.space, g.pipeline.Debris)
}

// StateYAML renders the current scene state for the clipboard.
func (g *Game) StateYAML() ([]byte, error) {
	return yaml.Marshal(g.snapshot())
}

func (g *Game) updateCursor() {
	shape := ebiten.CursorShapeDefault
	if track := g.track(); track != nil && track.Controller != nil {
		if track.Controller.Dragging() {
			shape = ebiten.CursorShapeEWResize
		} else if _, p, ok := ecs.Single(g.world, component.PointerComponent); ok && system.HitTrack(*track, p.X, p.Y) {
			shape = ebiten.CursorShapePointer
		}
	}
	g.setCursor(shape)
}

func (g *Game) setCursor(shape ebiten.CursorShapeType) {
	if shape == g.cursor {
		return
	}
	g.cursor = shape
	ebiten.SetCursorShape(shape)
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	select {
	case err, ok := <-g.watcher.Errors:
		if ok {
			log.Printf("prefabs: watch error: %v", err)
		}
	default:
	}

	for {
		name, ok := g.watcher.Poll()
		if !ok {
			return
		}
		g.reload(name)
	}
}

// reload applies the tunable parts of a changed spec. Layout and pool
// changes need a restart since bodies and entities already exist.
func (g *Game) reload(name string) {
	if filepath.Ext(name) == ".tengo" {
		log.Printf("prefabs: %s changed; restart to restyle debris", filepath.Base(name))
		return
	}
	want := g.specPath
	if want == "" {
		want = prefabs.SwiperSpecFile
	}
	if filepath.Base(name) != filepath.Base(want) {
		return
	}

	spec, err := prefabs.LoadSwiperSpec(g.specPath)
	if err != nil {
		log.Printf("prefabs: reload %s: %v", filepath.Base(name), err)
		return
	}

	if track := g.track(); track != nil && track.Controller != nil {
		track.Controller.SetTuning(swipe.Tuning{
			FollowDecay:    spec.Motion.FollowDecay,
			EdgeEase:       spec.Motion.EdgeEase,
			EdgeResistance: spec.Motion.EdgeResistance,
		})
	}
	g.space.SetGravity(spec.Physics.Gravity)
	g.space.SetDamping(spec.Physics.Damping)
	g.pipeline.Physics.SetTimestep(spec.Physics.Timestep)

	if spec.Carousel != g.spec.Carousel || spec.Debris != g.spec.Debris {
		log.Printf("prefabs: %s changed carousel or debris; restart to apply", filepath.Base(name))
	}
	g.spec = spec
	log.Printf("prefabs: reloaded %s", filepath.Base(name))
}
