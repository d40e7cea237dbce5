package system

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/swiper/common"
	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"golang.org/x/image/font/basicfont"
)

const labelScale = 3

var backgroundColor = color.NRGBA{R: 0x16, G: 0x16, B: 0x1a, A: 0xff}

// RenderSystem draws the track items and the debris from their transforms.
type RenderSystem struct {
	pixel *ebiten.Image
	face  text.Face
}

func NewRenderSystem() *RenderSystem {
	pixel := ebiten.NewImage(1, 1)
	pixel.Fill(color.White)
	return &RenderSystem{
		pixel: pixel,
		face:  text.NewGoXFace(basicfont.Face7x13),
	}
}

func (r *RenderSystem) Draw(w *ecs.World, screen *ebiten.Image) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(backgroundColor)

	for _, e := range w.Query(component.CarouselItemComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)
		r.drawSprite(screen, t, s)
		r.drawLabel(screen, t, s)
	}

	for _, e := range w.Query(component.DebrisComponent.Kind(), component.TransformComponent.Kind(), component.SpriteComponent.Kind()) {
		t, _ := ecs.Get(w, e, component.TransformComponent)
		s, _ := ecs.Get(w, e, component.SpriteComponent)
		r.drawSprite(screen, t, s)
	}
}

func (r *RenderSystem) drawSprite(screen *ebiten.Image, t component.Transform, s component.Sprite) {
	x, y := t.X+s.OffsetX, t.Y+s.OffsetY
	if s.Border.A > 0 {
		r.drawRect(screen, x-1, y-1, s.Width+2, s.Height+2, t.Rotation, s.Border)
	}
	r.drawRect(screen, x, y, s.Width, s.Height, t.Rotation, s.Fill)
}

// drawRect fills a w*h rectangle whose unrotated top-left is (x, y),
// rotated by deg about its centre.
func (r *RenderSystem) drawRect(screen *ebiten.Image, x, y, w, h, deg float64, c color.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(-w/2, -h/2)
	if deg != 0 {
		op.GeoM.Rotate(common.Radians(deg))
	}
	op.GeoM.Translate(x+w/2, y+h/2)
	op.ColorScale.ScaleWithColor(c)
	screen.DrawImage(r.pixel, op)
}

func (r *RenderSystem) drawLabel(screen *ebiten.Image, t component.Transform, s component.Sprite) {
	if s.Label == "" {
		return
	}
	tw, th := text.Measure(s.Label, r.face, 0)
	op := &text.DrawOptions{}
	op.GeoM.Scale(labelScale, labelScale)
	op.GeoM.Translate(t.X+s.OffsetX+(s.Width-tw*labelScale)/2, t.Y+s.OffsetY+(s.Height-th*labelScale)/2)
	op.ColorScale.ScaleWithColor(color.Black)
	text.Draw(screen, s.Label, r.face, op)
}
