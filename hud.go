package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/swiper/ecs/system"
	"golang.design/x/clipboard"
	"golang.org/x/image/font/basicfont"
)

// HUD is the stats panel in the top-left corner with the pause, physics
// debug and copy-state buttons.
type HUD struct {
	ui       *ebitenui.UI
	stats    *widget.Text
	pauseBtn *widget.Button
	debugBtn *widget.Button

	game      *Game
	clipboard bool
}

func NewHUD(g *Game) *HUD {
	h := &HUD{game: g}
	if err := clipboard.Init(); err != nil {
		log.Printf("hud: clipboard unavailable: %v", err)
	} else {
		h.clipboard = true
	}

	panelImg := imageui.NewNineSliceColor(color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 180})
	btnIdle := imageui.NewNineSliceColor(color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 255})
	btnHover := imageui.NewNineSliceColor(color.NRGBA{R: 0x44, G: 0x44, B: 0x44, A: 255})
	btnPressed := imageui.NewNineSliceColor(color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 255})

	var face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	btnTextColor := &widget.ButtonTextColor{Idle: white, Hover: white, Pressed: white}

	h.stats = widget.NewText(
		widget.TextOpts.Text("", &face, white),
	)

	button := func(label string, onClick func()) *widget.Button {
		return widget.NewButton(
			widget.ButtonOpts.Image(&widget.ButtonImage{Idle: btnIdle, Hover: btnHover, Pressed: btnPressed}),
			widget.ButtonOpts.Text(label, &face, btnTextColor),
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(96, 24)),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				onClick()
			}),
		)
	}

	h.pauseBtn = button("Pause", func() { g.paused = !g.paused })
	h.debugBtn = button("Physics: Off", func() { g.debug = !g.debug })
	copyBtn := button("Copy state", h.copyState)

	buttons := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)
	buttons.AddChild(h.pauseBtn)
	buttons.AddChild(h.debugBtn)
	buttons.AddChild(copyBtn)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(panelImg),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(8),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 10, Bottom: 10, Left: 12, Right: 12}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	panel.AddChild(h.stats)
	panel.AddChild(buttons)

	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)
	root.AddChild(panel)

	h.ui = &ebitenui.UI{Container: root}
	return h
}

func (h *HUD) Update(snap system.StateSnapshot) {
	if h == nil {
		return
	}
	h.stats.Label = StatsText(snap, ebiten.ActualFPS(), h.game.paused)
	pause := "Pause"
	if h.game.paused {
		pause = "Resume"
	}
	debug := "Physics: Off"
	if h.game.debug {
		debug = "Physics: On"
	}
	setButtonLabel(h.pauseBtn, pause)
	setButtonLabel(h.debugBtn, debug)
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil {
		return
	}
	h.ui.Draw(screen)
}

// StatsText formats the HUD stats block.
func StatsText(snap system.StateSnapshot, fps float64, paused bool) string {
	mode := snap.Mode
	if paused {
		mode += " (paused)"
	}
	return fmt.Sprintf(
		"offset %8.1f  target %8.1f\nbounds [%.0f, %.0f]  follow %6.2f\nmode %s\ndebris %d  reseeds %d\nFPS %.1f",
		snap.Offset.Current, snap.Offset.Target,
		snap.Bounds.Min, snap.Bounds.Max, snap.Offset.Follow,
		mode,
		snap.Debris.Count, snap.Debris.Reseeds,
		fps,
	)
}

func (h *HUD) copyState() {
	if !h.clipboard {
		log.Printf("hud: clipboard unavailable; state not copied")
		return
	}
	data, err := h.game.StateYAML()
	if err != nil {
		log.Printf("hud: marshal state: %v", err)
		return
	}
	clipboard.Write(clipboard.FmtText, data)
	log.Printf("hud: copied %d bytes of state", len(data))
}

func setButtonLabel(b *widget.Button, label string) {
	if b == nil {
		return
	}
	if text := b.Text(); text != nil && text.Label != label {
		text.Label = label
	}
}
