package system

import (
	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
	"github.com/milk9111/swiper/swipe"
)

// SwipeSystem drives each track's drag controller from the pointer context.
// Drag begin and end are applied before the controller update so a session
// transition is never observed half-way through a tick.
type SwipeSystem struct{}

func NewSwipeSystem() *SwipeSystem {
	return &SwipeSystem{}
}

func (s *SwipeSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	_, vp, ok := ecs.Single(w, component.ViewportComponent)
	if !ok {
		return
	}
	var p component.Pointer
	if _, ptr, ok := ecs.Single(w, component.PointerComponent); ok {
		p = *ptr
	}

	ecs.ForEach(w, component.TrackComponent, func(e ecs.Entity, track *component.Track) {
		ctrl := track.Controller
		if ctrl == nil {
			return
		}
		track.Top = TrackTop(*vp, ctrl.Layout())

		sig := swipe.Signal{X: p.X, DeltaX: p.DeltaX}
		if p.Pressed && HitTrack(*track, p.X, p.Y) {
			ctrl.BeginDrag(sig)
		}
		if p.Released {
			ctrl.EndDrag(sig)
		}
		ctrl.Update(sig, vp.Width)
	})
}

// TrackTop centres the item row vertically.
func TrackTop(vp component.Viewport, l swipe.Layout) float64 {
	return vp.Height*0.5 - l.ItemWidth*0.5
}

// HitTrack reports whether a screen point lies on the track's current
// on-screen rectangle.
func HitTrack(track component.Track, x, y float64) bool {
	if track.Controller == nil {
		return false
	}
	l := track.Controller.Layout()
	left := track.Controller.Current()
	return x >= left && x <= left+l.Length() &&
		y >= track.Top && y <= track.Top+l.ItemWidth
}
