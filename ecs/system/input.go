package system

import (
	"slices"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/swiper/ecs"
	"github.com/milk9111/swiper/ecs/component"
)

// PointerTracker folds raw pointer samples into the per-tick Pointer
// context: press/release edges, drag start position and last delta.
type PointerTracker struct {
	last    component.Pointer
	wasDown bool
}

// Sample records one tick of pointer state.
func (t *PointerTracker) Sample(x, y float64, down bool) component.Pointer {
	p := t.last
	p.Pressed = down && !t.wasDown
	p.Released = !down && t.wasDown
	p.Down = down

	switch {
	case p.Pressed:
		p.StartX, p.StartY = x, y
		p.DeltaX, p.DeltaY = 0, 0
	case down:
		p.DeltaX, p.DeltaY = p.X-x, p.Y-y
	}
	p.X, p.Y = x, y

	t.last = p
	t.wasDown = down
	return p
}

// Last returns the most recent sample.
func (t *PointerTracker) Last() component.Pointer {
	return t.last
}

// InputSystem samples the mouse or the first active touch into the pointer
// entity.
type InputSystem struct {
	tracker PointerTracker
	touches []ebiten.TouchID
	touchID ebiten.TouchID
	touch   bool
}

func NewInputSystem() *InputSystem {
	return &InputSystem{}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	x, y, down := i.read()
	p := i.tracker.Sample(x, y, down)
	p.Touch = i.touch

	ecs.ForEach(w, component.PointerComponent, func(e ecs.Entity, ptr *component.Pointer) {
		*ptr = p
	})
}

func (i *InputSystem) read() (float64, float64, bool) {
	i.touches = ebiten.AppendTouchIDs(i.touches[:0])
	if len(i.touches) > 0 {
		if !i.touch || !slices.Contains(i.touches, i.touchID) {
			i.touchID = i.touches[0]
		}
		i.touch = true
		tx, ty := ebiten.TouchPosition(i.touchID)
		return float64(tx), float64(ty), true
	}

	if i.touch {
		// The finger is gone; release where it was last seen.
		i.touch = false
		last := i.tracker.Last()
		return last.X, last.Y, false
	}

	cx, cy := ebiten.CursorPosition()
	return float64(cx), float64(cy), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

// PointerScript produces the raw pointer sample for a tick.
type PointerScript func(tick int) (x, y float64, down bool)

// ScriptedInput feeds the pointer entity from a PointerScript instead of
// the window, for headless runs.
type ScriptedInput struct {
	tracker PointerTracker
	script  PointerScript
	tick    int
}

func NewScriptedInput(script PointerScript) *ScriptedInput {
	return &ScriptedInput{script: script}
}

func (s *ScriptedInput) Update(w *ecs.World) {
	if s == nil || s.script == nil || w == nil {
		return
	}
	x, y, down := s.script(s.tick)
	s.tick++
	p := s.tracker.Sample(x, y, down)
	ecs.ForEach(w, component.PointerComponent, func(e ecs.Entity, ptr *component.Pointer) {
		*ptr = p
	})
}
