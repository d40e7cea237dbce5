package swipe

// Bounds is the allowed range of the track offset. Min <= Max always holds.
type Bounds struct {
	Min float64
	Max float64
}

// ComputeBounds derives the scroll range for a layout shown in a viewport
// of the given width. Max is 0; Min pulls the last item's right edge to the
// viewport's right edge. Content narrower than the viewport collapses to
// Min == Max == 0.
func ComputeBounds(l Layout, viewportWidth float64) Bounds {
	b := Bounds{Max: 0}
	if l.ItemCount <= 0 {
		return b
	}
	b.Min = -(l.SlotX(l.ItemCount-1) + l.ItemWidth) + viewportWidth
	if b.Min > b.Max {
		b.Min = b.Max
	}
	return b
}

func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// Resist applies elastic resistance to a drag target that overshoots a
// bound: only factor of the overshoot is kept.
func Resist(target float64, b Bounds, factor float64) float64 {
	if target > b.Max {
		target = b.Max + (target-b.Max)*factor
	}
	if target < b.Min {
		target = b.Min + (target-b.Min)*factor
	}
	return target
}
