package swipe

// Mode is the controller state: either Dragging or Following.
type Mode interface {
	Name() string
	isMode()
}

// Dragging follows the pointer relative to where the drag began.
type Dragging struct {
	AnchorX float64
}

// Following decays the release momentum and eases back inside the bounds.
type Following struct{}

func (Dragging) Name() string { return "dragging" }
func (Following) Name() string { return "following" }

func (Dragging) isMode() {}
func (Following) isMode() {}
