package component

// Viewport is the visible screen size in pixels.
type Viewport struct {
	Width  float64
	Height float64
}

var ViewportComponent = NewComponent[Viewport]()
