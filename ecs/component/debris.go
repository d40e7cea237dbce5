package component

// Debris marks a falling body recycled at the viewport bottom. Width and
// Height match both the body box and the visual rectangle.
type Debris struct {
	Width   float64
	Height  float64
	Reseeds int
}

var DebrisComponent = NewComponent[Debris]()
