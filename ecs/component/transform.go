package component

// Transform is the visual placement of an entity: top-left corner in screen
// pixels and rotation in degrees, clockwise, about the centre.
type Transform struct {
	X        float64
	Y        float64
	ScaleX   float64
	ScaleY   float64
	Rotation float64
}

var TransformComponent = NewComponent[Transform]()
