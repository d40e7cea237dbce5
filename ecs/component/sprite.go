package component

import "image/color"

// Sprite is a flat rectangle with an optional one pixel border and label,
// drawn OffsetX/OffsetY inside the entity's transform.
type Sprite struct {
	Width   float64
	Height  float64
	OffsetX float64
	OffsetY float64
	Fill    color.NRGBA
	Border  color.NRGBA
	Label   string
}

var SpriteComponent = NewComponent[Sprite]()
