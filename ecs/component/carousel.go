package component

import "github.com/milk9111/swiper/swipe"

// Track is the horizontally draggable strip of carousel items.
type Track struct {
	Controller *swipe.Controller
	// Top is the y of the item row, recomputed from the viewport each frame.
	Top float64
}

var TrackComponent = NewComponent[Track]()

// CarouselItem is one slot on the track. Its PhysicsBody is a static anchor
// that mirrors the slot on screen.
type CarouselItem struct {
	Index int
	// AnchorSize is the side of the square anchor body.
	AnchorSize float64
}

var CarouselItemComponent = NewComponent[CarouselItem]()
