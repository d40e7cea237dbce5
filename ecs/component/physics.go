package component

import "github.com/milk9111/swiper/physics"

// PhysicsBody links an entity to its body in the simulator.
type PhysicsBody struct {
	Handle physics.BodyHandle
	Width  float64
	Height float64
	Mass   float64
	Static bool
}

var PhysicsBodyComponent = NewComponent[PhysicsBody]()
