// Package physics wraps the rigid-body simulator behind the narrow surface
// the motion systems need.
package physics

// BodyHandle identifies a body inside a Simulator. The zero value is never
// a valid handle.
type BodyHandle int

func (h BodyHandle) Valid() bool {
	return h > 0
}

// BodyState is the authoritative position (body centre) and angle in
// radians of a body.
type BodyState struct {
	X     float64
	Y     float64
	Angle float64
}

type BodyOptions struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
	Angle  float64
	Mass   float64
}

// Simulator advances bodies under gravity. Reads of an unknown handle return
// the zero state and writes to it are ignored.
type Simulator interface {
	Step(dt float64)
	SetPosition(h BodyHandle, x, y float64)
	State(h BodyHandle) BodyState
	CreateStaticBody(opts BodyOptions) BodyHandle
	CreateDynamicBody(opts BodyOptions) BodyHandle
	BodyCount() int
}
