package system

import "github.com/milk9111/swiper/physics"

// fakeSim moves every dynamic body at a constant velocity with no gravity
// or collisions, so tests can predict exactly when a body leaves the screen.
type fakeSim struct {
	bodies []fakeBody
	steps  int
	sets   []physics.BodyHandle
}

type fakeBody struct {
	state  physics.BodyState
	vx, vy float64
	static bool
}

var _ physics.Simulator = (*fakeSim)(nil)

func (f *fakeSim) Step(dt float64) {
	f.steps++
	for i := range f.bodies {
		b := &f.bodies[i]
		if b.static {
			continue
		}
		b.state.X += b.vx * dt
		b.state.Y += b.vy * dt
	}
}

func (f *fakeSim) SetPosition(h physics.BodyHandle, x, y float64) {
	if !f.valid(h) {
		return
	}
	f.sets = append(f.sets, h)
	f.bodies[h-1].state.X = x
	f.bodies[h-1].state.Y = y
}

func (f *fakeSim) State(h physics.BodyHandle) physics.BodyState {
	if !f.valid(h) {
		return physics.BodyState{}
	}
	return f.bodies[h-1].state
}

func (f *fakeSim) CreateStaticBody(opts physics.BodyOptions) physics.BodyHandle {
	return f.add(fakeBody{state: physics.BodyState{X: opts.X, Y: opts.Y, Angle: opts.Angle}, static: true})
}

func (f *fakeSim) CreateDynamicBody(opts physics.BodyOptions) physics.BodyHandle {
	return f.add(fakeBody{state: physics.BodyState{X: opts.X, Y: opts.Y, Angle: opts.Angle}})
}

func (f *fakeSim) BodyCount() int {
	return len(f.bodies)
}

func (f *fakeSim) setVelocity(h physics.BodyHandle, vx, vy float64) {
	f.bodies[h-1].vx = vx
	f.bodies[h-1].vy = vy
}

func (f *fakeSim) add(b fakeBody) physics.BodyHandle {
	f.bodies = append(f.bodies, b)
	return physics.BodyHandle(len(f.bodies))
}

func (f *fakeSim) valid(h physics.BodyHandle) bool {
	return h.Valid() && int(h) <= len(f.bodies)
}
