package physics

import (
	"github.com/jakecoffman/cp"
)

const (
	defaultMass     = 1.0
	defaultBodySize = 1.0
)

type Config struct {
	Gravity    float64
	Damping    float64
	Iterations int
}

type entry struct {
	body   *cp.Body
	shape  *cp.Shape
	static bool
}

// Space is a Chipmunk2D-backed Simulator. Coordinates are screen space with
// y pointing down, so positive gravity pulls bodies toward the bottom.
type Space struct {
	space  *cp.Space
	bodies []entry
}

var _ Simulator = (*Space)(nil)

func NewSpace(cfg Config) *Space {
	space := cp.NewSpace()
	iterations := cfg.Iterations
	if iterations <= 0 {
		iterations = 10
	}
	space.Iterations = uint(iterations)
	space.SetGravity(cp.Vector{X: 0, Y: cfg.Gravity})
	if cfg.Damping > 0 {
		space.SetDamping(cfg.Damping)
	}
	return &Space{space: space}
}

// Space returns the underlying Chipmunk space.
func (s *Space) Space() *cp.Space {
	if s == nil {
		return nil
	}
	return s.space
}

func (s *Space) SetGravity(g float64) {
	s.space.SetGravity(cp.Vector{X: 0, Y: g})
}

// SetDamping sets the fraction of velocity bodies keep per second.
func (s *Space) SetDamping(d float64) {
	if d <= 0 {
		d = 1
	}
	s.space.SetDamping(d)
}

func (s *Space) Step(dt float64) {
	if dt <= 0 {
		return
	}
	s.space.Step(dt)
}

func (s *Space) BodyCount() int {
	return len(s.bodies)
}

func (s *Space) CreateDynamicBody(opts BodyOptions) BodyHandle {
	w, h := boxSize(opts)
	mass := opts.Mass
	if mass <= 0 {
		mass = defaultMass
	}

	body := cp.NewBody(mass, cp.MomentForBox(mass, w, h))
	body.SetPosition(cp.Vector{X: opts.X, Y: opts.Y})
	body.SetAngle(opts.Angle)

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0.1)
	shape.SetElasticity(0.1)

	s.space.AddBody(body)
	s.space.AddShape(shape)
	return s.add(entry{body: body, shape: shape})
}

// CreateStaticBody adds a box that never responds to forces. Each static
// box owns its own static body so it can be moved independently.
func (s *Space) CreateStaticBody(opts BodyOptions) BodyHandle {
	w, h := boxSize(opts)

	body := cp.NewStaticBody()
	body.SetPosition(cp.Vector{X: opts.X, Y: opts.Y})
	body.SetAngle(opts.Angle)

	shape := cp.NewBox(body, w, h, 0)
	shape.SetFriction(0.5)
	shape.SetElasticity(0.2)

	s.space.AddBody(body)
	s.space.AddShape(shape)
	return s.add(entry{body: body, shape: shape, static: true})
}

// SetPosition teleports a body. Velocity and angular state are preserved;
// static bodies are reindexed so collision queries see the new location.
func (s *Space) SetPosition(h BodyHandle, x, y float64) {
	e, ok := s.lookup(h)
	if !ok {
		return
	}
	e.body.SetPosition(cp.Vector{X: x, Y: y})
	if e.static {
		s.space.ReindexShapesForBody(e.body)
	}
}

func (s *Space) State(h BodyHandle) BodyState {
	e, ok := s.lookup(h)
	if !ok {
		return BodyState{}
	}
	p := e.body.Position()
	return BodyState{X: p.X, Y: p.Y, Angle: e.body.Angle()}
}

// Velocity reports a body's linear velocity.
func (s *Space) Velocity(h BodyHandle) (float64, float64) {
	e, ok := s.lookup(h)
	if !ok {
		return 0, 0
	}
	v := e.body.Velocity()
	return v.X, v.Y
}

func (s *Space) add(e entry) BodyHandle {
	s.bodies = append(s.bodies, e)
	return BodyHandle(len(s.bodies))
}

func (s *Space) lookup(h BodyHandle) (entry, bool) {
	if s == nil || !h.Valid() || int(h) > len(s.bodies) {
		return entry{}, false
	}
	return s.bodies[h-1], true
}

func boxSize(opts BodyOptions) (float64, float64) {
	w, h := opts.Width, opts.Height
	if w <= 0 {
		w = defaultBodySize
	}
	if h <= 0 {
		h = defaultBodySize
	}
	return w, h
}
