// Package swipe turns pointer samples into the horizontal offset of the
// carousel track: live following while dragging, elastic resistance past
// the scroll bounds, and momentum decay with rubber-band easing after the
// pointer is released.
package swipe

import (
	"errors"
	"fmt"

	"github.com/milk9111/swiper/common"
)

var ErrInvalidLayout = errors.New("swipe: invalid layout")

// Layout describes the track: items laid out edge-to-edge starting at x=0.
type Layout struct {
	ItemCount int
	ItemWidth float64
}

// Validate rejects layouts that would feed NaN or empty indexing into the
// per-frame loop.
func (l Layout) Validate() error {
	if l.ItemCount <= 0 {
		return fmt.Errorf("%w: item count %d must be positive", ErrInvalidLayout, l.ItemCount)
	}
	if !(l.ItemWidth > 0) {
		return fmt.Errorf("%w: item width %v must be positive", ErrInvalidLayout, l.ItemWidth)
	}
	return nil
}

// Length is the total track length in pixels.
func (l Layout) Length() float64 {
	return l.SlotX(l.ItemCount-1) + l.ItemWidth
}

// SlotX is the track-local left edge of item i.
func (l Layout) SlotX(i int) float64 {
	return l.ItemWidth * float64(i)
}

// Tuning holds the per-tick filter constants.
type Tuning struct {
	// FollowDecay is the fraction of the release velocity removed each tick.
	FollowDecay float64
	// EdgeEase is the fraction of the distance to the violated bound
	// recovered each tick while resting out of bounds.
	EdgeEase float64
	// EdgeResistance scales drag motion past a bound.
	EdgeResistance float64
}

func DefaultTuning() Tuning {
	return Tuning{
		FollowDecay:    0.1,
		EdgeEase:       0.2,
		EdgeResistance: 0.5,
	}
}

// Signal is the slice of pointer state the controller reads.
type Signal struct {
	X float64
	// DeltaX is the pointer's last horizontal displacement, previous minus
	// current sample.
	DeltaX float64
}

// Offset is the track offset state. Only the Controller mutates it.
type Offset struct {
	Current float64
	Target  float64
	Start   float64
	Follow  float64
}

// Controller is the two-state drag/follow machine.
type Controller struct {
	layout Layout
	tuning Tuning
	mode   Mode
	bounds Bounds
	offset Offset
}

func NewController(layout Layout, tuning Tuning) (*Controller, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	return &Controller{
		layout: layout,
		tuning: tuning,
		mode:   Following{},
	}, nil
}

func (c *Controller) Layout() Layout { return c.layout }
func (c *Controller) Tuning() Tuning { return c.tuning }
func (c *Controller) Mode() Mode { return c.mode }
func (c *Controller) Bounds() Bounds { return c.bounds }
func (c *Controller) Offset() Offset { return c.offset }

// Current is the offset to apply to the track this frame.
func (c *Controller) Current() float64 { return c.offset.Current }

func (c *Controller) SetTuning(t Tuning) {
	c.tuning = t
}

func (c *Controller) Dragging() bool {
	_, ok := c.mode.(Dragging)
	return ok
}

// BeginDrag enters Dragging, anchoring at the pointer and snapshotting the
// current offset. A second begin while already dragging re-anchors.
func (c *Controller) BeginDrag(s Signal) {
	c.transition(Dragging{AnchorX: s.X}, s)
}

// EndDrag returns to Following and captures the release momentum. It is a
// no-op when no drag is active.
func (c *Controller) EndDrag(s Signal) {
	if !c.Dragging() {
		return
	}
	c.transition(Following{}, s)
}

func (c *Controller) transition(next Mode, s Signal) {
	switch next.(type) {
	case Dragging:
		c.offset.Start = c.offset.Current
	case Following:
		c.offset.Start = c.offset.Current
		c.offset.Follow = s.DeltaX * -1
	}
	c.mode = next
}

// Update advances one tick and returns the new current offset. Bounds are
// recomputed from the layout and the viewport width on every call.
func (c *Controller) Update(s Signal, viewportWidth float64) float64 {
	c.bounds = ComputeBounds(c.layout, viewportWidth)
	b := c.bounds

	switch m := c.mode.(type) {
	case Dragging:
		move := (m.AnchorX - s.X) * -1
		target := Resist(c.offset.Start+move, b, c.tuning.EdgeResistance)
		c.offset.Target = target
		c.offset.Current = target
	default:
		c.offset.Follow += (0 - c.offset.Follow) * c.tuning.FollowDecay
		c.offset.Start += c.offset.Follow
		target := c.offset.Start + c.offset.Follow
		c.offset.Target = target

		switch {
		case target > b.Max:
			c.offset.Current += (b.Max - c.offset.Current) * c.tuning.EdgeEase
		case target < b.Min:
			c.offset.Current += (b.Min - c.offset.Current) * c.tuning.EdgeEase
		default:
			c.offset.Current = common.Clamp(target, b.Min, b.Max)
		}
	}
	return c.offset.Current
}
