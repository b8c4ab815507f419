// Package phys moves axis-aligned bodies through a tile grid: a gravity
// stepper with step-up and snap-down assists, a kinematic mover for
// entities that mirror a leader's motion, a corner unstick pass, and a
// same-class separation solver. Bodies are plain data and every operation
// is a free function, synchronous and single-threaded; the map is only
// ever observed through a tilegrid.SolidSource.
package phys

import "github.com/pondworks/gaggle/tilegrid"

// Body is an axis-aligned box with sub-pixel position and size in world
// pixels and velocity in pixels per second. One frame mutates it through
// Step or MoveBy, then Unstick, then Separate, in that order.
type Body struct {
	X, Y   float64
	W, H   float64
	VX, VY float64
}

// Rect returns the body's box.
func (b *Body) Rect() tilegrid.Rect {
	return tilegrid.Rect{X: b.X, Y: b.Y, W: b.W, H: b.H}
}

// CenterX returns the horizontal center of the body.
func (b *Body) CenterX() float64 { return b.X + b.W/2 }

// CenterY returns the vertical center of the body.
func (b *Body) CenterY() float64 { return b.Y + b.H/2 }

// State holds the contact flags of the most recent step. Step and MoveBy
// recompute it from scratch on every call; nothing carries over from the
// previous frame.
type State struct {
	Grounded bool
	HitCeil  bool
	HitLeft  bool
	HitRight bool
}

// Tuning is the immutable per-archetype stepper configuration. StepUp and
// SnapDown are budgets in world pixels and should be scaled along with the
// tile size of the map they run against.
type Tuning struct {
	Grav        float64 // gravity, px/s^2
	FallMax     float64 // terminal fall speed, px/s
	StepUp      float64 // curb climb budget, px
	SnapDown    float64 // floor glue reach, px
	MaxSubSteps int     // hard cap on sub-steps per call
}
