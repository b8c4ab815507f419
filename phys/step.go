package phys

import (
	"math"

	"github.com/pondworks/gaggle/tilegrid"
)

// subStepPx is the travel per sub-step the movers aim for before the
// MaxSubSteps cap kicks in.
const subStepPx = 8.0

// Step advances a gravity-driven body over dt seconds and overwrites st.
//
// Gravity integrates once up front, capped at FallMax. The move is then
// split into sub-steps sized from the dominant axis speed; each sub-step
// resolves X first (with the curb-climb probe), then Y (clamping flush
// and setting grounded or hitCeil), glues the body onto a floor within
// SnapDown reach when it is not rising, and clamps it inside the world.
// A final probe one pixel below catches sub-steps that ended exactly
// flush with a floor without tripping the Y branch.
//
// Inputs are trusted: velocities must be finite and the body must not
// start inside a solid cell. The grid behind solid must not change during
// the call.
func Step(b *Body, st *State, dt float64, solid tilegrid.SolidSource, w tilegrid.World, tn Tuning, tr TraceFunc) {
	*st = State{}

	b.VY = math.Min(tn.FallMax, b.VY+tn.Grav*dt)

	n := subSteps(math.Max(math.Abs(b.VX), math.Abs(b.VY))*dt, tn.MaxSubSteps)
	sdt := dt / float64(n)
	for i := 0; i < n; i++ {
		if moveX(b, st, b.VX*sdt, solid, w, tn, tr) {
			b.VX = 0
		}
		if moveY(b, st, b.VY*sdt, solid, w, tr) {
			b.VY = 0
		}
		snapDown(b, st, b.VY < 0, solid, w, tn, tr)
		clampWorld(b, st, w, true)
	}

	if !st.Grounded && solidRect(solid, w, b.X, b.Y+1, b.W, b.H) {
		st.Grounded = true
	}
}

// MoveBy advances a body by a caller-supplied displacement and overwrites
// st. It runs the same per-axis resolution, curb climb, floor glue,
// sub-stepping, and world clamp as Step, but integrates no gravity and
// leaves VX and VY alone; followers that mirror a leader's motion are
// driven through here.
func MoveBy(b *Body, st *State, dx, dy float64, solid tilegrid.SolidSource, w tilegrid.World, tn Tuning, tr TraceFunc) {
	*st = State{}

	n := subSteps(math.Max(math.Abs(dx), math.Abs(dy)), tn.MaxSubSteps)
	sx, sy := dx/float64(n), dy/float64(n)
	for i := 0; i < n; i++ {
		moveX(b, st, sx, solid, w, tn, tr)
		moveY(b, st, sy, solid, w, tr)
		snapDown(b, st, dy < 0, solid, w, tn, tr)
		clampWorld(b, st, w, false)
	}

	if !st.Grounded && solidRect(solid, w, b.X, b.Y+1, b.W, b.H) {
		st.Grounded = true
	}
}

func subSteps(travel float64, max int) int {
	n := int(math.Ceil(math.Abs(travel) / subStepPx))
	if n < 1 {
		n = 1
	}
	if max >= 1 && n > max {
		n = max
	}
	return n
}

// moveX resolves one horizontal sub-move. A blocked move first probes up
// to StepUp raised destinations so small curbs never stop lateral motion;
// only when every probe fails does the body clamp flush and report a wall
// hit through the return value and the side flags.
func moveX(b *Body, st *State, dx float64, solid tilegrid.SolidSource, w tilegrid.World, tn Tuning, tr TraceFunc) bool {
	if dx == 0 {
		return false
	}
	nx, blocked := sweepX(solid, w, b.X, b.Y, b.W, b.H, dx)
	if !blocked {
		b.X = nx
		return false
	}

	target := b.X + dx
	for climb := 1.0; climb <= tn.StepUp; climb++ {
		if !solidRect(solid, w, target, b.Y-climb, b.W, b.H) {
			b.X = target
			b.Y -= climb
			trace(tr, TraceStepUp, b.X, b.Y, climb)
			return false
		}
	}

	b.X = nx
	if dx > 0 {
		st.HitRight = true
	} else {
		st.HitLeft = true
	}
	trace(tr, TraceWallX, b.X, b.Y, dx)
	return true
}

// moveY resolves one vertical sub-move, clamping flush on a hit: falling
// sets grounded, rising sets hitCeil.
func moveY(b *Body, st *State, dy float64, solid tilegrid.SolidSource, w tilegrid.World, tr TraceFunc) bool {
	if dy == 0 {
		return false
	}
	ny, blocked := sweepY(solid, w, b.X, b.Y, b.W, b.H, dy)
	b.Y = ny
	if !blocked {
		return false
	}
	if dy > 0 {
		st.Grounded = true
	} else {
		st.HitCeil = true
	}
	trace(tr, TraceWallY, b.X, b.Y, dy)
	return true
}

// snapDown glues a non-rising, airborne body onto a floor within SnapDown
// pixels, killing the sub-pixel hop when walked terrain changes height.
func snapDown(b *Body, st *State, rising bool, solid tilegrid.SolidSource, w tilegrid.World, tn Tuning, tr TraceFunc) {
	if st.Grounded || rising || tn.SnapDown <= 0 {
		return
	}
	ny, hit := sweepY(solid, w, b.X, b.Y, b.W, b.H, tn.SnapDown)
	if !hit {
		return
	}
	if ny > b.Y {
		trace(tr, TraceSnapDown, b.X, ny, ny-b.Y)
	}
	b.Y = ny
	st.Grounded = true
}

// clampWorld keeps the body inside [0, w.W-b.W] x [0, w.H-b.H]. The world
// edge behaves like a wall: clamping sets the matching contact flag and,
// for the gravity stepper, zeroes the velocity on that axis.
func clampWorld(b *Body, st *State, w tilegrid.World, zeroVel bool) {
	maxX := float64(w.W) - b.W
	maxY := float64(w.H) - b.H
	if b.X < 0 {
		b.X = 0
		st.HitLeft = true
		if zeroVel {
			b.VX = 0
		}
	} else if b.X > maxX {
		b.X = maxX
		st.HitRight = true
		if zeroVel {
			b.VX = 0
		}
	}
	if b.Y < 0 {
		b.Y = 0
		st.HitCeil = true
		if zeroVel {
			b.VY = 0
		}
	} else if b.Y > maxY {
		b.Y = maxY
		st.Grounded = true
		if zeroVel {
			b.VY = 0
		}
	}
}
