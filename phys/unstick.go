package phys

import "github.com/pondworks/gaggle/tilegrid"

// UnstickTuning bounds the corner-catch escape: how fast the body must be
// falling for the wedge test, how long the wedge has to persist before a
// nudge, and the cooldown between nudges.
type UnstickTuning struct {
	FallSpeed float64 // px/s the body must exceed downward
	WedgeTime float64 // seconds wedged before a nudge fires
	Cooldown  float64 // seconds before the next nudge may fire
}

// UnstickState accumulates wedge time across frames for one body.
type UnstickState struct {
	Wedged   float64
	Cooldown float64
}

// Unstick frees a body caught on an inside corner. Call it right after
// Step or MoveBy, passing the body's y from before the move.
//
// The wedge condition is: falling, not grounded, a side contact flag set,
// and no net downward progress this frame. A normal wall slide keeps
// making progress and never qualifies. Once the condition has held for
// WedgeTime, the body is nudged one pixel away from the contact side (or
// the opposite way when that pixel is itself solid), the contact flag is
// cleared, and a cooldown starts so nudges cannot oscillate. Returns true
// when a nudge was applied.
func Unstick(dt float64, b *Body, st *State, solid tilegrid.SolidSource, w tilegrid.World, us *UnstickState, yBefore float64, tn UnstickTuning, tr TraceFunc) bool {
	if us.Cooldown > 0 {
		us.Cooldown -= dt
		if us.Cooldown < 0 {
			us.Cooldown = 0
		}
	}

	wedged := b.VY > tn.FallSpeed && !st.Grounded &&
		(st.HitLeft || st.HitRight) && b.Y-yBefore <= 0
	if !wedged {
		us.Wedged = 0
		return false
	}

	us.Wedged += dt
	if us.Wedged < tn.WedgeTime || us.Cooldown > 0 {
		return false
	}

	dir := 1.0 // wedged on the left: push right
	if st.HitRight {
		dir = -1.0
	}
	for _, d := range [2]float64{dir, -dir} {
		if solidRect(solid, w, b.X+d, b.Y, b.W, b.H) {
			continue
		}
		b.X += d
		if st.HitRight {
			st.HitRight = false
		} else {
			st.HitLeft = false
		}
		us.Wedged = 0
		us.Cooldown = tn.Cooldown
		trace(tr, TraceUnstick, b.X, b.Y, d)
		return true
	}
	return false
}
