package phys

import (
	"math"

	"github.com/pondworks/gaggle/tilegrid"
)

// SeparationBody attaches separation inputs to a body: the class it
// repels within and the weight share of a pair's push it absorbs.
type SeparationBody struct {
	Body   *Body
	Class  int
	Weight float64
}

// SeparationTuning shapes the pairwise push. Slop is overlap depth that
// is tolerated before any push; Damping is the fraction of the remainder
// resolved per frame, trading pop-free motion for a few frames of
// residual overlap.
type SeparationTuning struct {
	Slop    float64
	Damping float64
}

// Separate runs a single pass of horizontal separation over every unique
// same-class pair and reports whether any body moved. Cross-class pairs
// pass through each other. A push whose destination lands in a solid tile
// is dropped and that body's horizontal velocity zeroed instead, so
// separation can never shove anything through a wall. One pass per frame
// is the contract; callers wanting tighter packing call it again next
// frame.
func Separate(bodies []SeparationBody, tn SeparationTuning, w tilegrid.World, solid tilegrid.SolidSource, tr TraceFunc) bool {
	moved := false
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if bodies[i].Class != bodies[j].Class {
				continue
			}
			if separatePair(i, j, &bodies[i], &bodies[j], tn, w, solid, tr) {
				moved = true
			}
		}
	}
	return moved
}

func separatePair(i, j int, a, b *SeparationBody, tn SeparationTuning, w tilegrid.World, solid tilegrid.SolidSource, tr TraceFunc) bool {
	ab, bb := a.Body, b.Body

	ox := math.Min(ab.X+ab.W, bb.X+bb.W) - math.Max(ab.X, bb.X)
	oy := math.Min(ab.Y+ab.H, bb.Y+bb.H) - math.Max(ab.Y, bb.Y)
	if ox <= 0 || oy <= 0 {
		return false
	}
	push := (ox - tn.Slop) * tn.Damping
	if push <= 0 {
		return false
	}
	wsum := a.Weight + b.Weight
	if wsum <= 0 {
		return false
	}

	// Each body moves away from the other's center along X. Exactly
	// coincident centers take a direction from the pair hash so the split
	// is stable across frames instead of riding float sign noise.
	dir := 1.0
	switch {
	case ab.CenterX() < bb.CenterX():
		dir = -1.0
	case ab.CenterX() == bb.CenterX():
		if pairHash(i, j)&1 == 0 {
			dir = -1.0
		}
	}

	moved := applyPush(ab, dir*push*(a.Weight/wsum), w, solid, tr)
	if applyPush(bb, -dir*push*(b.Weight/wsum), w, solid, tr) {
		moved = true
	}
	return moved
}

// applyPush commits a horizontal push unless the destination's top or
// bottom cell row is solid; a blocked body stays put and loses its
// horizontal velocity.
func applyPush(b *Body, dx float64, w tilegrid.World, solid tilegrid.SolidSource, tr TraceFunc) bool {
	if dx == 0 {
		return false
	}
	nx := b.X + dx
	if pushBlocked(solid, w, nx, b.Y, b.W, b.H) {
		b.VX = 0
		trace(tr, TraceSeparationBlocked, b.X, b.Y, dx)
		return false
	}
	b.X = nx
	return true
}

// pushBlocked samples the top and bottom cell rows a rect would cover.
func pushBlocked(solid tilegrid.SolidSource, w tilegrid.World, x, y, wd, ht float64) bool {
	tx0, ty0, tx1, ty1 := rectCells(w, x, y, wd, ht)
	if rowSolid(solid, ty0, tx0, tx1) {
		return true
	}
	return ty1 != ty0 && rowSolid(solid, ty1, tx0, tx1)
}

// pairHash mixes two pair indexes into a stable direction choice for
// coincident centers. Murmur-finalizer style avalanching; no RNG, no
// object identity, no insertion order.
func pairHash(i, j int) uint32 {
	h := uint32(i)*0x9e3779b1 ^ uint32(j)*0x85ebca6b
	h ^= h >> 16
	h *= 0x7feb352d
	h ^= h >> 15
	h *= 0x846ca68b
	h ^= h >> 16
	return h
}
