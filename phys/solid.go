package phys

import (
	"math"

	"github.com/pondworks/gaggle/tilegrid"
)

// Cell coverage convention: a rect whose far edge sits exactly on a cell
// boundary does not enter the next cell, so a body flush against a tile
// is in contact, not in overlap.

func rectCells(w tilegrid.World, x, y, wd, ht float64) (tx0, ty0, tx1, ty1 int) {
	tw, th := float64(w.TileW), float64(w.TileH)
	tx0 = int(math.Floor(x / tw))
	ty0 = int(math.Floor(y / th))
	tx1 = int(math.Ceil((x+wd)/tw)) - 1
	ty1 = int(math.Ceil((y+ht)/th)) - 1
	return tx0, ty0, tx1, ty1
}

// solidRect reports whether any cell covered by the rect is solid.
func solidRect(solid tilegrid.SolidSource, w tilegrid.World, x, y, wd, ht float64) bool {
	tx0, ty0, tx1, ty1 := rectCells(w, x, y, wd, ht)
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			if solid.Solid(tx, ty) {
				return true
			}
		}
	}
	return false
}

func columnSolid(solid tilegrid.SolidSource, tx, ty0, ty1 int) bool {
	for ty := ty0; ty <= ty1; ty++ {
		if solid.Solid(tx, ty) {
			return true
		}
	}
	return false
}

func rowSolid(solid tilegrid.SolidSource, ty, tx0, tx1 int) bool {
	for tx := tx0; tx <= tx1; tx++ {
		if solid.Solid(tx, ty) {
			return true
		}
	}
	return false
}

// sweepX advances a rect horizontally by dx, scanning every column the
// move enters and stopping flush against the nearest blocking one. It
// assumes the rect does not start inside a solid cell. Returns the new x
// and whether the move was cut short.
func sweepX(solid tilegrid.SolidSource, w tilegrid.World, x, y, wd, ht, dx float64) (float64, bool) {
	if dx == 0 {
		return x, false
	}
	tw := float64(w.TileW)
	_, ty0, _, ty1 := rectCells(w, x, y, wd, ht)
	nx := x + dx
	if dx > 0 {
		first := int(math.Ceil((x + wd) / tw))
		last := int(math.Ceil((nx+wd)/tw)) - 1
		for c := first; c <= last; c++ {
			if columnSolid(solid, c, ty0, ty1) {
				return float64(c)*tw - wd, true
			}
		}
		return nx, false
	}
	first := int(math.Floor(x/tw)) - 1
	last := int(math.Floor(nx / tw))
	for c := first; c >= last; c-- {
		if columnSolid(solid, c, ty0, ty1) {
			return float64(c+1) * tw, true
		}
	}
	return nx, false
}

// sweepY is the vertical counterpart of sweepX.
func sweepY(solid tilegrid.SolidSource, w tilegrid.World, x, y, wd, ht, dy float64) (float64, bool) {
	if dy == 0 {
		return y, false
	}
	th := float64(w.TileH)
	tx0, _, tx1, _ := rectCells(w, x, y, wd, ht)
	ny := y + dy
	if dy > 0 {
		first := int(math.Ceil((y + ht) / th))
		last := int(math.Ceil((ny+ht)/th)) - 1
		for r := first; r <= last; r++ {
			if rowSolid(solid, r, tx0, tx1) {
				return float64(r)*th - ht, true
			}
		}
		return ny, false
	}
	first := int(math.Floor(y/th)) - 1
	last := int(math.Floor(ny / th))
	for r := first; r >= last; r-- {
		if rowSolid(solid, r, tx0, tx1) {
			return float64(r+1) * th, true
		}
	}
	return ny, false
}
