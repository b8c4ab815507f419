// Package tilegrid holds the grid side of the collision model: world
// dimensions, per-pixel tile masks built from tileset art, named layer
// tables, and the solid-cell queries the physics code runs against. It has
// no ebiten or ECS dependencies so tools and tests can use it headless.
package tilegrid

// World describes a loaded level's fixed geometry in pixel units. It is
// derived once at load time and read-only during simulation.
type World struct {
	W, H   int // world size in pixels
	TileW  int // tile width in pixels
	TileH  int // tile height in pixels
	TilesW int // map width in tiles
	TilesH int // map height in tiles
}

// NewWorld builds a World from tile counts and tile pixel size.
func NewWorld(tilesW, tilesH, tileW, tileH int) World {
	return World{
		W:      tilesW * tileW,
		H:      tilesH * tileH,
		TileW:  tileW,
		TileH:  tileH,
		TilesW: tilesW,
		TilesH: tilesH,
	}
}

// SolidSource answers whether a tile cell blocks movement. Implementations
// must return true for out-of-bounds cells (negative, or beyond the map)
// so the world edge behaves as an invisible wall. This interface is the
// only way the movers and the separation solver observe the map.
type SolidSource interface {
	Solid(tx, ty int) bool
}

// Flip flags packed into the high bits of a raw gid, as stored by the map
// editor. The remaining low bits are the tile id.
const (
	FlipH   uint32 = 0x80000000
	FlipV   uint32 = 0x40000000
	FlipD   uint32 = 0x20000000
	GidMask uint32 = 0x1FFFFFFF
)

// LocalIndex converts a raw gid to a 1-based index into the tileset that
// starts at firstgid. Empty cells and gids below firstgid yield 0.
func LocalIndex(rawGid, firstgid uint32) int {
	id := rawGid & GidMask
	if id == 0 || id < firstgid {
		return 0
	}
	return int(id - firstgid + 1)
}
