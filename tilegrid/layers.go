package tilegrid

import (
	"fmt"
	"math"
)

// GidRange names one tileset's slice of the gid space.
type GidRange struct {
	Name      string
	FirstGID  uint32
	TileCount int
}

// Collision layer name fallbacks, tried in order when a level does not
// carry a layer literally named "collision".
var collisionFallback = []string{"collision", "tiles"}

// LayerTable is the explicit named-layer lookup built once per level: the
// raw gid grid of every tile layer plus the tileset ranges that turn gids
// into local indexes. The physics side never touches it directly; it is
// consumed through Solids and the overlap queries. A dissolve effect may
// clear cells between frames via ClearCell, which every live query
// observes on its next call.
type LayerTable struct {
	World  World
	ranges []GidRange
	layers map[string][]uint32
	order  []string
}

// NewLayerTable creates an empty table for a world. Tileset ranges may be
// in any order.
func NewLayerTable(w World, ranges []GidRange) *LayerTable {
	return &LayerTable{
		World:  w,
		ranges: ranges,
		layers: make(map[string][]uint32),
	}
}

// AddLayer registers a named layer's row-major raw gids. The slice is
// retained, not copied.
func (t *LayerTable) AddLayer(name string, gids []uint32) error {
	want := t.World.TilesW * t.World.TilesH
	if len(gids) != want {
		return fmt.Errorf("layer %s: %d cells, want %d", name, len(gids), want)
	}
	if _, dup := t.layers[name]; dup {
		return fmt.Errorf("layer %s: duplicate name", name)
	}
	t.layers[name] = gids
	t.order = append(t.order, name)
	return nil
}

// Layer returns a layer's raw gids, or nil for an unknown name.
func (t *LayerTable) Layer(name string) []uint32 {
	return t.layers[name]
}

// LayerNames returns the layer names in the order they were added.
func (t *LayerTable) LayerNames() []string {
	return t.order
}

// CollisionLayer resolves the layer the solid query runs against:
// "collision" if present, then "tiles", then the first layer added.
func (t *LayerTable) CollisionLayer() string {
	for _, name := range collisionFallback {
		if _, ok := t.layers[name]; ok {
			return name
		}
	}
	if len(t.order) > 0 {
		return t.order[0]
	}
	return ""
}

// Gid returns the raw gid at a cell, or 0 outside the map or for an
// unknown layer.
func (t *LayerTable) Gid(layer string, tx, ty int) uint32 {
	g := t.layers[layer]
	if g == nil || tx < 0 || ty < 0 || tx >= t.World.TilesW || ty >= t.World.TilesH {
		return 0
	}
	return g[ty*t.World.TilesW+tx]
}

// ClearCell zeroes a cell's gid, removing the tile from collision and from
// any renderer reading the same layer. Callers must only do this between
// frames, never while a step is in progress.
func (t *LayerTable) ClearCell(layer string, tx, ty int) {
	g := t.layers[layer]
	if g == nil || tx < 0 || ty < 0 || tx >= t.World.TilesW || ty >= t.World.TilesH {
		return
	}
	g[ty*t.World.TilesW+tx] = 0
}

// localOf converts a raw gid to the 1-based local index of the tileset
// whose range contains it, or 0 when no tileset claims the gid.
func (t *LayerTable) localOf(rawGid uint32) int {
	id := rawGid & GidMask
	if id == 0 {
		return 0
	}
	var best *GidRange
	for i := range t.ranges {
		r := &t.ranges[i]
		if id < r.FirstGID {
			continue
		}
		if r.TileCount > 0 && id >= r.FirstGID+uint32(r.TileCount) {
			continue
		}
		if best == nil || r.FirstGID > best.FirstGID {
			best = r
		}
	}
	if best == nil {
		return 0
	}
	return int(id - best.FirstGID + 1)
}

// Solids adapts the table's collision layer to SolidSource.
func (t *LayerTable) Solids() *LayerSolid {
	return &LayerSolid{world: t.World, gids: t.layers[t.CollisionLayer()]}
}

// LayerSolid answers the box-solid cell query over one tile layer: an
// in-bounds cell blocks when its masked gid is nonzero, and out-of-bounds
// cells always block. The gid slice is shared with the owning LayerTable,
// so cells cleared between frames read as passable on the next query.
type LayerSolid struct {
	world World
	gids  []uint32
}

// Solid implements SolidSource.
func (s *LayerSolid) Solid(tx, ty int) bool {
	if tx < 0 || ty < 0 || tx >= s.world.TilesW || ty >= s.world.TilesH {
		return true
	}
	if s.gids == nil {
		return false
	}
	return s.gids[ty*s.world.TilesW+tx]&GidMask != 0
}

// Rect is an axis-aligned box in world pixels.
type Rect struct {
	X, Y, W, H float64
}

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// cellRange converts a world-pixel rect to the inclusive tile-cell range
// it covers, clamped to the map. A rect whose far edge sits exactly on a
// cell boundary does not cover the next cell. ok is false when the rect
// misses the map entirely.
func (t *LayerTable) cellRange(r Rect) (tx0, ty0, tx1, ty1 int, ok bool) {
	tw, th := float64(t.World.TileW), float64(t.World.TileH)
	tx0 = int(math.Floor(r.X / tw))
	ty0 = int(math.Floor(r.Y / th))
	tx1 = int(math.Ceil((r.X+r.W)/tw)) - 1
	ty1 = int(math.Ceil((r.Y+r.H)/th)) - 1
	if tx0 < 0 {
		tx0 = 0
	}
	if ty0 < 0 {
		ty0 = 0
	}
	if tx1 >= t.World.TilesW {
		tx1 = t.World.TilesW - 1
	}
	if ty1 >= t.World.TilesH {
		ty1 = t.World.TilesH - 1
	}
	return tx0, ty0, tx1, ty1, tx0 <= tx1 && ty0 <= ty1
}

// OverlapsAABB reports whether the rect covers any cell, on any of the
// named layers, whose tileset-local index is in the requested set. With no
// layer names it queries the collision layer. Unknown layer names are
// skipped. The query never mutates state.
func (t *LayerTable) OverlapsAABB(r Rect, local []int, layers ...string) bool {
	tx0, ty0, tx1, ty1, ok := t.cellRange(r)
	if !ok {
		return false
	}
	if len(layers) == 0 {
		layers = []string{t.CollisionLayer()}
	}
	for _, name := range layers {
		g := t.layers[name]
		if g == nil {
			continue
		}
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				li := t.localOf(g[ty*t.World.TilesW+tx])
				if li == 0 {
					continue
				}
				for _, want := range local {
					if li == want {
						return true
					}
				}
			}
		}
	}
	return false
}

// OverlapsPolygon is the polygon variant of OverlapsAABB for irregular
// trigger zones. Candidate cells come from the polygon's bounding box;
// each index-matching cell then runs the exact cell-versus-polygon test.
func (t *LayerTable) OverlapsPolygon(poly []Point, local []int, layers ...string) bool {
	if len(poly) < 3 {
		return false
	}
	minX, minY := poly[0].X, poly[0].Y
	maxX, maxY := minX, minY
	for _, p := range poly[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	bounds := Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
	tx0, ty0, tx1, ty1, ok := t.cellRange(bounds)
	if !ok {
		return false
	}
	if len(layers) == 0 {
		layers = []string{t.CollisionLayer()}
	}
	tw, th := float64(t.World.TileW), float64(t.World.TileH)
	for _, name := range layers {
		g := t.layers[name]
		if g == nil {
			continue
		}
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				li := t.localOf(g[ty*t.World.TilesW+tx])
				if li == 0 {
					continue
				}
				matched := false
				for _, want := range local {
					if li == want {
						matched = true
						break
					}
				}
				if !matched {
					continue
				}
				cell := Rect{X: float64(tx) * tw, Y: float64(ty) * th, W: tw, H: th}
				if PolygonOverlapsRect(poly, cell) {
					return true
				}
			}
		}
	}
	return false
}

// PolygonOverlapsRect reports whether a polygon and a rect overlap: true
// when any rect corner or the rect center lies inside the polygon, or any
// polygon vertex lies inside the rect. Good enough for trigger zones
// against tile-sized boxes; not a general polygon clipper.
func PolygonOverlapsRect(poly []Point, r Rect) bool {
	probes := [5]Point{
		{r.X, r.Y},
		{r.X + r.W, r.Y},
		{r.X, r.Y + r.H},
		{r.X + r.W, r.Y + r.H},
		{r.X + r.W/2, r.Y + r.H/2},
	}
	for _, p := range probes {
		if PointInPolygon(p, poly) {
			return true
		}
	}
	for _, v := range poly {
		if v.X >= r.X && v.X <= r.X+r.W && v.Y >= r.Y && v.Y <= r.Y+r.H {
			return true
		}
	}
	return false
}

// PointInPolygon is the even-odd ray-casting test.
func PointInPolygon(p Point, poly []Point) bool {
	in := false
	j := len(poly) - 1
	for i := 0; i < len(poly); i++ {
		pi, pj := poly[i], poly[j]
		if (pi.Y > p.Y) != (pj.Y > p.Y) &&
			p.X < (pj.X-pi.X)*(p.Y-pi.Y)/(pj.Y-pi.Y)+pi.X {
			in = !in
		}
		j = i
	}
	return in
}
