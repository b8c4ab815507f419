package tilegrid

import (
	"errors"
	"fmt"
	"image"
	"image/color"
)

// ErrTileTooWide is returned by BuildTileset when a tile row cannot fit in
// a 32-bit row word.
var ErrTileTooWide = errors.New("tilegrid: tile width exceeds 32 pixels")

// Luma thresholds for the per-tile polarity pass. Channels are 8-bit.
const (
	midGray     = 128
	alphaCutoff = 16
)

// Mask is the per-pixel solidity of one tile: bit x of Rows[y] is set when
// pixel (x, y) blocks. Built once per tileset, immutable afterwards. The
// mask is the authoritative collision shape, not a box approximation.
type Mask struct {
	Rows []uint32
	W, H int
}

// At reports whether pixel (x, y) of the mask is solid. Out-of-range
// coordinates are not solid.
func (m Mask) At(x, y int) bool {
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.Rows[y]&(1<<uint(x)) != 0
}

// Tileset is a mask-built tileset: one Mask per local tile id, plus the
// gid range and grid layout needed to resolve raw layer gids.
type Tileset struct {
	Name      string
	FirstGID  uint32
	Columns   int
	TileCount int
	TileW     int
	TileH     int
	Masks     []Mask
}

// BuildTileset derives a solidity mask for every tile of a tileset image.
//
// Per tile, the average luma of its visible pixels picks the polarity: a
// mostly dark tile treats dark pixels as solid (ink on light paper reads
// the other way around). A pixel sets its bit when it passes the polarity
// test and its alpha clears the cutoff. A tile whose polarity pass yields
// no bits but which still has opaque pixels falls back to marking every
// opaque pixel solid, so no authored tile is silently passable.
//
// Tile width above 32 is a configuration error and fails here, at load
// time, never inside a per-frame query.
func BuildTileset(name string, firstgid uint32, columns, tileCount, tw, th int, img image.Image) (*Tileset, error) {
	if tw > 32 {
		return nil, fmt.Errorf("tileset %s: width %d: %w", name, tw, ErrTileTooWide)
	}
	if tw <= 0 || th <= 0 || columns <= 0 || tileCount <= 0 {
		return nil, fmt.Errorf("tileset %s: bad grid %dx%d cols=%d count=%d", name, tw, th, columns, tileCount)
	}
	rows := (tileCount + columns - 1) / columns
	b := img.Bounds()
	if b.Dx() < columns*tw || b.Dy() < rows*th {
		return nil, fmt.Errorf("tileset %s: image %dx%d smaller than %d tiles of %dx%d",
			name, b.Dx(), b.Dy(), tileCount, tw, th)
	}

	ts := &Tileset{
		Name:      name,
		FirstGID:  firstgid,
		Columns:   columns,
		TileCount: tileCount,
		TileW:     tw,
		TileH:     th,
		Masks:     make([]Mask, tileCount),
	}
	for t := 0; t < tileCount; t++ {
		x0 := b.Min.X + (t%columns)*tw
		y0 := b.Min.Y + (t/columns)*th
		ts.Masks[t] = buildMask(img, x0, y0, tw, th)
	}
	return ts, nil
}

func buildMask(img image.Image, x0, y0, tw, th int) Mask {
	m := Mask{Rows: make([]uint32, th), W: tw, H: th}

	// First pass: average luma of visible pixels decides the polarity.
	var lumaSum, visible int
	for y := 0; y < th; y++ {
		for x := 0; x < tw; x++ {
			c := nrgbaAt(img, x0+x, y0+y)
			if c.A < alphaCutoff {
				continue
			}
			lumaSum += luma(c)
			visible++
		}
	}
	if visible == 0 {
		return m // fully transparent tile, no solid pixels
	}
	darkSolid := lumaSum/visible < midGray

	// Second pass: set bits for pixels on the solid side of mid-gray.
	var bits int
	for y := 0; y < th; y++ {
		for x := 0; x < tw; x++ {
			c := nrgbaAt(img, x0+x, y0+y)
			if c.A < alphaCutoff {
				continue
			}
			l := luma(c)
			if (darkSolid && l < midGray) || (!darkSolid && l > midGray) {
				m.Rows[y] |= 1 << uint(x)
				bits++
			}
		}
	}
	if bits > 0 {
		return m
	}

	// Polarity pass came up empty on a tile that has opaque pixels:
	// treat every opaque pixel as solid.
	for y := 0; y < th; y++ {
		for x := 0; x < tw; x++ {
			if nrgbaAt(img, x0+x, y0+y).A >= alphaCutoff {
				m.Rows[y] |= 1 << uint(x)
			}
		}
	}
	return m
}

func nrgbaAt(img image.Image, x, y int) color.NRGBA {
	return color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
}

// luma is the Rec. 601 brightness of an 8-bit color.
func luma(c color.NRGBA) int {
	return (299*int(c.R) + 587*int(c.G) + 114*int(c.B)) / 1000
}

// SolidPixel reports whether pixel (u, v) of the tile addressed by rawGid
// is solid. The flip flags in the gid's high bits are honored by remapping
// (u, v) back into unflipped tile-local space before the mask lookup. Gids
// outside this tileset's range, and coordinates outside the tile, are not
// solid.
func (ts *Tileset) SolidPixel(rawGid uint32, u, v int) bool {
	id := rawGid & GidMask
	if id < ts.FirstGID {
		return false
	}
	t := int(id - ts.FirstGID)
	if t >= ts.TileCount {
		return false
	}
	m := ts.Masks[t]

	// Undo the editor's draw-time transform order (diagonal first, then
	// horizontal, then vertical) by inverting it back to front.
	if rawGid&FlipV != 0 {
		v = m.H - 1 - v
	}
	if rawGid&FlipH != 0 {
		u = m.W - 1 - u
	}
	if rawGid&FlipD != 0 {
		u, v = v, u
	}
	return m.At(u, v)
}
