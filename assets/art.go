package assets

import (
	"image"
	"image/color"
)

// Tileset artwork is rasterized at load time instead of shipped as PNGs.
// The pixels double as the collision authority: tilegrid.BuildTileset
// reads the same buffer the renderer draws, so what you see is what
// blocks. Glyphs deliberately cover both mask polarities (dark ink on a
// light tile, light ink on a dark tile).

var (
	dirtBrown  = color.NRGBA{R: 92, G: 64, B: 38, A: 255}
	dirtDark   = color.NRGBA{R: 66, G: 45, B: 26, A: 255}
	grassGreen = color.NRGBA{R: 74, G: 140, B: 54, A: 255}
	stoneLight = color.NRGBA{R: 196, G: 196, B: 188, A: 255}
	stoneEdge  = color.NRGBA{R: 70, G: 70, B: 66, A: 255}
	plankTan   = color.NRGBA{R: 140, G: 104, B: 60, A: 255}
	spikeGray  = color.NRGBA{R: 60, G: 60, B: 64, A: 255}
	gateIron   = color.NRGBA{R: 52, G: 50, B: 58, A: 255}
	strawGold  = color.NRGBA{R: 208, G: 172, B: 84, A: 255}
	waterBlue  = color.NRGBA{R: 60, G: 120, B: 190, A: 160}
	waterFoam  = color.NRGBA{R: 230, G: 240, B: 250, A: 200}
)

// Local tile ids of the meadow tileset, 0-based. The local index a layer
// query sees is the id plus one.
const (
	tileDirt = iota
	tileGrass
	tileStone
	tilePlank
	tileSpikes
	tileGate
	tileNest
	tileWater
	meadowTileCount
)

const meadowColumns = 4

// tilesetArt rasterizes the named tileset into an NRGBA grid image.
// Unknown names yield a fully opaque checker so a misnamed tileset is
// visible rather than invisible and passable.
func tilesetArt(name string, columns, tileCount, tw, th int) *image.NRGBA {
	rows := (tileCount + columns - 1) / columns
	img := image.NewNRGBA(image.Rect(0, 0, columns*tw, rows*th))
	for t := 0; t < tileCount; t++ {
		p := painter{img: img, x0: (t % columns) * tw, y0: (t / columns) * th, w: tw, h: th}
		if name == "meadow" {
			drawMeadowTile(p, t)
		} else {
			drawChecker(p)
		}
	}
	return img
}

func drawMeadowTile(p painter, id int) {
	switch id {
	case tileDirt:
		p.fill(dirtBrown)
		p.speckle(dirtDark, 3)
	case tileGrass:
		p.fill(dirtBrown)
		p.speckle(dirtDark, 3)
		p.rect(0, 0, p.w, p.h/4, grassGreen)
	case tileStone:
		// Mostly light with a dark outline: the light pixels are the
		// solid side here.
		p.fill(stoneLight)
		p.border(stoneEdge)
	case tilePlank:
		// A half-height plank; the lower half stays transparent so the
		// mask is a genuine shape, not a box.
		p.rect(0, 0, p.w, p.h/2, plankTan)
		p.rect(0, p.h/2-1, p.w, 1, dirtDark)
	case tileSpikes:
		for i := 0; i < p.w/4; i++ {
			p.triangle(i*4, 4)
		}
	case tileGate:
		for x := 1; x < p.w; x += 4 {
			p.rect(x, 0, 2, p.h, gateIron)
		}
		p.rect(0, p.h/2-1, p.w, 2, gateIron)
	case tileNest:
		p.rect(1, p.h/2, p.w-2, p.h/2-1, strawGold)
		p.rect(3, p.h/2-2, p.w-6, 2, strawGold)
		p.speckle(dirtDark, p.h/2)
	case tileWater:
		p.fill(waterBlue)
		for x := 0; x < p.w; x += 4 {
			p.rect(x, 1, 2, 1, waterFoam)
		}
	}
}

func drawChecker(p painter) {
	p.fill(color.NRGBA{R: 255, A: 255})
	for y := 0; y < p.h; y += 2 {
		for x := y % 4; x < p.w; x += 4 {
			p.rect(x, y, 2, 2, color.NRGBA{R: 255, G: 0, B: 255, A: 255})
		}
	}
}

// painter draws into one tile cell of the tileset image.
type painter struct {
	img    *image.NRGBA
	x0, y0 int
	w, h   int
}

func (p painter) set(x, y int, c color.NRGBA) {
	if x < 0 || y < 0 || x >= p.w || y >= p.h {
		return
	}
	p.img.SetNRGBA(p.x0+x, p.y0+y, c)
}

func (p painter) rect(x, y, w, h int, c color.NRGBA) {
	for dy := 0; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			p.set(x+dx, y+dy, c)
		}
	}
}

func (p painter) fill(c color.NRGBA) { p.rect(0, 0, p.w, p.h, c) }

func (p painter) border(c color.NRGBA) {
	p.rect(0, 0, p.w, 1, c)
	p.rect(0, p.h-1, p.w, 1, c)
	p.rect(0, 0, 1, p.h, c)
	p.rect(p.w-1, 0, 1, p.h, c)
}

// speckle scatters a few accent pixels on a fixed lattice so the art is
// deterministic frame to frame and build to build.
func (p painter) speckle(c color.NRGBA, step int) {
	for y := 1; y < p.h; y += step {
		for x := (y * 7 % 5) + 1; x < p.w; x += 5 {
			p.set(x, y, c)
		}
	}
}

// triangle draws a spike of the given half-width, apex up, base at the
// tile bottom.
func (p painter) triangle(x, halfW int) {
	for row := 0; row < p.h; row++ {
		span := (row+1)*halfW/p.h + 1
		p.rect(x+halfW-span, row, span*2, 1, spikeGray)
	}
}
