// Package assets loads the embedded Tiled levels and rasterizes their
// tileset artwork. It is the boundary between the map format and the
// engine: everything it hands out is a tilegrid or plain-data type.
package assets

import (
	"embed"
	"fmt"
	"image"
	"io/fs"
	"path"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/lafriks/go-tiled"
	"github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/tilegrid"
)

//go:embed all:levels
var levelFS embed.FS

// Cell addresses one tile of a level's collision layer.
type Cell struct {
	TX, TY int
}

// GateSpawn is a dissolvable gate: the trigger zone rectangle from the
// Gates object group plus the collision cells inside it that carry a
// gate-role tile.
type GateSpawn struct {
	Zone  tilegrid.Rect
	Cells []Cell
}

// Spawn is a placement point from an object group.
type Spawn struct {
	X, Y float64
}

// Level is one loaded map, repacked into engine types. The LayerTable
// holds the live gid arrays; clearing a gate cell there is immediately
// visible to both collision and rendering.
type Level struct {
	Name     string
	World    tilegrid.World
	Layers   *tilegrid.LayerTable
	Tilesets []*TilesetArt

	GooseSpawn    Spawn
	GoslingSpawns []Spawn
	Gates         []GateSpawn
	Ponds         []tilegrid.Rect
	NestPoly      []tilegrid.Point

	// Tile-role local indexes, read from tileset tile properties with
	// config fallbacks, and the layer names role queries run over.
	HazardIndexes []int
	FinishIndexes []int
	GateIndexes   []int
	QueryLayers   []string
}

// TilesetArt pairs a mask-built tileset with its rasterized artwork.
type TilesetArt struct {
	Grid  *tilegrid.Tileset
	img   *ebiten.Image
	tiles []*ebiten.Image
}

// Tile returns the artwork for a 1-based local index, or nil when the
// index is out of range.
func (a *TilesetArt) Tile(local int) *ebiten.Image {
	if local < 1 || local > len(a.tiles) {
		return nil
	}
	return a.tiles[local-1]
}

// TilesetFor finds the tileset whose gid range contains rawGid.
func (l *Level) TilesetFor(rawGid uint32) *TilesetArt {
	id := rawGid & tilegrid.GidMask
	for _, ts := range l.Tilesets {
		if id >= ts.Grid.FirstGID && id < ts.Grid.FirstGID+uint32(ts.Grid.TileCount) {
			return ts
		}
	}
	return nil
}

// SolidPixelAt reports whether the world-pixel position lands on a solid
// pixel of the collision layer, per the tile masks. Used by debris
// particles; bodies use the box-solid LayerSolid query instead.
func (l *Level) SolidPixelAt(x, y float64) bool {
	if x < 0 || y < 0 {
		return false
	}
	tx, ty := int(x)/l.World.TileW, int(y)/l.World.TileH
	raw := l.Layers.Gid(l.Layers.CollisionLayer(), tx, ty)
	if raw == 0 {
		return false
	}
	ts := l.TilesetFor(raw)
	if ts == nil {
		return false
	}
	return ts.Grid.SolidPixel(raw, int(x)%l.World.TileW, int(y)%l.World.TileH)
}

// LoadLevels loads every embedded .tmx in name order.
func LoadLevels() ([]Level, error) {
	entries, err := fs.ReadDir(levelFS, "levels")
	if err != nil {
		return nil, fmt.Errorf("read levels dir: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && path.Ext(e.Name()) == ".tmx" {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	var levels []Level
	for _, name := range names {
		lv, err := loadLevel(levelFS, path.Join("levels", name))
		if err != nil {
			return nil, fmt.Errorf("level %s: %w", name, err)
		}
		levels = append(levels, *lv)
	}
	if len(levels) == 0 {
		return nil, fmt.Errorf("no .tmx levels embedded")
	}
	return levels, nil
}

// MustLoadLevels panics on a load failure; embedded assets failing to
// parse is a build defect, not a runtime condition.
func MustLoadLevels() []Level {
	levels, err := LoadLevels()
	if err != nil {
		panic(fmt.Sprintf("load levels: %v", err))
	}
	return levels
}

func loadLevel(fsys fs.FS, p string) (*Level, error) {
	m, err := tiled.LoadFile(p, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	world := tilegrid.NewWorld(m.Width, m.Height, m.TileWidth, m.TileHeight)
	lv := &Level{Name: p, World: world}

	// Tilesets: rasterize the art, build the masks.
	var ranges []tilegrid.GidRange
	for _, ts := range m.Tilesets {
		ranges = append(ranges, tilegrid.GidRange{
			Name:      ts.Name,
			FirstGID:  ts.FirstGID,
			TileCount: ts.TileCount,
		})
		art, err := buildTilesetArt(ts)
		if err != nil {
			return nil, err
		}
		lv.Tilesets = append(lv.Tilesets, art)
		collectRoles(lv, ts)
	}
	if len(lv.HazardIndexes) == 0 {
		lv.HazardIndexes = config.Tiles.HazardIndexes
	}
	if len(lv.FinishIndexes) == 0 {
		lv.FinishIndexes = config.Tiles.FinishIndexes
	}
	if len(lv.GateIndexes) == 0 {
		lv.GateIndexes = config.Tiles.GateIndexes
	}

	// Layers: repack go-tiled's decoded tiles into raw gid arrays with
	// the flip bits restored.
	lv.Layers = tilegrid.NewLayerTable(world, ranges)
	for _, layer := range m.Layers {
		gids := make([]uint32, m.Width*m.Height)
		for i, lt := range layer.Tiles {
			if lt.IsNil() {
				continue
			}
			raw := uint32(lt.Tileset.FirstGID) + lt.ID
			if lt.HorizontalFlip {
				raw |= tilegrid.FlipH
			}
			if lt.VerticalFlip {
				raw |= tilegrid.FlipV
			}
			if lt.DiagonalFlip {
				raw |= tilegrid.FlipD
			}
			gids[i] = raw
		}
		if err := lv.Layers.AddLayer(layer.Name, gids); err != nil {
			return nil, err
		}
	}
	for _, name := range config.Tiles.QueryLayers {
		if lv.Layers.Layer(name) != nil {
			lv.QueryLayers = append(lv.QueryLayers, name)
		}
	}

	if err := collectObjects(lv, m); err != nil {
		return nil, err
	}
	return lv, nil
}

func buildTilesetArt(ts *tiled.Tileset) (*TilesetArt, error) {
	pix := tilesetArt(ts.Name, ts.Columns, ts.TileCount, ts.TileWidth, ts.TileHeight)
	grid, err := tilegrid.BuildTileset(ts.Name, ts.FirstGID, ts.Columns, ts.TileCount, ts.TileWidth, ts.TileHeight, pix)
	if err != nil {
		return nil, fmt.Errorf("tileset %s: %w", ts.Name, err)
	}
	art := &TilesetArt{
		Grid:  grid,
		img:   ebiten.NewImageFromImage(pix),
		tiles: make([]*ebiten.Image, ts.TileCount),
	}
	for t := 0; t < ts.TileCount; t++ {
		x0 := (t % ts.Columns) * ts.TileWidth
		y0 := (t / ts.Columns) * ts.TileHeight
		sub := art.img.SubImage(image.Rect(x0, y0, x0+ts.TileWidth, y0+ts.TileHeight)).(*ebiten.Image)
		art.tiles[t] = sub
	}
	return art, nil
}

// collectRoles reads "role" tile properties into the level's index sets.
func collectRoles(lv *Level, ts *tiled.Tileset) {
	for _, t := range ts.Tiles {
		local := int(t.ID) + 1
		switch t.Properties.GetString("role") {
		case "hazard":
			lv.HazardIndexes = append(lv.HazardIndexes, local)
		case "finish":
			lv.FinishIndexes = append(lv.FinishIndexes, local)
		case "gate":
			lv.GateIndexes = append(lv.GateIndexes, local)
		}
	}
}

func collectObjects(lv *Level, m *tiled.Map) error {
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case "GooseSpawn":
			for _, o := range og.Objects {
				lv.GooseSpawn = Spawn{X: o.X, Y: o.Y}
			}
		case "GoslingSpawn":
			for _, o := range og.Objects {
				lv.GoslingSpawns = append(lv.GoslingSpawns, Spawn{X: o.X, Y: o.Y})
			}
			// Left-to-right slot order, matching the trail spacing.
			sort.Slice(lv.GoslingSpawns, func(i, j int) bool {
				return lv.GoslingSpawns[i].X < lv.GoslingSpawns[j].X
			})
		case "Gates":
			for _, o := range og.Objects {
				zone := tilegrid.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height}
				lv.Gates = append(lv.Gates, GateSpawn{
					Zone:  zone,
					Cells: gateCells(lv, zone),
				})
			}
		case "Ponds":
			for _, o := range og.Objects {
				lv.Ponds = append(lv.Ponds, tilegrid.Rect{X: o.X, Y: o.Y, W: o.Width, H: o.Height})
			}
		case "Nest":
			for _, o := range og.Objects {
				if len(o.Polygons) == 0 || o.Polygons[0].Points == nil {
					return fmt.Errorf("nest object %d has no polygon", o.ID)
				}
				for _, pt := range *o.Polygons[0].Points {
					lv.NestPoly = append(lv.NestPoly, tilegrid.Point{X: o.X + pt.X, Y: o.Y + pt.Y})
				}
			}
		}
	}
	return nil
}

// gateCells scans the collision layer inside a gate's zone for cells
// whose local index carries the gate role.
func gateCells(lv *Level, zone tilegrid.Rect) []Cell {
	var cells []Cell
	layer := lv.Layers.CollisionLayer()
	tw, th := lv.World.TileW, lv.World.TileH
	tx0 := int(zone.X) / tw
	ty0 := int(zone.Y) / th
	tx1 := int(zone.X+zone.W-1) / tw
	ty1 := int(zone.Y+zone.H-1) / th
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			raw := lv.Layers.Gid(layer, tx, ty)
			ts := lv.TilesetFor(raw)
			if ts == nil {
				continue
			}
			li := tilegrid.LocalIndex(raw, ts.Grid.FirstGID)
			for _, want := range lv.GateIndexes {
				if li == want {
					cells = append(cells, Cell{TX: tx, TY: ty})
					break
				}
			}
		}
	}
	return cells
}
