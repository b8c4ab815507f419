package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pondworks/gaggle/components"
	"github.com/pondworks/gaggle/tags"
	"github.com/pondworks/gaggle/tilegrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var levelDrawOp = &ebiten.DrawImageOptions{}

// cameraOffset returns the world-to-screen translation.
func cameraOffset(ecs *ecs.ECS, screen *ebiten.Image) (float64, float64, bool) {
	cameraEntry, ok := components.Camera.First(ecs.World)
	if !ok {
		return 0, 0, false
	}
	camera := components.Camera.Get(cameraEntry)
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	return float64(w)/2 - camera.Position.X, float64(h)/2 - camera.Position.Y, true
}

// DrawLevel draws every tile layer from the generated tileset art,
// honoring the flip flags packed into each gid. Cells of a dissolving
// gate fade with the gate's tween alpha.
func DrawLevel(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	ld, ok := currentLevel(ecs)
	if !ok {
		return
	}
	lv := ld.CurrentLevel
	fades := gateFades(ecs)

	tw, th := lv.World.TileW, lv.World.TileH

	// Visible cell range only.
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	tx0 := clampTile(int(-camX)/tw, lv.World.TilesW)
	ty0 := clampTile(int(-camY)/th, lv.World.TilesH)
	tx1 := clampTile((int(-camX)+sw)/tw+1, lv.World.TilesW)
	ty1 := clampTile((int(-camY)+sh)/th+1, lv.World.TilesH)

	for _, name := range lv.Layers.LayerNames() {
		for ty := ty0; ty <= ty1; ty++ {
			for tx := tx0; tx <= tx1; tx++ {
				raw := lv.Layers.Gid(name, tx, ty)
				if raw == 0 {
					continue
				}
				ts := lv.TilesetFor(raw)
				if ts == nil {
					continue
				}
				img := ts.Tile(tilegrid.LocalIndex(raw, ts.Grid.FirstGID))
				if img == nil {
					continue
				}

				levelDrawOp.GeoM.Reset()
				levelDrawOp.ColorScale.Reset()
				applyFlips(levelDrawOp, raw, float64(tw), float64(th))
				levelDrawOp.GeoM.Translate(float64(tx*tw)+camX, float64(ty*th)+camY)
				if a, ok := fades[[2]int{tx, ty}]; ok {
					levelDrawOp.ColorScale.ScaleAlpha(a)
				}
				screen.DrawImage(img, levelDrawOp)
			}
		}
	}
}

// applyFlips mirrors the editor's draw-time transform order: diagonal
// first, then horizontal, then vertical, about the tile center.
func applyFlips(op *ebiten.DrawImageOptions, raw uint32, tw, th float64) {
	if raw&tilegrid.FlipD != 0 {
		op.GeoM.Translate(-tw/2, -th/2)
		op.GeoM.Rotate(1.5707963267948966)
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(tw/2, th/2)
	}
	if raw&tilegrid.FlipH != 0 {
		op.GeoM.Translate(-tw/2, 0)
		op.GeoM.Scale(-1, 1)
		op.GeoM.Translate(tw/2, 0)
	}
	if raw&tilegrid.FlipV != 0 {
		op.GeoM.Translate(0, -th/2)
		op.GeoM.Scale(1, -1)
		op.GeoM.Translate(0, th/2)
	}
}

func clampTile(v, n int) int {
	if v < 0 {
		return 0
	}
	if v >= n {
		return n - 1
	}
	return v
}

// gateFades collects the per-cell alpha of gates mid-dissolve.
func gateFades(ecs *ecs.ECS) map[[2]int]float32 {
	fades := map[[2]int]float32{}
	tags.Gate.Each(ecs.World, func(e *donburi.Entry) {
		gate := components.Gate.Get(e)
		if gate.Dissolve == nil || gate.Opened {
			return
		}
		for _, c := range gate.Cells {
			fades[[2]int{c.TX, c.TY}] = gate.Alpha
		}
	})
	return fades
}
