package systems

import (
	"image/color"

	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGates starts a gate's dissolve when the goose enters its trigger
// zone and, once the tween finishes, clears the gate cells from the live
// collision layer. The clear happens here, between steps, never while a
// mover is running; the next solidity query simply observes open cells.
func UpdateGates(ecs *ecs.ECS) {
	gEntry, ok := gooseEntry(ecs)
	if !ok {
		return
	}
	ld, ok := currentLevel(ecs)
	if !ok {
		return
	}
	dt := float32(frameDt())

	tags.Gate.Each(ecs.World, func(e *donburi.Entry) {
		gate := components.Gate.Get(e)
		if gate.Opened {
			return
		}

		if gate.Dissolve == nil {
			if gateTriggered(gEntry, e) {
				gate.Dissolve = gween.New(1, 0, cfg.Gates.DissolveSeconds, ease.InQuad)
			}
			return
		}

		alpha, done := gate.Dissolve.Update(dt)
		gate.Alpha = alpha
		if !done {
			return
		}
		gate.Opened = true
		layer := ld.CurrentLevel.Layers.CollisionLayer()
		for _, c := range gate.Cells {
			spawnGateDebris(ecs, ld, c.TX, c.TY)
			ld.CurrentLevel.Layers.ClearCell(layer, c.TX, c.TY)
		}
	})
}

// gateTriggered checks the goose's resolv object against this gate's
// trigger zone object.
func gateTriggered(goose, gate *donburi.Entry) bool {
	gooseObj := components.Object.Get(goose)
	if gooseObj.Object == nil {
		return false
	}
	check := gooseObj.Check(0, 0, tags.ResolvGateZone)
	if check == nil {
		return false
	}
	for _, obj := range check.ObjectsByTags(tags.ResolvGateZone) {
		if entry, ok := obj.Data.(*donburi.Entry); ok && entry == gate {
			return true
		}
	}
	return false
}

// spawnGateDebris samples the dissolving cell's solid mask pixels into
// the particle pool, colored from the tile artwork.
func spawnGateDebris(ecs *ecs.ECS, ld *components.LevelData, tx, ty int) {
	entry, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	pool := components.Particles.Get(entry)
	lv := ld.CurrentLevel

	raw := lv.Layers.Gid(lv.Layers.CollisionLayer(), tx, ty)
	ts := lv.TilesetFor(raw)
	if ts == nil {
		return
	}
	tw, th := lv.World.TileW, lv.World.TileH
	baseX, baseY := float64(tx*tw), float64(ty*th)

	spawned := 0
	skip := cfg.Gates.ParticleSkipSolid
	if skip < 1 {
		skip = 1
	}
	for v := 0; v < th && spawned < cfg.Gates.ParticlesPerCell; v++ {
		for u := v % skip; u < tw && spawned < cfg.Gates.ParticlesPerCell; u += skip {
			if !ts.Grid.SolidPixel(raw, u, v) {
				continue
			}
			// Scatter outward from the cell center, deterministic per
			// pixel so replays look identical.
			cx, cy := float64(u-tw/2), float64(v-th/2)
			pool.Items = append(pool.Items, components.Particle{
				X:     baseX + float64(u),
				Y:     baseY + float64(v),
				VX:    cx / float64(tw/2) * cfg.Gates.ParticleSpeed,
				VY:    cy/float64(th/2)*cfg.Gates.ParticleSpeed - cfg.Gates.ParticleSpeed/2,
				Life:  cfg.Gates.ParticleLife,
				Color: color.RGBA{R: 52, G: 50, B: 58, A: 255},
			})
			spawned++
		}
	}
}
