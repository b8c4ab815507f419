package systems

import (
	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateHazards watches the goose alone: spike tiles via the tile-index
// overlap query, ponds via their resolv zones. Goslings trail the
// leader's own path and are not checked individually; when the leader is
// hit, the whole recruited flock respawns with it. The query never
// mutates anything; only this system moves bodies back to their spawn
// points.
func UpdateHazards(ecs *ecs.ECS) {
	ld, ok := currentLevel(ecs)
	if !ok {
		return
	}
	lv := ld.CurrentLevel
	progress := progressData(ecs)
	if progress.InvulnFrames > 0 {
		progress.InvulnFrames--
		return
	}

	if entry, ok := gooseEntry(ecs); ok {
		body := components.Body.Get(entry)
		if hazardHit(entry, ld) {
			body.Body.X = lv.GooseSpawn.X - body.Body.W/2
			body.Body.Y = lv.GooseSpawn.Y - body.Body.H
			body.Body.VX, body.Body.VY = 0, 0
			progress.InvulnFrames = cfg.Hazard.RespawnInvulnFrames
			// The flock resets with the leader so no gosling is left
			// stranded on the far side of a hazard.
			respawnFlock(ecs, ld)
		}
	}
}

func hazardHit(e *donburi.Entry, ld *components.LevelData) bool {
	body := components.Body.Get(e)
	lv := ld.CurrentLevel
	if lv.Layers.OverlapsAABB(body.Body.Rect(), lv.HazardIndexes, lv.QueryLayers...) {
		return true
	}
	return zoneCheck(e, tags.ResolvPond)
}

func respawnFlock(ecs *ecs.ECS, ld *components.LevelData) {
	lv := ld.CurrentLevel
	tags.Gosling.Each(ecs.World, func(e *donburi.Entry) {
		flock := components.Flock.Get(e)
		if !flock.Recruited {
			return
		}
		body := components.Body.Get(e)
		body.Body.X = lv.GooseSpawn.X - body.Body.W/2 + float64(flock.Slot+1)*body.Body.W
		body.Body.Y = lv.GooseSpawn.Y - body.Body.H
		flock.FallVY = 0
		body.Body.VY = 0
	})
}
