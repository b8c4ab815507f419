package systems

import (
	"github.com/pondworks/gaggle/components"
	"github.com/pondworks/gaggle/tags"
	"github.com/pondworks/gaggle/tilegrid"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNest decides level completion: the goose stands on a finish tile
// (or inside the nest polygon) and every recruited gosling is inside the
// polygon too. Finish tiles use the tile-index overlap query; the nest
// zone itself is an irregular polygon from the map, tested with the
// polygon variant.
func UpdateNest(ecs *ecs.ECS) {
	progress := progressData(ecs)
	if progress.Complete {
		return
	}
	progress.Frames++

	gEntry, ok := gooseEntry(ecs)
	if !ok {
		return
	}
	ld, ok := currentLevel(ecs)
	if !ok {
		return
	}

	gooseBody := components.Body.Get(gEntry)
	if !atNest(gooseBody.Body.Rect(), ld) {
		return
	}

	allHome := true
	tags.Gosling.Each(ecs.World, func(e *donburi.Entry) {
		flock := components.Flock.Get(e)
		if !flock.Recruited {
			allHome = false
			return
		}
		body := components.Body.Get(e)
		if !atNest(body.Body.Rect(), ld) {
			allHome = false
		}
	})
	if !allHome || progress.Rescued < progress.Total {
		return
	}

	progress.Complete = true
	SaveProgress(&SavedProgress{
		Level:      ld.LevelIndex + 1,
		Rescued:    progress.Rescued,
		BestFrames: progress.Frames,
	})
}

// atNest is true when the box overlaps a finish-role tile or sits inside
// the nest polygon.
func atNest(r tilegrid.Rect, ld *components.LevelData) bool {
	lv := ld.CurrentLevel
	if lv.Layers.OverlapsAABB(r, lv.FinishIndexes, lv.QueryLayers...) {
		return true
	}
	if len(lv.NestPoly) >= 3 {
		return tilegrid.PolygonOverlapsRect(lv.NestPoly, r)
	}
	return false
}
