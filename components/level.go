package components

import (
	"github.com/pondworks/gaggle/assets"
	"github.com/pondworks/gaggle/tilegrid"
	"github.com/yohamta/donburi"
)

type LevelData struct {
	CurrentLevel *assets.Level
	LevelIndex   int
	Levels       []assets.Level

	// Solids is the box-solid view over the current level's collision
	// layer, built once at level setup and handed to every phys call.
	Solids *tilegrid.LayerSolid
}

var Level = donburi.NewComponentType[LevelData]()
