package factory

import (
	"github.com/pondworks/gaggle/archetypes"
	"github.com/pondworks/gaggle/assets"
	"github.com/pondworks/gaggle/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateLevelAtIndex(ecs *ecs.ECS, levelIndex int) *donburi.Entry {
	level := archetypes.Level.Spawn(ecs)

	levels := assets.MustLoadLevels()
	if levelIndex < 0 || levelIndex >= len(levels) {
		levelIndex = 0
	}
	current := &levels[levelIndex]

	components.Level.Set(level, &components.LevelData{
		Levels:       levels,
		LevelIndex:   levelIndex,
		CurrentLevel: current,
		Solids:       current.Layers.Solids(),
	})
	return level
}
