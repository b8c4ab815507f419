package factory

import (
	"github.com/pondworks/gaggle/archetypes"
	"github.com/pondworks/gaggle/components"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	spaceData := resolv.NewSpace(width, height, cellWidth, cellHeight)
	components.Space.Set(space, spaceData)
	return space
}

func CreateCamera(ecs *ecs.ECS) {
	camera := archetypes.Camera.Spawn(ecs)
	components.Camera.Set(camera, &components.CameraData{})
}

func CreateParticles(ecs *ecs.ECS) {
	particles := archetypes.Particles.Spawn(ecs)
	components.Particles.Set(particles, &components.ParticlesData{})
}

func CreateProgress(ecs *ecs.ECS, total int) *donburi.Entry {
	progress := archetypes.Progress.Spawn(ecs)
	components.Progress.Set(progress, &components.ProgressData{Total: total})
	return progress
}
