package archetypes

import (
	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

var (
	Goose = newArchetype(
		tags.Goose,
		components.Body,
		components.Input,
		components.Trail,
		components.Object,
	)
	Gosling = newArchetype(
		tags.Gosling,
		components.Body,
		components.Flock,
		components.Object,
	)
	Gate = newArchetype(
		tags.Gate,
		components.Gate,
		components.Object,
	)
	Level = newArchetype(
		components.Level,
	)
	Camera = newArchetype(
		components.Camera,
	)
	Space = newArchetype(
		components.Space,
	)
	Particles = newArchetype(
		components.Particles,
	)
	Progress = newArchetype(
		components.Progress,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		append(a.components, cs...)...,
	))
	return e
}
