package systems

import (
	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/phys"
	"github.com/pondworks/gaggle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// Scratch slice reused across frames.
var separationBodies []phys.SeparationBody

// Separation classes. Goslings only repel goslings; the goose passes
// through the flock so a tight huddle never shoves the leader around.
const (
	classGoose = iota
	classGosling
)

// UpdateSeparation runs the one separation pass per frame, after every
// body has stepped.
func UpdateSeparation(ecs *ecs.ECS) {
	ld, ok := currentLevel(ecs)
	if !ok {
		return
	}

	separationBodies = separationBodies[:0]
	if entry, ok := gooseEntry(ecs); ok {
		separationBodies = append(separationBodies, phys.SeparationBody{
			Body:   &components.Body.Get(entry).Body,
			Class:  classGoose,
			Weight: cfg.Separation.GooseWeight,
		})
	}
	tags.Gosling.Each(ecs.World, func(e *donburi.Entry) {
		separationBodies = append(separationBodies, phys.SeparationBody{
			Body:   &components.Body.Get(e).Body,
			Class:  classGosling,
			Weight: cfg.Separation.GoslingWeight,
		})
	})

	phys.Separate(separationBodies, cfg.Separation.Tuning, ld.CurrentLevel.World, ld.Solids, physTrace())
}
