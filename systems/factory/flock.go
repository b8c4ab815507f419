package factory

import (
	"github.com/pondworks/gaggle/archetypes"
	"github.com/pondworks/gaggle/assets"
	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/phys"
	"github.com/pondworks/gaggle/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGoose spawns the leader at a level spawn point. Spawn points are
// bottom-center anchors, matching how they are placed in the editor.
func CreateGoose(ecs *ecs.ECS, spawn assets.Spawn) *donburi.Entry {
	goose := archetypes.Goose.Spawn(ecs)

	components.Body.Set(goose, &components.BodyData{
		Body: phys.Body{
			X: spawn.X - cfg.Goose.Width/2,
			Y: spawn.Y - cfg.Goose.Height,
			W: cfg.Goose.Width,
			H: cfg.Goose.Height,
		},
		Tuning: &cfg.Goose.Tuning,
	})
	components.Input.Set(goose, &components.InputData{})
	components.Trail.Set(goose, &components.TrailData{
		// Enough breadcrumbs for the whole flock to string out.
		Max: (maxFlockSize + 1) * cfg.Gosling.TrailSpacing,
	})
	attachObject(ecs, goose, tags.ResolvGoose)
	return goose
}

// maxFlockSize bounds the trail buffer, not the actual gosling count;
// slots past the buffer clamp to its oldest sample.
const maxFlockSize = 16

// CreateGosling spawns one idle follower.
func CreateGosling(ecs *ecs.ECS, spawn assets.Spawn, leader donburi.Entity) *donburi.Entry {
	gosling := archetypes.Gosling.Spawn(ecs)

	components.Body.Set(gosling, &components.BodyData{
		Body: phys.Body{
			X: spawn.X - cfg.Gosling.Width/2,
			Y: spawn.Y - cfg.Gosling.Height,
			W: cfg.Gosling.Width,
			H: cfg.Gosling.Height,
		},
		Tuning: &cfg.Gosling.Tuning,
	})
	components.Flock.Set(gosling, &components.FlockData{Leader: leader})
	attachObject(ecs, gosling, tags.ResolvGosling)
	return gosling
}

// attachObject gives a body entity its resolv presence for zone checks.
func attachObject(ecs *ecs.ECS, entry *donburi.Entry, tag string) {
	body := components.Body.Get(entry)
	obj := resolv.NewObject(body.Body.X, body.Body.Y, body.Body.W, body.Body.H, tag)
	obj.Data = entry
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
}
