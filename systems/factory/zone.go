package factory

import (
	"github.com/pondworks/gaggle/components"
	"github.com/pondworks/gaggle/tags"
	"github.com/pondworks/gaggle/tilegrid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi/ecs"
)

// CreatePond adds a pond hazard zone to the space. Ponds are zones, not
// tiles; touching one respawns the flock.
func CreatePond(ecs *ecs.ECS, r tilegrid.Rect) *resolv.Object {
	obj := resolv.NewObject(r.X, r.Y, r.W, r.H, tags.ResolvPond)
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	return obj
}
