package systems

import (
	"github.com/pondworks/gaggle/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateZones mirrors every body into its resolv object and refreshes
// the space. The zone objects themselves (ponds, gate triggers) are
// static; only the flock moves. Runs after stepping and separation so
// zone checks see final positions.
func UpdateZones(ecs *ecs.ECS) {
	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		if e.HasComponent(components.Body) {
			body := components.Body.Get(e)
			obj.X = body.Body.X
			obj.Y = body.Body.Y
			obj.W = body.Body.W
			obj.H = body.Body.H
		}
		obj.Update()
	}
}

// zoneCheck reports whether an entity's resolv object currently touches
// a zone with the given tag.
func zoneCheck(e *donburi.Entry, tag string) bool {
	if !e.HasComponent(components.Object) {
		return false
	}
	obj := components.Object.Get(e)
	if obj.Object == nil {
		return false
	}
	return obj.Check(0, 0, tag) != nil
}
