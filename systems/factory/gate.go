package factory

import (
	"github.com/pondworks/gaggle/archetypes"
	"github.com/pondworks/gaggle/assets"
	"github.com/pondworks/gaggle/components"
	"github.com/pondworks/gaggle/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateGate spawns a dissolvable gate: the component carries the
// collision cells, the resolv object is the trigger zone.
func CreateGate(ecs *ecs.ECS, spawn assets.GateSpawn) *donburi.Entry {
	gate := archetypes.Gate.Spawn(ecs)

	cells := make([]components.GateCell, len(spawn.Cells))
	for i, c := range spawn.Cells {
		cells[i] = components.GateCell{TX: c.TX, TY: c.TY}
	}
	components.Gate.Set(gate, &components.GateData{Cells: cells, Alpha: 1})

	obj := resolv.NewObject(spawn.Zone.X, spawn.Zone.Y, spawn.Zone.W, spawn.Zone.H, tags.ResolvGateZone)
	obj.Data = gate
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
	components.Object.SetValue(gate, components.ObjectData{Object: obj})
	return gate
}
