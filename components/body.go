package components

import (
	"github.com/pondworks/gaggle/phys"
	"github.com/yohamta/donburi"
)

// BodyData bundles everything the movers need for one entity: the AABB,
// the per-frame contact flags, the corner-unstick accumulator, and the
// archetype's tuning. YBefore is recorded at the top of each step so the
// unstick pass can measure net downward progress.
type BodyData struct {
	Body    phys.Body
	State   phys.State
	Unstick phys.UnstickState
	Tuning  *phys.Tuning
	YBefore float64
}

var Body = donburi.NewComponentType[BodyData]()
