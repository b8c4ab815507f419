package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// GateCell is one collision-layer cell a gate occupies.
type GateCell struct {
	TX, TY int
}

// GateData tracks one dissolving gate. Dissolve is nil until the trigger
// zone fires; Alpha fades the rendered cells while the tween runs. Cells
// are cleared from the live collision layer only when the tween finishes,
// between frames, never mid-step.
type GateData struct {
	Cells    []GateCell
	Dissolve *gween.Tween
	Alpha    float32
	Opened   bool
}

var Gate = donburi.NewComponentType[GateData]()
