package systems

import (
	"log"

	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/phys"
	"github.com/pondworks/gaggle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// frameDt is the fixed timestep every system integrates with.
func frameDt() float64 { return 1.0 / float64(cfg.C.TPS) }

// currentLevel fetches the single level entity's data.
func currentLevel(ecs *ecs.ECS) (*components.LevelData, bool) {
	entry, ok := components.Level.First(ecs.World)
	if !ok {
		return nil, false
	}
	ld := components.Level.Get(entry)
	if ld.CurrentLevel == nil {
		return nil, false
	}
	return ld, true
}

// physTrace returns the trace sink step calls receive: the log when
// trace forwarding is on, nil otherwise. Tracing is explicit plumbing,
// never a hidden side effect of the movers.
func physTrace() phys.TraceFunc {
	if !cfg.Debug.TraceToLog {
		return nil
	}
	return logTrace
}

func logTrace(ev phys.TraceEvent) {
	log.Printf("phys: %s at (%.2f, %.2f) arg=%.2f", ev.Kind, ev.X, ev.Y, ev.Arg)
}

// gooseEntry finds the goose, which may not exist yet during setup.
func gooseEntry(ecs *ecs.ECS) (*donburi.Entry, bool) {
	return tags.Goose.First(ecs.World)
}
