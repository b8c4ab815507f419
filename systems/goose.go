package systems

import (
	"math"

	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/phys"
	"github.com/yohamta/donburi/ecs"
	dmath "github.com/yohamta/donburi/features/math"
)

// UpdateGoose turns intent into velocity, steps the goose, runs the
// corner unstick pass, and records the trail breadcrumb the goslings
// follow.
func UpdateGoose(ecs *ecs.ECS) {
	entry, ok := gooseEntry(ecs)
	if !ok {
		return
	}
	ld, ok := currentLevel(ecs)
	if !ok {
		return
	}

	body := components.Body.Get(entry)
	in := components.Input.Get(entry)
	dt := frameDt()
	tr := physTrace()

	accel := cfg.Goose.Accel
	if !body.State.Grounded {
		accel = cfg.Goose.AirAccel
	}
	if in.MoveX != 0 {
		body.Body.VX += in.MoveX * accel * dt
		if body.Body.VX > cfg.Goose.MaxSpeed {
			body.Body.VX = cfg.Goose.MaxSpeed
		} else if body.Body.VX < -cfg.Goose.MaxSpeed {
			body.Body.VX = -cfg.Goose.MaxSpeed
		}
	} else {
		drop := cfg.Goose.Friction * dt
		if math.Abs(body.Body.VX) <= drop {
			body.Body.VX = 0
		} else {
			body.Body.VX -= math.Copysign(drop, body.Body.VX)
		}
	}

	if in.Jump && !in.JumpedPrev && body.State.Grounded {
		body.Body.VY = -cfg.Goose.JumpSpeed
	}

	body.YBefore = body.Body.Y
	phys.Step(&body.Body, &body.State, dt, ld.Solids, ld.CurrentLevel.World, *body.Tuning, tr)
	phys.Unstick(dt, &body.Body, &body.State, ld.Solids, ld.CurrentLevel.World,
		&body.Unstick, body.YBefore, cfg.Unstick.Tuning, tr)

	trail := components.Trail.Get(entry)
	trail.Push(dmath.Vec2{X: body.Body.X, Y: body.Body.Y})
}
