package systems

import (
	"math"

	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/phys"
	"github.com/pondworks/gaggle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateGoslings advances the flock. Recruited goslings chase a
// slot-spaced sample of the leader's trail through the kinematic mover;
// idle ones just fall in place until the goose touches them. The mover
// never integrates gravity, so the fall speed lives in FlockData and is
// integrated here.
func UpdateGoslings(ecs *ecs.ECS) {
	gEntry, ok := gooseEntry(ecs)
	if !ok {
		return
	}
	ld, ok := currentLevel(ecs)
	if !ok {
		return
	}
	gooseBody := components.Body.Get(gEntry)
	trail := components.Trail.Get(gEntry)
	progress := progressData(ecs)
	dt := frameDt()
	tr := physTrace()

	tags.Gosling.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		flock := components.Flock.Get(e)

		if !flock.Recruited {
			if touchesGoose(&gooseBody.Body, &body.Body) {
				flock.Recruited = true
				flock.Slot = progress.Rescued
				progress.Rescued++
			}
		}

		var dx float64
		if flock.Recruited {
			if p, ok := trail.At((flock.Slot + 1) * cfg.Gosling.TrailSpacing); ok {
				want := p.X + gooseBody.Body.W/2 - (body.Body.X + body.Body.W/2)
				if math.Abs(want) > cfg.Gosling.SettleDist {
					dx = clampAbs(want, cfg.Gosling.CatchUp*dt)
				}
			}
		}

		// Kinematic fall: the gosling owns its vertical speed. The body's
		// VY mirrors it so the corner escape sees the fall; the mover
		// itself never reads or writes velocity.
		flock.FallVY = math.Min(cfg.Gosling.FallMax, flock.FallVY+cfg.Gosling.Grav*dt)
		body.Body.VY = flock.FallVY
		dy := flock.FallVY * dt

		body.YBefore = body.Body.Y
		phys.MoveBy(&body.Body, &body.State, dx, dy, ld.Solids, ld.CurrentLevel.World, *body.Tuning, tr)
		phys.Unstick(dt, &body.Body, &body.State, ld.Solids, ld.CurrentLevel.World,
			&body.Unstick, body.YBefore, cfg.Unstick.Tuning, tr)

		if body.State.Grounded || body.State.HitCeil {
			flock.FallVY = 0
			body.Body.VY = 0
		}
	})
}

func touchesGoose(goose, gosling *phys.Body) bool {
	pad := cfg.Gosling.RecruitPad
	return goose.X-pad < gosling.X+gosling.W &&
		goose.X+goose.W+pad > gosling.X &&
		goose.Y-pad < gosling.Y+gosling.H &&
		goose.Y+goose.H+pad > gosling.Y
}

func clampAbs(v, max float64) float64 {
	if v > max {
		return max
	}
	if v < -max {
		return -max
	}
	return v
}

func progressData(ecs *ecs.ECS) *components.ProgressData {
	entry, ok := components.Progress.First(ecs.World)
	if !ok {
		return &components.ProgressData{}
	}
	return components.Progress.Get(entry)
}
