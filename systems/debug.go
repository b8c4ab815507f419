package systems

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDebug toggles the overlay and trace forwarding.
func UpdateDebug(ecs *ecs.ECS) {
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		cfg.Debug.Enabled = !cfg.Debug.Enabled
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		cfg.Debug.TraceToLog = !cfg.Debug.TraceToLog
	}
}

// DrawDebug outlines every body, tinting the edges that registered a
// contact this frame, plus the static zone objects.
func DrawDebug(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.Enabled {
		return
	}
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	components.Body.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		b := &body.Body
		x, y := float32(b.X+camX), float32(b.Y+camY)
		w, h := float32(b.W), float32(b.H)

		edge := func(hit bool) color.RGBA {
			if hit {
				return cfg.DebugHit
			}
			return cfg.DebugBox
		}
		vector.DrawFilledRect(screen, x, y, w, 1, edge(body.State.HitCeil), false)
		vector.DrawFilledRect(screen, x, y+h-1, w, 1, edge(body.State.Grounded), false)
		vector.DrawFilledRect(screen, x, y, 1, h, edge(body.State.HitLeft), false)
		vector.DrawFilledRect(screen, x+w-1, y, 1, h, edge(body.State.HitRight), false)
	})

	// Zone objects without bodies: ponds, gate triggers.
	for e := range components.Object.Iter(ecs.World) {
		if e.HasComponent(components.Body) {
			continue
		}
		obj := components.Object.Get(e)
		if obj.Object == nil {
			continue
		}
		x, y := float32(obj.X+camX), float32(obj.Y+camY)
		w, h := float32(obj.W), float32(obj.H)
		c := color.RGBA{G: 200, B: 120, A: 255}
		vector.DrawFilledRect(screen, x, y, w, 1, c, false)
		vector.DrawFilledRect(screen, x, y+h-1, w, 1, c, false)
		vector.DrawFilledRect(screen, x, y, 1, h, c, false)
		vector.DrawFilledRect(screen, x+w-1, y, 1, h, c, false)
	}
}
