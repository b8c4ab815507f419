package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/pondworks/gaggle/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawFlock draws the goose and goslings as simple vector shapes; the
// demo has no sprite sheets, the bodies themselves are the picture.
func DrawFlock(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}

	if entry, ok := gooseEntry(ecs); ok {
		body := components.Body.Get(entry)
		b := &body.Body
		x, y := float32(b.X+camX), float32(b.Y+camY)
		vector.DrawFilledRect(screen, x, y, float32(b.W), float32(b.H), cfg.GooseBody, false)
		// Beak points the way the goose last moved.
		bw := float32(3)
		if b.VX >= 0 {
			vector.DrawFilledRect(screen, x+float32(b.W), y+2, bw, 3, cfg.GooseBeak, false)
		} else {
			vector.DrawFilledRect(screen, x-bw, y+2, bw, 3, cfg.GooseBeak, false)
		}
	}

	tags.Gosling.Each(ecs.World, func(e *donburi.Entry) {
		body := components.Body.Get(e)
		b := &body.Body
		vector.DrawFilledRect(screen,
			float32(b.X+camX), float32(b.Y+camY),
			float32(b.W), float32(b.H), cfg.GoslingDot, false)
	})
}

// DrawParticles draws gate debris as single pixels.
func DrawParticles(ecs *ecs.ECS, screen *ebiten.Image) {
	camX, camY, ok := cameraOffset(ecs, screen)
	if !ok {
		return
	}
	entry, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	pool := components.Particles.Get(entry)
	for _, p := range pool.Items {
		vector.DrawFilledRect(screen,
			float32(p.X+camX), float32(p.Y+camY), 1, 1, p.Color, false)
	}
}
