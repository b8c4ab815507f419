package systems

import (
	"github.com/pondworks/gaggle/components"
	cfg "github.com/pondworks/gaggle/config"
	"github.com/yohamta/donburi/ecs"
)

// UpdateParticles integrates gate debris against the per-pixel terrain.
// Particles are cosmetic and collide with mask pixels, not cells, so
// debris rolls off the jagged edges the masks describe.
func UpdateParticles(ecs *ecs.ECS) {
	entry, ok := components.Particles.First(ecs.World)
	if !ok {
		return
	}
	ld, ok := currentLevel(ecs)
	if !ok {
		return
	}
	pool := components.Particles.Get(entry)
	lv := ld.CurrentLevel
	dt := frameDt()

	alive := pool.Items[:0]
	for _, p := range pool.Items {
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.VY += cfg.Gates.ParticleGravity * dt

		nx, ny := p.X+p.VX*dt, p.Y+p.VY*dt
		if lv.SolidPixelAt(nx, p.Y) {
			p.VX = -p.VX * cfg.Gates.ParticleBounce
			nx = p.X
		}
		if lv.SolidPixelAt(nx, ny) {
			p.VY = -p.VY * cfg.Gates.ParticleBounce
			p.VX *= cfg.Gates.ParticleBounce
			ny = p.Y
		}
		p.X, p.Y = nx, ny

		if p.X < 0 || p.Y < 0 || p.X >= float64(lv.World.W) || p.Y >= float64(lv.World.H) {
			continue
		}
		alive = append(alive, p)
	}
	pool.Items = alive
}
