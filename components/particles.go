package components

import (
	"image/color"

	"github.com/yohamta/donburi"
)

// Particle is one pixel of gate debris.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds remaining
	Color  color.RGBA
}

// ParticlesData is the world's single debris pool.
type ParticlesData struct {
	Items []Particle
}

var Particles = donburi.NewComponentType[ParticlesData]()
