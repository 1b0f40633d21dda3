package game

import (
	"math/rand"

	"github.com/vovakirdan/blockout/internal/config"
	"github.com/vovakirdan/blockout/internal/core"
)

// Particle is a short-lived visual fragment spawned when a brick dies.
type Particle struct {
	Pos     core.Vec2
	Vel     core.Vec2
	Life    float64 // Seconds remaining
	MaxLife float64 // Initial lifetime, for fade ratio
	Color   core.Color
}

// ParticleSystem owns every live particle. It is purely cosmetic: it
// never feeds back into collision or scoring, so trimming it (or a
// zero burst size) changes nothing but the picture.
type ParticleSystem struct {
	cfg       config.ParticleConfig
	particles []Particle
}

// NewParticleSystem creates an empty system with the given tuning.
func NewParticleSystem(cfg config.ParticleConfig) *ParticleSystem {
	return &ParticleSystem{cfg: cfg}
}

// Emit spawns one burst at (x, y). Velocities and lifetimes are drawn
// uniformly from the configured ranges.
func (ps *ParticleSystem) Emit(rng *rand.Rand, x, y float64, color core.Color) {
	for i := 0; i < ps.cfg.BurstSize; i++ {
		life := ps.cfg.MinLife + rng.Float64()*(ps.cfg.MaxLife-ps.cfg.MinLife)
		ps.particles = append(ps.particles, Particle{
			Pos: core.Vec2{X: x, Y: y},
			Vel: core.Vec2{
				X: ps.cfg.MinVX + rng.Float64()*(ps.cfg.MaxVX-ps.cfg.MinVX),
				Y: ps.cfg.MinVY + rng.Float64()*(ps.cfg.MaxVY-ps.cfg.MinVY),
			},
			Life:    life,
			MaxLife: life,
			Color:   color,
		})
	}
}

// Update ages every particle by dt, applies gravity, and compacts dead
// particles out of the slice in place.
func (ps *ParticleSystem) Update(dt float64) {
	alive := ps.particles[:0]
	for i := range ps.particles {
		p := ps.particles[i]
		p.Life -= dt
		if p.Life <= 0 {
			continue
		}
		p.Vel.Y += ps.cfg.Gravity * dt
		p.Pos = p.Pos.Add(p.Vel.Scale(dt))
		alive = append(alive, p)
	}
	ps.particles = alive
}

// Particles returns the live particles for rendering. The slice is
// owned by the system and valid until the next Emit or Update.
func (ps *ParticleSystem) Particles() []Particle {
	return ps.particles
}

// Count returns the number of live particles.
func (ps *ParticleSystem) Count() int {
	return len(ps.particles)
}

// Clear drops all live particles.
func (ps *ParticleSystem) Clear() {
	ps.particles = ps.particles[:0]
}
