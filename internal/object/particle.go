package object

import (
	"sync"

	"github.com/tomz197/lavaballs/internal/physics"
)

// Particle parameters.
const (
	ParticleBurst      = 8    // Particles per hit
	ParticleDecay      = 0.02 // Alpha lost per tick
	particleSpeedRange = 4.0  // Each axis in [-2, 2)
	particleRadius     = 3.0
)

// particlePool is a sync.Pool for reusing Particle objects to reduce allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &Particle{}
	},
}

// Particle is a short-lived spark that fades out.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Alpha  float64
}

// NewParticle creates a single particle from the pool.
func NewParticle(x, y, vx, vy float64) *Particle {
	p := particlePool.Get().(*Particle)
	p.X = x
	p.Y = y
	p.VX = vx
	p.VY = vy
	p.Alpha = 1
	return p
}

// Release returns the particle to the pool for reuse.
// Should be called when the particle is removed from the game.
func (p *Particle) Release() {
	particlePool.Put(p)
}

// SpawnBurst spawns count particles at (x, y) with random velocities.
func SpawnBurst(ctx UpdateContext, x, y float64, count int) {
	if ctx.Spawner == nil {
		return
	}
	for i := 0; i < count; i++ {
		vx := physics.RandSpread(ctx.Rand, particleSpeedRange)
		vy := physics.RandSpread(ctx.Rand, particleSpeedRange)
		ctx.Spawner.Spawn(NewParticle(x, y, vx, vy))
	}
}

// Update moves the particle and fades it. Returns true once fully transparent.
func (p *Particle) Update(_ UpdateContext) bool {
	p.X += p.VX
	p.Y += p.VY
	p.Alpha -= ParticleDecay
	return p.Alpha <= 0
}

// Draw renders the particle as a small orange dot.
func (p *Particle) Draw(ctx DrawContext) {
	ctx.Canvas.FillCircle(p.X, p.Y, particleRadius, sparkColor.Fade(p.Alpha))
}
