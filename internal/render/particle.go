package render

import (
	"math"
	"math/rand"
	"sync"

	"starlane/internal/physics"
)

// particlePool recycles particles to avoid per-burst allocations.
var particlePool = sync.Pool{
	New: func() any {
		return &particle{}
	},
}

// particle is a short-lived fragment of an obstacle destruction burst.
// Particles live in world space and are projected like everything else.
type particle struct {
	pos  physics.Vec3
	vel  physics.Vec3
	life int // Ticks remaining
}

const (
	burstSpeed    = 0.6
	burstLifeMin  = 18
	burstLifeSpan = 24
	particleDrag  = 0.94
)

// spawnBurst emits count particles in a spherical spray around pos.
func (sc *Scene) spawnBurst(pos physics.Vec3, count int) {
	for i := 0; i < count; i++ {
		// Random direction on the sphere, biased slightly toward the camera
		// plane so bursts read well head-on.
		theta := rand.Float64() * 2 * math.Pi
		phi := (rand.Float64() - 0.5) * math.Pi
		speed := burstSpeed * (0.5 + rand.Float64())

		p := particlePool.Get().(*particle)
		p.pos = pos
		p.vel = physics.Vec3{
			X: math.Cos(theta) * math.Cos(phi) * speed,
			Y: math.Sin(phi) * speed,
			Z: math.Sin(theta) * math.Cos(phi) * speed * 0.5,
		}
		p.life = burstLifeMin + rand.Intn(burstLifeSpan)
		sc.particles = append(sc.particles, p)
	}
}

// updateParticles advances and draws live particles, releasing dead ones
// back to the pool.
func (sc *Scene) updateParticles(pr projection) {
	kept := sc.particles[:0]
	for _, p := range sc.particles {
		p.life--
		if p.life <= 0 {
			particlePool.Put(p)
			continue
		}
		p.vel = p.vel.Scale(particleDrag)
		p.pos = p.pos.Add(p.vel)

		if sp, _, ok := pr.point(p.pos); ok {
			sc.canvas.Set(sp.X, sp.Y)
		}
		kept = append(kept, p)
	}
	sc.particles = kept
}
