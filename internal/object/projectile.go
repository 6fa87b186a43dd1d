package object

import "starlane/internal/physics"

// ProjectileSpeed is the fixed forward speed per tick, toward -z.
const ProjectileSpeed = 2.0

// projectileHalf is the projectile's collision half-extent. Slightly long on
// z so a fast bolt cannot tunnel through a small hitbox between ticks.
var projectileHalf = physics.Vec3{X: 0.3, Y: 0.3, Z: 1.0}

// Projectile is a bolt fired by the player. No rotation, constant velocity.
type Projectile struct {
	T      physics.Transform
	Visual Visual

	dead bool
}

// NewProjectile creates a projectile at the given origin heading toward the
// spawn horizon.
func NewProjectile(origin physics.Vec3, factory VisualFactory) *Projectile {
	return &Projectile{
		T: physics.Transform{
			Position: origin,
			Velocity: physics.Vec3{Z: -ProjectileSpeed},
			Scale:    projectileHalf,
		},
		Visual: AttachVisual(factory, KindProjectile),
	}
}

// Update advances the projectile one tick.
func (p *Projectile) Update() {
	p.T.Integrate()
}

// MarkDead flags the projectile as spent and releases its visual. Idempotent.
func (p *Projectile) MarkDead() bool {
	if p.dead {
		return false
	}
	p.dead = true
	p.Visual.Detach()
	return true
}

// Dead reports whether the projectile has been destroyed.
func (p *Projectile) Dead() bool {
	return p.dead
}

// PushVisual sends the current transform to the presentation layer.
func (p *Projectile) PushVisual() {
	p.Visual.UpdateTransform(p.T.Position, p.T.Rotation, 1)
}
