package object

import (
	"starlane/internal/input"
	"starlane/internal/physics"
)

// Player defaults.
const (
	PlayerSpeed      = 0.5 // Max per-axis velocity per tick
	PlayerHalfWidth  = 2.5 // Wingspan half-extent
	PlayerHalfHeight = 1.5
	PlayerHalfDepth  = 2.0

	// Visual tilt toward the current velocity direction.
	tiltEase       = 0.1 // Exponential approach factor per tick
	tiltRollScale  = 0.8 // Roll radians per unit of x velocity (negated)
	tiltPitchScale = 0.5 // Pitch radians per unit of y velocity

	rapidFireCooldown = 6 // Ticks between shots while fire is held
)

// Frustum gates player movement to the visible volume of the current camera.
type Frustum interface {
	Contains(p physics.Vec3) bool
}

// ProjectileSpawner lets the player fire during its update.
type ProjectileSpawner interface {
	SpawnProjectile(origin physics.Vec3) *Projectile
}

// UpdateContext provides everything the player needs during one tick.
type UpdateContext struct {
	Intents     input.Intents
	Frustum     Frustum
	Projectiles ProjectileSpawner
}

// Player is the player-controlled craft. It moves on the x/y plane; the
// transform's rotation carries only the smoothed visual tilt and never
// affects the bounding volume.
type Player struct {
	T         physics.Transform
	Speed     float64
	Shield    bool
	RapidFire bool
	Visual    Visual

	fireCooldown int
	wasFiring    bool
}

// NewPlayer creates the player at the fixed spawn point.
func NewPlayer(factory VisualFactory) *Player {
	return &Player{
		T: physics.Transform{
			Scale: physics.Vec3{X: PlayerHalfWidth, Y: PlayerHalfHeight, Z: PlayerHalfDepth},
		},
		Speed:  PlayerSpeed,
		Visual: AttachVisual(factory, KindPlayer),
	}
}

// Update applies input-driven velocity, integrates, enforces the frustum
// bound and handles firing. Movement order matters: a raw integration step
// that would leave the camera frustum is reverted exactly, not clamped.
func (p *Player) Update(ctx UpdateContext) {
	p.T.Velocity = physics.Vec3{}
	if ctx.Intents.Left {
		p.T.Velocity.X = -p.Speed
	}
	if ctx.Intents.Right {
		p.T.Velocity.X = p.Speed
	}
	if ctx.Intents.Up {
		p.T.Velocity.Y = p.Speed
	}
	if ctx.Intents.Down {
		p.T.Velocity.Y = -p.Speed
	}

	prev := p.T.Position
	p.T.Integrate()
	if ctx.Frustum != nil && !p.inFrustum(ctx.Frustum) {
		p.T.Position = prev
	}

	p.easeTilt()
	p.updateFiring(ctx)
}

// inFrustum probes the four ship edge points against the camera frustum.
// The edges, not the center, gate the bound so the wings never clip out.
func (p *Player) inFrustum(f Frustum) bool {
	probes := [4]physics.Vec3{
		{X: p.T.Scale.X},
		{X: -p.T.Scale.X},
		{Y: p.T.Scale.Y},
		{Y: -p.T.Scale.Y},
	}
	for _, off := range probes {
		if !f.Contains(p.T.Position.Add(off)) {
			return false
		}
	}
	return true
}

// easeTilt approaches the velocity-derived tilt target a tenth per tick.
func (p *Player) easeTilt() {
	targetRoll := -p.T.Velocity.X * tiltRollScale
	targetPitch := p.T.Velocity.Y * tiltPitchScale
	p.T.Rotation.Z += (targetRoll - p.T.Rotation.Z) * tiltEase
	p.T.Rotation.X += (targetPitch - p.T.Rotation.X) * tiltEase
}

// updateFiring spawns projectiles from the nose of the craft. A plain press
// fires once per press; with RapidFire the trigger can be held.
func (p *Player) updateFiring(ctx UpdateContext) {
	if p.fireCooldown > 0 {
		p.fireCooldown--
	}

	firing := ctx.Intents.Fire
	shoot := false
	if p.RapidFire {
		shoot = firing && p.fireCooldown == 0
	} else {
		shoot = firing && !p.wasFiring
	}
	p.wasFiring = firing

	if shoot && ctx.Projectiles != nil {
		nose := p.T.Position.Add(physics.Vec3{Z: -p.T.Scale.Z})
		ctx.Projectiles.SpawnProjectile(nose)
		p.fireCooldown = rapidFireCooldown
	}
}

// PushVisual sends the current transform to the presentation layer.
func (p *Player) PushVisual() {
	p.Visual.UpdateTransform(p.T.Position, p.T.Rotation, 1)
}
