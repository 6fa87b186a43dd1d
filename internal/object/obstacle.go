package object

import "starlane/internal/physics"

// hitboxScale shrinks the collision volume relative to the visual volume.
// Intentional slack: a near-miss that grazes the rendered rock should not
// always count as a hit.
const hitboxScale = 0.8

// ObstacleParams are the spawn parameters chosen by the scheduler.
type ObstacleParams struct {
	Position      physics.Vec3
	Size          float64
	Speed         float64
	RotationSpeed float64
	Axis          physics.Vec3 // Fixed rotation axis, unit length
}

// Obstacle is a destructible rock traveling from the spawn horizon toward
// the player along +z. It carries a separate, smaller hitbox transform that
// mirrors its position every tick.
type Obstacle struct {
	T         physics.Transform
	Hitbox    physics.Transform
	Size      float64
	Speed     float64
	RotSpeed  float64
	Axis      physics.Vec3
	Direction physics.Vec3 // Always +z in practice
	Visual    Visual

	dead bool
}

// NewObstacle creates an obstacle from the scheduler's parameters.
func NewObstacle(p ObstacleParams, factory VisualFactory) *Obstacle {
	dir := physics.Vec3{Z: 1}
	o := &Obstacle{
		T: physics.Transform{
			Position: p.Position,
			Velocity: dir.Scale(p.Speed),
			Scale:    physics.Vec3{X: p.Size, Y: p.Size, Z: p.Size},
		},
		Size:      p.Size,
		Speed:     p.Speed,
		RotSpeed:  p.RotationSpeed,
		Axis:      p.Axis.Normalized(),
		Direction: dir,
		Visual:    AttachVisual(factory, KindObstacle),
	}
	hb := p.Size * hitboxScale
	o.Hitbox = physics.Transform{
		Position: p.Position,
		Scale:    physics.Vec3{X: hb, Y: hb, Z: hb},
	}
	return o
}

// Update integrates position, spins about the fixed axis and mirrors the
// hitbox onto the new position.
func (o *Obstacle) Update() {
	o.T.Integrate()
	o.T.Rotation = o.T.Rotation.Add(o.Axis.Scale(o.RotSpeed))
	o.Hitbox.Position = o.T.Position
}

// SlowBy scales the obstacle's forward speed, used by the death sequence's
// slow-motion effect.
func (o *Obstacle) SlowBy(factor float64) {
	o.Speed *= factor
	o.T.Velocity = o.Direction.Scale(o.Speed)
}

// MarkDead flags the obstacle as destroyed and releases its visual.
// Idempotent: reports whether this call did the destruction.
func (o *Obstacle) MarkDead() bool {
	if o.dead {
		return false
	}
	o.dead = true
	o.Visual.Detach()
	return true
}

// Dead reports whether the obstacle has been destroyed.
func (o *Obstacle) Dead() bool {
	return o.dead
}

// PushVisual sends the current transform to the presentation layer.
func (o *Obstacle) PushVisual() {
	o.Visual.UpdateTransform(o.T.Position, o.T.Rotation, o.Size)
}
