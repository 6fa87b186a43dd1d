package object

import (
	"math/rand"

	"starlane/internal/physics"
)

// Star field bounds. Stars drift downward and wrap from the floor back to
// the ceiling with a fresh random x/z, giving cheap parallax motion.
const (
	StarFieldX    = 120.0
	StarFieldTopY = 60.0
	StarFieldMinZ = -200.0
	StarFieldMaxZ = 40.0

	starMinFall = 0.1
	starMaxFall = 0.5
)

// Star is a purely decorative background point. Not collidable.
type Star struct {
	T      physics.Transform
	Visual Visual
}

// NewStar creates a star at a random point in the field.
func NewStar(r *rand.Rand, factory VisualFactory) *Star {
	return &Star{
		T: physics.Transform{
			Position: physics.Vec3{
				X: (r.Float64()*2 - 1) * StarFieldX,
				Y: (r.Float64()*2 - 1) * StarFieldTopY,
				Z: StarFieldMinZ + r.Float64()*(StarFieldMaxZ-StarFieldMinZ),
			},
			Velocity: physics.Vec3{Y: -(starMinFall + r.Float64()*(starMaxFall-starMinFall))},
		},
		Visual: AttachVisual(factory, KindStar),
	}
}

// Update integrates the fall and wraps below the floor.
func (s *Star) Update(r *rand.Rand) {
	s.T.Integrate()
	if s.T.Position.Y < -StarFieldTopY {
		s.T.Position.Y = StarFieldTopY
		s.T.Position.X = (r.Float64()*2 - 1) * StarFieldX
		s.T.Position.Z = StarFieldMinZ + r.Float64()*(StarFieldMaxZ-StarFieldMinZ)
	}
}

// PushVisual sends the current transform to the presentation layer.
func (s *Star) PushVisual() {
	s.Visual.UpdateTransform(s.T.Position, s.T.Rotation, 1)
}
