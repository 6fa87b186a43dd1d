package physics

// Transform holds position, velocity, scale and orientation for an entity.
// Scale stores half-extents per axis, so the bounding box of a transform is
// Position ± Scale.
type Transform struct {
	Position Vec3
	Velocity Vec3
	Scale    Vec3
	Rotation Vec3 // Pitch (x), yaw (y), roll (z) in radians
}

// Integrate applies one Euler step: Position += Velocity.
// Called exactly once per simulation tick; there is no sub-stepping.
func (t *Transform) Integrate() {
	t.Position = t.Position.Add(t.Velocity)
	t.Sanitize()
}

// Sanitize clears non-finite position and velocity components so a bad step
// can never wedge the frame loop. Release behaviour: clamp and keep going.
func (t *Transform) Sanitize() {
	if !t.Position.IsFinite() {
		t.Position = Vec3{}
	}
	if !t.Velocity.IsFinite() {
		t.Velocity = Vec3{}
	}
}

// AABB returns the axis-aligned bounding box of the transform in world space.
func (t *Transform) AABB() AABB {
	return AABB{
		Min: t.Position.Sub(t.Scale),
		Max: t.Position.Add(t.Scale),
	}
}
