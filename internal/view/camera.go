// Package view drives the camera: view presets, transition blending, live
// player tracking and the terminal death sequence. It reads simulation state
// and writes camera state; the renderer consumes the result.
package view

import (
	"math"

	"starlane/internal/physics"
)

// Pose is a camera position plus Euler rotation (pitch/yaw/roll).
// At zero rotation the camera faces -z with +y up.
type Pose struct {
	Position physics.Vec3
	Rotation physics.Vec3
}

// Camera is the single camera of the scene. Rotation and the orthonormal
// basis are kept in sync: rotation is the blendable representation, the
// basis is what projection and frustum tests use.
type Camera struct {
	Pose
	forward physics.Vec3
	right   physics.Vec3
	up      physics.Vec3
}

// Basis returns the camera's forward, right and up vectors.
func (c *Camera) Basis() (forward, right, up physics.Vec3) {
	return c.forward, c.right, c.up
}

// SetPose sets position and rotation and rebuilds the basis.
func (c *Camera) SetPose(p Pose) {
	c.Pose = p
	c.syncBasis()
}

// LookAt aims the camera at target, deriving rotation (with zero roll) so a
// later transition can blend away from the aimed pose smoothly.
func (c *Camera) LookAt(target physics.Vec3) {
	dir := target.Sub(c.Position)
	c.Rotation = rotationToward(dir)
	c.syncBasis()
}

// syncBasis rebuilds the orthonormal basis from the Euler rotation.
// Yaw about y, then pitch about x, then roll about z.
func (c *Camera) syncBasis() {
	sp, cp := math.Sincos(c.Rotation.X)
	sy, cy := math.Sincos(c.Rotation.Y)
	sr, cr := math.Sincos(c.Rotation.Z)

	c.forward = physics.Vec3{X: -sy * cp, Y: sp, Z: -cy * cp}

	// Right/up before roll, then roll rotates them about forward.
	right := physics.Vec3{X: cy, Y: 0, Z: -sy}
	up := c.forward.Cross(right).Scale(-1)
	c.right = right.Scale(cr).Add(up.Scale(-sr))
	c.up = up.Scale(cr).Add(right.Scale(sr))
}

// rotationToward returns the pitch/yaw (roll zero) that points the camera
// along dir.
func rotationToward(dir physics.Vec3) physics.Vec3 {
	d := dir.Normalized()
	if d == (physics.Vec3{}) {
		return physics.Vec3{}
	}
	pitch := math.Asin(clamp(d.Y, -1, 1))
	// Straight up/down has no horizontal component; Atan2 on the negated
	// signed zeros would yield -pi and flip the camera.
	yaw := 0.0
	if d.X != 0 || d.Z != 0 {
		yaw = math.Atan2(-d.X, -d.Z)
	}
	return physics.Vec3{X: pitch, Y: yaw}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
