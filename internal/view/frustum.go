package view

import (
	"math"

	"starlane/internal/physics"
)

// Projection parameters shared by the frustum test and the renderer.
// Aspect matches the logical render target (width/height in world terms).
const (
	FOVDegrees  = 60.0
	AspectRatio = 1.5
	NearPlane   = 0.1
)

// Frustum is the visible volume of a camera pose, used to gate player
// movement. Built fresh each tick so it always reflects the current view.
type Frustum struct {
	origin   physics.Vec3
	forward  physics.Vec3
	right    physics.Vec3
	up       physics.Vec3
	tanHalfV float64
	tanHalfH float64
}

// defaultFrustum is the default view's frustum, used to bound player
// movement while a tracking camera is active: a camera that follows the
// player cannot also gate it (first person rides ahead of the probe points,
// chase would let the craft drift without bound).
var defaultFrustum = func() Frustum {
	var c Camera
	p := preset(Default)
	c.SetPose(Pose{Position: p.Position})
	c.LookAt(p.LookAt)
	return c.Frustum()
}()

// Frustum returns the camera's current view frustum.
func (c *Camera) Frustum() Frustum {
	tanV := math.Tan(FOVDegrees / 2 * math.Pi / 180)
	return Frustum{
		origin:   c.Position,
		forward:  c.forward,
		right:    c.right,
		up:       c.up,
		tanHalfV: tanV,
		tanHalfH: tanV * AspectRatio,
	}
}

// Contains reports whether a world point lies inside the frustum.
func (f Frustum) Contains(p physics.Vec3) bool {
	d := p.Sub(f.origin)
	depth := d.Dot(f.forward)
	if depth < NearPlane {
		return false
	}
	if math.Abs(d.Dot(f.right)) > depth*f.tanHalfH {
		return false
	}
	if math.Abs(d.Dot(f.up)) > depth*f.tanHalfV {
		return false
	}
	return true
}
