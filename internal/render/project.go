// Package render is the presentation layer: it implements the visual-handle
// boundary for the simulation, projects the 3D scene through the camera and
// rasterizes it onto the half-block canvas.
package render

import (
	"math"

	"starlane/internal/draw"
	"starlane/internal/physics"
	"starlane/internal/view"
)

var tanHalfFOV = math.Tan(view.FOVDegrees / 2 * math.Pi / 180)

// projection caches the per-frame camera data needed to map world points to
// logical canvas coordinates.
type projection struct {
	origin  physics.Vec3
	forward physics.Vec3
	right   physics.Vec3
	up      physics.Vec3
	halfW   float64
	halfH   float64
}

func newProjection(cam *view.Camera, logicalW, logicalH float64) projection {
	f, r, u := cam.Basis()
	return projection{
		origin:  cam.Position,
		forward: f,
		right:   r,
		up:      u,
		halfW:   logicalW / 2,
		halfH:   logicalH / 2,
	}
}

// point maps a world position to canvas coordinates. Returns the screen
// point, the view depth, and whether the point is in front of the camera.
func (pr projection) point(p physics.Vec3) (draw.Point, float64, bool) {
	d := p.Sub(pr.origin)
	depth := d.Dot(pr.forward)
	if depth < view.NearPlane {
		return draw.Point{}, 0, false
	}
	ndcX := d.Dot(pr.right) / (depth * tanHalfFOV * view.AspectRatio)
	ndcY := d.Dot(pr.up) / (depth * tanHalfFOV)
	return draw.Point{
		X: (ndcX + 1) * pr.halfW,
		Y: (1 - ndcY) * pr.halfH,
	}, depth, true
}

// unitRadius returns how many canvas units one world unit spans at depth.
func (pr projection) unitRadius(depth float64) float64 {
	return pr.halfH / (tanHalfFOV * depth)
}
