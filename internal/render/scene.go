package render

import (
	"math"
	"math/rand"

	"starlane/internal/draw"
	"starlane/internal/object"
	"starlane/internal/physics"
	"starlane/internal/view"
)

// Scene tracks one visual per live entity and rasterizes them all each
// frame. It is the simulation's object.VisualFactory: entities push their
// transforms through the handles, the scene draws whatever it last saw.
type Scene struct {
	canvas  *draw.Canvas
	visuals []*entityVisual

	particles []*particle
}

// NewScene creates a scene drawing onto canvas.
func NewScene(canvas *draw.Canvas) *Scene {
	return &Scene{canvas: canvas}
}

// entityVisual is the concrete visual handle handed to entities.
type entityVisual struct {
	kind     object.Kind
	pos      physics.Vec3
	rot      physics.Vec3
	scale    float64
	visible  bool
	detached bool

	// Irregular outline for obstacles, radii relative to size.
	verts []float64
}

// Attach implements object.VisualFactory.
func (sc *Scene) Attach(kind object.Kind) object.Visual {
	v := &entityVisual{kind: kind, scale: 1, visible: true}
	if kind == object.KindObstacle {
		// 8-12 vertices varied ±30% for a rocky outline.
		n := 8 + rand.Intn(5)
		v.verts = make([]float64, n)
		for i := range v.verts {
			v.verts[i] = 0.7 + rand.Float64()*0.6
		}
	}
	sc.visuals = append(sc.visuals, v)
	return v
}

func (v *entityVisual) UpdateTransform(pos, rot physics.Vec3, scale float64) {
	if v.detached {
		return
	}
	v.pos = pos
	v.rot = rot
	v.scale = scale
}

func (v *entityVisual) SetVisible(visible bool) {
	if v.detached {
		return
	}
	v.visible = visible
}

func (v *entityVisual) Detach() {
	v.detached = true
}

// Burst spawns a particle explosion at a world position. Wired to the
// simulation's obstacle-destroyed event.
func (sc *Scene) Burst(pos physics.Vec3) {
	sc.spawnBurst(pos, 14)
}

// Render advances particles, prunes detached handles and draws one frame
// through the camera. The canvas is cleared here; HUD overlays go on top
// after the canvas flush.
func (sc *Scene) Render(cam *view.Camera, cw *draw.ChunkWriter) {
	sc.canvas.Clear()
	pr := newProjection(cam, sc.canvas.LogicalWidth(), sc.canvas.LogicalHeight())

	kept := sc.visuals[:0]
	for _, v := range sc.visuals {
		if v.detached {
			continue
		}
		kept = append(kept, v)
		if v.visible {
			sc.drawVisual(pr, v)
		}
	}
	sc.visuals = kept

	sc.updateParticles(pr)
	sc.canvas.Flush(cw)
}

func (sc *Scene) drawVisual(pr projection, v *entityVisual) {
	p, depth, ok := pr.point(v.pos)
	if !ok {
		return
	}

	switch v.kind {
	case object.KindStar:
		sc.canvas.Set(p.X, p.Y)

	case object.KindProjectile:
		// Short streak along the flight path for readability.
		tail, _, ok := pr.point(v.pos.Add(physics.Vec3{Z: 1.5}))
		if ok {
			sc.canvas.Line(p, tail)
		} else {
			sc.canvas.Set(p.X, p.Y)
		}

	case object.KindObstacle:
		sc.drawObstacle(pr, v, p, depth)

	case object.KindPlayer:
		sc.drawPlayer(v, p, pr.unitRadius(depth))
	}
}

// drawObstacle renders the rocky outline, spun by the accumulated rotation
// and scaled by perspective.
func (sc *Scene) drawObstacle(pr projection, v *entityVisual, center draw.Point, depth float64) {
	radius := v.scale * pr.unitRadius(depth)
	if radius < 0.5 {
		sc.canvas.Set(center.X, center.Y)
		return
	}

	spin := v.rot.X + v.rot.Y + v.rot.Z
	n := len(v.verts)
	points := sc.canvas.BorrowPoints(n)
	for i, r := range v.verts {
		a := spin + float64(i)*2*math.Pi/float64(n)
		points[i] = draw.Point{
			X: center.X + math.Cos(a)*r*radius,
			Y: center.Y + math.Sin(a)*r*radius,
		}
	}
	sc.canvas.Polygon(points, false)
}

// drawPlayer renders the craft as a filled triangle banked by its roll.
func (sc *Scene) drawPlayer(v *entityVisual, center draw.Point, unit float64) {
	size := object.PlayerHalfWidth * unit
	roll := v.rot.Z

	// Nose up-screen, wings spread and rotated by bank angle.
	points := sc.canvas.BorrowPoints(3)
	angles := [3]float64{-math.Pi / 2, math.Pi/2 + 0.6, math.Pi/2 - 0.6}
	for i, a := range angles {
		points[i] = draw.Point{
			X: center.X + math.Cos(a+roll)*size,
			Y: center.Y + math.Sin(a+roll)*size*0.8,
		}
	}
	sc.canvas.Polygon(points, true)
}
