// Package object defines the game entities: the player craft, obstacles,
// projectiles and background stars. Entities own their spatial transform and
// a visual handle; they never draw themselves.
package object

import "starlane/internal/physics"

// Kind identifies an entity type to the presentation layer.
type Kind int

const (
	KindPlayer Kind = iota
	KindObstacle
	KindProjectile
	KindStar
)

// Visual is the handle an entity uses to drive its on-screen representation.
// The core never constructs geometry; it pushes transform updates and
// lifecycle events through this boundary. All methods must be safe to call
// after Detach (no-ops).
type Visual interface {
	// UpdateTransform pushes the entity's world transform. Scale is the
	// uniform visual size.
	UpdateTransform(pos, rot physics.Vec3, scale float64)
	// SetVisible shows or hides the visual without detaching it.
	SetVisible(visible bool)
	// Detach tears the visual down. Idempotent.
	Detach()
}

// VisualFactory attaches visuals for newly spawned entities. Supplied by the
// presentation layer; a nil factory yields inert handles (headless mode).
type VisualFactory interface {
	Attach(kind Kind) Visual
}

// nopVisual is the headless stand-in used when no renderer is connected.
type nopVisual struct{}

func (nopVisual) UpdateTransform(_, _ physics.Vec3, _ float64) {}
func (nopVisual) SetVisible(bool)                              {}
func (nopVisual) Detach()                                      {}

// AttachVisual attaches a visual of the given kind, falling back to an inert
// handle when factory is nil.
func AttachVisual(factory VisualFactory, kind Kind) Visual {
	if factory == nil {
		return nopVisual{}
	}
	return factory.Attach(kind)
}
