package view

import (
	"starlane/internal/object"
	"starlane/internal/physics"
)

const (
	// transitionStep advances the view blend 0.02 per tick, so a switch
	// completes in ~50 ticks (~0.83s at 60 fps).
	transitionStep = 0.02

	// chaseEase is the per-tick interpolation factor for the chase camera.
	chaseEase = 0.1

	// deathBlendStep advances the death camera blend per tick.
	deathBlendStep = 0.01

	// SlowMotionFactor scales the player's and killer's speed on death.
	SlowMotionFactor = 0.2
)

// deathOffset is the dramatic camera target relative to the player.
var deathOffset = physics.Vec3{X: 10, Y: 5, Z: 12}

// Status reports what the machine did during one Update.
type Status struct {
	Committed bool // A view transition finished this tick
	View      ID   // The committed view, valid when Committed
	DeathDone bool // The death blend crossed 1.0 this tick (fires once)
}

// Machine is the view/death state machine. It owns the camera; the
// simulation calls Update once per frame and the renderer reads the camera.
type Machine struct {
	cam     Camera
	current ID

	transitioning bool
	blend         float64
	from          Pose
	target        Pose
	pending       ID

	dying         bool
	deathBlend    float64
	deathFrom     Pose
	deathTarget   physics.Vec3
	deathSignaled bool

	lastPlayerPos physics.Vec3
}

// NewMachine creates the machine in the default view with the camera aimed.
func NewMachine() *Machine {
	m := &Machine{}
	m.Reset()
	return m
}

// Reset restores the default view and cancels any in-flight transition or
// death animation.
func (m *Machine) Reset() {
	m.current = Default
	m.transitioning = false
	m.blend = 0
	m.dying = false
	m.deathBlend = 0
	m.deathSignaled = false
	m.lastPlayerPos = physics.Vec3{}

	p := preset(Default)
	m.cam.SetPose(Pose{Position: p.Position})
	m.cam.LookAt(p.LookAt)
}

// Camera returns the machine's camera for projection and frustum tests.
func (m *Machine) Camera() *Camera {
	return &m.cam
}

// BoundFrustum returns the frustum that bounds player movement. Fixed views
// bound against the live camera; tracking views bound against the default
// view so the craft stays on the playfield the fixed cameras frame.
func (m *Machine) BoundFrustum() Frustum {
	v := m.current
	if m.transitioning {
		v = m.pending
	}
	if preset(v).TracksPlayer {
		return defaultFrustum
	}
	return m.cam.Frustum()
}

// Current returns the active view.
func (m *Machine) Current() ID {
	return m.current
}

// Transitioning reports whether a view blend is in flight.
func (m *Machine) Transitioning() bool {
	return m.transitioning
}

// Dying reports whether the death sequence is running (blend not yet done).
func (m *Machine) Dying() bool {
	return m.dying
}

// Select requests a view switch. No-op while a transition is in flight, when
// v is the current view, when v is unknown, or at any point during or after
// the death sequence (the death camera owns the rig until reset). Returns
// whether the request was accepted.
func (m *Machine) Select(v ID) bool {
	if !v.Valid() || m.transitioning || m.dying || m.deathSignaled || v == m.current {
		return false
	}
	m.transitioning = true
	m.blend = 0
	m.from = m.cam.Pose
	m.target = targetPose(v, m.lastPlayerPos)
	m.pending = v
	return true
}

// StartDeath begins the terminal death sequence: capture the camera pose and
// compute the dramatic target around the player. Re-entry while already
// active (or already finished this life) is a no-op. Returns whether the
// sequence started.
func (m *Machine) StartDeath(playerPos physics.Vec3) bool {
	if m.dying || m.deathSignaled {
		return false
	}
	m.dying = true
	m.deathBlend = 0
	m.deathFrom = m.cam.Pose
	m.deathTarget = playerPos.Add(deathOffset)
	m.transitioning = false
	return true
}

// Update advances the machine one tick. The death animation is an
// independent per-frame task: it keeps running while gameplay is frozen.
func (m *Machine) Update(player *object.Player) Status {
	var st Status
	if player != nil {
		m.lastPlayerPos = player.T.Position
	}

	if m.dying || m.deathSignaled {
		m.updateDeath(&st)
		return st
	}

	if m.transitioning {
		m.updateTransition(&st)
	} else {
		m.track(player)
	}

	// The cockpit visual is hidden only while riding first-person.
	if player != nil {
		player.Visual.SetVisible(m.current != FirstPerson || m.transitioning)
	}
	return st
}

// updateTransition blends position and each rotation axis toward the target
// with a smoothstep-shaped parameter, then commits.
func (m *Machine) updateTransition(st *Status) {
	m.blend += transitionStep
	e := physics.Smoothstep(m.blend)
	m.cam.SetPose(Pose{
		Position: m.from.Position.Lerp(m.target.Position, e),
		Rotation: m.from.Rotation.Lerp(m.target.Rotation, e),
	})
	if m.blend >= 1 {
		m.cam.SetPose(m.target)
		m.current = m.pending
		m.transitioning = false
		st.Committed = true
		st.View = m.current
	}
}

// track runs the per-tick live behaviour of the active view.
func (m *Machine) track(player *object.Player) {
	p := preset(m.current)
	switch {
	case p.TracksPlayer && m.current == FirstPerson:
		if player == nil {
			return
		}
		m.cam.SetPose(Pose{
			Position: player.T.Position.Add(headOffset),
			Rotation: physics.Vec3{Z: player.T.Rotation.Z * fpRollScale},
		})
	case p.TracksPlayer:
		if player == nil {
			return
		}
		want := player.T.Position.Add(p.Offset)
		m.cam.Position = m.cam.Position.Lerp(want, chaseEase)
		m.cam.LookAt(player.T.Position)
	case p.HasFixedLookAt:
		m.cam.Position = p.Position
		m.cam.LookAt(p.LookAt)
	}
}

// updateDeath runs the camera-only death animation: ease toward the
// dramatic target while continuously looking at the player. Signals
// completion exactly once; afterwards the camera holds on the player.
func (m *Machine) updateDeath(st *Status) {
	if m.dying {
		m.deathBlend += deathBlendStep
		e := physics.Smoothstep(m.deathBlend)
		m.cam.Position = m.deathFrom.Position.Lerp(m.deathTarget, e)
		m.cam.LookAt(m.lastPlayerPos)
		if m.deathBlend >= 1 {
			m.dying = false
			m.deathSignaled = true
			st.DeathDone = true
		}
		return
	}
	m.cam.LookAt(m.lastPlayerPos)
}
