package view

import "starlane/internal/physics"

// ID identifies a camera view. The named presets are data, not special-cased
// code; the machine drives every view through the same Preset fields.
type ID int

const (
	Default ID = iota
	Side
	Top
	Chase
	Cinematic
	FirstPerson
)

// Valid reports whether v names a known view.
func (v ID) Valid() bool {
	return v >= Default && v <= FirstPerson
}

func (v ID) String() string {
	switch v {
	case Default:
		return "default"
	case Side:
		return "side"
	case Top:
		return "top"
	case Chase:
		return "chase"
	case Cinematic:
		return "cinematic"
	case FirstPerson:
		return "first-person"
	default:
		return "unknown"
	}
}

// Preset holds the target pose data for a view. TracksPlayer views re-derive
// their pose from the player every tick; fixed views re-aim at LookAt.
type Preset struct {
	Position       physics.Vec3
	Rotation       physics.Vec3 // Target rotation for views without a fixed look-at
	LookAt         physics.Vec3
	HasFixedLookAt bool
	TracksPlayer   bool
	Offset         physics.Vec3 // Player-relative offset for tracking views
}

// Player-tracking offsets.
var (
	chaseOffset = physics.Vec3{Y: 4, Z: 12}
	headOffset  = physics.Vec3{Y: 1.2, Z: -1}
)

// fpRollScale couples the first-person camera roll to the player's bank.
const fpRollScale = 0.5

var presets = [...]Preset{
	Default:     {Position: physics.Vec3{Y: 8, Z: 30}, LookAt: physics.Vec3{}, HasFixedLookAt: true},
	Side:        {Position: physics.Vec3{X: 40, Y: 2}, LookAt: physics.Vec3{}, HasFixedLookAt: true},
	Top:         {Position: physics.Vec3{Y: 50, Z: 5}, LookAt: physics.Vec3{}, HasFixedLookAt: true},
	Chase:       {Position: physics.Vec3{Y: 4, Z: 12}, Rotation: physics.Vec3{X: -0.32}, TracksPlayer: true, Offset: chaseOffset},
	Cinematic:   {Position: physics.Vec3{X: -25, Y: 12, Z: 22}, LookAt: physics.Vec3{Z: -20}, HasFixedLookAt: true},
	FirstPerson: {Position: headOffset, TracksPlayer: true, Offset: headOffset},
}

// preset returns the preset data for a view.
func preset(v ID) Preset {
	return presets[v]
}

// targetPose computes the pose a transition should blend toward. Tracking
// views anchor on the player's position at selection time; fixed views aim
// at their look-at point.
func targetPose(v ID, playerPos physics.Vec3) Pose {
	p := preset(v)
	pos := p.Position
	if p.TracksPlayer {
		pos = playerPos.Add(p.Offset)
	}
	rot := p.Rotation
	if p.HasFixedLookAt {
		rot = rotationToward(p.LookAt.Sub(pos))
	}
	return Pose{Position: pos, Rotation: rot}
}
