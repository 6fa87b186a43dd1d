// Package game owns the simulation: game state, the per-frame tick pipeline,
// the spawn scheduler and the frame loop. It mutates state and emits events;
// it never draws.
package game

import (
	"math/rand"

	"starlane/internal/object"
	"starlane/internal/physics"
	"starlane/internal/view"
)

// GameState is the single owner of all simulation state for one play
// session. Sub-systems are methods over this struct; nothing is global.
type GameState struct {
	Score      int
	GameOver   bool
	DeathAnim  bool
	UINotified bool // Set after the post-game-over dramatic pause

	Player      *object.Player
	Obstacles   []*object.Obstacle
	Projectiles []*object.Projectile
	Stars       []*object.Star

	View   *view.Machine
	Events Events
	Rand   *rand.Rand

	visuals object.VisualFactory
	tasks   taskQueue
	tick    uint64
}

// NewGameState creates a fresh session. A nil factory runs headless (tests).
func NewGameState(seed int64, visuals object.VisualFactory) *GameState {
	s := &GameState{
		Rand:    rand.New(rand.NewSource(seed)),
		View:    view.NewMachine(),
		visuals: visuals,
	}
	s.Reset()
	return s
}

// Reset restores the initial state from any point mid-game: cancel every
// pending task, drop all entities, clear flags, respawn the player and
// rebuild the star field. A stale spawn timer surviving reset is the bug
// class this guards against. Reset does not arm the spawner; Start does.
func (s *GameState) Reset() {
	s.tasks.cancelAll()
	s.Score = 0
	s.GameOver = false
	s.DeathAnim = false
	s.UINotified = false

	for _, o := range s.Obstacles {
		o.MarkDead()
	}
	s.Obstacles = s.Obstacles[:0]
	for _, p := range s.Projectiles {
		p.MarkDead()
	}
	s.Projectiles = s.Projectiles[:0]

	if s.Player != nil {
		s.Player.Visual.Detach()
	}
	s.Player = object.NewPlayer(s.visuals)

	for _, st := range s.Stars {
		st.Visual.Detach()
	}
	s.Stars = s.Stars[:0]
	for i := 0; i < StarCount; i++ {
		s.Stars = append(s.Stars, object.NewStar(s.Rand, s.visuals))
	}

	s.View.Reset()
}

// Start arms the spawn scheduler for a new run.
func (s *GameState) Start() {
	s.armSpawner()
}

// SpawnObstacle creates an obstacle and adds it to the live set.
func (s *GameState) SpawnObstacle(p object.ObstacleParams) *object.Obstacle {
	o := object.NewObstacle(p, s.visuals)
	s.Obstacles = append(s.Obstacles, o)
	return o
}

// SpawnProjectile creates a projectile at origin. Implements
// object.ProjectileSpawner so the player can fire during its update.
func (s *GameState) SpawnProjectile(origin physics.Vec3) *object.Projectile {
	p := object.NewProjectile(origin, s.visuals)
	s.Projectiles = append(s.Projectiles, p)
	return p
}

// DestroyObstacle removes the obstacle at index i. With effect, the
// presentation layer is told to play a burst at the obstacle's position.
// Destroying an already-dead obstacle is a no-op.
func (s *GameState) DestroyObstacle(i int, effect bool) {
	o := s.Obstacles[i]
	s.Obstacles = append(s.Obstacles[:i], s.Obstacles[i+1:]...)
	if !o.MarkDead() {
		return
	}
	if effect {
		s.Events.emitObstacleDestroyed(o.T.Position)
	}
}

// DestroyProjectile removes the projectile at index i. Idempotent per
// projectile.
func (s *GameState) DestroyProjectile(i int) {
	p := s.Projectiles[i]
	s.Projectiles = append(s.Projectiles[:i], s.Projectiles[i+1:]...)
	p.MarkDead()
}

// Schedule enqueues fn to run delayMs from now, in simulation time.
func (s *GameState) Schedule(delayMs int, fn func()) TaskHandle {
	return s.tasks.schedule(delayMs, s.tick, fn)
}

// CancelTask cancels a scheduled task; unknown handles are a no-op.
func (s *GameState) CancelTask(h TaskHandle) {
	s.tasks.cancel(h)
}

// PendingTasks returns the number of scheduled tasks not yet run.
func (s *GameState) PendingTasks() int {
	return s.tasks.pending()
}

// TickCount returns the current simulation tick.
func (s *GameState) TickCount() uint64 {
	return s.tick
}

// pushVisuals hands every live transform to the presentation layer.
func (s *GameState) pushVisuals() {
	s.Player.PushVisual()
	for _, o := range s.Obstacles {
		o.PushVisual()
	}
	for _, p := range s.Projectiles {
		p.PushVisual()
	}
	for _, st := range s.Stars {
		st.PushVisual()
	}
}
