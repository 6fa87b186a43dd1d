package game

import (
	"starlane/internal/input"
	"starlane/internal/object"
	"starlane/internal/physics"
	"starlane/internal/view"
)

// Tick advances the simulation one frame in fixed order: tasks, stars,
// player, obstacles, projectiles, camera, visuals. While the death animation
// runs, everything except the death-camera sub-routine is skipped.
func (s *GameState) Tick(in input.Intents) {
	s.tick++

	if s.DeathAnim {
		st := s.View.Update(s.Player)
		if st.DeathDone {
			s.DeathAnim = false
			s.GameOver = true
			s.Events.emitGameOver(s.Score)
			// The dramatic pause before the UI hears about it.
			s.Schedule(gameOverNotifyDelayMs, func() { s.UINotified = true })
		}
		s.pushVisuals()
		return
	}

	s.tasks.runDue(s.tick)

	if in.View > 0 {
		// Unknown or mid-transition requests are dropped by the machine.
		s.View.Select(view.ID(in.View - 1))
	}

	if s.GameOver {
		// Gameplay is halted permanently until reset; the camera stays live.
		st := s.View.Update(s.Player)
		if st.Committed {
			s.Events.emitViewChanged(st.View)
		}
		s.pushVisuals()
		return
	}

	for _, st := range s.Stars {
		st.Update(s.Rand)
	}

	s.Player.Update(object.UpdateContext{
		Intents:     in,
		Frustum:     s.View.BoundFrustum(),
		Projectiles: s,
	})

	s.updateObstacles()
	if s.DeathAnim {
		// A life-ending collision short-circuits the rest of this tick.
		s.pushVisuals()
		return
	}

	s.updateProjectiles()

	st := s.View.Update(s.Player)
	if st.Committed {
		s.Events.emitViewChanged(st.View)
	}

	s.pushVisuals()
}

// updateObstacles integrates each obstacle and resolves player collisions.
// Reverse iteration keeps removal safe mid-pass.
func (s *GameState) updateObstacles() {
	for i := len(s.Obstacles) - 1; i >= 0; i-- {
		o := s.Obstacles[i]
		o.Update()

		if o.T.Position.Z > ObstaclePassZ {
			// Slipped past the player unhit: despawn, no score, no effect.
			s.DestroyObstacle(i, false)
			continue
		}

		if physics.Intersects(&o.Hitbox, &s.Player.T) {
			if s.Player.Shield {
				// The shield absorbs the hit and is not consumed.
				s.DestroyObstacle(i, true)
				continue
			}
			s.startDeath(o)
			return
		}
	}
}

// updateProjectiles integrates each projectile and resolves obstacle hits.
func (s *GameState) updateProjectiles() {
	for i := len(s.Projectiles) - 1; i >= 0; i-- {
		p := s.Projectiles[i]
		p.Update()

		hit := false
		for j := len(s.Obstacles) - 1; j >= 0; j-- {
			if physics.Intersects(&p.T, &s.Obstacles[j].Hitbox) {
				s.DestroyObstacle(j, true)
				s.DestroyProjectile(i)
				s.Score++
				s.Events.emitScoreChanged(s.Score)
				hit = true
				break
			}
		}
		if hit {
			continue
		}

		if p.T.Position.Z < ProjectileFarZ {
			s.DestroyProjectile(i)
		}
	}
}

// startDeath enters the terminal sequence: freeze gameplay, slow the actors
// for dramatic effect and hand the camera to the death animation. Re-entry
// within one life is a no-op guarded by the view machine.
func (s *GameState) startDeath(killer *object.Obstacle) {
	if !s.View.StartDeath(s.Player.T.Position) {
		return
	}
	s.DeathAnim = true
	s.Player.T.Velocity = s.Player.T.Velocity.Scale(view.SlowMotionFactor)
	killer.SlowBy(view.SlowMotionFactor)
}

// AmbientTick animates the star backdrop and camera on non-gameplay screens.
func (s *GameState) AmbientTick() {
	s.tick++
	for _, st := range s.Stars {
		st.Update(s.Rand)
	}
	s.View.Update(s.Player)
	s.pushVisuals()
}
