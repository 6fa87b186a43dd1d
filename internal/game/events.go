package game

import (
	"starlane/internal/physics"
	"starlane/internal/view"
)

// Events are the fire-and-forget callbacks the core emits for the
// presentation layer. Any field may be nil; emission is nil-safe.
type Events struct {
	ObstacleDestroyed func(pos physics.Vec3)
	ScoreChanged      func(score int)
	GameOver          func(finalScore int)
	ViewChanged       func(v view.ID)
}

func (e *Events) emitObstacleDestroyed(pos physics.Vec3) {
	if e.ObstacleDestroyed != nil {
		e.ObstacleDestroyed(pos)
	}
}

func (e *Events) emitScoreChanged(score int) {
	if e.ScoreChanged != nil {
		e.ScoreChanged(score)
	}
}

func (e *Events) emitGameOver(finalScore int) {
	if e.GameOver != nil {
		e.GameOver(finalScore)
	}
}

func (e *Events) emitViewChanged(v view.ID) {
	if e.ViewChanged != nil {
		e.ViewChanged(v)
	}
}
