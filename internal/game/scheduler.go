package game

import (
	"starlane/internal/object"
	"starlane/internal/physics"
)

// The spawn scheduler is a recurring scheduled task: each pass spawns a
// score-driven number of obstacles and re-arms itself after a score-driven
// delay. It stops exactly once GameOver is set and never resumes without an
// explicit Start after Reset.

// cappedScore clamps the score to the difficulty plateau.
func cappedScore(score int) int {
	if score > MaxDifficultyScore {
		return MaxDifficultyScore
	}
	return score
}

// NumObstacles returns how many obstacles one scheduling pass spawns.
// Non-decreasing in score; the wave size reaches MaxObstacles exactly at the
// difficulty plateau and holds there.
func NumObstacles(score int) int {
	c := cappedScore(score)
	if c >= MaxDifficultyScore {
		return MaxObstacles
	}
	return 1 + c/10
}

// SpawnDelay returns the delay in milliseconds until the next pass.
// Non-increasing in score, bounded below by minSpawnDelayMs.
func SpawnDelay(score int) int {
	d := baseSpawnDelayMs - cappedScore(score)*spawnDelaySlopeMs
	if d < minSpawnDelayMs {
		d = minSpawnDelayMs
	}
	return d
}

// ObstacleSpeed returns the per-tick forward speed at the given score.
func ObstacleSpeed(score int) float64 {
	return (baseObstacleSpeed + float64(cappedScore(score))*obstacleSpeedSlope) * obstacleSpeedScale
}

// armSpawner schedules the first spawn pass immediately-ish.
func (s *GameState) armSpawner() {
	s.Schedule(SpawnDelay(s.Score), s.spawnPass)
}

// spawnPass spawns one wave and reschedules itself unless the game is over.
func (s *GameState) spawnPass() {
	if s.GameOver {
		return
	}
	for i := 0; i < NumObstacles(s.Score); i++ {
		s.SpawnObstacle(s.randomObstacle())
	}
	s.Schedule(SpawnDelay(s.Score), s.spawnPass)
}

// randomObstacle rolls spawn parameters: an independent random offset within
// the spawn-plane window at the horizon, random size, and score-scaled speed
// and rotation.
func (s *GameState) randomObstacle() object.ObstacleParams {
	c := float64(cappedScore(s.Score))
	return object.ObstacleParams{
		Position: physics.Vec3{
			X: (s.Rand.Float64()*2 - 1) * spawnWindowX,
			Y: (s.Rand.Float64()*2 - 1) * spawnWindowY,
			Z: SpawnHorizonZ,
		},
		Size:          minObstacleSize + s.Rand.Float64()*(maxObstacleSize-minObstacleSize),
		Speed:         ObstacleSpeed(s.Score),
		RotationSpeed: (s.Rand.Float64()*2 - 1) * maxObstacleRotation * (1 + c/50),
		Axis: physics.Vec3{
			X: s.Rand.Float64()*2 - 1,
			Y: s.Rand.Float64()*2 - 1,
			Z: s.Rand.Float64()*2 - 1,
		},
	}
}
