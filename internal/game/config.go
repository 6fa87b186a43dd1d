package game

// Game tuning constants. All score-driven difficulty knobs live here.

// Ticks
const (
	TickRate = 60 // Simulation ticks per second
)

// Difficulty. The difficulty curve plateaus once the score reaches
// MaxDifficultyScore; see NumObstacles and SpawnDelay.
const (
	MaxDifficultyScore = 35
	MaxObstacles       = 5

	baseSpawnDelayMs  = 1000
	minSpawnDelayMs   = 300
	spawnDelaySlopeMs = 20
)

// World geometry. Obstacles spawn on a fixed plane at the spawn horizon and
// travel +z toward the player at z≈0.
const (
	SpawnHorizonZ  = -150.0
	ObstaclePassZ  = 15.0 // Past this z an unhit obstacle despawns
	ProjectileFarZ = -50.0

	spawnWindowX = 40.0 // Horizontal half-width of the spawn plane
	spawnWindowY = 20.0 // Vertical half-height of the spawn plane
)

// Obstacle parameters.
const (
	minObstacleSize = 1.0
	maxObstacleSize = 4.0

	baseObstacleSpeed  = 0.1
	obstacleSpeedSlope = 0.01
	obstacleSpeedScale = 2.0

	maxObstacleRotation = 0.05 // Radians per tick before difficulty scaling
)

// Stars
const (
	StarCount = 200
)

// Death / game over
const (
	// gameOverNotifyDelayMs is the dramatic pause between the game-over
	// signal and the UI being told to show the final screen.
	gameOverNotifyDelayMs = 1000
)
