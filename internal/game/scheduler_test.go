package game

import "testing"

func TestNumObstaclesCurve(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{0, 1},
		{9, 1},
		{10, 2},
		{19, 2},
		{20, 3},
		{30, 4},
		{34, 4}, // Last step below the plateau
		{35, 5},
		{100, 5}, // Plateau: capped at MaxDifficultyScore
		{1000, 5},
	}
	for _, tc := range cases {
		if got := NumObstacles(tc.score); got != tc.want {
			t.Fatalf("NumObstacles(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestSpawnDelayCurve(t *testing.T) {
	cases := []struct {
		score int
		want  int
	}{
		{0, 1000},
		{10, 800},
		{20, 600},
		{35, 300},
		{100, 300}, // Floor
	}
	for _, tc := range cases {
		if got := SpawnDelay(tc.score); got != tc.want {
			t.Fatalf("SpawnDelay(%d) = %d, want %d", tc.score, got, tc.want)
		}
	}
}

func TestDifficultyMonotone(t *testing.T) {
	for s := 1; s <= 200; s++ {
		if NumObstacles(s) < NumObstacles(s-1) {
			t.Fatalf("NumObstacles decreased at score %d", s)
		}
		if SpawnDelay(s) > SpawnDelay(s-1) {
			t.Fatalf("SpawnDelay increased at score %d", s)
		}
		if ObstacleSpeed(s) < ObstacleSpeed(s-1) {
			t.Fatalf("ObstacleSpeed decreased at score %d", s)
		}
	}
}

func TestObstacleSpeedPlateaus(t *testing.T) {
	if ObstacleSpeed(35) != ObstacleSpeed(500) {
		t.Fatalf("speed should plateau past the difficulty cap: %f vs %f",
			ObstacleSpeed(35), ObstacleSpeed(500))
	}
}

func TestSpawnPassSpawnsWaveAndReschedules(t *testing.T) {
	s := NewGameState(1, nil)
	s.Start()
	if s.PendingTasks() != 1 {
		t.Fatalf("pending after Start = %d, want 1", s.PendingTasks())
	}

	// Run up to the first spawn pass.
	ticks := msToTicks(SpawnDelay(0))
	for i := uint64(0); i < ticks; i++ {
		s.Tick(emptyIntents())
	}
	if got := len(s.Obstacles); got != NumObstacles(0) {
		t.Fatalf("obstacles after first pass = %d, want %d", got, NumObstacles(0))
	}
	// The pass re-armed itself.
	if s.PendingTasks() != 1 {
		t.Fatalf("pending after first pass = %d, want 1", s.PendingTasks())
	}
}

func TestSpawnPassStopsOnGameOver(t *testing.T) {
	s := NewGameState(1, nil)
	s.GameOver = true
	s.spawnPass()
	if len(s.Obstacles) != 0 {
		t.Fatalf("spawn pass ran during game over")
	}
	if s.PendingTasks() != 0 {
		t.Fatalf("spawn pass rescheduled during game over")
	}
}

func TestRandomObstacleWithinSpawnWindow(t *testing.T) {
	s := NewGameState(42, nil)
	for i := 0; i < 100; i++ {
		p := s.randomObstacle()
		if p.Position.Z != SpawnHorizonZ {
			t.Fatalf("spawn z = %f, want %f", p.Position.Z, SpawnHorizonZ)
		}
		if p.Position.X < -spawnWindowX || p.Position.X > spawnWindowX {
			t.Fatalf("spawn x = %f outside window", p.Position.X)
		}
		if p.Position.Y < -spawnWindowY || p.Position.Y > spawnWindowY {
			t.Fatalf("spawn y = %f outside window", p.Position.Y)
		}
		if p.Size < minObstacleSize || p.Size > maxObstacleSize {
			t.Fatalf("spawn size = %f outside [%f,%f]", p.Size, minObstacleSize, maxObstacleSize)
		}
	}
}
