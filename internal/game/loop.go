package game

import (
	"bufio"
	"io"
	"time"

	"starlane/internal/draw"
	"starlane/internal/input"
	"starlane/internal/render"
)

const targetFrameTime = time.Second / TickRate

// Logical render resolution. Game coordinates are projected into this space
// and the canvas scales it to the real terminal. 120x80 sub-pixels keeps the
// 1.5 aspect the projection assumes.
const (
	targetWidth  = 120
	targetHeight = 80
)

// Phase is the screen the session is showing.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseDead
)

// Options configures a session run.
type Options struct {
	Seed       int64             // 0 picks a time-based seed
	TermSize   draw.TermSizeFunc // nil uses the local stdout size
	OnGameOver func(finalScore int)
}

// Run drives one game session with the standard Input → Update → Draw cycle
// at a fixed 60 fps until the player quits or the reader closes.
func Run(r *bufio.Reader, w io.Writer, opts Options) error {
	if opts.TermSize == nil {
		opts.TermSize = draw.StdoutSize
	}
	if opts.Seed == 0 {
		opts.Seed = time.Now().UnixNano()
	}

	stream := input.StartStream(r)
	cw := draw.NewChunkWriter(w)

	termW, termH, err := opts.TermSize()
	if err != nil {
		return err
	}
	canvas := draw.NewCanvas(termW, termH, targetWidth, targetHeight)
	scene := render.NewScene(canvas)

	s := NewGameState(opts.Seed, scene)
	s.Events.ObstacleDestroyed = scene.Burst
	s.Events.GameOver = opts.OnGameOver

	draw.HideCursor(w)
	defer draw.ShowCursor(w)
	draw.ClearScreen(w)

	phase := PhaseStart
	for {
		frameStart := time.Now()

		// ===== INPUT PHASE =====
		in := stream.ReadIntents()
		if in.Quit {
			break
		}

		// ===== UPDATE PHASE =====
		termW, termH, err = opts.TermSize()
		if err != nil {
			return err
		}
		canvas.Resize(termW, termH)

		switch phase {
		case PhaseStart:
			s.AmbientTick()
			if in.Start {
				phase = startRun(s, stream)
			}
		case PhasePlaying:
			s.Tick(in)
			if s.UINotified {
				stream.Reset()
				phase = PhaseDead
			}
		case PhaseDead:
			// Gameplay is halted; the camera and backdrop stay live.
			s.Tick(in)
			if in.Start {
				phase = startRun(s, stream)
			}
		}

		// ===== DRAW PHASE =====
		draw.ClearScreen(cw)
		scene.Render(s.View.Camera(), cw)
		switch phase {
		case PhaseStart:
			render.DrawTitle(cw, termW, termH)
		case PhasePlaying:
			render.DrawHUD(cw, termW, render.HUD{
				Score:  s.Score,
				View:   s.View.Current().String(),
				Shield: s.Player.Shield,
				Rapid:  s.Player.RapidFire,
			})
		case PhaseDead:
			render.DrawGameOver(cw, termW, termH, s.Score)
		}
		if err := cw.Flush(); err != nil {
			return err
		}

		// ===== FRAME TIMING =====
		if elapsed := time.Since(frameStart); elapsed < targetFrameTime {
			time.Sleep(targetFrameTime - elapsed)
		}
	}

	draw.ClearScreen(w)
	return nil
}

// startRun resets the session and arms the spawner for a fresh game.
func startRun(s *GameState, stream *input.Stream) Phase {
	stream.Reset()
	s.Reset()
	s.Start()
	return PhasePlaying
}
