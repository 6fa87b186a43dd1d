// Package input turns a raw terminal byte stream into per-frame intents.
//
// Terminals deliver key presses as bytes with no release events, so held
// keys are modeled with a hold window: a key counts as held while its last
// press is recent enough. This also lets the game detect simultaneous keys
// (e.g. moving diagonally while firing).
package input

import (
	"bufio"
	"time"
)

// keyHoldDuration is how long a key is considered "held" after its last press.
const keyHoldDuration = 30 * time.Millisecond

// Intents is the input surface the simulation consumes each frame.
// Directional intents are mutually exclusive per axis: if both keys of an
// axis are down, the most recent press wins.
type Intents struct {
	Left  bool
	Right bool
	Up    bool
	Down  bool
	Fire  bool
	Start bool // Enter: begin a session or restart after game over
	Quit  bool
	View  int // Requested view 1..6, or 0 when no view key was pressed
}

// keyState tracks the last time each key was pressed.
type keyState struct {
	quit    time.Time
	left    time.Time
	right   time.Time
	up      time.Time
	down    time.Time
	fire    time.Time
	start   time.Time
	view    time.Time
	viewVal int
}

// Stream delivers input bytes via a channel and tracks key state so held
// keys and key combinations survive across frames.
type Stream struct {
	ch    chan byte
	state keyState
}

// StartStream spawns a goroutine that reads from r and feeds the stream.
// The channel closes when the reader returns an error (disconnect).
func StartStream(r *bufio.Reader) *Stream {
	s := &Stream{
		ch: make(chan byte, 128),
	}
	go func() {
		for {
			b, err := r.ReadByte()
			if err != nil {
				close(s.ch)
				return
			}
			s.ch <- b
		}
	}()
	return s
}

// Reset clears all key state, e.g. when switching screens so a held key
// does not leak into the next phase.
func (s *Stream) Reset() {
	s.state = keyState{}
}

// ReadIntents drains all pending bytes (non-blocking), updates key state and
// returns the intents for this frame.
func (s *Stream) ReadIntents() Intents {
	now := time.Now()
	var buf []byte

	for {
		select {
		case b, ok := <-s.ch:
			if !ok {
				goto parse
			}
			buf = append(buf, b)
		default:
			goto parse
		}
	}

parse:
	for i := 0; i < len(buf); i++ {
		b := buf[i]

		// CSI sequences for arrow keys: ESC [ <code>
		if b == '\x1b' && i+2 < len(buf) && buf[i+1] == '[' {
			switch buf[i+2] {
			case 'A':
				s.state.up = now
				i += 2
				continue
			case 'B':
				s.state.down = now
				i += 2
				continue
			case 'C':
				s.state.right = now
				i += 2
				continue
			case 'D':
				s.state.left = now
				i += 2
				continue
			}
		}

		s.applyByte(b, now)
	}

	held := func(t time.Time) bool { return now.Sub(t) < keyHoldDuration }

	in := Intents{
		Quit:  held(s.state.quit),
		Fire:  held(s.state.fire),
		Start: held(s.state.start),
	}

	// Per-axis exclusivity: the most recent press wins.
	if held(s.state.left) || held(s.state.right) {
		if s.state.left.After(s.state.right) {
			in.Left = true
		} else {
			in.Right = true
		}
	}
	if held(s.state.up) || held(s.state.down) {
		if s.state.up.After(s.state.down) {
			in.Up = true
		} else {
			in.Down = true
		}
	}

	if held(s.state.view) {
		in.View = s.state.viewVal
	}

	return in
}

// applyByte updates key timestamps for a single input byte.
func (s *Stream) applyByte(b byte, now time.Time) {
	switch b {
	case 'q', 'Q':
		s.state.quit = now
	case 'a', 'A':
		s.state.left = now
	case 'd', 'D':
		s.state.right = now
	case 'w', 'W':
		s.state.up = now
	case 's', 'S':
		s.state.down = now
	case ' ':
		s.state.fire = now
	case '\n', '\r':
		s.state.start = now
	case '1', '2', '3', '4', '5', '6':
		s.state.view = now
		s.state.viewVal = int(b - '0')
	}
}
