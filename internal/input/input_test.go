package input

import (
	"bufio"
	"bytes"
	"testing"
	"time"
)

// streamFrom builds a stream over a fixed byte sequence and waits for the
// reader goroutine to drain it.
func streamFrom(t *testing.T, data []byte) *Stream {
	t.Helper()
	s := StartStream(bufio.NewReader(bytes.NewReader(data)))
	deadline := time.Now().Add(time.Second)
	for len(s.ch) < len(data) && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	return s
}

func TestReadIntentsBasicKeys(t *testing.T) {
	s := streamFrom(t, []byte("a w \r"))
	in := s.ReadIntents()
	if !in.Left {
		t.Fatalf("a did not map to Left")
	}
	if !in.Up {
		t.Fatalf("w did not map to Up")
	}
	if !in.Fire {
		t.Fatalf("space did not map to Fire")
	}
	if !in.Start {
		t.Fatalf("enter did not map to Start")
	}
	if in.Quit {
		t.Fatalf("Quit set without q")
	}
}

func TestReadIntentsQuit(t *testing.T) {
	s := streamFrom(t, []byte("q"))
	if !s.ReadIntents().Quit {
		t.Fatalf("q did not map to Quit")
	}
}

func TestArrowKeys(t *testing.T) {
	s := streamFrom(t, []byte("\x1b[D\x1b[A"))
	in := s.ReadIntents()
	if !in.Left {
		t.Fatalf("left arrow not parsed")
	}
	if !in.Up {
		t.Fatalf("up arrow not parsed")
	}
}

func TestAxisExclusivityLastPressWins(t *testing.T) {
	// Both horizontal keys arrive in one frame; they carry the same
	// timestamp so the tie goes to Right, and either way only one intent
	// may be set per axis.
	s := streamFrom(t, []byte("ad"))
	in := s.ReadIntents()
	if in.Left && in.Right {
		t.Fatalf("both horizontal intents set")
	}
	if !in.Left && !in.Right {
		t.Fatalf("no horizontal intent set")
	}
}

func TestViewSelection(t *testing.T) {
	s := streamFrom(t, []byte("4"))
	in := s.ReadIntents()
	if in.View != 4 {
		t.Fatalf("View = %d, want 4", in.View)
	}
}

func TestViewZeroWhenNonePressed(t *testing.T) {
	s := streamFrom(t, []byte("a"))
	if v := s.ReadIntents().View; v != 0 {
		t.Fatalf("View = %d, want 0", v)
	}
}

func TestHoldWindowExpires(t *testing.T) {
	s := streamFrom(t, []byte("d"))
	if !s.ReadIntents().Right {
		t.Fatalf("d did not map to Right")
	}
	time.Sleep(keyHoldDuration + 10*time.Millisecond)
	if s.ReadIntents().Right {
		t.Fatalf("Right still held after the hold window expired")
	}
}

func TestResetClearsHeldKeys(t *testing.T) {
	s := streamFrom(t, []byte(" "))
	if !s.ReadIntents().Fire {
		t.Fatalf("space did not map to Fire")
	}
	s.Reset()
	if s.ReadIntents().Fire {
		t.Fatalf("Fire survives Reset")
	}
}

func TestUnknownBytesIgnored(t *testing.T) {
	s := streamFrom(t, []byte("zx~\x00"))
	in := s.ReadIntents()
	if in != (Intents{}) {
		t.Fatalf("unknown bytes produced intents: %+v", in)
	}
}
