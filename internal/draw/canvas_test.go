package draw

import (
	"bytes"
	"strings"
	"testing"
)

func pixelAt(c *Canvas, x, y int) bool {
	return c.pixels[y*c.termWidth+x]
}

func TestSetScalesLogicalCoordinates(t *testing.T) {
	// 10x5 terminal over a 100x100 logical space: sub-pixel grid is 10x10.
	c := NewCanvas(10, 5, 100, 100)
	c.Set(50, 50)
	if !pixelAt(c, 5, 5) {
		t.Fatalf("logical center did not land on pixel (5,5)")
	}
}

func TestSetOutOfBoundsIgnored(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Set(-20, 50)
	c.Set(500, 50)
	c.Set(50, -20)
	c.Set(50, 500)
	for _, p := range c.pixels {
		if p {
			t.Fatalf("out-of-bounds set lit a pixel")
		}
	}
}

func TestClear(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Set(50, 50)
	c.Clear()
	for _, p := range c.pixels {
		if p {
			t.Fatalf("pixel survived Clear")
		}
	}
}

func TestResizeKeepsLogicalSpace(t *testing.T) {
	c := NewCanvas(10, 5, 100, 100)
	c.Resize(20, 10)
	if c.TerminalWidth() != 20 || c.TerminalHeight() != 10 {
		t.Fatalf("terminal size = %dx%d, want 20x10", c.TerminalWidth(), c.TerminalHeight())
	}
	c.Set(50, 50)
	if !pixelAt(c, 10, 10) {
		t.Fatalf("logical center did not rescale after resize")
	}
}

func TestLineLightsEndpoints(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)
	c.Line(Point{X: 0, Y: 0}, Point{X: 9, Y: 9})
	if !pixelAt(c, 0, 0) || !pixelAt(c, 9, 9) {
		t.Fatalf("line endpoints not set")
	}
}

func TestPolygonFillCoversInterior(t *testing.T) {
	c := NewCanvas(20, 10, 20, 20)
	c.Polygon([]Point{{2, 2}, {17, 2}, {17, 17}, {2, 17}}, true)
	if !pixelAt(c, 10, 10) {
		t.Fatalf("interior pixel not filled")
	}
	if pixelAt(c, 0, 0) {
		t.Fatalf("exterior pixel filled")
	}
}

func TestPolygonNeedsThreePoints(t *testing.T) {
	c := NewCanvas(10, 5, 10, 10)
	c.Polygon([]Point{{1, 1}, {5, 5}}, true)
	for _, p := range c.pixels {
		if p {
			t.Fatalf("degenerate polygon drew pixels")
		}
	}
}

func TestFlushEmitsHalfBlocks(t *testing.T) {
	c := NewCanvas(4, 2, 4, 4)
	// Top sub-row of row 0 only.
	c.setPixel(1, 0)
	// Both sub-rows of row 1 at column 2.
	c.setPixel(2, 2)
	c.setPixel(2, 3)

	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	c.Flush(cw)
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	s := out.String()
	if !strings.Contains(s, string(BlockUpperHalf)) {
		t.Fatalf("upper half block missing from output: %q", s)
	}
	if !strings.Contains(s, string(BlockFull)) {
		t.Fatalf("full block missing from output: %q", s)
	}
	if strings.Contains(s, string(BlockLowerHalf)) {
		t.Fatalf("unexpected lower half block in output: %q", s)
	}
}

func TestChunkWriterSplitsLargeFrames(t *testing.T) {
	var w countingWriter
	cw := NewChunkWriter(&w)
	cw.WriteString(strings.Repeat("x", maxChunkSize*3+17))
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if w.total != maxChunkSize*3+17 {
		t.Fatalf("total bytes = %d, want %d", w.total, maxChunkSize*3+17)
	}
	for i, n := range w.sizes {
		if n > 8192 {
			t.Fatalf("write %d was %d bytes, exceeding the buffer size", i, n)
		}
	}
}

func TestMoveCursorFormat(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	cw.MoveCursor(12, 3)
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := out.String(); got != "\033[3;12H" {
		t.Fatalf("cursor move = %q, want %q", got, "\033[3;12H")
	}
}

func TestWriteAt(t *testing.T) {
	var out bytes.Buffer
	cw := NewChunkWriter(&out)
	cw.WriteAt(5, 2, "hi")
	if err := cw.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}
	if got := out.String(); got != "\033[2;5Hhi" {
		t.Fatalf("WriteAt output = %q", got)
	}
}

// countingWriter records the size of each Write call.
type countingWriter struct {
	total int
	sizes []int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.total += len(p)
	w.sizes = append(w.sizes, len(p))
	return len(p), nil
}
