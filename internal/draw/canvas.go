// Package draw provides the low-level terminal output layer: a half-block
// pixel canvas scaled from logical coordinates, and a chunked ANSI writer
// tuned for SSH transport.
package draw

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// Point is a 2D canvas coordinate in logical space.
type Point struct {
	X, Y float64
}

// Block characters used by the renderer.
const (
	BlockFull      = '█'
	BlockUpperHalf = '▀'
	BlockLowerHalf = '▄'
)

// Canvas is a drawing buffer with 2x vertical resolution using half-block
// characters. Game code draws in a fixed logical resolution; the canvas
// scales to whatever terminal it is rendered into.
type Canvas struct {
	termWidth  int
	termHeight int
	subHeight  int // termHeight * 2
	pixels     []bool

	logicalW float64
	logicalH float64 // In sub-pixels
	scaleX   float64
	scaleY   float64

	renderBuf       strings.Builder
	intersectionBuf []float64
	pointBuf        []Point
}

// NewCanvas creates a canvas mapping the logical resolution onto the given
// terminal size.
func NewCanvas(termWidth, termHeight int, logicalW, logicalH float64) *Canvas {
	c := &Canvas{logicalW: logicalW, logicalH: logicalH}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize adapts the canvas to new terminal dimensions, keeping the logical
// coordinate space stable. Cheap when the size is unchanged.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth != c.termWidth || termHeight != c.termHeight {
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subHeight = termHeight * 2
		c.pixels = make([]bool, c.subHeight*termWidth)
	}
	c.scaleX = float64(c.termWidth) / c.logicalW
	c.scaleY = float64(c.subHeight) / c.logicalH
}

// Clear resets all pixels.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// LogicalWidth returns the logical horizontal resolution.
func (c *Canvas) LogicalWidth() float64 { return c.logicalW }

// LogicalHeight returns the logical vertical resolution (in sub-pixels).
func (c *Canvas) LogicalHeight() float64 { return c.logicalH }

// TerminalWidth returns the terminal column count.
func (c *Canvas) TerminalWidth() int { return c.termWidth }

// TerminalHeight returns the terminal row count.
func (c *Canvas) TerminalHeight() int { return c.termHeight }

func (c *Canvas) setPixel(x, y int) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subHeight {
		c.pixels[y*c.termWidth+x] = true
	}
}

// Set lights the pixel at a logical coordinate.
func (c *Canvas) Set(x, y float64) {
	c.setPixel(int(math.Round(x*c.scaleX)), int(math.Round(y*c.scaleY)))
}

// Line draws a line between two logical points (Bresenham in pixel space).
func (c *Canvas) Line(p1, p2 Point) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx, dy := abs(x2-x1), abs(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx - dy

	for {
		c.setPixel(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x1 += sx
		}
		if e2 < dx {
			err += dx
			y1 += sy
		}
	}
}

// Polygon draws a closed polygon, optionally filled with a scanline pass.
func (c *Canvas) Polygon(points []Point, filled bool) {
	if len(points) < 3 {
		return
	}
	if filled {
		c.fill(points)
	}
	for i := range points {
		c.Line(points[i], points[(i+1)%len(points)])
	}
}

// fill rasterizes the polygon interior scanline by scanline in pixel space.
func (c *Canvas) fill(points []Point) {
	minY, maxY := points[0].Y, points[0].Y
	for _, p := range points {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	yStart := int(math.Floor(minY * c.scaleY))
	yEnd := int(math.Ceil(maxY * c.scaleY))

	for y := yStart; y <= yEnd; y++ {
		scanY := (float64(y) + 0.5) / c.scaleY

		xs := c.intersectionBuf[:0]
		n := len(points)
		for i := 0; i < n; i++ {
			p1, p2 := points[i], points[(i+1)%n]
			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				xs = append(xs, (p1.X+t*(p2.X-p1.X))*c.scaleX)
			}
		}
		c.intersectionBuf = xs
		sort.Float64s(xs)

		for i := 0; i+1 < len(xs); i += 2 {
			for x := int(math.Ceil(xs[i])); x <= int(math.Floor(xs[i+1])); x++ {
				c.setPixel(x, y)
			}
		}
	}
}

// BorrowPoints returns a reusable point slice of length n, valid until the
// next call. Avoids per-frame allocations in shape drawing.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.pointBuf) < n {
		c.pointBuf = make([]Point, n)
	}
	return c.pointBuf[:n]
}

// Flush renders the canvas into the ChunkWriter using half-block characters.
// Empty cells are skipped; each run is addressed with a cursor move.
func (c *Canvas) Flush(cw *ChunkWriter) {
	c.renderBuf.Reset()
	for row := 0; row < c.termHeight; row++ {
		topOff := row * 2 * c.termWidth
		botOff := topOff + c.termWidth
		for col := 0; col < c.termWidth; col++ {
			top := c.pixels[topOff+col]
			bot := row*2+1 < c.subHeight && c.pixels[botOff+col]

			var ch rune
			switch {
			case top && bot:
				ch = BlockFull
			case top:
				ch = BlockUpperHalf
			case bot:
				ch = BlockLowerHalf
			default:
				continue
			}

			c.renderBuf.WriteString("\033[")
			c.renderBuf.WriteString(strconv.Itoa(row + 1))
			c.renderBuf.WriteByte(';')
			c.renderBuf.WriteString(strconv.Itoa(col + 1))
			c.renderBuf.WriteByte('H')
			c.renderBuf.WriteRune(ch)
		}
	}
	cw.WriteString(c.renderBuf.String())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
