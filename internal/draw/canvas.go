package draw

import (
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
)

// cell is the pair of sub-pixels behind one terminal character.
type cell struct {
	top, bottom Ink
}

// staleCell never matches a real cell, so Render always repaints it.
var staleCell = cell{top: inkStale, bottom: inkStale}

// Canvas is a drawing buffer with 2x vertical resolution using half-block characters.
// Game code draws in logical coordinates; the canvas scales them to terminal pixels.
type Canvas struct {
	termWidth      int    // Actual terminal columns
	termHeight     int    // Actual terminal rows
	subPixelHeight int    // termHeight * 2
	pixels         []Ink  // Flat slice: [y * termWidth + x]
	shown          []cell // What the terminal shows per cell: [row * termWidth + col]

	logicalWidth  float64
	logicalHeight float64
	scaleX        float64 // termWidth / logicalWidth
	scaleY        float64 // (termHeight*2) / logicalHeight

	// 0-based terminal offsets for centering the render area.
	offsetCol int
	offsetRow int

	renderBuf       strings.Builder
	numBuf          [20]byte
	scaledBuf       []Point
	intersectionBuf []float64
	polygonBuf      []Point
}

// NewScaledCanvas creates a canvas that scales from logical coordinates to terminal pixels.
// logicalWidth/Height define the coordinate space used by game objects.
// termWidth/Height are the actual terminal dimensions.
func NewScaledCanvas(termWidth, termHeight int, logicalWidth, logicalHeight float64) *Canvas {
	c := &Canvas{
		logicalWidth:  logicalWidth,
		logicalHeight: logicalHeight,
	}
	c.Resize(termWidth, termHeight)
	return c
}

// Resize updates the canvas for new terminal dimensions while keeping logical size.
func (c *Canvas) Resize(termWidth, termHeight int) {
	if termWidth < 0 {
		termWidth = 0
	}
	if termHeight < 0 {
		termHeight = 0
	}
	subPixelHeight := termHeight * 2

	if termWidth != c.termWidth || termHeight != c.termHeight || c.pixels == nil {
		c.pixels = make([]Ink, subPixelHeight*termWidth)
		c.shown = make([]cell, termHeight*termWidth)
		c.termWidth = termWidth
		c.termHeight = termHeight
		c.subPixelHeight = subPixelHeight
	}

	c.scaleX = float64(termWidth) / c.logicalWidth
	c.scaleY = float64(subPixelHeight) / c.logicalHeight
}

// SetOffset sets the column and row offset for centering the canvas.
// Offsets are 0-based terminal positions: the canvas starts at (offsetCol+1, offsetRow+1).
func (c *Canvas) SetOffset(col, row int) {
	c.offsetCol = col
	c.offsetRow = row
}

// OffsetCol returns the column offset used for centering.
func (c *Canvas) OffsetCol() int {
	return c.offsetCol
}

// OffsetRow returns the row offset used for centering.
func (c *Canvas) OffsetRow() int {
	return c.offsetRow
}

// Clear resets all pixels in the canvas.
func (c *Canvas) Clear() {
	clear(c.pixels)
}

// setPixel sets a pixel at actual terminal coordinates (no scaling).
func (c *Canvas) setPixel(x, y int, ink Ink) {
	if x >= 0 && x < c.termWidth && y >= 0 && y < c.subPixelHeight {
		c.pixels[y*c.termWidth+x] = ink
	}
}

// at returns the ink of a pixel in terminal sub-pixel coordinates.
func (c *Canvas) at(x, y int) Ink {
	if x < 0 || x >= c.termWidth || y < 0 || y >= c.subPixelHeight {
		return InkNone
	}
	return c.pixels[y*c.termWidth+x]
}

// ForceRedraw tells the canvas the terminal was wiped, so every non-empty
// cell is sent on the next Render.
func (c *Canvas) ForceRedraw() {
	clear(c.shown)
}

// MarkTextDirty records that width cells starting at the 1-based canvas
// position (col, row) were overwritten by text, so Render repaints them.
func (c *Canvas) MarkTextDirty(col, row, width int) {
	if row < 1 || row > c.termHeight {
		return
	}
	start := max(col-1, 0)
	end := min(col-1+width, c.termWidth)
	base := (row - 1) * c.termWidth
	for x := start; x < end; x++ {
		c.shown[base+x] = staleCell
	}
}

// DrawLine draws a line on the canvas using Bresenham's algorithm.
// Coordinates are in logical space and get scaled to pixels.
func (c *Canvas) DrawLine(p1, p2 Point, ink Ink) {
	x1 := int(math.Round(p1.X * c.scaleX))
	y1 := int(math.Round(p1.Y * c.scaleY))
	x2 := int(math.Round(p2.X * c.scaleX))
	y2 := int(math.Round(p2.Y * c.scaleY))

	dx := abs(x2 - x1)
	dy := abs(y2 - y1)

	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}

	err := dx - dy

	for {
		c.setPixel(x1, y1, ink)

		if x1 == x2 && y1 == y2 {
			break
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

// DrawPolygon draws a polygon outline, filling the interior when filled is set.
func (c *Canvas) DrawPolygon(points []Point, filled bool, ink Ink) {
	if len(points) < 3 {
		return
	}

	if filled {
		c.fillPolygon(points, ink)
	}

	n := len(points)
	for i := 0; i < n; i++ {
		c.DrawLine(points[i], points[(i+1)%n], ink)
	}
}

// pixelEpsilon absorbs float error when scaled edges land on pixel boundaries.
const pixelEpsilon = 1e-9

// FillRect fills an axis-aligned rectangle given by its logical top-left corner and size.
// Rectangles smaller than a pixel still mark at least one pixel.
func (c *Canvas) FillRect(x, y, w, h float64, ink Ink) {
	if w <= 0 || h <= 0 {
		return
	}
	x0 := int(math.Floor(x*c.scaleX + pixelEpsilon))
	y0 := int(math.Floor(y*c.scaleY + pixelEpsilon))
	x1 := int(math.Ceil((x+w)*c.scaleX - pixelEpsilon))
	y1 := int(math.Ceil((y+h)*c.scaleY - pixelEpsilon))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}

	// Clip to the canvas before looping
	x0, x1 = max(x0, 0), min(x1, c.termWidth)
	y0, y1 = max(y0, 0), min(y1, c.subPixelHeight)
	for py := y0; py < y1; py++ {
		row := c.pixels[py*c.termWidth : (py+1)*c.termWidth]
		for px := x0; px < x1; px++ {
			row[px] = ink
		}
	}
}

// circleSegments is the polygon resolution used for circles.
const circleSegments = 24

// FillCircle fills a circle given its logical center and radius.
// The circle is approximated by a polygon so it survives non-uniform scaling.
func (c *Canvas) FillCircle(cx, cy, r float64, ink Ink) {
	if r <= 0 {
		return
	}
	points := c.BorrowPoints(circleSegments)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / circleSegments
		points[i] = Point{X: cx + r*math.Cos(angle), Y: cy + r*math.Sin(angle)}
	}
	c.DrawPolygon(points, true, ink)
}

// fillPolygon fills a polygon using scanline algorithm.
// Works in pixel space for proper scaling.
func (c *Canvas) fillPolygon(points []Point, ink Ink) {
	if cap(c.scaledBuf) < len(points) {
		c.scaledBuf = make([]Point, len(points))
	}
	scaled := c.scaledBuf[:len(points)]

	for i, p := range points {
		scaled[i] = Point{
			X: p.X * c.scaleX,
			Y: p.Y * c.scaleY,
		}
	}

	minY, maxY := scaled[0].Y, scaled[0].Y
	for _, p := range scaled {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}

	yStart := max(int(math.Floor(minY)), 0)
	yEnd := min(int(math.Ceil(maxY)), c.subPixelHeight-1)

	for y := yStart; y <= yEnd; y++ {
		scanY := float64(y) + 0.5

		intersections := c.intersectionBuf[:0]

		n := len(scaled)
		for i := 0; i < n; i++ {
			p1 := scaled[i]
			p2 := scaled[(i+1)%n]

			if (p1.Y <= scanY && p2.Y > scanY) || (p2.Y <= scanY && p1.Y > scanY) {
				t := (scanY - p1.Y) / (p2.Y - p1.Y)
				x := p1.X + t*(p2.X-p1.X)
				intersections = append(intersections, x)
			}
		}

		// Store back in case it grew
		c.intersectionBuf = intersections

		sort.Float64s(intersections)

		for i := 0; i+1 < len(intersections); i += 2 {
			xStart := int(math.Ceil(intersections[i]))
			xEnd := int(math.Floor(intersections[i+1]))
			for x := xStart; x <= xEnd; x++ {
				c.setPixel(x, y, ink)
			}
		}
	}
}

// maxChunkSize is the maximum bytes to write at once for optimal network flow.
// 1400 bytes stays under a typical MTU for smooth SSH/network transmission.
const maxChunkSize = 1400

// Render outputs the canvas to the writer using colored half-block characters.
// Only cells that differ from what the terminal already shows are written;
// call ForceRedraw after wiping the terminal.
func (c *Canvas) Render(w io.Writer) {
	c.renderBuf.Reset()
	c.renderBuf.Grow(c.termWidth * c.termHeight * 4)

	curFg, curBg := InkNone, InkNone
	for row := 0; row < c.termHeight; row++ {
		for col := 0; col < c.termWidth; col++ {
			cur := cell{top: c.at(col, row*2), bottom: c.at(col, row*2+1)}
			i := row*c.termWidth + col
			if c.shown[i] == cur {
				continue // Terminal already shows this cell
			}
			c.shown[i] = cur

			ch := ' '
			fg, bg := InkNone, InkNone
			switch {
			case cur.top == InkNone && cur.bottom == InkNone:
				// Blank out what was there before
			case cur.top == cur.bottom:
				ch, fg = BlockFull, cur.top
			case cur.bottom == InkNone:
				ch, fg = BlockUpperHalf, cur.top
			case cur.top == InkNone:
				ch, fg = BlockLowerHalf, cur.bottom
			default:
				ch, fg, bg = BlockUpperHalf, cur.top, cur.bottom
			}

			c.moveCursor(col+1+c.offsetCol, row+1+c.offsetRow)
			if fg != curFg {
				c.renderBuf.WriteString(Fg(fg))
				curFg = fg
			}
			if bg != curBg {
				c.renderBuf.WriteString(Bg(bg))
				curBg = bg
			}
			c.renderBuf.WriteRune(ch)
		}
	}
	if curFg != InkNone || curBg != InkNone {
		c.renderBuf.WriteString(ColorReset)
	}

	// Write output in chunks for optimal network flow
	data := c.renderBuf.String()
	for len(data) > 0 {
		chunk := data
		if len(chunk) > maxChunkSize {
			chunk = data[:maxChunkSize]
		}
		io.WriteString(w, chunk)
		data = data[len(chunk):]
	}
}

func (c *Canvas) moveCursor(col, row int) {
	c.renderBuf.WriteString("\033[")
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(row), 10))
	c.renderBuf.WriteByte(';')
	c.renderBuf.Write(strconv.AppendInt(c.numBuf[:0], int64(col), 10))
	c.renderBuf.WriteByte('H')
}

// RenderBorder draws a box border around the canvas area when the terminal
// exceeds the max render resolution on either axis.
func (c *Canvas) RenderBorder(cw *ChunkWriter) {
	hasH := c.offsetCol >= 1 // Room for left/right vertical bars
	hasV := c.offsetRow >= 1 // Room for top/bottom horizontal bars
	if !hasH && !hasV {
		return
	}

	// Border positions relative to the canvas origin; cw adds the offset.
	left, right := 0, c.termWidth+1
	top, bottom := 0, c.termHeight+1
	line := strings.Repeat("─", c.termWidth)

	if hasV {
		if hasH {
			cw.WriteAt(left, top, "┌"+line+"┐")
			cw.WriteAt(left, bottom, "└"+line+"┘")
		} else {
			cw.WriteAt(1, top, line)
			cw.WriteAt(1, bottom, line)
		}
	}

	if hasH {
		for row := 1; row <= c.termHeight; row++ {
			cw.WriteAt(left, row, "│")
			cw.WriteAt(right, row, "│")
		}
	}
}

// TerminalWidth returns the actual terminal column count.
func (c *Canvas) TerminalWidth() int {
	return c.termWidth
}

// TerminalHeight returns the actual terminal row count.
func (c *Canvas) TerminalHeight() int {
	return c.termHeight
}

// LogicalToTerminal converts logical coordinates to 1-based terminal position (col, row)
// relative to the canvas origin. Useful for placing text over canvas shapes.
func (c *Canvas) LogicalToTerminal(x, y float64) (col, row int) {
	px := int(math.Round(x * c.scaleX))
	py := int(math.Round(y * c.scaleY))
	return px + 1, py/2 + 1
}

// BorrowPoints returns a reusable slice of Points with the given length.
// The returned slice is only valid until the next call to BorrowPoints.
func (c *Canvas) BorrowPoints(n int) []Point {
	if cap(c.polygonBuf) < n {
		c.polygonBuf = make([]Point, n)
	}
	return c.polygonBuf[:n]
}
