package term

import (
	"image"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/windfarm"
)

// upperHalf paints a cell's top pixel in the foreground color and its
// bottom pixel in the background color.
const upperHalf = '▀'

// Buffer is a windfarm.Surface over a grid of terminal cells. Each cell
// holds two vertically stacked pixels, so a cols x rows terminal is a
// cols x 2*rows pixel target.
type Buffer struct {
	cols, rows int
	pix        []windfarm.Color
	text       []textRun
}

type textRun struct {
	col, row int
	s        string
	c        windfarm.Color
}

var _ windfarm.Surface = (*Buffer)(nil)

// NewBuffer returns a buffer for a cols x rows terminal.
func NewBuffer(cols, rows int) *Buffer {
	b := &Buffer{}
	b.Resize(cols, rows)
	return b
}

// Resize reallocates the pixel grid. Contents are lost.
func (b *Buffer) Resize(cols, rows int) {
	b.cols, b.rows = max(cols, 0), max(rows, 0)
	b.pix = make([]windfarm.Color, b.cols*b.rows*2)
	b.text = b.text[:0]
}

// PixelSize returns the pixel dimensions the viewport should project onto.
func (b *Buffer) PixelSize() (int, int) { return b.cols, b.rows * 2 }

// At returns the pixel at (x, y). Out-of-range reads return the zero Color.
func (b *Buffer) At(x, y int) windfarm.Color {
	w, h := b.PixelSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return windfarm.Color{}
	}
	return b.pix[y*w+x]
}

func (b *Buffer) set(x, y int, c windfarm.Color) {
	w, h := b.PixelSize()
	if x < 0 || y < 0 || x >= w || y >= h {
		return
	}
	b.pix[y*w+x] = c
}

// Clear fills every pixel with c and drops queued text.
func (b *Buffer) Clear(c windfarm.Color) {
	for i := range b.pix {
		b.pix[i] = c
	}
	b.text = b.text[:0]
}

// Fill paints every pixel whose center lies inside the polygon (even-odd
// rule).
func (b *Buffer) Fill(points []windfarm.Vec2, c windfarm.Color) {
	if len(points) < 3 {
		return
	}
	w, h := b.PixelSize()
	if w == 0 || h == 0 {
		return
	}
	minX, minY, maxX, maxY := bounds(points)
	x0, x1 := clampInt(int(math.Floor(minX)), 0, w-1), clampInt(int(math.Ceil(maxX)), 0, w-1)
	y0, y1 := clampInt(int(math.Floor(minY)), 0, h-1), clampInt(int(math.Ceil(maxY)), 0, h-1)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if contains(points, float64(x)+0.5, float64(y)+0.5) {
				b.pix[y*w+x] = c
			}
		}
	}
}

// Stroke draws one-pixel lines between consecutive points. Terminal
// pixels are coarse, so width is ignored.
func (b *Buffer) Stroke(points []windfarm.Vec2, closed bool, _ float64, c windfarm.Color) {
	if len(points) < 2 {
		return
	}
	for i := 0; i < len(points)-1; i++ {
		b.line(points[i], points[i+1], c)
	}
	if closed && len(points) > 2 {
		b.line(points[len(points)-1], points[0], c)
	}
}

// Text queues s to be written over the pixels starting at the cell under
// (x, y).
func (b *Buffer) Text(x, y float64, s string, c windfarm.Color) {
	b.text = append(b.text, textRun{col: int(x), row: int(y) / 2, s: s, c: c})
}

// line rasterizes a segment with a DDA walk.
func (b *Buffer) line(p, q windfarm.Vec2, c windfarm.Color) {
	dx, dy := q.X-p.X, q.Y-p.Y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		b.set(int(math.Floor(p.X)), int(math.Floor(p.Y)), c)
		return
	}
	sx, sy := dx/float64(steps), dy/float64(steps)
	x, y := p.X, p.Y
	for i := 0; i <= steps; i++ {
		b.set(int(math.Floor(x)), int(math.Floor(y)), c)
		x += sx
		y += sy
	}
}

// Image returns the pixel grid as an image, one image pixel per half cell.
func (b *Buffer) Image() *image.NRGBA {
	w, h := b.PixelSize()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, b.pix[y*w+x].RGBA())
		}
	}
	return img
}

// CellSetter is the part of tcell.Screen that Flush writes to.
type CellSetter interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Flush writes every cell to dst: half-block pixels first, then text runs
// on top. Text keeps the cell's top pixel as its background.
func (b *Buffer) Flush(dst CellSetter) {
	w, _ := b.PixelSize()
	for row := 0; row < b.rows; row++ {
		for col := 0; col < b.cols; col++ {
			top := b.pix[(2*row)*w+col]
			bottom := b.pix[(2*row+1)*w+col]
			st := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			dst.SetContent(col, row, upperHalf, nil, st)
		}
	}
	for _, t := range b.text {
		if t.row < 0 || t.row >= b.rows {
			continue
		}
		col := t.col
		for _, r := range t.s {
			if col >= b.cols {
				break
			}
			if col >= 0 {
				bg := b.pix[(2*t.row)*w+col]
				dst.SetContent(col, t.row, r, nil, tcell.StyleDefault.Foreground(tcellColor(t.c)).Background(tcellColor(bg)))
			}
			col++
		}
	}
}

func tcellColor(c windfarm.Color) tcell.Color {
	n := c.RGBA()
	return tcell.NewRGBColor(int32(n.R), int32(n.G), int32(n.B))
}

// contains reports whether (x, y) is inside the polygon by counting edge
// crossings of a ray towards +X.
func contains(points []windfarm.Vec2, x, y float64) bool {
	in := false
	n := len(points)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := points[i], points[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}

func bounds(points []windfarm.Vec2) (minX, minY, maxX, maxY float64) {
	minX, minY = points[0].X, points[0].Y
	maxX, maxY = minX, minY
	for _, p := range points[1:] {
		minX = math.Min(minX, p.X)
		maxX = math.Max(maxX, p.X)
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	return minX, minY, maxX, maxY
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
