package windfarm

import "math"

// DefaultCircleSegments is the tessellation used for filled discs.
const DefaultCircleSegments = 100

// Canvas is the immediate-mode vector drawing interface entities render
// into. Coordinates are world units; Rotate takes degrees counter-clockwise.
// Push and Pop save and restore the transform, color, and line width.
type Canvas interface {
	SetColor(c Color)
	SetLineWidth(w float64)
	Push()
	Pop()
	Translate(x, y float64)
	Rotate(deg float64)
	FillPolygon(points []Vec2)
	FillCircle(cx, cy, r float64, segments int)
	Line(x1, y1, x2, y2 float64)
	LineLoop(points []Vec2)
	Text(x, y float64, s string)
}

// Surface is the raster target a Painter submits to. All coordinates are in
// pixels with the origin at the top-left.
type Surface interface {
	// Clear fills the whole target with c.
	Clear(c Color)
	// Fill draws a filled polygon.
	Fill(points []Vec2, c Color)
	// Stroke draws a polyline of the given pixel width, closing it back to
	// the first point when closed is true.
	Stroke(points []Vec2, closed bool, width float64, c Color)
	// Text draws a single line of text with its top-left at (x, y).
	Text(x, y float64, s string, c Color)
}

type paintState struct {
	matrix    [6]float64
	color     Color
	lineWidth float64
}

// Painter implements Canvas on top of a Surface. Its base transform is the
// viewport projection, so entities draw in world units.
type Painter struct {
	surface Surface
	state   paintState
	stack   []paintState
	buf     []Vec2
}

var _ Canvas = (*Painter)(nil)

// NewPainter returns a Painter drawing to s through the projection of vp.
func NewPainter(s Surface, vp *Viewport) *Painter {
	return &Painter{
		surface: s,
		state: paintState{
			matrix:    vp.Matrix(),
			color:     ColorWhite,
			lineWidth: 1,
		},
		stack: make([]paintState, 0, 8),
	}
}

// Surface returns the underlying raster target.
func (p *Painter) Surface() Surface { return p.surface }

// Depth returns the number of saved states on the stack.
func (p *Painter) Depth() int { return len(p.stack) }

// SetColor sets the color used by subsequent fills, lines, and text.
func (p *Painter) SetColor(c Color) { p.state.color = c }

// SetLineWidth sets the pixel width of subsequent lines.
func (p *Painter) SetLineWidth(w float64) {
	if w <= 0 {
		w = 1
	}
	p.state.lineWidth = w
}

// Push saves the current state.
func (p *Painter) Push() {
	p.stack = append(p.stack, p.state)
}

// Pop restores the most recently pushed state. Unbalanced calls are ignored.
func (p *Painter) Pop() {
	n := len(p.stack)
	if n == 0 {
		return
	}
	p.state = p.stack[n-1]
	p.stack = p.stack[:n-1]
}

// Translate moves the origin by (x, y) in the current space.
func (p *Painter) Translate(x, y float64) {
	p.state.matrix = multiplyAffine(p.state.matrix, translateAffine(x, y))
}

// Rotate rotates the current space by deg degrees counter-clockwise.
func (p *Painter) Rotate(deg float64) {
	p.state.matrix = multiplyAffine(p.state.matrix, rotateAffine(deg))
}

// FillPolygon fills the polygon described by points. Fewer than three
// points draw nothing.
func (p *Painter) FillPolygon(points []Vec2) {
	if len(points) < 3 {
		return
	}
	p.surface.Fill(p.project(points), p.state.color)
}

// FillCircle fills a disc approximated by a regular polygon. segments below
// three fall back to DefaultCircleSegments.
func (p *Painter) FillCircle(cx, cy, r float64, segments int) {
	if r <= 0 {
		return
	}
	p.surface.Fill(p.project(circlePoints(cx, cy, r, segments)), p.state.color)
}

// Line draws a single segment.
func (p *Painter) Line(x1, y1, x2, y2 float64) {
	pts := p.project([]Vec2{{X: x1, Y: y1}, {X: x2, Y: y2}})
	p.surface.Stroke(pts, false, p.state.lineWidth, p.state.color)
}

// LineLoop strokes the closed outline through points.
func (p *Painter) LineLoop(points []Vec2) {
	if len(points) < 2 {
		return
	}
	p.surface.Stroke(p.project(points), true, p.state.lineWidth, p.state.color)
}

// Text draws s anchored at the world-space point (x, y). Text is never
// rotated or scaled.
func (p *Painter) Text(x, y float64, s string) {
	if s == "" {
		return
	}
	sx, sy := transformPoint(p.state.matrix, x, y)
	p.surface.Text(sx, sy, s, p.state.color)
}

// project maps points through the current matrix into a fresh slice. The
// returned slice is owned by the surface call and must not be retained.
func (p *Painter) project(points []Vec2) []Vec2 {
	if cap(p.buf) < len(points) {
		p.buf = make([]Vec2, len(points))
	}
	out := p.buf[:len(points)]
	m := p.state.matrix
	for i, pt := range points {
		out[i].X, out[i].Y = transformPoint(m, pt.X, pt.Y)
	}
	return out
}

// circlePoints returns the vertices of a regular polygon approximating a
// circle, starting at angle 0 and winding counter-clockwise.
func circlePoints(cx, cy, r float64, segments int) []Vec2 {
	if segments < 3 {
		segments = DefaultCircleSegments
	}
	pts := make([]Vec2, segments)
	for i := range pts {
		theta := 2 * math.Pi * float64(i) / float64(segments)
		sin, cos := math.Sincos(theta)
		pts[i] = Vec2{X: cx + r*cos, Y: cy + r*sin}
	}
	return pts
}
