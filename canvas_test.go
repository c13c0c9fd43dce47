package windfarm

import "testing"

type drawOp struct {
	kind   string // clear, fill, stroke, text
	points []Vec2
	closed bool
	width  float64
	color  Color
	text   string
}

// recordingSurface captures every surface call. Points are copied because
// Painter reuses its projection buffer.
type recordingSurface struct {
	ops []drawOp
}

func (r *recordingSurface) Clear(c Color) {
	r.ops = append(r.ops, drawOp{kind: "clear", color: c})
}

func (r *recordingSurface) Fill(points []Vec2, c Color) {
	r.ops = append(r.ops, drawOp{kind: "fill", points: append([]Vec2(nil), points...), color: c})
}

func (r *recordingSurface) Stroke(points []Vec2, closed bool, width float64, c Color) {
	r.ops = append(r.ops, drawOp{kind: "stroke", points: append([]Vec2(nil), points...), closed: closed, width: width, color: c})
}

func (r *recordingSurface) Text(x, y float64, s string, c Color) {
	r.ops = append(r.ops, drawOp{kind: "text", points: []Vec2{{X: x, Y: y}}, text: s, color: c})
}

func (r *recordingSurface) count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

// newTestPainter returns a painter whose projection is the identity: a
// 1000x700 world starting at (0, -700) is flipped onto a 1000x700 target,
// so world (x, y) lands on pixel (x, -y).
func newTestPainter() (*Painter, *recordingSurface) {
	rec := &recordingSurface{}
	vp := NewViewport(Rect{X: 0, Y: -700, Width: 1000, Height: 700}, 1000, 700)
	return NewPainter(rec, vp), rec
}

func TestPainterProjectsThroughViewport(t *testing.T) {
	rec := &recordingSurface{}
	p := NewPainter(rec, NewViewport(DefaultWorld, 1000, 700))
	p.FillPolygon([]Vec2{{X: -500, Y: 350}, {X: 500, Y: 350}, {X: 0, Y: -350}})

	if len(rec.ops) != 1 {
		t.Fatalf("ops = %d, want 1", len(rec.ops))
	}
	pts := rec.ops[0].points
	want := []Vec2{{X: 0, Y: 0}, {X: 1000, Y: 0}, {X: 500, Y: 700}}
	for i, w := range want {
		if !approxEqual(pts[i].X, w.X, 1e-9) || !approxEqual(pts[i].Y, w.Y, 1e-9) {
			t.Errorf("point %d = %v, want %v", i, pts[i], w)
		}
	}
}

func TestPainterTranslate(t *testing.T) {
	p, rec := newTestPainter()
	p.Translate(10, -20)
	p.FillPolygon([]Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0, Y: -1}})
	got := rec.ops[0].points[0]
	if !approxEqual(got.X, 10, 1e-9) || !approxEqual(got.Y, 20, 1e-9) {
		t.Errorf("origin = %v, want (10, 20)", got)
	}
}

func TestPainterRotateCounterClockwise(t *testing.T) {
	p, rec := newTestPainter()
	p.Translate(100, -100)
	p.Rotate(90)
	p.Line(0, 0, 10, 0)
	// +X rotated 90 degrees CCW points to +Y in world, which is up on screen.
	end := rec.ops[0].points[1]
	if !approxEqual(end.X, 100, 1e-9) || !approxEqual(end.Y, 90, 1e-9) {
		t.Errorf("end = %v, want (100, 90)", end)
	}
}

func TestPainterPushPopRestores(t *testing.T) {
	p, rec := newTestPainter()
	p.SetColor(ColorTower)
	p.Push()
	p.Translate(50, -50)
	p.SetColor(ColorBlade)
	p.SetLineWidth(4)
	if p.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", p.Depth())
	}
	p.Pop()
	if p.Depth() != 0 {
		t.Errorf("Depth after Pop = %d, want 0", p.Depth())
	}
	p.LineLoop([]Vec2{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}})

	op := rec.ops[0]
	if op.color != ColorTower {
		t.Errorf("color = %v, want tower color", op.color)
	}
	if op.width != 1 {
		t.Errorf("width = %v, want 1", op.width)
	}
	if !op.closed {
		t.Error("LineLoop should stroke a closed path")
	}
	if op.points[0] != (Vec2{}) {
		t.Errorf("origin = %v, want (0, 0)", op.points[0])
	}
}

func TestPainterUnbalancedPop(t *testing.T) {
	p, _ := newTestPainter()
	p.Pop() // must not panic
	if p.Depth() != 0 {
		t.Errorf("Depth = %d, want 0", p.Depth())
	}
}

func TestPainterFillCircleSegments(t *testing.T) {
	p, rec := newTestPainter()
	p.FillCircle(100, -100, 10, 12)
	if n := len(rec.ops[0].points); n != 12 {
		t.Errorf("points = %d, want 12", n)
	}
	p.FillCircle(100, -100, 10, 0)
	if n := len(rec.ops[1].points); n != DefaultCircleSegments {
		t.Errorf("default points = %d, want %d", n, DefaultCircleSegments)
	}
}

func TestPainterIgnoresDegenerate(t *testing.T) {
	p, rec := newTestPainter()
	p.FillPolygon([]Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}})
	p.Text(0, 0, "")
	if len(rec.ops) != 0 {
		t.Errorf("ops = %d, want 0", len(rec.ops))
	}
}

func TestCirclePointsRadius(t *testing.T) {
	pts := circlePoints(5, -3, 7, 20)
	for i, pt := range pts {
		dx, dy := pt.X-5, pt.Y+3
		if !approxEqual(dx*dx+dy*dy, 49, 1e-9) {
			t.Errorf("point %d off circle: %v", i, pt)
		}
	}
}
