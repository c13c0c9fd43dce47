package term

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/phanxgames/windfarm"
)

type cell struct {
	r     rune
	style tcell.Style
}

type fakeScreen struct {
	cells map[[2]int]cell
}

func (f *fakeScreen) SetContent(x, y int, primary rune, _ []rune, style tcell.Style) {
	if f.cells == nil {
		f.cells = make(map[[2]int]cell)
	}
	f.cells[[2]int{x, y}] = cell{primary, style}
}

var (
	red  = windfarm.RGB(1, 0, 0)
	blue = windfarm.RGB(0, 0, 1)
)

func TestBufferPixelSize(t *testing.T) {
	b := NewBuffer(80, 24)
	w, h := b.PixelSize()
	if w != 80 || h != 48 {
		t.Errorf("PixelSize = %dx%d, want 80x48", w, h)
	}
}

func TestBufferFillRect(t *testing.T) {
	b := NewBuffer(10, 5)
	b.Clear(blue)
	b.Fill([]windfarm.Vec2{{X: 2, Y: 2}, {X: 6, Y: 2}, {X: 6, Y: 6}, {X: 2, Y: 6}}, red)

	if got := b.At(3, 3); got != red {
		t.Errorf("inside = %v, want red", got)
	}
	if got := b.At(2, 2); got != red {
		t.Errorf("corner pixel = %v, want red", got)
	}
	if got := b.At(6, 6); got != blue {
		t.Errorf("pixel past edge = %v, want blue", got)
	}
	if got := b.At(0, 0); got != blue {
		t.Errorf("outside = %v, want blue", got)
	}
}

func TestBufferFillClipped(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Fill([]windfarm.Vec2{{X: -100, Y: -100}, {X: 100, Y: -100}, {X: 100, Y: 100}, {X: -100, Y: 100}}, red)
	w, h := b.PixelSize()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if b.At(x, y) != red {
				t.Fatalf("pixel (%d, %d) not filled", x, y)
			}
		}
	}
}

func TestBufferStroke(t *testing.T) {
	b := NewBuffer(10, 5)
	b.Stroke([]windfarm.Vec2{{X: 0.5, Y: 0.5}, {X: 9.5, Y: 0.5}}, false, 3, red)
	for x := 0; x < 10; x++ {
		if b.At(x, 0) != red {
			t.Errorf("pixel (%d, 0) not stroked", x)
		}
	}
	if b.At(5, 1) == red {
		t.Error("stroke leaked into row 1")
	}
}

func TestBufferStrokeClosed(t *testing.T) {
	b := NewBuffer(10, 5)
	tri := []windfarm.Vec2{{X: 1.5, Y: 1.5}, {X: 8.5, Y: 1.5}, {X: 1.5, Y: 8.5}}
	b.Stroke(tri, true, 1, red)
	// The closing edge runs down the left side.
	if b.At(1, 5) != red {
		t.Error("closing edge not drawn")
	}
}

func TestBufferFlushHalfBlocks(t *testing.T) {
	b := NewBuffer(2, 1)
	b.Clear(blue)
	b.Fill([]windfarm.Vec2{{X: 0, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 0, Y: 1}}, red)

	var s fakeScreen
	b.Flush(&s)
	if len(s.cells) != 2 {
		t.Fatalf("flushed %d cells, want 2", len(s.cells))
	}
	c := s.cells[[2]int{0, 0}]
	if c.r != upperHalf {
		t.Errorf("rune = %q, want %q", c.r, upperHalf)
	}
	want := tcell.StyleDefault.Foreground(tcellColor(red)).Background(tcellColor(blue))
	if c.style != want {
		t.Errorf("style = %v, want top red over bottom blue", c.style)
	}
}

func TestBufferFlushText(t *testing.T) {
	b := NewBuffer(5, 2)
	b.Clear(blue)
	b.Text(1, 2, "hello", windfarm.ColorWhite)

	var s fakeScreen
	b.Flush(&s)
	for i, want := range "hell" {
		c := s.cells[[2]int{1 + i, 1}]
		if c.r != want {
			t.Errorf("col %d = %q, want %q", 1+i, c.r, want)
		}
	}
	// Clipped at the right edge.
	if c := s.cells[[2]int{0, 1}]; c.r != upperHalf {
		t.Errorf("col 0 = %q, want half block", c.r)
	}
}

func TestBufferClearDropsText(t *testing.T) {
	b := NewBuffer(5, 2)
	b.Text(0, 0, "x", windfarm.ColorWhite)
	b.Clear(blue)

	var s fakeScreen
	b.Flush(&s)
	if c := s.cells[[2]int{0, 0}]; c.r != upperHalf {
		t.Errorf("text survived Clear: %q", c.r)
	}
}

func TestBufferDisplaysApp(t *testing.T) {
	cfg := windfarm.DefaultConfig()
	cfg.Seed = 3
	app := windfarm.NewApp(cfg)

	b := NewBuffer(100, 35)
	app.Reshape(b.PixelSize())
	app.Display(b)

	if got := b.At(1, 1); got != windfarm.ColorDaySky {
		t.Errorf("top-left = %v, want day sky", got)
	}
	_, h := b.PixelSize()
	if got := b.At(1, h-2); got != windfarm.ColorDayGround {
		t.Errorf("bottom-left = %v, want ground", got)
	}
}

func TestContainsConcave(t *testing.T) {
	// An L shape.
	l := []windfarm.Vec2{{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 4}, {X: 0, Y: 4}}
	if !contains(l, 0.5, 3) {
		t.Error("point in vertical arm reported outside")
	}
	if contains(l, 3, 3) {
		t.Error("point in notch reported inside")
	}
}
