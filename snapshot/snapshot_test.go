package snapshot

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/phanxgames/windfarm"
)

func newApp(t *testing.T) *windfarm.App {
	t.Helper()
	cfg := windfarm.DefaultConfig()
	cfg.Seed = 7
	cfg.SkyFade = 0
	return windfarm.NewApp(cfg)
}

// pixelAt samples the image at the pixel under world point (x, y).
func pixelAt(img image.Image, vp *windfarm.Viewport, x, y float64) color.NRGBA {
	px, py := vp.ToScreen(x, y)
	return color.NRGBAModel.Convert(img.At(int(px), int(py))).(color.NRGBA)
}

func near(got color.NRGBA, want windfarm.Color) bool {
	w := want.RGBA()
	d := func(a, b uint8) int {
		if a > b {
			return int(a - b)
		}
		return int(b - a)
	}
	return d(got.R, w.R) <= 3 && d(got.G, w.G) <= 3 && d(got.B, w.B) <= 3
}

func TestRenderDayScene(t *testing.T) {
	app := newApp(t)
	s, err := Render(app, 1000, 700)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer s.Close()

	img := s.Image()
	if b := img.Bounds(); b.Dx() != 1000 || b.Dy() != 700 {
		t.Fatalf("bounds = %v, want 1000x700", b)
	}
	vp := app.Viewport()

	checks := []struct {
		name string
		x, y float64
		want windfarm.Color
	}{
		{"sky", -495, 345, windfarm.ColorDaySky},
		{"ground", -495, -345, windfarm.ColorDayGround},
		{"tower", -262, -190, windfarm.ColorTower},
		{"door", -250, -185, windfarm.ColorDoor},
		{"bolt", -250, -80, windfarm.ColorBolt},
		{"sun", 350, 250, windfarm.ColorSun},
	}
	for _, c := range checks {
		if got := pixelAt(img, vp, c.x, c.y); !near(got, c.want) {
			t.Errorf("%s at (%v, %v) = %v, want %v", c.name, c.x, c.y, got, c.want.RGBA())
		}
	}
}

func TestRenderNightScene(t *testing.T) {
	app := newApp(t)
	app.Keyboard('n')
	s, err := Render(app, 500, 350)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer s.Close()

	vp := app.Viewport()
	if got := pixelAt(s.Image(), vp, -490, 340); !near(got, windfarm.ColorNightSky) {
		t.Errorf("sky = %v, want %v", got, windfarm.ColorNightSky.RGBA())
	}
	if got := pixelAt(s.Image(), vp, -490, -340); !near(got, windfarm.ColorNightGrass) {
		t.Errorf("ground = %v, want %v", got, windfarm.ColorNightGrass.RGBA())
	}
}

func TestRenderBadSize(t *testing.T) {
	if _, err := Render(newApp(t), 0, 100); err == nil {
		t.Fatal("expected error for zero width")
	}
}

func TestSavePNG(t *testing.T) {
	s, err := Render(newApp(t), 200, 140)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	defer s.Close()

	path := filepath.Join(t.TempDir(), "frame.png")
	if err := s.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Size() == 0 {
		t.Error("empty PNG")
	}
}

func TestSurfaceIgnoresDegenerate(t *testing.T) {
	s := New(10, 10)
	defer s.Close()
	s.Fill([]windfarm.Vec2{{X: 1, Y: 1}, {X: 2, Y: 2}}, windfarm.ColorWhite)
	s.Stroke([]windfarm.Vec2{{X: 1, Y: 1}}, false, 1, windfarm.ColorWhite)
	if err := s.Err(); err != nil {
		t.Errorf("Err = %v, want nil", err)
	}
}
