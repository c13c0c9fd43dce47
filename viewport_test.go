package windfarm

import "testing"

func TestViewportCorners(t *testing.T) {
	vp := NewViewport(DefaultWorld, 1000, 700)

	tests := []struct {
		wx, wy float64
		sx, sy float64
	}{
		{-500, 350, 0, 0},
		{500, 350, 1000, 0},
		{-500, -350, 0, 700},
		{0, 0, 500, 350},
	}
	for _, tt := range tests {
		sx, sy := vp.ToScreen(tt.wx, tt.wy)
		if !approxEqual(sx, tt.sx, 1e-9) || !approxEqual(sy, tt.sy, 1e-9) {
			t.Errorf("ToScreen(%v, %v) = (%v, %v), want (%v, %v)", tt.wx, tt.wy, sx, sy, tt.sx, tt.sy)
		}
	}
}

func TestViewportToWorldInverse(t *testing.T) {
	vp := NewViewport(DefaultWorld, 800, 600)
	wx, wy := vp.ToWorld(vp.ToScreen(123, -45))
	if !approxEqual(wx, 123, 1e-9) || !approxEqual(wy, -45, 1e-9) {
		t.Errorf("round trip = (%f, %f), want (123, -45)", wx, wy)
	}
}

func TestViewportReshape(t *testing.T) {
	vp := NewViewport(DefaultWorld, 1000, 700)
	vp.Reshape(500, 350)
	sx, sy := vp.ToScreen(500, -350)
	if !approxEqual(sx, 500, 1e-9) || !approxEqual(sy, 350, 1e-9) {
		t.Errorf("after reshape ToScreen = (%f, %f), want (500, 350)", sx, sy)
	}
}

func TestViewportReshapeIgnoresZero(t *testing.T) {
	vp := NewViewport(DefaultWorld, 1000, 700)
	vp.Reshape(0, 0)
	if vp.Width != 1000 || vp.Height != 700 {
		t.Errorf("size = %dx%d, want 1000x700", vp.Width, vp.Height)
	}
}
