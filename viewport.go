package windfarm

// DefaultWorld is the logical coordinate space the scene is authored in:
// x in [-500, 500], y in [-350, 350], Y up.
var DefaultWorld = Rect{X: -500, Y: -350, Width: 1000, Height: 700}

// Viewport maps the logical world rectangle orthographically onto a pixel
// target of Width x Height. Pixel space has its origin at the top-left with
// Y increasing downward; world space is Y up. The mapping stretches to fill
// the target, so the aspect ratio follows the window.
type Viewport struct {
	// World is the visible world-space rectangle.
	World Rect
	// Width and Height are the pixel dimensions of the render target.
	Width, Height int

	matrix    [6]float64
	invMatrix [6]float64
	dirty     bool
}

// NewViewport creates a viewport over the given world rectangle for a
// width x height target.
func NewViewport(world Rect, width, height int) *Viewport {
	return &Viewport{World: world, Width: width, Height: height, dirty: true}
}

// Reshape updates the pixel dimensions after a window resize. Non-positive
// sizes are ignored.
func (v *Viewport) Reshape(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	if width == v.Width && height == v.Height {
		return
	}
	v.Width = width
	v.Height = height
	v.dirty = true
}

// Matrix returns the world-to-pixel affine matrix.
func (v *Viewport) Matrix() [6]float64 {
	v.compute()
	return v.matrix
}

// ToScreen converts a world-space point to pixel coordinates.
func (v *Viewport) ToScreen(wx, wy float64) (float64, float64) {
	v.compute()
	return transformPoint(v.matrix, wx, wy)
}

// ToWorld converts a pixel coordinate to world space.
func (v *Viewport) ToWorld(sx, sy float64) (float64, float64) {
	v.compute()
	return transformPoint(v.invMatrix, sx, sy)
}

// compute recomputes the projection when the target size changed.
func (v *Viewport) compute() {
	if !v.dirty {
		return
	}
	w := v.World
	if w.Width == 0 || w.Height == 0 {
		v.matrix = identityTransform
		v.invMatrix = identityTransform
		v.dirty = false
		return
	}
	sx := float64(v.Width) / w.Width
	sy := float64(v.Height) / w.Height
	// Flip Y so the top of the world lands on pixel row 0.
	v.matrix = [6]float64{sx, 0, 0, -sy, -w.X * sx, (w.Y + w.Height) * sy}
	v.invMatrix = invertAffine(v.matrix)
	v.dirty = false
}
