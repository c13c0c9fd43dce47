package windfarm

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// EbitenSurface is a Surface that draws onto an *ebiten.Image. Fills are
// fan-triangulated meshes over a shared white pixel; strokes use the vector
// package.
type EbitenSurface struct {
	dst   *ebiten.Image
	verts []ebiten.Vertex
	inds  []uint16
}

var _ Surface = (*EbitenSurface)(nil)

// NewEbitenSurface returns a surface drawing to dst.
func NewEbitenSurface(dst *ebiten.Image) *EbitenSurface {
	return &EbitenSurface{dst: dst}
}

// SetTarget retargets the surface, typically to the screen passed to Draw.
func (s *EbitenSurface) SetTarget(dst *ebiten.Image) { s.dst = dst }

// Clear fills the target with c.
func (s *EbitenSurface) Clear(c Color) {
	s.dst.Fill(c.RGBA())
}

// Fill draws a filled polygon.
func (s *EbitenSurface) Fill(points []Vec2, c Color) {
	if len(points) < 3 {
		return
	}
	s.verts, s.inds = buildPolygonFan(s.verts[:0], s.inds[:0], points, c)

	var triOp ebiten.DrawTrianglesOptions
	triOp.AntiAlias = true
	s.dst.DrawTriangles(s.verts, s.inds, ensureWhitePixel(), &triOp)
}

// Stroke draws each segment of the polyline with vector.StrokeLine.
func (s *EbitenSurface) Stroke(points []Vec2, closed bool, width float64, c Color) {
	if len(points) < 2 {
		return
	}
	clr := c.RGBA()
	w := float32(width)
	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, clr, true)
	}
	if closed && len(points) > 2 {
		a, b := points[len(points)-1], points[0]
		vector.StrokeLine(s.dst, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), w, clr, true)
	}
}

// Text draws str in the HUD font, or with the white debug font if the HUD
// font could not be loaded.
func (s *EbitenSurface) Text(x, y float64, str string, c Color) {
	if f := defaultHUDFont(); f != nil {
		f.draw(s.dst, str, x, y, c)
		return
	}
	ebitenutil.DebugPrintAt(s.dst, str, int(x), int(y))
}

// buildPolygonFan appends the vertices and indices of a fan-triangulated
// polygon to verts and inds. N vertices, 3*(N-2) indices. Vertex colors are
// premultiplied.
func buildPolygonFan(verts []ebiten.Vertex, inds []uint16, points []Vec2, c Color) ([]ebiten.Vertex, []uint16) {
	n := len(points)
	if n < 3 {
		return verts, inds
	}
	cr := float32(c.R * c.A)
	cg := float32(c.G * c.A)
	cb := float32(c.B * c.A)
	ca := float32(c.A)

	for _, p := range points {
		verts = append(verts, ebiten.Vertex{
			DstX:   float32(p.X),
			DstY:   float32(p.Y),
			SrcX:   0.5,
			SrcY:   0.5,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		})
	}

	// Fan triangulation: vertex 0 is the hub.
	for i := 0; i < n-2; i++ {
		inds = append(inds, 0, uint16(i+1), uint16(i+2))
	}
	return verts, inds
}

// --- White pixel singleton (no sync.Once; ebiten calls Draw from one goroutine) ---

var whitePixelImage *ebiten.Image

// ensureWhitePixel returns a lazily-initialized 1x1 white pixel image.
func ensureWhitePixel() *ebiten.Image {
	if whitePixelImage == nil {
		whitePixelImage = ebiten.NewImage(1, 1)
		whitePixelImage.Fill(color.RGBA{R: 255, G: 255, B: 255, A: 255})
	}
	return whitePixelImage
}
