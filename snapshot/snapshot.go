// Package snapshot renders windfarm frames off screen with the gg software
// rasterizer. It needs no window or GPU and is used for PNG export and
// headless runs.
package snapshot

import (
	"fmt"
	"image"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/phanxgames/windfarm"
)

// Surface is a windfarm.Surface backed by a gg.Context.
type Surface struct {
	dc   *gg.Context
	face text.Face
	err  error
}

var _ windfarm.Surface = (*Surface)(nil)

// New returns a blank surface of the given pixel size.
func New(width, height int) *Surface {
	s := &Surface{dc: gg.NewContext(width, height)}
	if src := fontSource(); src != nil {
		s.face = src.Face(windfarm.HUDFontSize)
		s.dc.SetFont(s.face)
	}
	return s
}

var fontSource = sync.OnceValue(func() *text.FontSource {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil
	}
	return src
})

// Clear fills the whole surface with c.
func (s *Surface) Clear(c windfarm.Color) {
	s.dc.ClearWithColor(gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A})
}

// Fill fills the polygon with c.
func (s *Surface) Fill(points []windfarm.Vec2, c windfarm.Color) {
	if len(points) < 3 {
		return
	}
	s.path(points, true)
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.keep(s.dc.Fill())
}

// Stroke outlines the polyline with c.
func (s *Surface) Stroke(points []windfarm.Vec2, closed bool, width float64, c windfarm.Color) {
	if len(points) < 2 {
		return
	}
	s.path(points, closed)
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.SetLineWidth(width)
	s.keep(s.dc.Stroke())
}

// Text draws str with its top-left at (x, y). Without a font it is a no-op.
func (s *Surface) Text(x, y float64, str string, c windfarm.Color) {
	if s.face == nil {
		return
	}
	s.dc.SetRGBA(c.R, c.G, c.B, c.A)
	s.dc.DrawString(str, x, y+s.face.Metrics().Ascent)
}

func (s *Surface) path(points []windfarm.Vec2, closed bool) {
	s.dc.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		s.dc.LineTo(p.X, p.Y)
	}
	if closed {
		s.dc.ClosePath()
	}
}

func (s *Surface) keep(err error) {
	if err != nil && s.err == nil {
		s.err = err
	}
}

// Err returns the first rasterization error, if any.
func (s *Surface) Err() error { return s.err }

// Image returns the rendered pixels.
func (s *Surface) Image() image.Image { return s.dc.Image() }

// SavePNG writes the surface to path.
func (s *Surface) SavePNG(path string) error {
	if s.err != nil {
		return fmt.Errorf("snapshot: render: %w", s.err)
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("snapshot: save %s: %w", path, err)
	}
	return nil
}

// Close releases the context.
func (s *Surface) Close() error { return s.dc.Close() }

// Render reprojects app onto a width x height surface and displays one
// frame into it. The caller owns the returned surface.
func Render(app *windfarm.App, width, height int) (*Surface, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("snapshot: bad size %dx%d", width, height)
	}
	s := New(width, height)
	app.Reshape(width, height)
	app.Display(s)
	if s.err != nil {
		s.Close()
		return nil, fmt.Errorf("snapshot: render: %w", s.err)
	}
	return s, nil
}
