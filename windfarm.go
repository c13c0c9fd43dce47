package windfarm

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGB returns an opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// Palette used by the scene. Values match the classic windmill demo.
var (
	ColorWhite      = RGB(1, 1, 1)
	ColorSun        = RGB(1, 0.95, 0)
	ColorDaySky     = RGB(0.53, 0.81, 0.92)
	ColorNightSky   = RGB(0.04, 0.04, 0.12)
	ColorDayGround  = RGB(0.13, 0.55, 0.13)
	ColorNightGrass = RGB(0.08, 0.23, 0.08)
	ColorTower      = RGB(0.55, 0.27, 0.07)
	ColorDoor       = RGB(0.3, 0.15, 0.05)
	ColorBlade      = RGB(0.95, 0.95, 0.90)
	ColorBladeEdge  = RGB(0.7, 0.7, 0.65)
	ColorHub        = RGB(0.3, 0.3, 0.3)
	ColorBolt       = RGB(0.2, 0.2, 0.2)
	ColorSelection  = RGB(1, 1, 0)
)

// RGBA converts c to a straight-alpha color.NRGBA, clamping each component.
func (c Color) RGBA() color.NRGBA {
	return color.NRGBA{
		R: unitToByte(c.R),
		G: unitToByte(c.G),
		B: unitToByte(c.B),
		A: unitToByte(c.A),
	}
}

// Lerp returns the linear interpolation between c and other at t in [0, 1].
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

func unitToByte(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Vec2 is a 2D vector used for positions and polygon vertices.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. In world space the origin is the
// bottom-left corner with Y increasing upward.
type Rect struct {
	X, Y, Width, Height float64
}

// Range is a general-purpose min/max range.
type Range struct {
	Min, Max float64
}

// Kind distinguishes the concrete entity variants held by a Scene.
type Kind uint8

const (
	KindCloud     Kind = iota // drifting cloud cluster
	KindCelestial             // sun or moon
	KindWindmill              // tower with rotating blades
)

func (k Kind) String() string {
	switch k {
	case KindCloud:
		return "cloud"
	case KindCelestial:
		return "celestial"
	case KindWindmill:
		return "windmill"
	default:
		return "unknown"
	}
}
