package windfarm

import "math"

const (
	// CelestialPhaseStep is the phase advance per tick, in degrees.
	CelestialPhaseStep = 0.3

	celestialRays     = 12
	celestialRayInner = 5.0
	celestialRayOuter = 15.0
)

// CelestialBody is the sun by day and the moon by night. Rays are only drawn
// in day mode.
//
// The phase advances every tick while celestial animation is on, but nothing
// reads it for drawing or placement yet.
type CelestialBody struct {
	body
	radius float64
	phase  float64
	color  Color
}

var _ Entity = (*CelestialBody)(nil)

// NewCelestialBody creates a body of the given radius and color at (x, y).
func NewCelestialBody(x, y, radius float64, color Color) *CelestialBody {
	return &CelestialBody{body: newBody(x, y), radius: radius, color: color}
}

// Kind returns KindCelestial.
func (b *CelestialBody) Kind() Kind { return KindCelestial }

// Radius returns the disc radius.
func (b *CelestialBody) Radius() float64 { return b.radius }

// Color returns the fill color.
func (b *CelestialBody) Color() Color { return b.color }

// Phase returns the current phase angle in [0, 360).
func (b *CelestialBody) Phase() float64 { return b.phase }

// Update advances the phase when animation is enabled.
func (b *CelestialBody) Update(env *Env) {
	if b.hidden || env.Paused || !env.AnimateCelestial {
		return
	}
	b.phase += CelestialPhaseStep
	if b.phase >= 360 {
		b.phase = 0
	}
}

// Draw renders the rays (day only) and the disc.
func (b *CelestialBody) Draw(c Canvas, env *Env) {
	if b.hidden {
		return
	}
	x, y, r := b.pos.X, b.pos.Y, b.radius
	c.SetColor(b.color)
	if env.Day {
		for i := 0; i < celestialRays; i++ {
			theta := float64(i) * (2 * math.Pi / celestialRays)
			sin, cos := math.Sincos(theta)
			c.Line(
				x+(r+celestialRayInner)*cos, y+(r+celestialRayInner)*sin,
				x+(r+celestialRayOuter)*cos, y+(r+celestialRayOuter)*sin,
			)
		}
	}
	c.FillCircle(x, y, r, DefaultCircleSegments)
}
