package windfarm

const (
	// CloudWrapX is the horizontal bound past which a cloud re-enters from
	// the left at -CloudWrapX.
	CloudWrapX = 450.0

	DefaultCloudSpeed = 0.3
	DefaultCloudSize  = 25.0
)

// CloudBand is the vertical band clouds are placed in when they wrap.
var CloudBand = Range{Min: 150, Max: 280}

// Cloud drifts right at a constant speed and wraps around the screen.
type Cloud struct {
	body
	speed float64
	size  float64
}

var _ Entity = (*Cloud)(nil)

// NewCloud creates a cloud at (x, y). Non-positive size falls back to
// DefaultCloudSize.
func NewCloud(x, y, speed, size float64) *Cloud {
	if size <= 0 {
		size = DefaultCloudSize
	}
	return &Cloud{body: newBody(x, y), speed: speed, size: size}
}

// Kind returns KindCloud.
func (c *Cloud) Kind() Kind { return KindCloud }

// Speed returns the horizontal drift per tick.
func (c *Cloud) Speed() float64 { return c.speed }

// SetSpeed sets the horizontal drift per tick.
func (c *Cloud) SetSpeed(s float64) { c.speed = s }

// Size returns the radius of the central puff.
func (c *Cloud) Size() float64 { return c.size }

// Update drifts the cloud and wraps it with a fresh height once it passes
// CloudWrapX.
func (c *Cloud) Update(env *Env) {
	if c.hidden || env.Paused {
		return
	}
	c.pos.X += c.speed
	if c.pos.X > CloudWrapX {
		c.pos.X = -CloudWrapX
		c.pos.Y = uniform(env.Rand, CloudBand.Min, CloudBand.Max)
	}
}

// Draw renders five overlapping white puffs around the anchor.
func (c *Cloud) Draw(cv Canvas, _ *Env) {
	if c.hidden {
		return
	}
	x, y, s := c.pos.X, c.pos.Y, c.size
	cv.SetColor(ColorWhite)
	cv.FillCircle(x, y, s, DefaultCircleSegments)
	cv.FillCircle(x+s*0.8, y+s*0.3, s*0.9, DefaultCircleSegments)
	cv.FillCircle(x-s*0.8, y+s*0.3, s*0.7, DefaultCircleSegments)
	cv.FillCircle(x+s*0.4, y-s*0.2, s*0.6, DefaultCircleSegments)
	cv.FillCircle(x-s*0.4, y-s*0.2, s*0.6, DefaultCircleSegments)
}
