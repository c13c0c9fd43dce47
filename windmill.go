package windfarm

import "math"

const (
	DefaultWindmillSpeed = 2.0
	WindmillSpeedStep    = 0.5
	MinWindmillSpeed     = 0.5
	MaxWindmillSpeed     = 15.0

	hubRadius       = 15.0
	boltRadius      = 8.0
	selectionRadius = 100.0
	selectionSides  = 50
	selectionWidth  = 3.0
	doorHalfWidth   = 8.0
	doorHeight      = 30.0
)

// WindmillShape holds the construction-time dimensions of a windmill.
type WindmillShape struct {
	TowerWidth  float64 `yaml:"tower_width"`
	TowerHeight float64 `yaml:"tower_height"`
	BladeLength float64 `yaml:"blade_length"`
	BladeCount  int     `yaml:"blade_count"`
}

// DefaultWindmillShape is used for windmills added at runtime.
var DefaultWindmillShape = WindmillShape{TowerWidth: 30, TowerHeight: 120, BladeLength: 80, BladeCount: 4}

// withDefaults fills zero fields from DefaultWindmillShape.
func (s WindmillShape) withDefaults() WindmillShape {
	if s.TowerWidth <= 0 {
		s.TowerWidth = DefaultWindmillShape.TowerWidth
	}
	if s.TowerHeight <= 0 {
		s.TowerHeight = DefaultWindmillShape.TowerHeight
	}
	if s.BladeLength <= 0 {
		s.BladeLength = DefaultWindmillShape.BladeLength
	}
	if s.BladeCount <= 0 {
		s.BladeCount = DefaultWindmillShape.BladeCount
	}
	return s
}

// Windmill is a tower with a blade assembly that rotates about the hub at
// (x, y+TowerHeight). The anchor (x, y) is the base of the tower.
type Windmill struct {
	body
	shape   WindmillShape
	angle   float64
	speed   float64
	stopped bool
	id      int
}

var _ Entity = (*Windmill)(nil)

// newWindmill is called by Scene.AddWindmill, which owns id assignment.
func newWindmill(id int, x, y float64, shape WindmillShape) *Windmill {
	return &Windmill{
		body:  newBody(x, y),
		shape: shape.withDefaults(),
		speed: DefaultWindmillSpeed,
		id:    id,
	}
}

// Kind returns KindWindmill.
func (w *Windmill) Kind() Kind { return KindWindmill }

// ID returns the scene-assigned identifier. IDs start at 1 and are never
// reused within a Scene.
func (w *Windmill) ID() int { return w.id }

// Shape returns the windmill's dimensions.
func (w *Windmill) Shape() WindmillShape { return w.shape }

// Angle returns the blade assembly rotation in degrees, in [0, 360).
func (w *Windmill) Angle() float64 { return w.angle }

// Speed returns the rotation per tick in degrees.
func (w *Windmill) Speed() float64 { return w.speed }

// Rotating reports whether the blades turn on Update.
func (w *Windmill) Rotating() bool { return !w.stopped }

// ToggleRotation starts or stops the blades.
func (w *Windmill) ToggleRotation() { w.stopped = !w.stopped }

// Hub returns the pivot point of the blade assembly.
func (w *Windmill) Hub() Vec2 {
	return Vec2{X: w.pos.X, Y: w.pos.Y + w.shape.TowerHeight}
}

// IncreaseSpeed raises the rotation speed by one step, saturating at
// MaxWindmillSpeed.
func (w *Windmill) IncreaseSpeed() {
	w.speed = math.Min(w.speed+WindmillSpeedStep, MaxWindmillSpeed)
}

// DecreaseSpeed lowers the rotation speed by one step, saturating at
// MinWindmillSpeed.
func (w *Windmill) DecreaseSpeed() {
	w.speed = math.Max(w.speed-WindmillSpeedStep, MinWindmillSpeed)
}

// Update turns the blades by the current speed.
func (w *Windmill) Update(env *Env) {
	if w.hidden || w.stopped || env.Paused {
		return
	}
	w.angle = math.Mod(w.angle+w.speed, 360)
	if w.angle < 0 {
		w.angle += 360
	}
}

// Draw renders the tower, blades, hub, and the selection ring when this
// windmill is the selected one.
func (w *Windmill) Draw(c Canvas, env *Env) {
	if w.hidden {
		return
	}
	w.drawTower(c)
	w.drawBlades(c)
	w.drawHub(c)
	if env.SelectedID != 0 && env.SelectedID == w.id {
		w.drawSelection(c)
	}
}

func (w *Windmill) drawTower(c Canvas) {
	x, y := w.pos.X, w.pos.Y
	tw, th := w.shape.TowerWidth, w.shape.TowerHeight

	c.SetColor(ColorTower)
	c.FillPolygon([]Vec2{
		{X: x - tw/2, Y: y},
		{X: x + tw/2, Y: y},
		{X: x + tw/3, Y: y + th},
		{X: x - tw/3, Y: y + th},
	})

	c.SetColor(ColorDoor)
	c.FillPolygon([]Vec2{
		{X: x - doorHalfWidth, Y: y},
		{X: x + doorHalfWidth, Y: y},
		{X: x + doorHalfWidth, Y: y + doorHeight},
		{X: x - doorHalfWidth, Y: y + doorHeight},
	})
}

func (w *Windmill) drawBlades(c Canvas) {
	hub := w.Hub()
	l := w.shape.BladeLength
	blade := []Vec2{
		{X: 0, Y: 0},
		{X: -5, Y: l * 0.3},
		{X: -3, Y: l},
		{X: 3, Y: l},
		{X: 5, Y: l * 0.3},
	}

	step := 360 / float64(w.shape.BladeCount)

	c.Push()
	c.Translate(hub.X, hub.Y)
	c.Rotate(w.angle)
	for i := 0; i < w.shape.BladeCount; i++ {
		c.Push()
		c.Rotate(float64(i) * step)
		c.SetColor(ColorBlade)
		c.FillPolygon(blade)
		c.SetColor(ColorBladeEdge)
		c.LineLoop(blade)
		c.Pop()
	}
	c.Pop()
}

func (w *Windmill) drawHub(c Canvas) {
	hub := w.Hub()
	c.SetColor(ColorHub)
	c.FillCircle(hub.X, hub.Y, hubRadius, DefaultCircleSegments)
	c.SetColor(ColorBolt)
	c.FillCircle(hub.X, hub.Y, boltRadius, DefaultCircleSegments)
}

func (w *Windmill) drawSelection(c Canvas) {
	hub := w.Hub()
	c.Push()
	c.SetColor(ColorSelection)
	c.SetLineWidth(selectionWidth)
	c.LineLoop(circlePoints(hub.X, hub.Y, selectionRadius, selectionSides))
	c.Pop()
}
