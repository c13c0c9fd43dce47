package windfarm

import "math/rand/v2"

// Mode is the simulation state mutated by keyboard input and read by every
// entity's Update and Draw.
type Mode struct {
	Day              bool
	Paused           bool
	AnimateCelestial bool
	// Selected is the 1-based index of the keyboard-controlled windmill.
	// Zero means nothing is selected.
	Selected int
}

// DefaultMode returns the start-up mode: day, running, celestial animation
// on, first windmill selected.
func DefaultMode() Mode {
	return Mode{Day: true, AnimateCelestial: true, Selected: 1}
}

// Env is the per-call simulation context a Scene threads through Update and
// Draw.
type Env struct {
	Mode
	// Rand is the scene's random source. Clouds draw from it when wrapping.
	Rand *rand.Rand
	// SelectedID is the id of the windmill at Mode.Selected, or 0.
	SelectedID int
}

// Entity is anything the scene updates once per tick and draws once per
// frame. The set of implementations is closed: *Cloud, *CelestialBody and
// *Windmill.
type Entity interface {
	Kind() Kind
	Position() Vec2
	SetPosition(x, y float64)
	Visible() bool
	SetVisible(v bool)
	// Update advances the entity by one tick. No-op when invisible or paused.
	Update(env *Env)
	// Draw renders the current state. It must not mutate the entity.
	Draw(c Canvas, env *Env)
}

// body holds the state shared by every entity.
type body struct {
	pos    Vec2
	hidden bool
}

func newBody(x, y float64) body {
	return body{pos: Vec2{X: x, Y: y}}
}

// Position returns the entity's anchor point in world units.
func (b *body) Position() Vec2 { return b.pos }

// SetPosition moves the entity's anchor point.
func (b *body) SetPosition(x, y float64) { b.pos = Vec2{X: x, Y: y} }

// Visible reports whether the entity is drawn and updated.
func (b *body) Visible() bool { return !b.hidden }

// SetVisible shows or hides the entity.
func (b *body) SetVisible(v bool) { b.hidden = !v }

// uniform draws from [lo, hi). A nil source falls back to the global one.
func uniform(r *rand.Rand, lo, hi float64) float64 {
	if r == nil {
		return lo + rand.Float64()*(hi-lo)
	}
	return lo + r.Float64()*(hi-lo)
}
