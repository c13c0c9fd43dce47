package windfarm

import (
	"math/rand/v2"
	"time"
)

// Scene exclusively owns every entity in a single arena. The arena order is
// the draw order. Kind views (windmills, clouds, the celestial body) hold
// arena indices only, never separate references.
type Scene struct {
	entities  []Entity
	windmills []int
	clouds    []int
	celestial int // arena index, -1 when unset

	nextWindmillID int
	rng            *rand.Rand
}

// NewScene creates an empty scene. A nil rng is replaced by a time-seeded
// source.
func NewScene(rng *rand.Rand) *Scene {
	if rng == nil {
		seed := uint64(time.Now().UnixNano())
		rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return &Scene{celestial: -1, rng: rng}
}

// Rand returns the scene's random source.
func (s *Scene) Rand() *rand.Rand { return s.rng }

// AddWindmill constructs a windmill with the next id and appends it to the
// draw order. IDs increase monotonically for the lifetime of the Scene, even
// across Clear and RemoveWindmill.
func (s *Scene) AddWindmill(x, y float64, shape WindmillShape) *Windmill {
	s.nextWindmillID++
	w := newWindmill(s.nextWindmillID, x, y, shape)
	s.windmills = append(s.windmills, len(s.entities))
	s.entities = append(s.entities, w)
	return w
}

// AddCloud appends c to the draw order. Nil is ignored.
func (s *Scene) AddCloud(c *Cloud) {
	if c == nil {
		return
	}
	s.clouds = append(s.clouds, len(s.entities))
	s.entities = append(s.entities, c)
}

// SetCelestialBody installs b as the scene's single sun/moon. The first call
// appends it to the draw order; later calls replace the previous body in the
// same slot. Nil is ignored.
func (s *Scene) SetCelestialBody(b *CelestialBody) {
	if b == nil {
		return
	}
	if s.celestial >= 0 {
		s.entities[s.celestial] = b
		return
	}
	s.celestial = len(s.entities)
	s.entities = append(s.entities, b)
}

// RemoveWindmill drops the windmill with the given id. Reports whether it
// was found. The id is not handed out again.
func (s *Scene) RemoveWindmill(id int) bool {
	for _, idx := range s.windmills {
		if w := s.entities[idx].(*Windmill); w.id == id {
			s.removeAt(idx)
			return true
		}
	}
	return false
}

// removeAt deletes the arena slot idx and rebuilds the kind views.
func (s *Scene) removeAt(idx int) {
	copy(s.entities[idx:], s.entities[idx+1:])
	s.entities[len(s.entities)-1] = nil
	s.entities = s.entities[:len(s.entities)-1]
	s.reindex()
}

func (s *Scene) reindex() {
	s.windmills = s.windmills[:0]
	s.clouds = s.clouds[:0]
	s.celestial = -1
	for i, e := range s.entities {
		switch e.Kind() {
		case KindWindmill:
			s.windmills = append(s.windmills, i)
		case KindCloud:
			s.clouds = append(s.clouds, i)
		case KindCelestial:
			s.celestial = i
		}
	}
}

// Clear releases every entity and empties all views. The windmill id
// counter is not reset.
func (s *Scene) Clear() {
	clear(s.entities)
	s.entities = s.entities[:0]
	s.windmills = s.windmills[:0]
	s.clouds = s.clouds[:0]
	s.celestial = -1
}

// UpdateAll advances every entity by one tick under mode m.
func (s *Scene) UpdateAll(m Mode) {
	env := s.env(m)
	for _, e := range s.entities {
		e.Update(&env)
	}
}

// DrawAll draws every entity in insertion order under mode m.
func (s *Scene) DrawAll(c Canvas, m Mode) {
	env := s.env(m)
	for _, e := range s.entities {
		e.Draw(c, &env)
	}
}

func (s *Scene) env(m Mode) Env {
	env := Env{Mode: m, Rand: s.rng}
	if w, ok := s.Windmill(m.Selected); ok {
		env.SelectedID = w.id
	}
	return env
}

// Len returns the number of entities in the arena.
func (s *Scene) Len() int { return len(s.entities) }

// Entities returns the arena in draw order. The returned slice MUST NOT be
// mutated.
func (s *Scene) Entities() []Entity { return s.entities }

// WindmillCount returns the number of live windmills.
func (s *Scene) WindmillCount() int { return len(s.windmills) }

// Windmill returns the windmill at the 1-based index, or false when the
// index is out of range.
func (s *Scene) Windmill(index int) (*Windmill, bool) {
	if index < 1 || index > len(s.windmills) {
		return nil, false
	}
	return s.entities[s.windmills[index-1]].(*Windmill), true
}

// Windmills returns the windmills in insertion order.
func (s *Scene) Windmills() []*Windmill {
	out := make([]*Windmill, len(s.windmills))
	for i, idx := range s.windmills {
		out[i] = s.entities[idx].(*Windmill)
	}
	return out
}

// Clouds returns the clouds in insertion order.
func (s *Scene) Clouds() []*Cloud {
	out := make([]*Cloud, len(s.clouds))
	for i, idx := range s.clouds {
		out[i] = s.entities[idx].(*Cloud)
	}
	return out
}

// CelestialBody returns the current sun/moon, or nil.
func (s *Scene) CelestialBody() *CelestialBody {
	if s.celestial < 0 {
		return nil
	}
	return s.entities[s.celestial].(*CelestialBody)
}

// Populate appends the entities described by l in the order windmills,
// clouds, celestial body.
func (s *Scene) Populate(l Layout) {
	for _, w := range l.Windmills {
		s.AddWindmill(w.X, w.Y, w.Shape)
	}
	for _, c := range l.Clouds {
		s.AddCloud(NewCloud(c.X, c.Y, c.Speed, c.Size))
	}
	if b := l.Celestial; b != nil {
		s.SetCelestialBody(NewCelestialBody(b.X, b.Y, b.Radius, b.Color.toColor()))
	}
}
