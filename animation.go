package windfarm

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Sky holds the background colors and crossfades them when the day/night
// mode changes. Call Update(dt) every tick.
type Sky struct {
	// Air is the clear color behind everything.
	Air Color
	// Ground is the color of the grass band.
	Ground Color

	day      bool
	duration float32
	tween    *gween.Tween
	from     [2]Color
	to       [2]Color
}

// NewSky returns a sky resting in the given mode. fade is the crossfade
// duration in seconds; zero switches instantly.
func NewSky(day bool, fade float64) *Sky {
	s := &Sky{day: day, duration: float32(fade)}
	s.Air, s.Ground = skyColors(day)
	return s
}

func skyColors(day bool) (air, ground Color) {
	if day {
		return ColorDaySky, ColorDayGround
	}
	return ColorNightSky, ColorNightGrass
}

// Day reports the mode the sky is showing or fading towards.
func (s *Sky) Day() bool { return s.day }

// Fading reports whether a crossfade is in progress.
func (s *Sky) Fading() bool { return s.tween != nil }

// SetDay starts a crossfade towards the given mode. Setting the current
// mode again is a no-op. A fade already in progress restarts from the
// current colors.
func (s *Sky) SetDay(day bool) {
	if day == s.day {
		return
	}
	s.day = day
	air, ground := skyColors(day)
	if s.duration <= 0 {
		s.Air, s.Ground = air, ground
		s.tween = nil
		return
	}
	s.from = [2]Color{s.Air, s.Ground}
	s.to = [2]Color{air, ground}
	s.tween = gween.New(0, 1, s.duration, ease.InOutQuad)
}

// Update advances the crossfade by dt seconds.
func (s *Sky) Update(dt float32) {
	if s.tween == nil {
		return
	}
	t, done := s.tween.Update(dt)
	if done {
		s.Air, s.Ground = s.to[0], s.to[1]
		s.tween = nil
		return
	}
	s.Air = s.from[0].Lerp(s.to[0], float64(t))
	s.Ground = s.from[1].Lerp(s.to[1], float64(t))
}
