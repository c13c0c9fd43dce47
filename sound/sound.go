// Package sound plays short synthesized chimes for key actions.
package sound

import (
	"fmt"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
	"go.uber.org/zap"

	"github.com/phanxgames/windfarm"
)

const (
	sampleRate    = beep.SampleRate(44100)
	chimeDuration = 90 * time.Millisecond
)

// Player mixes chimes onto the default audio device. It implements
// windfarm.Chimer.
type Player struct {
	mixer  *beep.Mixer
	volume float64
	log    *zap.Logger
}

var _ windfarm.Chimer = (*Player)(nil)

// New opens the speaker. volume is linear in (0, 1].
func New(log *zap.Logger, volume float64) (*Player, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := speaker.Init(sampleRate, sampleRate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("sound: init speaker: %w", err)
	}
	p := &Player{mixer: &beep.Mixer{}, volume: volume, log: log}
	speaker.Play(p.mixer)
	log.Debug("speaker ready", zap.Int("rate", int(sampleRate)))
	return p, nil
}

// Chime queues the tone for c and returns immediately.
func (p *Player) Chime(c windfarm.Cue) {
	s := newChime(c, p.volume)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the device.
func (p *Player) Close() {
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
}

// cueFrequency maps each cue to a note. Speed cues rise and fall a fifth
// around A5.
func cueFrequency(c windfarm.Cue) float64 {
	switch c {
	case windfarm.CueSelect:
		return 880
	case windfarm.CueSpeedUp:
		return 1318.5
	case windfarm.CueSpeedDown:
		return 587.3
	case windfarm.CueToggle:
		return 659.3
	case windfarm.CueAdd:
		return 1046.5
	case windfarm.CueReset:
		return 440
	default:
		return 880
	}
}

// newChime builds the finite, volume-scaled streamer for c.
func newChime(c windfarm.Cue, volume float64) beep.Streamer {
	n := sampleRate.N(chimeDuration)
	t := beep.Take(n, &tone{freq: cueFrequency(c), rate: sampleRate, decay: 1 / chimeDuration.Seconds() * 4})
	if volume <= 0 {
		return &effects.Volume{Streamer: t, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: t, Base: 2, Volume: math.Log2(volume)}
}

// tone is a sine with an exponential decay envelope.
type tone struct {
	freq  float64
	decay float64
	rate  beep.SampleRate
	pos   int
}

func (g *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(g.pos) / float64(g.rate)
		v := 0.3 * math.Exp(-t*g.decay) * math.Sin(2*math.Pi*g.freq*t)
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *tone) Err() error { return nil }
