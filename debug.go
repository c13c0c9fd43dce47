package windfarm

import (
	"time"

	"go.uber.org/zap"
)

// debugInterval is the number of ticks between debug stat lines.
const debugInterval = 60

// frameStats accumulates update and draw timings between debug lines.
type frameStats struct {
	update time.Duration
	draw   time.Duration
	ticks  int
	frames int
}

func (s *frameStats) reset() { *s = frameStats{} }

// debugLog emits averaged timings every debugInterval ticks when the App
// runs in debug mode.
func (a *App) debugLog() {
	if !a.cfg.Debug || a.stats.ticks < debugInterval {
		return
	}
	st := a.stats
	a.stats.reset()

	var avgDraw time.Duration
	if st.frames > 0 {
		avgDraw = st.draw / time.Duration(st.frames)
	}
	a.log.Debug("frame stats",
		zap.Uint64("tick", a.ticks),
		zap.Duration("update_avg", st.update/time.Duration(st.ticks)),
		zap.Duration("draw_avg", avgDraw),
		zap.Int("frames", st.frames),
		zap.Int("entities", a.scene.Len()),
		zap.Int("windmills", a.scene.WindmillCount()),
		zap.Int("clouds", len(a.scene.clouds)),
	)
}
