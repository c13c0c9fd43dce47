package windfarm

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// fpsOverlay prints the measured FPS and TPS in the top-right corner. The
// text is refreshed every ~0.5 seconds of ticks.
type fpsOverlay struct {
	label string
	acc   int
	every int
}

func newFPSOverlay(tps int) *fpsOverlay {
	every := tps / 2
	if every < 1 {
		every = 1
	}
	return &fpsOverlay{every: every, acc: every}
}

// tick is called once per Update.
func (o *fpsOverlay) tick() {
	o.acc++
	if o.acc < o.every {
		return
	}
	o.acc = 0
	o.label = fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
}

func (o *fpsOverlay) draw(screen *ebiten.Image) {
	if o.label == "" {
		return
	}
	w := screen.Bounds().Dx()
	ebitenutil.DebugPrintAt(screen, o.label, w-100, 4)
}
