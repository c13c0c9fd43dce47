package windfarm

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// game adapts an App to ebiten.Game.
type game struct {
	app     *App
	surface *EbitenSurface
	fps     *fpsOverlay
	chars   []rune
}

// Run opens a window sized from the App's config and runs the fixed-rate
// loop until the App requests quit or the window is closed.
func Run(app *App) error {
	cfg := app.Config()
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)

	g := &game{
		app:     app,
		surface: NewEbitenSurface(nil),
	}
	if cfg.Window.ShowFPS {
		g.fps = newFPSOverlay(cfg.TPS)
	}
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

// Update feeds typed characters to the App and advances one tick.
func (g *game) Update() error {
	g.chars = ebiten.AppendInputChars(g.chars[:0])
	for _, r := range g.chars {
		g.app.Keyboard(r)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		g.app.Keyboard(KeyEscape)
	}

	g.app.Tick()
	if g.fps != nil {
		g.fps.tick()
	}
	if g.app.Done() {
		return ebiten.Termination
	}
	return nil
}

// Draw paints the frame and flushes any queued screenshots.
func (g *game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.app.Display(g.surface)
	if g.fps != nil {
		g.fps.draw(screen)
	}

	labels := g.app.TakeScreenshots()
	if len(labels) == 0 {
		return
	}
	img := captureScreen(screen)
	paths, err := SaveScreenshots(g.app.Config().ScreenshotDir, labels, img, time.Now())
	for _, p := range paths {
		g.app.log.Info("screenshot saved", zap.String("path", p))
	}
	if err != nil {
		g.app.log.Warn("screenshot failed", zap.Error(err))
	}
}

// Layout keeps a 1:1 pixel mapping and reprojects the world onto it.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.app.Reshape(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
