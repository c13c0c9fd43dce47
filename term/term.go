// Package term runs a windfarm App inside a terminal. Each character cell
// shows two pixels with an upper half block, so any 24-bit color terminal
// can display the scene.
package term

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/phanxgames/windfarm"
)

// Run takes over the terminal and drives app until it quits, the context
// is cancelled, or the terminal closes. The terminal is restored on
// return.
func Run(ctx context.Context, app *windfarm.App) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("term: new screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("term: init screen: %w", err)
	}
	screen.HideCursor()

	log := app.Logger()
	events := make(chan tcell.Event, 64)
	done := make(chan struct{})

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(events)
		for {
			// PollEvent returns nil once the screen is finalized.
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			select {
			case events <- ev:
			case <-done:
				return nil
			}
		}
	})
	g.Go(func() error {
		defer screen.Fini()
		defer close(done)
		return loop(ctx, screen, app, events, log)
	})
	return g.Wait()
}

func loop(ctx context.Context, screen tcell.Screen, app *windfarm.App, events <-chan tcell.Event, log *zap.Logger) error {
	tps := app.Config().TPS
	ticker := time.NewTicker(time.Second / time.Duration(tps))
	defer ticker.Stop()

	buf := NewBuffer(screen.Size())
	app.Reshape(buf.PixelSize())
	log.Info("terminal started", zap.Int("cols", buf.cols), zap.Int("rows", buf.rows))

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				handleKey(app, ev)
			case *tcell.EventResize:
				buf.Resize(screen.Size())
				app.Reshape(buf.PixelSize())
				screen.Sync()
			}

		case <-ticker.C:
			app.Tick()
			if app.Done() {
				return nil
			}
			app.Display(buf)
			buf.Flush(screen)
			screen.Show()
			saveShots(app, buf, log)
		}
	}
}

// handleKey maps terminal keys onto App.Keyboard characters.
func handleKey(app *windfarm.App, ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape:
		app.Keyboard(windfarm.KeyEscape)
	case tcell.KeyCtrlC:
		app.Keyboard('q')
	case tcell.KeyRune:
		app.Keyboard(ev.Rune())
	}
}

func saveShots(app *windfarm.App, buf *Buffer, log *zap.Logger) {
	labels := app.TakeScreenshots()
	if len(labels) == 0 {
		return
	}
	paths, err := windfarm.SaveScreenshots(app.Config().ScreenshotDir, labels, buf.Image(), time.Now())
	for _, p := range paths {
		log.Info("screenshot saved", zap.String("path", p))
	}
	if err != nil {
		log.Warn("screenshot failed", zap.Error(err))
	}
}
