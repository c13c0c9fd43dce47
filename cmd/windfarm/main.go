// Command windfarm runs the windmill scene in a window, in a terminal, or
// headless to a PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/phanxgames/windfarm"
	"github.com/phanxgames/windfarm/snapshot"
	"github.com/phanxgames/windfarm/sound"
	"github.com/phanxgames/windfarm/term"
)

type options struct {
	configPath string
	scriptPath string
	snapshot   string
	ticks      int
	seed       uint64
	term       bool
	debug      bool
	sound      bool
}

func parseFlags() options {
	var o options
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.StringVar(&o.configPath, "config", "", "YAML config file")
	flag.StringVar(&o.scriptPath, "script", "", "YAML input script to replay")
	flag.StringVar(&o.snapshot, "snapshot", "", "render headless and write the final frame to this PNG")
	flag.IntVar(&o.ticks, "ticks", 120, "ticks to simulate before -snapshot")
	flag.Uint64Var(&o.seed, "seed", 0, "random seed (0 uses the config or the clock)")
	flag.BoolVar(&o.term, "term", false, "draw in the terminal instead of a window")
	flag.BoolVar(&o.debug, "debug", false, "debug logging and frame stats")
	flag.BoolVar(&o.sound, "sound", false, "chime on key actions")
	flag.Parse()
	return o
}

func main() {
	if err := run(parseFlags()); err != nil {
		fmt.Fprintln(os.Stderr, "windfarm:", err)
		os.Exit(1)
	}
}

func run(o options) error {
	cfg := windfarm.DefaultConfig()
	if o.configPath != "" {
		var err error
		if cfg, err = windfarm.LoadConfigFile(o.configPath); err != nil {
			return err
		}
	}
	if o.seed != 0 {
		cfg.Seed = o.seed
	}
	cfg.Debug = cfg.Debug || o.debug
	cfg.Sound = cfg.Sound || o.sound
	// The terminal front-end owns the screen, so logs go to a file.
	if o.term && (cfg.Log.Output == "" || cfg.Log.Output == "stderr" || cfg.Log.Output == "stdout") {
		cfg.Log.Output = "windfarm.log"
	}

	log, err := windfarm.NewLogger(cfg.Log, cfg.Debug)
	if err != nil {
		return err
	}
	defer log.Sync()

	opts := []windfarm.Option{windfarm.WithLogger(log)}
	if o.scriptPath != "" {
		data, err := os.ReadFile(o.scriptPath)
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		r, err := windfarm.LoadScript(data)
		if err != nil {
			return err
		}
		opts = append(opts, windfarm.WithScript(r))
	}
	if cfg.Sound && o.snapshot == "" {
		p, err := sound.New(log, 0.5)
		if err != nil {
			log.Warn("sound disabled", zap.Error(err))
		} else {
			defer p.Close()
			opts = append(opts, windfarm.WithChimer(p))
		}
	}

	app := windfarm.NewApp(cfg, opts...)

	switch {
	case o.snapshot != "":
		return runHeadless(app, o.snapshot, o.ticks)
	case o.term:
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		return term.Run(ctx, app)
	default:
		printBanner(os.Stdout, cfg)
		return windfarm.Run(app)
	}
}

// runHeadless ticks the app without a display. Screenshots queued by a
// script are rendered as they come; the final frame goes to out.
func runHeadless(app *windfarm.App, out string, ticks int) error {
	cfg := app.Config()
	log := app.Logger()
	for i := 0; i < ticks && !app.Done(); i++ {
		app.Tick()
		labels := app.TakeScreenshots()
		if len(labels) == 0 {
			continue
		}
		s, err := snapshot.Render(app, cfg.Window.Width, cfg.Window.Height)
		if err != nil {
			return err
		}
		paths, err := windfarm.SaveScreenshots(cfg.ScreenshotDir, labels, s.Image(), time.Now())
		s.Close()
		for _, p := range paths {
			log.Info("screenshot saved", zap.String("path", p))
		}
		if err != nil {
			return err
		}
	}

	s, err := snapshot.Render(app, cfg.Window.Width, cfg.Window.Height)
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.SavePNG(out); err != nil {
		return err
	}
	log.Info("snapshot written", zap.String("path", out), zap.Uint64("ticks", app.Ticks()))
	return nil
}

func printBanner(w io.Writer, cfg windfarm.Config) {
	fmt.Fprintf(w, "=== %s ===\n", cfg.Window.Title)
	fmt.Fprintln(w, "Controls:")
	for _, l := range bannerControls {
		fmt.Fprintln(w, "  "+l)
	}
}

var bannerControls = []string{
	"1-5   : select windmill",
	"+/-   : increase/decrease speed",
	"D/N   : day/night mode",
	"C     : add cloud",
	"W     : add windmill",
	"S     : toggle sun/moon animation",
	"P     : pause/resume",
	"R     : reset scene",
	"Q/ESC : quit",
}
