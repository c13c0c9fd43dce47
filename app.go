package windfarm

import (
	"fmt"
	"math/rand/v2"
	"time"
	"unicode"

	"go.uber.org/zap"
)

// KeyEscape is the rune delivered for the Escape key.
const KeyEscape rune = 27

// MaxKeySelect is the highest windmill index selectable from the keyboard.
const MaxKeySelect = 5

// Placement bands for windmills and clouds added at runtime.
var (
	SpawnWindmillX = Range{Min: -400, Max: 400}
	SpawnWindmillY = Range{Min: -300, Max: -180}
	SpawnCloudX    = Range{Min: -CloudWrapX, Max: CloudWrapX}
	SpawnCloudSpd  = Range{Min: 0.2, Max: 0.5}
)

// groundBand is the grass strip painted before the scene.
var groundBand = []Vec2{{X: -500, Y: -350}, {X: 500, Y: -350}, {X: 500, Y: -150}, {X: -500, Y: -150}}

// Cue identifies a keyboard action for audible feedback.
type Cue uint8

const (
	CueSelect    Cue = iota // windmill selected
	CueSpeedUp              // selected windmill sped up
	CueSpeedDown            // selected windmill slowed down
	CueToggle               // a mode flag changed
	CueAdd                  // an entity was added
	CueReset                // the scene was reset
)

// Chimer plays a short sound for a Cue. Implementations must not block.
type Chimer interface {
	Chime(c Cue)
}

// App is the application loop core. Front-ends call Tick at the configured
// rate, Display once per frame, Reshape on resize and Keyboard for every
// typed character. All calls must come from one goroutine.
type App struct {
	cfg    Config
	scene  *Scene
	mode   Mode
	sky    *Sky
	vp     *Viewport
	log    *zap.Logger
	chimer Chimer
	script *ScriptRunner

	keyQueue []rune
	shots    []string
	quit     bool
	ticks    uint64
	stats    frameStats
}

// Option configures an App.
type Option func(*App)

// WithLogger sets the logger. The default is a no-op logger.
func WithLogger(l *zap.Logger) Option {
	return func(a *App) { a.log = l }
}

// WithChimer enables audible feedback for key actions.
func WithChimer(c Chimer) Option {
	return func(a *App) { a.chimer = c }
}

// WithScript attaches a scripted input runner stepped once per Tick.
func WithScript(r *ScriptRunner) Option {
	return func(a *App) { a.script = r }
}

// NewApp builds the scene from cfg.Layout and returns a ready App. cfg is
// assumed valid.
func NewApp(cfg Config, opts ...Option) *App {
	var rng *rand.Rand
	if cfg.Seed != 0 {
		rng = rand.New(rand.NewPCG(cfg.Seed, cfg.Seed^0x9e3779b97f4a7c15))
	}
	a := &App{
		cfg:   cfg,
		scene: NewScene(rng),
		mode:  DefaultMode(),
		vp:    NewViewport(DefaultWorld, cfg.Window.Width, cfg.Window.Height),
		log:   zap.NewNop(),
	}
	a.sky = NewSky(a.mode.Day, cfg.SkyFade)
	for _, o := range opts {
		o(a)
	}
	a.scene.Populate(cfg.Layout)
	a.log.Info("scene initialized",
		zap.Int("windmills", a.scene.WindmillCount()),
		zap.Int("entities", a.scene.Len()))
	return a
}

// Config returns the configuration the App was built with.
func (a *App) Config() Config { return a.cfg }

// Scene returns the owned scene.
func (a *App) Scene() *Scene { return a.scene }

// Mode returns a copy of the current mode.
func (a *App) Mode() Mode { return a.mode }

// Sky returns the background state.
func (a *App) Sky() *Sky { return a.sky }

// Viewport returns the current projection.
func (a *App) Viewport() *Viewport { return a.vp }

// Logger returns the App's logger. Front-ends log through it.
func (a *App) Logger() *zap.Logger { return a.log }

// Ticks returns the number of Tick calls so far.
func (a *App) Ticks() uint64 { return a.ticks }

// Done reports whether quit was requested.
func (a *App) Done() bool { return a.quit }

// Tick runs one fixed step: scripted input, queued keys, entity update and
// sky fade.
func (a *App) Tick() {
	start := time.Now()
	if a.script != nil {
		a.script.step(a)
	}
	a.processInjectedKey()
	a.scene.UpdateAll(a.mode)
	a.sky.Update(1 / float32(a.cfg.TPS))
	a.ticks++
	a.stats.update += time.Since(start)
	a.stats.ticks++
	a.debugLog()
}

// Display paints one frame to s: sky, ground, entities, then the HUD.
func (a *App) Display(s Surface) {
	start := time.Now()
	s.Clear(a.sky.Air)
	p := NewPainter(s, a.vp)
	p.SetColor(a.sky.Ground)
	p.FillPolygon(groundBand)
	a.scene.DrawAll(p, a.mode)
	if a.cfg.Window.HUD {
		a.drawHUD(p)
	}
	a.stats.draw += time.Since(start)
	a.stats.frames++
}

// Reshape updates the projection for a new target size.
func (a *App) Reshape(width, height int) {
	a.vp.Reshape(width, height)
}

// Keyboard handles one typed character. Letters are case-insensitive.
// Unbound keys are ignored.
func (a *App) Keyboard(key rune) {
	switch unicode.ToLower(key) {
	case '1', '2', '3', '4', '5':
		a.Select(int(key - '0'))
	case '+', '=':
		a.adjustSpeed(true)
	case '-', '_':
		a.adjustSpeed(false)
	case 'd':
		a.setDay(true)
	case 'n':
		a.setDay(false)
	case 'c':
		a.AddRandomCloud()
	case 'w':
		a.AddRandomWindmill()
	case 's':
		a.mode.AnimateCelestial = !a.mode.AnimateCelestial
		a.log.Info("celestial animation", zap.Bool("on", a.mode.AnimateCelestial))
		a.chime(CueToggle)
	case 'p':
		a.mode.Paused = !a.mode.Paused
		a.log.Info("simulation", zap.Bool("paused", a.mode.Paused))
		a.chime(CueToggle)
	case 'r':
		a.Reset()
	case 'q', KeyEscape:
		a.log.Info("exiting")
		a.quit = true
	}
}

// Select makes the windmill at the 1-based index the keyboard target.
// Out-of-range indices leave the selection unchanged and return false.
func (a *App) Select(index int) bool {
	if index < 1 || index > a.scene.WindmillCount() {
		return false
	}
	a.mode.Selected = index
	a.log.Info("windmill selected", zap.Int("index", index))
	a.chime(CueSelect)
	return true
}

// Selected returns the selected windmill, if the selection is valid.
func (a *App) Selected() (*Windmill, bool) {
	return a.scene.Windmill(a.mode.Selected)
}

func (a *App) adjustSpeed(up bool) {
	w, ok := a.Selected()
	if !ok {
		return
	}
	if up {
		w.IncreaseSpeed()
		a.log.Info("speed increased", zap.Int("windmill", a.mode.Selected), zap.Float64("speed", w.Speed()))
		a.chime(CueSpeedUp)
		return
	}
	w.DecreaseSpeed()
	a.log.Info("speed decreased", zap.Int("windmill", a.mode.Selected), zap.Float64("speed", w.Speed()))
	a.chime(CueSpeedDown)
}

func (a *App) setDay(day bool) {
	a.mode.Day = day
	a.sky.SetDay(day)
	if day {
		a.log.Info("switched to day mode")
	} else {
		a.log.Info("switched to night mode")
	}
	a.chime(CueToggle)
}

// AddRandomCloud adds a cloud with a random position and speed.
func (a *App) AddRandomCloud() *Cloud {
	r := a.scene.Rand()
	c := NewCloud(
		uniform(r, SpawnCloudX.Min, SpawnCloudX.Max),
		uniform(r, CloudBand.Min, CloudBand.Max),
		uniform(r, SpawnCloudSpd.Min, SpawnCloudSpd.Max),
		DefaultCloudSize,
	)
	a.scene.AddCloud(c)
	a.log.Info("cloud added", zap.Int("clouds", len(a.scene.clouds)))
	a.chime(CueAdd)
	return c
}

// AddRandomWindmill adds a default-shaped windmill at a random position.
func (a *App) AddRandomWindmill() *Windmill {
	r := a.scene.Rand()
	w := a.scene.AddWindmill(
		uniform(r, SpawnWindmillX.Min, SpawnWindmillX.Max),
		uniform(r, SpawnWindmillY.Min, SpawnWindmillY.Max),
		DefaultWindmillShape,
	)
	a.log.Info("windmill added", zap.Int("id", w.ID()), zap.Int("windmills", a.scene.WindmillCount()))
	a.chime(CueAdd)
	return w
}

// Reset clears the scene, repopulates it from the configured layout and
// selects the first windmill.
func (a *App) Reset() {
	a.log.Info("resetting simulation")
	a.scene.Clear()
	a.scene.Populate(a.cfg.Layout)
	a.mode.Selected = 1
	a.chime(CueReset)
}

// Screenshot queues a labeled screenshot for the front-end to capture after
// the next Display.
func (a *App) Screenshot(label string) {
	a.shots = append(a.shots, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (a *App) TakeScreenshots() []string {
	if len(a.shots) == 0 {
		return nil
	}
	out := a.shots
	a.shots = nil
	return out
}

func (a *App) chime(c Cue) {
	if a.chimer != nil {
		a.chimer.Chime(c)
	}
}

// StatusLines returns the HUD text: title, mode, selected windmill (when
// valid) and the key help.
func (a *App) StatusLines() []string {
	lines := make([]string, 0, 4)
	lines = append(lines, a.cfg.Window.Title)

	mode := "Mode: NIGHT"
	if a.mode.Day {
		mode = "Mode: DAY"
	}
	if a.mode.Paused {
		mode += " (PAUSED)"
	}
	lines = append(lines, mode)

	if w, ok := a.Selected(); ok {
		status := "STOPPED"
		if w.Rotating() {
			status = "ROTATING"
		}
		lines = append(lines, fmt.Sprintf("Windmill #%d: Speed = %.1f | Status = %s", a.mode.Selected, w.Speed(), status))
	}
	lines = append(lines, controlsHelp)
	return lines
}

const controlsHelp = "Controls: 1-5 Select | +/- Speed | D Day | N Night | C Cloud | W Windmill | S Sun | P Pause | R Reset | Q Quit"

func (a *App) drawHUD(c Canvas) {
	lines := a.StatusLines()
	c.SetColor(ColorWhite)
	y := 330.0
	for _, l := range lines[:len(lines)-1] {
		c.Text(-480, y, l)
		y -= 22
	}
	c.Text(-480, -320, lines[len(lines)-1])
}
