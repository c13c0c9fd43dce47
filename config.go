package windfarm

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config describes a windfarm run. The zero value is not usable; start from
// DefaultConfig.
type Config struct {
	Window WindowConfig `yaml:"window"`
	// TPS is the fixed tick rate. 60 matches a 16 ms timer.
	TPS int `yaml:"tps"`
	// Seed for the scene's random source. Zero seeds from the clock.
	Seed uint64 `yaml:"seed"`
	// SkyFade is the day/night crossfade duration in seconds. Zero switches
	// instantly.
	SkyFade float64   `yaml:"sky_fade"`
	Sound   bool      `yaml:"sound"`
	Debug   bool      `yaml:"debug"`
	Log     LogConfig `yaml:"log"`
	Layout  Layout    `yaml:"layout"`

	// ScreenshotDir receives PNGs queued with App.Screenshot.
	ScreenshotDir string `yaml:"screenshot_dir"`
}

// WindowConfig configures the window and the HUD.
type WindowConfig struct {
	Title   string `yaml:"title"`
	Width   int    `yaml:"width"`
	Height  int    `yaml:"height"`
	ShowFPS bool   `yaml:"show_fps"`
	HUD     bool   `yaml:"hud"`
}

// Layout is the initial scene population. It is reapplied on reset.
type Layout struct {
	Windmills []WindmillConfig `yaml:"windmills"`
	Clouds    []CloudConfig    `yaml:"clouds"`
	Celestial *CelestialConfig `yaml:"celestial"`
}

// WindmillConfig places one windmill.
type WindmillConfig struct {
	X     float64       `yaml:"x"`
	Y     float64       `yaml:"y"`
	Shape WindmillShape `yaml:",inline"`
}

// CloudConfig places one cloud.
type CloudConfig struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Speed float64 `yaml:"speed"`
	Size  float64 `yaml:"size"`
}

// CelestialConfig places the sun/moon.
type CelestialConfig struct {
	X      float64   `yaml:"x"`
	Y      float64   `yaml:"y"`
	Radius float64   `yaml:"radius"`
	Color  RGBConfig `yaml:"color"`
}

// RGBConfig is a color written as [r, g, b] with components in [0, 1].
type RGBConfig []float64

func (c RGBConfig) toColor() Color {
	if len(c) != 3 {
		return ColorSun
	}
	return RGB(c[0], c[1], c[2])
}

// DefaultLayout returns the classic three windmills, three clouds and sun.
func DefaultLayout() Layout {
	return Layout{
		Windmills: []WindmillConfig{
			{X: -250, Y: -200, Shape: WindmillShape{TowerWidth: 30, TowerHeight: 120, BladeLength: 80, BladeCount: 4}},
			{X: 100, Y: -220, Shape: WindmillShape{TowerWidth: 35, TowerHeight: 130, BladeLength: 90, BladeCount: 4}},
			{X: 350, Y: -210, Shape: WindmillShape{TowerWidth: 28, TowerHeight: 110, BladeLength: 75, BladeCount: 4}},
		},
		Clouds: []CloudConfig{
			{X: -300, Y: 220, Speed: 0.3, Size: 25},
			{X: 0, Y: 250, Speed: 0.25, Size: 30},
			{X: 250, Y: 200, Speed: 0.35, Size: 28},
		},
		Celestial: &CelestialConfig{X: 350, Y: 250, Radius: 30, Color: RGBConfig{1, 0.95, 0}},
	}
}

// DefaultConfig returns the settings of the classic demo.
func DefaultConfig() Config {
	return Config{
		Window: WindowConfig{
			Title:  "Enhanced Windmill Simulation",
			Width:  1000,
			Height: 700,
			HUD:    true,
		},
		TPS:     60,
		SkyFade: 0.6,
		Log:     LogConfig{Level: "info", Format: "console", Output: "stderr"},
		Layout:  DefaultLayout(),

		ScreenshotDir: "screenshots",
	}
}

// LoadConfig decodes YAML (or JSON) from r over DefaultConfig and validates
// the result. Unknown keys are rejected. Empty input yields the defaults.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfigFile reads and decodes the config file at path.
func LoadConfigFile(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	cfg, err := LoadConfig(f)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges and returns an error wrapping ErrInvalidConfig.
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.TPS < 1 || c.TPS > 240 {
		return fmt.Errorf("%w: tps %d not in [1, 240]", ErrInvalidConfig, c.TPS)
	}
	if c.SkyFade < 0 {
		return fmt.Errorf("%w: negative sky_fade %v", ErrInvalidConfig, c.SkyFade)
	}
	for i, w := range c.Layout.Windmills {
		if w.Shape.BladeCount < 0 || w.Shape.BladeCount > 64 {
			return fmt.Errorf("%w: windmill %d: blade_count %d not in [0, 64]", ErrInvalidConfig, i+1, w.Shape.BladeCount)
		}
	}
	for i, cl := range c.Layout.Clouds {
		if cl.Size < 0 {
			return fmt.Errorf("%w: cloud %d: negative size", ErrInvalidConfig, i+1)
		}
	}
	if b := c.Layout.Celestial; b != nil {
		if b.Radius <= 0 {
			return fmt.Errorf("%w: celestial radius %v", ErrInvalidConfig, b.Radius)
		}
		if len(b.Color) != 3 {
			return fmt.Errorf("%w: celestial color needs 3 components, got %d", ErrInvalidConfig, len(b.Color))
		}
		for _, v := range b.Color {
			if v < 0 || v > 1 {
				return fmt.Errorf("%w: celestial color component %v not in [0, 1]", ErrInvalidConfig, v)
			}
		}
	}
	return c.Log.validate()
}
