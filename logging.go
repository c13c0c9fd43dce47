package windfarm

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LogConfig selects the zap encoder, level and destination.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Format is console or json.
	Format string `yaml:"format"`
	// Output is stderr, stdout, or a file path (appended to).
	Output string `yaml:"output"`
}

func (c LogConfig) validate() error {
	if _, err := zapcore.ParseLevel(c.levelOrDefault()); err != nil {
		return fmt.Errorf("%w: log level %q", ErrInvalidConfig, c.Level)
	}
	switch c.Format {
	case "", "console", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Format)
	}
	return nil
}

func (c LogConfig) levelOrDefault() string {
	if c.Level == "" {
		return "info"
	}
	return c.Level
}

// NewLogger builds a zap logger from c. Debug forces the debug level.
func NewLogger(c LogConfig, debug bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.levelOrDefault())
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	if debug {
		level = zapcore.DebugLevel
	}

	var encoder zapcore.Encoder
	if c.Format == "json" {
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	} else {
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	}

	var sink zapcore.WriteSyncer
	switch c.Output {
	case "", "stderr":
		sink = zapcore.Lock(os.Stderr)
	case "stdout":
		sink = zapcore.Lock(os.Stdout)
	default:
		f, err := os.OpenFile(c.Output, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		sink = zapcore.Lock(f)
	}

	core := zapcore.NewCore(encoder, sink, zap.NewAtomicLevelAt(level))
	return zap.New(core).Named("windfarm"), nil
}
