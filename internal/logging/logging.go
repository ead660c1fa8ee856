// Package logging builds the zerolog loggers used by the command line tools.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	EnvLogLevel     = "FRAMEMAP_LOG_LEVEL"
	EnvLogTimestamp = "FRAMEMAP_LOG_TIMESTAMP"
	EnvLogNoColor   = "FRAMEMAP_LOG_NOCOLOR"
)

// Config controls the console logger.
type Config struct {
	Level     zerolog.Level
	Timestamp bool
	NoColor   bool
	Out       io.Writer
}

// DefaultConfig logs info and above to stderr with timestamps.
func DefaultConfig() Config {
	return Config{
		Level:     zerolog.InfoLevel,
		Timestamp: true,
		Out:       os.Stderr,
	}
}

// envConfig is the environment view of Config.
type envConfig struct {
	Level     string `env:"FRAMEMAP_LOG_LEVEL"`
	Timestamp bool   `env:"FRAMEMAP_LOG_TIMESTAMP" envDefault:"true"`
	NoColor   bool   `env:"FRAMEMAP_LOG_NOCOLOR"`
}

// FromEnv returns DefaultConfig overlaid with FRAMEMAP_LOG_* variables. On a
// malformed value it returns DefaultConfig and the error.
func FromEnv() (Config, error) {
	return parseEnv(env.Options{})
}

func parseEnv(opts env.Options) (Config, error) {
	cfg := DefaultConfig()

	ec, err := env.ParseAsWithOptions[envConfig](opts)
	if err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	if ec.Level != "" {
		lvl, ok := ParseLevel(ec.Level)
		if !ok {
			return cfg, fmt.Errorf("parse env: unknown %s %q", EnvLogLevel, ec.Level)
		}

		cfg.Level = lvl
	}

	cfg.Timestamp = ec.Timestamp
	cfg.NoColor = ec.NoColor

	return cfg, nil
}

// New returns a console logger tagged with app and installs it as the
// global zerolog logger.
func New(app string, cfg Config) zerolog.Logger {
	out := cfg.Out
	if out == nil {
		out = os.Stderr
	}

	ctx := zerolog.New(zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    cfg.NoColor,
		TimeFormat: time.RFC3339,
	}).Level(cfg.Level).With()

	if cfg.Timestamp {
		ctx = ctx.Timestamp()
	}

	logger := ctx.Str("app", app).Logger()
	log.Logger = logger

	return logger
}

// ParseLevel maps a level name to a zerolog level. It reports false for
// empty or unknown names.
func ParseLevel(raw string) (zerolog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return zerolog.InfoLevel, false
	case "trace":
		return zerolog.TraceLevel, true
	case "debug":
		return zerolog.DebugLevel, true
	case "info":
		return zerolog.InfoLevel, true
	case "warn", "warning":
		return zerolog.WarnLevel, true
	case "error":
		return zerolog.ErrorLevel, true
	case "disabled", "off", "none":
		return zerolog.Disabled, true
	default:
		return zerolog.InfoLevel, false
	}
}
