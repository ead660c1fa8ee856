package frame

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Default file name prefixes and frame size limit.
const (
	DefaultBinPrefix     = "intelliDriveDataFile"
	DefaultLenPrefix     = "intelliDriveDataLenFile"
	DefaultMaxFrameBytes = 64 << 20
)

// Config controls file discovery and frame limits.
type Config struct {
	BinPrefix     string `env:"FRAMEMAP_BIN_PREFIX"      envDefault:"intelliDriveDataFile"`
	LenPrefix     string `env:"FRAMEMAP_LEN_PREFIX"      envDefault:"intelliDriveDataLenFile"`
	MaxFrameBytes int    `env:"FRAMEMAP_MAX_FRAME_BYTES" envDefault:"67108864"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	return Config{
		BinPrefix:     DefaultBinPrefix,
		LenPrefix:     DefaultLenPrefix,
		MaxFrameBytes: DefaultMaxFrameBytes,
	}
}

// ConfigFromEnv returns the defaults overlaid by FRAMEMAP_* environment
// variables.
func ConfigFromEnv() (Config, error) {
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return DefaultConfig(), fmt.Errorf("parse env: %w", err)
	}

	if cfg.MaxFrameBytes <= 0 {
		return DefaultConfig(), fmt.Errorf("parse env: FRAMEMAP_MAX_FRAME_BYTES must be positive, got %d", cfg.MaxFrameBytes)
	}

	return cfg, nil
}
