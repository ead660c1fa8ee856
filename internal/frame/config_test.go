package frame

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfig_Overrides(t *testing.T) {
	cfg, err := parseConfig(env.Options{Environment: map[string]string{
		"FRAMEMAP_BIN_PREFIX":      "data",
		"FRAMEMAP_LEN_PREFIX":      "index",
		"FRAMEMAP_MAX_FRAME_BYTES": "4096",
	}})
	require.NoError(t, err)
	assert.Equal(t, Config{BinPrefix: "data", LenPrefix: "index", MaxFrameBytes: 4096}, cfg)
}

func TestParseConfig_Invalid(t *testing.T) {
	for name, value := range map[string]string{"negative": "-1", "zero": "0", "text": "lots"} {
		t.Run(name, func(t *testing.T) {
			cfg, err := parseConfig(env.Options{Environment: map[string]string{"FRAMEMAP_MAX_FRAME_BYTES": value}})
			require.Error(t, err)
			assert.Contains(t, err.Error(), "parse env")
			assert.Equal(t, DefaultConfig(), cfg)
		})
	}
}

func TestConfigFromEnv(t *testing.T) {
	t.Setenv("FRAMEMAP_BIN_PREFIX", "payload")

	cfg, err := ConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "payload", cfg.BinPrefix)
	assert.Equal(t, DefaultLenPrefix, cfg.LenPrefix)
}
