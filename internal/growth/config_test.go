package growth

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "growth.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig_Valid(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"nan weight", func(c *Config) { c.ImprovementWeight = math.NaN() }},
		{"inf weight", func(c *Config) { c.ErrorPenalty = math.Inf(1) }},
		{"negative weight", func(c *Config) { c.IndependentBonus = -1 }},
		{"min above max", func(c *Config) { c.MinSessionDelta = 5; c.MaxSessionDelta = -5 }},
		{"zero threshold", func(c *Config) { c.MentalBlockSessionThreshold = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}

func TestLoadConfig_PartialMergesOverDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"error_penalty": 5.0, "max_session_delta": 20}`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, 5.0, cfg.ErrorPenalty)
	assert.Equal(t, 20, cfg.MaxSessionDelta)
	assert.Equal(t, 1.0, cfg.ImprovementWeight, "untouched field keeps default")
	assert.Equal(t, 3, cfg.MentalBlockSessionThreshold, "untouched field keeps default")
}

func TestLoadConfig_RejectsWrongType(t *testing.T) {
	path := writeConfigFile(t, `{"error_penalty": "high"}`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_RejectsUnknownKey(t *testing.T) {
	path := writeConfigFile(t, `{"eror_penalty": 5.0}`)
	_, err := LoadConfig(path)
	assert.Error(t, err, "misspelled keys must not be silently ignored")
}

func TestLoadConfig_RejectsInvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{`)
	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid JSON")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}
