package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brand-lift/internal/core/lift"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prod", cfg.Env)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.False(t, cfg.Psql.Enabled)
	assert.Empty(t, cfg.Channels.File)

	model, err := cfg.Model.LiftModel()
	require.NoError(t, err)
	assert.Equal(t, lift.DefaultModel(), model)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "JSON")
	t.Setenv("PSQL_ENABLED", "true")
	t.Setenv("CHANNELS_FILE", "/etc/brand-lift/channels.yaml")
	t.Setenv("MODEL_FREQUENCY_STRATEGY", "saturation")
	t.Setenv("MODEL_CLAMP", "true")
	t.Setenv("MODEL_W_ATTENTION", "0.9")
	t.Setenv("MODEL_MAX_DURATION_DAYS", "365")
	t.Setenv("HTTP_MAX_BODY_BYTES", "2048")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
	assert.True(t, cfg.Psql.Enabled)
	assert.Equal(t, "/etc/brand-lift/channels.yaml", cfg.Channels.File)

	model, err := cfg.Model.LiftModel()
	require.NoError(t, err)
	assert.Equal(t, lift.FrequencySaturation, model.Frequency)
	assert.True(t, model.Clamp)
	assert.Equal(t, 0.9, model.Weights.Attention)
	assert.Equal(t, 365, model.MaxDurationDays)
	assert.Equal(t, int64(2048), cfg.HTTP.MaxBodyBytes)
}

func TestLoadRejectsUnknownFrequencyStrategy(t *testing.T) {
	t.Setenv("MODEL_FREQUENCY_STRATEGY", "logistic")
	_, err := Load()
	assert.Error(t, err)
}
