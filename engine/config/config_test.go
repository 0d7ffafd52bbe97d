package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte(`
[window]
title = "demo"
width = 800

[lighting.fog]
enabled = true
color = [0.1, 0.2, 0.3]
`))
	require.NoError(t, err)
	assert.Equal(t, "demo", cfg.Window.Title)
	assert.Equal(t, 800, cfg.Window.Width)
	assert.Equal(t, 720, cfg.Window.Height)
	assert.True(t, cfg.Lighting.Fog.Enabled)
	assert.Equal(t, [3]float32{0.1, 0.2, 0.3}, cfg.Lighting.Fog.Color)
	assert.Equal(t, float32(10), cfg.Lighting.Fog.Start)
	assert.Equal(t, 1024, cfg.Mirror.Size)
}

func TestParseEmpty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParseRejectsUnknownKeys(t *testing.T) {
	_, err := Parse([]byte("[window]\ntitel = \"typo\"\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "titel")
}

func TestParseRejectsMalformed(t *testing.T) {
	_, err := Parse([]byte("[window\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode config")
}

func TestValidate(t *testing.T) {
	cases := map[string]func(*Config){
		"window":      func(c *Config) { c.Window.Width = 0 },
		"speed":       func(c *Config) { c.Camera.Speed = -1 },
		"sensitivity": func(c *Config) { c.Camera.Sensitivity = -0.1 },
		"fov":         func(c *Config) { c.Camera.FovY = 180 },
		"fog":         func(c *Config) { c.Lighting.Fog.End = c.Lighting.Fog.Start },
		"range":       func(c *Config) { c.Lighting.SpotRange = 0 },
		"mirror":      func(c *Config) { c.Mirror.Size = -4 },
		"logging":     func(c *Config) { c.Logging.Level = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			mutate(&cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalid)
		})
	}
}

func TestParseValidates(t *testing.T) {
	_, err := Parse([]byte("[mirror]\nsize = 0\n"))
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestLoadAndEncode(t *testing.T) {
	cfg := Default()
	cfg.Window.Title = "round"
	cfg.Camera.FovY = 60
	data, err := cfg.Encode()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, data, 0o644))
	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
