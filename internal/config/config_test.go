package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aretw0/relay/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func write(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_YAML(t *testing.T) {
	path := write(t, "relay.yaml", `
log_level: debug
codec: yaml
strict: true
recover: true
people:
  - Ada
  - Linus
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "yaml", cfg.Codec)
	assert.True(t, cfg.Strict)
	assert.True(t, cfg.Recover)
	assert.False(t, cfg.Metrics)
	assert.Equal(t, []string{"Ada", "Linus"}, cfg.People)
}

func TestLoad_JSONKeepsDefaults(t *testing.T) {
	path := write(t, "relay.json", `{"metrics": true, "strict_envelopes": true}`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Metrics)
	assert.True(t, cfg.StrictEnvelopes)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.Codec)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"broken yaml", "relay.yaml", "log_level: [unclosed"},
		{"broken json", "relay.json", "{"},
		{"unknown level", "relay.yaml", "log_level: loud"},
		{"unknown codec", "relay.yaml", "codec: xml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.Load(write(t, tt.file, tt.content))
			assert.Error(t, err)
		})
	}
}
