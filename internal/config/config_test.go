package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysFileOnDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"upload_dir: /tmp/up\nlisten_addr: \":9090\"\nlog_level: debug\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/up", cfg.UploadDir)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "debug", cfg.LogLevel)
	// Untouched settings keep their defaults.
	assert.Equal(t, "./reports", cfg.OutputDir)
	assert.Equal(t, []string{"xlsx", "xls", "ods"}, cfg.AllowedExtensions)
}

func TestLoad_MalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("upload_dir: [unclosed"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidValuesRejected(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"empty dir", "upload_dir: \"\"\n"},
		{"bad log level", "log_level: shouty\n"},
		{"zero chart width", "chart_width_px: 0\n"},
		{"no extensions", "allowed_extensions: []\n"},
		{"negative upload cap", "max_upload_bytes: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.yaml")
			require.NoError(t, os.WriteFile(path, []byte(tt.yaml), 0o644))
			_, err := Load(path)
			assert.Error(t, err)
		})
	}
}

func TestSlogLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"
	level, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, level)
}

func TestExtensionAllowed(t *testing.T) {
	cfg := Default()
	assert.True(t, cfg.ExtensionAllowed("xlsx"))
	assert.True(t, cfg.ExtensionAllowed(".XLSX"))
	assert.True(t, cfg.ExtensionAllowed("ods"))
	assert.False(t, cfg.ExtensionAllowed("csv"))
	assert.False(t, cfg.ExtensionAllowed(""))
	assert.False(t, cfg.ExtensionAllowed("exe"))
}
