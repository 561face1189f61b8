package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	require.NoError(t, WriteDefault(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "api_key")
	assert.Contains(t, string(data), "[cache]")

	// The template must load once the key placeholder resolves.
	t.Setenv("TVDB_API_KEY", "ABCDEF123456")
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ABCDEF123456", cfg.APIKey)
	assert.True(t, cfg.Cache.Enabled)
}

func TestWriteRoundTrip(t *testing.T) {
	cfg := validConfig()
	cfg.IgnoreCase = true
	path := filepath.Join(t.TempDir(), "out", "config.toml")
	require.NoError(t, cfg.Write(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg.APIKey, loaded.APIKey)
	assert.True(t, loaded.IgnoreCase)
}

func TestConfigError_Format(t *testing.T) {
	err := &ConfigError{
		Path:    "/etc/tvdbgo/config.toml",
		Missing: []string{"TVDB_API_KEY"},
		Errors:  []string{"log_level: must be one of debug, info, warn, error; got \"loud\""},
	}
	msg := err.Error()
	assert.Contains(t, msg, "missing environment variables: TVDB_API_KEY")
	assert.Contains(t, msg, "validation failed:")
	assert.True(t, strings.Contains(msg, "log_level"))
	assert.True(t, err.HasErrors())

	empty := &ConfigError{}
	assert.Equal(t, "", empty.Error())
	assert.False(t, empty.HasErrors())
}
